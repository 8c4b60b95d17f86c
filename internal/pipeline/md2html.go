package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// DefaultHighlightStyle is the chroma style used for fenced code blocks.
const DefaultHighlightStyle = "monokai"

// RenderOptions selects the Markdown features enabled for a conversion.
type RenderOptions struct {
	Tables         bool   // GFM pipe tables
	FencedCode     bool   // ``` and ~~~ blocks; when false they are plain paragraphs
	HeaderIDs      bool   // slug ids on headings, deduplicated per document
	Highlight      bool   // chroma highlighting of fenced code
	LineNumbers    bool   // chroma line numbers, only with Highlight
	RawHTML        bool   // pass inline and block HTML through
	HighlightStyle string // chroma style name, DefaultHighlightStyle when empty
}

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// GoldmarkConverter converts Markdown to an HTML fragment using goldmark.
type GoldmarkConverter struct {
	md        goldmark.Markdown
	headerIDs bool
}

// NewGoldmarkConverter creates a GoldmarkConverter for the given options.
// Strikethrough, autolinks and task lists are always on.
func NewGoldmarkConverter(opts RenderOptions) *GoldmarkConverter {
	exts := []goldmark.Extender{
		extension.Strikethrough,
		extension.Linkify,
		extension.TaskList,
	}
	if opts.Tables {
		exts = append(exts, extension.Table)
	}
	if opts.FencedCode && opts.Highlight {
		exts = append(exts, highlighting.NewHighlighting(
			highlighting.WithStyle(highlightStyle(opts.HighlightStyle)),
			highlighting.WithFormatOptions(
				html.WithClasses(true),
				html.WithLineNumbers(opts.LineNumbers),
			),
		))
	}

	parserOpts := []parser.Option{
		parser.WithBlockParsers(blockParsers(opts.FencedCode)...),
		parser.WithInlineParsers(parser.DefaultInlineParsers()...),
		parser.WithParagraphTransformers(parser.DefaultParagraphTransformers()...),
	}
	if opts.HeaderIDs {
		parserOpts = append(parserOpts, parser.WithAutoHeadingID())
	}

	var rendererOpts []renderer.Option
	if opts.RawHTML {
		rendererOpts = append(rendererOpts, gmhtml.WithUnsafe())
	}

	md := goldmark.New(
		goldmark.WithParser(parser.NewParser(parserOpts...)),
		goldmark.WithExtensions(exts...),
		goldmark.WithRendererOptions(rendererOpts...),
	)
	return &GoldmarkConverter{md: md, headerIDs: opts.HeaderIDs}
}

// blockParsers returns goldmark's default block parsers, without the fenced
// code parser when fenced is false.
func blockParsers(fenced bool) []util.PrioritizedValue {
	defaults := parser.DefaultBlockParsers()
	if fenced {
		return defaults
	}
	kept := make([]util.PrioritizedValue, 0, len(defaults))
	for _, v := range defaults {
		if bp, ok := v.Value.(parser.BlockParser); ok && bytes.IndexByte(bp.Trigger(), '`') >= 0 {
			continue
		}
		kept = append(kept, v)
	}
	return kept
}

// ToHTML converts Markdown content to an HTML fragment.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		var opts []parser.ParseOption
		if c.headerIDs {
			pc := parser.NewContext(parser.WithIDs(newHeadingIDs()))
			opts = append(opts, parser.WithContext(pc))
		}
		if err := c.md.Convert([]byte(content), &buf, opts...); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// HighlightCSS returns the class-based stylesheet for highlighted code blocks.
// Unknown style names fall back to chroma's default style.
func HighlightCSS(style string, lineNumbers bool) (string, error) {
	formatter := html.New(html.WithClasses(true), html.WithLineNumbers(lineNumbers))

	var buf bytes.Buffer
	if err := formatter.WriteCSS(&buf, styles.Get(highlightStyle(style))); err != nil {
		return "", fmt.Errorf("writing highlight CSS: %w", err)
	}
	return buf.String(), nil
}

func highlightStyle(name string) string {
	if name == "" {
		return DefaultHighlightStyle
	}
	return name
}
