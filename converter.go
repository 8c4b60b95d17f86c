package campdoc

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/campstation/campdoc/internal/fileutil"
	"github.com/campstation/campdoc/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.HTMLConverter = (*pipeline.GoldmarkConverter)(nil)
	_ AssetLoader            = (*assetLoaderAdapter)(nil)
)

// Converter turns Markdown into a complete, print-friendly HTML page.
// Create with NewConverter and call Convert. A Converter is safe for
// concurrent use.
type Converter struct {
	cfg          converterConfig
	assetLoader  AssetLoader
	customLoader AssetLoader // from WithAssetLoader
	sanitizer    *pipeline.Sanitizer

	mu         sync.Mutex
	renderers  map[pipeline.RenderOptions]*pipeline.GoldmarkConverter
	assemblers map[string]*pageShell
}

// pageShell is a parsed template set.
type pageShell struct {
	assembler *pipeline.PageAssembler
	script    string
}

// NewConverter creates a Converter with default configuration.
// Returns ErrInvalidAssetPath if WithAssetPath names an unusable directory.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:        converterConfig{now: time.Now},
		sanitizer:  pipeline.NewSanitizer(),
		renderers:  make(map[pipeline.RenderOptions]*pipeline.GoldmarkConverter),
		assemblers: make(map[string]*pageShell),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.customLoader != nil {
		c.assetLoader = c.customLoader
		return c, nil
	}

	loader, err := NewAssetLoader(c.cfg.assetPath)
	if err != nil {
		return nil, err
	}
	c.assetLoader = loader
	return c, nil
}

// Convert runs the full pipeline and returns the assembled page.
// The context is used for cancellation.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := validateInput(input); err != nil {
		return nil, err
	}

	date, err := ResolveDate(input.Metadata.Date, c.cfg.now())
	if err != nil {
		return nil, err
	}

	fragment, err := c.renderer(input.Features).ToHTML(ctx, pipeline.NormalizeLineEndings(input.Markdown))
	if err != nil {
		if errors.Is(err, pipeline.ErrHTMLConversion) {
			return nil, fmt.Errorf("%w: %v", ErrHTMLConversion, err)
		}
		return nil, err
	}

	fragment, err = pipeline.RebaseRelativePaths(fragment, input.SourceDir, input.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("rebasing relative paths: %w", err)
	}

	// Sanitize before generating markup of our own.
	if input.Features.Sanitize {
		fragment = c.sanitizer.Sanitize(fragment)
	}

	// Badges go on body list items only, so decorate before the TOC exists.
	if input.Features.DecorateEndpoints {
		fragment, err = pipeline.DecorateEndpoints(ctx, fragment)
		if err != nil {
			return nil, fmt.Errorf("decorating endpoints: %w", err)
		}
	}

	if input.Features.TOC {
		fragment, _, err = pipeline.InjectTOC(ctx, fragment, toTOCData(input.TOC))
		if err != nil {
			return nil, fmt.Errorf("injecting TOC: %w", err)
		}
	}
	headings := pipeline.ExtractHeadings(fragment, 1, 6)

	css, err := c.buildCSS(input)
	if err != nil {
		return nil, err
	}

	shell, err := c.pageShell(templateSetName(input))
	if err != nil {
		return nil, err
	}

	meta := input.Metadata
	lang := meta.Lang
	if lang == "" {
		lang = DefaultLang
	}
	page, err := shell.assembler.Assemble(ctx, &pipeline.PageData{
		Lang:    lang,
		Title:   meta.Title,
		Heading: meta.Heading,
		Date:    date,
		Version: meta.Version,
		Project: meta.Project,
		BaseURL: meta.BaseURL,
		Footer:  meta.Footer,
		CSS:     css,
		Content: fragment,
		Script:  shell.script,
	})
	if err != nil {
		if errors.Is(err, pipeline.ErrPageRender) {
			return nil, fmt.Errorf("%w: %v", ErrPageRender, err)
		}
		return nil, err
	}

	return &Result{HTML: []byte(page), Headings: toHeadings(headings)}, nil
}

// renderer returns the cached goldmark converter for the feature set.
func (c *Converter) renderer(f Features) *pipeline.GoldmarkConverter {
	opts := pipeline.RenderOptions{
		Tables:         f.Tables,
		FencedCode:     f.FencedCode,
		HeaderIDs:      f.HeaderIDs,
		Highlight:      f.Highlight,
		LineNumbers:    f.Highlight && f.LineNumbers,
		RawHTML:        f.RawHTML,
		HighlightStyle: c.cfg.highlightStyle,
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.renderers[opts]
	if !ok {
		r = pipeline.NewGoldmarkConverter(opts)
		c.renderers[opts] = r
	}
	return r
}

// pageShell loads and parses a template set once.
func (c *Converter) pageShell(name string) (*pageShell, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if shell, ok := c.assemblers[name]; ok {
		return shell, nil
	}

	ts, err := c.assetLoader.LoadTemplateSet(name)
	if err != nil {
		return nil, fmt.Errorf("loading template set %q: %w", name, err)
	}
	assembler, err := pipeline.NewPageAssembler(ts.Name, ts.Page)
	if err != nil {
		return nil, fmt.Errorf("%w: template set %q: %v", ErrPageRender, name, err)
	}

	shell := &pageShell{assembler: assembler, script: ts.Script}
	c.assemblers[name] = shell
	return shell, nil
}

// buildCSS combines highlight CSS, the style and the extra CSS, in that
// order so later rules can override earlier ones.
func (c *Converter) buildCSS(input Input) (string, error) {
	var parts []string

	if input.Features.Highlight && input.Features.FencedCode {
		css, err := pipeline.HighlightCSS(c.cfg.highlightStyle, input.Features.LineNumbers)
		if err != nil {
			return "", err
		}
		parts = append(parts, css)
	}

	style, err := c.resolveStyle(styleName(input))
	if err != nil {
		return "", err
	}
	parts = append(parts, style)

	if input.CSS != "" {
		parts = append(parts, input.CSS)
	}
	return strings.Join(parts, "\n"), nil
}

// resolveStyle loads a style by name, or reads it when given a file path.
func (c *Converter) resolveStyle(style string) (string, error) {
	if fileutil.IsFilePath(style) {
		content, err := os.ReadFile(style) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("loading style file %q: %w", style, err)
		}
		return string(content), nil
	}

	css, err := c.assetLoader.LoadStyle(style)
	if err != nil {
		return "", fmt.Errorf("loading style %q: %w", style, err)
	}
	return css, nil
}

// validateInput checks that the optional settings are valid.
func validateInput(input Input) error {
	if input.Features.TOC {
		if err := input.TOC.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func templateSetName(input Input) string {
	if input.TemplateSet == "" {
		return ProfileReport
	}
	return input.TemplateSet
}

func styleName(input Input) string {
	if input.Style == "" {
		return templateSetName(input)
	}
	return input.Style
}

// toTOCData converts the public TOC type to internal pipeline.TOCData.
func toTOCData(t *TOC) *pipeline.TOCData {
	if t == nil {
		t = DefaultTOC()
	}
	minDepth, maxDepth := t.depths()
	return &pipeline.TOCData{
		Title:    t.Title,
		MinDepth: minDepth,
		MaxDepth: maxDepth,
	}
}

func toHeadings(hs []pipeline.Heading) []Heading {
	if len(hs) == 0 {
		return nil
	}
	out := make([]Heading, len(hs))
	for i, h := range hs {
		out[i] = Heading(h)
	}
	return out
}
