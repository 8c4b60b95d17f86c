package pipeline

import (
	"context"
	"errors"
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"
)

// DefaultTOCTitle is the heading rendered above the table of contents.
const DefaultTOCTitle = "목차"

// ErrInvalidTOCDepth indicates a depth range outside 1..6 or inverted.
var ErrInvalidTOCDepth = errors.New("invalid TOC depth")

// Heading is a heading found in a rendered fragment.
type Heading struct {
	Level int    // 1-6
	ID    string // anchor id
	Text  string // text content, tags stripped and entities decoded
}

// TOCData configures table of contents generation.
type TOCData struct {
	Title    string // empty omits the title
	MinDepth int    // shallowest heading level included, 1-6
	MaxDepth int    // deepest heading level included, 1-6
}

// DefaultTOCData returns the settings used when nothing is configured.
func DefaultTOCData() *TOCData {
	return &TOCData{Title: DefaultTOCTitle, MinDepth: 1, MaxDepth: 6}
}

// Validate checks the depth range.
func (d *TOCData) Validate() error {
	if d.MinDepth < 1 || d.MinDepth > 6 || d.MaxDepth < 1 || d.MaxDepth > 6 {
		return fmt.Errorf("%w: depths must be between 1 and 6, got %d..%d", ErrInvalidTOCDepth, d.MinDepth, d.MaxDepth)
	}
	if d.MinDepth > d.MaxDepth {
		return fmt.Errorf("%w: min depth %d exceeds max depth %d", ErrInvalidTOCDepth, d.MinDepth, d.MaxDepth)
	}
	return nil
}

// headingPattern matches h1-h6 tags with id attribute.
// Captures: 1=level, 2=id, 3=inner HTML (may contain inline tags)
var headingPattern = regexp.MustCompile(`(?is)<h([1-6])[^>]*\bid="([^"]*)"[^>]*>(.*?)</h[1-6]>`)

// htmlTagPattern matches HTML tags for stripping from heading text.
var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// tocMarker is the paragraph goldmark renders for a "[TOC]" line.
var tocMarker = regexp.MustCompile(`(?i)<p>\s*\[TOC\]\s*</p>\n?`)

// stripHTMLTags removes HTML tags from a string, decodes HTML entities,
// and trims whitespace. Entities are decoded so the text is not
// double-encoded when escaped again for the TOC.
func stripHTMLTags(s string) string {
	s = htmlTagPattern.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	return strings.TrimSpace(s)
}

// ExtractHeadings returns headings between minDepth and maxDepth, in
// document order. Headings without ids are skipped.
func ExtractHeadings(fragment string, minDepth, maxDepth int) []Heading {
	matches := headingPattern.FindAllStringSubmatch(fragment, -1)
	if len(matches) == 0 {
		return nil
	}

	var headings []Heading
	for _, m := range matches {
		level, _ := strconv.Atoi(m[1])
		if level < minDepth || level > maxDepth {
			continue
		}
		headings = append(headings, Heading{
			Level: level,
			ID:    html.UnescapeString(m[2]),
			Text:  stripHTMLTags(m[3]),
		})
	}
	return headings
}

// depthTracker maps heading levels to list nesting depths.
// The first heading becomes depth 1 and skipped levels collapse,
// so h1 followed by h3 nests one level, not two.
type depthTracker struct {
	minLevel int // 0 until the first heading
	last     int
}

func (d *depthTracker) next(level int) int {
	if d.minLevel == 0 {
		d.minLevel = level
	}
	depth := level - d.minLevel + 1
	if depth < 1 {
		depth = 1
	}
	if d.last > 0 && depth > d.last+1 {
		depth = d.last + 1
	}
	d.last = depth
	return depth
}

// RenderTOC builds a nested list of links to the headings.
func RenderTOC(headings []Heading, title string) string {
	if len(headings) == 0 {
		return ""
	}

	var buf strings.Builder
	buf.WriteString(`<div class="toc">`)
	if title != "" {
		buf.WriteString(`<h2>`)
		buf.WriteString(html.EscapeString(title))
		buf.WriteString(`</h2>`)
	}

	var tracker depthTracker
	open := 0
	for _, h := range headings {
		depth := tracker.next(h.Level)
		if depth > open {
			// depth is at most open+1 after collapsing
			buf.WriteString(`<ul>`)
			open++
		} else {
			buf.WriteString(`</li>`)
			for ; open > depth; open-- {
				buf.WriteString(`</ul></li>`)
			}
		}
		buf.WriteString(`<li><a href="#`)
		buf.WriteString(html.EscapeString(h.ID))
		buf.WriteString(`">`)
		buf.WriteString(html.EscapeString(h.Text))
		buf.WriteString(`</a>`)
	}

	buf.WriteString(`</li>`)
	for ; open > 1; open-- {
		buf.WriteString(`</ul></li>`)
	}
	buf.WriteString(`</ul></div>`)
	return buf.String()
}

// InjectTOC renders a table of contents for the fragment. It replaces the
// first "[TOC]" paragraph, or is prepended when there is none. Without
// headings in range the fragment is returned with the marker removed.
// A nil data uses DefaultTOCData.
func InjectTOC(ctx context.Context, fragment string, data *TOCData) (string, []Heading, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}
	if data == nil {
		data = DefaultTOCData()
	}
	if err := data.Validate(); err != nil {
		return "", nil, err
	}

	headings := ExtractHeadings(fragment, data.MinDepth, data.MaxDepth)
	toc := RenderTOC(headings, data.Title)

	if loc := tocMarker.FindStringIndex(fragment); loc != nil {
		return fragment[:loc[0]] + toc + fragment[loc[1]:], headings, nil
	}
	if toc == "" {
		return fragment, nil, nil
	}
	return toc + "\n" + fragment, headings, nil
}
