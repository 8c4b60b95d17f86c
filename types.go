package campdoc

import (
	"fmt"
)

// Metadata describes the page around the rendered Markdown.
// Every field is plain text and is HTML-escaped on output.
type Metadata struct {
	Title   string   // <title>
	Heading string   // page header <h1>
	Date    string   // literal, or "auto" / "auto:FORMAT" for the current date
	Version string   // document or API version
	Project string   // project name, shown by the report page
	BaseURL string   // API base URL, shown by the API page
	Lang    string   // <html lang>, default "ko"
	Footer  []string // one <p> per line
}

// DefaultLang is used when Metadata.Lang is empty.
const DefaultLang = "ko"

// Features toggles the optional parts of the conversion.
type Features struct {
	Tables            bool // GFM pipe tables
	FencedCode        bool // ``` and ~~~ code blocks
	HeaderIDs         bool // slug ids on headings
	TOC               bool // table of contents, see Input.TOC
	Highlight         bool // chroma highlighting of fenced code
	LineNumbers       bool // line numbers on highlighted code
	DecorateEndpoints bool // method and permission badges in list items
	RawHTML           bool // pass HTML in the Markdown through
	Sanitize          bool // strip unsafe markup from the rendered Markdown
}

// TOC default values.
const (
	DefaultTOCTitle    = "목차"
	DefaultTOCMinDepth = 1
	DefaultTOCMaxDepth = 6
)

// TOC configures the table of contents.
// Zero depths use the defaults; an empty Title omits the title.
type TOC struct {
	Title    string
	MinDepth int // 1-6
	MaxDepth int // 1-6
}

// DefaultTOC returns the settings used when Input.TOC is nil.
func DefaultTOC() *TOC {
	return &TOC{Title: DefaultTOCTitle, MinDepth: DefaultTOCMinDepth, MaxDepth: DefaultTOCMaxDepth}
}

// Validate checks the depth range. Returns nil if t is nil.
func (t *TOC) Validate() error {
	if t == nil {
		return nil
	}
	minDepth, maxDepth := t.depths()
	if minDepth < 1 || minDepth > 6 || maxDepth < 1 || maxDepth > 6 {
		return fmt.Errorf("%w: depths must be between 1 and 6, got %d..%d", ErrInvalidTOCDepth, t.MinDepth, t.MaxDepth)
	}
	if minDepth > maxDepth {
		return fmt.Errorf("%w: minDepth %d exceeds maxDepth %d", ErrInvalidTOCDepth, minDepth, maxDepth)
	}
	return nil
}

func (t *TOC) depths() (minDepth, maxDepth int) {
	minDepth, maxDepth = t.MinDepth, t.MaxDepth
	if minDepth == 0 {
		minDepth = DefaultTOCMinDepth
	}
	if maxDepth == 0 {
		maxDepth = DefaultTOCMaxDepth
	}
	return minDepth, maxDepth
}

// Input contains conversion parameters.
type Input struct {
	Markdown    string   // Markdown content (required)
	Metadata    Metadata // page header, title and footer
	Features    Features // optional conversion steps
	TOC         *TOC     // nil = DefaultTOC(); used when Features.TOC is set
	TemplateSet string   // page template set name, default "report"
	Style       string   // style name or CSS file path, default TemplateSet
	CSS         string   // extra CSS appended after the style (optional)
	SourceDir   string   // directory of the Markdown file (optional)
	OutputDir   string   // directory the page is written to (optional)
}

// Heading is a heading of the converted document.
type Heading struct {
	Level int
	ID    string
	Text  string
}

// Result contains the output of a conversion.
type Result struct {
	HTML     []byte    // complete HTML document
	Headings []Heading // headings with ids, in document order
}
