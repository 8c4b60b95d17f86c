package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"regexp"
)

var (
	// ErrPageTemplate indicates the page template failed to parse.
	ErrPageTemplate = errors.New("invalid page template")
	// ErrPageRender indicates the page template failed to execute.
	ErrPageRender = errors.New("page rendering failed")
)

// PageData holds everything placed in the page shell. Metadata fields are
// escaped by the template; CSS, Content and Script are trusted and
// inserted as is.
type PageData struct {
	Lang    string
	Title   string
	Heading string
	Date    string
	Version string
	Project string
	BaseURL string
	Footer  []string
	CSS     string
	Content string
	Script  string
}

// pageView is PageData with trusted fields typed for html/template.
type pageView struct {
	Lang    string
	Title   string
	Heading string
	Date    string
	Version string
	Project string
	BaseURL string
	Footer  []string
	CSS     template.CSS
	Content template.HTML
	Script  template.JS
}

// PageAssembler renders complete pages from a parsed template.
// It is safe for concurrent use.
type PageAssembler struct {
	tmpl *template.Template
}

// NewPageAssembler parses an html/template page shell.
func NewPageAssembler(name, page string) (*PageAssembler, error) {
	tmpl, err := template.New(name).Parse(page)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageTemplate, err)
	}
	return &PageAssembler{tmpl: tmpl}, nil
}

// Assemble executes the page template with data.
func (a *PageAssembler) Assemble(ctx context.Context, data *PageData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	view := pageView{
		Lang:    data.Lang,
		Title:   data.Title,
		Heading: data.Heading,
		Date:    data.Date,
		Version: data.Version,
		Project: data.Project,
		BaseURL: data.BaseURL,
		Footer:  data.Footer,
		CSS:     template.CSS(escapeClosingTags(data.CSS)),
		Content: template.HTML(data.Content),
		Script:  template.JS(escapeClosingTags(data.Script)),
	}

	var buf bytes.Buffer
	if err := a.tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageRender, err)
	}
	return buf.String(), nil
}

// closingTagPattern matches "</" followed by "style" or "script", any case.
var closingTagPattern = regexp.MustCompile(`(?i)</(style|script)`)

// escapeClosingTags keeps inline CSS and script from ending their element early.
func escapeClosingTags(s string) string {
	return closingTagPattern.ReplaceAllString(s, `<\/$1`)
}
