package assets

// TemplateSet holds the page shell for one document profile.
type TemplateSet struct {
	Name   string // Identifier (name or directory path)
	Page   string // html/template source for the full page
	Script string // inline script placed at the end of <body>; optional
}

// Built-in style and template set names. Each profile uses the same name
// for both.
const (
	ReportName = "report"
	APIName    = "api"
)

// Template set file names.
const (
	pageFile   = "page.html"
	scriptFile = "script.js"
)
