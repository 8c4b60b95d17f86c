// Package status prints the result of a conversion to the terminal.
package status

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// nextSteps walks the reader through saving the page as PDF.
var nextSteps = []string{
	"1. 브라우저에서 HTML 파일을 엽니다",
	"2. '📄 PDF로 저장' 버튼을 클릭하거나 Ctrl+P를 누릅니다",
	"3. '대상'을 'PDF로 저장'으로 선택합니다",
	"4. 저장 버튼을 클릭합니다",
}

// Report describes one written HTML file.
type Report struct {
	Name string // file name as given on the command line
	Path string // absolute path
	Size int64  // bytes written
}

// Printer writes styled status lines. Styling is dropped automatically
// when the writer is not a terminal.
type Printer struct {
	w     io.Writer
	quiet bool

	success lipgloss.Style
	label   lipgloss.Style
	heading lipgloss.Style
	step    lipgloss.Style
	failure lipgloss.Style
}

// NewPrinter returns a Printer writing to w. A quiet Printer prints nothing.
func NewPrinter(w io.Writer, quiet bool) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		quiet:   quiet,
		success: r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		label:   r.NewStyle().Foreground(lipgloss.Color("12")),
		heading: r.NewStyle().Bold(true),
		step:    r.NewStyle().Faint(true),
		failure: r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
}

// Created prints the summary for a written file followed by the
// print-to-PDF instructions.
func (p *Printer) Created(rep Report) {
	if p.quiet {
		return
	}
	p.line(p.success.Render("✅ HTML file created successfully: " + rep.Name))
	p.line(p.label.Render(fmt.Sprintf("📄 File size: %s KB", SizeKB(rep.Size))))
	p.line(p.label.Render("📍 Location: " + rep.Path))
	p.line("")
	p.line(p.heading.Render("🖨️  다음 단계:"))
	for _, s := range nextSteps {
		p.line(p.step.Render(s))
	}
}

// Failed prints a one-line failure notice for a named profile.
func (p *Printer) Failed(name string, err error) {
	if p.quiet {
		return
	}
	p.line(p.failure.Render("❌ " + name + ": " + err.Error()))
}

func (p *Printer) line(s string) {
	fmt.Fprintln(p.w, s)
}

// SizeKB formats a byte count as kilobytes with two decimals.
func SizeKB(n int64) string {
	return fmt.Sprintf("%.2f", float64(n)/1024)
}
