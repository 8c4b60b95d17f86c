package pipeline

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips unsafe markup from rendered fragments.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer returns a Sanitizer based on bluemonday's UGC policy that
// also keeps what the renderer emits: Unicode heading ids, highlight classes
// and the tabindex chroma puts on code blocks.
func NewSanitizer() *Sanitizer {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("id").Matching(regexp.MustCompile(`^[\p{L}\p{N}_-]+$`)).OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^[a-zA-Z0-9 _-]+$`)).OnElements("span", "pre", "code", "div")
	p.AllowAttrs("tabindex").Matching(regexp.MustCompile(`^-?[0-9]+$`)).OnElements("pre")
	return &Sanitizer{policy: p}
}

// Sanitize returns the fragment with disallowed elements and attributes removed.
func (s *Sanitizer) Sanitize(fragment string) string {
	return s.policy.Sanitize(fragment)
}
