package pipeline

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/yuin/goldmark/ast"
	"golang.org/x/text/unicode/norm"
)

// fallbackSlug is used when a heading has no letters or digits.
const fallbackSlug = "section"

var (
	// linkTarget matches the "(url)" half of an inline link or image.
	linkTarget = regexp.MustCompile(`\]\([^)]*\)`)
	// hyphenRun collapses whitespace and hyphen runs in a slug.
	hyphenRun = regexp.MustCompile(`[-\s]+`)
)

// Slugify turns heading text into an anchor id.
//
// Accents are dropped after compatibility decomposition, anything other than
// letters, digits, '_', '-' and whitespace is removed, and the result is
// lower-cased with whitespace and hyphen runs collapsed to one '-'.
// Hangul and other scripts without combining marks are kept as written.
func Slugify(text string) string {
	var b strings.Builder
	for _, r := range norm.NFKD.String(text) {
		switch {
		case unicode.Is(unicode.Mn, r):
		case unicode.IsLetter(r), unicode.IsNumber(r), r == '_', r == '-', unicode.IsSpace(r):
			b.WriteRune(r)
		}
	}
	slug := strings.ToLower(strings.TrimSpace(norm.NFC.String(b.String())))
	return hyphenRun.ReplaceAllString(slug, "-")
}

// headingIDs implements parser.IDs with Slugify and per-document
// deduplication: repeats of "x" become "x-2", "x-3", ...
type headingIDs struct {
	used map[string]struct{}
}

func newHeadingIDs() *headingIDs {
	return &headingIDs{used: make(map[string]struct{})}
}

// Generate receives the raw Markdown of the heading line.
func (h *headingIDs) Generate(value []byte, _ ast.NodeKind) []byte {
	base := Slugify(linkTarget.ReplaceAllString(string(value), "]"))
	if base == "" {
		base = fallbackSlug
	}

	id := base
	for n := 2; h.taken(id); n++ {
		id = base + "-" + strconv.Itoa(n)
	}
	h.used[id] = struct{}{}
	return []byte(id)
}

func (h *headingIDs) Put(value []byte) {
	h.used[string(value)] = struct{}{}
}

func (h *headingIDs) taken(id string) bool {
	_, ok := h.used[id]
	return ok
}
