package pipeline

import (
	"context"
	"errors"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	// endpointPattern matches "METHOD /api/v1/path".
	// Captures: 1=method, 2=path
	endpointPattern = regexp.MustCompile(`(GET|POST|PUT|DELETE|PATCH) (/api/v1/[^<\s]+)`)

	// permissionPattern matches a permission note. The combined
	// "OWNER or ADMIN" is listed first so it is not cut short at "OWNER".
	// Captures: 1=permission
	permissionPattern = regexp.MustCompile(`권한: (OWNER or ADMIN|Public|Authenticated|OWNER|ADMIN)`)
)

// permissionClasses maps a permission to its badge class.
var permissionClasses = map[string]string{
	"Public":         "public",
	"Authenticated":  "auth",
	"OWNER":          "owner",
	"OWNER or ADMIN": "owner",
	"ADMIN":          "admin",
}

// DecorateEndpoints marks up endpoint references inside list items:
// "GET /api/v1/users" becomes a method badge followed by the path in <code>,
// and "권한: ADMIN" gets a permission badge. Text outside <li> elements and
// all markup are copied unchanged.
func DecorateEndpoints(ctx context.Context, fragment string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	z := html.NewTokenizer(strings.NewReader(fragment))
	var buf strings.Builder
	buf.Grow(len(fragment))
	depth := 0

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if errors.Is(z.Err(), io.EOF) {
				return buf.String(), nil
			}
			return "", z.Err()
		}

		// copy before TagName, which may rewrite the buffer in place
		raw := string(z.Raw())
		switch tt {
		case html.StartTagToken:
			if isListItem(z) {
				depth++
			}
		case html.EndTagToken:
			if isListItem(z) && depth > 0 {
				depth--
			}
		case html.TextToken:
			if depth > 0 {
				raw = decorateText(raw)
			}
		}
		buf.WriteString(raw)
	}
}

func isListItem(z *html.Tokenizer) bool {
	name, _ := z.TagName()
	return string(name) == "li"
}

// decorateText applies the endpoint and permission rewrites to escaped text.
func decorateText(text string) string {
	text = endpointPattern.ReplaceAllStringFunc(text, func(m string) string {
		sub := endpointPattern.FindStringSubmatch(m)
		method, path := sub[1], sub[2]
		return `<span class="method ` + strings.ToLower(method) + `">` + method + `</span><code>` + path + `</code>`
	})
	return permissionPattern.ReplaceAllStringFunc(text, func(m string) string {
		perm := permissionPattern.FindStringSubmatch(m)[1]
		return `권한: <span class="badge ` + permissionClasses[perm] + `">` + perm + `</span>`
	})
}
