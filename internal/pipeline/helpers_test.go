package pipeline

import (
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// query parses content as a document and returns the nodes matching sel.
func query(t *testing.T, content, sel string) []*html.Node {
	t.Helper()

	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		t.Fatalf("html.Parse() error = %v", err)
	}
	matcher, err := cascadia.Compile(sel)
	if err != nil {
		t.Fatalf("cascadia.Compile(%q) error = %v", sel, err)
	}
	return cascadia.QueryAll(doc, matcher)
}

// attr returns the value of the named attribute, or "".
func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// textContent concatenates all text below n.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
