package campdoc

// Notes:
// - Convert runs the real pipeline; it is pure and fast, so only the asset
//   loader is replaced where a test needs control over templates or failures
// - Structural assertions parse the page with x/net/html and use cascadia
//   selectors rather than matching markup strings

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// ---------------------------------------------------------------------------
// Helpers and Mocks
// ---------------------------------------------------------------------------

const sampleMarkdown = "# 프로젝트 개요\n\n" +
	"[TOC]\n\n" +
	"## 기술 스택\n\n" +
	"| 항목 | 값 |\n|---|---|\n| Java | 17 |\n\n" +
	"```java\nclass App {}\n```\n\n" +
	"## 사용자 API\n\n" +
	"- GET /api/v1/users 권한: Public\n" +
	"- DELETE /api/v1/users/{id} 권한: OWNER or ADMIN\n\n" +
	"## 사용자 API\n"

func newTestConverter(t *testing.T, opts ...Option) *Converter {
	t.Helper()

	conv, err := NewConverter(opts...)
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	return conv
}

func convertProfile(t *testing.T, conv *Converter, p Profile, markdown string) *Result {
	t.Helper()

	result, err := conv.Convert(context.Background(), p.Input(markdown))
	if err != nil {
		t.Fatalf("Convert(%s) error = %v", p.Name, err)
	}
	return result
}

func queryAll(t *testing.T, page []byte, sel string) []*html.Node {
	t.Helper()

	doc, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		t.Fatalf("html.Parse() error = %v", err)
	}
	return cascadia.QueryAll(doc, cascadia.MustCompile(sel))
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
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

type mockAssetLoader struct {
	styles   map[string]string
	sets     map[string]*TemplateSet
	panicMsg string

	mu        sync.Mutex
	loadCalls int
}

func (m *mockAssetLoader) LoadStyle(name string) (string, error) {
	if m.panicMsg != "" {
		panic(m.panicMsg)
	}
	css, ok := m.styles[name]
	if !ok {
		return "", ErrStyleNotFound
	}
	return css, nil
}

func (m *mockAssetLoader) LoadTemplateSet(name string) (*TemplateSet, error) {
	m.mu.Lock()
	m.loadCalls++
	m.mu.Unlock()

	ts, ok := m.sets[name]
	if !ok {
		return nil, ErrTemplateSetNotFound
	}
	return ts, nil
}

func minimalLoader() *mockAssetLoader {
	return &mockAssetLoader{
		styles: map[string]string{"report": "body{}"},
		sets: map[string]*TemplateSet{
			"report": NewTemplateSet("report",
				`<!DOCTYPE html><html lang="{{.Lang}}"><head><title>{{.Title}}</title><style>{{.CSS}}</style></head><body>{{.Content}}<script>{{.Script}}</script></body></html>`,
				"var x = 1;"),
		},
	}
}

// ---------------------------------------------------------------------------
// TestValidateInput
// ---------------------------------------------------------------------------

func TestValidateInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   Input
		wantErr error
	}{
		{name: "valid", input: Input{Markdown: "# x"}},
		{name: "empty markdown", input: Input{}},
		{name: "whitespace markdown", input: Input{Markdown: " \n\t"}},
		{
			name:    "invalid TOC when enabled",
			input:   Input{Markdown: "x", Features: Features{TOC: true}, TOC: &TOC{MinDepth: 5, MaxDepth: 2}},
			wantErr: ErrInvalidTOCDepth,
		},
		{
			name:  "invalid TOC ignored when disabled",
			input: Input{Markdown: "x", TOC: &TOC{MinDepth: 5, MaxDepth: 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateInput(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("validateInput() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("validateInput() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestConvert - Built-in Profiles
// ---------------------------------------------------------------------------

func TestConvert_ProfilesProduceStructure(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t)

	for _, p := range Profiles() {
		t.Run(p.Name, func(t *testing.T) {
			t.Parallel()

			page := convertProfile(t, conv, p, sampleMarkdown).HTML

			for _, sel := range []string{
				"html[lang=ko] > head > style",
				"button.print-button.no-print",
				"table td",
				"pre > code",
				"h1[id]",
				"h2[id]",
				"div.footer p",
				"body > script",
			} {
				if len(queryAll(t, page, sel)) == 0 {
					t.Errorf("no match for %q", sel)
				}
			}

			titles := queryAll(t, page, "title")
			if len(titles) != 1 || nodeText(titles[0]) != p.Metadata.Title {
				t.Errorf("title = %v, want %q", titles, p.Metadata.Title)
			}
			if got := len(queryAll(t, page, "div.footer p")); got != len(p.Metadata.Footer) {
				t.Errorf("footer lines = %d, want %d", got, len(p.Metadata.Footer))
			}
			if !bytes.Contains(page, []byte(p.Metadata.Heading)) {
				t.Errorf("page missing heading %q", p.Metadata.Heading)
			}
		})
	}
}

func TestConvert_WellFormedShell(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t)
	inputs := []string{"", "\n\n", "   ", "x", sampleMarkdown, "<div>unclosed", "```\nno end", "| a |\n|---|\n"}

	for _, p := range Profiles() {
		for _, md := range inputs {
			page := string(convertProfile(t, conv, p, md).HTML)

			if !strings.HasPrefix(page, "<!DOCTYPE html>") {
				t.Errorf("%s: page does not start with doctype", p.Name)
			}
			for _, tag := range []string{"<html", "<head>", "</head>", "<body>", "</body>", "</html>"} {
				if n := strings.Count(page, tag); n != 1 {
					t.Errorf("%s %q: %s appears %d times", p.Name, md, tag, n)
				}
			}
		}
	}
}

func TestConvert_Deterministic(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t)
	for _, p := range Profiles() {
		first := convertProfile(t, conv, p, sampleMarkdown).HTML
		second := convertProfile(t, newTestConverter(t), p, sampleMarkdown).HTML
		if !bytes.Equal(first, second) {
			t.Errorf("%s: output differs between runs", p.Name)
		}
	}
}

func TestConvert_ReportHeader(t *testing.T) {
	t.Parallel()

	page := string(convertProfile(t, newTestConverter(t), ReportProfile(), "# x").HTML)
	for _, want := range []string{
		"<strong>생성일:</strong> 2025-11-16",
		"<strong>프로젝트:</strong> CampStation Backend API Server",
		"<strong>버전:</strong> 0.0.1-SNAPSHOT",
		"📄 PDF로 저장",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("report page missing %q", want)
		}
	}
}

func TestConvert_APIHeader(t *testing.T) {
	t.Parallel()

	page := string(convertProfile(t, newTestConverter(t), APIProfile(), "# x").HTML)
	for _, want := range []string{
		"<strong>작성일:</strong> 2025-11-16",
		"<strong>API 버전:</strong> v1",
		"<strong>Base URL:</strong> http://localhost:8080/api/v1",
		"Total Controllers: 17 | Total Endpoints: 100+",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("api page missing %q", want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestConvert - Features
// ---------------------------------------------------------------------------

func TestConvert_EndpointDecoration(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t)
	md := "- GET /api/v1/users 권한: Public\n"

	api := convertProfile(t, conv, APIProfile(), md).HTML
	if !bytes.Contains(api, []byte(`<span class="method get">GET</span><code>/api/v1/users</code>`)) {
		t.Errorf("api page missing method badge")
	}
	if !bytes.Contains(api, []byte(`권한: <span class="badge public">Public</span>`)) {
		t.Errorf("api page missing permission badge")
	}

	report := convertProfile(t, conv, ReportProfile(), md).HTML
	if len(queryAll(t, report, "span.method")) != 0 {
		t.Error("report page should not decorate endpoints")
	}
}

func TestConvert_TOCEntriesUndecorated(t *testing.T) {
	t.Parallel()

	md := "## GET /api/v1/users\n\n- GET /api/v1/users 권한: ADMIN\n"
	page := convertProfile(t, newTestConverter(t), APIProfile(), md).HTML

	links := queryAll(t, page, "div.toc a")
	if len(links) != 1 {
		t.Fatalf("TOC has %d links, want 1", len(links))
	}
	if got := nodeText(links[0]); got != "GET /api/v1/users" {
		t.Errorf("TOC link text = %q, want %q", got, "GET /api/v1/users")
	}
	if n := len(queryAll(t, page, "div.toc span, div.toc code")); n != 0 {
		t.Errorf("TOC contains %d badge elements, want 0", n)
	}
	if n := len(queryAll(t, page, "li > span.method.get")); n != 1 {
		t.Errorf("body has %d method badges, want 1", n)
	}
	if n := len(queryAll(t, page, "li > span.badge.admin")); n != 1 {
		t.Errorf("body has %d permission badges, want 1", n)
	}
}

func TestConvert_TOCLinksResolve(t *testing.T) {
	t.Parallel()

	page := convertProfile(t, newTestConverter(t), APIProfile(), sampleMarkdown).HTML

	ids := make(map[string]bool)
	for _, h := range queryAll(t, page, "h1[id], h2[id], h3[id], h4[id], h5[id], h6[id]") {
		ids[getAttr(h, "id")] = true
	}

	links := queryAll(t, page, "div.toc a")
	if len(links) != 4 {
		t.Fatalf("TOC has %d links, want 4", len(links))
	}
	for _, a := range links {
		href := getAttr(a, "href")
		if !strings.HasPrefix(href, "#") || !ids[href[1:]] {
			t.Errorf("TOC link %q has no matching heading", href)
		}
	}
	if ids["사용자-api"] && !ids["사용자-api-2"] {
		t.Error("duplicate heading did not get a suffixed id")
	}
	if bytes.Contains(page, []byte("[TOC]")) {
		t.Error("TOC marker left in page")
	}
}

func TestConvert_Headings(t *testing.T) {
	t.Parallel()

	result := convertProfile(t, newTestConverter(t), ReportProfile(), sampleMarkdown)

	want := []Heading{
		{Level: 1, ID: "프로젝트-개요", Text: "프로젝트 개요"},
		{Level: 2, ID: "기술-스택", Text: "기술 스택"},
		{Level: 2, ID: "사용자-api", Text: "사용자 API"},
		{Level: 2, ID: "사용자-api-2", Text: "사용자 API"},
	}
	if len(result.Headings) != len(want) {
		t.Fatalf("got %d headings, want %d: %v", len(result.Headings), len(want), result.Headings)
	}
	for i := range want {
		if result.Headings[i] != want[i] {
			t.Errorf("heading %d = %+v, want %+v", i, result.Headings[i], want[i])
		}
	}
}

func TestConvert_MetadataEscaped(t *testing.T) {
	t.Parallel()

	input := ReportProfile().Input("# x")
	input.Metadata.Title = "<script>alert(1)</script>"
	input.Metadata.Project = `"><img src=x onerror=alert(2)>`
	input.Metadata.Footer = []string{"<b>bold</b>"}

	result, err := newTestConverter(t).Convert(context.Background(), input)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	page := string(result.HTML)
	for _, bad := range []string{"<script>alert(1)", "<img src=x", "<b>bold</b>"} {
		if strings.Contains(page, bad) {
			t.Errorf("page contains unescaped %q", bad)
		}
	}
	if !strings.Contains(page, "&lt;script&gt;alert(1)&lt;/script&gt;") {
		t.Error("escaped title not found")
	}
}

func TestConvert_Sanitize(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t)
	md := "# 제목\n\n<script>alert('x')</script>\n\n<p onclick=\"steal()\">text</p>\n"

	input := APIProfile().Input(md)
	raw, err := conv.Convert(context.Background(), input)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !bytes.Contains(raw.HTML, []byte("alert('x')")) {
		t.Error("raw HTML should pass through without sanitizing")
	}

	input.Features.Sanitize = true
	clean, err := conv.Convert(context.Background(), input)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	for _, bad := range []string{"alert('x')", "onclick", "steal()"} {
		if bytes.Contains(clean.HTML, []byte(bad)) {
			t.Errorf("sanitized page still contains %q", bad)
		}
	}
	if len(queryAll(t, clean.HTML, "div.toc a")) == 0 {
		t.Error("sanitizing should not remove the TOC")
	}
}

func TestConvert_FeatureToggles(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t)
	md := "# Title\n\n| a |\n|---|\n| 1 |\n\n```go\nfunc f() {}\n```\n"

	tests := []struct {
		name     string
		features Features
		present  []string
		absent   []string
	}{
		{
			name:     "everything off",
			features: Features{},
			present:  []string{"h1"},
			absent:   []string{"h1[id]", "table", "pre > code"},
		},
		{
			name:     "tables and code",
			features: Features{Tables: true, FencedCode: true},
			present:  []string{"table", "pre > code.language-go"},
			absent:   []string{"pre.chroma"},
		},
		{
			name:     "highlight",
			features: Features{FencedCode: true, Highlight: true},
			present:  []string{"pre.chroma > code"},
			absent:   []string{"pre.chroma .ln"},
		},
		{
			name:     "line numbers",
			features: Features{FencedCode: true, Highlight: true, LineNumbers: true},
			present:  []string{"pre.chroma .ln"},
		},
		{
			name:     "line numbers need highlight",
			features: Features{FencedCode: true, LineNumbers: true},
			present:  []string{"pre > code"},
			absent:   []string{".ln"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := conv.Convert(context.Background(), Input{Markdown: md, Features: tt.features})
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			for _, sel := range tt.present {
				if len(queryAll(t, result.HTML, sel)) == 0 {
					t.Errorf("no match for %q", sel)
				}
			}
			for _, sel := range tt.absent {
				if len(queryAll(t, result.HTML, sel)) != 0 {
					t.Errorf("unexpected match for %q", sel)
				}
			}
		})
	}
}

func TestConvert_CSSOrder(t *testing.T) {
	t.Parallel()

	input := ReportProfile().Input("```go\nx := 1\n```")
	input.CSS = "/* user */ body { color: red; }"

	result, err := newTestConverter(t).Convert(context.Background(), input)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	page := string(result.HTML)
	chroma := strings.Index(page, ".chroma")
	style := strings.Index(page, ".print-button")
	user := strings.Index(page, "/* user */")
	if chroma < 0 || style < 0 || user < 0 {
		t.Fatalf("missing CSS part: chroma=%d style=%d user=%d", chroma, style, user)
	}
	if !(chroma < style && style < user) {
		t.Errorf("CSS order = chroma %d, style %d, user %d; want ascending", chroma, style, user)
	}
}

func TestConvert_AutoDate(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2026, time.March, 5, 9, 0, 0, 0, time.UTC)
	conv := newTestConverter(t, WithClock(func() time.Time { return fixed }))

	tests := []struct {
		date string
		want string
	}{
		{date: "auto", want: "2026-03-05"},
		{date: "auto:korean", want: "2026년 3월 5일"},
		{date: "2025-11-16", want: "2025-11-16"},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			t.Parallel()

			input := APIProfile().Input("# x")
			input.Metadata.Date = tt.date
			result, err := conv.Convert(context.Background(), input)
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if !bytes.Contains(result.HTML, []byte("<strong>작성일:</strong> "+tt.want)) {
				t.Errorf("page missing date %q", tt.want)
			}
		})
	}
}

func TestConvert_EmptyDateOmitted(t *testing.T) {
	t.Parallel()

	input := APIProfile().Input("# x")
	input.Metadata.Date = ""
	input.Metadata.BaseURL = ""

	result, err := newTestConverter(t).Convert(context.Background(), input)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	for _, label := range []string{"작성일", "Base URL"} {
		if bytes.Contains(result.HTML, []byte(label)) {
			t.Errorf("page shows %q for empty value", label)
		}
	}
}

func TestConvert_RelativePaths(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	out := filepath.Join(src, "site")

	input := ReportProfile().Input("![logo](images/logo.png)")
	input.SourceDir = src
	input.OutputDir = out

	result, err := newTestConverter(t).Convert(context.Background(), input)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	imgs := queryAll(t, result.HTML, "img")
	if len(imgs) != 1 || getAttr(imgs[0], "src") != "../images/logo.png" {
		t.Errorf("img src = %v, want ../images/logo.png", imgs)
	}
}

// ---------------------------------------------------------------------------
// TestConvert - Errors
// ---------------------------------------------------------------------------

func TestConvert_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   Input
		wantErr error
	}{
		{
			name:    "unknown template set",
			input:   Input{Markdown: "x", TemplateSet: "nope", Style: "report"},
			wantErr: ErrTemplateSetNotFound,
		},
		{
			name:    "unknown style",
			input:   Input{Markdown: "x", Style: "nope"},
			wantErr: ErrStyleNotFound,
		},
		{
			name:    "invalid style name",
			input:   Input{Markdown: "x", Style: ".."},
			wantErr: ErrStyleNotFound,
		},
		{
			name:    "style file missing",
			input:   Input{Markdown: "x", Style: "./does-not-exist.css"},
			wantErr: os.ErrNotExist,
		},
		{
			name:    "invalid date",
			input:   Input{Markdown: "x", Metadata: Metadata{Date: "auto:["}},
			wantErr: ErrInvalidDate,
		},
	}

	conv := newTestConverter(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := conv.Convert(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Convert() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConvert_InvalidPageTemplate(t *testing.T) {
	t.Parallel()

	loader := minimalLoader()
	loader.sets["report"] = NewTemplateSet("report", "{{.Title", "")

	_, err := newTestConverter(t, WithAssetLoader(loader)).Convert(context.Background(), Input{Markdown: "x"})
	if !errors.Is(err, ErrPageRender) {
		t.Errorf("Convert() error = %v, want ErrPageRender", err)
	}
}

func TestConvert_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestConverter(t).Convert(ctx, APIProfile().Input(sampleMarkdown))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Convert() error = %v, want context.Canceled", err)
	}
}

func TestConvert_RecoversPanic(t *testing.T) {
	t.Parallel()

	loader := minimalLoader()
	loader.panicMsg = "loader exploded"

	_, err := newTestConverter(t, WithAssetLoader(loader)).Convert(context.Background(), Input{Markdown: "x"})
	if err == nil || !strings.Contains(err.Error(), "loader exploded") {
		t.Errorf("Convert() error = %v, want recovered panic", err)
	}
}

// ---------------------------------------------------------------------------
// TestNewConverter / Options
// ---------------------------------------------------------------------------

func TestNewConverter_InvalidAssetPath(t *testing.T) {
	t.Parallel()

	_, err := NewConverter(WithAssetPath(filepath.Join(t.TempDir(), "missing")))
	if !errors.Is(err, ErrInvalidAssetPath) {
		t.Errorf("NewConverter() error = %v, want ErrInvalidAssetPath", err)
	}
}

func TestWithAssetPath_OverridesStyle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "styles"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "styles", "api.css"), []byte("/* custom api */"), 0o644); err != nil {
		t.Fatal(err)
	}

	result := convertProfile(t, newTestConverter(t, WithAssetPath(dir)), APIProfile(), "# x")
	if !bytes.Contains(result.HTML, []byte("/* custom api */")) {
		t.Error("custom style not used")
	}
	if len(queryAll(t, result.HTML, "button.print-button")) != 1 {
		t.Error("embedded template set should still be used")
	}
}

func TestWithAssetLoader(t *testing.T) {
	t.Parallel()

	loader := minimalLoader()
	conv := newTestConverter(t, WithAssetLoader(loader), WithAssetPath("/ignored/when/loader/set"))

	for i := 0; i < 3; i++ {
		result, err := conv.Convert(context.Background(), Input{Markdown: "# hi"})
		if err != nil {
			t.Fatalf("Convert() error = %v", err)
		}
		if !bytes.Contains(result.HTML, []byte("var x = 1;")) {
			t.Error("script from custom template set missing")
		}
	}
	if loader.loadCalls != 1 {
		t.Errorf("LoadTemplateSet called %d times, want 1", loader.loadCalls)
	}
}

func TestWithHighlightStyle(t *testing.T) {
	t.Parallel()

	md := "```go\nfunc f() {}\n```"
	features := Features{FencedCode: true, Highlight: true}

	a, err := newTestConverter(t).Convert(context.Background(), Input{Markdown: md, Features: features})
	if err != nil {
		t.Fatal(err)
	}
	b, err := newTestConverter(t, WithHighlightStyle("github")).Convert(context.Background(), Input{Markdown: md, Features: features})
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(a.HTML, b.HTML) {
		t.Error("highlight style had no effect on the page")
	}
}

func TestWithClock_NilPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("WithClock(nil) did not panic")
		}
	}()
	WithClock(nil)
}

func TestConvert_ConcurrentUse(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t)
	want := convertProfile(t, conv, APIProfile(), sampleMarkdown).HTML

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := conv.Convert(context.Background(), APIProfile().Input(sampleMarkdown))
			if err != nil {
				errs <- err
				return
			}
			if !bytes.Equal(result.HTML, want) {
				errs <- errors.New("concurrent output differs")
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
