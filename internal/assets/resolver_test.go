package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestNewAssetResolver(t *testing.T) {
	t.Parallel()

	t.Run("embedded only", func(t *testing.T) {
		t.Parallel()

		r, err := NewAssetResolver("")
		if err != nil {
			t.Fatalf("NewAssetResolver() error = %v", err)
		}
		if r.HasCustomLoader() {
			t.Error("HasCustomLoader() = true, want false")
		}
	})

	t.Run("invalid custom path", func(t *testing.T) {
		t.Parallel()

		_, err := NewAssetResolver("/nonexistent/campdoc/assets")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewAssetResolver() error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestAssetResolver_Fallback(t *testing.T) {
	t.Parallel()

	dir := writeTree(t, map[string]string{
		"styles/report.css":          "/* custom report */",
		"templates/api/page.html":    "<html>custom</html>",
		"templates/broken/script.js": "x",
	})

	r, err := NewAssetResolver(dir)
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}
	if !r.HasCustomLoader() {
		t.Fatal("HasCustomLoader() = false, want true")
	}

	t.Run("custom style wins", func(t *testing.T) {
		t.Parallel()

		got, err := r.LoadStyle(ReportName)
		if err != nil {
			t.Fatalf("LoadStyle() error = %v", err)
		}
		if got != "/* custom report */" {
			t.Errorf("LoadStyle() = %q, want custom content", got)
		}
	})

	t.Run("falls back to embedded style", func(t *testing.T) {
		t.Parallel()

		got, err := r.LoadStyle(APIName)
		if err != nil {
			t.Fatalf("LoadStyle() error = %v", err)
		}
		if !strings.Contains(got, ".badge.public") {
			t.Error("expected embedded api style")
		}
	})

	t.Run("custom template set wins", func(t *testing.T) {
		t.Parallel()

		ts, err := r.LoadTemplateSet(APIName)
		if err != nil {
			t.Fatalf("LoadTemplateSet() error = %v", err)
		}
		if ts.Page != "<html>custom</html>" {
			t.Errorf("Page = %q, want custom", ts.Page)
		}
	})

	t.Run("falls back to embedded template set", func(t *testing.T) {
		t.Parallel()

		ts, err := r.LoadTemplateSet(ReportName)
		if err != nil {
			t.Fatalf("LoadTemplateSet() error = %v", err)
		}
		if !strings.Contains(ts.Page, "header-info") {
			t.Error("expected embedded report page")
		}
	})

	t.Run("incomplete custom set is not retried", func(t *testing.T) {
		t.Parallel()

		_, err := r.LoadTemplateSet("broken")
		if !errors.Is(err, ErrIncompleteTemplateSet) {
			t.Errorf("LoadTemplateSet() error = %v, want ErrIncompleteTemplateSet", err)
		}
	})
}
