package main

// Notes:
// - Test infrastructure shared by the command tests: an Environment backed
//   by buffers, a fixed clock and a fake working directory.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Environment
// ---------------------------------------------------------------------------

var fixedNow = time.Date(2025, time.November, 16, 9, 0, 0, 0, time.UTC)

type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	vars   map[string]string
}

// newTestEnv returns an Environment whose working directory is dir.
func newTestEnv(dir string) *testEnv {
	te := &testEnv{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
		vars:   map[string]string{},
	}
	te.Environment = &Environment{
		Now:    func() time.Time { return fixedNow },
		Stdout: te.stdout,
		Stderr: te.stderr,
		Getenv: func(k string) string { return te.vars[k] },
		Getwd:  func() (string, error) { return dir, nil },
	}
	return te
}

// run invokes runMain with "campdoc" prepended.
func (te *testEnv) run(args ...string) int {
	return runMain(context.Background(), append([]string{"campdoc"}, args...), te.Environment)
}

// writeFile writes content under dir and returns the full path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(p), 0o750); err != nil {
		t.Fatalf("failed to create dir for %s: %v", name, err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return p
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

const reportMarkdown = "# 프로젝트 개요\n\n| 항목 | 값 |\n|---|---|\n| 버전 | 0.0.1 |\n\n```java\nclass A {}\n```\n"

const apiMarkdown = "[TOC]\n\n# 사용자 API\n\n- GET /api/v1/users 권한: Public\n- DELETE /api/v1/users/{id} 권한: OWNER or ADMIN\n"
