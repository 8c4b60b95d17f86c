// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// Sentinel errors for file utility operations.
var (
	ErrInvalidUTF8 = errors.New("file is not valid UTF-8")
	ErrIsDirectory = errors.New("path is a directory")
)

// utf8BOM is stripped from the start of text files.
const utf8BOM = "\uFEFF"

// ReadText reads a UTF-8 text file. A leading byte order mark is dropped.
// Errors from the filesystem are wrapped, so errors.Is(err, os.ErrNotExist)
// holds for a missing file.
func ReadText(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- caller-chosen input file
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s", ErrInvalidUTF8, path)
	}

	return strings.TrimPrefix(string(data), utf8BOM), nil
}

// WriteText writes content to path with 0644 permissions, replacing any
// existing file. Returns the number of bytes on disk after the write.
func WriteText(path, content string) (int64, error) {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil { // #nosec G306 -- generated HTML is meant to be shared
		return 0, fmt.Errorf("writing %s: %w", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("checking %s: %w", path, err)
	}
	return info.Size(), nil
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "report" -> false (name)
//   - "./custom.css" -> true (relative path)
//   - "/absolute/path.css" -> true (absolute)
//   - "C:\windows\path.css" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
