// Package dateutil resolves the date shown in a page header.
//
// A header date is either a literal ("2025-11-16") or a request for the
// current date: "auto" or "auto:FORMAT", where FORMAT uses the tokens
// YYYY, YY, MMMM, MMM, MM, M, DD, D, or one of the presets in Presets.
// Text inside square brackets is copied literally.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxFormatLength limits format string length.
const MaxFormatLength = 50

// DefaultFormat is used for a bare "auto".
const DefaultFormat = "YYYY-MM-DD"

// Presets are named shortcuts for common formats.
var Presets = map[string]string{
	"iso":    "YYYY-MM-DD",
	"korean": "YYYY년 M월 D일",
	"dotted": "YYYY.MM.DD",
	"long":   "MMMM D, YYYY",
}

// layoutTokens is ordered longest first so "MMMM" wins over "MM".
var layoutTokens = [...]struct{ token, layout string }{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// Layout translates a token format into a Go time layout.
func Layout(format string) (string, error) {
	switch {
	case format == "":
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	case len(format) > MaxFormatLength:
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxFormatLength)
	}

	var b strings.Builder
	rest := format
	for rest != "" {
		if rest[0] == '[' {
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return "", fmt.Errorf("%w: unclosed bracket in %q", ErrInvalidDateFormat, format)
			}
			b.WriteString(rest[1:end])
			rest = rest[end+1:]
			continue
		}

		n := 0
		for _, t := range layoutTokens {
			if strings.HasPrefix(rest, t.token) {
				b.WriteString(t.layout)
				n = len(t.token)
				break
			}
		}
		if n == 0 {
			b.WriteByte(rest[0])
			n = 1
		}
		rest = rest[n:]
	}
	return b.String(), nil
}

// Resolve returns value unchanged unless it is "auto" or "auto:FORMAT",
// in which case now is formatted accordingly.
func Resolve(value string, now time.Time) (string, error) {
	lower := strings.ToLower(value)
	if !strings.HasPrefix(lower, "auto") {
		return value, nil
	}

	format := DefaultFormat
	switch {
	case lower == "auto":
	case strings.HasPrefix(lower, "auto:") && len(value) > len("auto:"):
		format = value[len("auto:"):]
		if preset, ok := Presets[strings.ToLower(format)]; ok {
			format = preset
		}
	default:
		return "", fmt.Errorf("%w: %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
	}

	layout, err := Layout(format)
	if err != nil {
		return "", err
	}
	return now.Format(layout), nil
}
