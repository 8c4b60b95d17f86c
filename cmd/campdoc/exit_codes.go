package main

import (
	"errors"
	"os"

	"github.com/campstation/campdoc"
	"github.com/campstation/campdoc/internal/config"
)

// Exit codes for the campdoc CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteHTML) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, campdoc.ErrUnknownProfile) ||
		errors.Is(err, campdoc.ErrInvalidDate) ||
		errors.Is(err, campdoc.ErrInvalidTOCDepth) ||
		errors.Is(err, campdoc.ErrStyleNotFound) ||
		errors.Is(err, campdoc.ErrTemplateSetNotFound) ||
		errors.Is(err, campdoc.ErrIncompleteTemplateSet) ||
		errors.Is(err, campdoc.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}
