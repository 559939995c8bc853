package main

import (
	"errors"
	"os"

	cv2docx "github.com/alnah/go-cv2docx"
	"github.com/alnah/go-cv2docx/internal/assets"
	"github.com/alnah/go-cv2docx/internal/config"
)

// Exit codes for the cv2docx CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error, failed batch items
	ExitUsage   = 2 // Invalid flags, config, template or data
	ExitIO      = 3 // File not found, permission denied
	ExitPackage = 4 // Document packaging errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Packaging errors (exit 4)
	if errors.Is(err, cv2docx.ErrDocxGeneration) {
		return ExitPackage
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, ErrMissingArgument) ||
		errors.Is(err, ErrInvalidWorkers) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrOutOfRange) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, cv2docx.ErrInvalidConfig) ||
		errors.Is(err, cv2docx.ErrTemplateSyntax) ||
		errors.Is(err, cv2docx.ErrUnknownFormat) ||
		errors.Is(err, cv2docx.ErrInvalidData) ||
		errors.Is(err, cv2docx.ErrUnsupportedData) ||
		errors.Is(err, cv2docx.ErrUnknownVariable) ||
		errors.Is(err, assets.ErrTemplateSetNotFound) ||
		errors.Is(err, assets.ErrIncompleteTemplateSet) ||
		errors.Is(err, assets.ErrAmbiguousTemplateSet) ||
		errors.Is(err, assets.ErrSampleNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, assets.ErrPathTraversal) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadTemplate) ||
		errors.Is(err, ErrReadData) ||
		errors.Is(err, ErrReadCSS) ||
		errors.Is(err, ErrReadHTML) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrOutputExists) ||
		errors.Is(err, assets.ErrAssetRead) {
		return ExitIO
	}

	return ExitGeneral
}
