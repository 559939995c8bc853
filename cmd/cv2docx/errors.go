package main

import (
	"errors"

	cv2docx "github.com/alnah/go-cv2docx"
	"github.com/alnah/go-cv2docx/internal/assets"
	"github.com/alnah/go-cv2docx/internal/config"
	"github.com/alnah/go-cv2docx/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrInvalidFlags     = errors.New("invalid flags")
	ErrMissingArgument  = errors.New("missing argument")
	ErrInvalidWorkers   = errors.New("invalid worker count")
	ErrReadTemplate     = errors.New("failed to read template file")
	ErrReadData         = errors.New("failed to read data file")
	ErrReadCSS          = errors.New("failed to read CSS file")
	ErrReadHTML         = errors.New("failed to read HTML file")
	ErrWriteOutput      = errors.New("failed to write output")
	ErrOutputExists     = errors.New("output file already exists")
	ErrConversionFailed = errors.New("conversion failed")
)

// hintFor returns an actionable hint for err, or "" when none applies.
func hintFor(err error) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.UserDir())
	case errors.Is(err, assets.ErrTemplateSetNotFound):
		return hints.ForTemplateSetNotFound(assets.NewEmbeddedLoader().Names())
	case errors.Is(err, cv2docx.ErrUnknownVariable):
		return hints.ForUnknownVariable()
	case errors.Is(err, cv2docx.ErrInvalidData):
		return hints.ForDataSyntax()
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}
