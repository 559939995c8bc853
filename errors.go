package cv2docx

import (
	"errors"

	"github.com/alnah/go-cv2docx/internal/docx"
	"github.com/alnah/go-cv2docx/internal/pipeline"
	"github.com/alnah/go-cv2docx/internal/tmpl"
)

// Sentinel errors for library operations.
var (
	// ErrTemplateSyntax wraps a *ParseError for malformed loop markers.
	ErrTemplateSyntax = errors.New("template syntax error")
	ErrUnknownFormat  = errors.New("unknown template format")
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrHTMLParse      = errors.New("HTML parsing failed")

	// ErrDocxGeneration wraps a *PackageError; no partial output is returned.
	ErrDocxGeneration = errors.New("DOCX generation failed")

	// Data tree errors.
	ErrInvalidData     = errors.New("invalid data")
	ErrUnsupportedData = errors.New("unsupported data file format")
	ErrUnknownVariable = errors.New("unknown variable")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Template loop errors, matchable with errors.Is through ErrTemplateSyntax.
var (
	ErrUnclosedEach  = tmpl.ErrUnclosedEach
	ErrUnexpectedEnd = tmpl.ErrUnexpectedEnd
	ErrEmptyEachPath = tmpl.ErrEmptyEachPath
)

// ParseError reports the line and column of a malformed template construct.
type ParseError = tmpl.ParseError

// PackageError reports the packaging stage and block that failed.
type PackageError = docx.PackageError
