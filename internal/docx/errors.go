package docx

import (
	"errors"
	"fmt"
)

// Sentinel errors for package assembly.
var (
	ErrPackage          = errors.New("document packaging failed")
	ErrUnknownBlock     = errors.New("unknown block type")
	ErrUnsupportedImage = errors.New("unsupported image")
)

// Packaging stages reported in PackageError.
const (
	StageDocument     = "document"
	StageMedia        = "media"
	StageStyles       = "styles"
	StageNumbering    = "numbering"
	StageSettings     = "settings"
	StageRelations    = "relationships"
	StageContentTypes = "content-types"
	StageArchive      = "archive"
)

// PackageError reports where package assembly failed. Block is the index of
// the offending block in the document, or -1 when the failure is not tied to
// a block.
type PackageError struct {
	Stage string
	Block int
	Err   error
}

func (e *PackageError) Error() string {
	if e.Block >= 0 {
		return fmt.Sprintf("%v: %s stage, block %d: %v", ErrPackage, e.Stage, e.Block, e.Err)
	}
	return fmt.Sprintf("%v: %s stage: %v", ErrPackage, e.Stage, e.Err)
}

func (e *PackageError) Unwrap() []error { return []error{ErrPackage, e.Err} }

func stageError(stage string, block int, err error) *PackageError {
	return &PackageError{Stage: stage, Block: block, Err: err}
}
