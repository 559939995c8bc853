package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrTemplateSetNotFound indicates the requested template set does not exist.
	ErrTemplateSetNotFound = errors.New("template set not found")

	// ErrIncompleteTemplateSet indicates the set directory has no template file.
	ErrIncompleteTemplateSet = errors.New("template set missing template")

	// ErrAmbiguousTemplateSet indicates the set has both an HTML and a Markdown template.
	ErrAmbiguousTemplateSet = errors.New("template set has more than one template")

	// ErrSampleNotFound indicates the requested sample data does not exist.
	ErrSampleNotFound = errors.New("sample not found")

	// ErrInvalidAssetName indicates the asset name contains invalid characters
	// such as path separators or traversal sequences.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath indicates the configured base path is not a valid directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrAssetRead indicates an I/O error occurred while reading an asset file.
	ErrAssetRead = errors.New("failed to read asset")

	// ErrPathTraversal indicates an attempt to access files outside the base path.
	ErrPathTraversal = errors.New("path traversal detected")
)
