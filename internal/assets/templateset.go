package assets

import (
	"errors"
	"fmt"
	"io/fs"
)

// Template formats, named after the file that holds the template.
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

// File names inside a template set directory.
const (
	htmlTemplateFile     = "template.html"
	markdownTemplateFile = "template.md"
	styleFile            = "style.css"
)

// DefaultTemplateSetName is the name of the built-in template set used when
// none is given.
const DefaultTemplateSetName = "default"

// TemplateSet is a CV template together with its stylesheet.
type TemplateSet struct {
	Name     string // Identifier (name or directory path)
	Template string // Template text
	Format   string // FormatHTML or FormatMarkdown
	Style    string // CSS, may be empty
}

// AssetLoader defines the contract for loading template sets.
// Implementations may load from embedded assets, filesystem, S3, database, etc.
type AssetLoader interface {
	// LoadTemplateSet loads a template set by name.
	// Returns ErrTemplateSetNotFound if the set doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplateSet(name string) (*TemplateSet, error)
}

// readSet assembles a set from the files read returns. read must report
// missing files with an error matching fs.ErrNotExist.
func readSet(name string, read func(file string) ([]byte, error)) (*TemplateSet, error) {
	htmlTmpl, htmlErr := read(htmlTemplateFile)
	mdTmpl, mdErr := read(markdownTemplateFile)
	style, styleErr := read(styleFile)

	for _, err := range []error{htmlErr, mdErr, styleErr} {
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrAssetRead, err)
		}
	}

	set := &TemplateSet{Name: name, Style: string(style)}
	switch {
	case htmlErr == nil && mdErr == nil:
		return nil, fmt.Errorf("%w: %q has both %s and %s", ErrAmbiguousTemplateSet, name, htmlTemplateFile, markdownTemplateFile)
	case htmlErr == nil:
		set.Template, set.Format = string(htmlTmpl), FormatHTML
	case mdErr == nil:
		set.Template, set.Format = string(mdTmpl), FormatMarkdown
	case styleErr == nil:
		return nil, fmt.Errorf("%w: %q has no %s or %s", ErrIncompleteTemplateSet, name, htmlTemplateFile, markdownTemplateFile)
	default:
		return nil, fmt.Errorf("%w: %q", ErrTemplateSetNotFound, name)
	}
	return set, nil
}
