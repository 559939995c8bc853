package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
)

//go:embed sets
var sets embed.FS

//go:embed samples
var samples embed.FS

// Sample data file names.
const (
	// SampleCandidate is a filled-in candidate profile.
	SampleCandidate = "candidate.yaml"
	// SampleSkeleton is the empty structure editors start from.
	SampleSkeleton = "skeleton.json"
)

// EmbeddedLoader loads template sets from the embedded filesystem.
// Implements AssetLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadTemplateSet loads a built-in template set by name.
func (e *EmbeddedLoader) LoadTemplateSet(name string) (*TemplateSet, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}
	return readSet(name, func(file string) ([]byte, error) {
		return sets.ReadFile(path.Join("sets", name, file))
	})
}

// Names lists the built-in template sets in lexical order.
func (e *EmbeddedLoader) Names() []string {
	entries, err := fs.ReadDir(sets, "sets")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, ent := range entries {
		if ent.IsDir() {
			names = append(names, ent.Name())
		}
	}
	sort.Strings(names)
	return names
}

// LoadSample returns the embedded sample data file with the given name.
func LoadSample(name string) ([]byte, error) {
	data, err := samples.ReadFile(path.Join("samples", name))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrSampleNotFound, name)
	}
	return data, nil
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
