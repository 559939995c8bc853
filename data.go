package cv2docx

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"

	"github.com/alnah/go-cv2docx/internal/datapath"
	"github.com/alnah/go-cv2docx/internal/dateutil"
	"github.com/alnah/go-cv2docx/internal/tmpl"
	"github.com/alnah/go-cv2docx/internal/yamlutil"
)

// DecodeOption configures DecodeData.
type DecodeOption func(*decodeConfig)

type decodeConfig struct {
	dateFormat string
}

// WithDateFormat sets how date values are written: a preset name ("iso",
// "european", "us", "long", "month", "short") or a token format such as
// "MMM YYYY". Values that carry a time of day keep RFC 3339.
func WithDateFormat(format string) DecodeOption {
	return func(c *decodeConfig) {
		c.dateFormat = format
	}
}

// DecodeData decodes a data tree from content. The extension of name picks
// the syntax: .yaml and .yml are read as YAML, .json must be valid JSON and
// is then read through the same decoder, .toml is read as TOML. The root must be a mapping. Dates and times become strings.
func DecodeData(name string, content []byte, opts ...DecodeOption) (map[string]any, error) {
	var cfg decodeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	layout, err := dateutil.Layout(cfg.dateFormat)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	var tree map[string]any
	ext := strings.ToLower(filepath.Ext(name))
	if ext == ".json" && !gjson.ValidBytes(content) {
		return nil, fmt.Errorf("%w: %s: malformed JSON", ErrInvalidData, name)
	}
	switch ext {
	case ".json", ".yaml", ".yml":
		t, err := yamlutil.UnmarshalTree(content)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidData, name, err)
		}
		tree = t
	case ".toml":
		if err := toml.Unmarshal(content, &tree); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidData, name, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q (want .json, .yaml, .yml or .toml)", ErrUnsupportedData, ext)
	}

	if tree == nil {
		tree = map[string]any{}
	}
	return normalizeTree(tree, layout).(map[string]any), nil
}

// normalizeTree rewrites decoder-specific scalar types into strings so the
// tree only holds the kinds templates understand. Dates use layout.
func normalizeTree(v any, layout string) any {
	switch x := v.(type) {
	case map[string]any:
		for k, child := range x {
			x[k] = normalizeTree(child, layout)
		}
		return x
	case []any:
		for i, child := range x {
			x[i] = normalizeTree(child, layout)
		}
		return x
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 && x.Nanosecond() == 0 {
			return x.Format(layout)
		}
		return x.Format(time.RFC3339)
	case toml.LocalDate:
		return x.AsTime(time.UTC).Format(layout)
	case toml.LocalTime:
		return x.String()
	case toml.LocalDateTime:
		return x.String()
	}
	return v
}

// Variable is one addressable value of a data tree.
type Variable struct {
	Path string
	Kind string // "scalar", "map" or "sequence"
	// Loop lists the sequences a template must loop over to reach the
	// value, outermost first.
	Loop []string
	// Snippet is the template text that inserts the value, wrapped in the
	// loops that reach it.
	Snippet string
}

// Variables lists every map field of tree, including the fields of sequence
// items. Keys are listed in sorted order, sequence items by index.
func Variables(tree any) []Variable {
	entries := datapath.Catalog(tree)
	out := make([]Variable, 0, len(entries))
	for _, e := range entries {
		out = append(out, Variable{
			Path:    e.Path.String(),
			Kind:    e.Kind.String(),
			Loop:    e.Loop,
			Snippet: tmpl.Snippet(e, true),
		})
	}
	return out
}

// Snippet returns the insertion snippet for path in tree, as listed by
// Variables. An unknown path returns an error wrapping ErrUnknownVariable.
func Snippet(tree any, path string) (string, error) {
	p, err := datapath.Parse(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnknownVariable, err)
	}
	want := p.String()
	for _, e := range datapath.Catalog(tree) {
		if e.Path.String() == want {
			return tmpl.Snippet(e, true), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVariable, path)
}

// TemplateVariables lists the distinct paths a template references, in order
// of first use. Paths inside loop bodies are relative to the loop item.
func TemplateVariables(template string) ([]string, error) {
	vars, err := tmpl.Variables(template)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplateSyntax, err)
	}
	return vars, nil
}
