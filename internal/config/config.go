package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/alecthomas/chroma/v2/styles"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/alnah/go-cv2docx/internal/dateutil"
	"github.com/alnah/go-cv2docx/internal/fileutil"
	"github.com/alnah/go-cv2docx/internal/yamlutil"
)

// AppName names the per-user configuration directory.
const AppName = "go-cv2docx"

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrOutOfRange      = errors.New("value out of range")
	ErrInvalidValue    = errors.New("invalid value")
)

// Field length limits.
const (
	MaxFontLength  = 64
	MaxSetLength   = 64
	MaxStyleLength = 64
	MaxPathLength  = 4096
)

// Numeric bounds. Zero always means "use the default".
const (
	MinFontSize    = 2   // half-points (1pt)
	MaxFontSize    = 400 // half-points (200pt)
	MinLineSpacing = 120 // half a line
	MaxLineSpacing = 720 // three lines
	MaxImageSide   = 4000
	MaxWorkers     = 32
)

// Template formats accepted by template.format.
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

// Config holds all configuration for document generation.
type Config struct {
	Document DocumentConfig `yaml:"document" toml:"document"`
	Template TemplateConfig `yaml:"template" toml:"template"`
	Assets   AssetsConfig   `yaml:"assets" toml:"assets"`
	Images   ImagesConfig   `yaml:"images" toml:"images"`
	Output   OutputConfig   `yaml:"output" toml:"output"`
	Data     DataConfig     `yaml:"data" toml:"data"`
	Workers  int            `yaml:"workers" toml:"workers"` // 0 = automatic
}

// DocumentConfig defines the global paragraph style of generated documents.
type DocumentConfig struct {
	Font        string `yaml:"font" toml:"font"`               // default "Arial"
	Size        int    `yaml:"size" toml:"size"`               // half-points, default 32
	LineSpacing int    `yaml:"lineSpacing" toml:"lineSpacing"` // 240ths of a line, default 240
}

// TemplateConfig defines how templates are found and interpreted.
type TemplateConfig struct {
	Set            string `yaml:"set" toml:"set"`                       // template set name (default "default")
	Dir            string `yaml:"dir" toml:"dir"`                       // directory of custom sets (empty = embedded only)
	Format         string `yaml:"format" toml:"format"`                 // "html" or "markdown" for template files
	HighlightStyle string `yaml:"highlightStyle" toml:"highlightStyle"` // chroma style for Markdown code fences
}

// AssetsConfig defines where image sources are resolved.
type AssetsConfig struct {
	Root string `yaml:"root" toml:"root"` // directory "/"-rooted image sources live under
}

// ImagesConfig defines the extent images are embedded at.
type ImagesConfig struct {
	Width  int `yaml:"width" toml:"width"`   // pixels, default 500
	Height int `yaml:"height" toml:"height"` // pixels, default 350
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir" toml:"defaultDir"` // Default output directory (empty = same as source)
}

// DataConfig defines how decoded data values are presented.
type DataConfig struct {
	DateFormat string `yaml:"dateFormat" toml:"dateFormat"` // preset or tokens like "MMM YYYY", default ISO
}

// Validate checks field lengths, numeric bounds and enumerations.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	lengths := []struct {
		field string
		value string
		max   int
	}{
		{"document.font", c.Document.Font, MaxFontLength},
		{"template.set", c.Template.Set, MaxSetLength},
		{"template.dir", c.Template.Dir, MaxPathLength},
		{"template.highlightStyle", c.Template.HighlightStyle, MaxStyleLength},
		{"assets.root", c.Assets.Root, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"data.dateFormat", c.Data.DateFormat, dateutil.MaxDateFormatLength},
	}
	for _, l := range lengths {
		if err := validateFieldLength(l.field, l.value, l.max); err != nil {
			return err
		}
	}

	ranges := []struct {
		field    string
		value    int
		min, max int
	}{
		{"document.size", c.Document.Size, MinFontSize, MaxFontSize},
		{"document.lineSpacing", c.Document.LineSpacing, MinLineSpacing, MaxLineSpacing},
		{"images.width", c.Images.Width, 1, MaxImageSide},
		{"images.height", c.Images.Height, 1, MaxImageSide},
		{"workers", c.Workers, 1, MaxWorkers},
	}
	for _, r := range ranges {
		if err := validateRange(r.field, r.value, r.min, r.max); err != nil {
			return err
		}
	}

	switch strings.ToLower(c.Template.Format) {
	case "", FormatHTML, FormatMarkdown:
	default:
		return fmt.Errorf("%w: template.format %q (must be html or markdown)", ErrInvalidValue, c.Template.Format)
	}

	if s := c.Template.HighlightStyle; s != "" {
		if _, ok := styles.Registry[strings.ToLower(s)]; !ok {
			return fmt.Errorf("%w: template.highlightStyle %q is not a known style", ErrInvalidValue, s)
		}
	}

	if _, err := dateutil.Layout(c.Data.DateFormat); err != nil {
		return fmt.Errorf("%w: data.dateFormat: %w", ErrInvalidValue, err)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateRange accepts zero or a value in [lo, hi].
func validateRange(fieldName string, value, lo, hi int) error {
	if value != 0 && (value < lo || value > hi) {
		return fmt.Errorf("%w: %s must be between %d and %d, got %d", ErrOutOfRange, fieldName, lo, hi, value)
	}
	return nil
}

// DefaultConfig returns a configuration where every field selects the
// built-in default.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := Parse(data, filepath.Ext(configPath))
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes and validates configuration data. ext selects the syntax:
// ".toml" for TOML, anything else for YAML. Unknown fields are rejected.
func Parse(data []byte, ext string) (*Config, error) {
	var cfg Config
	if strings.EqualFold(ext, ".toml") {
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
		}
	} else if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// UserDir returns the per-user configuration directory searched by
// LoadConfig.
func UserDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// searchExtensions are tried in order for every search location.
var searchExtensions = []string{".yaml", ".yml", ".toml"}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries locations in order: current directory, $XDG_CONFIG_HOME/go-cv2docx/
func resolveConfigPath(name string) (string, error) {
	dirs := []string{"", UserDir()}
	triedPaths := make([]string, 0, len(searchExtensions)*len(dirs))

	for _, dir := range dirs {
		for _, ext := range searchExtensions {
			p := filepath.Join(dir, name+ext)
			if fileutil.FileExists(p) {
				return p, nil
			}
			triedPaths = append(triedPaths, p)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
