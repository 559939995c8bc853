package cv2docx

import (
	"github.com/rs/zerolog"

	"github.com/alnah/go-cv2docx/internal/config"
)

// Config is the on-disk configuration understood by WithConfig.
type Config = config.Config

// converterConfig holds Converter settings applied by options.
type converterConfig struct {
	logger         zerolog.Logger
	assetRoot      string
	defaults       Defaults
	imageWidth     int
	imageHeight    int
	highlightStyle string
	fileConfig     *config.Config
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger stages report misses and skipped elements to.
// Components log with a "component" field.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Converter) {
		c.cfg.logger = l
	}
}

// WithAssetRoot sets the directory that image sources starting with "/"
// resolve under. The default is "public".
func WithAssetRoot(dir string) Option {
	return func(c *Converter) {
		c.cfg.assetRoot = dir
	}
}

// WithDefaults sets the global paragraph style of generated documents.
func WithDefaults(d Defaults) Option {
	return func(c *Converter) {
		c.cfg.defaults = d
	}
}

// WithImageSize sets the pixel extent images are embedded at. Non-positive
// values keep the default of 500x350.
func WithImageSize(width, height int) Option {
	return func(c *Converter) {
		c.cfg.imageWidth = width
		c.cfg.imageHeight = height
	}
}

// WithHighlightStyle sets the chroma style used for code fences in Markdown
// templates.
func WithHighlightStyle(name string) Option {
	return func(c *Converter) {
		c.cfg.highlightStyle = name
	}
}

// WithConfig applies a loaded configuration. Options given after it
// override the fields they set. NewConverter validates cfg.
func WithConfig(cfg *Config) Option {
	return func(c *Converter) {
		if cfg == nil {
			return
		}
		c.cfg.fileConfig = cfg
		c.cfg.defaults = Defaults{
			Font:        cfg.Document.Font,
			Size:        cfg.Document.Size,
			LineSpacing: cfg.Document.LineSpacing,
		}
		if cfg.Assets.Root != "" {
			c.cfg.assetRoot = cfg.Assets.Root
		}
		c.cfg.imageWidth = cfg.Images.Width
		c.cfg.imageHeight = cfg.Images.Height
		if cfg.Template.HighlightStyle != "" {
			c.cfg.highlightStyle = cfg.Template.HighlightStyle
		}
	}
}
