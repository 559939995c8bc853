package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	cv2docx "github.com/alnah/go-cv2docx"
	"github.com/alnah/go-cv2docx/internal/assets"
	"github.com/alnah/go-cv2docx/internal/config"
	"github.com/alnah/go-cv2docx/internal/dateutil"
	"github.com/alnah/go-cv2docx/internal/fileutil"
	"github.com/alnah/go-cv2docx/internal/logging"
)

// session holds what a command derives from its common flags: the merged
// configuration, the logger and the template set loader.
type session struct {
	cfg    *config.Config
	logger zerolog.Logger
	loader assets.AssetLoader
}

// newSession loads configuration with the precedence
// CLI flags > env vars > config file > defaults.
func newSession(common commonFlags, af assetFlags, env *Environment) (*session, error) {
	verbosity := common.verbose
	if common.quiet {
		verbosity = logging.Quiet
	}
	logger := logging.New(env.Stderr, verbosity, env.StderrTTY)
	warnUnknownEnvVars(logger, env.Environ())

	envCfg := loadEnvConfig(env.Getenv)

	cfg := config.DefaultConfig()
	name := common.config
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
		logger.Debug().Str("config", name).Msg("configuration loaded")
	}

	applyEnvConfig(envCfg, cfg)
	mergeAssetFlags(af, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	loader, err := assets.NewAssetResolver(cfg.Template.Dir)
	if err != nil {
		return nil, fmt.Errorf("template directory: %w", err)
	}

	return &session{cfg: cfg, logger: logger, loader: loader}, nil
}

// converter creates a Converter configured from the session.
func (s *session) converter() (*cv2docx.Converter, error) {
	return cv2docx.NewConverter(
		cv2docx.WithConfig(s.cfg),
		cv2docx.WithLogger(s.logger),
	)
}

// templateSource is a resolved template with its stylesheet.
type templateSource struct {
	Name     string
	Template string
	Format   cv2docx.Format
	CSS      string
}

// resolveTemplate loads the template named by the flags. A value that looks
// like a path, or names an existing file, is read from disk; anything else
// is a template set name. An empty value selects the configured set.
// Format priority: --format > file extension or set > config.
func (s *session) resolveTemplate(tf templateFlags) (*templateSource, error) {
	src := &templateSource{}
	format := tf.format

	name := tf.template
	if name == "" {
		name = s.cfg.Template.Set
	}

	if name != "" && (fileutil.IsFilePath(name) || fileutil.FileExists(name)) {
		content, err := os.ReadFile(name) // #nosec G304 -- user-provided path
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadTemplate, err)
		}
		src.Name = name
		src.Template = string(content)
		if format == "" {
			format = formatFromExt(name)
		}
		if format == "" {
			format = s.cfg.Template.Format
		}
	} else {
		set, err := s.loader.LoadTemplateSet(name)
		if err != nil {
			return nil, err
		}
		src.Name = set.Name
		src.Template = set.Template
		src.CSS = set.Style
		if format == "" {
			format = set.Format
		}
	}

	f, err := cv2docx.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	src.Format = f

	if tf.css != "" {
		css, err := readCSS(tf.css)
		if err != nil {
			return nil, err
		}
		src.CSS = css
	}
	if tf.noStyle {
		src.CSS = ""
	}

	s.logger.Debug().Str("template", src.Name).Str("format", string(src.Format)).
		Int("css_bytes", len(src.CSS)).Msg("template resolved")
	return src, nil
}

// formatFromExt maps template file extensions to formats. Unknown
// extensions return "".
func formatFromExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return string(cv2docx.FormatMarkdown)
	case ".html", ".htm":
		return string(cv2docx.FormatHTML)
	}
	return ""
}

func readCSS(path string) (string, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadCSS, err)
	}
	return string(content), nil
}

// dateFormat returns the format dates of data files are written in.
// Priority: --date-format > config data.dateFormat.
func (s *session) dateFormat(tf templateFlags) (string, error) {
	if tf.dateFormat == "" {
		return s.cfg.Data.DateFormat, nil
	}
	if _, err := dateutil.Layout(tf.dateFormat); err != nil {
		return "", fmt.Errorf("%w: --date-format: %w", ErrInvalidFlags, err)
	}
	return tf.dateFormat, nil
}

// readData reads and decodes a data file. An empty dateFormat keeps ISO
// dates.
func readData(path, dateFormat string) (map[string]any, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadData, err)
	}
	return cv2docx.DecodeData(path, content, cv2docx.WithDateFormat(dateFormat))
}

// logMisses reports unresolved template constructs as warnings.
func logMisses(logger zerolog.Logger, file string, misses []cv2docx.Miss) {
	for _, m := range misses {
		kind := "placeholder"
		if m.Loop {
			kind = "loop"
		}
		logger.Warn().Str("file", file).Str(kind, m.Text).
			Int("line", m.Line).Int("column", m.Column).Str("reason", m.Reason).
			Msg("unresolved " + kind)
	}
}

// documentPath returns where the document for input is written: outDir when
// set, the directory of input otherwise.
func documentPath(input, outDir string) string {
	name := fileutil.ReplaceExt(filepath.Base(input), ".docx")
	if outDir == "" {
		outDir = filepath.Dir(input)
	}
	return filepath.Join(outDir, name)
}

// writeOutput writes data to path, creating missing directories.
func writeOutput(path string, data []byte) error {
	if err := fileutil.WriteFile(path, data); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}

// flagError wraps a pflag parse error so it maps to the usage exit code.
func flagError(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidFlags, err)
}
