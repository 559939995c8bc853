package main

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/alnah/go-cv2docx/internal/config"
)

// envPrefix starts every environment variable the CLI reads.
const envPrefix = "CV2DOCX_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring config files.
type envConfig struct {
	ConfigPath  string // CV2DOCX_CONFIG: config file name or path
	AssetRoot   string // CV2DOCX_ASSET_ROOT: image source root
	TemplateDir string // CV2DOCX_TEMPLATE_DIR: custom template sets
	OutputDir   string // CV2DOCX_OUTPUT_DIR: default output directory
	Workers     int    // CV2DOCX_WORKERS: parallel workers
}

// knownEnvVars lists valid CV2DOCX_* environment variables.
var knownEnvVars = map[string]bool{
	"CV2DOCX_CONFIG":       true,
	"CV2DOCX_ASSET_ROOT":   true,
	"CV2DOCX_TEMPLATE_DIR": true,
	"CV2DOCX_OUTPUT_DIR":   true,
	"CV2DOCX_WORKERS":      true,
}

// loadEnvConfig reads configuration from environment variables.
// Invalid numbers are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath:  getenv("CV2DOCX_CONFIG"),
		AssetRoot:   getenv("CV2DOCX_ASSET_ROOT"),
		TemplateDir: getenv("CV2DOCX_TEMPLATE_DIR"),
		OutputDir:   getenv("CV2DOCX_OUTPUT_DIR"),
	}

	if workers := getenv("CV2DOCX_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs a warning for every unrecognized CV2DOCX_*
// variable, catching typos like CV2DOCX_WORKER.
func warnUnknownEnvVars(logger zerolog.Logger, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			logger.Warn().Str("variable", name).Msg("unknown environment variable (typo?)")
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty/zero.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeAssetFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.AssetRoot != "" && cfg.Assets.Root == "" {
		cfg.Assets.Root = env.AssetRoot
	}
	if env.TemplateDir != "" && cfg.Template.Dir == "" {
		cfg.Template.Dir = env.TemplateDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Workers > 0 && cfg.Workers == 0 {
		cfg.Workers = env.Workers
	}
}

// mergeAssetFlags merges asset flags into config. CLI values override
// config values.
func mergeAssetFlags(f assetFlags, cfg *config.Config) {
	if f.assetRoot != "" {
		cfg.Assets.Root = f.assetRoot
	}
	if f.templateDir != "" {
		cfg.Template.Dir = f.templateDir
	}
}
