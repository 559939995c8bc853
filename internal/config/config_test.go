package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()

	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return p
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if diff := cmp.Diff(&Config{}, cfg); diff != "" {
		t.Errorf("DefaultConfig() mismatch (-want +got):\n%s", diff)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		max     int
		wantErr bool
	}{
		{"empty", "", 10, false},
		{"at limit", "1234567890", 10, false},
		{"over limit", "12345678901", 10, true},
		{"multibyte counts bytes", "ééééé", 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateFieldLength("field", tt.value, tt.max)
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateFieldLength(%q, %d) error = %v, wantErr %v", tt.value, tt.max, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrFieldTooLong) {
				t.Errorf("error = %v, want ErrFieldTooLong", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "full valid config",
			cfg: Config{
				Document: DocumentConfig{Font: "Georgia", Size: 24, LineSpacing: 276},
				Template: TemplateConfig{Set: "modern", Format: "markdown", HighlightStyle: "monokai"},
				Assets:   AssetsConfig{Root: "public"},
				Images:   ImagesConfig{Width: 320, Height: 240},
				Data:     DataConfig{DateFormat: "MMM YYYY"},
				Workers:  4,
			},
		},
		{
			name: "format is case insensitive",
			cfg:  Config{Template: TemplateConfig{Format: "HTML"}},
		},
		{
			name:    "font too long",
			cfg:     Config{Document: DocumentConfig{Font: strings.Repeat("f", MaxFontLength+1)}},
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "size below minimum",
			cfg:     Config{Document: DocumentConfig{Size: 1}},
			wantErr: ErrOutOfRange,
		},
		{
			name:    "size above maximum",
			cfg:     Config{Document: DocumentConfig{Size: MaxFontSize + 1}},
			wantErr: ErrOutOfRange,
		},
		{
			name:    "negative line spacing",
			cfg:     Config{Document: DocumentConfig{LineSpacing: -240}},
			wantErr: ErrOutOfRange,
		},
		{
			name:    "image too wide",
			cfg:     Config{Images: ImagesConfig{Width: MaxImageSide + 1}},
			wantErr: ErrOutOfRange,
		},
		{
			name:    "negative image height",
			cfg:     Config{Images: ImagesConfig{Height: -1}},
			wantErr: ErrOutOfRange,
		},
		{
			name:    "too many workers",
			cfg:     Config{Workers: MaxWorkers + 1},
			wantErr: ErrOutOfRange,
		},
		{
			name:    "unknown format",
			cfg:     Config{Template: TemplateConfig{Format: "latex"}},
			wantErr: ErrInvalidValue,
		},
		{
			name: "date format preset",
			cfg:  Config{Data: DataConfig{DateFormat: "month"}},
		},
		{
			name:    "unclosed date format bracket",
			cfg:     Config{Data: DataConfig{DateFormat: "[since YYYY"}},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "date format too long",
			cfg:     Config{Data: DataConfig{DateFormat: strings.Repeat("Y", 51)}},
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "unknown highlight style",
			cfg:     Config{Template: TemplateConfig{HighlightStyle: "no-such-style"}},
			wantErr: ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	want := &Config{
		Document: DocumentConfig{Font: "Calibri", Size: 22, LineSpacing: 240},
		Template: TemplateConfig{Set: "classic", Format: "markdown"},
		Assets:   AssetsConfig{Root: "public"},
		Images:   ImagesConfig{Width: 400, Height: 300},
		Output:   OutputConfig{DefaultDir: "out"},
		Data:     DataConfig{DateFormat: "short"},
		Workers:  2,
	}

	tests := []struct {
		name string
		ext  string
		data string
	}{
		{
			name: "yaml",
			ext:  ".yaml",
			data: `document:
  font: Calibri
  size: 22
  lineSpacing: 240
template:
  set: classic
  format: markdown
assets:
  root: public
images:
  width: 400
  height: 300
output:
  defaultDir: out
data:
  dateFormat: short
workers: 2
`,
		},
		{
			name: "toml",
			ext:  ".TOML",
			data: `workers = 2

[document]
font = "Calibri"
size = 22
lineSpacing = 240

[template]
set = "classic"
format = "markdown"

[assets]
root = "public"

[images]
width = 400
height = 300

[output]
defaultDir = "out"

[data]
dateFormat = "short"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse([]byte(tt.data), tt.ext)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ext     string
		data    string
		wantErr error
	}{
		{"yaml syntax", ".yaml", "document: [unclosed", ErrConfigParse},
		{"yaml unknown field", ".yml", "style: default\n", ErrConfigParse},
		{"toml syntax", ".toml", "[document\nfont = 1", ErrConfigParse},
		{"toml unknown field", ".toml", "[page]\nsize = \"a4\"\n", ErrConfigParse},
		{"toml wrong type", ".toml", "workers = \"many\"\n", ErrConfigParse},
		{"validation runs", ".yaml", "workers: 99\n", ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.data), tt.ext)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.data, err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("file path", func(t *testing.T) {
		t.Parallel()

		p := writeConfig(t, t.TempDir(), "cv.toml", "[document]\nfont = \"Verdana\"\n")
		cfg, err := LoadConfig(p)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Document.Font != "Verdana" {
			t.Errorf("Document.Font = %q, want %q", cfg.Document.Font, "Verdana")
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig("/nonexistent/path/config.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})
}

// The tests below change the working directory or XDG environment, so they
// do not run in parallel.

func TestLoadConfig_NameInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "work.yml", "workers: 3\n")
	writeConfig(t, dir, "work.toml", "workers = 5\n")
	t.Chdir(dir)

	cfg, err := LoadConfig("work")
	if err != nil {
		t.Fatalf("LoadConfig(\"work\") error = %v", err)
	}
	// .yml is searched before .toml
	if cfg.Workers != 3 {
		t.Errorf("Workers = %d, want 3", cfg.Workers)
	}
}

func TestLoadConfig_NameInXDGConfigHome(t *testing.T) {
	home := t.TempDir()
	appDir := filepath.Join(home, AppName)
	if err := os.MkdirAll(appDir, 0755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	writeConfig(t, appDir, "team.toml", "[template]\nset = \"modern\"\n")

	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", home)
	xdg.Reload()
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("team")
	if err != nil {
		t.Fatalf("LoadConfig(\"team\") error = %v", err)
	}
	if cfg.Template.Set != "modern" {
		t.Errorf("Template.Set = %q, want %q", cfg.Template.Set, "modern")
	}

	_, err = LoadConfig("absent")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("LoadConfig(\"absent\") error = %v, want ErrConfigNotFound", err)
	}
	if !strings.Contains(err.Error(), filepath.Join(appDir, "absent.toml")) {
		t.Errorf("error %q does not list the XDG location", err)
	}
}
