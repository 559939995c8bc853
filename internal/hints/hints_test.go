package hints

import (
	"strings"
	"testing"
)

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		dir      string
		contains []string
		excludes []string
	}{
		{
			name:     "with user dir",
			dir:      "/home/ivan/.config/go-cv2docx",
			contains: []string{"hint:", "--config", "create a .yaml or .toml file in /home/ivan/.config/go-cv2docx"},
		},
		{
			name:     "without user dir",
			dir:      "",
			contains: []string{"--config"},
			excludes: []string{"create"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForConfigNotFound(tt.dir)
			for _, want := range tt.contains {
				if !strings.Contains(hint, want) {
					t.Errorf("ForConfigNotFound(%q) = %q, want it to contain %q", tt.dir, hint, want)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(hint, bad) {
					t.Errorf("ForConfigNotFound(%q) = %q, should not contain %q", tt.dir, hint, bad)
				}
			}
		})
	}
}

func TestForTemplateSetNotFound(t *testing.T) {
	t.Parallel()

	hint := ForTemplateSetNotFound([]string{"classic", "default", "modern"})
	want := "\n  hint: available: classic, default, modern; or pass a template file path to --template"
	if hint != want {
		t.Errorf("ForTemplateSetNotFound() = %q, want %q", hint, want)
	}

	hint = ForTemplateSetNotFound(nil)
	if strings.Contains(hint, "available") {
		t.Errorf("ForTemplateSetNotFound(nil) = %q, should not list sets", hint)
	}
}

func TestSimpleHints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		hint string
		want string
	}{
		{"unknown variable", ForUnknownVariable(), "cv2docx vars"},
		{"data syntax", ForDataSyntax(), "mapping"},
		{"output directory", ForOutputDirectory(), "writable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !strings.HasPrefix(tt.hint, "\n  hint: ") {
				t.Errorf("hint %q lacks the hint prefix", tt.hint)
			}
			if !strings.Contains(tt.hint, tt.want) {
				t.Errorf("hint %q, want it to contain %q", tt.hint, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
	if got := formatHints(nil); got != "" {
		t.Errorf("formatHints(nil) = %q, want empty", got)
	}
	if got, want := formatHints([]string{"a", "b"}), "\n  hint: a; b"; got != want {
		t.Errorf("formatHints() = %q, want %q", got, want)
	}
}
