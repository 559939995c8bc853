package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	conv := NewGoldmarkConverter("")

	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "heading with id",
			input:    "# Jane Doe",
			contains: []string{`<h1 id="jane-doe">Jane Doe</h1>`},
		},
		{
			name:     "emphasis",
			input:    "**Lead** engineer, *remote*",
			contains: []string{"<strong>Lead</strong>", "<em>remote</em>"},
		},
		{
			name:     "hard wraps",
			input:    "Paris\nFrance",
			contains: []string{"Paris<br>", "France"},
		},
		{
			name:     "list",
			input:    "- Go\n- SQL",
			contains: []string{"<ul>", "<li>Go</li>", "<li>SQL</li>"},
		},
		{
			name:     "strikethrough",
			input:    "~~PHP~~",
			contains: []string{"<del>PHP</del>"},
		},
		{
			name:     "fragment only",
			input:    "text",
			excludes: []string{"<html", "<body"},
		},
		{
			name:     "raw html dropped",
			input:    "<script>alert(1)</script>\n\ntext",
			excludes: []string{"<script>"},
		},
		{
			name:     "highlighted code uses inline styles",
			input:    "```go\nfunc main() {}\n```",
			contains: []string{"<pre", `style="`, "color:", "func"},
			excludes: []string{`class="chroma"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.ToHTML(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("ToHTML(%q) unexpected error: %v", tt.input, err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("ToHTML(%q) = %q, want it to contain %q", tt.input, got, want)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(got, bad) {
					t.Errorf("ToHTML(%q) = %q, should not contain %q", tt.input, got, bad)
				}
			}
		})
	}
}

func TestGoldmarkConverter_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGoldmarkConverter("monokai").ToHTML(ctx, "# Title")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ToHTML() error = %v, want context.Canceled", err)
	}
}

func TestTextNormalizer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		compress bool
		input    string
		want     string
	}{
		{"crlf", false, "a\r\nb", "a\nb"},
		{"lone cr", false, "a\rb", "a\nb"},
		{"blank lines kept", false, "a\n\n\n\nb", "a\n\n\n\nb"},
		{"blank lines compressed", true, "a\n\n\n\nb", "a\n\nb"},
		{"single blank kept", true, "a\n\nb", "a\n\nb"},
		{"crlf then compress", true, "a\r\n\r\n\r\nb", "a\n\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			n := &TextNormalizer{CompressBlankLines: tt.compress}
			if got := n.PreprocessTemplate(context.Background(), tt.input); got != tt.want {
				t.Errorf("PreprocessTemplate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTextNormalizer_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := "a\r\nb"
	if got := (&TextNormalizer{}).PreprocessTemplate(ctx, in); got != in {
		t.Errorf("PreprocessTemplate() with canceled context = %q, want %q", got, in)
	}
}
