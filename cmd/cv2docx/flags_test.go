package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	flag "github.com/spf13/pflag"
)

// ---------------------------------------------------------------------------
// TestParseRenderFlags - Render flag parsing
// ---------------------------------------------------------------------------

func TestParseRenderFlags(t *testing.T) {
	t.Parallel()

	f, args, err := parseRenderFlags([]string{
		"-t", "modern", "-f", "markdown", "--css", "cv.css", "--no-style",
		"-d", "cv.yaml", "-o", "cv.html", "--full",
		"--asset-root", "public", "--template-dir", "sets",
		"-c", "team", "-vv", "extra",
	}, io.Discard)
	if err != nil {
		t.Fatalf("parseRenderFlags() error = %v", err)
	}

	want := &renderFlags{
		common: commonFlags{config: "team", verbose: 2},
		assets: assetFlags{assetRoot: "public", templateDir: "sets"},
		tmpl:   templateFlags{template: "modern", format: "markdown", css: "cv.css", noStyle: true},
		data:   "cv.yaml",
		output: "cv.html",
		full:   true,
	}
	opts := cmp.AllowUnexported(renderFlags{}, commonFlags{}, assetFlags{}, templateFlags{})
	if diff := cmp.Diff(want, f, opts); diff != "" {
		t.Errorf("parseRenderFlags() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"extra"}, args); diff != "" {
		t.Errorf("positional mismatch (-want +got):\n%s", diff)
	}
}

// ---------------------------------------------------------------------------
// TestParseGenerateFlags - Generate flag parsing
// ---------------------------------------------------------------------------

func TestParseGenerateFlags(t *testing.T) {
	t.Parallel()

	f, args, err := parseGenerateFlags([]string{"-w", "4", "--html", "-q", "a.yaml", "b.toml"}, io.Discard)
	if err != nil {
		t.Fatalf("parseGenerateFlags() error = %v", err)
	}
	if f.workers != 4 {
		t.Errorf("workers = %d, want 4", f.workers)
	}
	if !f.html {
		t.Error("html = false, want true")
	}
	if !f.common.quiet {
		t.Error("quiet = false, want true")
	}
	if diff := cmp.Diff([]string{"a.yaml", "b.toml"}, args); diff != "" {
		t.Errorf("positional mismatch (-want +got):\n%s", diff)
	}
}

// ---------------------------------------------------------------------------
// TestParseSampleFlags - Sample defaults
// ---------------------------------------------------------------------------

func TestParseSampleFlags(t *testing.T) {
	t.Parallel()

	f, _, err := parseSampleFlags(nil, io.Discard)
	if err != nil {
		t.Fatalf("parseSampleFlags() error = %v", err)
	}
	if f.output != "." {
		t.Errorf("output = %q, want %q", f.output, ".")
	}
	if f.set != "" || f.force || f.list {
		t.Errorf("unexpected defaults: %+v", f)
	}
}

// ---------------------------------------------------------------------------
// TestParseFlagSet - Usage printed once per failure
// ---------------------------------------------------------------------------

func TestParseFlagSet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		args      []string
		wantErr   bool
		wantUsage int
	}{
		{"valid", []string{"-q"}, false, 0},
		{"unknown flag", []string{"--bogus"}, true, 1},
		{"missing value", []string{"--output"}, true, 1},
		{"help", []string{"--help"}, true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			fs := newFlagSet("test", &buf, func(w io.Writer) { fmt.Fprintln(w, "Usage: test") })
			fs.BoolP("quiet", "q", false, "")
			fs.StringP("output", "o", "", "")

			err := parseFlagSet(fs, tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseFlagSet(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if got := strings.Count(buf.String(), "Usage: test"); got != tt.wantUsage {
				t.Errorf("usage printed %d times, want %d:\n%s", got, tt.wantUsage, buf.String())
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestParseFlags_Errors - Unknown flags and help
// ---------------------------------------------------------------------------

func TestParseFlags_Errors(t *testing.T) {
	t.Parallel()

	parsers := map[string]func([]string, io.Writer) error{
		"render":   func(a []string, w io.Writer) error { _, _, err := parseRenderFlags(a, w); return err },
		"convert":  func(a []string, w io.Writer) error { _, _, err := parseConvertFlags(a, w); return err },
		"generate": func(a []string, w io.Writer) error { _, _, err := parseGenerateFlags(a, w); return err },
		"vars":     func(a []string, w io.Writer) error { _, _, err := parseVarsFlags(a, w); return err },
		"snippet":  func(a []string, w io.Writer) error { _, _, err := parseSnippetFlags(a, w); return err },
		"sample":   func(a []string, w io.Writer) error { _, _, err := parseSampleFlags(a, w); return err },
	}

	for name, parse := range parsers {
		t.Run(name+" unknown flag", func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := parse([]string{"--bogus"}, &buf); err == nil {
				t.Error("expected error for unknown flag")
			}
			if !strings.Contains(buf.String(), "Usage: cv2docx "+name) {
				t.Errorf("usage not printed:\n%s", buf.String())
			}
		})

		t.Run(name+" help", func(t *testing.T) {
			t.Parallel()

			err := parse([]string{"--help"}, io.Discard)
			if !errors.Is(err, flag.ErrHelp) {
				t.Errorf("error = %v, want flag.ErrHelp", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidateWorkers - Worker bounds
// ---------------------------------------------------------------------------

func TestValidateWorkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n       int
		wantErr bool
	}{
		{0, false},
		{1, false},
		{32, false},
		{-1, true},
		{33, true},
	}

	for _, tt := range tests {
		err := validateWorkers(tt.n)
		if (err != nil) != tt.wantErr {
			t.Errorf("validateWorkers(%d) error = %v, wantErr %v", tt.n, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidWorkers) {
			t.Errorf("validateWorkers(%d) error = %v, want ErrInvalidWorkers", tt.n, err)
		}
	}
}

// ---------------------------------------------------------------------------
// TestHasVerboseFlag - Early verbose detection
// ---------------------------------------------------------------------------

func TestHasVerboseFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"generate", "cv.yaml"}, false},
		{[]string{"generate", "-v", "cv.yaml"}, true},
		{[]string{"generate", "-vv"}, true},
		{[]string{"generate", "-qv"}, true},
		{[]string{"generate", "--verbose"}, true},
		{[]string{"generate", "--version"}, false},
		{[]string{"generate", "--", "-v"}, false},
	}

	for _, tt := range tests {
		if got := hasVerboseFlag(tt.args); got != tt.want {
			t.Errorf("hasVerboseFlag(%q) = %v, want %v", tt.args, got, tt.want)
		}
	}
}
