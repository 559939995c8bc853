package main

// Notes:
// - runMain: we test dispatch and exit codes. Command behavior is covered
//   in commands_test.go.
// - main() itself is not tested: it only wires os.Args, signals and os.Exit.

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRunMain - Dispatch and exit codes
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "absent.yaml")

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{"no arguments", nil, ExitUsage, "", "Usage: cv2docx"},
		{"unknown command", []string{"publish"}, ExitUsage, "", "Unknown command: publish"},
		{"version", []string{"version"}, ExitSuccess, "cv2docx " + Version, ""},
		{"version flag", []string{"--version"}, ExitSuccess, "cv2docx " + Version, ""},
		{"help", []string{"help"}, ExitSuccess, "Commands:", ""},
		{"help flag", []string{"-h"}, ExitSuccess, "Commands:", ""},
		{"help for command", []string{"help", "generate"}, ExitSuccess, "Usage: cv2docx generate", ""},
		{"help for unknown command", []string{"help", "publish"}, ExitUsage, "", "Unknown command: publish"},
		{"command help flag", []string{"render", "--help"}, ExitSuccess, "", "Usage: cv2docx render"},
		{"unknown flag", []string{"render", "--bogus"}, ExitUsage, "", "error:"},
		{"render without data", []string{"render"}, ExitUsage, "", "missing argument"},
		{"render missing data file", []string{"render", missing}, ExitIO, "", "error:"},
		{"render unknown set", []string{"render", "-t", "nonexistent", missing}, ExitUsage, "", "hint: available: classic, default, modern"},
		{"render unknown format", []string{"render", "-f", "latex", missing}, ExitUsage, "", "unknown template format"},
		{"convert without input", []string{"convert"}, ExitUsage, "", "error:"},
		{"generate without data", []string{"generate"}, ExitUsage, "", "error:"},
		{"generate negative workers", []string{"generate", "-w", "-1", missing}, ExitUsage, "", "invalid worker count"},
		{"snippet missing path", []string{"snippet", missing}, ExitUsage, "", "error:"},
		{"vars without data", []string{"vars"}, ExitUsage, "", "error:"},
		{"sample with arguments", []string{"sample", "extra"}, ExitUsage, "", "error:"},
		{"config not found", []string{"render", "-c", "/nonexistent/cv2docx.yaml", missing}, ExitUsage, "", "config file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv()
			got := runMain(context.Background(), tt.args, env.Environment)
			if got != tt.wantCode {
				t.Errorf("runMain(%q) = %d, want %d\nstderr: %s", tt.args, got, tt.wantCode, env.stderr.String())
			}
			if tt.wantStdout != "" && !strings.Contains(env.stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want it to contain %q", env.stdout.String(), tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(env.stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", env.stderr.String(), tt.wantStderr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunMain_EnvConfig - Environment variables reach the session
// ---------------------------------------------------------------------------

func TestRunMain_EnvConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	data := writeFile(t, dir, "cv.yaml", candidateYAML)

	t.Run("missing config from env", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv("CV2DOCX_CONFIG=" + filepath.Join(dir, "absent.yaml"))
		if got := runMain(context.Background(), []string{"render", data}, env.Environment); got != ExitUsage {
			t.Errorf("runMain() = %d, want %d", got, ExitUsage)
		}
	})

	t.Run("invalid template dir from env", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv("CV2DOCX_TEMPLATE_DIR=" + filepath.Join(dir, "no-such-dir"))
		if got := runMain(context.Background(), []string{"render", data}, env.Environment); got != ExitUsage {
			t.Errorf("runMain() = %d, want %d\nstderr: %s", got, ExitUsage, env.stderr.String())
		}
	})

	t.Run("unknown variable warns", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv("CV2DOCX_WORKER=2")
		if got := runMain(context.Background(), []string{"render", data}, env.Environment); got != ExitSuccess {
			t.Fatalf("runMain() = %d, want %d\nstderr: %s", got, ExitSuccess, env.stderr.String())
		}
		if !strings.Contains(env.stderr.String(), "CV2DOCX_WORKER") {
			t.Errorf("stderr = %q, want typo warning", env.stderr.String())
		}
	})
}
