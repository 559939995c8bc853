package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Isolated environment and fixtures
// ---------------------------------------------------------------------------

// testEnv is an Environment whose output is captured and whose process
// environment holds only the given variables.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// newTestEnv builds an environment from "KEY=value" pairs.
func newTestEnv(vars ...string) *testEnv {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	lookup := make(map[string]string, len(vars))
	for _, kv := range vars {
		k, v, _ := strings.Cut(kv, "=")
		lookup[k] = v
	}
	return &testEnv{
		Environment: &Environment{
			Now:     func() time.Time { return time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC) },
			Stdout:  stdout,
			Stderr:  stderr,
			Getenv:  func(k string) string { return lookup[k] },
			Environ: func() []string { return vars },
		},
		stdout: stdout,
		stderr: stderr,
	}
}

const candidateYAML = `name: Ivan B.
current_role: Python developer
projects:
  - title: Project 1
    project_name: NDA
    overview: Developed API interfaces.
    technologies: FastAPI, Docker
    role: Python Software Developer
    common_tasks: Develop API interfaces
    duration: 9 months
languages:
  - title: English
    level: Upper-Intermediate
skills_qualifications:
  - title: Programming Languages
    description: Python, JavaScript
`

// writeFile writes content under dir and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	p := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return p
}

// readFile returns the content of path, failing the test when it is absent.
func readFile(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return data
}

// isDocx reports whether data starts like a ZIP package.
func isDocx(data []byte) bool {
	return bytes.HasPrefix(data, []byte("PK\x03\x04"))
}
