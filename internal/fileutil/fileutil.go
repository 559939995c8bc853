// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrNameEmpty     = errors.New("name cannot be empty")
	ErrNameSeparator = errors.New("name contains path separator or null byte")
	ErrPathTraversal = errors.New("path escapes its root directory")
)

// ValidateName checks that s can be used as a single file name component.
func ValidateName(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrNameEmpty
	}
	if strings.ContainsAny(s, "/\\\x00") {
		return ErrNameSeparator
	}
	return nil
}

// SafeJoin joins the slash-separated rel onto root and rejects results that
// fall outside root.
func SafeJoin(root, rel string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	joined := filepath.Join(absRoot, filepath.FromSlash(rel))
	if !IsPathUnderDir(joined, absRoot) {
		return "", fmt.Errorf("%w: %s", ErrPathTraversal, rel)
	}
	return joined, nil
}

// IsPathUnderDir reports whether absPath is dir or lies below it.
func IsPathUnderDir(absPath, dir string) bool {
	cleanPath := filepath.Clean(absPath)
	cleanDir := filepath.Clean(dir)

	// Ensure dir ends with separator for correct prefix matching
	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}

	return strings.HasPrefix(cleanPath+string(filepath.Separator), cleanDir)
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "modern" -> false (name)
//   - "./cv.yaml" -> true (relative path)
//   - "/absolute/path.toml" -> true (absolute)
//   - "C:\windows\path.yaml" -> true (Windows)
//   - "sub/dir" -> true (contains separator)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsURL returns true if the string looks like a URL, including
// protocol-relative ones.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") ||
		strings.HasPrefix(s, "https://") ||
		strings.HasPrefix(s, "data:") ||
		strings.HasPrefix(s, "//")
}

// WriteFile writes data to path, creating missing parent directories.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ReplaceExt returns path with its extension replaced by ext (including the
// leading dot).
func ReplaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
