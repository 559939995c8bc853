package main

// Notes:
// - exitCodeFor: we test the sentinel errors of the cv2docx, config and
//   assets packages plus the CLI's own, wrapped and unwrapped.
// - Package errors win over I/O causes they may wrap.

import (
	"errors"
	"fmt"
	"os"
	"testing"

	cv2docx "github.com/alnah/go-cv2docx"
	"github.com/alnah/go-cv2docx/internal/assets"
	"github.com/alnah/go-cv2docx/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// Packaging errors (exit 4)
		{"docx generation", cv2docx.ErrDocxGeneration, ExitPackage},
		{"wrapped docx generation", fmt.Errorf("convert: %w", cv2docx.ErrDocxGeneration), ExitPackage},
		{"docx generation over io", fmt.Errorf("%w: %w", cv2docx.ErrDocxGeneration, os.ErrPermission), ExitPackage},

		// Usage/config/validation errors (exit 2)
		{"invalid flags", ErrInvalidFlags, ExitUsage},
		{"missing argument", ErrMissingArgument, ExitUsage},
		{"invalid workers", ErrInvalidWorkers, ExitUsage},
		{"unsupported shell", fmt.Errorf("%w: %q", ErrUnsupportedShell, "ksh"), ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"config out of range", config.ErrOutOfRange, ExitUsage},
		{"config invalid value", config.ErrInvalidValue, ExitUsage},
		{"template syntax", cv2docx.ErrTemplateSyntax, ExitUsage},
		{"unknown format", cv2docx.ErrUnknownFormat, ExitUsage},
		{"invalid data", cv2docx.ErrInvalidData, ExitUsage},
		{"unsupported data", cv2docx.ErrUnsupportedData, ExitUsage},
		{"unknown variable", cv2docx.ErrUnknownVariable, ExitUsage},
		{"template set not found", assets.ErrTemplateSetNotFound, ExitUsage},
		{"invalid asset name", assets.ErrInvalidAssetName, ExitUsage},
		{"wrapped template syntax", fmt.Errorf("render: %w", cv2docx.ErrTemplateSyntax), ExitUsage},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"read template", ErrReadTemplate, ExitIO},
		{"read data", fmt.Errorf("%w: %w", ErrReadData, os.ErrNotExist), ExitIO},
		{"read css", ErrReadCSS, ExitIO},
		{"read html", ErrReadHTML, ExitIO},
		{"write output", ErrWriteOutput, ExitIO},
		{"output exists", ErrOutputExists, ExitIO},
		{"asset read", assets.ErrAssetRead, ExitIO},

		// General errors (exit 1)
		{"conversion failed", ErrConversionFailed, ExitGeneral},
		{"unknown error", errors.New("boom"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExitCodeConstants - Unix conventions
// ---------------------------------------------------------------------------

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess = %d, want 0", ExitSuccess)
	}
	if ExitGeneral != 1 {
		t.Errorf("ExitGeneral = %d, want 1", ExitGeneral)
	}
	if ExitUsage != 2 {
		t.Errorf("ExitUsage = %d, want 2", ExitUsage)
	}
	for _, code := range []int{ExitIO, ExitPackage} {
		if code <= ExitUsage || code >= 126 {
			t.Errorf("custom exit code %d must be in (2, 126)", code)
		}
	}
}
