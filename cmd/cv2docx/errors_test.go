package main

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	cv2docx "github.com/alnah/go-cv2docx"
	"github.com/alnah/go-cv2docx/internal/assets"
	"github.com/alnah/go-cv2docx/internal/config"
)

// ---------------------------------------------------------------------------
// TestHintFor - Hints appended to error messages
// ---------------------------------------------------------------------------

func TestHintFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"config not found", fmt.Errorf("loading config: %w", config.ErrConfigNotFound), config.AppName},
		{"template set not found", assets.ErrTemplateSetNotFound, "available: classic, default, modern"},
		{"unknown variable", cv2docx.ErrUnknownVariable, "cv2docx vars"},
		{"invalid data", cv2docx.ErrInvalidData, "mapping"},
		{"write output", ErrWriteOutput, "writable"},
		{"no hint", errors.New("boom"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hintFor(tt.err)
			if tt.want == "" {
				if got != "" {
					t.Errorf("hintFor(%v) = %q, want empty", tt.err, got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("hintFor(%v) = %q, want it to contain %q", tt.err, got, tt.want)
			}
		})
	}
}
