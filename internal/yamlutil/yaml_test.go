package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-cv2docx/internal/yamlutil"
)

type settings struct {
	Font string `yaml:"font"`
	Size int    `yaml:"size"`
}

// ---------------------------------------------------------------------------
// TestUnmarshal - Decodes YAML and JSON into structs
// ---------------------------------------------------------------------------

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		want    settings
		wantErr error
	}{
		{name: "yaml", data: "font: Arial\nsize: 24", want: settings{Font: "Arial", Size: 24}},
		{name: "json", data: `{"font": "Georgia", "size": 22}`, want: settings{Font: "Georgia", Size: 22}},
		{name: "unknown field ignored", data: "font: Arial\ncolor: red", want: settings{Font: "Arial"}},
		{name: "empty", data: "", wantErr: yamlutil.ErrNilData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got settings
			err := yamlutil.Unmarshal([]byte(tt.data), &got)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Unmarshal(%q) error = %v, want %v", tt.data, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%q) unexpected error: %v", tt.data, err)
			}
			if got != tt.want {
				t.Errorf("Unmarshal(%q) = %+v, want %+v", tt.data, got, tt.want)
			}
		})
	}
}

func TestUnmarshal_NilDestination(t *testing.T) {
	t.Parallel()

	err := yamlutil.Unmarshal([]byte("font: Arial"), nil)
	if !errors.Is(err, yamlutil.ErrNilDestination) {
		t.Errorf("Unmarshal(nil dest) error = %v, want ErrNilDestination", err)
	}
}

func TestUnmarshal_SyntaxErrorPrefix(t *testing.T) {
	t.Parallel()

	err := yamlutil.Unmarshal([]byte("font: [unclosed"), &settings{})
	if err == nil || !strings.HasPrefix(err.Error(), "yamlutil:") {
		t.Errorf("Unmarshal(bad yaml) error = %v, want yamlutil: prefix", err)
	}
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Rejects unknown fields
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	var ok settings
	if err := yamlutil.UnmarshalStrict([]byte("font: Arial\nsize: 20"), &ok); err != nil {
		t.Fatalf("UnmarshalStrict(known fields) error = %v", err)
	}

	var bad settings
	if err := yamlutil.UnmarshalStrict([]byte("font: Arial\ncolour: red"), &bad); err == nil {
		t.Error("UnmarshalStrict(unknown field) error = nil, want error")
	}
}

// ---------------------------------------------------------------------------
// TestUnmarshalTree - Decodes candidate data trees
// ---------------------------------------------------------------------------

func TestUnmarshalTree(t *testing.T) {
	t.Parallel()

	t.Run("nested yaml", func(t *testing.T) {
		t.Parallel()

		data := "name: Jane\nprojects:\n  - title: API\n    tags: [go, sql]\n"
		got, err := yamlutil.UnmarshalTree([]byte(data))
		if err != nil {
			t.Fatalf("UnmarshalTree() error = %v", err)
		}
		want := map[string]any{
			"name": "Jane",
			"projects": []any{
				map[string]any{"title": "API", "tags": []any{"go", "sql"}},
			},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("UnmarshalTree() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		got, err := yamlutil.UnmarshalTree([]byte(`{"languages": [{"title": "English"}]}`))
		if err != nil {
			t.Fatalf("UnmarshalTree() error = %v", err)
		}
		want := map[string]any{"languages": []any{map[string]any{"title": "English"}}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("UnmarshalTree() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("sequence root rejected", func(t *testing.T) {
		t.Parallel()

		_, err := yamlutil.UnmarshalTree([]byte("- a\n- b"))
		if !errors.Is(err, yamlutil.ErrNotMapping) {
			t.Errorf("UnmarshalTree(sequence) error = %v, want ErrNotMapping", err)
		}
	})

	t.Run("scalar root rejected", func(t *testing.T) {
		t.Parallel()

		_, err := yamlutil.UnmarshalTree([]byte("just text"))
		if !errors.Is(err, yamlutil.ErrNotMapping) {
			t.Errorf("UnmarshalTree(scalar) error = %v, want ErrNotMapping", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestMarshal - Encodes values as YAML
// ---------------------------------------------------------------------------

func TestMarshal(t *testing.T) {
	t.Parallel()

	got, err := yamlutil.Marshal(settings{Font: "Arial", Size: 32})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	for _, want := range []string{"font: Arial", "size: 32"} {
		if !strings.Contains(string(got), want) {
			t.Errorf("Marshal() = %q, want it to contain %q", got, want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestInputSizeLimit - Verifies MaxInputSize enforcement
// ---------------------------------------------------------------------------

// Modifies the global MaxInputSize, so it does not run in parallel.
func TestInputSizeLimit(t *testing.T) {
	originalMax := yamlutil.MaxInputSize
	t.Cleanup(func() { yamlutil.MaxInputSize = originalMax })

	yamlutil.MaxInputSize = 16
	data := []byte("font: " + strings.Repeat("a", 20))

	if err := yamlutil.Unmarshal(data, &settings{}); !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("Unmarshal(oversized) error = %v, want ErrInputTooLarge", err)
	}
	if err := yamlutil.UnmarshalStrict(data, &settings{}); !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("UnmarshalStrict(oversized) error = %v, want ErrInputTooLarge", err)
	}
	if _, err := yamlutil.UnmarshalTree(data); !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("UnmarshalTree(oversized) error = %v, want ErrInputTooLarge", err)
	}
}
