package datapath

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleTree() map[string]any {
	return map[string]any{
		"name":   "Ivan B.",
		"active": true,
		"years":  7,
		"rate":   12.5,
		"notes":  nil,
		"projects": []any{
			map[string]any{
				"title": "Billing",
				"rows": []any{
					map[string]any{"title": "Overview", "description": "API"},
					map[string]any{"title": "Role", "description": "Backend"},
				},
			},
		},
		"skills": []any{"Go", "SQL", "Kubernetes"},
		"matrix": []any{[]any{"a", "b"}, []any{"c"}},
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Path
		wantErr bool
	}{
		{
			name:  "single field",
			input: "name",
			want:  Path{{Field: "name"}},
		},
		{
			name:  "field with index and field",
			input: "projects[0].title",
			want:  Path{{Field: "projects"}, {Index: 0, IsIndex: true}, {Field: "title"}},
		},
		{
			name:  "multiple bracket groups",
			input: "a[0][1]",
			want:  Path{{Field: "a"}, {Index: 0, IsIndex: true}, {Index: 1, IsIndex: true}},
		},
		{
			name:  "surrounding whitespace",
			input: "  current_role ",
			want:  Path{{Field: "current_role"}},
		},
		{name: "empty", input: "", wantErr: true},
		{name: "leading dot", input: ".name", wantErr: true},
		{name: "trailing dot", input: "name.", wantErr: true},
		{name: "negative index", input: "a[-1]", wantErr: true},
		{name: "non numeric index", input: "a[x]", wantErr: true},
		{name: "unterminated index", input: "a[1", wantErr: true},
		{name: "text after index", input: "a[1]b", wantErr: true},
		{name: "bare index", input: "[0]", wantErr: true},
		{name: "inner space", input: "first name", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPath) {
					t.Fatalf("Parse(%q) error = %v, want ErrInvalidPath", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestPathString(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"name", "projects[0].title", "a[0][1].b"} {
		if got := MustParse(s).String(); got != s {
			t.Errorf("String() = %q, want %q", got, s)
		}
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	tree := sampleTree()

	tests := []struct {
		name   string
		path   string
		want   any
		wantOK bool
	}{
		{name: "top level string", path: "name", want: "Ivan B.", wantOK: true},
		{name: "nested through index", path: "projects[0].title", want: "Billing", wantOK: true},
		{name: "deep nesting", path: "projects[0].rows[1].description", want: "Backend", wantOK: true},
		{name: "multiple brackets", path: "matrix[1][0]", want: "c", wantOK: true},
		{name: "explicit null is present", path: "notes", want: nil, wantOK: true},
		{name: "missing key", path: "email", wantOK: false},
		{name: "index out of range", path: "skills[5]", wantOK: false},
		{name: "index out of range then field", path: "skills[5].title", wantOK: false},
		{name: "field on sequence", path: "skills.title", wantOK: false},
		{name: "index on map", path: "projects[0][0]", wantOK: false},
		{name: "field on scalar", path: "name.first", wantOK: false},
		{name: "index on string", path: "name[0]", wantOK: false},
		{name: "malformed path", path: "a[", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ResolveString(tree, tt.path)
			if ok != tt.wantOK {
				t.Fatalf("ResolveString(%q) ok = %v, want %v", tt.path, ok, tt.wantOK)
			}
			if ok && !cmp.Equal(got, tt.want) {
				t.Errorf("ResolveString(%q) = %#v, want %#v", tt.path, got, tt.want)
			}
		})
	}
}

func TestResolve_NonGenericContainers(t *testing.T) {
	t.Parallel()

	tree := map[string]any{
		"items": []map[string]any{{"title": "A"}, {"title": "B"}},
		"tags":  map[string]string{"lang": "go"},
		"nums":  [2]int{4, 5},
	}

	tests := []struct {
		path string
		want any
	}{
		{path: "items[1].title", want: "B"},
		{path: "tags.lang", want: "go"},
		{path: "nums[1]", want: 5},
	}

	for _, tt := range tests {
		got, ok := ResolveString(tree, tt.path)
		if !ok || got != tt.want {
			t.Errorf("ResolveString(%q) = %v, %v; want %v, true", tt.path, got, ok, tt.want)
		}
	}
}

func TestResolve_NilTree(t *testing.T) {
	t.Parallel()

	if _, ok := ResolveString(nil, "a.b"); ok {
		t.Error("expected NotFound on nil tree")
	}
}

func TestStringify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  any
		want   string
		wantOK bool
	}{
		{name: "string", input: "hello", want: "hello", wantOK: true},
		{name: "empty string", input: "", want: "", wantOK: true},
		{name: "int", input: 42, want: "42", wantOK: true},
		{name: "int64", input: int64(-7), want: "-7", wantOK: true},
		{name: "uint64", input: uint64(9), want: "9", wantOK: true},
		{name: "integral float", input: 3.0, want: "3", wantOK: true},
		{name: "fractional float", input: 2.75, want: "2.75", wantOK: true},
		{name: "json number", input: json.Number("12.50"), want: "12.50", wantOK: true},
		{name: "true", input: true, want: "true", wantOK: true},
		{name: "false", input: false, want: "false", wantOK: true},
		{name: "nil", input: nil, wantOK: false},
		{name: "map", input: map[string]any{}, wantOK: false},
		{name: "sequence", input: []any{1}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Stringify(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Stringify(%#v) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestItems(t *testing.T) {
	t.Parallel()

	if items, ok := Items([]string{"a", "b"}); !ok || len(items) != 2 {
		t.Errorf("Items([]string) = %v, %v", items, ok)
	}
	if _, ok := Items("abc"); ok {
		t.Error("a string must not be treated as a sequence")
	}
	if _, ok := Items(map[string]any{}); ok {
		t.Error("a map must not be treated as a sequence")
	}
}

func TestCatalog(t *testing.T) {
	t.Parallel()

	tree := map[string]any{
		"name": "Ivan",
		"projects": []any{
			map[string]any{
				"title": "P1",
				"rows":  []any{map[string]any{"title": "Overview"}},
			},
		},
	}

	type flat struct {
		Path  string
		Kind  Kind
		Loop  []string
		Local string
	}

	var got []flat
	for _, e := range Catalog(tree) {
		got = append(got, flat{e.Path.String(), e.Kind, e.Loop, e.Local.String()})
	}

	want := []flat{
		{Path: "name", Kind: KindScalar, Local: "name"},
		{Path: "projects", Kind: KindSequence, Local: "projects"},
		{Path: "projects[0].rows", Kind: KindSequence, Loop: []string{"projects"}, Local: "rows"},
		{Path: "projects[0].rows[0].title", Kind: KindScalar, Loop: []string{"projects", "rows"}, Local: "title"},
		{Path: "projects[0].title", Kind: KindScalar, Loop: []string{"projects"}, Local: "title"},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Catalog mismatch (-want +got):\n%s", diff)
	}
}
