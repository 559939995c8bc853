package datapath

import (
	"reflect"
	"sort"
)

// Kind classifies the value found at a catalog entry.
type Kind int

const (
	KindScalar Kind = iota
	KindMap
	KindSequence
)

func (k Kind) String() string {
	switch k {
	case KindMap:
		return "map"
	case KindSequence:
		return "sequence"
	default:
		return "scalar"
	}
}

// Entry describes one addressable value of a data tree.
type Entry struct {
	Path Path
	Kind Kind
	// Loop lists the enclosing sequences, outermost first, each addressed
	// relative to the loop item around it.
	Loop []string
	// Local is the path relative to the innermost loop item, or the full
	// path when Loop is empty.
	Local Path
}

// Catalog lists every map field and sequence element of tree in a stable
// order: map keys sorted, sequence elements by index. The root itself is not
// listed.
func Catalog(tree any) []Entry {
	var out []Entry
	walk(tree, nil, nil, nil, &out)
	return out
}

func walk(v any, path Path, loop []string, local Path, out *[]Entry) {
	if IsMap(v) {
		for _, key := range sortedKeys(v) {
			child, _ := field(v, key)
			childPath := appendSeg(path, Segment{Field: key})
			childLocal := appendSeg(local, Segment{Field: key})
			*out = append(*out, Entry{
				Path:  childPath,
				Kind:  kindOf(child),
				Loop:  loop,
				Local: childLocal,
			})
			walk(child, childPath, loop, childLocal, out)
		}
		return
	}

	items, ok := Items(v)
	if !ok {
		return
	}
	// Elements of a sequence become loop items; their fields are addressed
	// relative to the item. A sequence nested directly in another sequence
	// cannot be looped over by name.
	childLoop := loop
	if len(local) > 0 {
		childLoop = append(append([]string(nil), loop...), local.String())
	}
	for i, item := range items {
		childPath := appendSeg(path, Segment{Index: i, IsIndex: true})
		walk(item, childPath, childLoop, nil, out)
	}
}

func kindOf(v any) Kind {
	if IsMap(v) {
		return KindMap
	}
	if _, ok := Items(v); ok {
		return KindSequence
	}
	return KindScalar
}

func appendSeg(p Path, s Segment) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, s)
}

func sortedKeys(v any) []string {
	var keys []string
	switch m := v.(type) {
	case map[string]any:
		for k := range m {
			keys = append(keys, k)
		}
	case map[string]string:
		for k := range m {
			keys = append(keys, k)
		}
	default:
		for _, k := range reflect.ValueOf(v).MapKeys() {
			keys = append(keys, k.String())
		}
	}
	sort.Strings(keys)
	return keys
}
