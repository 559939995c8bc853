package datapath

import (
	"reflect"
	"strconv"
)

// Resolve walks tree along p. The boolean is false when any segment does not
// match: wrong container kind, missing key, or index out of range.
// Resolve never panics and never mutates tree.
func Resolve(tree any, p Path) (any, bool) {
	cur := tree
	for _, seg := range p {
		var ok bool
		if seg.IsIndex {
			cur, ok = index(cur, seg.Index)
		} else {
			cur, ok = field(cur, seg.Field)
		}
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// ResolveString parses s and resolves it against tree. A malformed path is
// reported as not found.
func ResolveString(tree any, s string) (any, bool) {
	p, err := Parse(s)
	if err != nil {
		return nil, false
	}
	return Resolve(tree, p)
}

func field(v any, name string) (any, bool) {
	switch m := v.(type) {
	case map[string]any:
		val, ok := m[name]
		return val, ok
	case map[string]string:
		val, ok := m[name]
		return val, ok
	case nil:
		return nil, false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	val := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
	if !val.IsValid() {
		return nil, false
	}
	return val.Interface(), true
}

func index(v any, i int) (any, bool) {
	if i < 0 {
		return nil, false
	}
	switch s := v.(type) {
	case []any:
		if i >= len(s) {
			return nil, false
		}
		return s[i], true
	case nil, string:
		return nil, false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	if i >= rv.Len() {
		return nil, false
	}
	return rv.Index(i).Interface(), true
}

// Items returns the elements of v when v is a sequence.
func Items(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case nil, string, []byte:
		return nil, false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// IsMap reports whether v is a map with string keys.
func IsMap(v any) bool {
	switch v.(type) {
	case map[string]any, map[string]string:
		return true
	case nil:
		return false
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String
}

// Stringify returns the canonical text form of a scalar value: strings as-is,
// numbers in decimal, booleans as true/false. Null, maps and sequences have no
// text form and report false.
func Stringify(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case bool:
		return strconv.FormatBool(x), true
	case int:
		return strconv.Itoa(x), true
	case int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(x).Int(), 10), true
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(reflect.ValueOf(x).Uint(), 10), true
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case interface{ String() string }:
		// json.Number and similar textual numbers.
		if reflect.TypeOf(x).Kind() == reflect.String {
			return x.String(), true
		}
	}
	return "", false
}
