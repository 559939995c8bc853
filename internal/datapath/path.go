// Package datapath addresses values inside a generic data tree using dotted,
// bracket-indexed paths such as "projects[0].rows[2].title".
package datapath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPath indicates a path string does not follow the path grammar.
var ErrInvalidPath = errors.New("invalid path")

// Segment is one step of a Path: either a map field or a sequence index.
type Segment struct {
	Field   string
	Index   int
	IsIndex bool
}

// String returns the segment in template notation.
func (s Segment) String() string {
	if s.IsIndex {
		return "[" + strconv.Itoa(s.Index) + "]"
	}
	return s.Field
}

// Path is an ordered sequence of segments.
type Path []Segment

// String returns the path in template notation.
func (p Path) String() string {
	var b strings.Builder
	for i, seg := range p {
		if !seg.IsIndex && i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg.String())
	}
	return b.String()
}

// Parse splits a path string into segments.
//
// Grammar: segment ("." segment)*, segment := identifier ("[" integer "]")*.
// Surrounding whitespace is ignored.
func Parse(s string) (Path, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	parts := strings.Split(s, ".")
	path := make(Path, 0, len(parts))
	for _, part := range parts {
		segs, err := parseSegment(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPath, s, err)
		}
		path = append(path, segs...)
	}
	return path, nil
}

// MustParse is like Parse but panics on error. Intended for literals in tests
// and package-level variables.
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// parseSegment parses "name", "name[1]" or "name[1][2]".
func parseSegment(part string) ([]Segment, error) {
	open := strings.IndexByte(part, '[')
	name := part
	if open >= 0 {
		name = part[:open]
	}
	if !isIdentifier(name) {
		return nil, fmt.Errorf("bad field name %q", name)
	}

	segs := []Segment{{Field: name}}
	rest := part[len(name):]
	for rest != "" {
		if rest[0] != '[' {
			return nil, fmt.Errorf("unexpected %q after index", rest)
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return nil, fmt.Errorf("unterminated index in %q", part)
		}
		digits := rest[1:end]
		if digits == "" || strings.TrimLeft(digits, "0123456789") != "" {
			return nil, fmt.Errorf("index %q is not a non-negative integer", digits)
		}
		idx, err := strconv.Atoi(digits)
		if err != nil {
			return nil, fmt.Errorf("index %q: %v", digits, err)
		}
		segs = append(segs, Segment{Index: idx, IsIndex: true})
		rest = rest[end+1:]
	}
	return segs, nil
}

// isIdentifier reports whether s is usable as a field name. Field names come
// from JSON keys, so anything without path metacharacters or spaces is allowed.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	return !strings.ContainsAny(s, ".[]{} \t\r\n")
}
