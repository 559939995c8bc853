package tmpl

import (
	"strings"

	"github.com/alnah/go-cv2docx/internal/datapath"
)

// RefKind distinguishes the constructs reported by Refs.
type RefKind int

const (
	RefVar RefKind = iota
	RefLoop
	RefIndex
)

// Ref is one data reference made by a template. Depth is the number of
// enclosing loops; at depth > 0 the path is relative to the loop item.
type Ref struct {
	Kind  RefKind
	Path  string
	Depth int
	Pos   Pos
}

// Refs lists the data references of the template in source order.
func (t *Template) Refs() []Ref {
	var refs []Ref
	var visit func(nodes []Node, depth int)
	visit = func(nodes []Node, depth int) {
		for _, n := range nodes {
			switch n := n.(type) {
			case *VarNode:
				p := "this"
				if !n.Bare {
					p = strings.Trim(n.Raw, "{} \t")
				}
				refs = append(refs, Ref{Kind: RefVar, Path: p, Depth: depth, Pos: n.Pos})
			case *IndexNode:
				refs = append(refs, Ref{Kind: RefIndex, Path: "@index", Depth: depth, Pos: n.Pos})
			case *EachNode:
				p := strings.TrimSpace(strings.TrimPrefix(strings.Trim(n.Raw, "{} \t"), "#each"))
				refs = append(refs, Ref{Kind: RefLoop, Path: p, Depth: depth, Pos: n.Pos})
				visit(n.Body, depth+1)
			}
		}
	}
	visit(t.nodes, 0)
	return refs
}

// Snippet returns the template text that inserts the catalog entry e.
// Sequences become an empty loop block, other values a placeholder. When
// wrap is true and e lives inside sequences, the snippet is wrapped in the
// loop blocks that reach it.
func Snippet(e datapath.Entry, wrap bool) string {
	local := e.Local.String()

	var body string
	if e.Kind == datapath.KindSequence {
		body = "{{#each " + local + "}}\n  \n{{/each}}"
	} else {
		body = "{{" + local + "}}"
	}

	if !wrap || len(e.Loop) == 0 {
		return body
	}

	var b strings.Builder
	for _, loop := range e.Loop {
		b.WriteString("{{#each " + loop + "}}\n")
	}
	for _, line := range strings.Split(body, "\n") {
		b.WriteString("  " + line + "\n")
	}
	for i := range e.Loop {
		b.WriteString("{{/each}}")
		if i < len(e.Loop)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Variables parses src and lists the distinct placeholder and loop paths it
// references, in order of first use. Paths inside loop bodies are relative to
// the loop item.
func Variables(src string) ([]string, error) {
	t, err := Parse(src)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var out []string
	for _, r := range t.Refs() {
		if r.Kind == RefIndex || seen[r.Path] {
			continue
		}
		seen[r.Path] = true
		out = append(out, r.Path)
	}
	return out, nil
}
