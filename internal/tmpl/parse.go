package tmpl

import (
	"strings"

	"github.com/alnah/go-cv2docx/internal/datapath"
)

// Node is an element of a parsed template.
type Node interface {
	node()
}

// TextNode is literal template text.
type TextNode struct {
	Text string
}

// VarNode is a {{path}} placeholder. This is set for {{this.path}}; Bare is
// set for {{this}} alone, which stands for the current loop item.
type VarNode struct {
	Raw  string
	Path datapath.Path // nil when the placeholder is not a valid path
	This bool
	Bare bool
	Pos  Pos
}

// IndexNode is the {{@index}} token.
type IndexNode struct {
	Raw string
	Pos Pos
}

// EachNode is a {{#each path}} ... {{/each}} block.
type EachNode struct {
	Raw  string
	Path datapath.Path // nil when the header is not a valid path
	Body []Node
	Pos  Pos
}

func (*TextNode) node()  {}
func (*VarNode) node()   {}
func (*IndexNode) node() {}
func (*EachNode) node()  {}

// Template is a parsed template, safe for concurrent use.
type Template struct {
	src   string
	nodes []Node
	plain bool
}

// Source returns the template text the Template was parsed from.
func (t *Template) Source() string { return t.src }

// Nodes returns the top-level nodes of the template.
func (t *Template) Nodes() []Node { return t.nodes }

// Parse builds the syntax tree of src. Loop blocks may nest to any depth;
// every {{#each}} must be closed by a matching {{/each}}.
func Parse(src string) (*Template, error) {
	toks := lex(src)

	type frame struct {
		each  *EachNode
		nodes []Node
	}
	stack := []*frame{{}}
	plain := true

	for _, tok := range toks {
		top := stack[len(stack)-1]

		switch tok.kind {
		case tokText:
			top.nodes = append(top.nodes, &TextNode{Text: tok.raw})
			continue
		case tokVar:
			top.nodes = append(top.nodes, &VarNode{Raw: tok.raw, Path: parsePath(tok.arg), Pos: tok.pos})
		case tokThis:
			n := &VarNode{Raw: tok.raw, This: true, Pos: tok.pos}
			if tok.arg == "this" {
				n.Bare = true
			} else {
				n.Path = parsePath(strings.TrimPrefix(tok.arg, "this."))
			}
			top.nodes = append(top.nodes, n)
		case tokIndex:
			top.nodes = append(top.nodes, &IndexNode{Raw: tok.raw, Pos: tok.pos})
		case tokEachOpen:
			if tok.arg == "" {
				return nil, &ParseError{Pos: tok.pos, Tag: tok.raw, Err: ErrEmptyEachPath}
			}
			each := &EachNode{Raw: tok.raw, Path: parsePath(tok.arg), Pos: tok.pos}
			stack = append(stack, &frame{each: each})
		case tokEachClose:
			if len(stack) == 1 {
				return nil, &ParseError{Pos: tok.pos, Tag: tok.raw, Err: ErrUnexpectedEnd}
			}
			stack = stack[:len(stack)-1]
			top.each.Body = top.nodes
			parent := stack[len(stack)-1]
			parent.nodes = append(parent.nodes, top.each)
		}
		plain = false
	}

	if len(stack) > 1 {
		open := stack[len(stack)-1].each
		return nil, &ParseError{Pos: open.Pos, Tag: open.Raw, Err: ErrUnclosedEach}
	}

	return &Template{src: src, nodes: stack[0].nodes, plain: plain}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(src string) *Template {
	t, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return t
}

func parsePath(s string) datapath.Path {
	p, err := datapath.Parse(s)
	if err != nil {
		return nil
	}
	return p
}
