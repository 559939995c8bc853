package tmpl

import (
	"strconv"
	"strings"

	"github.com/alnah/go-cv2docx/internal/datapath"
)

// Miss records a template construct that could not be resolved.
type Miss struct {
	Raw    string
	Pos    Pos
	Reason string
}

// Report collects the resolution misses of one execution. Misses are not
// errors: unresolved placeholders stay verbatim and unresolved loops render
// nothing.
type Report struct {
	Placeholders []Miss
	Loops        []Miss
}

// Empty reports whether every construct resolved.
func (r Report) Empty() bool {
	return len(r.Placeholders) == 0 && len(r.Loops) == 0
}

// scope is the value placeholders resolve against: the data tree at the top
// level, the current item inside a loop body.
type scope struct {
	value  any
	index  int
	inLoop bool
}

type executor struct {
	out    strings.Builder
	report Report
}

// Execute renders the template against data.
func (t *Template) Execute(data any) (string, Report) {
	if t.plain {
		return t.src, Report{}
	}
	e := &executor{}
	e.out.Grow(len(t.src))
	e.walk(t.nodes, scope{value: data})
	return e.out.String(), e.report
}

// Render is Execute without the report.
func (t *Template) Render(data any) string {
	s, _ := t.Execute(data)
	return s
}

// Render parses and executes src in one step.
func Render(src string, data any) (string, error) {
	t, err := Parse(src)
	if err != nil {
		return "", err
	}
	return t.Render(data), nil
}

func (e *executor) walk(nodes []Node, sc scope) {
	for _, n := range nodes {
		switch n := n.(type) {
		case *TextNode:
			e.out.WriteString(n.Text)
		case *VarNode:
			e.variable(n, sc)
		case *IndexNode:
			if !sc.inLoop {
				e.miss(&e.report.Placeholders, n.Raw, n.Pos, "@index outside a loop")
				e.out.WriteString(n.Raw)
				continue
			}
			e.out.WriteString(strconv.Itoa(sc.index))
		case *EachNode:
			e.each(n, sc)
		}
	}
}

func (e *executor) variable(n *VarNode, sc scope) {
	// this and this.path name the current loop item only.
	if n.This && !sc.inLoop {
		e.miss(&e.report.Placeholders, n.Raw, n.Pos, "this outside a loop")
		e.out.WriteString(n.Raw)
		return
	}

	var (
		val any
		ok  bool
	)
	switch {
	case n.Bare:
		val, ok = sc.value, true
	case n.Path != nil:
		val, ok = datapath.Resolve(sc.value, n.Path)
	}
	if !ok {
		e.miss(&e.report.Placeholders, n.Raw, n.Pos, "not found")
		e.out.WriteString(n.Raw)
		return
	}

	s, ok := datapath.Stringify(val)
	if !ok {
		e.miss(&e.report.Placeholders, n.Raw, n.Pos, "value has no text form")
		e.out.WriteString(n.Raw)
		return
	}
	e.out.WriteString(s)
}

func (e *executor) each(n *EachNode, sc scope) {
	if n.Path == nil {
		e.miss(&e.report.Loops, n.Raw, n.Pos, "invalid path")
		return
	}
	val, ok := datapath.Resolve(sc.value, n.Path)
	if !ok {
		e.miss(&e.report.Loops, n.Raw, n.Pos, "not found")
		return
	}
	items, ok := datapath.Items(val)
	if !ok {
		e.miss(&e.report.Loops, n.Raw, n.Pos, "not a sequence")
		return
	}
	for i, item := range items {
		e.walk(n.Body, scope{value: item, index: i, inLoop: true})
	}
}

func (e *executor) miss(dst *[]Miss, raw string, pos Pos, reason string) {
	*dst = append(*dst, Miss{Raw: raw, Pos: pos, Reason: reason})
}
