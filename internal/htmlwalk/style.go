package htmlwalk

import (
	"math"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-cv2docx/internal/css"
)

// Style is the flat set of text attributes computed for one element.
type Style struct {
	Bold      bool
	Italic    bool
	Underline bool
	Strike    bool
	Size      int    // half-points, 0 when unset
	Align     string // "", left, center, right or justify
	Color     string // six lowercase hex digits, "" when unset
}

// sizeTable holds the font sizes, in px, that font-size values snap to.
var sizeTable = []int{10, 12, 14, 16, 18, 20, 24, 28, 32, 36}

// HalfPoints maps a pixel font size to half-points using the nearest entry
// of the size table. Ties go to the smaller entry.
func HalfPoints(px float64) int {
	best := sizeTable[0]
	for _, s := range sizeTable[1:] {
		if math.Abs(float64(s)-px) < math.Abs(float64(best)-px) {
			best = s
		}
	}
	return best * 2
}

// Apply sets the attributes carried by d. Unknown declarations are ignored.
func (s *Style) Apply(d css.Declaration) {
	switch d := d.(type) {
	case css.FontSize:
		if d.Unit == "pt" {
			s.Size = int(math.Round(d.Value * 2))
		} else {
			s.Size = HalfPoints(d.Value)
		}
	case css.FontWeight:
		s.Bold = d.Bold
	case css.FontStyle:
		s.Italic = d.Italic
	case css.TextDecoration:
		s.Underline = d.Underline
		s.Strike = d.Strike
	case css.TextAlign:
		s.Align = d.Value
	case css.Color:
		s.Color = d.Hex
	}
}

// applyTag sets the attributes implied by an inline formatting tag.
func (s *Style) applyTag(a atom.Atom) {
	switch a {
	case atom.B, atom.Strong:
		s.Bold = true
	case atom.I, atom.Em:
		s.Italic = true
	case atom.U:
		s.Underline = true
	case atom.S, atom.Strike, atom.Del:
		s.Strike = true
	}
}

// compute returns the style of n: the inherited style, then the attributes
// implied by the tag itself, then stylesheet rules, then the style attribute.
func (w *walker) compute(n *html.Node, inherited Style) Style {
	s := inherited
	s.applyTag(n.DataAtom)

	for _, d := range w.sheet.Match(cssElement(n)) {
		s.Apply(d)
	}
	if v, ok := attr(n, "style"); ok {
		for _, d := range css.ParseDeclarations(v) {
			s.Apply(d)
		}
	}
	return s
}

// withDescendants ORs in the boolean attributes of formatting tags found
// anywhere below n. Subtrees for which skip returns true are ignored.
func withDescendants(n *html.Node, s Style, skip func(*html.Node) bool) Style {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || (skip != nil && skip(c)) {
			continue
		}
		s.applyTag(c.DataAtom)
		s = withDescendants(c, s, skip)
	}
	return s
}
