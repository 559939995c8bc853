// Package htmlwalk extracts the block elements a word-processing document can
// represent from an HTML fragment, together with their computed styles.
//
// Recognized blocks are h1-h3 headings, paragraphs, preformatted text,
// images and ordered or unordered lists. Any other element is not emitted,
// but the walker descends into it, so blocks wrapped in containers such as
// div or section are still found and inherit the container's style.
package htmlwalk

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-cv2docx/internal/css"
)

// Kind identifies the type of a block element.
type Kind int

const (
	KindHeading Kind = iota + 1
	KindParagraph
	KindPreformatted
	KindImage
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindParagraph:
		return "paragraph"
	case KindPreformatted:
		return "preformatted"
	case KindImage:
		return "image"
	case KindList:
		return "list"
	}
	return "unknown"
}

// Element is one block found in the fragment.
type Element struct {
	Kind  Kind
	Tag   string
	Level int // heading level
	Text  string
	Style Style

	// Images.
	Src string
	Alt string

	// Lists.
	Ordered bool
	Items   []Item
}

// Item is one list item. Level is 0 for items of the list itself and grows by
// one per nested list.
type Item struct {
	Text  string
	Style Style
	Level int
}

type walker struct {
	sheet *css.Stylesheet
	out   []Element
}

// Walk parses fragment and returns its block elements in document order.
// Rules from sheet apply before inline style attributes; rules found in
// <style> elements of the fragment are appended to sheet.
func Walk(fragment string, sheet *css.Stylesheet) ([]Element, error) {
	root, err := parse(fragment)
	if err != nil {
		return nil, err
	}

	if embedded := styleText(root); embedded != "" {
		combined := &css.Stylesheet{}
		if sheet != nil {
			combined.Rules = append(combined.Rules, sheet.Rules...)
		}
		combined.Rules = append(combined.Rules, css.ParseStylesheet(embedded).Rules...)
		sheet = combined
	}

	w := &walker{sheet: sheet}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		w.visit(c, Style{})
	}
	return w.out, nil
}

// WalkReader is Walk for a reader.
func WalkReader(r io.Reader, sheet *css.Stylesheet) ([]Element, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Walk(string(b), sheet)
}

func (w *walker) visit(n *html.Node, inherited Style) {
	if n.Type != html.ElementNode {
		return
	}
	if ignored(n) {
		return
	}

	style := w.compute(n, inherited)

	switch n.DataAtom {
	case atom.H1, atom.H2, atom.H3:
		w.out = append(w.out, Element{
			Kind:  KindHeading,
			Tag:   n.Data,
			Level: int(n.Data[1] - '0'),
			Text:  collapse(text(n, nil)),
			Style: withDescendants(n, style, nil),
		})
	case atom.P:
		w.paragraph(n, style)
	case atom.Pre:
		w.out = append(w.out, Element{
			Kind:  KindPreformatted,
			Tag:   n.Data,
			Text:  strings.TrimRight(text(n, nil), "\r\n"),
			Style: withDescendants(n, style, nil),
		})
	case atom.Img:
		w.image(n, style)
	case atom.Ol, atom.Ul:
		el := Element{Kind: KindList, Tag: n.Data, Ordered: n.DataAtom == atom.Ol, Style: style}
		w.items(n, style, 0, &el.Items)
		w.out = append(w.out, el)
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			w.visit(c, style)
		}
	}
}

// paragraph emits a paragraph, or the images of a paragraph that holds
// nothing but images.
func (w *walker) paragraph(n *html.Node, style Style) {
	txt := collapse(text(n, nil))
	if txt == "" {
		if imgs := images(n); len(imgs) > 0 {
			for _, img := range imgs {
				w.image(img, w.compute(img, style))
			}
			return
		}
	}
	w.out = append(w.out, Element{
		Kind:  KindParagraph,
		Tag:   n.Data,
		Text:  txt,
		Style: withDescendants(n, style, nil),
	})
}

func (w *walker) image(n *html.Node, style Style) {
	src, _ := attr(n, "src")
	alt, _ := attr(n, "alt")
	w.out = append(w.out, Element{
		Kind:  KindImage,
		Tag:   n.Data,
		Src:   strings.TrimSpace(src),
		Alt:   alt,
		Style: style,
	})
}

// items collects every li below n in document order. Text and formatting
// tags of nested lists belong to the nested items, not to their parent.
func (w *walker) items(n *html.Node, inherited Style, level int, out *[]Item) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || ignored(c) {
			continue
		}
		style := w.compute(c, inherited)
		switch c.DataAtom {
		case atom.Li:
			*out = append(*out, Item{
				Text:  collapse(text(c, isList)),
				Style: withDescendants(c, style, isList),
				Level: level,
			})
			w.nested(c, style, level, out)
		case atom.Ol, atom.Ul:
			w.items(c, style, level+1, out)
		default:
			w.items(c, style, level, out)
		}
	}
}

// nested finds lists inside a list item.
func (w *walker) nested(li *html.Node, inherited Style, level int, out *[]Item) {
	for c := li.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || ignored(c) {
			continue
		}
		style := w.compute(c, inherited)
		if isList(c) {
			w.items(c, style, level+1, out)
			continue
		}
		w.nested(c, style, level, out)
	}
}

func isList(n *html.Node) bool {
	return n.DataAtom == atom.Ol || n.DataAtom == atom.Ul
}

// ignored reports elements whose content is never document text.
func ignored(n *html.Node) bool {
	switch n.DataAtom {
	case atom.Script, atom.Style, atom.Head, atom.Template, atom.Noscript, atom.Title:
		return true
	}
	return false
}

func images(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if c.DataAtom == atom.Img {
			out = append(out, c)
			continue
		}
		out = append(out, images(c)...)
	}
	return out
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func cssElement(n *html.Node) css.Element {
	el := css.Element{Tag: strings.ToLower(n.Data)}
	if id, ok := attr(n, "id"); ok {
		el.ID = id
	}
	if class, ok := attr(n, "class"); ok {
		el.Classes = strings.Fields(class)
	}
	return el
}
