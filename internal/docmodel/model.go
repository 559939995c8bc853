// Package docmodel holds the format-independent representation of a document
// and the builder that derives it from walked HTML elements.
package docmodel

import "github.com/alnah/go-cv2docx/internal/htmlwalk"

// Style is the run and paragraph formatting of a block.
type Style = htmlwalk.Style

// Block is one top-level document block: *Heading, *Paragraph, *List or
// *Image.
type Block interface {
	block()
	Kind() string
}

// Heading is a level 1-3 heading.
type Heading struct {
	Level int
	Text  string
	Style Style
}

// Paragraph is a paragraph of text. A Blank paragraph has no text and only
// preserves vertical space.
type Paragraph struct {
	Text         string
	Style        Style
	Blank        bool
	Preformatted bool
}

// List is an ordered or bulleted list.
type List struct {
	Ordered bool
	Items   []Item
}

// Item is a list entry. Level is its nesting depth, starting at 0.
type Item struct {
	Text  string
	Style Style
	Level int
}

// Image is a picture read from the asset root. Data holds the file content;
// Format is the decoder name (png, jpeg, gif, bmp, tiff or webp).
type Image struct {
	Src      string
	Alt      string
	Data     []byte
	Format   string
	Style    Style
	WidthPx  int
	HeightPx int
}

func (*Heading) block()   {}
func (*Paragraph) block() {}
func (*List) block()      {}
func (*Image) block()     {}

func (*Heading) Kind() string   { return "heading" }
func (*Paragraph) Kind() string { return "paragraph" }
func (*List) Kind() string      { return "list" }
func (*Image) Kind() string     { return "image" }

// Document is an ordered sequence of blocks.
type Document struct {
	Blocks []Block
}

// Len returns the number of blocks.
func (d *Document) Len() int { return len(d.Blocks) }
