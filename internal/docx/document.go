package docx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/alnah/go-cv2docx/internal/docmodel"
)

// emuPerPixel converts pixels at 96 dpi to English Metric Units.
const emuPerPixel = 9525

const monospaceFont = "Courier New"

// Letter paper with one inch margins, in twentieths of a point.
const (
	pageWidth  = "12240"
	pageHeight = "15840"
	pageMargin = "1440"
)

var jcValues = map[string]string{
	"left":    "left",
	"center":  "center",
	"right":   "right",
	"justify": "both",
}

// mediaFile is an image stored under word/media.
type mediaFile struct {
	name        string
	rid         string
	ext         string
	contentType string
	data        []byte
}

// body accumulates word/document.xml together with the media and numbering
// instances it references.
type body struct {
	doc       *etree.Document
	body      *etree.Element
	media     []mediaFile
	mediaBy   map[string]mediaFile
	numbering *numbering
	drawings  int
}

func newBody() *body {
	doc := newXMLDocument()
	root := doc.CreateElement("w:document")
	root.CreateAttr("xmlns:w", nsW)
	root.CreateAttr("xmlns:r", nsR)
	root.CreateAttr("xmlns:wp", nsWP)
	root.CreateAttr("xmlns:a", nsA)
	root.CreateAttr("xmlns:pic", nsPic)

	return &body{
		doc:       doc,
		body:      root.CreateElement("w:body"),
		mediaBy:   make(map[string]mediaFile),
		numbering: newNumbering(),
	}
}

func (b *body) add(i int, blk docmodel.Block) error {
	switch blk := blk.(type) {
	case *docmodel.Heading:
		b.heading(blk)
	case *docmodel.Paragraph:
		b.paragraph(blk)
	case *docmodel.List:
		b.list(blk)
	case *docmodel.Image:
		if err := b.image(blk); err != nil {
			return stageError(StageMedia, i, err)
		}
	default:
		return stageError(StageDocument, i, fmt.Errorf("%w: %T", ErrUnknownBlock, blk))
	}
	return nil
}

func (b *body) heading(h *docmodel.Heading) {
	p := b.body.CreateElement("w:p")
	pPr := p.CreateElement("w:pPr")
	level := min(max(h.Level, 1), 3)
	val(pPr, "w:pStyle", "Heading"+strconv.Itoa(level))
	justify(pPr, h.Style.Align)
	runs(p, h.Text, h.Style, "")
}

func (b *body) paragraph(para *docmodel.Paragraph) {
	p := b.body.CreateElement("w:p")
	if para.Blank {
		return
	}
	if para.Style.Align != "" {
		justify(p.CreateElement("w:pPr"), para.Style.Align)
	}
	font := ""
	if para.Preformatted {
		font = monospaceFont
	}
	runs(p, para.Text, para.Style, font)
}

func (b *body) list(l *docmodel.List) {
	numID := strconv.Itoa(b.numbering.instance(l.Ordered))
	for _, it := range l.Items {
		p := b.body.CreateElement("w:p")
		pPr := p.CreateElement("w:pPr")
		val(pPr, "w:pStyle", "ListParagraph")
		numPr := pPr.CreateElement("w:numPr")
		val(numPr, "w:ilvl", strconv.Itoa(min(max(it.Level, 0), maxListLevel)))
		val(numPr, "w:numId", numID)
		justify(pPr, it.Style.Align)
		runs(p, it.Text, it.Style, "")
	}
}

func (b *body) image(img *docmodel.Image) error {
	typ, ok := imageTypes[img.Format]
	if !ok {
		return fmt.Errorf("%w: format %q", ErrUnsupportedImage, img.Format)
	}
	if len(img.Data) == 0 {
		return fmt.Errorf("%w: %s has no data", ErrUnsupportedImage, img.Src)
	}
	if img.WidthPx <= 0 || img.HeightPx <= 0 {
		return fmt.Errorf("%w: invalid extent %dx%d", ErrUnsupportedImage, img.WidthPx, img.HeightPx)
	}

	m, seen := b.mediaBy[img.Src]
	if !seen {
		n := len(b.media) + 1
		m = mediaFile{
			name:        "image" + strconv.Itoa(n) + "." + typ.ext,
			rid:         "rId" + strconv.Itoa(firstMediaID+len(b.media)),
			ext:         typ.ext,
			contentType: typ.contentType,
			data:        img.Data,
		}
		b.media = append(b.media, m)
		b.mediaBy[img.Src] = m
	}

	b.drawings++
	id := strconv.Itoa(b.drawings)
	cx := strconv.Itoa(img.WidthPx * emuPerPixel)
	cy := strconv.Itoa(img.HeightPx * emuPerPixel)

	p := b.body.CreateElement("w:p")
	justify(p.CreateElement("w:pPr"), img.Style.Align)

	inline := p.CreateElement("w:r").CreateElement("w:drawing").CreateElement("wp:inline")
	for _, k := range []string{"distT", "distB", "distL", "distR"} {
		inline.CreateAttr(k, "0")
	}
	ext := inline.CreateElement("wp:extent")
	ext.CreateAttr("cx", cx)
	ext.CreateAttr("cy", cy)
	docPr := inline.CreateElement("wp:docPr")
	docPr.CreateAttr("id", id)
	docPr.CreateAttr("name", "Picture "+id)
	if img.Alt != "" {
		docPr.CreateAttr("descr", xmlSafe(img.Alt))
	}
	locks := inline.CreateElement("wp:cNvGraphicFramePr").CreateElement("a:graphicFrameLocks")
	locks.CreateAttr("noChangeAspect", "1")

	data := inline.CreateElement("a:graphic").CreateElement("a:graphicData")
	data.CreateAttr("uri", nsPic)
	pic := data.CreateElement("pic:pic")

	nv := pic.CreateElement("pic:nvPicPr")
	cNvPr := nv.CreateElement("pic:cNvPr")
	cNvPr.CreateAttr("id", "0")
	cNvPr.CreateAttr("name", m.name)
	nv.CreateElement("pic:cNvPicPr")

	fill := pic.CreateElement("pic:blipFill")
	fill.CreateElement("a:blip").CreateAttr("r:embed", m.rid)
	fill.CreateElement("a:stretch").CreateElement("a:fillRect")

	spPr := pic.CreateElement("pic:spPr")
	xfrm := spPr.CreateElement("a:xfrm")
	off := xfrm.CreateElement("a:off")
	off.CreateAttr("x", "0")
	off.CreateAttr("y", "0")
	aext := xfrm.CreateElement("a:ext")
	aext.CreateAttr("cx", cx)
	aext.CreateAttr("cy", cy)
	geom := spPr.CreateElement("a:prstGeom")
	geom.CreateAttr("prst", "rect")
	geom.CreateElement("a:avLst")
	return nil
}

// finish appends the section properties closing the body.
func (b *body) finish() {
	sect := b.body.CreateElement("w:sectPr")
	pg := sect.CreateElement("w:pgSz")
	pg.CreateAttr("w:w", pageWidth)
	pg.CreateAttr("w:h", pageHeight)
	mar := sect.CreateElement("w:pgMar")
	for _, k := range []string{"w:top", "w:right", "w:bottom", "w:left"} {
		mar.CreateAttr(k, pageMargin)
	}
	mar.CreateAttr("w:header", "720")
	mar.CreateAttr("w:footer", "720")
	mar.CreateAttr("w:gutter", "0")
}

func justify(pPr *etree.Element, align string) {
	if jc, ok := jcValues[align]; ok {
		val(pPr, "w:jc", jc)
	}
}

// runs writes text as one run per line, separated by breaks, all sharing the
// run properties derived from s.
func runs(p *etree.Element, text string, s docmodel.Style, font string) {
	for i, line := range strings.Split(text, "\n") {
		r := p.CreateElement("w:r")
		runProperties(r, s, font)
		if i > 0 {
			r.CreateElement("w:br")
		}
		if line == "" {
			continue
		}
		t := r.CreateElement("w:t")
		t.CreateAttr("xml:space", "preserve")
		t.SetText(xmlSafe(line))
	}
}

// runProperties writes w:rPr in schema order, or nothing when s carries no
// run formatting.
func runProperties(r *etree.Element, s docmodel.Style, font string) {
	if font == "" && !s.Bold && !s.Italic && !s.Strike && !s.Underline && s.Color == "" && s.Size == 0 {
		return
	}
	rPr := r.CreateElement("w:rPr")
	if font != "" {
		fonts(rPr, font)
	}
	if s.Bold {
		rPr.CreateElement("w:b")
	}
	if s.Italic {
		rPr.CreateElement("w:i")
	}
	if s.Strike {
		rPr.CreateElement("w:strike")
	}
	if s.Color != "" {
		val(rPr, "w:color", strings.ToUpper(s.Color))
	}
	if s.Size > 0 {
		size(rPr, s.Size)
	}
	if s.Underline {
		val(rPr, "w:u", "single")
	}
}

// xmlSafe drops characters XML 1.0 cannot represent.
func xmlSafe(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			return r
		case r < 0x20, r == 0xFFFE, r == 0xFFFF, r >= 0xD800 && r <= 0xDFFF:
			return -1
		}
		return r
	}, s)
}
