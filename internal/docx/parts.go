package docx

import (
	"sort"
	"strconv"

	"github.com/beevik/etree"
)

// XML namespaces used by the generated parts.
const (
	nsW       = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsWP      = "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"
	nsA       = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsPic     = "http://schemas.openxmlformats.org/drawingml/2006/picture"
	nsRels    = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsTypes   = "http://schemas.openxmlformats.org/package/2006/content-types"
	relOffice = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relBase   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/"
)

const (
	ctRels      = "application/vnd.openxmlformats-package.relationships+xml"
	ctXML       = "application/xml"
	ctMain      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	ctStyles    = "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"
	ctNumbering = "application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"
	ctSettings  = "application/vnd.openxmlformats-officedocument.wordprocessingml.settings+xml"
)

// Relationship IDs of the fixed parts. Media relationships follow.
const (
	ridStyles    = "rId1"
	ridNumbering = "rId2"
	ridSettings  = "rId3"
	firstMediaID = 4
)

// imageTypes maps decoder names to file extensions and content types.
var imageTypes = map[string]struct{ ext, contentType string }{
	"png":  {"png", "image/png"},
	"jpeg": {"jpeg", "image/jpeg"},
	"gif":  {"gif", "image/gif"},
	"bmp":  {"bmp", "image/bmp"},
	"tiff": {"tiff", "image/tiff"},
	"webp": {"webp", "image/webp"},
}

func newXMLDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	return doc
}

func contentTypesPart(media []mediaFile) *etree.Document {
	doc := newXMLDocument()
	types := doc.CreateElement("Types")
	types.CreateAttr("xmlns", nsTypes)

	defaults := map[string]string{"rels": ctRels, "xml": ctXML}
	for _, m := range media {
		defaults[m.ext] = m.contentType
	}
	exts := make([]string, 0, len(defaults))
	for ext := range defaults {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	for _, ext := range exts {
		d := types.CreateElement("Default")
		d.CreateAttr("Extension", ext)
		d.CreateAttr("ContentType", defaults[ext])
	}

	for _, o := range []struct{ part, ct string }{
		{"/word/document.xml", ctMain},
		{"/word/styles.xml", ctStyles},
		{"/word/numbering.xml", ctNumbering},
		{"/word/settings.xml", ctSettings},
	} {
		el := types.CreateElement("Override")
		el.CreateAttr("PartName", o.part)
		el.CreateAttr("ContentType", o.ct)
	}
	return doc
}

func packageRelsPart() *etree.Document {
	doc := newXMLDocument()
	rels := doc.CreateElement("Relationships")
	rels.CreateAttr("xmlns", nsRels)
	addRel(rels, "rId1", relOffice, "word/document.xml")
	return doc
}

func documentRelsPart(media []mediaFile) *etree.Document {
	doc := newXMLDocument()
	rels := doc.CreateElement("Relationships")
	rels.CreateAttr("xmlns", nsRels)
	addRel(rels, ridStyles, relBase+"styles", "styles.xml")
	addRel(rels, ridNumbering, relBase+"numbering", "numbering.xml")
	addRel(rels, ridSettings, relBase+"settings", "settings.xml")
	for _, m := range media {
		addRel(rels, m.rid, relBase+"image", "media/"+m.name)
	}
	return doc
}

func addRel(parent *etree.Element, id, typ, target string) {
	r := parent.CreateElement("Relationship")
	r.CreateAttr("Id", id)
	r.CreateAttr("Type", typ)
	r.CreateAttr("Target", target)
}

func settingsPart() *etree.Document {
	doc := newXMLDocument()
	s := doc.CreateElement("w:settings")
	s.CreateAttr("xmlns:w", nsW)
	val(s, "w:defaultTabStop", "720")
	val(s, "w:characterSpacingControl", "doNotCompress")
	compat := s.CreateElement("w:compat")
	cs := compat.CreateElement("w:compatSetting")
	cs.CreateAttr("w:name", "compatibilityMode")
	cs.CreateAttr("w:uri", "http://schemas.microsoft.com/office/word")
	cs.CreateAttr("w:val", "15")
	return doc
}

// stylesPart declares the document defaults, Normal, the three heading
// styles and the list paragraph style.
func stylesPart(d Defaults) *etree.Document {
	doc := newXMLDocument()
	styles := doc.CreateElement("w:styles")
	styles.CreateAttr("xmlns:w", nsW)

	defaults := styles.CreateElement("w:docDefaults")
	rPr := defaults.CreateElement("w:rPrDefault").CreateElement("w:rPr")
	fonts(rPr, d.Font)
	size(rPr, d.Size)
	pPr := defaults.CreateElement("w:pPrDefault").CreateElement("w:pPr")
	spacing(pPr, "0", "0", d.LineSpacing)

	normal := style(styles, "Normal", "Normal", "")
	normal.CreateAttr("w:default", "1")
	normal.CreateElement("w:qFormat")
	spacing(normal.CreateElement("w:pPr"), "0", "0", d.LineSpacing)
	nrPr := normal.CreateElement("w:rPr")
	fonts(nrPr, d.Font)
	size(nrPr, d.Size)

	for level, sz := range []int{48, 40, 32} {
		id := "Heading" + strconv.Itoa(level+1)
		h := style(styles, id, "heading "+strconv.Itoa(level+1), "Normal")
		val(h, "w:next", "Normal")
		h.CreateElement("w:qFormat")
		hpPr := h.CreateElement("w:pPr")
		hpPr.CreateElement("w:keepNext")
		spacing(hpPr, "240", "120", d.LineSpacing)
		val(hpPr, "w:outlineLvl", strconv.Itoa(level))
		hrPr := h.CreateElement("w:rPr")
		hrPr.CreateElement("w:b")
		size(hrPr, sz)
	}

	list := style(styles, "ListParagraph", "List Paragraph", "Normal")
	list.CreateElement("w:qFormat")
	ind := list.CreateElement("w:pPr").CreateElement("w:ind")
	ind.CreateAttr("w:left", "720")

	return doc
}

func style(parent *etree.Element, id, name, basedOn string) *etree.Element {
	s := parent.CreateElement("w:style")
	s.CreateAttr("w:type", "paragraph")
	s.CreateAttr("w:styleId", id)
	val(s, "w:name", name)
	if basedOn != "" {
		val(s, "w:basedOn", basedOn)
	}
	return s
}

func spacing(pPr *etree.Element, before, after string, line int) {
	sp := pPr.CreateElement("w:spacing")
	sp.CreateAttr("w:before", before)
	sp.CreateAttr("w:after", after)
	sp.CreateAttr("w:line", strconv.Itoa(line))
	sp.CreateAttr("w:lineRule", "auto")
}

func fonts(rPr *etree.Element, font string) {
	f := rPr.CreateElement("w:rFonts")
	for _, k := range []string{"w:ascii", "w:hAnsi", "w:eastAsia", "w:cs"} {
		f.CreateAttr(k, font)
	}
}

func size(rPr *etree.Element, halfPoints int) {
	v := strconv.Itoa(halfPoints)
	val(rPr, "w:sz", v)
	val(rPr, "w:szCs", v)
}

// val appends <tag w:val="v"/> to parent.
func val(parent *etree.Element, tag, v string) *etree.Element {
	el := parent.CreateElement(tag)
	el.CreateAttr("w:val", v)
	return el
}
