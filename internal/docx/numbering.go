package docx

import (
	"strconv"

	"github.com/beevik/etree"
)

const (
	bulletAbstractID  = 0
	decimalAbstractID = 1
	bulletNumID       = 1
	maxListLevel      = 8
)

var bulletGlyphs = []string{"•", "o", "▪"}

// numbering hands out numbering instances: one shared by every bulleted
// list, and a fresh one per ordered list so each restarts at 1.
type numbering struct {
	ordered []int
	next    int
}

func newNumbering() *numbering {
	return &numbering{next: bulletNumID + 1}
}

func (n *numbering) instance(ordered bool) int {
	if !ordered {
		return bulletNumID
	}
	id := n.next
	n.next++
	n.ordered = append(n.ordered, id)
	return id
}

func (n *numbering) part() *etree.Document {
	doc := newXMLDocument()
	root := doc.CreateElement("w:numbering")
	root.CreateAttr("xmlns:w", nsW)

	abstract(root, bulletAbstractID, func(lvl *etree.Element, i int) {
		val(lvl, "w:numFmt", "bullet")
		val(lvl, "w:lvlText", bulletGlyphs[i%len(bulletGlyphs)])
	})
	abstract(root, decimalAbstractID, func(lvl *etree.Element, i int) {
		val(lvl, "w:numFmt", "decimal")
		val(lvl, "w:lvlText", "%"+strconv.Itoa(i+1)+".")
	})

	num(root, bulletNumID, bulletAbstractID)
	for _, id := range n.ordered {
		el := num(root, id, decimalAbstractID)
		override := el.CreateElement("w:lvlOverride")
		override.CreateAttr("w:ilvl", "0")
		val(override, "w:startOverride", "1")
	}
	return doc
}

func abstract(root *etree.Element, id int, format func(lvl *etree.Element, i int)) {
	a := root.CreateElement("w:abstractNum")
	a.CreateAttr("w:abstractNumId", strconv.Itoa(id))
	val(a, "w:multiLevelType", "hybridMultilevel")
	for i := 0; i <= maxListLevel; i++ {
		lvl := a.CreateElement("w:lvl")
		lvl.CreateAttr("w:ilvl", strconv.Itoa(i))
		val(lvl, "w:start", "1")
		format(lvl, i)
		val(lvl, "w:lvlJc", "left")
		ind := lvl.CreateElement("w:pPr").CreateElement("w:ind")
		ind.CreateAttr("w:left", strconv.Itoa(720*(i+1)))
		ind.CreateAttr("w:hanging", "360")
	}
}

func num(root *etree.Element, id, abstractID int) *etree.Element {
	n := root.CreateElement("w:num")
	n.CreateAttr("w:numId", strconv.Itoa(id))
	val(n, "w:abstractNumId", strconv.Itoa(abstractID))
	return n
}
