// Package docx serializes a document model into an Office Open XML
// word-processing package, entirely in memory.
//
// Output is deterministic: parts are written in a fixed order with a fixed
// modification time, so identical models produce identical bytes.
package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"path"
	"strings"
	"time"

	"github.com/beevik/etree"

	"github.com/alnah/go-cv2docx/internal/docmodel"
)

// MediaType is the media type of the produced packages.
const MediaType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Extension is the file extension of the produced packages.
const Extension = ".docx"

// Default paragraph style values.
const (
	DefaultFont        = "Arial"
	DefaultSize        = 32  // half-points
	DefaultLineSpacing = 240 // 240ths of a line, "auto" rule
)

// modTime is stamped on every archive entry.
var modTime = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// Defaults is the global paragraph style every block starts from.
type Defaults struct {
	Font        string
	Size        int
	LineSpacing int
}

func (d Defaults) withFallbacks() Defaults {
	if strings.TrimSpace(d.Font) == "" {
		d.Font = DefaultFont
	}
	if d.Size <= 0 {
		d.Size = DefaultSize
	}
	if d.LineSpacing <= 0 {
		d.LineSpacing = DefaultLineSpacing
	}
	return d
}

// Document is a finished package ready to be stored or streamed.
type Document struct {
	Content   []byte
	Filename  string
	MediaType string
}

// Writer builds packages. It holds no per-call state and is safe for
// concurrent use.
type Writer struct {
	defaults Defaults
}

// NewWriter creates a Writer. Zero fields of d fall back to the package
// defaults.
func NewWriter(d Defaults) *Writer {
	return &Writer{defaults: d.withFallbacks()}
}

// Package serializes doc and names the result after name.
func (w *Writer) Package(ctx context.Context, doc *docmodel.Document, name string) (*Document, error) {
	content, err := w.Write(ctx, doc)
	if err != nil {
		return nil, err
	}
	return &Document{Content: content, Filename: Filename(name), MediaType: MediaType}, nil
}

// Write serializes doc into package bytes. On failure it returns a
// *PackageError and no bytes.
func (w *Writer) Write(ctx context.Context, doc *docmodel.Document) ([]byte, error) {
	b := newBody()
	if doc != nil {
		for i, blk := range doc.Blocks {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := b.add(i, blk); err != nil {
				return nil, err
			}
		}
	}
	b.finish()

	parts := []struct {
		name  string
		stage string
		xml   *etree.Document
	}{
		{"[Content_Types].xml", StageContentTypes, contentTypesPart(b.media)},
		{"_rels/.rels", StageRelations, packageRelsPart()},
		{"word/document.xml", StageDocument, b.doc},
		{"word/styles.xml", StageStyles, stylesPart(w.defaults)},
		{"word/numbering.xml", StageNumbering, b.numbering.part()},
		{"word/settings.xml", StageSettings, settingsPart()},
		{"word/_rels/document.xml.rels", StageRelations, documentRelsPart(b.media)},
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, p := range parts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := p.xml.WriteToBytes()
		if err != nil {
			return nil, stageError(p.stage, -1, err)
		}
		if err := writeEntry(zw, p.name, data); err != nil {
			return nil, stageError(StageArchive, -1, err)
		}
	}
	for _, m := range b.media {
		if err := writeEntry(zw, path.Join("word/media", m.name), m.data); err != nil {
			return nil, stageError(StageMedia, -1, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, stageError(StageArchive, -1, err)
	}
	return buf.Bytes(), nil
}

func writeEntry(zw *zip.Writer, name string, data []byte) error {
	fw, err := zw.CreateHeader(&zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: modTime,
	})
	if err != nil {
		return err
	}
	_, err = fw.Write(data)
	return err
}

// Filename returns name with a .docx extension. An empty name becomes
// "document.docx".
func Filename(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "document"
	}
	if strings.EqualFold(path.Ext(name), Extension) {
		return name
	}
	return name + Extension
}
