package docmodel

import (
	"bytes"
	"context"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"
	"strings"

	"github.com/rs/zerolog"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
	"golang.org/x/text/unicode/norm"

	"github.com/alnah/go-cv2docx/internal/fileutil"
	"github.com/alnah/go-cv2docx/internal/htmlwalk"
)

// ListItemSize is the fixed size of list items, in half-points.
const ListItemSize = 28

// HeadingSizes maps heading levels to their fixed size in half-points.
var HeadingSizes = map[int]int{1: 48, 2: 40, 3: 32}

// Default image extent, in pixels.
const (
	DefaultImageWidth  = 500
	DefaultImageHeight = 350
)

// DefaultAssetRoot is the directory image sources are resolved against.
const DefaultAssetRoot = "public"

// Builder turns walked HTML elements into a Document.
type Builder struct {
	assetRoot   string
	imageWidth  int
	imageHeight int
	logger      zerolog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithAssetRoot sets the directory that "/..." image sources resolve under.
func WithAssetRoot(dir string) Option {
	return func(b *Builder) { b.assetRoot = dir }
}

// WithImageSize sets the extent images are emitted at. Non-positive values
// keep the default.
func WithImageSize(width, height int) Option {
	return func(b *Builder) {
		if width > 0 {
			b.imageWidth = width
		}
		if height > 0 {
			b.imageHeight = height
		}
	}
}

// WithLogger sets the logger skipped images are reported to.
func WithLogger(l zerolog.Logger) Option {
	return func(b *Builder) { b.logger = l }
}

// NewBuilder creates a Builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		assetRoot:   DefaultAssetRoot,
		imageWidth:  DefaultImageWidth,
		imageHeight: DefaultImageHeight,
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build converts els in order. It fails only when ctx is done; unusable
// elements are dropped.
func (b *Builder) Build(ctx context.Context, els []htmlwalk.Element) (*Document, error) {
	doc := &Document{}
	for _, el := range els {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		switch el.Kind {
		case htmlwalk.KindHeading:
			doc.Blocks = append(doc.Blocks, b.heading(el))
		case htmlwalk.KindParagraph, htmlwalk.KindPreformatted:
			doc.Blocks = append(doc.Blocks, paragraph(el))
		case htmlwalk.KindImage:
			if img := b.image(el); img != nil {
				doc.Blocks = append(doc.Blocks, img, &Paragraph{Blank: true})
			}
		case htmlwalk.KindList:
			if l := list(el); l != nil {
				doc.Blocks = append(doc.Blocks, l)
			}
		}
	}
	return doc, nil
}

func (b *Builder) heading(el htmlwalk.Element) *Heading {
	style := el.Style
	if size, ok := HeadingSizes[el.Level]; ok {
		style.Size = size
	}
	return &Heading{Level: el.Level, Text: norm.NFC.String(el.Text), Style: style}
}

func paragraph(el htmlwalk.Element) *Paragraph {
	if strings.TrimSpace(el.Text) == "" {
		return &Paragraph{Blank: true}
	}
	return &Paragraph{
		Text:         norm.NFC.String(el.Text),
		Style:        el.Style,
		Preformatted: el.Kind == htmlwalk.KindPreformatted,
	}
}

func list(el htmlwalk.Element) *List {
	l := &List{Ordered: el.Ordered}
	for _, it := range el.Items {
		if strings.TrimSpace(it.Text) == "" {
			continue
		}
		style := it.Style
		style.Size = ListItemSize
		l.Items = append(l.Items, Item{Text: norm.NFC.String(it.Text), Style: style, Level: it.Level})
	}
	if len(l.Items) == 0 {
		return nil
	}
	return l
}

// image loads the picture behind el, or returns nil when the source is not a
// readable local image under the asset root.
func (b *Builder) image(el htmlwalk.Element) *Image {
	src := el.Src
	if i := strings.IndexAny(src, "?#"); i >= 0 {
		src = src[:i]
	}
	if !strings.HasPrefix(src, "/") || fileutil.IsURL(src) {
		b.skip(el, "source is not a local absolute path", nil)
		return nil
	}

	path, err := fileutil.SafeJoin(b.assetRoot, strings.TrimPrefix(src, "/"))
	if err != nil {
		b.skip(el, "outside asset root", err)
		return nil
	}
	if !fileutil.FileExists(path) {
		b.skip(el, "file not found", nil)
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		b.skip(el, "unreadable", err)
		return nil
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		b.skip(el, "unsupported format", err)
		return nil
	}

	style := el.Style
	if style.Align == "" {
		style.Align = "center"
	}
	return &Image{
		Src:      el.Src,
		Alt:      el.Alt,
		Data:     data,
		Format:   format,
		Style:    style,
		WidthPx:  b.imageWidth,
		HeightPx: b.imageHeight,
	}
}

func (b *Builder) skip(el htmlwalk.Element, reason string, err error) {
	b.logger.Debug().
		Str("src", el.Src).
		Str("reason", reason).
		Err(err).
		Msg("image skipped")
}
