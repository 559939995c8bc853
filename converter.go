package cv2docx

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/alnah/go-cv2docx/internal/css"
	"github.com/alnah/go-cv2docx/internal/docmodel"
	"github.com/alnah/go-cv2docx/internal/docx"
	"github.com/alnah/go-cv2docx/internal/htmlwalk"
	"github.com/alnah/go-cv2docx/internal/logging"
	"github.com/alnah/go-cv2docx/internal/pipeline"
	"github.com/alnah/go-cv2docx/internal/tmpl"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.TemplatePreprocessor = (*pipeline.TextNormalizer)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
)

// Converter runs the template and document pipelines. It holds no
// per-call state and is safe for concurrent use.
type Converter struct {
	cfg        converterConfig
	normalizer pipeline.TemplatePreprocessor
	markdown   pipeline.HTMLConverter
	builder    *docmodel.Builder
	writer     *docx.Writer
	renderLog  zerolog.Logger
	convertLog zerolog.Logger
}

// NewConverter creates a Converter. Options are applied in order; an
// invalid configuration given through WithConfig is reported here.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			logger:    zerolog.Nop(),
			assetRoot: docmodel.DefaultAssetRoot,
		},
		normalizer: &pipeline.TextNormalizer{CompressBlankLines: true},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.fileConfig != nil {
		if err := c.cfg.fileConfig.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	c.markdown = pipeline.NewGoldmarkConverter(c.cfg.highlightStyle)
	c.renderLog = logging.Component(c.cfg.logger, "render")
	c.convertLog = logging.Component(c.cfg.logger, "convert")
	c.builder = docmodel.NewBuilder(
		docmodel.WithAssetRoot(c.cfg.assetRoot),
		docmodel.WithImageSize(c.cfg.imageWidth, c.cfg.imageHeight),
		docmodel.WithLogger(logging.Component(c.cfg.logger, "docmodel")),
	)
	c.writer = docx.NewWriter(docx.Defaults{
		Font:        c.cfg.defaults.Font,
		Size:        c.cfg.defaults.Size,
		LineSpacing: c.cfg.defaults.LineSpacing,
	})
	return c, nil
}

// Render expands input.Template against input.Data. Unresolved constructs
// do not fail the render; they are listed in the result. A malformed loop
// structure returns an error wrapping ErrTemplateSyntax and a *ParseError.
//
// Markdown templates are expanded before conversion, so loop markers never
// reach goldmark.
func (c *Converter) Render(ctx context.Context, input RenderInput) (result *RenderResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	format := input.Format
	if format == "" {
		format = FormatHTML
	}
	if format != FormatHTML && format != FormatMarkdown {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, input.Format)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src := input.Template
	if format == FormatMarkdown {
		src = c.normalizer.PreprocessTemplate(ctx, src)
	}

	t, err := tmpl.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplateSyntax, err)
	}

	out, report := t.Execute(input.Data)
	c.logMisses(report)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if format == FormatMarkdown {
		out, err = c.markdown.ToHTML(ctx, out)
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			return nil, fmt.Errorf("converting Markdown: %w", err)
		}
	}

	return &RenderResult{HTML: out, Misses: toMisses(report)}, nil
}

func (c *Converter) logMisses(r tmpl.Report) {
	for _, m := range r.Placeholders {
		c.renderLog.Debug().Str("placeholder", m.Raw).Int("line", m.Pos.Line).Int("column", m.Pos.Col).
			Str("reason", m.Reason).Msg("placeholder left unresolved")
	}
	for _, m := range r.Loops {
		c.renderLog.Debug().Str("loop", m.Raw).Int("line", m.Pos.Line).Int("column", m.Pos.Col).
			Str("reason", m.Reason).Msg("loop rendered empty")
	}
}

// FullHTML wraps a rendered fragment in a standalone HTML5 document with css
// in a <style> block of its head.
func (c *Converter) FullHTML(html, css string) string {
	return pipeline.FullHTML(context.Background(), html, css)
}

// Convert turns rendered HTML and a stylesheet into a document package.
// Unsupported markup and unreadable images are skipped. A packaging failure
// returns an error wrapping ErrDocxGeneration and a *PackageError; no
// partial document is returned.
func (c *Converter) Convert(ctx context.Context, input ConvertInput) (doc *Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sheet := css.ParseStylesheet(input.CSS)
	els, err := htmlwalk.Walk(input.HTML, sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHTMLParse, err)
	}
	c.convertLog.Debug().Int("elements", len(els)).Int("rules", len(sheet.Rules)).Msg("walked HTML")

	model, err := c.builder.Build(ctx, els)
	if err != nil {
		return nil, err
	}

	out, err := c.writer.Package(ctx, model, input.Filename)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrDocxGeneration, err)
	}
	c.convertLog.Debug().Str("file", out.Filename).Int("blocks", model.Len()).Int("bytes", len(out.Content)).
		Msg("packaged document")

	return &Document{Content: out.Content, Filename: out.Filename, MediaType: out.MediaType}, nil
}

// Generate renders input.Template and converts the result. The HTML handed
// to Convert is the rendered fragment, not the full document.
func (c *Converter) Generate(ctx context.Context, input GenerateInput) (*GenerateResult, error) {
	rendered, err := c.Render(ctx, RenderInput{
		Template: input.Template,
		Data:     input.Data,
		Format:   input.Format,
	})
	if err != nil {
		return nil, err
	}

	doc, err := c.Convert(ctx, ConvertInput{
		HTML:     rendered.HTML,
		CSS:      input.CSS,
		Filename: input.Filename,
	})
	if err != nil {
		return nil, err
	}

	return &GenerateResult{HTML: rendered.HTML, Document: doc, Misses: rendered.Misses}, nil
}
