package cv2docx

import (
	"fmt"
	"strings"

	"github.com/alnah/go-cv2docx/internal/docx"
	"github.com/alnah/go-cv2docx/internal/tmpl"
)

// MediaType is the media type of generated documents.
const MediaType = docx.MediaType

// Format selects how a template is interpreted.
type Format string

// Template formats.
const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
)

// ParseFormat parses a format name, case-insensitively. An empty name is
// FormatHTML; "md" is accepted for Markdown.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "html", "htm":
		return FormatHTML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Defaults is the global paragraph style of generated documents. Zero
// fields select the built-in values.
type Defaults struct {
	Font        string // default "Arial"
	Size        int    // half-points, default 32
	LineSpacing int    // 240ths of a line, default 240
}

// RenderInput is a template and the data tree it is expanded against.
type RenderInput struct {
	Template string
	Data     any
	Format   Format
}

// Miss is a template construct that did not resolve. Unresolved
// placeholders stay in the output verbatim; unresolved loops render nothing.
type Miss struct {
	Text   string // exact template text
	Line   int
	Column int
	Reason string
	Loop   bool
}

// RenderResult is the rendered HTML fragment and the constructs that did
// not resolve.
type RenderResult struct {
	HTML   string
	Misses []Miss
}

// ConvertInput is rendered HTML and the stylesheet applied to it.
type ConvertInput struct {
	HTML     string
	CSS      string
	Filename string // base name, ".docx" is appended when missing
}

// Document is a generated word-processing package.
type Document struct {
	Content   []byte
	Filename  string
	MediaType string
}

// GenerateInput renders a template and converts the result in one step.
type GenerateInput struct {
	Template string
	Format   Format
	Data     any
	CSS      string
	Filename string
}

// GenerateResult holds every artifact of a generation.
type GenerateResult struct {
	HTML     string
	Document *Document
	Misses   []Miss
}

func toMisses(r tmpl.Report) []Miss {
	if r.Empty() {
		return nil
	}
	out := make([]Miss, 0, len(r.Placeholders)+len(r.Loops))
	for _, m := range r.Placeholders {
		out = append(out, Miss{Text: m.Raw, Line: m.Pos.Line, Column: m.Pos.Col, Reason: m.Reason})
	}
	for _, m := range r.Loops {
		out = append(out, Miss{Text: m.Raw, Line: m.Pos.Line, Column: m.Pos.Col, Reason: m.Reason, Loop: true})
	}
	return out
}
