package pipeline

import (
	"context"
	"regexp"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Runs of two or more blank lines
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
)

// TemplatePreprocessor defines the contract for template text preprocessing.
type TemplatePreprocessor interface {
	PreprocessTemplate(ctx context.Context, content string) string
}

// TextNormalizer normalizes template text before parsing.
type TextNormalizer struct {
	// CompressBlankLines limits runs of blank lines to one. Only useful for
	// Markdown, where blank lines are paragraph separators.
	CompressBlankLines bool
}

// PreprocessTemplate applies the configured transformations.
func (p *TextNormalizer) PreprocessTemplate(ctx context.Context, content string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}

	content = normalizeLineEndings(content)
	if p.CompressBlankLines {
		content = compressBlankLines(content)
	}
	return content
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// compressBlankLines collapses runs of blank lines into a single one.
func compressBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}
