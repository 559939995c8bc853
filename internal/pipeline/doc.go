// Package pipeline implements the text stages that surround template
// rendering:
//   - template text normalization (line endings, blank line runs)
//   - Markdown to HTML conversion via Goldmark, for Markdown templates
//   - wrapping a rendered fragment in a standalone HTML5 document with an
//     injected stylesheet
//
// Document packaging is handled by the docx package; this package only
// produces and decorates HTML.
package pipeline
