package tmpl

import "strings"

// tokenKind identifies a lexical item of a template.
type tokenKind int

const (
	tokText tokenKind = iota
	tokVar
	tokThis
	tokIndex
	tokEachOpen
	tokEachClose
)

// Pos is a 1-based line and column in the template source.
type Pos struct {
	Line int
	Col  int
}

type token struct {
	kind tokenKind
	raw  string // exact source text, braces included
	arg  string // trimmed tag content; the path alone for #each
	pos  Pos
}

// lex splits src into text and tag tokens. A "{{" that is not closed by "}}",
// or whose content is empty or contains "}", is plain text.
func lex(src string) []token {
	var (
		toks []token
		line = 1
		col  = 1
		text strings.Builder
		tpos Pos
	)

	// Columns count runes, not bytes.
	advance := func(s string) {
		for j := 0; j < len(s); j++ {
			switch {
			case s[j] == '\n':
				line++
				col = 1
			case s[j]&0xC0 != 0x80:
				col++
			}
		}
	}
	flush := func() {
		if text.Len() > 0 {
			toks = append(toks, token{kind: tokText, raw: text.String(), pos: tpos})
			text.Reset()
		}
	}

	for i := 0; i < len(src); {
		if strings.HasPrefix(src[i:], "{{") {
			if end := strings.Index(src[i+2:], "}}"); end >= 0 {
				content := src[i+2 : i+2+end]
				if content != "" && !strings.Contains(content, "}") {
					flush()
					raw := src[i : i+4+end]
					toks = append(toks, classify(raw, content, Pos{line, col}))
					advance(raw)
					i += len(raw)
					continue
				}
			}
		}
		if text.Len() == 0 {
			tpos = Pos{line, col}
		}
		text.WriteByte(src[i])
		advance(src[i : i+1])
		i++
	}
	flush()
	return toks
}

func classify(raw, content string, pos Pos) token {
	arg := strings.TrimSpace(content)
	t := token{kind: tokVar, raw: raw, arg: arg, pos: pos}

	switch {
	case arg == "/each":
		t.kind = tokEachClose
	case arg == "#each":
		t.kind = tokEachOpen
		t.arg = ""
	case strings.HasPrefix(arg, "#each") && isSpace(arg[len("#each")]):
		t.kind = tokEachOpen
		t.arg = strings.TrimSpace(arg[len("#each"):])
	case arg == "@index":
		t.kind = tokIndex
	case arg == "this":
		t.kind = tokThis
	case strings.HasPrefix(arg, "this."):
		t.kind = tokThis
	}
	return t
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
