// Package css parses the subset of CSS the document converter understands:
// inline style declarations and simple rule sets.
//
// Recognized properties map to typed declarations. Anything else is kept as
// Unknown so callers can ignore it without losing the input.
package css

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gorilla/css/scanner"
)

// Declaration is one parsed "property: value" pair.
type Declaration interface {
	Property() string
}

// FontSize is font-size in px or pt.
type FontSize struct {
	Value float64
	Unit  string // "px" or "pt"
}

// FontWeight is font-weight reduced to bold or not bold.
type FontWeight struct {
	Bold bool
}

// FontStyle is font-style reduced to italic or upright.
type FontStyle struct {
	Italic bool
}

// TextDecoration lists the recognized decoration lines. Both false means
// "none".
type TextDecoration struct {
	Underline bool
	Strike    bool
}

// TextAlign is one of left, center, right, justify.
type TextAlign struct {
	Value string
}

// Color is a foreground color as six lowercase hex digits.
type Color struct {
	Hex string
}

// Unknown is a declaration whose property or value is not recognized.
type Unknown struct {
	Name  string
	Value string
}

func (FontSize) Property() string       { return "font-size" }
func (FontWeight) Property() string     { return "font-weight" }
func (FontStyle) Property() string      { return "font-style" }
func (TextDecoration) Property() string { return "text-decoration" }
func (TextAlign) Property() string      { return "text-align" }
func (Color) Property() string          { return "color" }
func (u Unknown) Property() string      { return u.Name }

// ParseDeclarations parses the body of a style attribute or rule set.
// Malformed declarations are dropped; parsing never fails.
func ParseDeclarations(s string) []Declaration {
	return parseDeclTokens(tokenize(s))
}

// tokenize returns the significant tokens of s, with comments removed and
// runs of whitespace kept as single TokenS markers.
func tokenize(s string) []*scanner.Token {
	var toks []*scanner.Token
	sc := scanner.New(s)
	for {
		tok := sc.Next()
		switch tok.Type {
		case scanner.TokenEOF, scanner.TokenError:
			return toks
		case scanner.TokenComment, scanner.TokenCDO, scanner.TokenCDC, scanner.TokenBOM:
			continue
		}
		toks = append(toks, tok)
	}
}

func isChar(tok *scanner.Token, c string) bool {
	return tok.Type == scanner.TokenChar && tok.Value == c
}

func parseDeclTokens(toks []*scanner.Token) []Declaration {
	var decls []Declaration
	depth := 0
	start := 0
	for i, tok := range toks {
		switch {
		case tok.Type == scanner.TokenFunction || isChar(tok, "("):
			depth++
		case isChar(tok, ")"):
			if depth > 0 {
				depth--
			}
		case isChar(tok, ";") && depth == 0:
			if d := parseDeclaration(toks[start:i]); d != nil {
				decls = append(decls, d)
			}
			start = i + 1
		}
	}
	if d := parseDeclaration(toks[start:]); d != nil {
		decls = append(decls, d)
	}
	return decls
}

func parseDeclaration(toks []*scanner.Token) Declaration {
	toks = trimSpace(toks)
	if len(toks) < 2 || toks[0].Type != scanner.TokenIdent {
		return nil
	}
	name := strings.ToLower(toks[0].Value)

	rest := trimSpace(toks[1:])
	if len(rest) == 0 || !isChar(rest[0], ":") {
		return nil
	}
	value := stripImportant(significant(rest[1:]))
	if len(value) == 0 {
		return nil
	}

	var d Declaration
	switch name {
	case "font-size":
		d = parseFontSize(value)
	case "font-weight":
		d = parseFontWeight(value)
	case "font-style":
		d = parseFontStyle(value)
	case "text-decoration", "text-decoration-line":
		d = parseTextDecoration(value)
	case "text-align":
		d = parseTextAlign(value)
	case "color":
		d = parseColor(value)
	}
	if d == nil {
		return Unknown{Name: name, Value: join(value)}
	}
	return d
}

func trimSpace(toks []*scanner.Token) []*scanner.Token {
	for len(toks) > 0 && toks[0].Type == scanner.TokenS {
		toks = toks[1:]
	}
	for len(toks) > 0 && toks[len(toks)-1].Type == scanner.TokenS {
		toks = toks[:len(toks)-1]
	}
	return toks
}

// significant drops whitespace tokens.
func significant(toks []*scanner.Token) []*scanner.Token {
	out := make([]*scanner.Token, 0, len(toks))
	for _, t := range toks {
		if t.Type != scanner.TokenS {
			out = append(out, t)
		}
	}
	return out
}

func stripImportant(toks []*scanner.Token) []*scanner.Token {
	n := len(toks)
	if n >= 2 && isChar(toks[n-2], "!") && toks[n-1].Type == scanner.TokenIdent &&
		strings.EqualFold(toks[n-1].Value, "important") {
		return toks[:n-2]
	}
	return toks
}

func join(toks []*scanner.Token) string {
	parts := make([]string, len(toks))
	for i, t := range toks {
		parts[i] = t.Value
	}
	return strings.Join(parts, " ")
}

func isIdent(t *scanner.Token) bool     { return t.Type == scanner.TokenIdent }
func isNumber(t *scanner.Token) bool    { return t.Type == scanner.TokenNumber }
func isDimension(t *scanner.Token) bool { return t.Type == scanner.TokenDimension }
func isHash(t *scanner.Token) bool      { return t.Type == scanner.TokenHash }

// single returns the lowercased value of a value made of exactly one token
// accepted by want.
func single(toks []*scanner.Token, want func(*scanner.Token) bool) (string, bool) {
	if len(toks) != 1 || !want(toks[0]) {
		return "", false
	}
	return strings.ToLower(toks[0].Value), true
}

func parseFontSize(toks []*scanner.Token) Declaration {
	v, ok := single(toks, isDimension)
	if !ok {
		return nil
	}
	for _, unit := range []string{"px", "pt"} {
		if num, found := strings.CutSuffix(v, unit); found {
			f, err := strconv.ParseFloat(num, 64)
			if err != nil || f <= 0 {
				return nil
			}
			return FontSize{Value: f, Unit: unit}
		}
	}
	return nil
}

func parseFontWeight(toks []*scanner.Token) Declaration {
	if v, ok := single(toks, isIdent); ok {
		switch v {
		case "bold", "bolder":
			return FontWeight{Bold: true}
		case "normal", "lighter":
			return FontWeight{Bold: false}
		}
		return nil
	}
	if v, ok := single(toks, isNumber); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil
		}
		return FontWeight{Bold: n >= 700}
	}
	return nil
}

func parseFontStyle(toks []*scanner.Token) Declaration {
	v, ok := single(toks, isIdent)
	if !ok {
		return nil
	}
	switch v {
	case "italic", "oblique":
		return FontStyle{Italic: true}
	case "normal":
		return FontStyle{Italic: false}
	}
	return nil
}

func parseTextDecoration(toks []*scanner.Token) Declaration {
	var d TextDecoration
	recognized := false
	for _, t := range toks {
		if t.Type != scanner.TokenIdent {
			continue
		}
		switch strings.ToLower(t.Value) {
		case "underline":
			d.Underline, recognized = true, true
		case "line-through":
			d.Strike, recognized = true, true
		case "none":
			recognized = true
		}
	}
	if !recognized {
		return nil
	}
	return d
}

func parseTextAlign(toks []*scanner.Token) Declaration {
	v, ok := single(toks, isIdent)
	if !ok {
		return nil
	}
	switch v {
	case "left", "center", "right", "justify":
		return TextAlign{Value: v}
	case "start":
		return TextAlign{Value: "left"}
	case "end":
		return TextAlign{Value: "right"}
	}
	return nil
}

func parseColor(toks []*scanner.Token) Declaration {
	if v, ok := single(toks, isHash); ok {
		if hex, ok := normalizeHex(strings.TrimPrefix(v, "#")); ok {
			return Color{Hex: hex}
		}
		return nil
	}

	if len(toks) < 2 || toks[0].Type != scanner.TokenFunction {
		return nil
	}
	fn := strings.ToLower(toks[0].Value)
	if fn != "rgb(" && fn != "rgba(" {
		return nil
	}
	if !isChar(toks[len(toks)-1], ")") {
		return nil
	}

	var channels []int
	for _, t := range toks[1 : len(toks)-1] {
		switch {
		case isChar(t, ","):
			continue
		case t.Type == scanner.TokenNumber:
			f, err := strconv.ParseFloat(t.Value, 64)
			if err != nil {
				return nil
			}
			channels = append(channels, clamp(int(f+0.5)))
		default:
			return nil
		}
	}
	if len(channels) != 3 && !(fn == "rgba(" && len(channels) == 4) {
		return nil
	}
	return Color{Hex: fmt.Sprintf("%02x%02x%02x", channels[0], channels[1], channels[2])}
}

func normalizeHex(h string) (string, bool) {
	h = strings.ToLower(h)
	for _, r := range h {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return "", false
		}
	}
	switch len(h) {
	case 6:
		return h, true
	case 3:
		return string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]}), true
	}
	return "", false
}

func clamp(n int) int {
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}
