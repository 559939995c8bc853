package css

import (
	"sort"
	"strings"

	"github.com/gorilla/css/scanner"
)

// Selector is a simple compound selector: an optional type, an optional id
// and any number of classes. Combinators, pseudo-classes and attribute
// selectors are not supported; rules using them are skipped.
type Selector struct {
	Tag     string
	ID      string
	Classes []string
}

// Specificity orders selectors the way browsers do for this subset.
func (s Selector) Specificity() int {
	n := len(s.Classes) * 100
	if s.ID != "" {
		n += 10000
	}
	if s.Tag != "" {
		n++
	}
	return n
}

// Matches reports whether the selector applies to an element.
func (s Selector) Matches(el Element) bool {
	if s.Tag != "" && s.Tag != el.Tag {
		return false
	}
	if s.ID != "" && s.ID != el.ID {
		return false
	}
	for _, c := range s.Classes {
		if !el.HasClass(c) {
			return false
		}
	}
	return true
}

// Element is what selectors are matched against.
type Element struct {
	Tag     string
	ID      string
	Classes []string
}

// HasClass reports whether the element carries class c.
func (e Element) HasClass(c string) bool {
	for _, have := range e.Classes {
		if have == c {
			return true
		}
	}
	return false
}

// Rule is one rule set.
type Rule struct {
	Selectors    []Selector
	Declarations []Declaration
}

// Stylesheet is an ordered list of rules.
type Stylesheet struct {
	Rules []Rule
}

// ParseStylesheet parses rule sets from css. At-rules and rules whose
// selectors fall outside the supported subset are skipped.
func ParseStylesheet(css string) *Stylesheet {
	toks := tokenize(css)
	sheet := &Stylesheet{}

	for i := 0; i < len(toks); {
		if toks[i].Type == scanner.TokenS {
			i++
			continue
		}
		// At-rules: skip up to ';' or the end of their block.
		if toks[i].Type == scanner.TokenAtKeyword {
			i = skipAtRule(toks, i)
			continue
		}

		open := indexChar(toks, i, "{")
		if open < 0 {
			break
		}
		end := matchingBrace(toks, open)

		selectors, ok := parseSelectors(toks[i:open])
		if ok {
			decls := parseDeclTokens(toks[open+1 : end])
			if len(decls) > 0 {
				sheet.Rules = append(sheet.Rules, Rule{Selectors: selectors, Declarations: decls})
			}
		}
		i = end + 1
	}
	return sheet
}

// Match returns the declarations that apply to el, lowest specificity
// first. Later rules win ties, so callers apply the slice in order.
func (s *Stylesheet) Match(el Element) []Declaration {
	if s == nil {
		return nil
	}

	type hit struct {
		spec  int
		order int
		decls []Declaration
	}
	var hits []hit
	for i, r := range s.Rules {
		best := -1
		for _, sel := range r.Selectors {
			if sel.Matches(el) && sel.Specificity() > best {
				best = sel.Specificity()
			}
		}
		if best >= 0 {
			hits = append(hits, hit{spec: best, order: i, decls: r.Declarations})
		}
	}

	sort.SliceStable(hits, func(a, b int) bool {
		if hits[a].spec != hits[b].spec {
			return hits[a].spec < hits[b].spec
		}
		return hits[a].order < hits[b].order
	})

	var out []Declaration
	for _, h := range hits {
		out = append(out, h.decls...)
	}
	return out
}

func indexChar(toks []*scanner.Token, from int, c string) int {
	for i := from; i < len(toks); i++ {
		if isChar(toks[i], c) {
			return i
		}
	}
	return -1
}

// matchingBrace returns the index of the "}" closing the "{" at open, or
// len(toks) when the block is unterminated.
func matchingBrace(toks []*scanner.Token, open int) int {
	depth := 0
	for i := open; i < len(toks); i++ {
		switch {
		case isChar(toks[i], "{"):
			depth++
		case isChar(toks[i], "}"):
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return len(toks)
}

func skipAtRule(toks []*scanner.Token, i int) int {
	for j := i; j < len(toks); j++ {
		switch {
		case isChar(toks[j], ";"):
			return j + 1
		case isChar(toks[j], "{"):
			return matchingBrace(toks, j) + 1
		}
	}
	return len(toks)
}

func parseSelectors(toks []*scanner.Token) ([]Selector, bool) {
	var (
		out   []Selector
		start int
	)
	for i := 0; i <= len(toks); i++ {
		if i < len(toks) && !isChar(toks[i], ",") {
			continue
		}
		sel, ok := parseSelector(trimSpace(toks[start:i]))
		if !ok {
			return nil, false
		}
		out = append(out, sel)
		start = i + 1
	}
	return out, len(out) > 0
}

func parseSelector(toks []*scanner.Token) (Selector, bool) {
	var sel Selector
	if len(toks) == 0 {
		return sel, false
	}
	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		switch {
		case tok.Type == scanner.TokenIdent && i == 0:
			sel.Tag = strings.ToLower(tok.Value)
		case isChar(tok, "*") && i == 0:
		case tok.Type == scanner.TokenHash:
			sel.ID = strings.TrimPrefix(tok.Value, "#")
		case isChar(tok, ".") && i+1 < len(toks) && toks[i+1].Type == scanner.TokenIdent:
			sel.Classes = append(sel.Classes, toks[i+1].Value)
			i++
		default:
			return Selector{}, false
		}
	}
	return sel, true
}
