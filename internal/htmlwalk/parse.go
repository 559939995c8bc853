package htmlwalk

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// brMark stands for a <br> in extracted text until whitespace is collapsed.
const brMark = "\u2028"

// parse parses content as a full document when it starts with a doctype or
// <html> tag, and as a body fragment otherwise. Either way the result is a
// node whose children are the top-level elements.
func parse(content string) (*html.Node, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		return html.Parse(strings.NewReader(content))
	}

	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, nil
}

// text concatenates the text below n, writing brMark for <br>. Subtrees for
// which skip returns true are left out.
func text(n *html.Node, skip func(*html.Node) bool) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				b.WriteString(c.Data)
			case html.ElementNode:
				if c.DataAtom == atom.Br {
					b.WriteString(brMark)
					continue
				}
				if ignored(c) || (skip != nil && skip(c)) {
					continue
				}
				walk(c)
			}
		}
	}
	walk(n)

	if n.DataAtom == atom.Pre {
		return strings.ReplaceAll(b.String(), brMark, "\n")
	}
	return b.String()
}

// collapse folds whitespace runs to single spaces, turns brMark into line
// breaks and trims the result.
func collapse(s string) string {
	lines := strings.Split(s, brMark)
	for i, l := range lines {
		lines[i] = strings.Join(strings.Fields(l), " ")
	}
	return strings.Trim(strings.Join(lines, "\n"), "\n")
}

// styleText returns the content of every <style> element below n.
func styleText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			if c.DataAtom == atom.Style {
				for t := c.FirstChild; t != nil; t = t.NextSibling {
					if t.Type == html.TextNode {
						b.WriteString(t.Data)
						b.WriteByte('\n')
					}
				}
				continue
			}
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
