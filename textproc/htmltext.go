package textproc

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// Document is readable content pulled out of an HTML page.
type Document struct {
	Title string
	Text  string
}

// Elements whose subtree never contributes readable copy.
var skippedElements = map[string]struct{}{
	"script": {}, "style": {}, "noscript": {},
	"nav": {}, "footer": {}, "aside": {}, "iframe": {},
}

// Block-level elements that force a line break around their content.
var blockElements = map[string]struct{}{
	"p": {}, "h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
	"li": {}, "ul": {}, "ol": {}, "div": {}, "blockquote": {},
}

// FromHTML extracts the readable text of a full HTML document, such as a
// landing page or ad creative. It prefers <main>, then <article>, then
// <body> as the content root, drops scripts, styles, and navigation
// boilerplate, and collapses the result into whitespace-normalized lines.
// The output is suitable input for Clean and ExtractFeatures. Malformed or
// empty input yields a zero Document.
func FromHTML(input []byte) Document {
	root, err := html.Parse(bytes.NewReader(input))
	if err != nil || root == nil {
		return Document{}
	}

	doc := Document{Title: strings.TrimSpace(pageTitle(root))}

	content := firstElement(root, "main")
	if content == nil {
		content = firstElement(root, "article")
	}
	if content == nil {
		content = firstElement(root, "body")
	}
	if content == nil {
		return doc
	}

	var b strings.Builder
	appendText(&b, content)
	doc.Text = normalizeLines(b.String())
	return doc
}

func pageTitle(root *html.Node) string {
	head := firstElement(root, "head")
	if head == nil {
		return ""
	}
	title := firstElement(head, "title")
	if title == nil || title.FirstChild == nil {
		return ""
	}
	return title.FirstChild.Data
}

// firstElement returns the first element with the given tag name in
// document order, or nil.
func firstElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && strings.EqualFold(n.Data, tag) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := firstElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func appendText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		name := strings.ToLower(n.Data)
		if _, skip := skippedElements[name]; skip {
			return
		}
		if name == "br" || name == "hr" {
			b.WriteString("\n")
			return
		}
		if _, block := blockElements[name]; block {
			b.WriteString("\n")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			appendText(b, c)
		}
		if _, block := blockElements[name]; block {
			b.WriteString("\n")
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		appendText(b, c)
	}
}

// normalizeLines trims every line, collapses internal whitespace runs, and
// drops repeated blank lines so block structure survives as at most one
// separator.
func normalizeLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if len(out) > 0 && out[len(out)-1] == "" {
				continue
			}
			if len(out) == 0 {
				continue
			}
			out = append(out, "")
			continue
		}
		out = append(out, strings.Join(strings.Fields(trimmed), " "))
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}
