package parser

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// HTMLParser handles HTML resumes. Block-level elements become lines;
// table and img elements set the corresponding layout flags.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*ParsedDocument, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var lines []string
	hasTables := false
	hasImages := false

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "nav", "footer", "header":
				return
			case "table":
				hasTables = true
			case "img":
				hasImages = true
				return
			case "h1", "h2", "h3", "h4", "h5", "h6", "p", "li", "td", "th", "blockquote", "div":
				// Only emit a line for elements with direct text; keep
				// walking so nested blocks emit their own lines.
				if t := directText(n); t != "" {
					lines = append(lines, t)
				}
			case "br":
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	body := findBody(doc)
	if body != nil {
		walk(body)
	} else {
		walk(doc)
	}

	if len(lines) == 0 {
		return nil, ErrNoText
	}

	return newDocument(lines, 1, false, hasTables, hasImages), nil
}

// directText collects text from a node's non-block descendants, so a
// <div> wrapping <p> children does not swallow their lines.
func directText(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
			return
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "p", "li", "td", "th", "div", "blockquote", "table", "ul", "ol",
				"h1", "h2", "h3", "h4", "h5", "h6", "script", "style":
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		extract(c)
	}
	return strings.Join(strings.Fields(buf.String()), " ")
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
