package parser

import (
	"bytes"
	"io"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser handles Markdown resumes using goldmark. Headings and
// list items come out as their own lines so the section segmenter and
// bullet heuristics downstream see the same shape as a PDF extraction.
type MarkdownParser struct{}

var pipeTableRow = regexp.MustCompile(`^\s*\|.+\|\s*$`)

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*ParsedDocument, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	var lines []string
	var walk func(n ast.Node)
	walk = func(n ast.Node) {
		switch node := n.(type) {
		case *ast.Heading:
			if title := string(node.Text(src)); title != "" {
				lines = append(lines, title)
			}
			return
		case *ast.ListItem:
			if t := markdownText(node, src); t != "" {
				lines = append(lines, "- "+t)
			}
			return
		case *ast.Paragraph, *ast.TextBlock, *ast.Blockquote:
			if t := markdownText(node, src); t != "" {
				lines = append(lines, splitLines(t)...)
			}
			return
		}
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			walk(c)
		}
	}
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		walk(n)
	}

	if len(lines) == 0 {
		return nil, ErrNoText
	}

	// Pipe tables and image syntax are not part of the core CommonMark
	// AST, so detect them from the source.
	hasTables := countPipeRows(src) >= 2
	hasImages := bytes.Contains(src, []byte("!["))

	return newDocument(lines, 1, false, hasTables, hasImages), nil
}

// markdownText flattens the text content of a goldmark block node.
func markdownText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		seglines := n.Lines()
		for i := 0; i < seglines.Len(); i++ {
			seg := seglines.At(i)
			buf.Write(seg.Value(src))
			buf.WriteByte('\n')
		}
		return strings.TrimSpace(buf.String())
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			buf.WriteString(markdownText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}

func countPipeRows(src []byte) int {
	count := 0
	for _, line := range strings.Split(string(src), "\n") {
		if pipeTableRow.MatchString(line) {
			count++
		}
	}
	return count
}
