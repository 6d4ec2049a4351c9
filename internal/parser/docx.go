package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fumiama/go-docx"
)

// DOCXParser handles .docx files. DOCX is a flow-text format: we walk the
// document body once, collecting paragraph text and flagging embedded
// tables and drawings along the way.
type DOCXParser struct{}

func (p *DOCXParser) Parse(r io.Reader, filename string) (*ParsedDocument, error) {
	// go-docx needs a ReadSeeker+size, so write to a temp file.
	tmp, err := os.CreateTemp("", "ats-docx-*.docx")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("seek temp file: %w", err)
	}

	doc, err := docx.Parse(tmp, int64(size))
	tmp.Close()
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	var lines []string
	hasTables := false
	hasImages := false

	for _, item := range doc.Document.Body.Items {
		switch it := item.(type) {
		case *docx.Paragraph:
			text, drawing := docxParagraphText(it)
			if drawing {
				hasImages = true
			}
			for _, line := range splitLines(text) {
				lines = append(lines, line)
			}
		case *docx.Table:
			hasTables = true
			cellLines, drawing := docxTableLines(it)
			if drawing {
				hasImages = true
			}
			lines = append(lines, cellLines...)
		}
	}

	if len(lines) == 0 {
		return nil, ErrNoText
	}

	// Word processors have no fixed page geometry; treat as one page.
	return newDocument(lines, 1, false, hasTables, hasImages), nil
}

// docxTableLines flattens table cell text row by row. ATS engines read
// tables as ordinary flow text, so each cell paragraph becomes a line.
func docxTableLines(tbl *docx.Table) ([]string, bool) {
	var lines []string
	drawing := false
	for _, row := range tbl.TableRows {
		for _, cell := range row.TableCells {
			for _, para := range cell.Paragraphs {
				text, d := docxParagraphText(para)
				if d {
					drawing = true
				}
				lines = append(lines, splitLines(text)...)
			}
		}
	}
	return lines, drawing
}

// docxParagraphText collects run text from a paragraph and reports
// whether the paragraph contains a drawing (embedded image).
func docxParagraphText(para *docx.Paragraph) (string, bool) {
	var buf strings.Builder
	drawing := false
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			switch t := rc.(type) {
			case *docx.Text:
				buf.WriteString(t.Text)
			case *docx.Drawing:
				drawing = true
			}
		}
	}
	return strings.TrimSpace(buf.String()), drawing
}
