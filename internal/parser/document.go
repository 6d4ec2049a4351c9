// Package parser extracts plain text from resume files. Each format
// parser produces the same ParsedDocument: cleaned text lines plus the
// layout facts the formatting checks need.
package parser

import "strings"

// ParsedDocument is the normalized output of every format parser.
type ParsedDocument struct {
	RawText            string   `json:"rawText"`
	Lines              []string `json:"lines"`
	PageCount          int      `json:"pageCount"`
	WordCount          int      `json:"wordCount"`
	LineCount          int      `json:"lineCount"`
	HasMultipleColumns bool     `json:"hasMultipleColumns"`
	HasTables          bool     `json:"hasTables"`
	HasImages          bool     `json:"hasImages"`
}

// splitLines breaks multi-line text into trimmed, non-empty lines.
func splitLines(text string) []string {
	var out []string
	for _, l := range strings.Split(text, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

func newDocument(lines []string, pageCount int, hasMultipleColumns, hasTables, hasImages bool) *ParsedDocument {
	rawText := strings.Join(lines, "\n")
	return &ParsedDocument{
		RawText:            rawText,
		Lines:              lines,
		PageCount:          pageCount,
		WordCount:          len(strings.Fields(rawText)),
		LineCount:          len(lines),
		HasMultipleColumns: hasMultipleColumns,
		HasTables:          hasTables,
		HasImages:          hasImages,
	}
}
