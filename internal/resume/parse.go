package resume

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/sunnypatell/ats-screener/internal/parser"
)

// Parse extracts text from a resume file and builds the structured
// model in one step. Errors from the underlying document parser are
// reported in the result rather than returned, so callers always get a
// ParseResult they can surface to clients.
func Parse(data []byte, filename string) ParseResult {
	p, err := parser.ForFile(filename)
	if err != nil {
		return ParseResult{
			Success: false,
			Errors:  []string{err.Error()},
		}
	}

	doc, err := p.Parse(bytes.NewReader(data), filename)
	if err != nil {
		msg := fmt.Sprintf("failed to parse %s: %v", strings.ToUpper(parser.FileType(filename)), err)
		if errors.Is(err, parser.ErrNoText) {
			msg = "could not extract any text from the file. it may be an image-based PDF or corrupted."
		}
		return ParseResult{
			Success: false,
			Errors:  []string{msg},
		}
	}

	return Analyze(doc, parser.FileType(filename))
}

// Analyze builds a ParsedResume from an already extracted document.
func Analyze(doc *parser.ParsedDocument, fileType string) ParseResult {
	var warnings []string
	if doc.HasMultipleColumns {
		warnings = append(warnings, "detected multi-column layout. text extraction order may be affected.")
	}
	if doc.HasTables {
		warnings = append(warnings, "detected tables in the document. most ATS systems struggle with tabular layouts.")
	}

	sections := DetectSections(doc.Lines)

	r := &ParsedResume{
		RawText:        doc.RawText,
		Lines:          doc.Lines,
		Contact:        ExtractContact(doc.Lines),
		Sections:       sections,
		Experience:     ExtractExperience(sections),
		Education:      ExtractEducation(sections),
		Projects:       ExtractProjects(sections),
		Certifications: ExtractCertifications(sections),
		Skills:         ExtractSkills(sections),
		Summary:        ExtractSummary(sections),
		Metadata: Metadata{
			FileType:           fileType,
			PageCount:          doc.PageCount,
			WordCount:          doc.WordCount,
			LineCount:          doc.LineCount,
			HasMultipleColumns: doc.HasMultipleColumns,
			HasTables:          doc.HasTables,
			HasImages:          doc.HasImages,
		},
	}

	return ParseResult{Success: true, Resume: r, Warnings: warnings}
}
