package parser

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"
	"sync"

	pdflib "github.com/ledongthuc/pdf"
)

// yTolerance is the vertical distance (in PDF units) within which two
// text fragments are considered part of the same line.
const yTolerance = 3

// PDFParser extracts text from PDF files with layout awareness.
// Reading order is reconstructed from fragment geometry so that
// multi-column layouts come out in a deterministic order.
type PDFParser struct{}

// fragment is a positioned piece of text from a PDF content stream.
type fragment struct {
	text   string
	x, y   float64
	width  float64
	height float64
	page   int
}

func (p *PDFParser) Parse(r io.Reader, filename string) (doc *ParsedDocument, err error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "ats-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	// The pdf library panics on some malformed files; surface that as a
	// corrupted-stream error instead of crashing the worker.
	defer func() {
		if rec := recover(); rec != nil {
			doc = nil
			err = fmt.Errorf("corrupted pdf stream: %v", rec)
		}
	}()

	f, reader, err := pdflib.Open(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	pageCount := reader.NumPage()
	fragments, hasImages := collectFragments(reader, pageCount)

	lines := reconstructLines(fragments)
	if len(lines) == 0 {
		return nil, ErrNoText
	}

	return newDocument(
		lines,
		pageCount,
		detectMultipleColumns(fragments),
		detectTables(fragments),
		hasImages,
	), nil
}

// collectFragments gathers positioned text fragments from every page.
// Pages are scanned concurrently; order is irrelevant here because
// reconstructLines sorts by geometry, never by completion time.
func collectFragments(reader *pdflib.Reader, pageCount int) ([]fragment, bool) {
	perPage := make([][]fragment, pageCount)
	pageImages := make([]bool, pageCount)

	var wg sync.WaitGroup
	for i := 1; i <= pageCount; i++ {
		wg.Add(1)
		go func(pageNum int) {
			defer wg.Done()
			defer func() { recover() }() // a bad page should not sink the document

			page := reader.Page(pageNum)
			if page.V.IsNull() {
				return
			}
			pageImages[pageNum-1] = pageHasImages(page)

			content := page.Content()
			frags := make([]fragment, 0, len(content.Text))
			for _, t := range content.Text {
				if strings.TrimSpace(t.S) == "" {
					continue
				}
				frags = append(frags, fragment{
					text:   t.S,
					x:      t.X,
					y:      t.Y,
					width:  t.W,
					height: t.FontSize,
					page:   pageNum - 1,
				})
			}
			perPage[pageNum-1] = frags
		}(i)
	}
	wg.Wait()

	var all []fragment
	hasImages := false
	for i, frags := range perPage {
		all = append(all, frags...)
		if pageImages[i] {
			hasImages = true
		}
	}
	return all, hasImages
}

// pageHasImages checks the page's XObject resources for image paints.
func pageHasImages(page pdflib.Page) bool {
	res := page.V.Key("Resources")
	if res.IsNull() {
		return false
	}
	xobjects := res.Key("XObject")
	if xobjects.Kind() != pdflib.Dict {
		return false
	}
	for _, name := range xobjects.Keys() {
		obj := xobjects.Key(name)
		if obj.Key("Subtype").Name() == "Image" {
			return true
		}
	}
	return false
}

// reconstructLines groups fragments into lines by y-position proximity.
// Fragments within yTolerance are the same line. Lines are ordered
// top-to-bottom per page, fragments within a line left-to-right.
func reconstructLines(fragments []fragment) []string {
	if len(fragments) == 0 {
		return nil
	}

	sorted := make([]fragment, len(fragments))
	copy(sorted, fragments)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.page != b.page {
			return a.page < b.page
		}
		if math.Abs(a.y-b.y) > yTolerance {
			return a.y > b.y // top of page first
		}
		return a.x < b.x
	})

	var lines []string
	current := []fragment{sorted[0]}

	for _, frag := range sorted[1:] {
		prev := current[len(current)-1]
		if frag.page == prev.page && math.Abs(frag.y-prev.y) <= yTolerance {
			current = append(current, frag)
		} else {
			lines = append(lines, mergeLine(current))
			current = []fragment{frag}
		}
	}
	lines = append(lines, mergeLine(current))

	var out []string
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			out = append(out, strings.TrimSpace(line))
		}
	}
	return out
}

// mergeLine joins same-line fragments, inserting a space wherever the
// horizontal gap exceeds roughly half a character width.
func mergeLine(frags []fragment) string {
	if len(frags) == 0 {
		return ""
	}
	if len(frags) == 1 {
		return frags[0].text
	}

	sorted := make([]fragment, len(frags))
	copy(sorted, frags)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].x < sorted[j].x })

	var b strings.Builder
	b.WriteString(sorted[0].text)
	for i := 1; i < len(sorted); i++ {
		gap := sorted[i].x - (sorted[i-1].x + sorted[i-1].width)
		if gap > sorted[i].height*0.5 {
			b.WriteString(" ")
		}
		b.WriteString(sorted[i].text)
	}
	return b.String()
}

// detectMultipleColumns buckets fragment x-positions into 10-unit bins.
// Two or more bins each holding >5% of fragments, separated by a gap of
// more than 150 units, indicate a multi-column layout.
func detectMultipleColumns(fragments []fragment) bool {
	if len(fragments) < 20 {
		return false
	}

	binCounts := make(map[int]int)
	for _, f := range fragments {
		bin := int(math.Round(f.x/10)) * 10
		binCounts[bin]++
	}

	threshold := float64(len(fragments)) * 0.05
	var significant []int
	for bin, count := range binCounts {
		if float64(count) > threshold {
			significant = append(significant, bin)
		}
	}
	if len(significant) < 2 {
		return false
	}
	sort.Ints(significant)

	for i := 1; i < len(significant); i++ {
		if significant[i]-significant[i-1] > 150 {
			return true
		}
	}
	return false
}

// detectTables looks for rows of 3+ fragments with 2+ large horizontal
// gaps; 3 or more such rows across the document flag a tabular layout.
func detectTables(fragments []fragment) bool {
	if len(fragments) < 10 {
		return false
	}

	type rowKey struct {
		page int
		y    int
	}
	rows := make(map[rowKey][]fragment)
	for _, f := range fragments {
		key := rowKey{page: f.page, y: int(math.Round(f.y/yTolerance)) * yTolerance}
		rows[key] = append(rows[key], f)
	}

	tableRows := 0
	for _, frags := range rows {
		if len(frags) < 3 {
			continue
		}
		sort.SliceStable(frags, func(i, j int) bool { return frags[i].x < frags[j].x })
		largeGaps := 0
		for i := 1; i < len(frags); i++ {
			if frags[i].x-(frags[i-1].x+frags[i-1].width) > 30 {
				largeGaps++
			}
		}
		if largeGaps >= 2 {
			tableRows++
		}
	}
	return tableRows >= 3
}
