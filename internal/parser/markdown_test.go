package parser

import (
	"errors"
	"strings"
	"testing"
)

const markdownResume = `# Jane Doe

jane@example.com

## Experience

- Built services handling 1M requests
- Reduced costs by 30%

## Skills

python, go, sql
`

func TestMarkdownParser_HeadingsAndListItems(t *testing.T) {
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(markdownResume), "resume.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"Jane Doe",
		"jane@example.com",
		"Experience",
		"- Built services handling 1M requests",
		"- Reduced costs by 30%",
		"Skills",
		"python, go, sql",
	}
	if len(doc.Lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %v", len(want), len(doc.Lines), doc.Lines)
	}
	for i, w := range want {
		if doc.Lines[i] != w {
			t.Errorf("line[%d]: expected %q, got %q", i, w, doc.Lines[i])
		}
	}
	if doc.HasTables || doc.HasImages {
		t.Errorf("expected no tables or images, got tables=%v images=%v", doc.HasTables, doc.HasImages)
	}
}

func TestMarkdownParser_DetectsPipeTables(t *testing.T) {
	input := "# Header\n\n| a | b |\n|---|---|\n| 1 | 2 |\n"
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(input), "table.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !doc.HasTables {
		t.Error("expected pipe table to be detected")
	}
}

func TestMarkdownParser_DetectsImages(t *testing.T) {
	input := "# Header\n\n![headshot](me.png)\n\nsome text\n"
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(input), "img.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !doc.HasImages {
		t.Error("expected image syntax to be detected")
	}
}

func TestMarkdownParser_EmptyInput(t *testing.T) {
	p := &MarkdownParser{}
	_, err := p.Parse(strings.NewReader(""), "empty.md")
	if !errors.Is(err, ErrNoText) {
		t.Fatalf("expected ErrNoText, got %v", err)
	}
}
