package resume

import (
	"reflect"
	"strings"
	"testing"
)

func experienceSection(content string) []Section {
	return []Section{{Type: SectionExperience, Header: "Experience", Content: content}}
}

func TestSplitIntoEntries_BlankLineSeparates(t *testing.T) {
	content := "Engineer | Acme\n• built a thing\n\nManager | Beta\n• led a team"
	entries := splitIntoEntries(content)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d: %v", len(entries), entries)
	}
}

func TestSplitIntoEntries_DatedLineStartsNewEntry(t *testing.T) {
	// No blank line, but a dated non-bullet line after a bulleted block
	// starts a fresh entry.
	content := strings.Join([]string{
		"Engineer | Acme  Jan 2020 - Dec 2021",
		"• built services",
		"Jan 2022 - Present  Manager | Beta",
		"• led a team",
	}, "\n")
	entries := splitIntoEntries(content)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d: %v", len(entries), entries)
	}
}

func TestSplitIntoEntries_DatedLineWithoutBulletsDoesNotSplit(t *testing.T) {
	// Header and date on consecutive lines belong to the same entry.
	content := "Engineer | Acme\nJan 2020 - Dec 2021\n• built services"
	entries := splitIntoEntries(content)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d: %v", len(entries), entries)
	}
}

func TestExtractExperience_TitleCompanyAndBullets(t *testing.T) {
	content := strings.Join([]string{
		"Software Engineer | Acme Corp",
		"Jan 2020 - Present",
		"• Built REST APIs serving 1M requests/day",
		"• Mentored junior developers",
	}, "\n")

	entries := ExtractExperience(experienceSection(content))
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Title != "Software Engineer" {
		t.Errorf("expected title, got %q", e.Title)
	}
	if e.Company != "Acme Corp" {
		t.Errorf("expected company, got %q", e.Company)
	}
	if !e.Dates.IsCurrent || deref(e.Dates.Start) != "2020-01" {
		t.Errorf("unexpected dates: %+v", e.Dates)
	}
	if len(e.Bullets) != 2 {
		t.Fatalf("expected 2 bullets, got %v", e.Bullets)
	}
	if e.Bullets[0] != "Built REST APIs serving 1M requests/day" {
		t.Errorf("bullet not stripped: %q", e.Bullets[0])
	}
}

func TestParseJobHeader_Layouts(t *testing.T) {
	cases := []struct {
		line1, line2   string
		title, company string
	}{
		{"Engineer | Acme", "", "Engineer", "Acme"},
		{"Engineer at Acme", "", "Engineer", "Acme"},
		{"Engineer, Acme Corp", "", "Engineer", "Acme Corp"},
		{"Acme Corp", "Staff Engineer", "Staff Engineer", "Acme Corp"},
		{"Freelancer", "", "Freelancer", ""},
	}
	for _, tc := range cases {
		title, company := parseJobHeader(tc.line1, tc.line2)
		if title != tc.title || company != tc.company {
			t.Errorf("parseJobHeader(%q, %q): expected (%q, %q), got (%q, %q)",
				tc.line1, tc.line2, tc.title, tc.company, title, company)
		}
	}
}

func TestExtractEducation_DegreeFieldInstitution(t *testing.T) {
	sections := []Section{{
		Type: SectionEducation,
		Content: strings.Join([]string{
			"BS in Computer Science",
			"University of Waterloo",
			"2016 - 2020",
			"GPA: 3.8/4.0",
			"Graduated with Dean's List standing",
		}, "\n"),
	}}

	entries := ExtractEducation(sections)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Degree != "BS" {
		t.Errorf("expected degree BS, got %q", e.Degree)
	}
	if e.Field != "Computer Science" {
		t.Errorf("expected field, got %q", e.Field)
	}
	if e.Institution != "University of Waterloo" {
		t.Errorf("expected institution, got %q", e.Institution)
	}
	if deref(e.Dates.Start) != "2016" || deref(e.Dates.End) != "2020" {
		t.Errorf("unexpected dates: %+v", e.Dates)
	}
	if e.GPA != "3.8/4.0" {
		t.Errorf("expected gpa 3.8/4.0, got %q", e.GPA)
	}
	if len(e.Honors) != 1 {
		t.Errorf("expected 1 honors line, got %v", e.Honors)
	}
}

func TestExtractProjects_TechnologiesAndURL(t *testing.T) {
	sections := []Section{{
		Type:    SectionProjects,
		Content: "Task Tracker (Go, PostgreSQL, React)\n• CLI and web UI for shared task lists\nhttps://github.com/janedoe/tracker",
	}}

	entries := ExtractProjects(sections)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	p := entries[0]
	if p.Name != "Task Tracker (Go, PostgreSQL, React)" {
		t.Errorf("unexpected name: %q", p.Name)
	}
	want := []string{"Go", "PostgreSQL", "React"}
	if !reflect.DeepEqual(p.Technologies, want) {
		t.Errorf("expected technologies %v, got %v", want, p.Technologies)
	}
	if p.URL != "https://github.com/janedoe/tracker" {
		t.Errorf("expected url, got %q", p.URL)
	}
}

func TestExtractCertifications(t *testing.T) {
	sections := []Section{{
		Type:    SectionCertifications,
		Content: "• AWS Certified Solutions Architect - Amazon\nCKA | Cloud Native Computing Foundation",
	}}

	entries := ExtractCertifications(sections)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Name != "AWS Certified Solutions Architect" || entries[0].Issuer != "Amazon" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Name != "CKA" || entries[1].Issuer != "Cloud Native Computing Foundation" {
		t.Errorf("unexpected second entry: %+v", entries[1])
	}
}

func TestExtractSkills_SplitsAndDeduplicates(t *testing.T) {
	sections := []Section{{
		Type:    SectionSkills,
		Content: "Languages: Python, Go, SQL\n• React | Node.js\npython",
	}}

	got := ExtractSkills(sections)
	want := []string{"Python", "Go", "SQL", "React", "Node.js"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestExtractSkills_DropsOverlongItems(t *testing.T) {
	long := strings.Repeat("x", 60)
	sections := []Section{{Type: SectionSkills, Content: "Go, " + long}}
	got := ExtractSkills(sections)
	if !reflect.DeepEqual(got, []string{"Go"}) {
		t.Errorf("expected overlong item dropped, got %v", got)
	}
}

func TestExtractSummary(t *testing.T) {
	sections := []Section{
		{Type: SectionContact, Content: "Jane Doe"},
		{Type: SectionSummary, Content: "  Backend engineer with eight years of experience.  "},
	}
	got := ExtractSummary(sections)
	if got != "Backend engineer with eight years of experience." {
		t.Errorf("unexpected summary: %q", got)
	}
}
