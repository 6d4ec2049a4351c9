package jobdesc

import (
	"strings"
	"testing"
)

const sampleJD = `Senior Backend Engineer

We are looking for a senior backend engineer to join our platform team.

Requirements:
- 5+ years of experience building production services
- Strong Python and PostgreSQL skills
- Experience with Docker and Kubernetes

Nice to have:
- Terraform
- Bachelor's degree in computer science or equivalent
`

func TestParse_ExtractsSkills(t *testing.T) {
	p := Parse(sampleJD)
	for _, want := range []string{"python", "postgresql", "docker", "kubernetes", "terraform"} {
		found := false
		for _, s := range p.ExtractedSkills {
			if s == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected skill %q in %v", want, p.ExtractedSkills)
		}
	}
}

func TestParse_RequiredVsPreferred(t *testing.T) {
	p := Parse(sampleJD)

	req := make(map[string]bool)
	for _, s := range p.RequiredSkills {
		req[s] = true
	}
	pref := make(map[string]bool)
	for _, s := range p.PreferredSkills {
		pref[s] = true
	}

	for _, s := range []string{"python", "postgresql", "docker", "kubernetes"} {
		if !req[s] {
			t.Errorf("expected %q required, required=%v preferred=%v", s, p.RequiredSkills, p.PreferredSkills)
		}
	}
	if !pref["terraform"] {
		t.Errorf("expected terraform preferred, got %v", p.PreferredSkills)
	}
	if req["terraform"] {
		t.Errorf("did not expect terraform in required: %v", p.RequiredSkills)
	}
}

func TestParse_ExperienceLevel(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Director of Engineering", "executive"},
		{"Staff Software Engineer", "lead"},
		{"Senior Accountant", "senior"},
		{"7+ years of experience shipping software", "senior"},
		{"3 years of experience with spreadsheets", "mid"},
		{"Junior Analyst", "entry"},
		{"0-2 years of experience welcome", "entry"},
		{"Product Manager", "mid"},
	}
	for _, tc := range cases {
		if got := detectExperienceLevel(strings.ToLower(tc.text)); got != tc.want {
			t.Errorf("detectExperienceLevel(%q): expected %q, got %q", tc.text, tc.want, got)
		}
	}
}

func TestParse_EducationRequirement(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"phd in statistics required", "PhD"},
		{"master's degree preferred", "Master's degree"},
		{"bachelor's degree or equivalent", "Bachelor's degree"},
		{"associate's in nursing", "Associate's degree"},
		{"no formal schooling needed", "not specified"},
	}
	for _, tc := range cases {
		if got := detectEducationRequirement(tc.text); got != tc.want {
			t.Errorf("detectEducationRequirement(%q): expected %q, got %q", tc.text, tc.want, got)
		}
	}
}

func TestParse_RoleType(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"backend developer needed", "engineering"},
		{"account executive for enterprise deals", "sales"},
		{"registered nurse, icu", "healthcare"},
		{"corporate counsel", "legal"},
		{"ux researcher", "design"},
		{"ice cream taster", "other"},
	}
	for _, tc := range cases {
		if got := detectRoleType(tc.text); got != tc.want {
			t.Errorf("detectRoleType(%q): expected %q, got %q", tc.text, tc.want, got)
		}
	}
}

func TestParse_IndustryContext(t *testing.T) {
	p := Parse(sampleJD)
	if p.IndustryContext != "technology" {
		t.Errorf("expected technology, got %q", p.IndustryContext)
	}

	p = Parse("combine oats with milk and a dash of salt")
	if p.IndustryContext != "general" {
		t.Errorf("expected general fallback, got %q", p.IndustryContext)
	}
}

func TestParse_KeyPhrasesCappedAndFiltered(t *testing.T) {
	p := Parse(sampleJD)
	if len(p.KeyPhrases) > 20 {
		t.Errorf("expected at most 20 key phrases, got %d", len(p.KeyPhrases))
	}
	for _, phrase := range p.KeyPhrases {
		for _, w := range strings.Split(phrase, " ") {
			if len(w) <= 1 {
				t.Errorf("key phrase %q contains single-letter fragment", phrase)
			}
		}
	}
}
