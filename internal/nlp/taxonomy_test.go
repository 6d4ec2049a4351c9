package nlp

import "testing"

func TestDetectIndustry_TechnologyResume(t *testing.T) {
	text := "Built microservices in Go with PostgreSQL, Redis, Docker, and Kubernetes."
	matches := DetectIndustry(text)
	if len(matches) == 0 {
		t.Fatal("expected at least one industry match")
	}
	if matches[0].Industry != "technology" {
		t.Errorf("expected technology first, got %q", matches[0].Industry)
	}
	if matches[0].MatchCount < 4 {
		t.Errorf("expected at least 4 matched skills, got %d", matches[0].MatchCount)
	}
}

func TestDetectIndustry_RankedByMatchCount(t *testing.T) {
	text := "Registered nurse with patient care and medication administration experience, familiar with Excel."
	matches := DetectIndustry(text)
	if len(matches) == 0 {
		t.Fatal("expected matches")
	}
	if matches[0].Industry != "healthcare" {
		t.Errorf("expected healthcare ranked first, got %v", matches)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].MatchCount > matches[i-1].MatchCount {
			t.Errorf("matches not sorted descending: %v", matches)
		}
	}
}

func TestDetectIndustry_NoSkills(t *testing.T) {
	if matches := DetectIndustry("we had so much fun at the steak house"); len(matches) != 0 {
		t.Errorf("expected no matches, got %v", matches)
	}
}

func TestSkillDomain(t *testing.T) {
	if got := SkillDomain("PostgreSQL"); got != "databases" {
		t.Errorf("expected %q, got %q", "databases", got)
	}
	if got := SkillDomain("underwater basket weaving"); got != "" {
		t.Errorf("expected empty domain for unknown skill, got %q", got)
	}
}

func TestIndustrySkills(t *testing.T) {
	skills := IndustrySkills("technology")
	if len(skills) == 0 {
		t.Fatal("expected technology skills")
	}
	found := false
	for _, s := range skills {
		if s == "kubernetes" {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("expected kubernetes in technology skills")
	}
}
