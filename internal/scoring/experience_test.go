package scoring

import (
	"strings"
	"testing"
)

func TestIsQuantified(t *testing.T) {
	cases := []struct {
		bullet string
		want   bool
	}{
		{"Reduced latency by 40%", true},
		{"Saved $250,000 annually", true},
		{"Improved throughput 3x", true},
		{"Supported 500+ customers", true},
		{"Shipped 12 products", true},
		{"Ranked top 5 in the region", true},
		{"Cut onboarding from 6 weeks", true},
		{"Processed 1,000,000 events", true},
		{"Handled 2 million requests", true},
		{"Worked on various backend services", false},
		{"Responsible for the payments team", false},
	}
	for _, tc := range cases {
		if got := IsQuantified(tc.bullet); got != tc.want {
			t.Errorf("IsQuantified(%q): expected %v, got %v", tc.bullet, tc.want, got)
		}
	}
}

func TestScoreExperience_NoBullets(t *testing.T) {
	b := ScoreExperience(nil)
	if b.Score != 0 {
		t.Errorf("expected score 0, got %d", b.Score)
	}
	if len(b.Highlights) != 1 || !strings.Contains(b.Highlights[0], "no experience bullets") {
		t.Errorf("unexpected highlights: %v", b.Highlights)
	}
}

func TestScoreExperience_StrongBullets(t *testing.T) {
	bullets := []string{
		"Managed 8 employees across two offices",
		"Reduced infrastructure costs by 35%",
		"Built CI pipelines cutting deploy time 4x",
		"Increased test coverage from 40% to 85%",
		"Launched 3 products in 18 months",
		"Mentored 5 members of the platform team",
		"Optimized queries, saving $120,000 per year",
		"Designed the event schema used by 12 services",
	}
	b := ScoreExperience(bullets)
	// 8+ bullets, all quantified, all starting with action verbs: maximal
	if b.Score != 100 {
		t.Errorf("expected 100, got %d", b.Score)
	}
	if b.QuantifiedBullets != 8 {
		t.Errorf("expected 8 quantified, got %d", b.QuantifiedBullets)
	}
	if b.ActionVerbCount != 8 {
		t.Errorf("expected 8 action verbs, got %d", b.ActionVerbCount)
	}
}

func TestScoreExperience_WeakBullets(t *testing.T) {
	bullets := []string{
		"Responsible for backend services",
		"Was involved in the migration project",
	}
	b := ScoreExperience(bullets)
	// no quantification, no action verbs, under 3 bullets: only the
	// bullet-count floor remains
	if b.Score != 10 {
		t.Errorf("expected 10, got %d", b.Score)
	}
	if b.QuantifiedBullets != 0 || b.ActionVerbCount != 0 {
		t.Errorf("unexpected counts: %+v", b)
	}

	found := false
	for _, h := range b.Highlights {
		if strings.Contains(h, "consider adding more detail") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a too-few-bullets highlight, got %v", b.Highlights)
	}
}

func TestScoreExperience_BulletCountTiers(t *testing.T) {
	bullet := "Maintained internal tools" // no quantification, verb not in the strong set
	for _, tc := range []struct {
		count int
		want  int
	}{
		{3, 20},
		{5, 25},
		{8, 30},
	} {
		bullets := make([]string, tc.count)
		for i := range bullets {
			bullets[i] = bullet
		}
		b := ScoreExperience(bullets)
		if b.Score != tc.want {
			t.Errorf("%d bullets: expected %d, got %d", tc.count, tc.want, b.Score)
		}
	}
}
