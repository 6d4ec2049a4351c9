package scoring

import "testing"

func TestMatchKeywords_EmptyJobDescription(t *testing.T) {
	b := MatchKeywords("any resume text", "", StrategyExact)
	if b.Score != 100 {
		t.Errorf("expected score 100 with no job description, got %d", b.Score)
	}
	b = MatchKeywords("any resume text", "   \n  ", StrategySemantic)
	if b.Score != 100 {
		t.Errorf("expected score 100 for whitespace-only job description, got %d", b.Score)
	}
}

func TestMatchKeywords_ExactFullMatch(t *testing.T) {
	b := MatchKeywords("python docker kubernetes", "python docker kubernetes", StrategyExact)
	if b.Score != 100 {
		t.Errorf("expected 100, got %d", b.Score)
	}
	if len(b.Missing) != 0 {
		t.Errorf("expected nothing missing, got %v", b.Missing)
	}
}

func TestMatchKeywords_ExactIgnoresSynonyms(t *testing.T) {
	// "js" is a synonym of "javascript" but exact matching must not
	// credit it.
	b := MatchKeywords("experienced with js", "javascript", StrategyExact)
	if b.Score != 0 {
		t.Errorf("expected 0 under exact matching, got %d", b.Score)
	}
	if len(b.Missing) != 1 || b.Missing[0] != "javascript" {
		t.Errorf("expected javascript missing, got %v", b.Missing)
	}
}

func TestMatchKeywords_FuzzyCreditsSynonymsAtEightyPercent(t *testing.T) {
	b := MatchKeywords("experienced with js", "javascript", StrategyFuzzy)
	// one synonym match out of one term: 0.8 * 100 = 80
	if b.Score != 80 {
		t.Errorf("expected 80, got %d", b.Score)
	}
	if len(b.SynonymMatched) != 1 || b.SynonymMatched[0] != "javascript" {
		t.Errorf("expected javascript synonym-matched, got %v", b.SynonymMatched)
	}
}

func TestMatchKeywords_FuzzyDoesNotDoSubstrings(t *testing.T) {
	b := MatchKeywords("worked with microservices", "services", StrategyFuzzy)
	if len(b.Missing) != 1 {
		t.Errorf("expected substring not credited under fuzzy, got %+v", b)
	}
}

func TestMatchKeywords_SemanticSubstringContainment(t *testing.T) {
	b := MatchKeywords("worked with microservices", "services", StrategySemantic)
	if len(b.SynonymMatched) != 1 {
		t.Errorf("expected services credited via containment, got %+v", b)
	}
	if b.Score != 80 {
		t.Errorf("expected 80, got %d", b.Score)
	}
}

func TestMatchKeywords_ScoreBounds(t *testing.T) {
	texts := []struct{ resume, jd string }{
		{"", "python java go rust"},
		{"python java go rust", "python"},
		{"a b c", "x y z"},
	}
	for _, tc := range texts {
		for _, s := range []KeywordStrategy{StrategyExact, StrategyFuzzy, StrategySemantic} {
			b := MatchKeywords(tc.resume, tc.jd, s)
			if b.Score < 0 || b.Score > 100 {
				t.Errorf("score %d out of bounds for %q/%q/%s", b.Score, tc.resume, tc.jd, s)
			}
		}
	}
}

func TestMatchKeywords_Deterministic(t *testing.T) {
	resume := "senior engineer with python, js, kubernetes, terraform and postgres experience"
	jd := "javascript python kubernetes postgresql redis terraform"
	for _, s := range []KeywordStrategy{StrategyExact, StrategyFuzzy, StrategySemantic} {
		first := MatchKeywords(resume, jd, s)
		for i := 0; i < 5; i++ {
			again := MatchKeywords(resume, jd, s)
			if again.Score != first.Score {
				t.Fatalf("strategy %s: score changed between runs: %d vs %d", s, first.Score, again.Score)
			}
		}
	}
}

func TestQuickKeywordScore(t *testing.T) {
	if got := QuickKeywordScore("python docker", "python docker"); got != 100 {
		t.Errorf("expected 100, got %d", got)
	}
	if got := QuickKeywordScore("python", "python docker"); got != 50 {
		t.Errorf("expected 50, got %d", got)
	}
}
