package scoring

import (
	"math"
	"strings"

	"github.com/sunnypatell/ats-screener/internal/nlp"
)

// KeywordStrategy controls how loosely resume terms match JD terms.
type KeywordStrategy string

const (
	StrategyExact    KeywordStrategy = "exact"
	StrategyFuzzy    KeywordStrategy = "fuzzy"
	StrategySemantic KeywordStrategy = "semantic"
)

// MatchKeywords compares resume text against job description terms.
// Each strategy builds on the previous: exact stops at literal matches,
// fuzzy adds the synonym table, semantic adds substring containment.
// Synonym matches count at 80% of an exact match. An empty job
// description scores 100 since there is nothing to miss.
func MatchKeywords(resumeText, jobDescription string, strategy KeywordStrategy) KeywordBreakdown {
	if strings.TrimSpace(jobDescription) == "" {
		return KeywordBreakdown{Score: 100}
	}

	resumeTokens := nlp.Tokenize(resumeText)
	jdTokens := nlp.Tokenize(jobDescription)

	resumeTerms := make(map[string]bool, len(resumeTokens))
	resumeCanonicals := make(map[string]bool, len(resumeTokens))
	for _, t := range resumeTokens {
		resumeTerms[t.Normalized] = true
		resumeCanonicals[nlp.Canonical(t.Normalized)] = true
	}

	seen := make(map[string]bool, len(jdTokens))
	var jdTerms []string
	for _, t := range jdTokens {
		if !seen[t.Normalized] {
			seen[t.Normalized] = true
			jdTerms = append(jdTerms, t.Normalized)
		}
	}

	var matched, missing, synonymMatched []string
	lowerResume := strings.ToLower(resumeText)

	for _, jdTerm := range jdTerms {
		if resumeTerms[jdTerm] {
			matched = append(matched, jdTerm)
			continue
		}

		if strategy == StrategyExact {
			missing = append(missing, jdTerm)
			continue
		}

		if resumeCanonicals[nlp.Canonical(jdTerm)] {
			synonymMatched = append(synonymMatched, jdTerm)
			continue
		}
		foundSynonym := false
		for resumeTerm := range resumeTerms {
			if nlp.AreSynonyms(resumeTerm, jdTerm) {
				synonymMatched = append(synonymMatched, jdTerm)
				foundSynonym = true
				break
			}
		}
		if foundSynonym {
			continue
		}

		if strategy == StrategyFuzzy {
			missing = append(missing, jdTerm)
			continue
		}

		// semantic: either term containing the other counts, if the
		// shorter side is long enough to be meaningful
		foundPartial := false
		for resumeTerm := range resumeTerms {
			if strings.Contains(resumeTerm, jdTerm) || strings.Contains(jdTerm, resumeTerm) {
				if min(len(resumeTerm), len(jdTerm)) >= 3 {
					synonymMatched = append(synonymMatched, jdTerm)
					foundPartial = true
					break
				}
			}
		}
		if foundPartial {
			continue
		}

		if len(jdTerm) >= 4 && strings.Contains(lowerResume, jdTerm) {
			matched = append(matched, jdTerm)
			continue
		}

		missing = append(missing, jdTerm)
	}

	if len(jdTerms) == 0 {
		return KeywordBreakdown{Score: 100, Matched: matched, Missing: missing, SynonymMatched: synonymMatched}
	}

	effective := float64(len(matched)) + float64(len(synonymMatched))*0.8
	score := int(math.Round(math.Min(100, effective/float64(len(jdTerms))*100)))

	return KeywordBreakdown{
		Score:          score,
		Matched:        matched,
		Missing:        missing,
		SynonymMatched: synonymMatched,
	}
}

// QuickKeywordScore is a raw overlap check without synonym handling,
// used when no job description is supplied.
func QuickKeywordScore(resumeText, referenceText string) int {
	overlap := nlp.ComputeKeywordOverlap(resumeText, referenceText)
	return int(math.Round(overlap.Score * 100))
}
