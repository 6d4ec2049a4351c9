package scoring

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// Verbs recruiters and ATS relevance models look for at the start of a
// bullet.
var strongActionVerbs = map[string]bool{
	"achieved": true, "accelerated": true, "administered": true,
	"advanced": true, "analyzed": true, "architected": true,
	"automated": true, "built": true, "centralized": true,
	"championed": true, "collaborated": true, "conceptualized": true,
	"consolidated": true, "contributed": true, "converted": true,
	"coordinated": true, "created": true, "decreased": true,
	"delivered": true, "designed": true, "developed": true,
	"directed": true, "drove": true, "eliminated": true,
	"enabled": true, "engineered": true, "established": true,
	"exceeded": true, "executed": true, "expanded": true,
	"facilitated": true, "founded": true, "generated": true,
	"grew": true, "headed": true, "identified": true,
	"implemented": true, "improved": true, "increased": true,
	"influenced": true, "initiated": true, "innovated": true,
	"integrated": true, "introduced": true, "launched": true,
	"led": true, "leveraged": true, "managed": true,
	"maximized": true, "mentored": true, "migrated": true,
	"modernized": true, "negotiated": true, "operated": true,
	"optimized": true, "orchestrated": true, "organized": true,
	"outperformed": true, "overhauled": true, "oversaw": true,
	"pioneered": true, "planned": true, "presented": true,
	"prioritized": true, "produced": true, "programmed": true,
	"proposed": true, "published": true, "raised": true,
	"recommended": true, "redesigned": true, "reduced": true,
	"refactored": true, "reformed": true, "reengineered": true,
	"reorganized": true, "replaced": true, "researched": true,
	"resolved": true, "restructured": true, "revamped": true,
	"revolutionized": true, "scaled": true, "secured": true,
	"simplified": true, "spearheaded": true, "standardized": true,
	"streamlined": true, "strengthened": true, "supervised": true,
	"surpassed": true, "synchronized": true, "trained": true,
	"transformed": true, "translated": true, "unified": true,
	"upgraded": true,
}

// Patterns indicating quantified achievements. Measurable impact is one
// of the strongest resume signals.
var quantificationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+%`),
	regexp.MustCompile(`\$[\d,]+`),
	regexp.MustCompile(`(?i)\d+\s*(?:x|times)`),
	regexp.MustCompile(`(?i)\d+\+?\s*(?:users?|customers?|clients?|employees?|members?|team)`),
	regexp.MustCompile(`(?i)\d+\+?\s*(?:projects?|products?|applications?|systems?|services?)`),
	regexp.MustCompile(`(?i)(?:top|first|#)\s*\d+`),
	regexp.MustCompile(`(?i)\d+\s*(?:hours?|days?|weeks?|months?|years?)`),
	regexp.MustCompile(`\d{1,3}(?:,\d{3})+`),
	regexp.MustCompile(`(?i)\d+\s*(?:million|billion|thousand|k|m|b)\b`),
}

var nonAlphaRe = regexp.MustCompile(`[^a-z]`)

// IsQuantified reports whether a bullet contains a measurable claim.
func IsQuantified(bullet string) bool {
	for _, p := range quantificationPatterns {
		if p.MatchString(bullet) {
			return true
		}
	}
	return false
}

// ScoreExperience rates bullet quality on three components: how many
// bullets carry numbers (ideal 40%+), how many start with strong action
// verbs (ideal 70%+), and whether there are enough bullets at all.
func ScoreExperience(bullets []string) ExperienceBreakdown {
	if len(bullets) == 0 {
		return ExperienceBreakdown{
			Highlights: []string{"no experience bullets found"},
		}
	}

	var highlights []string
	quantified := 0
	actionVerbs := 0

	for _, bullet := range bullets {
		if IsQuantified(bullet) {
			quantified++
		}
		fields := strings.Fields(strings.TrimSpace(bullet))
		if len(fields) > 0 {
			first := nonAlphaRe.ReplaceAllString(strings.ToLower(fields[0]), "")
			if strongActionVerbs[first] {
				actionVerbs++
			}
		}
	}

	total := len(bullets)
	quantRatio := float64(quantified) / float64(total)
	actionRatio := float64(actionVerbs) / float64(total)

	quantScore := math.Min(1, quantRatio/0.4) * 40
	actionScore := math.Min(1, actionRatio/0.7) * 30

	var bulletCountScore float64
	switch {
	case total >= 8:
		bulletCountScore = 30
	case total >= 5:
		bulletCountScore = 25
	case total >= 3:
		bulletCountScore = 20
	default:
		bulletCountScore = 10
	}

	switch {
	case quantRatio >= 0.4:
		highlights = append(highlights, fmt.Sprintf("%d%% of bullets are quantified (excellent)", int(math.Round(quantRatio*100))))
	case quantRatio >= 0.2:
		highlights = append(highlights, fmt.Sprintf("%d%% of bullets are quantified (good, aim for 40%%+)", int(math.Round(quantRatio*100))))
	default:
		highlights = append(highlights, fmt.Sprintf("only %d%% of bullets are quantified (add numbers, percentages, dollar amounts)", int(math.Round(quantRatio*100))))
	}

	if actionRatio >= 0.7 {
		highlights = append(highlights, "strong use of action verbs")
	} else {
		highlights = append(highlights, fmt.Sprintf("%d%% bullets start with action verbs (aim for 70%%+)", int(math.Round(actionRatio*100))))
	}

	if total < 5 {
		highlights = append(highlights, fmt.Sprintf("only %d experience bullets. consider adding more detail.", total))
	}

	score := int(math.Round(math.Min(100, quantScore+actionScore+bulletCountScore)))

	return ExperienceBreakdown{
		Score:             score,
		QuantifiedBullets: quantified,
		TotalBullets:      total,
		ActionVerbCount:   actionVerbs,
		Highlights:        highlights,
	}
}
