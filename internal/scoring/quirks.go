package scoring

import (
	"fmt"
	"regexp"
	"strings"
)

// narrower than the experience scorer's patterns on purpose: the bonus
// only rewards hard numbers
var quirkQuantRe = regexp.MustCompile(`(?i)\d+%|\$[\d,]+|\d+\s*(?:x|times)`)

// QuirkKind selects which rule the quirk interpreter evaluates.
type QuirkKind string

const (
	// penalize when more than Threshold sections are unclassified
	QuirkUnknownSections QuirkKind = "unknown-sections"
	// penalize when the resume exceeds Threshold pages
	QuirkPageLimit QuirkKind = "page-limit"
	// penalize when a JD is present but fewer than Threshold skills parsed
	QuirkSkillFloor QuirkKind = "skill-floor"
	// penalize when more than Threshold of the standard sections are missing
	QuirkMissingStandardSections QuirkKind = "missing-standard-sections"
	// penalize missing dates, or failing that, missing experience entries
	QuirkStructuredData QuirkKind = "structured-data"
	// penalize per missing standard section
	QuirkMissingSectionsEach QuirkKind = "missing-sections-each"
	// reward a skills list of at least Threshold entries
	QuirkSkillBonus QuirkKind = "skill-bonus"
	// reward a quantified-bullet ratio of at least Ratio
	QuirkQuantificationBonus QuirkKind = "quantification-bonus"
	// reward the presence of a named section
	QuirkSectionBonus QuirkKind = "section-bonus"
	// reward average bullet length within [MinLen, MaxLen]
	QuirkBulletLength QuirkKind = "bullet-length"
)

// Quirk is one platform-specific scoring rule, fully data-driven so
// every rule can be evaluated by a single interpreter and tested in
// isolation. Penalty is positive for a deduction, negative for a bonus.
type Quirk struct {
	ID          string
	Kind        QuirkKind
	Description string
	Threshold   int
	Ratio       float64
	Section     string
	MinLen      int
	MaxLen      int
	Penalty     float64
	AltPenalty  float64
	Message     string
	AltMessage  string
}

var standardSections = []string{"contact", "experience", "education", "skills"}

func containsSection(sections []string, name string) bool {
	for _, s := range sections {
		if s == name {
			return true
		}
	}
	return false
}

func missingStandardSections(sections []string) []string {
	var missing []string
	for _, h := range standardSections {
		if !containsSection(sections, h) {
			missing = append(missing, h)
		}
	}
	return missing
}

// Evaluate runs one quirk over the scoring input. It returns the signed
// penalty, an explanatory message, and whether the rule fired at all.
func (q Quirk) Evaluate(input Input) (penalty float64, message string, fired bool) {
	switch q.Kind {
	case QuirkUnknownSections:
		unknown := 0
		for _, s := range input.ResumeSections {
			if s == "unknown" {
				unknown++
			}
		}
		if unknown > q.Threshold {
			return q.Penalty, q.Message, true
		}

	case QuirkPageLimit:
		if input.PageCount > q.Threshold {
			return q.Penalty, fmt.Sprintf(q.Message, input.PageCount), true
		}

	case QuirkSkillFloor:
		if input.JobDescription != "" && len(input.ResumeSkills) < q.Threshold {
			return q.Penalty, q.Message, true
		}

	case QuirkMissingStandardSections:
		missing := missingStandardSections(input.ResumeSections)
		if len(missing) > q.Threshold {
			return q.Penalty, fmt.Sprintf(q.Message, strings.Join(missing, ", ")), true
		}

	case QuirkStructuredData:
		if !gradYearRe.MatchString(input.ResumeText) {
			return q.Penalty, q.Message, true
		}
		if len(input.ExperienceBullets) == 0 {
			return q.AltPenalty, q.AltMessage, true
		}

	case QuirkMissingSectionsEach:
		missing := missingStandardSections(input.ResumeSections)
		if len(missing) > 0 {
			return q.Penalty * float64(len(missing)), fmt.Sprintf(q.Message, strings.Join(missing, ", ")), true
		}

	case QuirkSkillBonus:
		if len(input.ResumeSkills) >= q.Threshold {
			return q.Penalty, q.Message, true
		}

	case QuirkQuantificationBonus:
		quantified := 0
		for _, b := range input.ExperienceBullets {
			if quirkQuantRe.MatchString(b) {
				quantified++
			}
		}
		total := len(input.ExperienceBullets)
		if total == 0 {
			total = 1
		}
		if float64(quantified)/float64(total) >= q.Ratio {
			return q.Penalty, q.Message, true
		}

	case QuirkSectionBonus:
		if containsSection(input.ResumeSections, q.Section) {
			return q.Penalty, q.Message, true
		}

	case QuirkBulletLength:
		if len(input.ExperienceBullets) == 0 {
			return 0, "", false
		}
		sum := 0
		for _, b := range input.ExperienceBullets {
			sum += len(b)
		}
		avg := float64(sum) / float64(len(input.ExperienceBullets))
		if avg >= float64(q.MinLen) && avg <= float64(q.MaxLen) {
			return q.Penalty, q.Message, true
		}
	}

	return 0, "", false
}
