package scoring

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// degreeLevels ranks degree keywords so the highest mention wins.
var degreeLevels = []struct {
	keyword string
	level   int
}{
	{"phd", 5}, {"ph.d", 5}, {"doctor", 5}, {"doctorate", 5},
	{"master", 4}, {"master's", 4}, {"mba", 4}, {"ms", 4},
	{"m.s", 4}, {"ma", 4}, {"m.a", 4}, {"m.b.a", 4},
	{"bachelor", 3}, {"bachelor's", 3}, {"bs", 3}, {"b.s", 3},
	{"ba", 3}, {"b.a", 3}, {"b.eng", 3},
	{"associate", 2}, {"associate's", 2}, {"as", 2}, {"a.s", 2},
	{"aa", 2}, {"a.a", 2},
	{"diploma", 1}, {"certificate", 1}, {"certification", 1},
}

var (
	institutionRe = regexp.MustCompile(`[A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)+`)
	gradYearRe    = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	fieldPrepRe   = regexp.MustCompile(`\b(?:in|of)\s+[A-Z]`)
	fieldNameRe   = regexp.MustCompile(`(?i)(?:computer science|engineering|business|mathematics|biology|chemistry|physics|psychology|economics|finance|accounting|marketing|nursing|law|education|design)`)
	gpaLabelRe    = regexp.MustCompile(`(?i)\bgpa\b`)
	gpaScaleRe    = regexp.MustCompile(`(?i)\b[34]\.\d{1,2}\s*/?\s*4`)
	gpaValueRe    = regexp.MustCompile(`(\d\.\d{1,2})`)
	honorsTextRe  = regexp.MustCompile(`(?i)\b(cum laude|magna cum laude|summa cum laude|dean'?s?\s*list|honors?|distinction)\b`)
)

// ScoreEducation rates the education section additively: degree type,
// institution, graduation year, field of study, GPA, and honors each
// contribute. A missing section earns a floor of 20 since most roles
// still expect a degree listing.
func ScoreEducation(educationText string) EducationBreakdown {
	if strings.TrimSpace(educationText) == "" {
		return EducationBreakdown{
			Score: 20,
			Notes: []string{"no education section found. most positions require at least a degree listing."},
		}
	}

	var notes []string
	score := 0
	lower := strings.ToLower(educationText)

	highestDegree := 0
	degreeFound := ""
	for _, d := range degreeLevels {
		if strings.Contains(lower, d.keyword) && d.level > highestDegree {
			highestDegree = d.level
			degreeFound = d.keyword
		}
	}
	if highestDegree > 0 {
		score += 30
		notes = append(notes, "degree detected: "+degreeFound)
	} else {
		notes = append(notes, "no clear degree type found. ensure your degree is explicitly stated.")
	}

	// institution heuristic: capitalized multi-word phrase
	if institutionRe.MatchString(educationText) {
		score += 20
	} else {
		notes = append(notes, "institution name may not be clearly parseable")
	}

	if gradYearRe.MatchString(educationText) {
		score += 15
	} else {
		notes = append(notes, "no graduation date found. include your graduation year.")
	}

	if fieldPrepRe.MatchString(educationText) || fieldNameRe.MatchString(educationText) {
		score += 15
		notes = append(notes, "field of study detected")
	} else {
		notes = append(notes, "consider explicitly stating your field of study")
	}

	if gpaLabelRe.MatchString(educationText) || gpaScaleRe.MatchString(educationText) {
		score += 10
		notes = append(notes, "GPA listed")
		if m := gpaValueRe.FindStringSubmatch(educationText); m != nil {
			if gpa, err := strconv.ParseFloat(m[1], 64); err == nil {
				if gpa >= 3.5 {
					notes = append(notes, fmt.Sprintf("strong GPA (%g)", gpa))
				} else if gpa < 3.0 {
					notes = append(notes, "consider removing GPA below 3.0 unless required")
				}
			}
		}
	}

	if honorsTextRe.MatchString(educationText) {
		score += 10
		notes = append(notes, "academic honors detected")
	}

	if score > 100 {
		score = 100
	}

	return EducationBreakdown{Score: score, Notes: notes}
}
