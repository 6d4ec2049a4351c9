// Package jobdesc parses free-form job description text into a skill
// profile: extracted skills split into required and preferred, plus
// experience level, education requirement, industry, and role type.
package jobdesc

import (
	"regexp"
	"strings"

	"github.com/sunnypatell/ats-screener/internal/nlp"
)

// Profile is the structured view of one job description.
type Profile struct {
	RawText              string   `json:"rawText"`
	ExtractedSkills      []string `json:"extractedSkills"`
	RequiredSkills       []string `json:"requiredSkills"`
	PreferredSkills      []string `json:"preferredSkills"`
	ExperienceLevel      string   `json:"experienceLevel"`
	EducationRequirement string   `json:"educationRequirement"`
	IndustryContext      string   `json:"industryContext"`
	RoleType             string   `json:"roleType"`
	KeyPhrases           []string `json:"keyPhrases"`
}

// Skill patterns catch common skills the taxonomy may miss, grouped by
// area to keep the alternations readable.
var skillPatterns = []*regexp.Regexp{
	// tech
	regexp.MustCompile(`(?i)\b(?:python|java|javascript|typescript|react|angular|vue|node\.?js|go|rust|swift|kotlin|ruby|php|c\+\+|c#|\.net|sql|nosql|mongodb|postgresql|redis|docker|kubernetes|aws|azure|gcp|terraform|jenkins|git|linux)\b`),
	// data/ml
	regexp.MustCompile(`(?i)\b(?:machine learning|deep learning|data science|nlp|natural language|computer vision|tensorflow|pytorch|pandas|spark|hadoop|tableau|power bi|etl)\b`),
	// business
	regexp.MustCompile(`(?i)\b(?:salesforce|hubspot|sap|oracle|quickbooks|excel|powerpoint|jira|confluence|asana|slack)\b`),
	// certifications
	regexp.MustCompile(`(?i)\b(?:cpa|pmp|aws certified|google certified|azure certified|cissp|ceh|six sigma|scrum master|agile)\b`),
}

var (
	requiredHeaderRe  = regexp.MustCompile(`(?:required|must have|minimum|essential|requirements)\b`)
	preferredHeaderRe = regexp.MustCompile(`(?:preferred|nice to have|bonus|desired|plus|ideal)\b`)

	executiveRe = regexp.MustCompile(`\b(?:director|vp|vice president|head of|chief)\b`)
	leadRe      = regexp.MustCompile(`\b(?:lead|principal|staff|architect)\b`)
	seniorRe    = regexp.MustCompile(`\b(?:senior|sr\.?)\b`)
	seniorYrsRe = regexp.MustCompile(`\b[5-9]\+?\s*(?:years?|yrs?)\b`)
	midYrsRe    = regexp.MustCompile(`\b[3-4]\+?\s*(?:years?|yrs?)\b`)
	juniorRe    = regexp.MustCompile(`\b(?:junior|jr\.?|entry)\b`)
	entryYrsRe  = regexp.MustCompile(`\b[0-2]\+?\s*(?:years?|yrs?)\b`)
	internRe    = regexp.MustCompile(`\b(?:intern|internship|co-op|new grad)\b`)

	phdRe       = regexp.MustCompile(`\b(?:ph\.?d|doctorate)\b`)
	mastersRe   = regexp.MustCompile(`\b(?:master'?s?|mba|m\.s\.?|m\.a\.?)\b`)
	bachelorsRe = regexp.MustCompile(`\b(?:bachelor'?s?|b\.s\.?|b\.a\.?|degree)\b`)
	associateRe = regexp.MustCompile(`\b(?:associate'?s?)\b`)
)

var roleTypePatterns = []struct {
	role    string
	pattern *regexp.Regexp
}{
	{"engineering", regexp.MustCompile(`\b(?:engineer|developer|programmer|devops|sre|software|frontend|backend|fullstack)\b`)},
	{"sales", regexp.MustCompile(`\b(?:sales|account executive|business development)\b`)},
	{"marketing", regexp.MustCompile(`\b(?:market|brand|content|seo|social media)\b`)},
	{"finance", regexp.MustCompile(`\b(?:financial|finance|accounting|audit|tax|treasury|cpa|cfa)\b`)},
	{"healthcare", regexp.MustCompile(`\b(?:nurse|physician|clinical|patient|healthcare)\b`)},
	{"legal", regexp.MustCompile(`\b(?:legal|attorney|counsel|compliance)\b`)},
	{"operations", regexp.MustCompile(`\b(?:operat|supply chain|logistics|procurement)\b`)},
	{"design", regexp.MustCompile(`\b(?:design|ux|ui|graphic|creative)\b`)},
}

var genericWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "this": true,
	"that": true, "will": true, "you": true, "are": true,
}

// Parse runs the rule-based extractor over a job description.
func Parse(text string) *Profile {
	lower := strings.ToLower(text)

	tokens := nlp.Tokenize(text)
	seen := make(map[string]bool, len(tokens))
	var terms []string
	for _, t := range tokens {
		if !seen[t.Normalized] {
			seen[t.Normalized] = true
			terms = append(terms, t.Normalized)
		}
	}

	bigrams := nlp.Ngrams(text, 2)
	trigrams := nlp.Ngrams(text, 3)

	industries := nlp.DetectIndustry(text)
	industryContext := "general"
	var industrySkills []string
	if len(industries) > 0 {
		industryContext = industries[0].Industry
		industrySkills = nlp.IndustrySkills(industries[0].Industry)
	}

	skills := extractSkills(terms, bigrams, trigrams, industrySkills)
	required, preferred := categorizeSkills(text, skills)

	var keyPhrases []string
	for _, phrase := range append(append([]string{}, bigrams...), trigrams...) {
		if isKeyPhrase(phrase) {
			keyPhrases = append(keyPhrases, phrase)
			if len(keyPhrases) == 20 {
				break
			}
		}
	}

	return &Profile{
		RawText:              text,
		ExtractedSkills:      skills,
		RequiredSkills:       required,
		PreferredSkills:      preferred,
		ExperienceLevel:      detectExperienceLevel(lower),
		EducationRequirement: detectEducationRequirement(lower),
		IndustryContext:      industryContext,
		RoleType:             detectRoleType(lower),
		KeyPhrases:           keyPhrases,
	}
}

func extractSkills(terms, bigrams, trigrams, industrySkills []string) []string {
	industrySet := make(map[string]bool, len(industrySkills))
	for _, s := range industrySkills {
		industrySet[strings.ToLower(s)] = true
	}

	seen := make(map[string]bool)
	var skills []string
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			skills = append(skills, s)
		}
	}

	for _, term := range terms {
		if len(term) >= 2 && industrySet[term] {
			add(term)
		}
	}
	for _, phrase := range append(append([]string{}, bigrams...), trigrams...) {
		if industrySet[phrase] {
			add(phrase)
		}
	}

	joined := strings.Join(terms, " ")
	for _, pattern := range skillPatterns {
		for _, m := range pattern.FindAllString(joined, -1) {
			add(strings.ToLower(m))
		}
	}

	return skills
}

// categorizeSkills walks the JD line by line, tracking whether the
// current section reads as required or preferred. Skills in ambiguous
// sections, and any skills never seen on a line, default to required.
func categorizeSkills(text string, skills []string) (required, preferred []string) {
	inRequired := false
	inPreferred := false

	reqSeen := make(map[string]bool)
	prefSeen := make(map[string]bool)

	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(strings.TrimSpace(line))

		if requiredHeaderRe.MatchString(lower) {
			inRequired, inPreferred = true, false
		} else if preferredHeaderRe.MatchString(lower) {
			inRequired, inPreferred = false, true
		}

		for _, skill := range skills {
			if !strings.Contains(lower, skill) {
				continue
			}
			if inPreferred && !inRequired {
				if !prefSeen[skill] {
					prefSeen[skill] = true
					preferred = append(preferred, skill)
				}
			} else if !reqSeen[skill] {
				reqSeen[skill] = true
				required = append(required, skill)
			}
		}
	}

	for _, skill := range skills {
		if !reqSeen[skill] && !prefSeen[skill] {
			reqSeen[skill] = true
			required = append(required, skill)
		}
	}

	return required, preferred
}

func detectExperienceLevel(text string) string {
	switch {
	case executiveRe.MatchString(text):
		return "executive"
	case leadRe.MatchString(text):
		return "lead"
	case seniorRe.MatchString(text) || seniorYrsRe.MatchString(text):
		return "senior"
	case midYrsRe.MatchString(text):
		return "mid"
	case juniorRe.MatchString(text) || entryYrsRe.MatchString(text):
		return "entry"
	case internRe.MatchString(text):
		return "entry"
	default:
		return "mid"
	}
}

func detectEducationRequirement(text string) string {
	switch {
	case phdRe.MatchString(text):
		return "PhD"
	case mastersRe.MatchString(text):
		return "Master's degree"
	case bachelorsRe.MatchString(text):
		return "Bachelor's degree"
	case associateRe.MatchString(text):
		return "Associate's degree"
	default:
		return "not specified"
	}
}

func detectRoleType(text string) string {
	for _, rt := range roleTypePatterns {
		if rt.pattern.MatchString(text) {
			return rt.role
		}
	}
	return "other"
}

// isKeyPhrase filters out phrases that are entirely generic words or
// contain single-letter fragments.
func isKeyPhrase(phrase string) bool {
	words := strings.Split(phrase, " ")
	allGeneric := true
	for _, w := range words {
		if len(w) <= 1 {
			return false
		}
		if !genericWords[w] {
			allGeneric = false
		}
	}
	return !allGeneric
}
