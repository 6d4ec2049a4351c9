package resume

import (
	"regexp"
	"strings"
)

// Header phrasing varies a lot across industries and templates, so each
// canonical type carries the set of spellings seen in the wild.
var sectionPatterns = []struct {
	typ      SectionType
	patterns []*regexp.Regexp
}{
	{SectionContact, []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(contact\s*(info(rmation)?)?|personal\s*(info(rmation)?|details))$`),
	}},
	{SectionSummary, []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(summary|profile|about(\s*me)?|objective|professional\s*summary|career\s*summary|executive\s*summary|personal\s*statement)$`),
	}},
	{SectionExperience, []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(experience|work\s*experience|professional\s*experience|employment(\s*history)?|work\s*history|relevant\s*experience|career\s*history)$`),
	}},
	{SectionEducation, []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(education|academic(\s*background)?|educational\s*background|qualifications|academic\s*qualifications)$`),
	}},
	{SectionSkills, []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(skills|technical\s*skills|core\s*competencies|competencies|areas?\s*of\s*expertise|proficiencies|technologies|tools?\s*(&|and)\s*technologies)$`),
	}},
	{SectionProjects, []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(projects|personal\s*projects|academic\s*projects|notable\s*projects|selected\s*projects|key\s*projects|side\s*projects)$`),
	}},
	{SectionCertifications, []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(certifications?|licenses?(\s*(&|and)\s*certifications?)?|professional\s*certifications?|accreditations?)$`),
	}},
	{SectionAwards, []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(awards?|honors?(\s*(&|and)\s*awards?)?|achievements?|recognition|scholarships?)$`),
	}},
	{SectionPublications, []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(publications?|research|papers?|presentations?)$`),
	}},
	{SectionVolunteer, []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(volunteer(ing)?(\s*experience)?|community\s*(service|involvement)|extracurricular(\s*activities)?)$`),
	}},
	{SectionLanguages, []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(languages?|language\s*proficiency)$`),
	}},
	{SectionInterests, []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(interests?|hobbies(\s*(&|and)\s*interests?)?)$`),
	}},
}

var (
	headerPunct    = regexp.MustCompile(`[:\-_|]`)
	longDigitRun   = regexp.MustCompile(`\d{3,}`)
	alphaOnlyLabel = regexp.MustCompile(`^[a-zA-Z\s&,/]+$`)
	likelyNameLine = regexp.MustCompile(`^[A-Z][a-z]+ [A-Z]`)
	hasUpperRune   = regexp.MustCompile(`[A-Z]`)
)

func matchSectionType(cleaned string) (SectionType, bool) {
	for _, sp := range sectionPatterns {
		for _, p := range sp.patterns {
			if p.MatchString(cleaned) {
				return sp.typ, true
			}
		}
	}
	return SectionUnknown, false
}

// isSectionHeader decides whether a line starts a new section. Known
// header spellings always win; otherwise layout heuristics apply: an
// all-caps short line after a blank, a short line ending with a colon,
// or a bare category label sitting between a blank line and content.
func isSectionHeader(line string, prev, next *string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) > 80 {
		return false
	}

	cleaned := strings.TrimSpace(headerPunct.ReplaceAllString(trimmed, ""))
	if _, ok := matchSectionType(cleaned); ok {
		return true
	}

	wordCount := len(strings.Fields(trimmed))
	isAllCaps := trimmed == strings.ToUpper(trimmed) && hasUpperRune.MatchString(trimmed)
	isShort := wordCount <= 5
	prevIsBlank := prev == nil || strings.TrimSpace(*prev) == ""

	if isAllCaps && isShort && !longDigitRun.MatchString(trimmed) && prevIsBlank {
		return true
	}

	if strings.HasSuffix(trimmed, ":") && isShort {
		return true
	}

	cleanedWords := len(strings.Fields(cleaned))
	nextIsContent := next != nil && strings.TrimSpace(*next) != ""
	// a 2-3 word title-case line at the top is usually the candidate's name
	isLikelyName := cleanedWords >= 2 && cleanedWords <= 3 && likelyNameLine.MatchString(cleaned)

	return alphaOnlyLabel.MatchString(cleaned) && isShort && prevIsBlank &&
		nextIsContent && !isLikelyName && len(cleaned) > 2
}

func classifySection(header string) SectionType {
	cleaned := strings.TrimSpace(headerPunct.ReplaceAllString(header, ""))
	if t, ok := matchSectionType(cleaned); ok {
		return t
	}
	return SectionUnknown
}

// DetectSections splits resume lines into typed sections. Content before
// the first header is treated as contact info. When no headers are found
// the whole document becomes a single unknown section.
func DetectSections(lines []string) []Section {
	type headerMark struct {
		index  int
		header string
		typ    SectionType
	}
	var headers []headerMark

	for i := range lines {
		var prev, next *string
		if i > 0 {
			prev = &lines[i-1]
		}
		if i < len(lines)-1 {
			next = &lines[i+1]
		}
		if isSectionHeader(lines[i], prev, next) {
			headers = append(headers, headerMark{
				index:  i,
				header: strings.TrimSpace(lines[i]),
				typ:    classifySection(lines[i]),
			})
		}
	}

	if len(headers) == 0 {
		return []Section{{
			Type:      SectionUnknown,
			Content:   strings.Join(lines, "\n"),
			StartLine: 0,
			EndLine:   len(lines) - 1,
		}}
	}

	var sections []Section
	if headers[0].index > 0 {
		content := strings.TrimSpace(strings.Join(lines[:headers[0].index], "\n"))
		if content != "" {
			sections = append(sections, Section{
				Type:      SectionContact,
				Content:   content,
				StartLine: 0,
				EndLine:   headers[0].index - 1,
			})
		}
	}

	for i, h := range headers {
		nextIndex := len(lines)
		if i < len(headers)-1 {
			nextIndex = headers[i+1].index
		}
		content := strings.TrimSpace(strings.Join(lines[h.index+1:nextIndex], "\n"))
		sections = append(sections, Section{
			Type:      h.typ,
			Header:    h.header,
			Content:   content,
			StartLine: h.index,
			EndLine:   nextIndex - 1,
		})
	}

	return sections
}
