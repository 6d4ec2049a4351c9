package resume

import (
	"regexp"
	"strings"
)

var (
	bulletPrefix = regexp.MustCompile(`^[\s•\-*·▪►➤○●]\s*`)
	bulletStart  = regexp.MustCompile(`^[\s•\-*·▪►➤○●]`)

	inlineDateRange = regexp.MustCompile(`(?i)(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s*\d{4}\s*[-–—]\s*(?:(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s*\d{4}|present|current|now)`)
	yearOnlyRange   = regexp.MustCompile(`(?i)\d{4}\s*[-–—]\s*(?:\d{4}|present|current)`)

	titleSeparator = regexp.MustCompile(`^(.+?)\s*[|–—]\s*(.+)$`)
	titleAt        = regexp.MustCompile(`(?i)^(.+?)\s+at\s+(.+)$`)
	titleComma     = regexp.MustCompile(`^(.+?),\s*(.+)$`)

	degreeRe = regexp.MustCompile(`(?i)\b(ph\.?d\.?|doctor|master'?s?|m\.?s\.?|m\.?a\.?|m\.?b\.?a\.?|bachelor'?s?|b\.?s\.?|b\.?a\.?|b\.?eng\.?|associate'?s?|a\.?s\.?|a\.?a\.?|diploma)\b`)
	fieldRe  = regexp.MustCompile(`(?i)(?:in|of)\s+(.+?)(?:\s*[-–—,|]|$)`)
	fieldCut = regexp.MustCompile(`(?i)(?:in|of)\s+.+`)
	edgeTrim = regexp.MustCompile(`^[-–—,|\s]+|[-–—,|\s]+$`)

	gpaRe       = regexp.MustCompile(`(?i)(?:gpa|g\.p\.a\.?)\s*:?\s*(\d+\.?\d*)\s*(?:/\s*(\d+\.?\d*))?`)
	honorsRe    = regexp.MustCompile(`(?i)\b(cum laude|magna cum laude|summa cum laude|dean'?s?\s*list|honors?|distinction|valedictorian|salutatorian)\b`)
	trailYearRe = regexp.MustCompile(`\d{4}.*`)

	techRe     = regexp.MustCompile(`(?i)\(([^)]+)\)|technologies?\s*:?\s*(.+?)(?:\.|$)`)
	techSplit  = regexp.MustCompile(`[,|;]`)
	projectURL = regexp.MustCompile(`https?://[^\s)]+`)
	skillSplit = regexp.MustCompile(`[,|;•·▪]`)
	certSplit  = regexp.MustCompile(`\s*[-–—|]\s*`)
)

// splitIntoEntries breaks section content into entry blocks. A blank
// line always separates entries; a non-bullet line carrying a date range
// also starts a new entry, but only once the previous block has bullets.
func splitIntoEntries(content string) []string {
	lines := strings.Split(content, "\n")
	var entries []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			entries = append(entries, strings.Join(current, "\n"))
			current = nil
		}
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
			continue
		}

		hasDate := len(ExtractDateRanges(trimmed)) > 0
		isBullet := bulletStart.MatchString(line)

		if hasDate && !isBullet && len(current) > 0 {
			prevHasBullets := false
			for _, l := range current {
				if bulletStart.MatchString(l) {
					prevHasBullets = true
					break
				}
			}
			if prevHasBullets {
				flush()
			}
		}

		current = append(current, line)
	}
	flush()

	var out []string
	for _, e := range entries {
		if strings.TrimSpace(e) != "" {
			out = append(out, e)
		}
	}
	return out
}

func nonEmptyLines(block string) []string {
	var out []string
	for _, l := range strings.Split(block, "\n") {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}

func stripBullet(line string) string {
	return strings.TrimSpace(bulletPrefix.ReplaceAllString(line, ""))
}

// ExtractExperience builds structured job entries from experience
// sections.
func ExtractExperience(sections []Section) []ExperienceEntry {
	var entries []ExperienceEntry

	for _, section := range SectionsOfType(sections, SectionExperience) {
		for _, block := range splitIntoEntries(section.Content) {
			lines := nonEmptyLines(block)
			if len(lines) == 0 {
				continue
			}

			firstLine := lines[0]
			secondLine := ""
			if len(lines) > 1 {
				secondLine = lines[1]
			}

			dates, _ := ExtractFirstDateRange(firstLine + " " + secondLine)
			title, company := parseJobHeader(firstLine, secondLine)

			headerLines := 1
			if title != "" && company != "" {
				headerLines = 2
			}
			var bullets []string
			for _, l := range lines[min(headerLines, len(lines)):] {
				if b := stripBullet(l); b != "" {
					bullets = append(bullets, b)
				}
			}

			entries = append(entries, ExperienceEntry{
				Title:   title,
				Company: company,
				Dates:   dates,
				Bullets: bullets,
				RawText: block,
			})
		}
	}

	return entries
}

// parseJobHeader splits a job header into title and company. Handles
// "Title | Company", "Title at Company", "Title, Company", and the
// two-line company/title layout.
func parseJobHeader(line1, line2 string) (title, company string) {
	clean1 := strings.TrimSpace(inlineDateRange.ReplaceAllString(line1, ""))
	clean2 := strings.TrimSpace(inlineDateRange.ReplaceAllString(line2, ""))

	if m := titleSeparator.FindStringSubmatch(clean1); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	if m := titleAt.FindStringSubmatch(clean1); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	if m := titleComma.FindStringSubmatch(clean1); m != nil && len(m[2]) > 2 {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	if clean1 != "" && clean2 != "" {
		return clean2, clean1
	}
	return clean1, ""
}

// ExtractEducation builds structured degree entries from education
// sections.
func ExtractEducation(sections []Section) []EducationEntry {
	var entries []EducationEntry

	for _, section := range SectionsOfType(sections, SectionEducation) {
		for _, block := range splitIntoEntries(section.Content) {
			lines := nonEmptyLines(block)
			if len(lines) == 0 {
				continue
			}

			fullText := strings.Join(lines, " ")
			dates, _ := ExtractFirstDateRange(fullText)
			degree, field, institution := parseEduHeader(lines)

			entries = append(entries, EducationEntry{
				Degree:      degree,
				Field:       field,
				Institution: institution,
				Dates:       dates,
				GPA:         extractGPA(fullText),
				Honors:      extractHonors(lines),
				RawText:     block,
			})
		}
	}

	return entries
}

func parseEduHeader(lines []string) (degree, field, institution string) {
	for _, line := range lines {
		cleaned := strings.TrimSpace(yearOnlyRange.ReplaceAllString(line, ""))

		if degreeRe.MatchString(cleaned) && degree == "" {
			degree = degreeRe.FindString(cleaned)
			// the field usually follows "in" or "of"
			if m := fieldRe.FindStringSubmatch(cleaned); m != nil {
				field = strings.TrimSpace(m[1])
			}
			// degree and institution sometimes share a line
			afterDegree := strings.TrimSpace(fieldCut.ReplaceAllString(degreeRe.ReplaceAllString(cleaned, ""), ""))
			if afterDegree != "" && institution == "" {
				institution = edgeTrim.ReplaceAllString(afterDegree, "")
			}
		} else if institution == "" && len(cleaned) > 3 {
			institution = edgeTrim.ReplaceAllString(cleaned, "")
		}
	}

	if degree == "" && institution == "" && len(lines) > 0 {
		institution = strings.TrimSpace(lines[0])
		if len(lines) > 1 {
			degree = strings.TrimSpace(lines[1])
		}
	}

	return degree, field, institution
}

func extractGPA(text string) string {
	m := gpaRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	if m[2] != "" {
		return m[1] + "/" + m[2]
	}
	return m[1]
}

func extractHonors(lines []string) []string {
	var honors []string
	for _, l := range lines {
		if honorsRe.MatchString(l) {
			honors = append(honors, strings.TrimSpace(l))
		}
	}
	return honors
}

// ExtractProjects builds project entries from project sections.
// Technologies come from parentheses or a "Technologies:" prefix.
func ExtractProjects(sections []Section) []ProjectEntry {
	var entries []ProjectEntry

	for _, section := range SectionsOfType(sections, SectionProjects) {
		for _, block := range splitIntoEntries(section.Content) {
			lines := nonEmptyLines(block)
			if len(lines) == 0 {
				continue
			}

			name := stripBullet(lines[0])
			var bullets []string
			for _, l := range lines[1:] {
				if b := stripBullet(l); b != "" {
					bullets = append(bullets, b)
				}
			}
			fullText := strings.Join(lines, " ")

			var technologies []string
			if m := techRe.FindStringSubmatch(fullText); m != nil {
				raw := m[1]
				if raw == "" {
					raw = m[2]
				}
				for _, t := range techSplit.Split(raw, -1) {
					if t = strings.TrimSpace(t); t != "" {
						technologies = append(technologies, t)
					}
				}
			}

			entries = append(entries, ProjectEntry{
				Name:         name,
				Description:  strings.Join(bullets, " "),
				Technologies: technologies,
				Bullets:      bullets,
				URL:          projectURL.FindString(fullText),
				RawText:      block,
			})
		}
	}

	return entries
}

// ExtractCertifications builds one entry per non-empty line of the
// certification sections.
func ExtractCertifications(sections []Section) []CertificationEntry {
	var entries []CertificationEntry

	for _, section := range SectionsOfType(sections, SectionCertifications) {
		for _, line := range strings.Split(section.Content, "\n") {
			cleaned := stripBullet(line)
			if cleaned == "" {
				continue
			}

			parts := certSplit.Split(cleaned, -1)
			entry := CertificationEntry{
				Name:    strings.TrimSpace(parts[0]),
				RawText: cleaned,
			}
			if len(parts) > 1 {
				entry.Issuer = strings.TrimSpace(trailYearRe.ReplaceAllString(parts[1], ""))
			}
			if r, ok := ExtractFirstDateRange(cleaned); ok && r.Start != nil {
				entry.Date = *r.Start
			}
			entries = append(entries, entry)
		}
	}

	return entries
}

// ExtractSkills flattens skills sections into a deduplicated list.
// Handles comma-separated lines, bullets, and "Category: a, b, c".
func ExtractSkills(sections []Section) []string {
	var skills []string

	for _, section := range SectionsOfType(sections, SectionSkills) {
		for _, line := range strings.Split(section.Content, "\n") {
			cleaned := stripBullet(line)
			if cleaned == "" {
				continue
			}

			skillPart := cleaned
			if idx := strings.Index(cleaned, ":"); idx >= 0 {
				skillPart = cleaned[idx+1:]
			}

			for _, item := range skillSplit.Split(skillPart, -1) {
				item = strings.TrimSpace(item)
				if item != "" && len(item) < 50 {
					skills = append(skills, item)
				}
			}
		}
	}

	seen := make(map[string]bool, len(skills))
	var out []string
	for _, s := range skills {
		key := strings.ToLower(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

// ExtractSummary returns the first summary section's content, or "".
func ExtractSummary(sections []Section) string {
	for _, s := range sections {
		if s.Type == SectionSummary {
			return strings.TrimSpace(s.Content)
		}
	}
	return ""
}
