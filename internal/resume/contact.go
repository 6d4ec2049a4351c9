package resume

import (
	"regexp"
	"strings"
)

var (
	emailRe    = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phoneRe    = regexp.MustCompile(`(?:\+?1[-.\s]?)?(?:\(?\d{3}\)?[-.\s]?)?\d{3}[-.\s]?\d{4}`)
	linkedinRe = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[\w-]+/?`)
	githubRe   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[\w-]+/?`)
	urlRe      = regexp.MustCompile(`(?i)https?://[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}(?:/\S*)?`)
	schemeRe   = regexp.MustCompile(`https?://`)
	nameWordRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z.\-']*$`)
)

var locationPatterns = []*regexp.Regexp{
	// City, ST
	regexp.MustCompile(`[A-Z][a-zA-Z\s]+,\s*[A-Z]{2}\b`),
	// City, State
	regexp.MustCompile(`[A-Z][a-zA-Z\s]+,\s*[A-Z][a-z]+(?:\s[A-Z][a-z]+)?`),
	// City, ST ZIP
	regexp.MustCompile(`[A-Z][a-zA-Z\s]+,\s*[A-Z]{2}\s+\d{5}`),
	// City, Country
	regexp.MustCompile(`[A-Z][a-zA-Z\s]+,\s*[A-Z][a-zA-Z\s]+`),
}

// ExtractContact pulls contact details from the top of the document.
// Contact info almost always sits in the first 15 lines.
func ExtractContact(lines []string) ContactInfo {
	n := len(lines)
	if n > 15 {
		n = 15
	}
	searchLines := lines[:n]
	searchText := strings.Join(searchLines, "\n")

	return ContactInfo{
		Name:     extractName(searchLines),
		Email:    strings.TrimSpace(emailRe.FindString(searchText)),
		Phone:    strings.TrimSpace(phoneRe.FindString(searchText)),
		LinkedIn: strings.TrimSpace(linkedinRe.FindString(searchText)),
		GitHub:   strings.TrimSpace(githubRe.FindString(searchText)),
		Website:  extractWebsite(searchText),
		Location: extractLocation(searchLines),
	}
}

// extractWebsite finds the first generic URL that is not a linkedin or
// github profile link.
func extractWebsite(text string) string {
	for _, u := range urlRe.FindAllString(text, -1) {
		lower := strings.ToLower(u)
		if strings.Contains(lower, "linkedin.com") || strings.Contains(lower, "github.com") {
			continue
		}
		return strings.TrimSpace(u)
	}
	return ""
}

// extractName looks for a short line of 2-5 alphabetic words in the
// first 5 lines, skipping anything that looks like contact details.
func extractName(lines []string) string {
	n := len(lines)
	if n > 5 {
		n = 5
	}
	for _, line := range lines[:n] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || len(trimmed) > 50 {
			continue
		}
		if emailRe.MatchString(trimmed) || phoneRe.MatchString(trimmed) || schemeRe.MatchString(trimmed) {
			continue
		}
		if strings.Contains(strings.ToLower(trimmed), "linkedin") ||
			strings.Contains(strings.ToLower(trimmed), "github") {
			continue
		}

		words := strings.Fields(trimmed)
		if len(words) < 2 || len(words) > 5 {
			continue
		}
		allAlpha := true
		for _, w := range words {
			if !nameWordRe.MatchString(w) {
				allAlpha = false
				break
			}
		}
		if allAlpha {
			return trimmed
		}
	}
	return ""
}

func extractLocation(lines []string) string {
	n := len(lines)
	if n > 10 {
		n = 10
	}
	for _, line := range lines[:n] {
		trimmed := strings.TrimSpace(line)
		if emailRe.MatchString(trimmed) || phoneRe.MatchString(trimmed) || schemeRe.MatchString(trimmed) {
			continue
		}
		for _, pattern := range locationPatterns {
			loc := strings.TrimSpace(pattern.FindString(trimmed))
			if len(loc) > 5 && len(loc) < 60 {
				return loc
			}
		}
	}
	return ""
}
