package resume

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

var monthAbbrevs = []string{
	"jan", "feb", "mar", "apr", "may", "jun",
	"jul", "aug", "sep", "oct", "nov", "dec",
}

var currentIndicators = regexp.MustCompile(`(?i)\b(present|current|now|ongoing|today)\b`)

const monthAlt = `(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)`

// Ordered by specificity. Each position in the text is claimed by the
// first pattern that matches it, so ranges beat standalone dates.
var dateRangePatterns = []*regexp.Regexp{
	// Month Year - Month Year (or Present)
	regexp.MustCompile(`(?i)` + monthAlt + `\s*\.?\s*\d{4}\s*[-–—~to]+\s*(?:` + monthAlt + `\s*\.?\s*\d{4}|present|current|now|ongoing|today)`),

	// MM/YYYY - MM/YYYY (or Present)
	regexp.MustCompile(`(?i)\d{1,2}/\d{4}\s*[-–—~to]+\s*(?:\d{1,2}/\d{4}|present|current|now|ongoing|today)`),

	// Year - Year (or Present)
	regexp.MustCompile(`(?i)\b(?:20\d{2}|19\d{2})\s*[-–—~to]+\s*(?:20\d{2}|19\d{2}|present|current|now|ongoing|today)\b`),

	// Season Year - Season Year
	regexp.MustCompile(`(?i)(?:spring|summer|fall|autumn|winter)\s*\d{4}\s*[-–—~to]+\s*(?:(?:spring|summer|fall|autumn|winter)\s*\d{4}|present|current|now)`),

	// standalone Month Year
	regexp.MustCompile(`(?i)` + monthAlt + `\s*\.?\s*\d{4}`),
}

var (
	rangeSeparator = regexp.MustCompile(`(?i)\s*[-–—~]\s*|\s+to\s+`)
	slashDate      = regexp.MustCompile(`(\d{1,2})/(\d{4})`)
	fourDigitYear  = regexp.MustCompile(`\d{4}`)
	bareYear       = regexp.MustCompile(`^(19|20)\d{2}$`)
	seasonYear     = regexp.MustCompile(`(?i)(spring|summer|fall|autumn|winter)\s*(\d{4})`)
)

var seasonMonths = map[string]string{
	"spring": "03",
	"summer": "06",
	"fall":   "09",
	"autumn": "09",
	"winter": "12",
}

// ExtractDateRanges finds every date range in the text. Spans already
// claimed by an earlier, more specific pattern are skipped so a range
// like "Jan 2023 - Present" is not re-matched as a standalone month.
func ExtractDateRanges(text string) []DateRange {
	var ranges []DateRange
	type span struct{ start, end int }
	var matched []span

	for _, pattern := range dateRangePatterns {
		for _, loc := range pattern.FindAllStringIndex(text, -1) {
			start, end := loc[0], loc[1]
			overlaps := false
			for _, s := range matched {
				if start < s.end && end > s.start {
					overlaps = true
					break
				}
			}
			if overlaps {
				continue
			}
			if r, ok := parseDateRange(strings.TrimSpace(text[start:end])); ok {
				ranges = append(ranges, r)
				matched = append(matched, span{start, end})
			}
		}
	}

	return ranges
}

// ExtractFirstDateRange returns the first date range found, or false.
func ExtractFirstDateRange(text string) (DateRange, bool) {
	ranges := ExtractDateRanges(text)
	if len(ranges) == 0 {
		return DateRange{}, false
	}
	return ranges[0], true
}

func parseDateRange(raw string) (DateRange, bool) {
	isCurrent := currentIndicators.MatchString(raw)
	parts := rangeSeparator.Split(raw, -1)

	if len(parts) >= 2 {
		r := DateRange{
			Start:     normalizeDate(strings.TrimSpace(parts[0])),
			IsCurrent: isCurrent,
		}
		if !isCurrent {
			r.End = normalizeDate(strings.TrimSpace(parts[1]))
		}
		return r, true
	}

	return DateRange{Start: normalizeDate(raw)}, true
}

// normalizeDate turns a single date token into "YYYY-MM" or "YYYY".
// Returns nil for open-ended indicators and unparseable input.
func normalizeDate(dateStr string) *string {
	cleaned := strings.ToLower(strings.TrimSpace(dateStr))

	if currentIndicators.MatchString(cleaned) {
		return nil
	}

	if m := slashDate.FindStringSubmatch(cleaned); m != nil {
		month, _ := strconv.Atoi(m[1])
		s := fmt.Sprintf("%s-%02d", m[2], month)
		return &s
	}

	for i, name := range monthNames {
		if strings.Contains(cleaned, name) || strings.HasPrefix(cleaned, monthAbbrevs[i]) {
			if year := fourDigitYear.FindString(cleaned); year != "" {
				s := fmt.Sprintf("%s-%02d", year, i+1)
				return &s
			}
		}
	}

	if bareYear.MatchString(cleaned) {
		s := cleaned
		return &s
	}

	if m := seasonYear.FindStringSubmatch(cleaned); m != nil {
		s := m[2] + "-" + seasonMonths[strings.ToLower(m[1])]
		return &s
	}

	return nil
}
