package scoring

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

var (
	oddCharRe    = regexp.MustCompile(`[^\w\s.,;:!?@#$%&*()\-+=/\\'"]`)
	upperRuneRe  = regexp.MustCompile(`[A-Z]`)
	bulletLineRe = regexp.MustCompile(`^\s*([-•*·▪►➤○●])\s`)
)

// ScoreFormatting checks layout and parseability. This is what decides
// whether an ATS can even read the resume; strict platforms weigh each
// deduction by their parsing strictness.
func ScoreFormatting(input Input, strictness float64) FormattingBreakdown {
	var issues, details []string
	deductions := 0.0

	deduct := func(base float64, issue, detail string) {
		penalty := base * strictness
		deductions += penalty
		issues = append(issues, issue)
		details = append(details, fmt.Sprintf("%s (-%d)", detail, int(math.Round(penalty))))
	}

	if input.HasMultipleColumns {
		deduct(15, "multi-column layout detected",
			"multi-column layouts confuse most ATS parsers. text may be read out of order.")
	}
	if input.HasTables {
		deduct(12, "tables detected in resume",
			"tables are poorly supported by many ATS systems. content inside tables may be skipped entirely.")
	}
	if input.HasImages {
		deduct(8, "images or graphics detected",
			"ATS systems cannot read text embedded in images. logos, icons, and headshots add no value.")
	}
	if input.PageCount > 2 {
		deduct(5, fmt.Sprintf("resume is %d pages", input.PageCount),
			"most ATS systems and recruiters prefer 1-2 pages. longer resumes may be truncated.")
	}

	if input.WordCount < 150 {
		deduct(10, "resume appears very short",
			fmt.Sprintf("only %d words detected. this may indicate parsing issues or insufficient content.", input.WordCount))
	} else if input.WordCount > 1500 {
		deduct(3, "resume is quite long",
			fmt.Sprintf("%d words is above average. consider trimming to the most relevant content.", input.WordCount))
	}

	text := input.ResumeText

	// heavy special-character density usually means bad PDF extraction
	if len(text) > 0 {
		ratio := float64(len(oddCharRe.FindAllString(text, -1))) / float64(len(text))
		if ratio > 0.05 {
			deduct(8, "unusual characters detected",
				"high density of special characters suggests formatting issues or encoding problems.")
		}
	}

	lines := strings.Split(text, "\n")
	allCaps := 0
	for _, l := range lines {
		if len(strings.TrimSpace(l)) > 30 && l == strings.ToUpper(l) && upperRuneRe.MatchString(l) {
			allCaps++
		}
	}
	if allCaps > 3 {
		deduct(3, "excessive use of all-caps text",
			fmt.Sprintf("%d lines are fully uppercase. this can cause parsing confusion.", allCaps))
	}

	bulletStyles := make(map[string]bool)
	for _, l := range lines {
		if m := bulletLineRe.FindStringSubmatch(l); m != nil {
			bulletStyles[m[1]] = true
		}
	}
	if len(bulletStyles) > 2 {
		deduct(2, "inconsistent bullet point styles",
			fmt.Sprintf("%d different bullet styles detected. use a consistent format.", len(bulletStyles)))
	}

	if !input.HasMultipleColumns && !input.HasTables && !input.HasImages {
		details = append(details, "clean single-column layout detected (good)")
	}
	if input.PageCount <= 2 {
		details = append(details, "appropriate page length (good)")
	}
	if input.WordCount >= 300 && input.WordCount <= 800 {
		details = append(details, "word count is in the ideal range (good)")
	}

	score := int(math.Round(math.Max(0, math.Min(100, 100-deductions))))

	return FormattingBreakdown{Score: score, Issues: issues, Details: details}
}
