package scoring

import (
	"fmt"
	"math"
	"strings"
)

// Score runs a resume through every platform profile. Deterministic:
// the same input always produces the same results in the same order.
func Score(input Input) []Result {
	profiles := AllProfiles()
	results := make([]Result, 0, len(profiles))
	for _, p := range profiles {
		results = append(results, ScoreAgainstProfile(input, p))
	}
	return results
}

// ScoreAgainstProfile scores a resume for one platform: five dimension
// scores weighted per the profile, plus signed quirk adjustments,
// clamped to 0-100.
func ScoreAgainstProfile(input Input, profile Profile) Result {
	breakdown := computeBreakdown(input, profile)
	weighted := computeWeightedScore(breakdown, profile)

	adjustment, quirkMessages := computeQuirkAdjustment(input, profile)
	overall := int(math.Round(weighted + adjustment))
	if overall < 0 {
		overall = 0
	}
	if overall > 100 {
		overall = 100
	}

	return Result{
		System:       profile.Name,
		Vendor:       profile.Vendor,
		OverallScore: overall,
		PassesFilter: overall >= profile.PassingScore,
		Breakdown:    breakdown,
		Suggestions:  generateSuggestions(breakdown, profile, quirkMessages),
	}
}

func computeBreakdown(input Input, profile Profile) Breakdown {
	return Breakdown{
		Formatting:   ScoreFormatting(input, profile.ParsingStrictness),
		KeywordMatch: MatchKeywords(input.ResumeText, input.JobDescription, profile.KeywordStrategy),
		Sections:     ScoreSections(input.ResumeSections, profile.RequiredSections),
		Experience:   ScoreExperience(input.ExperienceBullets),
		Education:    ScoreEducation(input.EducationText),
	}
}

func computeWeightedScore(breakdown Breakdown, profile Profile) float64 {
	w := profile.Weights

	// quantification rides on the experience scorer's ratio
	quantificationScore := 0.0
	if breakdown.Experience.TotalBullets > 0 {
		quantificationScore = math.Round(
			float64(breakdown.Experience.QuantifiedBullets) / float64(breakdown.Experience.TotalBullets) * 100)
	}

	return float64(breakdown.Formatting.Score)*w.Formatting +
		float64(breakdown.KeywordMatch.Score)*w.KeywordMatch +
		float64(breakdown.Sections.Score)*w.SectionCompleteness +
		float64(breakdown.Experience.Score)*w.ExperienceRelevance +
		float64(breakdown.Education.Score)*w.EducationMatch +
		quantificationScore*w.Quantification
}

// computeQuirkAdjustment sums signed quirk results. A positive quirk
// penalty subtracts from the total, so a negative penalty is a bonus.
func computeQuirkAdjustment(input Input, profile Profile) (float64, []string) {
	total := 0.0
	var messages []string
	for _, quirk := range profile.Quirks {
		if penalty, message, fired := quirk.Evaluate(input); fired {
			total -= penalty
			messages = append(messages, message)
		}
	}
	return total, messages
}

func generateSuggestions(breakdown Breakdown, profile Profile, quirkMessages []string) []string {
	var suggestions []string

	if breakdown.Formatting.Score < 70 {
		for _, issue := range breakdown.Formatting.Issues {
			switch {
			case strings.Contains(issue, "multi-column"):
				suggestions = append(suggestions, "switch to a single-column resume layout for better ATS parsing")
			case strings.Contains(issue, "tables"):
				suggestions = append(suggestions, "remove tables and use plain text formatting instead")
			case strings.Contains(issue, "images"):
				suggestions = append(suggestions, "remove images, logos, and graphics from your resume")
			}
		}
	}

	if breakdown.KeywordMatch.Score < 60 && len(breakdown.KeywordMatch.Missing) > 0 {
		topMissing := breakdown.KeywordMatch.Missing
		if len(topMissing) > 5 {
			topMissing = topMissing[:5]
		}
		suggestions = append(suggestions,
			"add these missing keywords from the job description: "+strings.Join(topMissing, ", "))

		if profile.KeywordStrategy == StrategyExact {
			suggestions = append(suggestions,
				fmt.Sprintf("%s uses exact keyword matching. use the exact terms from the job posting, not synonyms.", profile.Name))
		}
	}

	if len(breakdown.Sections.Missing) > 0 {
		suggestions = append(suggestions,
			fmt.Sprintf("add missing sections: %s. %s requires these for proper parsing.",
				strings.Join(breakdown.Sections.Missing, ", "), profile.Name))
	}

	if breakdown.Experience.TotalBullets > 0 {
		quantRatio := float64(breakdown.Experience.QuantifiedBullets) / float64(breakdown.Experience.TotalBullets)
		if quantRatio < 0.3 {
			suggestions = append(suggestions,
				"add more quantified achievements (numbers, percentages, dollar amounts) to your experience bullets")
		}
		if float64(breakdown.Experience.ActionVerbCount)/float64(breakdown.Experience.TotalBullets) < 0.5 {
			suggestions = append(suggestions,
				"start more bullet points with strong action verbs (led, developed, increased, delivered)")
		}
	} else {
		suggestions = append(suggestions, "add detailed experience bullets with measurable achievements")
	}

	if breakdown.Education.Score < 50 {
		suggestions = append(suggestions,
			"ensure your education section includes degree type, institution, and graduation date")
	}

	suggestions = append(suggestions, quirkMessages...)

	return suggestions
}
