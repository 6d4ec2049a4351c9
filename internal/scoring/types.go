// Package scoring simulates how six applicant tracking systems would
// score a resume. Each platform profile applies its own weights,
// parsing strictness, keyword strategy, and quirk rules over the same
// extracted signals, producing a deterministic 0-100 score.
package scoring

// Input carries the extracted resume signals every scorer reads from.
type Input struct {
	ResumeText         string   `json:"resumeText"`
	ResumeSkills       []string `json:"resumeSkills"`
	ResumeSections     []string `json:"resumeSections"`
	ExperienceBullets  []string `json:"experienceBullets"`
	EducationText      string   `json:"educationText"`
	HasMultipleColumns bool     `json:"hasMultipleColumns"`
	HasTables          bool     `json:"hasTables"`
	HasImages          bool     `json:"hasImages"`
	PageCount          int      `json:"pageCount"`
	WordCount          int      `json:"wordCount"`
	JobDescription     string   `json:"jobDescription,omitempty"`
}

// FormattingBreakdown reports layout and parseability findings.
type FormattingBreakdown struct {
	Score   int      `json:"score"`
	Issues  []string `json:"issues"`
	Details []string `json:"details"`
}

// KeywordBreakdown reports how the resume matched the job description.
type KeywordBreakdown struct {
	Score          int      `json:"score"`
	Matched        []string `json:"matched"`
	Missing        []string `json:"missing"`
	SynonymMatched []string `json:"synonymMatched"`
}

// SectionBreakdown reports required-section coverage.
type SectionBreakdown struct {
	Score   int      `json:"score"`
	Present []string `json:"present"`
	Missing []string `json:"missing"`
}

// ExperienceBreakdown reports bullet quality signals.
type ExperienceBreakdown struct {
	Score             int      `json:"score"`
	QuantifiedBullets int      `json:"quantifiedBullets"`
	TotalBullets      int      `json:"totalBullets"`
	ActionVerbCount   int      `json:"actionVerbCount"`
	Highlights        []string `json:"highlights"`
}

// EducationBreakdown reports education completeness findings.
type EducationBreakdown struct {
	Score int      `json:"score"`
	Notes []string `json:"notes"`
}

// Breakdown groups the five dimension scores behind an overall result.
type Breakdown struct {
	Formatting   FormattingBreakdown `json:"formatting"`
	KeywordMatch KeywordBreakdown    `json:"keywordMatch"`
	Sections     SectionBreakdown    `json:"sections"`
	Experience   ExperienceBreakdown `json:"experience"`
	Education    EducationBreakdown  `json:"education"`
}

// Result is one platform's verdict on a resume.
type Result struct {
	System       string    `json:"system"`
	Vendor       string    `json:"vendor"`
	OverallScore int       `json:"overallScore"`
	PassesFilter bool      `json:"passesFilter"`
	Breakdown    Breakdown `json:"breakdown"`
	Suggestions  []string  `json:"suggestions"`
}
