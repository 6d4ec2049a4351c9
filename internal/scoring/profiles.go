package scoring

import "strings"

// Weights splits the overall score across six dimensions. Each
// profile's weights sum to 1.0.
type Weights struct {
	Formatting          float64 `json:"formatting"`
	KeywordMatch        float64 `json:"keywordMatch"`
	SectionCompleteness float64 `json:"sectionCompleteness"`
	ExperienceRelevance float64 `json:"experienceRelevance"`
	EducationMatch      float64 `json:"educationMatch"`
	Quantification      float64 `json:"quantification"`
}

// Profile encodes one ATS platform's documented scoring behavior.
// Profiles are static configuration, built once and never mutated.
type Profile struct {
	Name                 string          `json:"name"`
	Vendor               string          `json:"vendor"`
	MarketShare          string          `json:"marketShare"`
	Description          string          `json:"description"`
	ParsingStrictness    float64         `json:"parsingStrictness"`
	KeywordStrategy      KeywordStrategy `json:"keywordStrategy"`
	Weights              Weights         `json:"weights"`
	RequiredSections     []string        `json:"requiredSections"`
	PreferredDateFormats []string        `json:"preferredDateFormats"`
	Quirks               []Quirk         `json:"-"`
	PassingScore         int             `json:"passingScore"`
}

// Workday Recruiting. The most widely used ATS among Fortune 500
// companies. Very strict parser, exact keyword matching against
// requisition fields, rigid section expectations.
var workdayProfile = Profile{
	Name:              "Workday",
	Vendor:            "Workday, Inc.",
	MarketShare:       "~40% of Fortune 500",
	Description:       "strict parser, exact keyword matching, demands clean formatting",
	ParsingStrictness: 0.9,
	KeywordStrategy:   StrategyExact,
	Weights: Weights{
		Formatting:          0.25,
		KeywordMatch:        0.30,
		SectionCompleteness: 0.15,
		ExperienceRelevance: 0.15,
		EducationMatch:      0.10,
		Quantification:      0.05,
	},
	RequiredSections:     []string{"contact", "experience", "education", "skills"},
	PreferredDateFormats: []string{"MM/YYYY", "Month YYYY"},
	Quirks: []Quirk{
		{
			ID:          "workday-header-format",
			Kind:        QuirkUnknownSections,
			Description: "Workday expects standard section header names",
			Threshold:   2,
			Penalty:     5,
			Message:     `multiple unrecognized section headers. Workday expects standard names like "Experience", "Education", "Skills".`,
		},
		{
			ID:          "workday-page-limit",
			Kind:        QuirkPageLimit,
			Description: "Workday may truncate resumes beyond 2 pages",
			Threshold:   2,
			Penalty:     8,
			Message:     "resume is %d pages. Workday may truncate content beyond page 2.",
		},
	},
	PassingScore: 70,
}

// Oracle Taleo. One of the oldest ATS platforms, heavy in enterprise
// and government. Boolean keyword filtering is the primary mechanism
// and the parser predates modern resume formats.
var taleoProfile = Profile{
	Name:              "Taleo",
	Vendor:            "Oracle Corporation",
	MarketShare:       "~25% of Fortune 500",
	Description:       "boolean keyword filtering, knockout questions, rigid parsing",
	ParsingStrictness: 0.85,
	KeywordStrategy:   StrategyExact,
	Weights: Weights{
		Formatting:          0.20,
		KeywordMatch:        0.35,
		SectionCompleteness: 0.15,
		ExperienceRelevance: 0.15,
		EducationMatch:      0.10,
		Quantification:      0.05,
	},
	RequiredSections:     []string{"contact", "experience", "education", "skills"},
	PreferredDateFormats: []string{"MM/YYYY", "Month YYYY"},
	Quirks: []Quirk{
		{
			ID:          "taleo-keyword-density",
			Kind:        QuirkSkillFloor,
			Description: "Taleo uses boolean keyword matching with AND/OR logic",
			Threshold:   5,
			Penalty:     10,
			Message:     "very few skills detected. Taleo relies heavily on keyword matching. ensure your resume lists relevant skills explicitly.",
		},
		{
			ID:          "taleo-section-headers",
			Kind:        QuirkMissingStandardSections,
			Description: "Taleo expects very standard section headers",
			Threshold:   1,
			Penalty:     8,
			Message:     "missing standard sections: %s. Taleo requires clearly labeled sections.",
		},
	},
	PassingScore: 65,
}

// SAP SuccessFactors. Enterprise HCM with rigid field mapping; resume
// content must translate cleanly into structured records.
var successFactorsProfile = Profile{
	Name:              "SuccessFactors",
	Vendor:            "SAP SE",
	MarketShare:       "~15% of large enterprise",
	Description:       "enterprise structured parsing, rigid field mapping, exact matching",
	ParsingStrictness: 0.85,
	KeywordStrategy:   StrategyExact,
	Weights: Weights{
		Formatting:          0.25,
		KeywordMatch:        0.25,
		SectionCompleteness: 0.20,
		ExperienceRelevance: 0.15,
		EducationMatch:      0.10,
		Quantification:      0.05,
	},
	RequiredSections:     []string{"contact", "experience", "education", "skills"},
	PreferredDateFormats: []string{"MM/YYYY", "DD/MM/YYYY"},
	Quirks: []Quirk{
		{
			ID:          "sf-structured-data",
			Kind:        QuirkStructuredData,
			Description: "SuccessFactors maps resume fields to structured SAP data",
			Penalty:     10,
			Message:     "no dates detected. SuccessFactors requires structured date fields for each position.",
			AltPenalty:  8,
			AltMessage:  "no clear experience entries detected. SuccessFactors needs structured employer/title/date fields.",
		},
		{
			ID:          "sf-section-structure",
			Kind:        QuirkMissingSectionsEach,
			Description: "SuccessFactors requires all standard sections",
			Penalty:     5,
			Message:     "missing sections: %s. SuccessFactors requires structured sections for field mapping.",
		},
	},
	PassingScore: 65,
}

// iCIMS Talent Cloud. More tolerant than the enterprise incumbents,
// with AI-assisted fuzzy matching and a skills taxonomy.
var icimsProfile = Profile{
	Name:              "iCIMS",
	Vendor:            "iCIMS, Inc.",
	MarketShare:       "~15% of Fortune 500",
	Description:       "AI-assisted matching, fuzzy keywords, more format-tolerant",
	ParsingStrictness: 0.6,
	KeywordStrategy:   StrategyFuzzy,
	Weights: Weights{
		Formatting:          0.15,
		KeywordMatch:        0.30,
		SectionCompleteness: 0.15,
		ExperienceRelevance: 0.20,
		EducationMatch:      0.10,
		Quantification:      0.10,
	},
	RequiredSections:     []string{"contact", "experience", "education"},
	PreferredDateFormats: []string{"Month YYYY", "MM/YYYY", "YYYY"},
	Quirks: []Quirk{
		{
			ID:          "icims-skills-taxonomy",
			Kind:        QuirkSkillBonus,
			Description: "iCIMS uses a skills taxonomy for broader matching",
			Threshold:   10,
			Penalty:     -5,
			Message:     "comprehensive skills list detected. iCIMS skill taxonomy matching benefits from detailed skill listings.",
		},
	},
	PassingScore: 60,
}

// Greenhouse. Popular with tech companies; lenient parsing, structured
// scorecards, and a preference for measurable impact over keyword
// density.
var greenhouseProfile = Profile{
	Name:              "Greenhouse",
	Vendor:            "Greenhouse Software",
	MarketShare:       "top tech companies and startups",
	Description:       "structured scorecards, semantic matching, lenient formatting",
	ParsingStrictness: 0.4,
	KeywordStrategy:   StrategySemantic,
	Weights: Weights{
		Formatting:          0.10,
		KeywordMatch:        0.25,
		SectionCompleteness: 0.10,
		ExperienceRelevance: 0.25,
		EducationMatch:      0.10,
		Quantification:      0.20,
	},
	RequiredSections:     []string{"experience", "education"},
	PreferredDateFormats: []string{"Month YYYY", "MM/YYYY", "YYYY"},
	Quirks: []Quirk{
		{
			ID:          "greenhouse-quantification",
			Kind:        QuirkQuantificationBonus,
			Description: "Greenhouse structured scorecards reward measurable impact",
			Ratio:       0.4,
			Penalty:     -8,
			Message:     "strong quantification in experience bullets. Greenhouse scorecards reward measurable impact.",
		},
		{
			ID:          "greenhouse-projects",
			Kind:        QuirkSectionBonus,
			Description: "Greenhouse values project work for technical roles",
			Section:     "projects",
			Penalty:     -3,
			Message:     "projects section detected. Greenhouse hiring managers value seeing project work.",
		},
	},
	PassingScore: 55,
}

// Lever. ATS/CRM hybrid and the most lenient of the majors; contextual
// matching rewards narrative quality over structure.
var leverProfile = Profile{
	Name:              "Lever",
	Vendor:            "Lever (Employ Inc.)",
	MarketShare:       "popular with startups and mid-market tech",
	Description:       "contextual matching, lenient parsing, values narrative quality",
	ParsingStrictness: 0.35,
	KeywordStrategy:   StrategySemantic,
	Weights: Weights{
		Formatting:          0.08,
		KeywordMatch:        0.22,
		SectionCompleteness: 0.10,
		ExperienceRelevance: 0.30,
		EducationMatch:      0.10,
		Quantification:      0.20,
	},
	RequiredSections:     []string{"experience"},
	PreferredDateFormats: []string{"Month YYYY", "YYYY"},
	Quirks: []Quirk{
		{
			ID:          "lever-narrative",
			Kind:        QuirkBulletLength,
			Description: "Lever values well-written experience descriptions",
			MinLen:      60,
			MaxLen:      150,
			Penalty:     -5,
			Message:     "well-detailed experience descriptions. Lever contextual matching works best with descriptive bullets.",
		},
		{
			ID:          "lever-summary",
			Kind:        QuirkSectionBonus,
			Description: "Lever benefits from a professional summary",
			Section:     "summary",
			Penalty:     -3,
			Message:     "professional summary detected. Lever CRM uses this for candidate context.",
		},
	},
	PassingScore: 50,
}

// AllProfiles lists every platform profile, ordered by market share
// and strictness.
func AllProfiles() []Profile {
	return []Profile{
		workdayProfile,
		taleoProfile,
		successFactorsProfile,
		icimsProfile,
		greenhouseProfile,
		leverProfile,
	}
}

// ProfileByName looks up a profile case-insensitively.
func ProfileByName(name string) (Profile, bool) {
	for _, p := range AllProfiles() {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Profile{}, false
}
