// Package resume turns extracted document text into a structured resume
// model: detected sections, contact details, and typed experience,
// education, project, and certification entries.
package resume

// SectionType is the canonical classification of a resume section.
type SectionType string

const (
	SectionContact        SectionType = "contact"
	SectionSummary        SectionType = "summary"
	SectionExperience     SectionType = "experience"
	SectionEducation      SectionType = "education"
	SectionSkills         SectionType = "skills"
	SectionProjects       SectionType = "projects"
	SectionCertifications SectionType = "certifications"
	SectionAwards         SectionType = "awards"
	SectionPublications   SectionType = "publications"
	SectionVolunteer      SectionType = "volunteer"
	SectionLanguages      SectionType = "languages"
	SectionInterests      SectionType = "interests"
	SectionUnknown        SectionType = "unknown"
)

// Section is a contiguous region of the resume under one header.
type Section struct {
	Type      SectionType `json:"type"`
	Header    string      `json:"header"`
	Content   string      `json:"content"`
	StartLine int         `json:"startLine"`
	EndLine   int         `json:"endLine"`
}

// ContactInfo holds whatever contact details could be located near the
// top of the document. Empty string means not found.
type ContactInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
	Location string `json:"location,omitempty"`
}

// DateRange is a normalized employment or education period. Start and
// End use "YYYY" or "YYYY-MM" form; End is nil for open-ended ranges.
type DateRange struct {
	Start     *string `json:"start"`
	End       *string `json:"end"`
	IsCurrent bool    `json:"isCurrent"`
}

// ExperienceEntry is one job within an experience section.
type ExperienceEntry struct {
	Title   string    `json:"title"`
	Company string    `json:"company"`
	Dates   DateRange `json:"dates"`
	Bullets []string  `json:"bullets"`
	RawText string    `json:"rawText"`
}

// EducationEntry is one degree or program within an education section.
type EducationEntry struct {
	Degree      string    `json:"degree"`
	Field       string    `json:"field"`
	Institution string    `json:"institution"`
	Dates       DateRange `json:"dates"`
	GPA         string    `json:"gpa,omitempty"`
	Honors      []string  `json:"honors"`
	RawText     string    `json:"rawText"`
}

// ProjectEntry is one project within a projects section.
type ProjectEntry struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Bullets      []string `json:"bullets"`
	URL          string   `json:"url,omitempty"`
	RawText      string   `json:"rawText"`
}

// CertificationEntry is one certification or license line.
type CertificationEntry struct {
	Name    string `json:"name"`
	Issuer  string `json:"issuer"`
	Date    string `json:"date,omitempty"`
	RawText string `json:"rawText"`
}

// Metadata carries document-level facts used by formatting checks.
type Metadata struct {
	FileType           string `json:"fileType"`
	PageCount          int    `json:"pageCount"`
	WordCount          int    `json:"wordCount"`
	LineCount          int    `json:"lineCount"`
	HasMultipleColumns bool   `json:"hasMultipleColumns"`
	HasTables          bool   `json:"hasTables"`
	HasImages          bool   `json:"hasImages"`
}

// ParsedResume is the full structured view of one resume.
type ParsedResume struct {
	RawText        string               `json:"rawText"`
	Lines          []string             `json:"lines"`
	Contact        ContactInfo          `json:"contact"`
	Sections       []Section            `json:"sections"`
	Experience     []ExperienceEntry    `json:"experience"`
	Education      []EducationEntry     `json:"education"`
	Projects       []ProjectEntry       `json:"projects"`
	Certifications []CertificationEntry `json:"certifications"`
	Skills         []string             `json:"skills"`
	Summary        string               `json:"summary,omitempty"`
	Metadata       Metadata             `json:"metadata"`
}

// ParseResult wraps a parse attempt with any warnings produced along
// the way. Resume is nil when Success is false.
type ParseResult struct {
	Success  bool          `json:"success"`
	Resume   *ParsedResume `json:"resume"`
	Errors   []string      `json:"errors"`
	Warnings []string      `json:"warnings"`
}

// SectionsOfType filters sections by canonical type.
func SectionsOfType(sections []Section, t SectionType) []Section {
	var out []Section
	for _, s := range sections {
		if s.Type == t {
			out = append(out, s)
		}
	}
	return out
}

// HasSection reports whether any section of the given type is present.
func HasSection(sections []Section, t SectionType) bool {
	for _, s := range sections {
		if s.Type == t {
			return true
		}
	}
	return false
}
