// Package types provides type definitions for structured data used throughout the bewerberprofil system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CandidateProfile represents a structured candidate record matching the
// German staffing-agency template. Header fields (JobTitle, EKP, HourlyRate,
// StartDate) are placeholders the renderer fills with defaults when empty.
type CandidateProfile struct {
	// Header metadata
	JobTitle   string `json:"job_title"`
	EKP        string `json:"einkaufskurzprofil"`
	HourlyRate string `json:"stundenverrechnungssatz"`
	StartDate  string `json:"starttermin"`

	// Identity fields (may be empty)
	Name  string `json:"name"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`

	// Structured sections, source order preserved
	WorkExperience []ExperienceEntry `json:"berufserfahrung"`
	Education      []EducationEntry  `json:"ausbildung"`

	// Skill sets, vocabulary order preserved, no duplicates
	ITSkills        []string `json:"edv_kenntnisse"`
	TechnicalSkills []string `json:"sonstige_techniken"`
	LanguageSkills  []string `json:"sprachkenntnisse"`

	Summary string `json:"summary"`
	Remarks string `json:"zusaetzliche_bemerkungen"`
}

// ExperienceEntry represents a single work experience section
type ExperienceEntry struct {
	Period      string `json:"period"`
	Company     string `json:"company"`
	Description string `json:"description"`
}

// EducationEntry represents a single education section.
// Institution is not populated by the base extractor; callers must not
// assume it is filled.
type EducationEntry struct {
	Period      string `json:"period"`
	Institution string `json:"institution"`
	Description string `json:"description"`
}

// Entity represents a single tagged span returned by the entity recognizer
type Entity struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// Entity category tags produced by recognizer providers
const (
	CategoryPerson       = "PER"
	CategoryOrganization = "ORG"
	CategoryLocation     = "LOC"
	CategoryMisc         = "MISC"
)

// EmptyProfile returns the empty-template profile produced for blank input.
// The hourly-rate placeholder keeps the fixed currency symbol from the
// template convention.
func EmptyProfile() *CandidateProfile {
	return &CandidateProfile{
		HourlyRate:      "€",
		WorkExperience:  []ExperienceEntry{},
		Education:       []EducationEntry{},
		ITSkills:        []string{},
		TechnicalSkills: []string{},
		LanguageSkills:  []string{},
	}
}

// IsEmpty reports whether the profile carries no extracted content
func (p *CandidateProfile) IsEmpty() bool {
	return p.Name == "" && p.Email == "" && p.Phone == "" &&
		len(p.WorkExperience) == 0 && len(p.Education) == 0 &&
		len(p.ITSkills) == 0 && len(p.TechnicalSkills) == 0 &&
		len(p.LanguageSkills) == 0 && p.Summary == ""
}
