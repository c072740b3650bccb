// Package types provides type definitions for structured data used throughout the careerscan system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ProfileVersion is the schema version written into new profiles.
const ProfileVersion = "1.0"

// Profile is the single accumulated career profile document.
// It is owned for writes by the reconciliation merge; everything else reads it.
type Profile struct {
	Metadata        ProfileMetadata  `json:"metadata"`
	PersonalInfo    map[string]string `json:"personal_info"`
	WorkExperience  []WorkExperience `json:"work_experience"`
	Education       []Education      `json:"education"`
	Skills          Skills           `json:"skills"`
	Projects        []Project        `json:"projects"`
	JobApplications []JobApplication `json:"job_applications"`
}

// ProfileMetadata tracks bookkeeping for the profile document.
type ProfileMetadata struct {
	Version                 string `json:"version"`
	LastUpdated             string `json:"last_updated,omitempty"` // RFC3339
	TotalDocumentsProcessed int    `json:"total_documents_processed"`
}

// WorkExperience is a single position at a company.
// ID and ExtractedDate are assigned at merge time, never by the extraction service.
type WorkExperience struct {
	ID               string   `json:"id,omitempty"`
	Company          string   `json:"company"`
	Role             string   `json:"role"`
	StartDate        string   `json:"start_date,omitempty"` // YYYY-MM or YYYY
	EndDate          string   `json:"end_date,omitempty"`
	IsCurrent        bool     `json:"is_current,omitempty"`
	Location         string   `json:"location,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	Achievements     []string `json:"achievements,omitempty"`
	Technologies     []string `json:"technologies,omitempty"`
	ExtractedDate    string   `json:"extracted_date,omitempty"`
}

// Education is a single degree or program at a school.
type Education struct {
	ID                 string   `json:"id,omitempty"`
	Degree             string   `json:"degree,omitempty"`
	FieldOfStudy       string   `json:"field_of_study,omitempty"`
	School             string   `json:"school"`
	Location           string   `json:"location,omitempty"`
	StartDate          string   `json:"start_date,omitempty"`
	EndDate            string   `json:"end_date,omitempty"`
	GPA                string   `json:"gpa,omitempty"`
	Honors             []string `json:"honors,omitempty"`
	RelevantCoursework []string `json:"relevant_coursework,omitempty"`
	ExtractedDate      string   `json:"extracted_date,omitempty"`
}

// Skills groups every skill category tracked in the profile.
type Skills struct {
	Technical      map[string][]string `json:"technical"`
	SoftSkills     []string            `json:"soft_skills"`
	Languages      []Language          `json:"languages"`
	Certifications []Certification     `json:"certifications"`
}

// Language is a spoken language with proficiency.
type Language struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency,omitempty"`
}

// Certification is a professional certification.
type Certification struct {
	Name         string `json:"name"`
	Issuer       string `json:"issuer,omitempty"`
	DateObtained string `json:"date_obtained,omitempty"`
	ExpiryDate   string `json:"expiry_date,omitempty"`
}

// Project is a personal or professional project.
type Project struct {
	ID            string   `json:"id,omitempty"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Role          string   `json:"role,omitempty"`
	StartDate     string   `json:"start_date,omitempty"`
	EndDate       string   `json:"end_date,omitempty"`
	Technologies  []string `json:"technologies,omitempty"`
	Outcomes      []string `json:"outcomes,omitempty"`
	GitHubURL     string   `json:"github_url,omitempty"`
	DemoURL       string   `json:"demo_url,omitempty"`
	ExtractedDate string   `json:"extracted_date,omitempty"`
}

// JobApplication is a tracked application to a position.
type JobApplication struct {
	ID                  string `json:"id,omitempty"`
	Company             string `json:"company"`
	Position            string `json:"position"`
	DateApplied         string `json:"date_applied,omitempty"`
	Status              string `json:"status,omitempty"`
	JobURL              string `json:"job_url,omitempty"`
	ApplicationDeadline string `json:"application_deadline,omitempty"`
	Notes               string `json:"notes,omitempty"`
	ExtractedDate       string `json:"extracted_date,omitempty"`
}

// NewEmptyProfile returns the empty profile skeleton written on first run.
func NewEmptyProfile() *Profile {
	return &Profile{
		Metadata: ProfileMetadata{
			Version: ProfileVersion,
		},
		PersonalInfo:    map[string]string{},
		WorkExperience:  []WorkExperience{},
		Education:       []Education{},
		Skills:          NewEmptySkills(),
		Projects:        []Project{},
		JobApplications: []JobApplication{},
	}
}

// NewEmptySkills returns an initialized, empty skills block.
func NewEmptySkills() Skills {
	return Skills{
		Technical:      map[string][]string{},
		SoftSkills:     []string{},
		Languages:      []Language{},
		Certifications: []Certification{},
	}
}
