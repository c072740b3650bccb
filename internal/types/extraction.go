package types

// Extraction is the transient structured output from the understanding service
// for one document. It mirrors the profile's sub-collections but carries no
// profile-owned attributes (no IDs, no extraction timestamps) and no field is
// guaranteed to be present; the service may legitimately find nothing for any
// category.
type Extraction struct {
	WorkExperience  []WorkExperience  `json:"work_experience,omitempty"`
	Education       []Education       `json:"education,omitempty"`
	Skills          *Skills           `json:"skills,omitempty"`
	Projects        []Project         `json:"projects,omitempty"`
	JobApplications []JobApplication  `json:"job_applications,omitempty"`
	PersonalInfo    map[string]string `json:"personal_info,omitempty"`
}

// ItemCounts records how many items an extraction produced per category.
// Stored in the processing ledger for audit.
type ItemCounts struct {
	WorkExperience  int `json:"work_experience"`
	Education       int `json:"education"`
	Projects        int `json:"projects"`
	JobApplications int `json:"job_applications"`
}

// Counts returns the per-category item counts for this extraction.
func (e *Extraction) Counts() ItemCounts {
	if e == nil {
		return ItemCounts{}
	}
	return ItemCounts{
		WorkExperience:  len(e.WorkExperience),
		Education:       len(e.Education),
		Projects:        len(e.Projects),
		JobApplications: len(e.JobApplications),
	}
}
