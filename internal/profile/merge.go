package profile

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/haysc/careerscan/internal/types"
)

// Overridable in tests for deterministic IDs and timestamps.
var (
	nowFunc = time.Now
	newID   = uuid.NewString
)

// Merge reconciles an extraction into a profile and returns the merged result.
// Neither input is mutated. Accepted items are assigned a generated identifier
// and an extraction timestamp; duplicates are detected per category and
// dropped. Duplicate detection favors precision over recall: a missed
// duplicate is a repeated line, a false positive silently destroys a distinct
// record with no undo.
//
// total_documents_processed increments by exactly one per call, regardless of
// how many items were added or rejected.
func Merge(existing *types.Profile, extracted *types.Extraction) *types.Profile {
	merged := clone(existing)
	if extracted == nil {
		merged.Metadata.TotalDocumentsProcessed++
		return merged
	}

	stamp := nowFunc().UTC().Format(time.RFC3339)

	for _, exp := range extracted.WorkExperience {
		if indexWorkExperience(merged.WorkExperience, exp) >= 0 {
			continue
		}
		exp.ID = newID()
		exp.ExtractedDate = stamp
		merged.WorkExperience = append(merged.WorkExperience, exp)
	}

	for _, edu := range extracted.Education {
		if indexEducation(merged.Education, edu) >= 0 {
			continue
		}
		edu.ID = newID()
		edu.ExtractedDate = stamp
		merged.Education = append(merged.Education, edu)
	}

	for _, proj := range extracted.Projects {
		if indexProject(merged.Projects, proj) >= 0 {
			continue
		}
		proj.ID = newID()
		proj.ExtractedDate = stamp
		merged.Projects = append(merged.Projects, proj)
	}

	for _, app := range extracted.JobApplications {
		if indexApplication(merged.JobApplications, app) >= 0 {
			continue
		}
		app.ID = newID()
		app.ExtractedDate = stamp
		merged.JobApplications = append(merged.JobApplications, app)
	}

	if extracted.Skills != nil {
		mergeSkills(&merged.Skills, extracted.Skills)
	}

	mergePersonalInfo(merged.PersonalInfo, extracted.PersonalInfo)

	merged.Metadata.TotalDocumentsProcessed++
	return merged
}

// indexWorkExperience returns the index of a duplicate of exp, or -1.
// Duplicate iff companies fuzzy-match, roles match exactly (case-insensitive),
// and start dates agree on year+month.
func indexWorkExperience(existing []types.WorkExperience, exp types.WorkExperience) int {
	for i, e := range existing {
		if !fuzzyMatchCompany(e.Company, exp.Company) {
			continue
		}
		if !equalFold(e.Role, exp.Role) {
			continue
		}
		if e.StartDate != "" && exp.StartDate != "" && yearMonth(e.StartDate) == yearMonth(exp.StartDate) {
			return i
		}
	}
	return -1
}

// indexEducation returns the index of a duplicate of edu, or -1.
// Duplicate iff school names match by substring either direction and degree
// fields are both empty or exactly equal (case-insensitive).
func indexEducation(existing []types.Education, edu types.Education) int {
	school := strings.ToLower(strings.TrimSpace(edu.School))
	if school == "" {
		return -1
	}
	for i, e := range existing {
		es := strings.ToLower(strings.TrimSpace(e.School))
		if es == "" || (!strings.Contains(es, school) && !strings.Contains(school, es)) {
			continue
		}
		d1 := strings.ToLower(strings.TrimSpace(e.Degree))
		d2 := strings.ToLower(strings.TrimSpace(edu.Degree))
		if d1 != "" && d2 != "" && d1 != d2 {
			continue
		}
		return i
	}
	return -1
}

// indexProject returns the index of a project with the same name
// (case-insensitive), or -1.
func indexProject(existing []types.Project, proj types.Project) int {
	for i, e := range existing {
		if equalFold(e.Name, proj.Name) {
			return i
		}
	}
	return -1
}

// indexApplication returns the index of a duplicate application, or -1.
// Duplicate iff companies fuzzy-match and positions match exactly
// (case-insensitive).
func indexApplication(existing []types.JobApplication, app types.JobApplication) int {
	for i, e := range existing {
		if fuzzyMatchCompany(e.Company, app.Company) && equalFold(e.Position, app.Position) {
			return i
		}
	}
	return -1
}

// mergeSkills merges extracted skills into dst in place.
func mergeSkills(dst *types.Skills, src *types.Skills) {
	for category, items := range src.Technical {
		dst.Technical[category] = unionFold(dst.Technical[category], items)
	}

	dst.SoftSkills = unionFold(dst.SoftSkills, src.SoftSkills)

	for _, lang := range src.Languages {
		exists := false
		for _, e := range dst.Languages {
			if equalFold(e.Language, lang.Language) {
				exists = true
				break
			}
		}
		if !exists {
			dst.Languages = append(dst.Languages, lang)
		}
	}

	for _, cert := range src.Certifications {
		exists := false
		for _, e := range dst.Certifications {
			if equalFold(e.Name, cert.Name) {
				exists = true
				break
			}
		}
		if !exists {
			dst.Certifications = append(dst.Certifications, cert)
		}
	}
}

// unionFold appends items not already present case-insensitively, preserving
// the first-seen casing. Empty items are dropped.
func unionFold(existing []string, items []string) []string {
	seen := make(map[string]struct{}, len(existing))
	for _, s := range existing {
		seen[strings.ToLower(s)] = struct{}{}
	}
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		key := strings.ToLower(item)
		if _, ok := seen[key]; ok {
			continue
		}
		existing = append(existing, item)
		seen[key] = struct{}{}
	}
	return existing
}

// mergePersonalInfo fills fields first-write-wins: an incoming non-empty value
// lands only if the existing field is empty or absent. Existing non-empty
// values are never overwritten across the whole document history.
func mergePersonalInfo(dst map[string]string, src map[string]string) {
	for key, value := range src {
		value = strings.TrimSpace(value)
		if value == "" || strings.EqualFold(value, "null") {
			continue
		}
		if dst[key] == "" {
			dst[key] = value
		}
	}
}

// clone deep-copies a profile so Merge never aliases its input.
func clone(p *types.Profile) *types.Profile {
	out := types.NewEmptyProfile()
	out.Metadata = p.Metadata

	for k, v := range p.PersonalInfo {
		out.PersonalInfo[k] = v
	}
	out.WorkExperience = append(out.WorkExperience, p.WorkExperience...)
	out.Education = append(out.Education, p.Education...)
	out.Projects = append(out.Projects, p.Projects...)
	out.JobApplications = append(out.JobApplications, p.JobApplications...)

	for category, items := range p.Skills.Technical {
		out.Skills.Technical[category] = append([]string{}, items...)
	}
	out.Skills.SoftSkills = append(out.Skills.SoftSkills, p.Skills.SoftSkills...)
	out.Skills.Languages = append(out.Skills.Languages, p.Skills.Languages...)
	out.Skills.Certifications = append(out.Skills.Certifications, p.Skills.Certifications...)

	return out
}
