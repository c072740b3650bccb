// Package profile provides the durable career profile store and the
// reconciliation engine that merges newly extracted records into it.
package profile

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/haysc/careerscan/internal/storage"
	"github.com/haysc/careerscan/internal/types"
)

// Store persists the singleton profile document as JSON. Writes use a temp
// file plus atomic rename so readers never observe a partial profile.
type Store struct {
	path string
	log  *slog.Logger
}

// NewStore creates a store for the profile document at path.
func NewStore(path string, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{path: path, log: log}
}

// Path returns the canonical profile file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the current profile, or returns a fresh empty skeleton if no
// profile exists yet. A corrupt profile also degrades to the empty skeleton;
// the broken file is left on disk until the next save replaces it.
func (s *Store) Load() *types.Profile {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("profile unreadable, starting fresh", "path", s.path, "error", err)
		}
		return types.NewEmptyProfile()
	}

	var p types.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		s.log.Warn("profile corrupt, starting fresh", "path", s.path, "error", err)
		return types.NewEmptyProfile()
	}

	normalize(&p)
	return &p
}

// Save updates the profile's last_updated timestamp and writes it atomically.
func (s *Store) Save(p *types.Profile) error {
	p.Metadata.LastUpdated = time.Now().UTC().Format(time.RFC3339)
	if err := storage.WriteJSONAtomic(s.path, p); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// normalize ensures collection fields are non-nil after unmarshaling older or
// hand-edited profile files.
func normalize(p *types.Profile) {
	if p.Metadata.Version == "" {
		p.Metadata.Version = types.ProfileVersion
	}
	if p.PersonalInfo == nil {
		p.PersonalInfo = map[string]string{}
	}
	if p.WorkExperience == nil {
		p.WorkExperience = []types.WorkExperience{}
	}
	if p.Education == nil {
		p.Education = []types.Education{}
	}
	if p.Projects == nil {
		p.Projects = []types.Project{}
	}
	if p.JobApplications == nil {
		p.JobApplications = []types.JobApplication{}
	}
	if p.Skills.Technical == nil {
		p.Skills.Technical = map[string][]string{}
	}
	if p.Skills.SoftSkills == nil {
		p.Skills.SoftSkills = []string{}
	}
	if p.Skills.Languages == nil {
		p.Skills.Languages = []types.Language{}
	}
	if p.Skills.Certifications == nil {
		p.Skills.Certifications = []types.Certification{}
	}
}
