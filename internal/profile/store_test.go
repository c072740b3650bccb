package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haysc/careerscan/internal/types"
)

func TestStore_LoadMissingReturnsEmptyProfile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "profile.json"), nil)

	p := store.Load()

	require.NotNil(t, p)
	assert.Equal(t, types.ProfileVersion, p.Metadata.Version)
	assert.Equal(t, 0, p.Metadata.TotalDocumentsProcessed)
	assert.NotNil(t, p.PersonalInfo)
	assert.NotNil(t, p.Skills.Technical)
}

func TestStore_LoadCorruptDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	p := NewStore(path, nil).Load()

	require.NotNil(t, p)
	assert.Equal(t, 0, p.Metadata.TotalDocumentsProcessed)
}

func TestStore_SaveThenLoadRoundTrips(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "profile.json"), nil)

	p := types.NewEmptyProfile()
	p.PersonalInfo["name"] = "Ada Lovelace"
	p.WorkExperience = []types.WorkExperience{
		{ID: "w1", Company: "Acme", Role: "Engineer", StartDate: "2020-01"},
	}
	p.Skills.Technical["programming_languages"] = []string{"Go", "Python"}
	p.Metadata.TotalDocumentsProcessed = 3

	require.NoError(t, store.Save(p))
	assert.NotEmpty(t, p.Metadata.LastUpdated, "save stamps last_updated")

	got := store.Load()
	assert.Equal(t, p.PersonalInfo, got.PersonalInfo)
	assert.Equal(t, p.WorkExperience, got.WorkExperience)
	assert.Equal(t, p.Skills.Technical, got.Skills.Technical)
	assert.Equal(t, 3, got.Metadata.TotalDocumentsProcessed)
	assert.Equal(t, p.Metadata.LastUpdated, got.Metadata.LastUpdated)
}

func TestStore_LoadNormalizesMissingCollections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"personal_info":{"name":"Ada"}}`), 0o644))

	p := NewStore(path, nil).Load()

	assert.Equal(t, "Ada", p.PersonalInfo["name"])
	assert.Equal(t, types.ProfileVersion, p.Metadata.Version)
	assert.NotNil(t, p.WorkExperience)
	assert.NotNil(t, p.Education)
	assert.NotNil(t, p.Projects)
	assert.NotNil(t, p.JobApplications)
	assert.NotNil(t, p.Skills.Technical)
	assert.NotNil(t, p.Skills.SoftSkills)
	assert.NotNil(t, p.Skills.Languages)
	assert.NotNil(t, p.Skills.Certifications)
}

func TestStore_SaveReplacesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o644))

	store := NewStore(path, nil)
	require.NoError(t, store.Save(types.NewEmptyProfile()))

	p := store.Load()
	assert.Equal(t, types.ProfileVersion, p.Metadata.Version)
}
