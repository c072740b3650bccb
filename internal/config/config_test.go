package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "documents", cfg.DocumentsPath)
	assert.Equal(t, []string{".pdf", ".docx", ".txt"}, cfg.SupportedExtensions)
	assert.Equal(t, int64(50), cfg.MaxFileSizeMB)
	assert.Equal(t, 2*time.Second, cfg.Debounce())
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Default().DocumentsPath, cfg.DocumentsPath)
}

func TestLoad_MissingFileIsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"documents_path": "/srv/docs",
		"max_file_size_mb": 10,
		"debounce_seconds": 0.5
	}`), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "/srv/docs", cfg.DocumentsPath)
	assert.Equal(t, int64(10), cfg.MaxFileSizeMB)
	assert.Equal(t, 500*time.Millisecond, cfg.Debounce())
	assert.Equal(t, "data", cfg.DataPath, "unset fields keep defaults")
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"documents_path": "/srv/docs"}`), 0o644))

	t.Setenv("DOCUMENTS_PATH", "/env/docs")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("CAREERSCAN_MAX_FILE_SIZE_MB", "25")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "/env/docs", cfg.DocumentsPath)
	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
	assert.Equal(t, int64(25), cfg.MaxFileSizeMB)
}

func TestLoad_InvalidEnvNumbersIgnored(t *testing.T) {
	t.Setenv("CAREERSCAN_MAX_FILE_SIZE_MB", "not-a-number")
	t.Setenv("CAREERSCAN_DEBOUNCE_SECONDS", "-3")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, int64(50), cfg.MaxFileSizeMB)
	assert.Equal(t, float64(2), cfg.DebounceSeconds)
}

func TestValidate_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty documents path", func(c *Config) { c.DocumentsPath = "" }},
		{"no extensions", func(c *Config) { c.SupportedExtensions = nil }},
		{"extension without dot", func(c *Config) { c.SupportedExtensions = []string{"pdf"} }},
		{"zero size ceiling", func(c *Config) { c.MaxFileSizeMB = 0 }},
		{"zero debounce", func(c *Config) { c.DebounceSeconds = 0 }},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestRequireCredentials(t *testing.T) {
	cfg := Default()
	assert.Error(t, cfg.RequireCredentials())

	cfg.GeminiAPIKey = "key"
	assert.NoError(t, cfg.RequireCredentials())
}

func TestDataPaths(t *testing.T) {
	cfg := Default()
	cfg.DataPath = "/var/lib/careerscan"

	assert.Equal(t, filepath.Join("/var/lib/careerscan", "profile.json"), cfg.ProfilePath())
	assert.Equal(t, filepath.Join("/var/lib/careerscan", "documents_processed.json"), cfg.LedgerPath())
	assert.Equal(t, int64(50*1024*1024), cfg.MaxFileSizeBytes())
}
