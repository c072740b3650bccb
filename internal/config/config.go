// Package config provides configuration loading and validation for careerscan.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config is the full runtime configuration. Values come from a JSON config
// file, environment variables, or defaults, with the environment taking
// precedence over the file.
type Config struct {
	// Paths
	DocumentsPath string `json:"documents_path" validate:"required"`
	DataPath      string `json:"data_path" validate:"required"`

	// File processing
	SupportedExtensions []string `json:"supported_extensions" validate:"required,min=1,dive,startswith=."`
	MaxFileSizeMB       int64    `json:"max_file_size_mb" validate:"gt=0"`
	DebounceSeconds     float64  `json:"debounce_seconds" validate:"gt=0"`

	// Extraction service
	GeminiAPIKey string `json:"-"` // env only, never persisted
	Model        string `json:"model,omitempty"`

	// HTTP API (serve command)
	ListenAddr string `json:"listen_addr,omitempty"`

	// Logging
	LogLevel  string `json:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	LogFormat string `json:"log_format,omitempty" validate:"omitempty,oneof=text json"`
}

// Default returns the configuration defaults.
func Default() Config {
	return Config{
		DocumentsPath:       "documents",
		DataPath:            "data",
		SupportedExtensions: []string{".pdf", ".docx", ".txt"},
		MaxFileSizeMB:       50,
		DebounceSeconds:     2,
		ListenAddr:          ":8080",
		LogLevel:            "info",
		LogFormat:           "text",
	}
}

// Load builds the effective configuration: defaults, then the optional JSON
// config file at path, then environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	cfg.applyEnv()
	return &cfg, nil
}

// applyEnv overlays environment variables onto the configuration.
func (c *Config) applyEnv() {
	if v := os.Getenv("DOCUMENTS_PATH"); v != "" {
		c.DocumentsPath = v
	}
	if v := os.Getenv("DATA_PATH"); v != "" {
		c.DataPath = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.GeminiAPIKey = v
	}
	if v := os.Getenv("CAREERSCAN_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("CAREERSCAN_LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	if v := os.Getenv("CAREERSCAN_MAX_FILE_SIZE_MB"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			c.MaxFileSizeMB = n
		}
	}
	if v := os.Getenv("CAREERSCAN_DEBOUNCE_SECONDS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			c.DebounceSeconds = f
		}
	}
}

// Validate checks structural constraints. Service credentials are checked
// separately by RequireCredentials so read-only commands can run without them.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// RequireCredentials fails when the extraction service credentials are
// absent. Missing credentials are fatal at startup, before watching begins.
func (c *Config) RequireCredentials() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is not set; add it to the environment or a .env file")
	}
	return nil
}

// ProfilePath returns the profile document path under the data directory.
func (c *Config) ProfilePath() string {
	return filepath.Join(c.DataPath, "profile.json")
}

// LedgerPath returns the processing ledger path under the data directory.
func (c *Config) LedgerPath() string {
	return filepath.Join(c.DataPath, "documents_processed.json")
}

// MaxFileSizeBytes returns the size ceiling in bytes.
func (c *Config) MaxFileSizeBytes() int64 {
	return c.MaxFileSizeMB * 1024 * 1024
}

// Debounce returns the debounce window as a duration.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.DebounceSeconds * float64(time.Second))
}
