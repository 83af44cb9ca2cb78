// Package config provides configuration loading and validation for the
// workspace server and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the workspace configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or come
// from environment variables.
type Config struct {
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL URL for snapshot persistence (optional)
	StateFile   string `json:"state_file,omitempty"`   // Workspace-state JSON file to load at startup (optional)
	AccessHash  string `json:"access_hash,omitempty"`  // bcrypt hash of the shared access password (optional)
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}
	if c.StateFile != "" {
		if _, err := os.Stat(c.StateFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: state file not found: %s", c.StateFile)
		}
	}
	return nil
}

// MergeEnv fills unset fields from environment variables: DATABASE_URL,
// WORKSPACE_STATE_FILE, and WORKSPACE_ACCESS_HASH.
func (c *Config) MergeEnv() {
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.StateFile == "" {
		c.StateFile = os.Getenv("WORKSPACE_STATE_FILE")
	}
	if c.AccessHash == "" {
		c.AccessHash = os.Getenv("WORKSPACE_ACCESS_HASH")
	}
}
