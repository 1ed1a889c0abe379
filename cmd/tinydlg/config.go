package main

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// LogConfig represents logging configuration
type LogConfig struct {
	MaxSizeMB  int  `json:"max_size_mb,omitempty"`  // Max log file size in MB before rotation (default: 10)
	MaxBackups int  `json:"max_backups,omitempty"`  // Max number of old log files to keep (default: 7)
	MaxAgeDays int  `json:"max_age_days,omitempty"` // Max days to retain old log files (default: 7)
	Compress   bool `json:"compress,omitempty"`     // Compress rotated log files
	ToStderr   bool `json:"to_stderr,omitempty"`    // Also write logs to stderr
}

// DefaultLogConfig returns the default logging configuration
func DefaultLogConfig() LogConfig {
	return LogConfig{
		MaxSizeMB:  10,
		MaxBackups: 7,
		MaxAgeDays: 7,
		Compress:   true,
	}
}

// FilterPreset is a named file-dialog filter usable via -filter-preset.
type FilterPreset struct {
	Patterns    []string `json:"patterns"`
	Description string   `json:"description,omitempty"`
}

// Config represents the tinydlg configuration
type Config struct {
	FilterPresets map[string]FilterPreset `json:"filter_presets,omitempty"`
	Logging       *LogConfig              `json:"logging,omitempty"`
}

// GetLogConfig returns the logging config with defaults applied
func (c *Config) GetLogConfig() LogConfig {
	if c == nil || c.Logging == nil {
		return DefaultLogConfig()
	}

	cfg := DefaultLogConfig()
	if c.Logging.MaxSizeMB > 0 {
		cfg.MaxSizeMB = c.Logging.MaxSizeMB
	}
	if c.Logging.MaxBackups > 0 {
		cfg.MaxBackups = c.Logging.MaxBackups
	}
	if c.Logging.MaxAgeDays > 0 {
		cfg.MaxAgeDays = c.Logging.MaxAgeDays
	}
	cfg.Compress = c.Logging.Compress
	cfg.ToStderr = c.Logging.ToStderr
	return cfg
}

// ConfigDir returns the configuration directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "tinydlg")
}

// DefaultConfigPath returns the default configuration file path
func DefaultConfigPath() string {
	return filepath.Join(ConfigDir(), "tinydlg.json")
}

// LoadConfig loads configuration from the specified path
// If path is empty, uses the default path
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SaveConfig saves configuration to the specified path
// If path is empty, uses the default path
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		path = DefaultConfigPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
