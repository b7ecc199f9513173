// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// CurrentVersion is the config schema version written by Save.
const CurrentVersion = "1"

// Config represents the complete idleguard configuration.
type Config struct {
	Version string `toml:"version"`

	Storage StorageConfig `toml:"storage"`
	Audit   AuditConfig   `toml:"audit"`
	UI      UIConfig      `toml:"ui"`
}

// StorageConfig locates on-disk state.
type StorageConfig struct {
	// DataDir holds the session database and audit log.
	DataDir string `toml:"data_dir" env:"IDLEGUARD_DATA_DIR"`
	// SessionDB is the session database file name, relative to DataDir
	// unless absolute.
	SessionDB string `toml:"session_db" env:"IDLEGUARD_SESSION_DB"`
}

// AuditConfig controls the session audit trail (AU-3).
type AuditConfig struct {
	Enabled bool `toml:"enabled" env:"IDLEGUARD_AUDIT"`
	// LogFile is relative to DataDir unless absolute.
	LogFile string `toml:"log_file" env:"IDLEGUARD_AUDIT_LOG"`
}

// UIConfig contains terminal UI settings.
type UIConfig struct {
	// NoColor disables colour output.
	NoColor bool `toml:"no_color" env:"IDLEGUARD_NO_COLOR"`
	// Mouse enables mouse reporting so pointer motion counts as activity.
	Mouse bool `toml:"mouse" env:"IDLEGUARD_MOUSE"`
	// AltScreen runs the TUI in the alternate screen buffer.
	AltScreen bool `toml:"alt_screen"`
}

// Default returns the built-in configuration.
func Default() *Config {
	dir, err := ConfigDir()
	if err != nil {
		dir = ".idleguard"
	}
	return &Config{
		Version: CurrentVersion,
		Storage: StorageConfig{
			DataDir:   dir,
			SessionDB: "session.db",
		},
		Audit: AuditConfig{
			Enabled: true,
			LogFile: "audit.log",
		},
		UI: UIConfig{
			Mouse:     true,
			AltScreen: true,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the idleguard configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".idleguard"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// SessionDBPath returns the resolved session database path.
func (c *Config) SessionDBPath() string {
	return c.resolve(c.Storage.SessionDB)
}

// AuditLogPath returns the resolved audit log path.
func (c *Config) AuditLogPath() string {
	return c.resolve(c.Audit.LogFile)
}

func (c *Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Storage.DataDir, name)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load reads the default config file if it exists, applies environment
// overrides, and validates the result.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		cfg := Default()
		if err := finish(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if _, statErr := os.Stat(path); statErr != nil {
		cfg := Default()
		if err := finish(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from a specific TOML file.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode TOML file %s: %w", path, err)
	}
	if err := finish(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// finish applies env overrides, fills blanks and validates.
func finish(cfg *Config) error {
	if err := cfg.ApplyEnvOverrides(); err != nil {
		return err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ApplyEnvOverrides overrides fields from IDLEGUARD_* environment variables.
// Unset variables leave the current value alone.
func (c *Config) ApplyEnvOverrides() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// SetDefaults fills empty fields with built-in values.
func (c *Config) SetDefaults() {
	defaults := Default()
	if c.Version == "" {
		c.Version = defaults.Version
	}
	if c.Storage.DataDir == "" {
		c.Storage.DataDir = defaults.Storage.DataDir
	}
	if c.Storage.SessionDB == "" {
		c.Storage.SessionDB = defaults.Storage.SessionDB
	}
	if c.Audit.LogFile == "" {
		c.Audit.LogFile = defaults.Audit.LogFile
	}
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save writes cfg to the default config path.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes cfg as TOML to path with 0600 permissions.
func SaveTOML(cfg *Config, path string) error {
	var b strings.Builder
	b.WriteString("# idleguard configuration file\n")
	b.WriteString("# The idle limit is fixed at 15 minutes and is not configurable.\n\n")
	if err := toml.NewEncoder(&b).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := writeFileAtomic(path, []byte(b.String()), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if c.Version != CurrentVersion {
		errs = append(errs, ValidationError{
			Field:   "version",
			Message: fmt.Sprintf("unsupported version %q, expected %q", c.Version, CurrentVersion),
		})
	}
	if strings.TrimSpace(c.Storage.DataDir) == "" {
		errs = append(errs, ValidationError{Field: "storage.data_dir", Message: "must not be empty"})
	}
	if strings.ContainsAny(c.Storage.SessionDB, "\x00") || strings.HasSuffix(c.Storage.SessionDB, string(filepath.Separator)) {
		errs = append(errs, ValidationError{
			Field:   "storage.session_db",
			Message: fmt.Sprintf("invalid file name %q", c.Storage.SessionDB),
		})
	}
	if c.Audit.Enabled && strings.HasSuffix(c.Audit.LogFile, string(filepath.Separator)) {
		errs = append(errs, ValidationError{
			Field:   "audit.log_file",
			Message: fmt.Sprintf("invalid file name %q", c.Audit.LogFile),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// String renders the configuration as TOML.
func (c *Config) String() string {
	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(c); err != nil {
		return fmt.Sprintf("<config: %v>", err)
	}
	return b.String()
}
