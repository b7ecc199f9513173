// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, CurrentVersion, cfg.Version)
	assert.Equal(t, "session.db", cfg.Storage.SessionDB)
	assert.True(t, cfg.Audit.Enabled)
	assert.Equal(t, "audit.log", cfg.Audit.LogFile)
	assert.True(t, cfg.UI.Mouse)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_ResolvedPaths(t *testing.T) {
	cfg := Default()
	cfg.Storage.DataDir = filepath.Join("var", "idleguard")

	assert.Equal(t, filepath.Join("var", "idleguard", "session.db"), cfg.SessionDBPath())

	abs := filepath.Join(t.TempDir(), "elsewhere.log")
	cfg.Audit.LogFile = abs
	assert.Equal(t, abs, cfg.AuditLogPath())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"bad version", func(c *Config) { c.Version = "9" }, "version"},
		{"empty data dir", func(c *Config) { c.Storage.DataDir = "  " }, "storage.data_dir"},
		{"directory as db", func(c *Config) { c.Storage.SessionDB = "db" + string(filepath.Separator) }, "storage.session_db"},
		{"directory as audit log", func(c *Config) { c.Audit.LogFile = "logs" + string(filepath.Separator) }, "audit.log_file"},
		{"audit log ignored when disabled", func(c *Config) {
			c.Audit.Enabled = false
			c.Audit.LogFile = "logs" + string(filepath.Separator)
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var verrs ValidateErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, tt.wantErr, verrs[0].Field)
		})
	}
}

func TestConfig_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("IDLEGUARD_DATA_DIR", dir)
	t.Setenv("IDLEGUARD_AUDIT", "false")
	t.Setenv("IDLEGUARD_NO_COLOR", "1")

	cfg := Default()
	require.NoError(t, cfg.ApplyEnvOverrides())

	assert.Equal(t, dir, cfg.Storage.DataDir)
	assert.False(t, cfg.Audit.Enabled)
	assert.True(t, cfg.UI.NoColor)
	// Untouched fields keep their values.
	assert.Equal(t, "session.db", cfg.Storage.SessionDB)
	assert.True(t, cfg.UI.Mouse)
}

func TestConfig_EnvOverrideInvalidBool(t *testing.T) {
	t.Setenv("IDLEGUARD_MOUSE", "sometimes")

	cfg := Default()
	assert.Error(t, cfg.ApplyEnvOverrides())
}

func TestSaveAndLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.Storage.DataDir = filepath.Join(t.TempDir(), "data")
	cfg.UI.AltScreen = false
	require.NoError(t, SaveTOML(cfg, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Storage, loaded.Storage)
	assert.False(t, loaded.UI.AltScreen)
}

func TestLoadFromPath_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\nno_color = true\n"), 0600))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.True(t, cfg.UI.NoColor)
	assert.Equal(t, "session.db", cfg.Storage.SessionDB)
	assert.Equal(t, CurrentVersion, cfg.Version)
}

func TestLoadFromPath_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFromPath(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[ui\n"), 0600))
	_, err = LoadFromPath(bad)
	assert.Error(t, err)

	wrongVersion := filepath.Join(dir, "v9.toml")
	require.NoError(t, os.WriteFile(wrongVersion, []byte("version = \"9\"\n"), 0600))
	_, err = LoadFromPath(wrongVersion)
	assert.ErrorContains(t, err, "unsupported version")
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("USERPROFILE", os.Getenv("HOME"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default().Storage.SessionDB, cfg.Storage.SessionDB)
}
