package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "settings.yaml"))
	require.NoError(t, err)

	defaults := Default()
	assert.Equal(t, defaults.Storage, settings.Storage)
	assert.Equal(t, defaults.CountdownMinutes, settings.CountdownMinutes)
	assert.NotEmpty(t, settings.DataFile)
	assert.NotEmpty(t, settings.LogDir)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	want := Settings{
		DataFile:         "/tmp/timer/projects_data.json",
		Storage:          StorageSQLite,
		LogDir:           "/tmp/timer/logs",
		LogLevel:         "debug",
		CountdownMinutes: 25,
	}

	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadIgnoresInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	raw := "storage: postgres\ncountdown_minutes: -5\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	settings, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, StorageJSON, settings.Storage)
	assert.Equal(t, 60, settings.CountdownMinutes)
}

func TestLoadCorruptYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t- nope"), 0o644))

	settings, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, Default().Storage, settings.Storage, "defaults survive a bad file")
}

func TestCountdownSeconds(t *testing.T) {
	assert.Equal(t, 3600, Default().CountdownSeconds())
	assert.Equal(t, 1500, Settings{CountdownMinutes: 25}.CountdownSeconds())
}
