// Package config loads and saves user settings from a YAML file in the user
// config directory. A missing settings file yields the defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	appDirName       = "project-timer"
	settingsFileName = "settings.yaml"

	// StorageJSON persists the record as a JSON document.
	StorageJSON = "json"
	// StorageSQLite persists the record in a sqlite database.
	StorageSQLite = "sqlite"
)

// Settings are the runtime configuration inputs: where the record and logs
// live, which storage backend to use and how long the countdown runs.
type Settings struct {
	DataFile         string `yaml:"data_file,omitempty"`
	Storage          string `yaml:"storage,omitempty"`
	LogDir           string `yaml:"log_dir,omitempty"`
	LogLevel         string `yaml:"log_level,omitempty"`
	CountdownMinutes int    `yaml:"countdown_minutes,omitempty"`
}

// Default returns the settings used when no file exists: JSON storage under
// the user config directory and a one-hour countdown.
func Default() Settings {
	base := "."
	if configDir, err := os.UserConfigDir(); err == nil {
		base = filepath.Join(configDir, appDirName)
	}
	return Settings{
		DataFile:         filepath.Join(base, "projects_data.json"),
		Storage:          StorageJSON,
		LogDir:           filepath.Join(base, "logs"),
		LogLevel:         "info",
		CountdownMinutes: 60,
	}
}

// DefaultPath returns the settings file location.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appDirName, settingsFileName), nil
}

// Load reads settings from path, filling in defaults for absent fields. A
// missing file returns the defaults without error.
func Load(path string) (Settings, error) {
	settings := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData Settings
	if err := yaml.Unmarshal(data, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	if fileData.DataFile != "" {
		settings.DataFile = fileData.DataFile
	}
	if fileData.Storage == StorageJSON || fileData.Storage == StorageSQLite {
		settings.Storage = fileData.Storage
	}
	if fileData.LogDir != "" {
		settings.LogDir = fileData.LogDir
	}
	if fileData.LogLevel != "" {
		settings.LogLevel = fileData.LogLevel
	}
	if fileData.CountdownMinutes > 0 {
		settings.CountdownMinutes = fileData.CountdownMinutes
	}
	return settings, nil
}

// Save writes settings to path, creating the directory as needed.
func Save(path string, settings Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

// CountdownSeconds converts the configured countdown length to seconds.
func (s Settings) CountdownSeconds() int {
	return s.CountdownMinutes * 60
}
