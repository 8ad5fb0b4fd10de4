package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds the optional user settings read from config.yaml.
type Settings struct {
	// VenvHome overrides the store root. The VENVMAN_DIRECTORY
	// environment variable takes precedence over this.
	VenvHome string `yaml:"venv_home"`

	// DefaultPython is the interpreter version requested when a create
	// command omits --python (e.g. "3.12"). Empty means no preference.
	DefaultPython string `yaml:"default_python"`
}

// LoadSettings reads settings from the given path. A missing file yields
// zero-value settings; a malformed file is an error.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &s, nil
}
