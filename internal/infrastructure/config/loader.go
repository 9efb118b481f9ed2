package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader loads settings and stages using fs.FS interface
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{fsys: os.DirFS(basePath)}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadSettings loads settings.yaml on top of DefaultSettings
func (l *Loader) LoadSettings() (*Settings, error) {
	data, err := fs.ReadFile(l.fsys, "settings.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read settings.yaml: %w", err)
	}

	cfg := DefaultSettings()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse settings.yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.yaml: %w", err)
	}

	return cfg, nil
}

// LoadStage loads and validates a stage JSON file
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	path := "stages/" + name + ".json"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage %s: %w", name, err)
	}

	var cfg StageConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stage %s: %w", name, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
