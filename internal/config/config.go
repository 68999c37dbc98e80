// Package config loads the user configuration file and resolves it, together
// with command-line overrides, into the engine's fully specified Config.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"macsweep/internal/engine"
	"macsweep/internal/remove"
	"macsweep/internal/resolve"
)

// File mirrors the YAML configuration schema.
type File struct {
	Mode       string     `yaml:"mode"` // dry-run | trash | delete
	Categories Categories `yaml:"categories"`
	Ages       Ages       `yaml:"age_thresholds"`
	Excludes   []string   `yaml:"exclude_patterns"`
}

// Categories toggles the cleanup categories.
type Categories struct {
	UserCaches    bool `yaml:"user_caches"`
	BrowserCaches bool `yaml:"browser_caches"`
	TempFiles     bool `yaml:"temp_files"`
	Downloads     bool `yaml:"downloads"`
	SystemCaches  bool `yaml:"system_caches"`
	Snapshots     bool `yaml:"snapshots"`
}

// Ages holds inclusion age thresholds in days.
type Ages struct {
	TempFiles int `yaml:"temp_files"`
	Downloads int `yaml:"downloads"`
}

// Default returns the shipped configuration: conservative categories on,
// trash-backup mode, week-old temp files, month-old downloads.
func Default() *File {
	return &File{
		Mode: "trash",
		Categories: Categories{
			UserCaches:    true,
			BrowserCaches: true,
			TempFiles:     true,
		},
		Ages: Ages{
			TempFiles: 7,
			Downloads: 30,
		},
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Library/Application Support/macsweep/config.yaml"), nil
}

// Load reads path over the defaults. A missing file is not an error; the
// defaults apply unchanged.
func Load(path string) (*File, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve produces the engine config. elevated records whether the caller
// verified elevated privilege; the engine enforces it for system caches.
func (f *File) Resolve(elevated bool) (engine.Config, error) {
	mode, err := parseMode(f.Mode)
	if err != nil {
		return engine.Config{}, err
	}
	if f.Ages.TempFiles < 0 || f.Ages.Downloads < 0 {
		return engine.Config{}, fmt.Errorf("age thresholds must be non-negative")
	}

	return engine.Config{
		Mode: mode,
		EnabledCategories: map[resolve.Category]bool{
			resolve.UserCaches:    f.Categories.UserCaches,
			resolve.BrowserCaches: f.Categories.BrowserCaches,
			resolve.TempFiles:     f.Categories.TempFiles,
			resolve.Downloads:     f.Categories.Downloads,
			resolve.SystemCaches:  f.Categories.SystemCaches,
			resolve.Snapshots:     f.Categories.Snapshots,
		},
		TempFileAgeDays:     f.Ages.TempFiles,
		DownloadFileAgeDays: f.Ages.Downloads,
		ExcludePatterns:     f.Excludes,
		ElevatedPrivilege:   elevated,
	}, nil
}

func parseMode(s string) (remove.Mode, error) {
	switch s {
	case "", "trash":
		return remove.TrashBackup, nil
	case "dry-run":
		return remove.DryRun, nil
	case "delete":
		return remove.PermanentDelete, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (want dry-run, trash, or delete)", s)
	}
}
