package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the search directories.
const FileName = "race.yaml"

// LoadRace loads the race configuration.
// Search order: customPath -> ~/.racer/configs/race.yaml -> ./configs/race.yaml -> embedded default.
// Files only override the keys they set; everything else keeps its default.
func LoadRace(customPath string) (RaceConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	if path := ResolvePath(""); path != "" {
		if cfg, err := loadFile(path); err == nil {
			return cfg, nil
		}
	}

	cfg := DefaultRaceConfig()
	if err := yaml.Unmarshal(defaultRaceYAML, &cfg); err != nil {
		return DefaultRaceConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// SearchPaths lists the files LoadRace tries when no custom path is given.
func SearchPaths() []string {
	var paths []string
	if user := UserConfigPath(); user != "" {
		paths = append(paths, user)
	}
	return append(paths, filepath.Join("configs", FileName))
}

// ResolvePath returns the file LoadRace reads, or empty when it falls back
// to the embedded default. Files that fail to parse or validate are skipped.
func ResolvePath(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, candidate := range SearchPaths() {
		if cfg, err := loadFile(candidate); err == nil && cfg.Validate() == nil {
			return candidate
		}
	}
	return ""
}

func loadFile(path string) (RaceConfig, error) {
	cfg := DefaultRaceConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// UserConfigPath returns the per-user config file, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".racer", "configs", FileName)
}

// ApplyPreset modifies the config based on a difficulty preset.
// The empty preset leaves the config untouched.
func ApplyPreset(cfg *RaceConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	if cfg.Difficulty.Progression.Type == "" || cfg.Difficulty.Progression.Type == "none" {
		cfg.Difficulty.Progression.Type = "score"
	}

	switch preset {
	case DifficultyEasy:
		cfg.Player.Health = 7
	case DifficultyHard:
		cfg.Player.Health = 3
	}
}
