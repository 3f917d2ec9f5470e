package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// isolate hides the user's and the working directory's config files.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	isolate(t)
	if p := ResolvePath(""); p != "" {
		t.Fatalf("Expected embedded default, resolved %q", p)
	}

	cfg, err := LoadRace("")
	if err != nil {
		t.Fatalf("LoadRace: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded defaults invalid: %v", err)
	}

	def := DefaultRaceConfig()
	if cfg.Window != def.Window {
		t.Errorf("window mismatch: %+v vs %+v", cfg.Window, def.Window)
	}
	if cfg.Physics != def.Physics {
		t.Errorf("physics mismatch: %+v vs %+v", cfg.Physics, def.Physics)
	}
	if cfg.Player != def.Player {
		t.Errorf("player mismatch: %+v vs %+v", cfg.Player, def.Player)
	}
	if len(cfg.Obstacles.Presets) != 3 {
		t.Errorf("Expected 3 obstacle presets, got %d", len(cfg.Obstacles.Presets))
	}
}

func TestLoadCustomPathOverridesOnlySetKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "race.yaml")
	data := []byte("physics:\n  road_speed: 450\nplayer:\n  health: 9\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRace(path)
	if err != nil {
		t.Fatalf("LoadRace: %v", err)
	}
	if cfg.Physics.RoadSpeed != 450 {
		t.Errorf("Expected road speed 450, got %v", cfg.Physics.RoadSpeed)
	}
	if cfg.Player.Health != 9 {
		t.Errorf("Expected health 9, got %d", cfg.Player.Health)
	}
	if cfg.Physics.MovementSpeed != 150 {
		t.Errorf("Expected default movement speed 150, got %v", cfg.Physics.MovementSpeed)
	}
}

func TestLoadSearchesConfigsDir(t *testing.T) {
	dir := isolate(t)
	if err := os.Mkdir(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	local := filepath.Join("configs", FileName)
	if err := os.WriteFile(local, []byte("physics:\n  movement_speed: 90\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if p := ResolvePath(""); p != local {
		t.Errorf("Expected %q, got %q", local, p)
	}
	if p := ResolvePath("custom.yaml"); p != "custom.yaml" {
		t.Errorf("Expected custom path to win, got %q", p)
	}
	cfg, err := LoadRace("")
	if err != nil {
		t.Fatalf("LoadRace: %v", err)
	}
	if cfg.Physics.MovementSpeed != 90 {
		t.Errorf("Expected movement speed 90, got %v", cfg.Physics.MovementSpeed)
	}

	// An invalid file is skipped in favour of the embedded default.
	if err := os.WriteFile(local, []byte("physics:\n  road_speed: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if p := ResolvePath(""); p != "" {
		t.Errorf("Expected invalid file to be skipped, got %q", p)
	}
	cfg, err = LoadRace("")
	if err != nil {
		t.Fatalf("LoadRace: %v", err)
	}
	if cfg.Physics.RoadSpeed != 300 {
		t.Errorf("Expected default road speed, got %v", cfg.Physics.RoadSpeed)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadRace(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRace(bad); err == nil {
		t.Error("Expected error for malformed yaml")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("player:\n  health: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRace(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *RaceConfig)
	}{
		{"zero width", func(c *RaceConfig) { c.Window.Width = 0 }},
		{"negative road speed", func(c *RaceConfig) { c.Physics.RoadSpeed = -1 }},
		{"zero health", func(c *RaceConfig) { c.Player.Health = 0 }},
		{"zero scale", func(c *RaceConfig) { c.Obstacles.Scale = 0 }},
		{"negative roadlines", func(c *RaceConfig) { c.Road.Roadlines = -1 }},
		{"empty spawn range", func(c *RaceConfig) { c.Obstacles.SpawnMax = c.Obstacles.SpawnMin }},
		{"loud music", func(c *RaceConfig) { c.Audio.MusicVolume = 1.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRaceConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Expected ErrInvalid, got %v", err)
			}
		})
	}

	if err := DefaultRaceConfig().Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q): %v", s, err)
		}
	}
	if _, err := ParsePreset("insane"); !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid for unknown preset, got %v", err)
	}
}

func TestPresetMode(t *testing.T) {
	if got := DifficultyPreset("").Mode(); got != "race" {
		t.Errorf("Expected race, got %s", got)
	}
	if got := DifficultyHard.Mode(); got != "race_hard" {
		t.Errorf("Expected race_hard, got %s", got)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultRaceConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultRaceConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled {
		t.Error("hard preset should enable progression")
	}
	if cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("Expected initial level 0.7, got %v", cfg.Difficulty.InitialLevel)
	}
	if cfg.Player.Health != 3 {
		t.Errorf("Expected health 3, got %d", cfg.Player.Health)
	}

	cfg = DefaultRaceConfig()
	ApplyPreset(&cfg, DifficultyEasy)
	if cfg.Player.Health != 7 {
		t.Errorf("Expected health 7, got %d", cfg.Player.Health)
	}

	cfg = DefaultRaceConfig()
	before := cfg.Difficulty
	ApplyPreset(&cfg, "")
	if cfg.Difficulty != before {
		t.Error("empty preset should leave difficulty untouched")
	}
}
