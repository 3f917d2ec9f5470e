// Package config provides YAML-based configuration loading and difficulty
// management for the race.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// RaceConfig contains all tunables of the race.
type RaceConfig struct {
	Window     RaceWindow       `yaml:"window"`
	Physics    RacePhysics      `yaml:"physics"`
	Player     RacePlayer       `yaml:"player"`
	Road       RaceRoad         `yaml:"road"`
	Obstacles  RaceObstacles    `yaml:"obstacles"`
	Audio      RaceAudio        `yaml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RaceWindow defines the playfield in world units.
type RaceWindow struct {
	Title  string  `yaml:"title"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RacePhysics defines speeds in world units per second.
type RacePhysics struct {
	RoadSpeed     float64 `yaml:"road_speed"`
	MovementSpeed float64 `yaml:"movement_speed"`
	Tilt          float64 `yaml:"tilt"` // Radians
}

// RacePlayer defines the player car.
type RacePlayer struct {
	X      float64 `yaml:"x"`
	Scale  float64 `yaml:"scale"`
	Health uint    `yaml:"health"`
}

// RaceRoad defines the scrolling lane markers.
type RaceRoad struct {
	Roadlines int     `yaml:"roadlines"`
	Spacing   float64 `yaml:"spacing"`
	Scale     float64 `yaml:"scale"`
}

// RaceObstacles defines the obstacles and where they respawn.
type RaceObstacles struct {
	Presets  []string `yaml:"presets"`
	Scale    float64  `yaml:"scale"`
	SpawnMin float64  `yaml:"spawn_min"` // In window widths
	SpawnMax float64  `yaml:"spawn_max"` // In window widths, exclusive
}

// RaceAudio defines which tracks play and how loud.
type RaceAudio struct {
	Enabled      bool    `yaml:"enabled"`
	Music        string  `yaml:"music"`
	MusicVolume  float64 `yaml:"music_volume"`
	Impact       string  `yaml:"impact"`
	ImpactVolume float64 `yaml:"impact_volume"`
	Jingle       string  `yaml:"jingle"`
	JingleVolume float64 `yaml:"jingle_volume"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/frames at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to road speed at max difficulty
}

// Validate rejects configurations the race cannot run with.
func (c RaceConfig) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window must be positive, got %vx%v", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Physics.RoadSpeed < 0 || c.Physics.MovementSpeed < 0:
		return fmt.Errorf("%w: speeds must not be negative", ErrInvalid)
	case c.Player.Health == 0:
		return fmt.Errorf("%w: player health must be at least 1", ErrInvalid)
	case c.Player.Scale <= 0 || c.Road.Scale <= 0 || c.Obstacles.Scale <= 0:
		return fmt.Errorf("%w: scales must be positive", ErrInvalid)
	case c.Road.Roadlines < 0:
		return fmt.Errorf("%w: roadlines must not be negative", ErrInvalid)
	case c.Obstacles.SpawnMax <= c.Obstacles.SpawnMin:
		return fmt.Errorf("%w: spawn_max (%v) must exceed spawn_min (%v)", ErrInvalid, c.Obstacles.SpawnMax, c.Obstacles.SpawnMin)
	}
	for _, v := range []float64{c.Audio.MusicVolume, c.Audio.ImpactVolume, c.Audio.JingleVolume} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: volumes must be within [0, 1], got %v", ErrInvalid, v)
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. The empty string keeps the
// config file's own difficulty section.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalid, s)
	}
}

// Mode returns the score-table key for the preset.
func (p DifficultyPreset) Mode() string {
	if p == "" {
		return "race"
	}
	return "race_" + string(p)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
