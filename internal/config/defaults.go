package config

import (
	_ "embed"
)

//go:embed defaults/race.yaml
var defaultRaceYAML []byte

// DefaultRaceConfig returns the default race configuration.
func DefaultRaceConfig() RaceConfig {
	return RaceConfig{
		Window: RaceWindow{
			Title:  "Race Game",
			Width:  500,
			Height: 300,
		},
		Physics: RacePhysics{
			RoadSpeed:     300,
			MovementSpeed: 150,
			Tilt:          0.30,
		},
		Player: RacePlayer{
			X:      -180,
			Scale:  0.7,
			Health: 5,
		},
		Road: RaceRoad{
			Roadlines: 10,
			Spacing:   50,
			Scale:     0.1,
		},
		Obstacles: RaceObstacles{
			Presets:  []string{"racing/barrel_blue", "racing/barrier_red", "racing/cone_straight"},
			Scale:    0.7,
			SpawnMin: 1.0,
			SpawnMax: 1.5,
		},
		Audio: RaceAudio{
			Enabled:      true,
			Music:        "whimsical_popsicle",
			MusicVolume:  0.2,
			Impact:       "impact3",
			ImpactVolume: 0.5,
			Jingle:       "jingle3",
			JingleVolume: 0.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRaceYAML
}
