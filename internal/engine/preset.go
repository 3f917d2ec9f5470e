package engine

import (
	"image/color"

	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/road-racer/internal/core"
)

// SpritePreset names one of the built-in sprite looks.
type SpritePreset string

const (
	RacingCarBlue      SpritePreset = "racing/car_blue"
	RacingCarRed       SpritePreset = "racing/car_red"
	RacingBarrierWhite SpritePreset = "racing/barrier_white"
	RacingBarrierRed   SpritePreset = "racing/barrier_red"
	RacingBarrelBlue   SpritePreset = "racing/barrel_blue"
	RacingBarrelRed    SpritePreset = "racing/barrel_red"
	RacingConeStraight SpritePreset = "racing/cone_straight"
)

// PresetInfo describes how a preset looks at scale 1.
type PresetInfo struct {
	Size  cp.Vector  // Base size in world units
	Glyph rune       // Terminal fill character
	Color core.Color // Terminal color
	RGBA  color.RGBA // Window fill color
}

var presets = map[SpritePreset]PresetInfo{
	RacingCarBlue:      {Size: cp.Vector{X: 110, Y: 60}, Glyph: '█', Color: core.ColorBrightBlue, RGBA: color.RGBA{R: 40, G: 110, B: 230, A: 255}},
	RacingCarRed:       {Size: cp.Vector{X: 110, Y: 60}, Glyph: '█', Color: core.ColorBrightRed, RGBA: color.RGBA{R: 220, G: 40, B: 40, A: 255}},
	RacingBarrierWhite: {Size: cp.Vector{X: 220, Y: 60}, Glyph: '▬', Color: core.ColorBrightWhite, RGBA: color.RGBA{R: 240, G: 240, B: 240, A: 255}},
	RacingBarrierRed:   {Size: cp.Vector{X: 110, Y: 40}, Glyph: '▓', Color: core.ColorRed, RGBA: color.RGBA{R: 200, G: 30, B: 30, A: 255}},
	RacingBarrelBlue:   {Size: cp.Vector{X: 56, Y: 56}, Glyph: '●', Color: core.ColorBlue, RGBA: color.RGBA{R: 30, G: 60, B: 200, A: 255}},
	RacingBarrelRed:    {Size: cp.Vector{X: 56, Y: 56}, Glyph: '●', Color: core.ColorRed, RGBA: color.RGBA{R: 200, G: 50, B: 30, A: 255}},
	RacingConeStraight: {Size: cp.Vector{X: 50, Y: 60}, Glyph: '▲', Color: core.ColorOrange, RGBA: color.RGBA{R: 255, G: 140, B: 0, A: 255}},
}

// Info returns the preset's description. Unknown presets get a small grey box.
func (p SpritePreset) Info() PresetInfo {
	if info, ok := presets[p]; ok {
		return info
	}
	return PresetInfo{Size: cp.Vector{X: 32, Y: 32}, Glyph: '?', Color: core.ColorGray, RGBA: color.RGBA{R: 128, G: 128, B: 128, A: 255}}
}

// MusicPreset names a looping background track.
type MusicPreset string

const (
	MusicWhimsicalPopsicle MusicPreset = "whimsical_popsicle"
	MusicClassyChiptune    MusicPreset = "classy_chiptune"
)

// SfxPreset names a one-shot sound effect.
type SfxPreset string

const (
	SfxImpact1 SfxPreset = "impact1"
	SfxImpact3 SfxPreset = "impact3"
	SfxJingle1 SfxPreset = "jingle1"
	SfxJingle3 SfxPreset = "jingle3"
)

// AudioCommands is the engine's audio surface.
// Volumes are in [0, 1]; implementations clamp out-of-range values.
type AudioCommands interface {
	PlayMusic(track MusicPreset, volume float64)
	PlaySFX(effect SfxPreset, volume float64)
	StopMusic()
}

// NopAudio discards every command. Used when sound is muted or unavailable.
type NopAudio struct{}

func (NopAudio) PlayMusic(MusicPreset, float64) {}
func (NopAudio) PlaySFX(SfxPreset, float64)     {}
func (NopAudio) StopMusic()                     {}
