package window

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/road-racer/internal/config"
	"github.com/vovakirdan/road-racer/internal/core"
	"github.com/vovakirdan/road-racer/internal/engine"
	"github.com/vovakirdan/road-racer/internal/race"
	"github.com/vovakirdan/road-racer/internal/storage"
)

var testWindow = cp.Vector{X: 500, Y: 300}

func pressedOnly(keys ...ebiten.Key) func(ebiten.Key) bool {
	return func(k ebiten.Key) bool {
		for _, want := range keys {
			if k == want {
				return true
			}
		}
		return false
	}
}

func TestKeys(t *testing.T) {
	set := Keys(pressedOnly(ebiten.KeyArrowUp, ebiten.KeyS))
	assert.True(t, set.PressedAny(core.KeyUp))
	assert.True(t, set.PressedAny(core.KeyS))
	assert.False(t, set.PressedAny(core.KeyDown, core.KeyW))

	assert.Empty(t, Keys(pressedOnly()))
}

func TestActionFor(t *testing.T) {
	assert.Equal(t, core.ActionQuit, ActionFor(pressedOnly(ebiten.KeyEscape)))
	assert.Equal(t, core.ActionQuit, ActionFor(pressedOnly(ebiten.KeyQ)))
	assert.Equal(t, core.ActionPause, ActionFor(pressedOnly(ebiten.KeyP)))
	assert.Equal(t, core.ActionRestart, ActionFor(pressedOnly(ebiten.KeyR)))
	assert.Equal(t, core.ActionNone, ActionFor(pressedOnly(ebiten.KeyArrowUp)))
}

func TestToScreen(t *testing.T) {
	x, y := ToScreen(testWindow, cp.Vector{})
	assert.Equal(t, 250.0, x)
	assert.Equal(t, 150.0, y)

	x, y = ToScreen(testWindow, cp.Vector{X: -250, Y: 150})
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)
}

func TestSpriteGeoM(t *testing.T) {
	s := &engine.Sprite{
		Preset:      engine.RacingCarBlue,
		Scale:       0.7,
		Translation: cp.Vector{X: -180, Y: 0},
	}

	g := SpriteGeoM(s, testWindow)
	x, y := g.Apply(0, 0)
	assert.InDelta(t, 31.5, x, 1e-9)
	assert.InDelta(t, 129.0, y, 1e-9)
	x, y = g.Apply(1, 1)
	assert.InDelta(t, 108.5, x, 1e-9)
	assert.InDelta(t, 171.0, y, 1e-9)

	// A quarter turn counter-clockwise points the car's nose up the screen.
	s.Rotation = math.Pi / 2
	g = SpriteGeoM(s, testWindow)
	x, y = g.Apply(0.5, 0.5)
	assert.InDelta(t, 70.0, x, 1e-9)
	assert.InDelta(t, 150.0, y, 1e-9)
	x, y = g.Apply(1, 0.5)
	assert.InDelta(t, 70.0, x, 1e-9)
	assert.InDelta(t, 111.5, y, 1e-9)
}

func TestLabelSize(t *testing.T) {
	w, h := LabelSize("Game Over")
	assert.Equal(t, 54, w)
	assert.Equal(t, 16, h)

	w, _ = LabelSize("")
	assert.Equal(t, 6, w, "empty labels still get a drawable image")
}

func TestLabelGeoMScalesByFontSize(t *testing.T) {
	health := &engine.Text{
		Name:        "health_label",
		Value:       "Health: 5",
		FontSize:    engine.DefaultFontSize,
		Translation: cp.Vector{X: -230, Y: 130},
	}
	w, h := LabelSize(health.Value)
	g := LabelGeoM(health, testWindow, w, h)
	x, y := g.Apply(0, 0)
	assert.InDelta(t, 20.0, x, 1e-9)
	assert.InDelta(t, 20.0, y, 1e-9)
	x, y = g.Apply(float64(w), float64(h))
	assert.InDelta(t, 74.0, x, 1e-9, "default font size draws at native size")
	assert.InDelta(t, 36.0, y, 1e-9)

	over := &engine.Text{Name: race.GameOverLabel, Value: "Game Over", FontSize: race.GameOverFontSize}
	w, h = LabelSize(over.Value)
	g = LabelGeoM(over, testWindow, w, h)
	left, top := g.Apply(0, 0)
	right, bottom := g.Apply(float64(w), float64(h))
	assert.InDelta(t, 54*2.4, right-left, 1e-9)
	assert.InDelta(t, 16*2.4, bottom-top, 1e-9)
	assert.InDelta(t, 250.0, (left+right)/2, 1e-9, "centred horizontally")
	assert.InDelta(t, 150.0, (top+bottom)/2, 1e-9, "centred vertically")
}

func TestGameSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	g := New(Options{
		Race:    config.DefaultRaceConfig(),
		Preset:  config.DifficultyHard,
		Runtime: core.RuntimeConfig{TickRate: 60, Seed: 3},
		Player:  "bo",
		Store:   store,
	})
	require.Equal(t, uint(3), g.State().Health)

	g.race.State().Score = 4
	for i := 0; i < 3; i++ {
		g.race.Engine().PushCollision(engine.CollisionEvent{
			State: engine.CollisionBegin,
			Pair:  engine.NewCollisionPair(race.PlayerName, "obstacle1"),
		})
		g.step(1.0/60, core.KeySet{})
	}
	require.True(t, g.State().Lost)
	g.step(1.0/60, core.KeySet{})

	scores, err := store.TopScores(config.DifficultyHard.Mode(), 10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 4, scores[0].Score)
	assert.Equal(t, "bo", scores[0].Player)
	assert.Equal(t, 4, g.highScore)

	g.restart()
	assert.False(t, g.State().Lost)
	assert.False(t, g.scoreSaved)
}

func TestLayoutUsesWorldSize(t *testing.T) {
	g := New(Options{Race: config.DefaultRaceConfig(), Runtime: core.RuntimeConfig{Seed: 1}})
	w, h := g.Layout(1920, 1080)
	assert.Equal(t, 500, w)
	assert.Equal(t, 300, h)
}
