package engine

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/road-racer/internal/core"
)

type counterState struct {
	Frames int
	Seen   []CollisionEvent
}

func TestGameStepRunsLogicInOrder(t *testing.T) {
	g := NewGame(cp.Vector{X: 500, Y: 300}, counterState{})

	var order []string
	g.AddLogic(func(e *Engine, s *counterState) {
		order = append(order, "first")
		s.Frames++
	})
	g.AddLogic(func(e *Engine, s *counterState) {
		order = append(order, "second")
	})
	g.Reset(1)

	g.Step(0.5, nil)
	g.Step(0.25, nil)

	assert.Equal(t, []string{"first", "second", "first", "second"}, order)
	assert.Equal(t, 2, g.State().Frames)
	assert.Equal(t, uint64(2), g.Engine().FrameNumber)
	assert.InDelta(t, 0.75, g.Engine().TimeSinceStart, 1e-9)
	assert.InDelta(t, 0.25, g.Engine().Delta, 1e-9)
}

func TestGameStepDetectsCollisionsBeforeLogic(t *testing.T) {
	g := NewGame(cp.Vector{X: 500, Y: 300}, counterState{})
	g.OnSetup(func(e *Engine) {
		a := e.AddSprite("player", KindPlayer, RacingBarrelBlue)
		a.Collision = true
		b := e.AddSprite("obstacle0", KindObstacle, RacingBarrelBlue)
		b.Collision = true
	})
	g.AddLogic(func(e *Engine, s *counterState) {
		s.Seen = append(s.Seen, e.DrainCollisions()...)
	})
	g.Reset(1)

	g.Step(1.0/60, nil)
	require.Len(t, g.State().Seen, 1)
	assert.Equal(t, CollisionBegin, g.State().Seen[0].State)
}

func TestGameResetRestoresInitialState(t *testing.T) {
	g := NewGame(cp.Vector{X: 500, Y: 300}, counterState{Frames: 10})
	g.OnSetup(func(e *Engine) {
		e.AddText("health_label", "Health: 5")
	})
	g.AddLogic(func(e *Engine, s *counterState) { s.Frames++ })

	g.Reset(1)
	g.Step(0.1, nil)
	assert.Equal(t, 11, g.State().Frames)

	g.Engine().AddText("game_over_label", "Game Over")
	g.Reset(2)
	assert.Equal(t, 10, g.State().Frames)
	_, ok := g.Engine().LookupText("game_over_label")
	assert.False(t, ok, "reset builds a fresh world")
	assert.Equal(t, uint64(0), g.Engine().FrameNumber)
}

func TestGameKeyboardAndAudioWiring(t *testing.T) {
	g := NewGame(cp.Vector{X: 500, Y: 300}, counterState{})
	var held bool
	g.AddLogic(func(e *Engine, s *counterState) {
		held = e.Keyboard.PressedAny(core.KeyUp)
	})
	g.Reset(1)

	g.Step(0.1, core.KeySet{core.KeyUp: true})
	assert.True(t, held)

	g.Step(0.1, nil)
	assert.False(t, held, "nil keyboard means nothing held")

	g.SetAudio(nil)
	assert.IsType(t, NopAudio{}, g.Engine().Audio)
	assert.Equal(t, cp.Vector{X: 500, Y: 300}, g.Window())
}

func TestGameStepWithoutResetBuildsWorld(t *testing.T) {
	g := NewGame(cp.Vector{X: 500, Y: 300}, counterState{})
	g.Step(0.1, nil)
	assert.NotNil(t, g.Engine())
}
