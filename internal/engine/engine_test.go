package engine

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineSpriteRegistry(t *testing.T) {
	e := New(cp.Vector{X: 500, Y: 300}, 1)

	player := e.AddSprite("player", KindPlayer, RacingCarBlue)
	e.AddSprite("roadline_1", KindRoadline, RacingBarrierWhite)
	e.AddSprite("obstacle0", KindObstacle, RacingBarrelBlue)
	e.AddSprite("roadline_2", KindRoadline, RacingBarrierWhite)

	assert.Equal(t, 1.0, player.Scale, "new sprites start at scale 1")
	assert.Same(t, player, e.Sprite("player"))

	roadlines := e.SpritesOf(KindRoadline)
	require.Len(t, roadlines, 2)
	assert.Equal(t, "roadline_1", roadlines[0].Name)
	assert.Equal(t, "roadline_2", roadlines[1].Name)

	_, ok := e.LookupSprite("missing")
	assert.False(t, ok)
	assert.PanicsWithValue(t, `engine: unknown sprite "missing"`, func() { e.Sprite("missing") })
}

func TestEngineAddSpriteReplacesInPlace(t *testing.T) {
	e := New(cp.Vector{X: 500, Y: 300}, 1)
	e.AddSprite("a", KindScenery, RacingConeStraight)
	e.AddSprite("b", KindScenery, RacingConeStraight)
	replaced := e.AddSprite("a", KindObstacle, RacingBarrelRed)

	require.Len(t, e.Sprites(), 2)
	assert.Same(t, replaced, e.Sprites()[0])
	assert.Equal(t, KindObstacle, e.Sprite("a").Kind)

	assert.Equal(t, "b", e.Sprites()[1].Name)
}

func TestEngineTextRegistry(t *testing.T) {
	e := New(cp.Vector{X: 500, Y: 300}, 1)

	label := e.AddText("health_label", "Health: 5")
	assert.Equal(t, DefaultFontSize, label.FontSize)
	assert.Same(t, label, e.Text("health_label"))

	again := e.AddText("health_label", "Health: 4")
	assert.Len(t, e.Texts(), 1, "re-adding a text overwrites it")
	assert.Equal(t, "Health: 4", e.Text("health_label").Value)
	assert.Same(t, again, e.Texts()[0])

	assert.Panics(t, func() { e.Text("game_over_label") })
}

func TestEngineDrainCollisions(t *testing.T) {
	e := New(cp.Vector{X: 500, Y: 300}, 1)
	ev := CollisionEvent{State: CollisionBegin, Pair: NewCollisionPair("player", "obstacle0")}
	e.PushCollision(ev)

	events := e.DrainCollisions()
	require.Len(t, events, 1)
	assert.Equal(t, ev, events[0])
	assert.Empty(t, e.DrainCollisions(), "events are consumed once")
}

func TestEngineRandomRange(t *testing.T) {
	e := New(cp.Vector{X: 500, Y: 300}, 42)
	for i := 0; i < 1000; i++ {
		v := e.RandomRange(500, 750)
		assert.GreaterOrEqual(t, v, 500.0)
		assert.Less(t, v, 750.0)
	}
	assert.Equal(t, 3.0, e.RandomRange(3, 3))
}

func TestSpriteBounds(t *testing.T) {
	s := &Sprite{Preset: RacingCarBlue, Scale: 0.5, Translation: cp.Vector{X: 10, Y: -10}}
	bb := s.Bounds()
	assert.InDelta(t, 10-27.5, bb.L, 1e-9)
	assert.InDelta(t, 10+27.5, bb.R, 1e-9)
	assert.InDelta(t, -10-15, bb.B, 1e-9)
	assert.InDelta(t, -10+15, bb.T, 1e-9)

	// A quarter turn swaps the extents
	s.Rotation = math.Pi / 2
	bb = s.Bounds()
	assert.InDelta(t, 15, bb.R-10, 1e-9)
	assert.InDelta(t, 27.5, bb.T+10, 1e-9)
}

func TestUnknownPresetInfo(t *testing.T) {
	info := SpritePreset("nope").Info()
	assert.Equal(t, '?', info.Glyph)
	assert.Positive(t, info.Size.X)
}
