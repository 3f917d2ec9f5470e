package engine

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollisionPairUnordered(t *testing.T) {
	a := NewCollisionPair("player", "obstacle1")
	b := NewCollisionPair("obstacle1", "player")

	assert.Equal(t, a, b)
	assert.True(t, a.Contains("player"))
	assert.True(t, a.Contains("obstacle1"))
	assert.False(t, a.Contains("obstacle2"))
	assert.Equal(t, "(obstacle1, player)", a.String())
}

func newCollisionWorld() (*Engine, *Sprite, *Sprite) {
	e := New(cp.Vector{X: 500, Y: 300}, 1)
	a := e.AddSprite("player", KindPlayer, RacingBarrelBlue)
	a.Collision = true
	b := e.AddSprite("obstacle0", KindObstacle, RacingBarrelBlue)
	b.Collision = true
	b.Translation = cp.Vector{X: 200}
	return e, a, b
}

func TestCollisionDetectorBeginAndEnd(t *testing.T) {
	e, _, b := newCollisionWorld()
	d := NewCollisionDetector()

	d.Detect(e)
	assert.Empty(t, e.DrainCollisions(), "far apart sprites don't collide")

	b.Translation = cp.Vector{X: 30}
	d.Detect(e)
	events := e.DrainCollisions()
	require.Len(t, events, 1)
	assert.Equal(t, CollisionBegin, events[0].State)
	assert.Equal(t, NewCollisionPair("player", "obstacle0"), events[0].Pair)

	d.Detect(e)
	assert.Empty(t, e.DrainCollisions(), "an ongoing contact is reported once")

	b.Translation = cp.Vector{X: 300}
	d.Detect(e)
	events = e.DrainCollisions()
	require.Len(t, events, 1)
	assert.Equal(t, CollisionEnd, events[0].State)
}

func TestCollisionDetectorIgnoresNonColliders(t *testing.T) {
	e, _, b := newCollisionWorld()
	b.Collision = false
	b.Translation = cp.Vector{}

	scenery := e.AddSprite("roadline_1", KindRoadline, RacingBarrierWhite)
	scenery.Translation = cp.Vector{}

	d := NewCollisionDetector()
	d.Detect(e)
	assert.Empty(t, e.DrainCollisions())
}

func TestCollisionDetectorDisabledSpriteEnds(t *testing.T) {
	e, _, b := newCollisionWorld()
	b.Translation = cp.Vector{}
	d := NewCollisionDetector()

	d.Detect(e)
	require.Len(t, e.DrainCollisions(), 1)

	b.Collision = false
	d.Detect(e)
	events := e.DrainCollisions()
	require.Len(t, events, 1)
	assert.Equal(t, CollisionEnd, events[0].State)

	d.Reset()
	assert.Empty(t, d.touching)
}

func TestCollisionDetectorMultiplePairs(t *testing.T) {
	e, _, b := newCollisionWorld()
	b.Translation = cp.Vector{X: 10}
	c := e.AddSprite("obstacle1", KindObstacle, RacingBarrelBlue)
	c.Collision = true
	c.Translation = cp.Vector{X: -10}

	d := NewCollisionDetector()
	d.Detect(e)
	events := e.DrainCollisions()

	// player-obstacle0, player-obstacle1 and obstacle0-obstacle1 all overlap
	require.Len(t, events, 3)
	assert.Equal(t, NewCollisionPair("player", "obstacle0"), events[0].Pair)
	assert.Equal(t, NewCollisionPair("player", "obstacle1"), events[1].Pair)
	assert.Equal(t, NewCollisionPair("obstacle0", "obstacle1"), events[2].Pair)
}
