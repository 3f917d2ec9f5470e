package race

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/road-racer/internal/config"
	"github.com/vovakirdan/road-racer/internal/core"
	"github.com/vovakirdan/road-racer/internal/engine"
)

func positions(r *Race) map[string][2]float64 {
	out := make(map[string][2]float64)
	for _, s := range r.Engine().Sprites() {
		out[s.Name] = [2]float64{s.Translation.X, s.Translation.Y}
	}
	return out
}

func TestRaceDeterminism(t *testing.T) {
	r1 := New(config.DefaultRaceConfig())
	r2 := New(config.DefaultRaceConfig())
	r1.Reset(12345)
	r2.Reset(12345)

	kb := core.KeySet{}
	for i := 0; i < 600; i++ {
		kb[core.KeyUp] = i%90 < 30
		kb[core.KeyDown] = i%90 >= 60
		r1.Step(1.0/60, kb)
		r2.Step(1.0/60, kb)
	}

	assert.Equal(t, positions(r1), positions(r2))
	assert.Equal(t, *r1.State(), *r2.State())
}

func TestRaceDetectsCollisions(t *testing.T) {
	r := New(config.DefaultRaceConfig())
	r.Reset(1)

	// Park an obstacle just ahead of the car; the road carries it into the player.
	r.Engine().Sprite("obstacle0").Translation.X = -120
	r.Engine().Sprite("obstacle0").Translation.Y = 0

	for i := 0; i < 30 && r.State().Health == 5; i++ {
		r.Step(1.0/60, nil)
	}

	assert.Equal(t, uint(4), r.State().Health)
	assert.Equal(t, "Health: 4", r.Engine().Text(HealthLabel).Value)
	assert.GreaterOrEqual(t, r.Engine().Sprite("obstacle0").Translation.X, 500.0)
}

func TestRaceResetRestoresHealth(t *testing.T) {
	cfg := config.DefaultRaceConfig()
	cfg.Player.Health = 2
	r := New(cfg)
	r.Reset(3)
	r.State().Health = 0
	r.State().Lost = true

	r.Reset(4)
	assert.Equal(t, GameState{Health: 2}, *r.State())
	assert.Equal(t, "Health: 2", r.Engine().Text(HealthLabel).Value)
}

func TestReconfigureKeepsWindowAndHealth(t *testing.T) {
	r := New(config.DefaultRaceConfig())
	r.Reset(5)

	next := config.DefaultRaceConfig()
	next.Physics.RoadSpeed = 600
	next.Window.Width = 1000
	next.Player.Health = 1
	r.Reconfigure(next)

	require.Equal(t, 600.0, r.Logic().Config().Physics.RoadSpeed)
	assert.Equal(t, 500.0, r.Logic().Config().Window.Width)
	assert.Equal(t, uint(5), r.Logic().Config().Player.Health)

	line := r.Engine().Sprite("roadline_5")
	r.Step(0.1, nil)
	assert.InDelta(t, -60.0, line.Translation.X, 1e-9)
	assert.Len(t, r.Engine().SpritesOf(engine.KindObstacle), 3)
}
