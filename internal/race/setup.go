package race

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/road-racer/internal/config"
	"github.com/vovakirdan/road-racer/internal/engine"
)

// Draw order, lowest first.
const (
	layerRoad     = 0
	layerObstacle = 5
	layerPlayer   = 10
	layerUI       = 20
)

// Setup builds the starting world: the player car, the lane markers, the
// obstacles waiting off-screen and the health label. It starts the music.
func (l *Logic) Setup(e *engine.Engine) {
	cfg := l.cfg
	w, h := e.Window.X, e.Window.Y

	player := e.AddSprite(PlayerName, engine.KindPlayer, engine.RacingCarBlue)
	player.Scale = cfg.Player.Scale
	player.Translation = cp.Vector{X: cfg.Player.X, Y: 0}
	player.Layer = layerPlayer
	player.Collision = true

	for i := 1; i <= cfg.Road.Roadlines; i++ {
		line := e.AddSprite(fmt.Sprintf("roadline_%d", i), engine.KindRoadline, engine.RacingBarrierWhite)
		line.Scale = cfg.Road.Scale
		line.Translation.X = -w/2 + cfg.Road.Spacing*float64(i)
		line.Layer = layerRoad
	}

	for i, preset := range cfg.Obstacles.Presets {
		obstacle := e.AddSprite(fmt.Sprintf("obstacle%d", i), engine.KindObstacle, engine.SpritePreset(preset))
		obstacle.Scale = cfg.Obstacles.Scale
		obstacle.Layer = layerObstacle
		obstacle.Collision = true
		l.respawn(e, obstacle)
	}

	label := e.AddText(HealthLabel, healthText(cfg.Player.Health))
	label.Translation = cp.Vector{X: w / 3, Y: h * 0.4}
	label.Layer = layerUI

	if cfg.Audio.Enabled && cfg.Audio.Music != "" {
		e.Audio.PlayMusic(engine.MusicPreset(cfg.Audio.Music), cfg.Audio.MusicVolume)
	}
}

// Race is a ready-to-step game wired with the race setup and logic.
type Race struct {
	*engine.Game[GameState]
	logic *Logic
}

// New creates a race for a validated configuration. Call Reset before the
// first Step to choose the seed; otherwise the clock seeds it.
func New(cfg config.RaceConfig) *Race {
	logic := NewLogic(cfg)
	initial := DefaultGameState()
	initial.Health = cfg.Player.Health

	g := engine.NewGame(cp.Vector{X: cfg.Window.Width, Y: cfg.Window.Height}, initial)
	g.OnSetup(logic.Setup)
	g.AddLogic(logic.Update)
	return &Race{Game: g, logic: logic}
}

// Reconfigure applies new tunables to the running race. Window size and
// starting health only change with a new Race.
func (r *Race) Reconfigure(cfg config.RaceConfig) {
	cfg.Window = r.logic.cfg.Window
	cfg.Player.Health = r.logic.cfg.Player.Health
	r.logic.Apply(cfg)
}

// Logic returns the frame logic.
func (r *Race) Logic() *Logic {
	return r.logic
}
