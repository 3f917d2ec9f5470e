package race

import (
	"fmt"

	"github.com/vovakirdan/road-racer/internal/config"
	"github.com/vovakirdan/road-racer/internal/core"
	"github.com/vovakirdan/road-racer/internal/engine"
)

var (
	upKeys   = []core.Key{core.KeyUp, core.KeyW}
	downKeys = []core.Key{core.KeyDown, core.KeyS}
)

// Logic is the per-frame update of the race.
type Logic struct {
	cfg        config.RaceConfig
	difficulty *config.DifficultyManager
}

// NewLogic creates the frame logic for a configuration.
func NewLogic(cfg config.RaceConfig) *Logic {
	l := &Logic{}
	l.Apply(cfg)
	return l
}

// Apply swaps the tunables. It takes effect on the next frame.
func (l *Logic) Apply(cfg config.RaceConfig) {
	l.cfg = cfg
	l.difficulty = config.NewDifficultyManager(cfg.Difficulty)
}

// Config returns the active configuration.
func (l *Logic) Config() config.RaceConfig {
	return l.cfg
}

// RoadSpeed returns the scroll speed for the current progress.
func (l *Logic) RoadSpeed(e *engine.Engine, s *GameState) float64 {
	return l.difficulty.Speed(l.cfg.Physics.RoadSpeed, s.Score, e.FrameNumber)
}

// Update runs one frame. Once the race is lost it does nothing.
func (l *Logic) Update(e *engine.Engine, s *GameState) {
	if s.Lost {
		return
	}

	dt := e.Delta
	w, h := e.Window.X, e.Window.Y
	speed := l.RoadSpeed(e, s)

	for _, line := range e.SpritesOf(engine.KindRoadline) {
		line.Translation.X -= speed * dt
		if line.Translation.X <= -w/2 {
			line.Translation.X += w
		}
	}

	for _, obstacle := range e.SpritesOf(engine.KindObstacle) {
		obstacle.Translation.X -= speed * dt
		if obstacle.Translation.X <= -w/2 {
			l.respawn(e, obstacle)
			s.Score++
		}
	}

	for _, ev := range e.DrainCollisions() {
		if ev.State != engine.CollisionBegin || !ev.Pair.Contains(PlayerName) {
			continue
		}
		for _, name := range ev.Pair {
			if sprite, ok := e.LookupSprite(name); ok && sprite.Kind == engine.KindObstacle {
				l.respawn(e, sprite)
			}
		}
		if s.Health > 0 {
			s.Health--
		}
		e.Text(HealthLabel).Value = healthText(s.Health)
		if s.Health == 0 {
			s.Lost = true
		}
		l.playSFX(e, l.cfg.Audio.Impact, l.cfg.Audio.ImpactVolume)
	}

	player := e.Sprite(PlayerName)
	player.Rotation = 0
	move := l.cfg.Physics.MovementSpeed * dt
	if e.Keyboard.PressedAny(upKeys...) && player.Translation.Y <= h/2 {
		player.Translation.Y += move
		player.Rotation = l.cfg.Physics.Tilt
	}
	if e.Keyboard.PressedAny(downKeys...) && player.Translation.Y >= -h/2 {
		player.Translation.Y -= move
		player.Rotation = -l.cfg.Physics.Tilt
	}

	if s.Lost {
		if l.cfg.Audio.Enabled {
			e.Audio.StopMusic()
		}
		l.playSFX(e, l.cfg.Audio.Jingle, l.cfg.Audio.JingleVolume)
		e.AddText(GameOverLabel, "Game Over").FontSize = GameOverFontSize
	}
}

// respawn moves an obstacle off-screen to the right at a random height.
func (l *Logic) respawn(e *engine.Engine, s *engine.Sprite) {
	w, h := e.Window.X, e.Window.Y
	s.Translation.X = e.RandomRange(w*l.cfg.Obstacles.SpawnMin, w*l.cfg.Obstacles.SpawnMax)
	s.Translation.Y = e.RandomRange(-h/2, h/2)
}

func (l *Logic) playSFX(e *engine.Engine, name string, volume float64) {
	if !l.cfg.Audio.Enabled || name == "" {
		return
	}
	e.Audio.PlaySFX(engine.SfxPreset(name), volume)
}

func healthText(health uint) string {
	return fmt.Sprintf("Health: %d", health)
}
