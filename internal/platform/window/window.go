// Package window runs the race in a desktop window with Ebitengine.
package window

import (
	"fmt"
	"image/color"
	"io"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/road-racer/internal/config"
	"github.com/vovakirdan/road-racer/internal/core"
	"github.com/vovakirdan/road-racer/internal/engine"
	"github.com/vovakirdan/road-racer/internal/race"
	"github.com/vovakirdan/road-racer/internal/storage"
)

var roadColor = color.RGBA{R: 70, G: 70, B: 76, A: 255}

// keyBindings maps physical keys to race keys.
var keyBindings = map[ebiten.Key]core.Key{
	ebiten.KeyArrowUp:    core.KeyUp,
	ebiten.KeyArrowDown:  core.KeyDown,
	ebiten.KeyArrowLeft:  core.KeyLeft,
	ebiten.KeyArrowRight: core.KeyRight,
	ebiten.KeyW:          core.KeyW,
	ebiten.KeyA:          core.KeyA,
	ebiten.KeyS:          core.KeyS,
	ebiten.KeyD:          core.KeyD,
	ebiten.KeySpace:      core.KeySpace,
	ebiten.KeyEnter:      core.KeyEnter,
	ebiten.KeyEscape:     core.KeyEscape,
	ebiten.KeyP:          core.KeyP,
	ebiten.KeyR:          core.KeyR,
	ebiten.KeyQ:          core.KeyQ,
}

// Keys builds the held-key snapshot for one frame.
func Keys(pressed func(ebiten.Key) bool) core.KeySet {
	set := core.KeySet{}
	for ek, k := range keyBindings {
		if pressed(ek) {
			set[k] = true
		}
	}
	return set
}

// ActionFor maps the keys that went down this frame to a frontend action.
func ActionFor(justPressed func(ebiten.Key) bool) core.Action {
	switch {
	case justPressed(ebiten.KeyEscape), justPressed(ebiten.KeyQ):
		return core.ActionQuit
	case justPressed(ebiten.KeyP):
		return core.ActionPause
	case justPressed(ebiten.KeyR):
		return core.ActionRestart
	}
	return core.ActionNone
}

// ToScreen converts a world position (origin at the centre, y up) to
// window pixels (origin top-left, y down).
func ToScreen(window, p cp.Vector) (x, y float64) {
	return p.X + window.X/2, window.Y/2 - p.Y
}

// SpriteGeoM places a unit square over the sprite: scaled to its size,
// rotated about its centre and moved to its screen position.
func SpriteGeoM(s *engine.Sprite, window cp.Vector) ebiten.GeoM {
	size := s.Size()
	x, y := ToScreen(window, s.Translation)

	var g ebiten.GeoM
	g.Translate(-0.5, -0.5)
	g.Scale(size.X, size.Y)
	// World rotation is counter-clockwise; the screen's y axis is flipped.
	g.Rotate(-s.Rotation)
	g.Translate(x, y)
	return g
}

// The debug font draws fixed 6x16 pixel glyphs.
const (
	glyphW = 6
	glyphH = 16
)

// LabelSize returns the native pixel size of value in the debug font.
func LabelSize(value string) (w, h int) {
	return max(utf8.RuneCountInString(value), 1) * glyphW, glyphH
}

// LabelGeoM scales a label image of w x h pixels by its font size relative
// to engine.DefaultFontSize and places it: the game-over label centred in
// the window, every other label with its top-left at its translation.
func LabelGeoM(t *engine.Text, window cp.Vector, w, h int) ebiten.GeoM {
	scale := t.FontSize / engine.DefaultFontSize
	if scale <= 0 {
		scale = 1
	}
	var g ebiten.GeoM
	g.Scale(scale, scale)
	if t.Name == race.GameOverLabel {
		g.Translate((window.X-float64(w)*scale)/2, (window.Y-float64(h)*scale)/2)
		return g
	}
	x, y := ToScreen(window, t.Translation)
	g.Translate(x, y)
	return g
}

// Options configures a windowed race.
type Options struct {
	Race    config.RaceConfig
	Preset  config.DifficultyPreset
	Runtime core.RuntimeConfig
	Player  string
	Store   *storage.Store       // Optional
	Audio   engine.AudioCommands // Optional
	Feed    *config.Feed         // Optional, enables hot reload
	Logger  *log.Logger          // Optional
}

// Game implements ebiten.Game around one race.
type Game struct {
	race       *race.Race
	opts       Options
	logger     *log.Logger
	mode       string
	highScore  int
	paused     bool
	scoreSaved bool
	sub        *config.Subscription
	pixel      *ebiten.Image
	labels     map[string]*ebiten.Image
}

// New creates a race ready to run in a window.
func New(opts Options) *Game {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = ebiten.DefaultTPS
	}
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sub := opts.Feed.Subscribe()
	opts.Race = opts.Feed.Latest(opts.Race)
	cfg := opts.Race
	config.ApplyPreset(&cfg, opts.Preset)
	r := race.New(cfg)
	r.SetAudio(opts.Audio)
	r.Reset(opts.Runtime.Seed)

	g := &Game{
		race:   r,
		opts:   opts,
		logger: logger,
		mode:   opts.Preset.Mode(),
		sub:    sub,
	}
	if opts.Store != nil {
		if high, err := opts.Store.HighScore(g.mode); err == nil {
			g.highScore = high
		} else {
			logger.Warn("could not load high score", "mode", g.mode, "error", err)
		}
	}
	return g
}

// Update advances the race by one tick.
func (g *Game) Update() error {
	g.pollConfig()

	lost := g.race.State().Lost
	switch ActionFor(inpututil.IsKeyJustPressed) {
	case core.ActionQuit:
		return ebiten.Termination
	case core.ActionPause:
		if !lost {
			g.paused = !g.paused
		}
	case core.ActionRestart:
		if lost {
			g.restart()
		}
	}

	if g.paused {
		return nil
	}
	g.step(1/float64(ebiten.TPS()), Keys(ebiten.IsKeyPressed))
	return nil
}

func (g *Game) step(dt float64, kb core.KeyboardState) {
	g.race.Step(dt, kb)
	g.saveScore()
}

// pollConfig applies a reloaded configuration without blocking the frame.
func (g *Game) pollConfig() {
	if g.sub == nil {
		return
	}
	select {
	case r := <-g.sub.C():
		if r.Err != nil {
			g.logger.Warn("config reload failed", "error", r.Err)
			return
		}
		cfg := r.Config
		config.ApplyPreset(&cfg, g.opts.Preset)
		g.race.Reconfigure(cfg)
		g.logger.Info("config reloaded", "road_speed", cfg.Physics.RoadSpeed)
	default:
	}
}

// Close releases the config subscription.
func (g *Game) Close() {
	g.sub.Close()
}

func (g *Game) saveScore() {
	st := g.race.State()
	if !st.Lost || g.scoreSaved {
		return
	}
	g.scoreSaved = true
	if st.Score == 0 || g.opts.Store == nil {
		return
	}
	if _, err := g.opts.Store.SaveScore(g.mode, g.opts.Player, int(st.Score), int(st.Health)); err != nil {
		g.logger.Warn("could not save score", "mode", g.mode, "error", err)
		return
	}
	g.logger.Info("score saved", "mode", g.mode, "player", g.opts.Player, "score", st.Score)
	g.highScore = max(g.highScore, int(st.Score))
}

func (g *Game) restart() {
	g.opts.Runtime.Seed = time.Now().UnixNano()
	g.race.Reset(g.opts.Runtime.Seed)
	g.paused = false
	g.scoreSaved = false
}

// Draw renders the world as coloured rectangles.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(roadColor)
	if g.pixel == nil {
		g.pixel = ebiten.NewImage(1, 1)
		g.pixel.Fill(color.White)
	}

	e := g.race.Engine()
	window := e.Window

	sprites := append([]*engine.Sprite(nil), e.Sprites()...)
	sort.SliceStable(sprites, func(i, j int) bool { return sprites[i].Layer < sprites[j].Layer })
	for _, s := range sprites {
		op := &ebiten.DrawImageOptions{GeoM: SpriteGeoM(s, window)}
		op.ColorScale.ScaleWithColor(s.Preset.Info().RGBA)
		screen.DrawImage(g.pixel, op)
	}

	for _, t := range e.Texts() {
		if t.Value == "" {
			continue
		}
		img := g.label(t.Value)
		b := img.Bounds()
		op := &ebiten.DrawImageOptions{GeoM: LabelGeoM(t, window, b.Dx(), b.Dy())}
		screen.DrawImage(img, op)
	}

	st := g.race.State()
	hud := fmt.Sprintf("SCORE %d  HI %d", st.Score, max(g.highScore, int(st.Score)))
	switch {
	case st.Lost:
		hud += "  [R] restart  [Esc] quit"
	case g.paused:
		hud += "  PAUSED"
	}
	ebitenutil.DebugPrintAt(screen, hud, 4, 2)
}

// label returns value printed at the debug font's native size, cached.
func (g *Game) label(value string) *ebiten.Image {
	if img, ok := g.labels[value]; ok {
		return img
	}
	if g.labels == nil {
		g.labels = make(map[string]*ebiten.Image)
	}
	w, h := LabelSize(value)
	img := ebiten.NewImage(w, h)
	ebitenutil.DebugPrint(img, value)
	g.labels[value] = img
	return img
}

// Layout keeps the world's logical size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := g.race.Window()
	return int(w.X), int(w.Y)
}

// State returns the live race state.
func (g *Game) State() race.GameState {
	return *g.race.State()
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g := New(opts)
	defer g.Close()
	w := g.race.Window()

	ebiten.SetWindowSize(int(w.X), int(w.Y))
	ebiten.SetWindowTitle(opts.Race.Window.Title)
	ebiten.SetTPS(g.opts.Runtime.TickRate)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
