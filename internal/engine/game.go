package engine

import (
	"time"

	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/road-racer/internal/core"
)

// LogicFunc runs once per frame with the engine and the persistent state.
type LogicFunc[S any] func(e *Engine, state *S)

// SetupFunc builds the initial world on a fresh engine.
type SetupFunc func(e *Engine)

// Game drives an Engine: it builds the world, detects collisions and runs
// the registered logic functions once per frame in registration order.
type Game[S any] struct {
	window   cp.Vector
	audio    AudioCommands
	initial  S
	state    S
	setup    SetupFunc
	logic    []LogicFunc[S]
	engine   *Engine
	detector *CollisionDetector
}

// NewGame creates a game for a window of the given size. The initial state
// is copied into the live state on every Reset.
func NewGame[S any](window cp.Vector, initial S) *Game[S] {
	return &Game[S]{
		window:   window,
		audio:    NopAudio{},
		initial:  initial,
		detector: NewCollisionDetector(),
	}
}

// SetAudio selects the audio backend for this and future worlds.
func (g *Game[S]) SetAudio(a AudioCommands) {
	if a == nil {
		a = NopAudio{}
	}
	g.audio = a
	if g.engine != nil {
		g.engine.Audio = a
	}
}

// OnSetup registers the world builder that Reset runs.
func (g *Game[S]) OnSetup(fn SetupFunc) {
	g.setup = fn
}

// AddLogic appends a per-frame logic function.
func (g *Game[S]) AddLogic(fn LogicFunc[S]) {
	g.logic = append(g.logic, fn)
}

// Reset discards the current world and state and builds a new one.
func (g *Game[S]) Reset(seed int64) {
	g.engine = New(g.window, seed)
	g.engine.Audio = g.audio
	g.state = g.initial
	g.detector.Reset()
	if g.setup != nil {
		g.setup(g.engine)
	}
}

// Step advances the world by one frame of dt seconds.
func (g *Game[S]) Step(dt float64, kb core.KeyboardState) {
	if g.engine == nil {
		g.Reset(time.Now().UnixNano())
	}
	e := g.engine
	e.Delta = dt
	e.TimeSinceStart += dt
	e.FrameNumber++
	if kb == nil {
		kb = core.KeySet{}
	}
	e.Keyboard = kb

	g.detector.Detect(e)
	for _, fn := range g.logic {
		fn(e, &g.state)
	}
}

// Engine returns the current frame context. Nil before the first Reset.
func (g *Game[S]) Engine() *Engine {
	return g.engine
}

// State returns the live persistent state.
func (g *Game[S]) State() *S {
	return &g.state
}

// Window returns the window dimensions the game was created with.
func (g *Game[S]) Window() cp.Vector {
	return g.window
}
