// Package engine is the host the race logic runs on: named sprite and text
// registries, a per-frame collision event queue, a keyboard snapshot, frame
// timing, window dimensions and audio commands. Frontends own an Engine
// through a Game and render whatever the logic leaves in the registries.
package engine

import (
	"fmt"
	"math/rand"

	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/road-racer/internal/core"
)

// Engine is the frame context handed to logic functions.
// It is owned by a single Game and never shared between goroutines.
type Engine struct {
	Delta          float64   // Seconds since the previous frame
	TimeSinceStart float64   // Seconds since the world was built
	FrameNumber    uint64    // Frames stepped since the world was built
	Window         cp.Vector // Window dimensions in world units
	Keyboard       core.KeyboardState
	Audio          AudioCommands
	Rand           *rand.Rand

	sprites    map[string]*Sprite
	spriteList []*Sprite
	texts      map[string]*Text
	textList   []*Text
	collisions []CollisionEvent
}

// New creates an empty engine for a window of the given size.
func New(window cp.Vector, seed int64) *Engine {
	return &Engine{
		Window:   window,
		Keyboard: core.KeySet{},
		Audio:    NopAudio{},
		Rand:     rand.New(rand.NewSource(seed)),
		sprites:  make(map[string]*Sprite),
		texts:    make(map[string]*Text),
	}
}

// AddSprite creates a sprite at the origin with scale 1 and returns it for
// further setup. Adding a name twice replaces the previous sprite in place.
func (e *Engine) AddSprite(name string, kind Kind, preset SpritePreset) *Sprite {
	s := &Sprite{Name: name, Kind: kind, Preset: preset, Scale: 1}
	if old, ok := e.sprites[name]; ok {
		for i, existing := range e.spriteList {
			if existing == old {
				e.spriteList[i] = s
				break
			}
		}
	} else {
		e.spriteList = append(e.spriteList, s)
	}
	e.sprites[name] = s
	return s
}

// Sprite returns a well-known sprite. A missing sprite is a programming
// error and panics.
func (e *Engine) Sprite(name string) *Sprite {
	s, ok := e.sprites[name]
	if !ok {
		panic(fmt.Sprintf("engine: unknown sprite %q", name))
	}
	return s
}

// LookupSprite returns a sprite if it exists.
func (e *Engine) LookupSprite(name string) (*Sprite, bool) {
	s, ok := e.sprites[name]
	return s, ok
}

// Sprites returns every sprite in creation order.
func (e *Engine) Sprites() []*Sprite {
	return e.spriteList
}

// SpritesOf returns the sprites of one kind in creation order.
func (e *Engine) SpritesOf(kind Kind) []*Sprite {
	var out []*Sprite
	for _, s := range e.spriteList {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}

// AddText creates a label with the default font size. Adding a name twice
// overwrites the previous label.
func (e *Engine) AddText(name, value string) *Text {
	t := &Text{Name: name, Value: value, FontSize: DefaultFontSize}
	if old, ok := e.texts[name]; ok {
		for i, existing := range e.textList {
			if existing == old {
				e.textList[i] = t
				break
			}
		}
	} else {
		e.textList = append(e.textList, t)
	}
	e.texts[name] = t
	return t
}

// Text returns a well-known label. A missing label panics.
func (e *Engine) Text(name string) *Text {
	t, ok := e.texts[name]
	if !ok {
		panic(fmt.Sprintf("engine: unknown text %q", name))
	}
	return t
}

// LookupText returns a label if it exists.
func (e *Engine) LookupText(name string) (*Text, bool) {
	t, ok := e.texts[name]
	return t, ok
}

// Texts returns every label in creation order.
func (e *Engine) Texts() []*Text {
	return e.textList
}

// PushCollision queues a collision event for the current frame.
func (e *Engine) PushCollision(ev CollisionEvent) {
	e.collisions = append(e.collisions, ev)
}

// DrainCollisions returns the queued events and empties the queue.
func (e *Engine) DrainCollisions() []CollisionEvent {
	events := e.collisions
	e.collisions = nil
	return events
}

// RandomRange returns a uniformly random value in [lo, hi).
func (e *Engine) RandomRange(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + e.Rand.Float64()*(hi-lo)
}
