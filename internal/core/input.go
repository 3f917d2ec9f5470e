package core

import "time"

// Key identifies a physical key, independent of the frontend that reports it.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyS
	KeyD
	KeySpace
	KeyEnter
	KeyEscape
	KeyP
	KeyR
	KeyQ
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyW:
		return "W"
	case KeyA:
		return "A"
	case KeyS:
		return "S"
	case KeyD:
		return "D"
	case KeySpace:
		return "Space"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Escape"
	case KeyP:
		return "P"
	case KeyR:
		return "R"
	case KeyQ:
		return "Q"
	default:
		return "Unknown"
	}
}

// KeyboardState is a per-frame snapshot of which keys are held down.
type KeyboardState interface {
	// PressedAny returns true if at least one of the given keys is held.
	PressedAny(keys ...Key) bool
}

// KeySet is a KeyboardState backed by explicit press/release reports.
// Frontends that can observe key releases (the window) use it directly.
type KeySet map[Key]bool

// PressedAny implements KeyboardState.
func (s KeySet) PressedAny(keys ...Key) bool {
	for _, k := range keys {
		if s[k] {
			return true
		}
	}
	return false
}

// DefaultHoldWindow is how long a key stays held after an auto-repeat
// report when the frontend never reports releases. It must exceed the
// terminal's repeat interval so a held key doesn't flicker between frames.
const DefaultHoldWindow = 120 * time.Millisecond

// DefaultRepeatDelay covers the pause terminals leave between the first
// press and the first auto-repeat, usually 250 to 500ms.
const DefaultRepeatDelay = 500 * time.Millisecond

// HeldKeys emulates a held-key snapshot on top of press-only input.
// Terminals deliver a key message on press and on every auto-repeat but
// never on release. A fresh press is held for the repeat delay; each
// report that arrives while the key is still held is a repeat and keeps
// it for the shorter hold window.
type HeldKeys struct {
	window    time.Duration
	delay     time.Duration
	remaining map[Key]time.Duration
}

// NewHeldKeys creates a snapshot with the given hold window and repeat
// delay. Non-positive values select the defaults. The delay is never
// shorter than the window.
func NewHeldKeys(window, delay time.Duration) *HeldKeys {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	if delay <= 0 {
		delay = DefaultRepeatDelay
	}
	return &HeldKeys{
		window:    window,
		delay:     max(delay, window),
		remaining: make(map[Key]time.Duration),
	}
}

// Press marks a key as held: for the repeat delay on a fresh press, for
// the hold window on a repeat.
func (h *HeldKeys) Press(k Key) {
	if k == KeyUnknown {
		return
	}
	if _, held := h.remaining[k]; held {
		h.remaining[k] = h.window
		return
	}
	h.remaining[k] = h.delay
}

// Release drops a key immediately.
func (h *HeldKeys) Release(k Key) {
	delete(h.remaining, k)
}

// Advance ages every held key by dt and forgets the expired ones.
func (h *HeldKeys) Advance(dt time.Duration) {
	for k, left := range h.remaining {
		left -= dt
		if left <= 0 {
			delete(h.remaining, k)
			continue
		}
		h.remaining[k] = left
	}
}

// Clear releases every key.
func (h *HeldKeys) Clear() {
	for k := range h.remaining {
		delete(h.remaining, k)
	}
}

// PressedAny implements KeyboardState.
func (h *HeldKeys) PressedAny(keys ...Key) bool {
	for _, k := range keys {
		if _, ok := h.remaining[k]; ok {
			return true
		}
	}
	return false
}

// Action represents a platform-level command, abstracted from physical keys.
// Steering is read from the KeyboardState; actions drive the frontend itself.
type Action int

const (
	ActionNone       Action = iota
	ActionPause             // P - pause/unpause
	ActionRestart           // R - restart after game over
	ActionBack              // B, Escape - leave the current view
	ActionQuit              // Q, Ctrl+C - exit
	ActionScreenshot        // Ctrl+S - dump the screen to a file
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}
