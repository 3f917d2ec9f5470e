package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/road-racer/internal/core"
)

// KeyMapper translates Bubble Tea key messages to race keys and actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey returns the steering key held by msg and the control action it
// requests. Either may be empty.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.Key, core.Action) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.KeyUnknown, core.ActionQuit
	case "ctrl+s":
		return core.KeyUnknown, core.ActionScreenshot
	case "up":
		return core.KeyUp, core.ActionNone
	case "w":
		return core.KeyW, core.ActionNone
	case "down":
		return core.KeyDown, core.ActionNone
	case "s":
		return core.KeyS, core.ActionNone
	case "p":
		return core.KeyP, core.ActionPause
	case "esc":
		return core.KeyEscape, core.ActionBack
	case "r":
		return core.KeyR, core.ActionRestart
	case "b":
		return core.KeyUnknown, core.ActionBack
	case "enter":
		return core.KeyEnter, core.ActionNone
	case " ":
		return core.KeySpace, core.ActionNone
	}
	return core.KeyUnknown, core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab", "h":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
