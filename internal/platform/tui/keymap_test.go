package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/road-racer/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		key    core.Key
		action core.Action
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp, core.ActionNone},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.KeyDown, core.ActionNone},
		{"w", runeKey("w"), core.KeyW, core.ActionNone},
		{"s", runeKey("s"), core.KeyS, core.ActionNone},
		{"pause", runeKey("p"), core.KeyP, core.ActionPause},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, core.KeyEscape, core.ActionBack},
		{"restart", runeKey("r"), core.KeyR, core.ActionRestart},
		{"quit", runeKey("q"), core.KeyUnknown, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.KeyUnknown, core.ActionQuit},
		{"screenshot", tea.KeyMsg{Type: tea.KeyCtrlS}, core.KeyUnknown, core.ActionScreenshot},
		{"unbound", runeKey("x"), core.KeyUnknown, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, a := km.MapKey(tt.msg)
			if k != tt.key {
				t.Errorf("key: expected %v, got %v", tt.key, k)
			}
			if a != tt.action {
				t.Errorf("action: expected %v, got %v", tt.action, a)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey("q"), MenuActionQuit},
		{runeKey("z"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.msg.String(), tt.want, got)
		}
	}
}
