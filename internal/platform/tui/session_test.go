package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/road-racer/internal/config"
)

func sendSession(m SessionModel, msg tea.Msg) SessionModel {
	next, _ := m.Update(msg)
	return next.(SessionModel)
}

func TestSessionMenuToRaceAndBack(t *testing.T) {
	opts := testOptions(t)
	opts.Standalone = true
	m := NewSessionModel(opts)
	require.Equal(t, viewMenu, m.view)

	// Second item is Easy.
	m = sendSession(m, tea.KeyMsg{Type: tea.KeyDown})
	m = sendSession(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, viewRace, m.view)
	assert.Equal(t, config.DifficultyEasy.Mode(), m.race.mode)
	assert.Equal(t, uint(7), m.race.State().Health)
	assert.False(t, m.race.opts.Standalone)

	m = sendSession(m, TickMsg{Race: m.race.id})
	forceCrash(m.race, 2)
	m = sendSession(m, TickMsg{Race: m.race.id})
	require.True(t, m.race.State().Lost)

	m = sendSession(m, runeKey("b"))
	assert.Equal(t, viewMenu, m.view)
	assert.False(t, m.quitting)
	assert.Contains(t, m.View(), "R O A D")
}

func TestSessionScoreboard(t *testing.T) {
	m := NewSessionModel(testOptions(t))

	m = sendSession(m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, viewScores, m.view)
	assert.Contains(t, m.View(), "HIGH SCORES")

	m = sendSession(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, viewMenu, m.view)
}

func TestSessionQuitFromMenu(t *testing.T) {
	m := NewSessionModel(testOptions(t))
	m = sendSession(m, runeKey("q"))
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

func TestSessionTracksWindowSize(t *testing.T) {
	m := NewSessionModel(testOptions(t))
	m = sendSession(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m = sendSession(m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, viewRace, m.view)
	assert.Equal(t, 120, m.race.screen.Width())
	assert.Equal(t, 40, m.race.screen.Height())
}
