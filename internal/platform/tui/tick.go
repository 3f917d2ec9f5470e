// Package tui runs the race in a terminal with Bubble Tea, locally or over
// SSH. It owns the tick loop, key mapping, rendering and score saving.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Race identifies the
// model that scheduled it so a stale tick cannot drive a newer race.
type TickMsg struct {
	Time time.Time
	Race uint64
}

var raceIDs atomic.Uint64

func nextRaceID() uint64 {
	return raceIDs.Add(1)
}

// tickInterval returns the frame duration for a tick rate.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, race uint64) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Race: race}
	})
}
