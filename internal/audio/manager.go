// Package audio plays the race's music and sound effects through the
// system speaker. Every sound is synthesized, so no asset files ship with
// the binary. A Manager that failed to open the speaker stays silent.
package audio

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/road-racer/internal/engine"
)

const sampleRate = beep.SampleRate(48000)

var (
	// ErrNotInitialized is returned when the speaker was never opened.
	ErrNotInitialized = errors.New("audio: not initialized")
	// ErrUnknownPreset is wrapped when a preset has no synthesized sound.
	ErrUnknownPreset = errors.New("audio: unknown preset")
)

// Manager implements engine.AudioCommands on top of the beep speaker.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool
	lastErr     error
}

var _ engine.AudioCommands = (*Manager)(nil)

// NewManager creates a silent manager. Call Init to open the speaker.
func NewManager() *Manager {
	return &Manager{mixer: &beep.Mixer{}}
}

// Init opens the speaker and starts the mixer.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: open speaker: %w", err)
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Ready reports whether sounds will actually be heard.
func (m *Manager) Ready() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return ErrNotInitialized
	}
	return nil
}

// Err returns the last preset lookup failure, if any.
func (m *Manager) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}

// PlayMusic replaces the background track.
func (m *Manager) PlayMusic(music engine.MusicPreset, volume float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	s, err := NewMusic(music, sampleRate)
	if err != nil {
		m.lastErr = err
		return
	}

	speaker.Lock()
	if m.music != nil {
		m.music.Paused = true
		m.music.Streamer = nil
	}
	m.music = &beep.Ctrl{Streamer: newVolume(s, volume)}
	m.mixer.Add(m.music)
	speaker.Unlock()
}

// PlaySFX plays a one-shot effect on top of the music.
func (m *Manager) PlaySFX(sfx engine.SfxPreset, volume float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	s, err := NewSound(sfx, sampleRate)
	if err != nil {
		m.lastErr = err
		return
	}

	speaker.Lock()
	m.mixer.Add(newVolume(s, volume))
	speaker.Unlock()
}

// StopMusic silences the background track. Effects keep playing.
func (m *Manager) StopMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.music == nil {
		return
	}
	speaker.Lock()
	m.music.Paused = true
	m.music.Streamer = nil
	speaker.Unlock()
	m.music = nil
}

// Close stops every sound and turns the manager silent.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	if m.music != nil {
		m.music.Paused = true
		m.music.Streamer = nil
		m.music = nil
	}
	m.mixer.Clear()
	speaker.Unlock()
	m.initialized = false
}
