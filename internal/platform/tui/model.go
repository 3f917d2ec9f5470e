package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/road-racer/internal/config"
	"github.com/vovakirdan/road-racer/internal/core"
	"github.com/vovakirdan/road-racer/internal/engine"
	"github.com/vovakirdan/road-racer/internal/race"
	"github.com/vovakirdan/road-racer/internal/storage"
)

// statusFrames is how long a status message stays in the HUD.
const statusFrames = 120

var opposite = map[core.Key][]core.Key{
	core.KeyUp:   {core.KeyDown, core.KeyS},
	core.KeyW:    {core.KeyDown, core.KeyS},
	core.KeyDown: {core.KeyUp, core.KeyW},
	core.KeyS:    {core.KeyUp, core.KeyW},
}

// Options configures a race session.
type Options struct {
	Race        config.RaceConfig
	Preset      config.DifficultyPreset
	Runtime     core.RuntimeConfig
	Player      string
	Store       *storage.Store       // Optional
	Audio       engine.AudioCommands // Optional
	Feed        *config.Feed         // Optional, enables hot reload
	Logger      *log.Logger          // Optional
	HoldWindow  time.Duration        // How long a key counts as held after a repeat
	RepeatDelay time.Duration        // How long a fresh press counts as held
	Standalone  bool                 // Back quits instead of returning to a menu
	ShotDir     string               // Screenshot directory, defaults to ~/.racer/screenshots
}

// ConfigReloadedMsg carries a configuration read after the file changed.
type ConfigReloadedMsg struct {
	Config config.RaceConfig
}

// ConfigErrorMsg reports a config file that failed to reload.
type ConfigErrorMsg struct {
	Err error
}

// Model is the Bubble Tea model for one race.
type Model struct {
	id         uint64
	race       *race.Race
	opts       Options
	screen     *core.Screen
	keys       *core.HeldKeys
	keyMapper  *KeyMapper
	sub        *config.Subscription
	logger     *log.Logger
	mode       string
	highScore  int
	paused     bool
	quitting   bool
	backToMenu bool
	scoreSaved bool
	status     string
	statusTTL  int
}

// NewModel creates a race ready to tick.
func NewModel(opts Options) Model {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = 60
	}
	if opts.Runtime.ScreenW <= 0 || opts.Runtime.ScreenH <= 0 {
		def := core.DefaultConfig()
		opts.Runtime.ScreenW, opts.Runtime.ScreenH = def.ScreenW, def.ScreenH
	}
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// Subscribe before reading the latest config so no reload falls between.
	sub := opts.Feed.Subscribe()
	opts.Race = opts.Feed.Latest(opts.Race)
	cfg := opts.Race
	config.ApplyPreset(&cfg, opts.Preset)
	r := race.New(cfg)
	r.SetAudio(opts.Audio)
	r.Reset(opts.Runtime.Seed)

	m := Model{
		id:        nextRaceID(),
		race:      r,
		opts:      opts,
		screen:    core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		keys:      core.NewHeldKeys(opts.HoldWindow, opts.RepeatDelay),
		keyMapper: NewKeyMapper(),
		sub:       sub,
		logger:    logger,
		mode:      opts.Preset.Mode(),
	}
	m.highScore = m.loadHighScore()
	return m
}

func (m Model) loadHighScore() int {
	if m.opts.Store == nil {
		return 0
	}
	high, err := m.opts.Store.HighScore(m.mode)
	if err != nil {
		m.logger.Warn("could not load high score", "mode", m.mode, "error", err)
		return 0
	}
	return high
}

// Init starts the tick loop and, when watching, the config listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.opts.Runtime.TickRate, m.id), m.waitForConfig())
}

// waitForConfig blocks until the feed reports a reload or an error. It
// yields nothing once the model is closed.
func (m Model) waitForConfig() tea.Cmd {
	sub := m.sub
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		r, ok := sub.Next()
		switch {
		case !ok:
			return nil
		case r.Err != nil:
			return ConfigErrorMsg{Err: r.Err}
		default:
			return ConfigReloadedMsg{Config: r.Config}
		}
	}
}

// Close releases the config subscription. The model stops listening for
// reloads; later races pick them up from the feed.
func (m Model) Close() {
	m.sub.Close()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Race != m.id {
			return m, nil
		}
		return m.handleTick()

	case ConfigReloadedMsg:
		cfg := msg.Config
		config.ApplyPreset(&cfg, m.opts.Preset)
		m.race.Reconfigure(cfg)
		m.logger.Info("config reloaded", "road_speed", cfg.Physics.RoadSpeed, "movement_speed", cfg.Physics.MovementSpeed)
		m.opts.Race = msg.Config
		m.setStatus("config reloaded")
		return m, m.waitForConfig()

	case ConfigErrorMsg:
		m.logger.Warn("config reload failed", "error", msg.Err)
		m.setStatus("config error")
		return m, m.waitForConfig()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k, action := m.keyMapper.MapKey(msg)
	lost := m.race.State().Lost

	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.Close()
		return m, tea.Quit

	case core.ActionScreenshot:
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
			m.setStatus("screenshot failed")
		} else {
			m.logger.Info("screenshot saved", "path", path)
			m.setStatus("screenshot saved")
		}
		return m, nil

	case core.ActionPause:
		if !lost {
			m.paused = !m.paused
			m.keys.Clear()
		}
		return m, nil

	case core.ActionRestart:
		if lost {
			m.restart()
		}
		return m, nil

	case core.ActionBack:
		if !lost && !m.paused {
			m.paused = true
			m.keys.Clear()
			return m, nil
		}
		if m.opts.Standalone {
			m.quitting = true
		} else {
			m.backToMenu = true
		}
		m.Close()
		return m, tea.Quit
	}

	if !m.paused && !lost {
		// Steering the other way lets go of the held direction at once.
		for _, o := range opposite[k] {
			m.keys.Release(o)
		}
		m.keys.Press(k)
	}
	return m, nil
}

// handleTick advances the race by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.statusTTL > 0 {
		m.statusTTL--
		if m.statusTTL == 0 {
			m.status = ""
		}
	}

	if !m.paused {
		m.keys.Advance(tickInterval(m.opts.Runtime.TickRate))
		m.race.Step(m.opts.Runtime.FrameSeconds(), m.keys)
		m.saveScore()
	}

	return m, tickCmd(m.opts.Runtime.TickRate, m.id)
}

// saveScore records the race once it is lost. Zero scores are not kept.
func (m *Model) saveScore() {
	st := m.race.State()
	if !st.Lost || m.scoreSaved {
		return
	}
	m.scoreSaved = true
	if st.Score == 0 || m.opts.Store == nil {
		return
	}
	if _, err := m.opts.Store.SaveScore(m.mode, m.opts.Player, int(st.Score), int(st.Health)); err != nil {
		m.logger.Warn("could not save score", "mode", m.mode, "error", err)
		return
	}
	m.logger.Info("score saved", "mode", m.mode, "player", m.opts.Player, "score", st.Score)
	if int(st.Score) > m.highScore {
		m.highScore = int(st.Score)
	}
}

// restart builds a fresh world with a new seed.
func (m *Model) restart() {
	m.opts.Runtime.Seed = time.Now().UnixNano()
	m.race.Reset(m.opts.Runtime.Seed)
	m.keys.Clear()
	m.paused = false
	m.scoreSaved = false
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusTTL = statusFrames
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.draw()

	dir := m.opts.ShotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot find home directory: %w", err)
		}
		dir = filepath.Join(home, ".racer", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.mode, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

func (m *Model) draw() {
	DrawRace(m.screen, m.race.Engine(), *m.race.State(), HUD{
		Mode:      m.mode,
		Player:    m.opts.Player,
		HighScore: m.highScore,
		Paused:    m.paused,
		Status:    m.status,
	})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen)
}

// State returns the live race state.
func (m Model) State() race.GameState {
	return *m.race.State()
}

// Paused reports whether the simulation is frozen.
func (m Model) Paused() bool {
	return m.paused
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one race in the terminal.
// Returns true if the player asked to go back to the menu.
func Run(opts Options) (backToMenu bool, err error) {
	m := NewModel(opts)
	defer m.Close()
	p := tea.NewProgram(m, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	done, ok := final.(Model)
	if !ok {
		return false, nil
	}
	return done.BackToMenu(), nil
}
