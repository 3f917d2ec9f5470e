// racer is a small arcade driving game: dodge the obstacles scrolling down
// the road and keep your car in one piece.
//
// Usage:
//
//	racer play               - Race in the terminal
//	racer menu               - Pick a difficulty from a menu, race, repeat
//	racer window             - Race in a desktop window
//	racer serve              - Start SSH server for remote play
//	racer scores [mode]      - Show high scores
//	racer config             - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible races
//	--db <path>           - Set database path (default: ~/.racer/scores.db)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/road-racer/internal/audio"
	"github.com/vovakirdan/road-racer/internal/config"
	"github.com/vovakirdan/road-racer/internal/core"
	"github.com/vovakirdan/road-racer/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	// Race flags, shared by play, menu and window
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagPlayer     string
	flagWatch      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "racer",
	Short: "Road Racer - dodge the traffic cones",
	Long: `Road Racer is an arcade driving game for the terminal and the desktop.
Steer up and down to dodge the obstacles coming at you. Every hit costs
one health; the race ends when none is left.

Available commands:
  play     - Race in the terminal
  menu     - Interactive difficulty picker
  window   - Race in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the default configuration

Examples:
  racer play
  racer play --difficulty hard
  racer window --mute
  racer serve --ssh :2222
  racer scores race_hard`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.racer/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// addRaceFlags registers the flags that shape a single race.
func addRaceFlags(cmd *cobra.Command, withDifficulty bool) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom race config YAML")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable music and sound effects")
	cmd.Flags().StringVar(&flagPlayer, "player", defaultPlayer(), "Name saved with your scores")
	cmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
	if withDifficulty {
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	}
}

func defaultPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// fileLogger logs to ~/.racer/racer.log so the terminal stays free for the
// race. The returned closer must be called on exit.
func fileLogger() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	dir := filepath.Join(home, ".racer")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "racer.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	return newLogger(f, "racer"), func() { f.Close() }
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	def := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return def.ScreenW, def.ScreenH
}

func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// loadRace reads the race configuration and the difficulty preset from the
// flags. --mute switches audio off in the loaded config.
func loadRace() (config.RaceConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.RaceConfig{}, "", err
	}
	cfg, err := config.LoadRace(flagConfig)
	if err != nil {
		return cfg, "", err
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
	return cfg, preset, nil
}

// watchConfig starts a watcher on the file the race was loaded from and
// returns a feed for the races to subscribe to. Without --watch the feed is
// nil. The returned func stops watching.
func watchConfig(logger *log.Logger) (*config.Feed, func()) {
	if !flagWatch {
		return nil, func() {}
	}
	path := config.ResolvePath(flagConfig)
	if path == "" {
		path = config.UserConfigPath()
	}
	w, err := config.Watch(path)
	if err != nil {
		logger.Warn("config watching disabled", "error", err)
		return nil, func() {}
	}
	logger.Info("watching config", "path", path)
	return config.NewFeed(w), func() { w.Close() }
}

// openStore opens the scores database. Races still run without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// startAudio opens the speaker unless the race is muted. A manager that
// failed to start stays silent.
func startAudio(cfg config.RaceConfig, logger *log.Logger) *audio.Manager {
	mgr := audio.NewManager()
	if !cfg.Audio.Enabled {
		return mgr
	}
	if err := mgr.Init(); err != nil {
		logger.Warn("audio disabled", "error", err)
	}
	if err := mgr.Ready(); err != nil {
		logger.Debug("audio silent", "error", err)
	} else {
		logger.Info("audio ready", "music", cfg.Audio.Music)
	}
	return mgr
}
