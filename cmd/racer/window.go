package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/road-racer/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Race in a desktop window",
	Long: `Open the race in a 500x300 desktop window.

Controls:
  Up/W       - Steer up
  Down/S     - Steer down
  P          - Pause
  R          - Restart (after game over)
  Esc/Q      - Quit

Examples:
  racer window
  racer window --difficulty normal --mute`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	addRaceFlags(windowCmd, true)
}

func runWindow(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr, "racer")

	cfg, preset, err := loadRace()
	if err != nil {
		logger.Fatal("cannot load config", "error", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	speaker := startAudio(cfg, logger)
	defer speaker.Close()
	feed, stopWatch := watchConfig(logger)
	defer stopWatch()

	logger.Info("race started", "mode", preset.Mode(), "player", flagPlayer)
	runErr := window.Run(window.Options{
		Race:    cfg,
		Preset:  preset,
		Runtime: runtimeConfig(int(cfg.Window.Width), int(cfg.Window.Height)),
		Player:  flagPlayer,
		Store:   store,
		Audio:   speaker,
		Feed:    feed,
		Logger:  logger,
	})
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running race: %v\n", runErr)
		os.Exit(1)
	}
}
