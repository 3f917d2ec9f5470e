package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/road-racer/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Race in the terminal",
	Long: `Start a race in the terminal.

Controls:
  Up/W       - Steer up
  Down/S     - Steer down
  P/Esc      - Pause
  R          - Restart (after game over)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - 7 health, starts slow, speeds up as you dodge
  normal - 5 health, starts at 30% difficulty
  hard   - 3 health, starts at 70% difficulty
  fixed  - No progression, constant road speed

Examples:
  racer play
  racer play --difficulty easy
  racer play --config ./my-race.yaml --watch
  racer play --mute --player ann`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addRaceFlags(playCmd, true)
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog := fileLogger()
	defer closeLog()

	cfg, preset, err := loadRace()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := terminalSize()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	speaker := startAudio(cfg, logger)
	defer speaker.Close()
	feed, stopWatch := watchConfig(logger)
	defer stopWatch()

	logger.Info("race started", "mode", preset.Mode(), "player", flagPlayer)
	_, runErr := tui.Run(tui.Options{
		Race:       cfg,
		Preset:     preset,
		Runtime:    runtimeConfig(width, height),
		Player:     flagPlayer,
		Store:      store,
		Audio:      speaker,
		Feed:       feed,
		Logger:     logger,
		Standalone: true,
	})
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running race: %v\n", runErr)
		os.Exit(1)
	}
}
