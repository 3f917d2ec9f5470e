package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/road-racer/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a race.
After a race ends, press B to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Start race
  Tab/H        - High scores
  Q            - Quit

Examples:
  racer menu
  racer menu --fps 30
  racer menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	addRaceFlags(menuCmd, false)
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := fileLogger()
	defer closeLog()

	cfg, _, err := loadRace()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	speaker := startAudio(cfg, logger)
	defer speaker.Close()
	feed, stopWatch := watchConfig(logger)
	defer stopWatch()

	width, height := terminalSize()

	for {
		result, err := tui.RunMenu(store, width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		width, height = result.Width, result.Height

		if result.Quit {
			return
		}

		if result.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, width, height)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		rt := runtimeConfig(width, height)
		if rt.Seed == 0 {
			rt.Seed = time.Now().UnixNano()
		}
		logger.Info("race started", "mode", result.Preset.Mode(), "player", flagPlayer)
		backToMenu, runErr := tui.Run(tui.Options{
			Race:    cfg,
			Preset:  result.Preset,
			Runtime: rt,
			Player:  flagPlayer,
			Store:   store,
			Audio:   speaker,
			Feed:    feed,
			Logger:  logger,
		})
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running race: %v\n", runErr)
			return
		}
		if !backToMenu {
			return
		}
	}
}
