package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/road-racer/internal/platform/tui"
	"github.com/vovakirdan/road-racer/internal/storage"
)

var (
	flagScoresPlayer string
	flagClearScores  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for a mode.

Modes are "race" for the config file's own settings and race_easy,
race_normal, race_hard or race_fixed for the difficulty presets.
Without a mode, opens the interactive scoreboard in a terminal and
prints a summary of every mode otherwise.

Examples:
  racer scores
  racer scores race_hard
  racer scores race_hard --player ann
  racer scores race_easy --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Only show this player's races")
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete every race of the mode")
}

func runScores(_ *cobra.Command, args []string) {
	if (flagClearScores || flagScoresPlayer != "") && len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: --player and --clear need a mode")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		if flagClearScores {
			err = clearScores(os.Stdout, store, args[0])
		} else {
			err = printTopScores(os.Stdout, store, args[0], flagScoresPlayer)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := terminalSize()
		if _, err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}
	printSummary(store)
}

// printTopScores lists the best races of a mode, or of one player in it.
func printTopScores(w io.Writer, store *storage.Store, mode, player string) error {
	var scores []storage.ScoreEntry
	var err error
	title := mode
	if player != "" {
		scores, err = store.PlayerScores(mode, player, storage.DefaultLimit)
		title = mode + " (" + player + ")"
	} else {
		scores, err = store.TopScores(mode, storage.DefaultLimit)
	}
	if err != nil {
		return fmt.Errorf("cannot retrieve scores: %w", err)
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", title)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'racer play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-12s  %-8s  %-3s  %s\n", "Rank", "Player", "Score", "HP", "Date")
	fmt.Fprintf(w, "  %-4s  %-12s  %-8s  %-3s  %s\n", "----", "------", "-----", "--", "----")
	for i, entry := range scores {
		fmt.Fprintf(w, "  %-4d  %-12s  %-8d  %-3d  %s\n",
			i+1, entry.Player, entry.Score, entry.Health, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d\n", scores[0].Score)
	return nil
}

func clearScores(w io.Writer, store *storage.Store, mode string) error {
	if err := store.ClearScores(mode); err != nil {
		return err
	}
	fmt.Fprintf(w, "Cleared scores for %s\n", mode)
	return nil
}

func printSummary(store *storage.Store) {
	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	modes := make([]string, 0, len(stats))
	for mode := range stats {
		modes = append(modes, mode)
	}
	sort.Strings(modes)

	fmt.Printf("  %-12s  %-6s  %-6s  %-7s  %s\n", "Mode", "Races", "Best", "Average", "Last played")
	for _, mode := range modes {
		s := stats[mode]
		fmt.Printf("  %-12s  %-6d  %-6d  %-7.1f  %s\n",
			s.Mode, s.Races, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
}
