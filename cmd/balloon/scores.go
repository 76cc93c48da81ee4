package main

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/balloon-puff/internal/config"
	"github.com/vovakirdan/balloon-puff/internal/platform/tui"
	"github.com/vovakirdan/balloon-puff/internal/storage"
)

var (
	flagScoresDifficulty string
	flagInteractive      bool
	flagLimit            int
	flagRunID            string
	flagClear            bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show run history",
	Long: `Display the best runs, overall or for one difficulty, followed by
per-difficulty statistics.

Examples:
  balloon scores
  balloon scores --difficulty hard --limit 20
  balloon scores --interactive
  balloon scores --run 0b8f6f2e-4a51-4a3c-9d0e-6b1c4f0f2a77
  balloon scores --clear --difficulty easy`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresDifficulty, "difficulty", "", "Only show runs of this difficulty")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to list")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show a single run by ID")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete stored runs (all, or --difficulty only)")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		err = clearRuns(store)
	case flagRunID != "":
		err = showRun(store, flagRunID)
	case flagInteractive:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		profiles, _, loadErr := config.Load("")
		if loadErr != nil {
			profiles = config.DefaultProfiles()
		}
		err = tui.RunScoreboard(store, profiles.DifficultyNames(), flagScoresDifficulty, width, height)
	default:
		err = listRuns(store)
	}

	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func clearRuns(store *storage.Store) error {
	if err := store.ClearRuns(flagScoresDifficulty); err != nil {
		return err
	}
	if flagScoresDifficulty == "" {
		fmt.Println("Cleared all runs.")
	} else {
		fmt.Printf("Cleared %s runs.\n", flagScoresDifficulty)
	}
	return nil
}

func showRun(store *storage.Store, id string) error {
	run, err := store.RunByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("no run with ID %s", id)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Run %s\n", run.ID)
	fmt.Println()
	fmt.Printf("  Played:      %s\n", run.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Printf("  Difficulty:  %s\n", run.Difficulty)
	fmt.Printf("  Theme:       %s\n", run.Theme)
	fmt.Printf("  Seed:        %d\n", run.Seed)
	fmt.Printf("  Score:       %d\n", run.Score)
	fmt.Printf("  Frames:      %d\n", run.Frames)
	fmt.Printf("  Ended by:    %s\n", run.Cause)
	return nil
}

func listRuns(store *storage.Store) error {
	runs, err := store.TopRuns(flagScoresDifficulty, flagLimit)
	if err != nil {
		return err
	}

	title := "all difficulties"
	if flagScoresDifficulty != "" {
		title = flagScoresDifficulty
	}
	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'balloon play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-7s  %-10s  %-9s  %-9s  %s\n", "Rank", "Score", "Frames", "Difficulty", "Theme", "Cause", "Date")
	fmt.Printf("  %-4s  %-6s  %-7s  %-10s  %-9s  %-9s  %s\n", "----", "-----", "------", "----------", "-----", "-----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-7d  %-10s  %-9s  %-9s  %s\n",
			i+1, r.Score, r.Frames, r.Difficulty, r.Theme, r.Cause, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println("Statistics:")
	for _, d := range sortedStatKeys(stats) {
		if flagScoresDifficulty != "" && d != flagScoresDifficulty {
			continue
		}
		st := stats[d]
		fmt.Printf("  %-8s  runs %-5d  best %-5d  avg %-7.1f  frames %-9d  last %s\n",
			d, st.Runs, st.BestScore, st.AvgScore, st.TotalFrames, st.LastPlayed.Format("2006-01-02"))
	}

	if best, ok, err := store.BestRun(flagScoresDifficulty); err == nil && ok {
		fmt.Println()
		fmt.Printf("Best: %d (seed %d, %s)\n", best.Score, best.Seed, best.Theme)
	}
	return nil
}

func sortedStatKeys(stats map[string]storage.Stats) []string {
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
