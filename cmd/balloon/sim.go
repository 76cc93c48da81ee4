package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/balloon-puff/internal/config"
	"github.com/vovakirdan/balloon-puff/internal/core"
	"github.com/vovakirdan/balloon-puff/internal/games/balloon"
	"github.com/vovakirdan/balloon-puff/internal/storage"
)

var (
	flagTicks int
	flagCols  int
	flagRows  int
	flagSave  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game with the autopilot",
	Long: `Simulate a run without a terminal. The autopilot lifts whenever the
balloon sinks too close to the ground or the next obstacle stack.

The same seed, profiles and screen size always give the same run.

Examples:
  balloon sim --seed 42
  balloon sim --ticks 20000 --difficulty hard --theme beach
  balloon sim --seed 7 --save`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	addProfileFlags(simCmd)
	simCmd.Flags().IntVar(&flagTicks, "ticks", 10000, "Maximum ticks to simulate")
	simCmd.Flags().IntVar(&flagCols, "cols", 80, "Screen columns the world is sized for")
	simCmd.Flags().IntVar(&flagRows, "rows", 24, "Screen rows the world is sized for")
	simCmd.Flags().BoolVar(&flagSave, "save", false, "Save the run to the history database")
}

// simulate plays one run with the autopilot for at most ticks ticks.
// The summary's Cause is "none" when the run outlived the tick limit.
func simulate(sel config.Selection, cfg core.RuntimeConfig, pilot balloon.Autopilot, ticks int) (core.RunSummary, error) {
	game := balloon.NewWithSelection(sel)
	game.Reset(cfg)
	if _, ok := game.Snapshot(); !ok {
		return core.RunSummary{}, fmt.Errorf("cannot start run for a %dx%d screen", cfg.ScreenW, cfg.ScreenH)
	}

	in := core.NewInputFrame()
	for i := 0; i < ticks; i++ {
		snap, _ := game.Snapshot()
		in.Clear()
		if pilot.ShouldLift(snap) {
			in.Set(core.ActionLift)
		}
		if game.Step(in).Ended {
			break
		}
	}
	return game.Summary(), nil
}

func runSim(_ *cobra.Command, _ []string) {
	logger, closer, err := newLogger("balloon-sim", "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	sel, _, err := loadSelection(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := core.RuntimeConfig{ScreenW: flagCols, ScreenH: flagRows, TickRate: flagFPS, Seed: seed}

	start := time.Now()
	run, err := simulate(sel, cfg, balloon.DefaultAutopilot(), flagTicks)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("simulation finished", "elapsed", time.Since(start))

	fmt.Printf("Difficulty: %s\n", run.Difficulty)
	fmt.Printf("Theme:      %s\n", run.Theme)
	fmt.Printf("Seed:       %d\n", run.Seed)
	fmt.Printf("Frames:     %d\n", run.Frames)
	fmt.Printf("Score:      %d\n", run.Score)
	if run.Cause == balloon.CauseNone.String() {
		fmt.Printf("Result:     survived %d ticks\n", flagTicks)
	} else {
		fmt.Printf("Result:     %s\n", run.Cause)
	}

	if !flagSave {
		return
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	id, err := store.SaveRun(run)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving run: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved:      %s\n", id)
}
