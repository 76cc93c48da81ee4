package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/balloon-puff/internal/config"
	"github.com/vovakirdan/balloon-puff/internal/core"
	"github.com/vovakirdan/balloon-puff/internal/games/balloon"
	"github.com/vovakirdan/balloon-puff/internal/platform/tui"
	"github.com/vovakirdan/balloon-puff/internal/registry"
	"github.com/vovakirdan/balloon-puff/internal/storage"
)

var flagWatch bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Balloon Puff",
	Long: `Start playing in this terminal.

Controls:
  Space/Up/Click  - Lift
  P/Esc           - Pause
  R/Enter         - Restart (after game over; Space also restarts)
  Ctrl+S          - Screenshot
  Q/Ctrl+C        - Quit

Difficulty options:
  easy    - Light gravity, slow scroll, wide obstacle spacing
  normal  - Stronger gravity and faster scroll
  hard    - Strongest gravity, fastest scroll, densest obstacles

Themes: mountain, city, beach.

With --watch the profile file is reloaded on save; the new values apply
from the next run.

Examples:
  balloon play
  balloon play --difficulty hard --theme city
  balloon play --config ./my-balloon.yaml --watch
  balloon play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addProfileFlags(playCmd)
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the profile file when it changes")
}

func runPlay(_ *cobra.Command, _ []string) {
	// Logs go to a file so they do not tear the alt screen
	logger, closer, err := newLogger("balloon", "~/.arcade/balloon.log")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	sel, source, err := loadSelection(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	balloon.Configure(sel)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(balloon.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	opts := []tui.ModelOption{tui.WithLogger(logger)}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		logger.Warn("run history disabled", "error", err)
	} else {
		opts = append(opts, tui.WithRecorder(store))
	}

	if flagWatch {
		if w := startWatcher(source, logger); w != nil {
			defer w.Close()
			opts = append(opts, tui.WithWatcher(w))
		}
	}

	logger.Info("starting", "difficulty", sel.DifficultyKey, "theme", sel.ThemeKey, "profiles", source)
	runErr := tui.Run(game, cfg, opts...)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// startWatcher watches the profile file at source. Returns nil if there is
// no file to watch or the watch cannot be set up.
func startWatcher(source string, logger *log.Logger) *config.Watcher {
	if source == config.SourceEmbedded {
		fmt.Fprintln(os.Stderr, "Warning: --watch ignored, using built-in profiles")
		return nil
	}
	w, err := config.NewWatcher(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot watch %s: %v\n", source, err)
		logger.Warn("watch failed", "path", source, "error", err)
		return nil
	}
	return w
}
