package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/balloon-puff/internal/config"
	"github.com/vovakirdan/balloon-puff/internal/games/balloon"
	"github.com/vovakirdan/balloon-puff/internal/platform/tui"
	"github.com/vovakirdan/balloon-puff/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Balloon Puff SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game. Runs are stored per-server
(all users share the same history).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

With --watch, edits to the profile file apply to sessions started afterwards.

Examples:
  balloon serve                           # Listen on :23234 with auto-generated key
  balloon serve --ssh :2222               # Listen on port 2222
  balloon serve --host-key ./my_host_key  # Use specific host key
  balloon serve --difficulty hard --watch --config ./balloon.yaml

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	addProfileFlags(serveCmd)
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the profile file when it changes")
}

func runServe(_ *cobra.Command, _ []string) {
	logger, closer, err := newLogger("balloon-ssh", "")
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

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.TickRate = flagFPS
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute

	var recorder tui.RunRecorder
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("run history disabled", "error", err)
	} else {
		defer store.Close()
		recorder = store
	}

	if flagWatch {
		if w := startWatcher(source, logger); w != nil {
			defer w.Close()
			go reconfigure(w, sel, logger)
		}
	}

	server, err := tui.NewSSHServer(cfg, recorder, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Balloon Puff SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// reconfigure re-selects the served profiles on every reload until w closes.
// Running sessions keep the profiles they started with.
func reconfigure(w *config.Watcher, sel config.Selection, logger *log.Logger) {
	for {
		select {
		case p, ok := <-w.Profiles:
			if !ok {
				return
			}
			next, err := p.Select(sel.DifficultyKey, sel.ThemeKey)
			if err != nil {
				logger.Warn("reloaded profiles rejected", "error", err)
				continue
			}
			balloon.Configure(next)
			logger.Info("profiles reloaded", "path", w.Path())
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logger.Warn("profile reload failed", "error", err)
		}
	}
}
