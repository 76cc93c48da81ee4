package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/balloon-puff/internal/config"
	"github.com/vovakirdan/balloon-puff/internal/core"
	"github.com/vovakirdan/balloon-puff/internal/registry"
)

// RunRecorder persists finished runs. *storage.Store implements it.
type RunRecorder interface {
	SaveRun(run core.RunSummary) (string, error)
}

// profileApplier is implemented by games that accept reloaded profiles.
type profileApplier interface {
	ApplyProfiles(p config.Profiles) error
}

// helpHeight is the number of rows reserved below the game for the help bar.
const helpHeight = 1

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithRecorder saves every finished run.
func WithRecorder(r RunRecorder) ModelOption {
	return func(m *Model) { m.recorder = r }
}

// WithLogger sets the logger for run and reload events.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) { m.logger = l }
}

// WithWatcher delivers reloaded profiles to the game.
func WithWatcher(w *config.Watcher) ModelOption {
	return func(m *Model) { m.watcher = w }
}

// WithRenderer sets the lipgloss renderer, for sessions whose terminal is
// not the process's own.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(m *Model) { m.styles = newStyleCache(r) }
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	recorder   RunRecorder
	watcher    *config.Watcher
	logger     *log.Logger
	styles     *styleCache
	keys       *KeyMapper
	help       help.Model
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	runSaved   bool // Whether the current game over has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg holds the full terminal size; one row is kept for the help bar.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenH = max(cfg.ScreenH-helpHeight, 1)

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		logger:     log.New(io.Discard),
		keys:       NewKeyMapper(),
		help:       help.New(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.styles == nil {
		m.styles = newStyleCache(nil)
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("run started", "game", m.game.ID(), "seed", m.config.Seed,
		"cols", m.config.ScreenW, "rows", m.config.ScreenH)

	return tea.Batch(tickCmd(m.config.TickRate), watchCmd(m.watcher))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if action := m.keys.MapMouse(msg); action != core.ActionNone {
			m.inputFrame.Set(action)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case ProfilesMsg:
		m.applyProfiles(config.Profiles(msg))
		return m, watchCmd(m.watcher)

	case ProfilesErrMsg:
		m.logger.Warn("profile reload failed", "error", msg.Err)
		return m, watchCmd(m.watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Keys.Screenshot) {
		m.saveScreenshot()
	}
	return m, nil
}

// handleResize processes window resize events.
// The world is sized from the terminal, so a resize starts a new run.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-helpHeight, 1)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	if !m.gameState.GameOver {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	switch {
	case m.gameState.GameOver && !m.runSaved:
		m.recordRun()
		m.runSaved = true
	case !m.gameState.GameOver:
		m.runSaved = false // A new run has started
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordRun logs the finished run and saves it if a recorder is set.
func (m *Model) recordRun() {
	run := m.game.Summary()
	m.logger.Info("run ended",
		"difficulty", run.Difficulty, "theme", run.Theme, "seed", run.Seed,
		"score", run.Score, "frames", run.Frames, "cause", run.Cause)

	if m.recorder == nil {
		return
	}
	id, err := m.recorder.SaveRun(run)
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Debug("run saved", "id", id)
}

// applyProfiles hands reloaded profiles to the game.
func (m *Model) applyProfiles(p config.Profiles) {
	g, ok := m.game.(profileApplier)
	if !ok {
		return
	}
	if err := g.ApplyProfiles(p); err != nil {
		m.logger.Warn("reloaded profiles rejected", "error", err)
		return
	}
	m.logger.Info("profiles reloaded, applied from the next run")
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.styles.render(m.screen) + "\n" + m.help.View(m.keys.Keys)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse clicks lift
	)

	_, err := p.Run()
	return err
}
