// Package tui provides the Bubble Tea host for Balloon Puff.
// It drives the fixed-rate tick loop, maps keys and mouse clicks to actions,
// renders the cell buffer with lipgloss, and serves sessions over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/balloon-puff/internal/config"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// ProfilesMsg carries profiles reloaded from disk.
type ProfilesMsg config.Profiles

// ProfilesErrMsg reports a failed reload.
type ProfilesErrMsg struct{ Err error }

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// watchCmd waits for the next reload from w. It must be re-issued after
// every message it produces. Returns nil when there is nothing to watch.
func watchCmd(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case p, ok := <-w.Profiles:
			if !ok {
				return nil
			}
			return ProfilesMsg(p)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return ProfilesErrMsg{Err: err}
		}
	}
}
