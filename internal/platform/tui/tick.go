// Package tui provides the Bubble Tea integration for the puzzle.
// It handles the terminal UI loop, input mapping and session flow, locally
// and over SSH.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bee/internal/puzzle"
)

// tickSeq hands out refresh chain ids. It is shared by every screen so a
// tick left over from an earlier puzzle never matches a later one.
var tickSeq atomic.Int64

// StatsTickMsg triggers a refresh of the statistics panel. Only the screen
// that owns the chain id acts on it.
type StatsTickMsg struct {
	ID   int64
	Time time.Time
}

// statsTickCmd schedules the next statistics refresh for chain id.
func statsTickCmd(id int64, every time.Duration) tea.Cmd {
	if every <= 0 {
		every = 30 * time.Second
	}
	return tea.Tick(every, func(t time.Time) tea.Msg {
		return StatsTickMsg{ID: id, Time: t}
	})
}

// packLoadedMsg carries puzzle data loaded in the background.
type packLoadedMsg struct {
	set *puzzle.Set
}

// packFailedMsg reports that puzzle data could not be loaded.
type packFailedMsg struct {
	err error
}

// toastExpiredMsg clears a feedback message if it is still the current one.
type toastExpiredMsg struct {
	id int
}

// loadPackCmd runs a pack loader off the update loop.
func loadPackCmd(load func() (*puzzle.Set, error)) tea.Cmd {
	return func() tea.Msg {
		set, err := load()
		if err != nil {
			return packFailedMsg{err: err}
		}
		return packLoadedMsg{set: set}
	}
}

func toastExpireCmd(id int) tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}
