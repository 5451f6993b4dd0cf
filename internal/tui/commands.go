package tui

import (
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---

// TickMsg advances the study countdown by one second.
type TickMsg struct {
	seq int
}

// PauseDoneMsg ends a fixed pause (break over, rejected answer).
type PauseDoneMsg struct {
	seq int
}

func tickCmd(seq int) tea.Cmd {
	return tea.Tick(config.TickInterval, func(time.Time) tea.Msg { return TickMsg{seq: seq} })
}

func pauseCmd(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return PauseDoneMsg{seq: seq} })
}
