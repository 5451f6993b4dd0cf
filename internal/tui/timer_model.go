package tui

import (
	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/timer"
	breaktimer "github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
)

// TimerManager holds the countdown for the active cycle and the break clock.
type TimerManager struct {
	Cycle     timer.Cycle
	Break     breaktimer.Model
	Completed int
}

func NewTimerManager() TimerManager {
	return TimerManager{}
}

// StartCycle resets the study countdown for cycle index.
func (t *TimerManager) StartCycle(params models.SessionParameters, index int) {
	t.Cycle = timer.NewCycle(params, index)
}

// StartBreak arms the break clock and returns its first tick.
func (t *TimerManager) StartBreak(params models.SessionParameters) tea.Cmd {
	t.Break = breaktimer.NewWithInterval(params.BreakDuration(), config.TickInterval)
	return t.Break.Init()
}

// BreakOver reports whether msg is the timeout of the current break clock.
func (t TimerManager) BreakOver(msg breaktimer.TimeoutMsg) bool {
	return msg.ID == t.Break.ID()
}
