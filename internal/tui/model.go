package tui

import (
	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/prompt"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// MainModel is the root bubbletea model. It walks through the prompts, the
// study/break cycles and the restart question, and quits when the user says
// "no", interrupts, or gives a numeric answer that cannot be used.
type MainModel struct {
	phase       models.Phase
	params      models.SessionParameters
	timer       TimerManager
	input       textinput.Model
	keys        KeyMap
	help        help.Model
	seq         int // current tick chain; stale ticks are dropped
	attempts    int
	rejections  int
	err         error
	interrupted bool
	width       int
}

func NewMainModel() MainModel {
	ti := textinput.New()
	ti.Prompt = prompt.Marker
	ti.Width = config.InputWidth
	ti.Focus()

	return MainModel{
		phase: models.PhasePromptStudy,
		timer: NewTimerManager(),
		input: ti,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}
}

func (m MainModel) Init() tea.Cmd {
	return textinput.Blink
}

// Err is the fatal error that ended the run, if any.
func (m MainModel) Err() error {
	return m.err
}

// Interrupted reports whether the user quit with ctrl+c.
func (m MainModel) Interrupted() bool {
	return m.interrupted
}

// Phase is the current screen.
func (m MainModel) Phase() models.Phase {
	return m.phase
}

// Params are the values collected for the current attempt.
func (m MainModel) Params() models.SessionParameters {
	return m.params
}

// CompletedCycles counts finished study/break cycles across all attempts.
func (m MainModel) CompletedCycles() int {
	return m.timer.Completed
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Interrupt) {
			m.interrupted = true
			m.phase = models.PhaseTerminated
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	}

	switch m.phase {
	case models.PhasePromptStudy, models.PhasePromptBreak, models.PhasePromptCount:
		return m.updatePrompt(msg)
	case models.PhaseStudying:
		return m.updateStudying(msg)
	case models.PhaseOnBreak:
		return m.updateOnBreak(msg)
	case models.PhaseBreakOver:
		return m.updateBreakOver(msg)
	case models.PhaseConfirming:
		return m.updateConfirming(msg)
	case models.PhaseRejectedAnswer:
		return m.updateRejected(msg)
	}
	return m, nil
}
