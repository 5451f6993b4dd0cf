package tui

import (
	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/prompt"
	"github.com/akyairhashvil/pomo/internal/util"
	"github.com/charmbracelet/bubbles/key"
	breaktimer "github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
)

func (m MainModel) handleWindowSize(msg tea.WindowSizeMsg) (MainModel, tea.Cmd) {
	m.width = msg.Width
	if m.width > 0 {
		m.input.Width = util.Clamp(m.width-len(prompt.Marker)-1, 1, config.InputWidth)
		m.help.Width = m.width
	}
	return m, nil
}

// --- Input collection ---

func promptField(phase models.Phase) string {
	switch phase {
	case models.PhasePromptBreak:
		return prompt.FieldBreak
	case models.PhasePromptCount:
		return prompt.FieldCycles
	}
	return prompt.FieldStudy
}

func (m MainModel) updatePrompt(msg tea.Msg) (MainModel, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.keys.Submit) {
		return m.submitParameter()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submitParameter stores one numeric answer. A bad answer ends the program.
func (m MainModel) submitParameter() (MainModel, tea.Cmd) {
	n, err := prompt.ParseCount(promptField(m.phase), m.input.Value())
	if err != nil {
		m.err = err
		m.phase = models.PhaseTerminated
		return m, tea.Quit
	}
	m.input.Reset()

	switch m.phase {
	case models.PhasePromptStudy:
		m.params.StudyMinutes = n
		m.phase = models.PhasePromptBreak
	case models.PhasePromptBreak:
		m.params.BreakMinutes = n
		m.phase = models.PhasePromptCount
	case models.PhasePromptCount:
		m.params.CycleCount = n
		m.input.Blur()
		return m.beginCycle(0)
	}
	return m, nil
}

func (m MainModel) updateConfirming(msg tea.Msg) (MainModel, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.keys.Submit) {
		return m.submitAnswer()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m MainModel) submitAnswer() (MainModel, tea.Cmd) {
	answer, err := prompt.ParseAnswer(m.input.Value())
	if err != nil {
		m.rejections++
		m.phase = models.PhaseRejectedAnswer
		m.input.Blur()
		m.seq++
		return m, pauseCmd(m.seq, config.InvalidAnswerPause)
	}
	if answer == models.AnswerNo {
		m.phase = models.PhaseTerminated
		return m, tea.Quit
	}
	return m.restart()
}

// Keys typed while the error is on screen are dropped.
func (m MainModel) updateRejected(msg tea.Msg) (MainModel, tea.Cmd) {
	done, ok := msg.(PauseDoneMsg)
	if !ok || done.seq != m.seq {
		return m, nil
	}
	return m.askRestart()
}

func (m MainModel) askRestart() (MainModel, tea.Cmd) {
	m.phase = models.PhaseConfirming
	m.input.Reset()
	return m, m.input.Focus()
}

func (m MainModel) restart() (MainModel, tea.Cmd) {
	m.attempts++
	m.params = models.SessionParameters{}
	m.phase = models.PhasePromptStudy
	m.input.Reset()
	return m, m.input.Focus()
}

// --- Timer loop ---

// beginCycle starts cycle index, or hands over to the restart question once
// every cycle has run.
func (m MainModel) beginCycle(index int) (MainModel, tea.Cmd) {
	if index >= m.params.CycleCount {
		return m.askRestart()
	}
	m.timer.StartCycle(m.params, index)
	if m.timer.Cycle.Done() {
		return m.beginBreak()
	}
	m.phase = models.PhaseStudying
	m.seq++
	return m, tickCmd(m.seq)
}

func (m MainModel) updateStudying(msg tea.Msg) (MainModel, tea.Cmd) {
	tick, ok := msg.(TickMsg)
	if !ok || tick.seq != m.seq {
		return m, nil
	}
	if m.timer.Cycle.Tick() {
		return m.beginBreak()
	}
	return m, tickCmd(m.seq)
}

// beginBreak shows the break message. A zero-minute break still renders it
// once before a zero-length pause ends it.
func (m MainModel) beginBreak() (MainModel, tea.Cmd) {
	m.phase = models.PhaseOnBreak
	if m.params.BreakMinutes <= 0 {
		m.seq++
		return m, pauseCmd(m.seq, 0)
	}
	return m, m.timer.StartBreak(m.params)
}

func (m MainModel) updateOnBreak(msg tea.Msg) (MainModel, tea.Cmd) {
	if done, ok := msg.(PauseDoneMsg); ok {
		if done.seq == m.seq && m.params.BreakMinutes <= 0 {
			return m.endBreak()
		}
		return m, nil
	}
	if timeout, ok := msg.(breaktimer.TimeoutMsg); ok {
		if m.timer.BreakOver(timeout) {
			return m.endBreak()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.timer.Break, cmd = m.timer.Break.Update(msg)
	return m, cmd
}

func (m MainModel) endBreak() (MainModel, tea.Cmd) {
	m.phase = models.PhaseBreakOver
	m.seq++
	return m, pauseCmd(m.seq, config.BreakOverPause)
}

func (m MainModel) updateBreakOver(msg tea.Msg) (MainModel, tea.Cmd) {
	done, ok := msg.(PauseDoneMsg)
	if !ok || done.seq != m.seq {
		return m, nil
	}
	m.timer.Completed++
	return m.beginCycle(m.timer.Cycle.Index + 1)
}
