package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/prompt"
	"github.com/akyairhashvil/pomo/internal/timer"
)

// Every frame replaces the whole screen, so each phase renders from scratch.
func (m MainModel) View() string {
	if !m.phase.Running() {
		return ""
	}

	var b strings.Builder
	switch m.phase {
	case models.PhasePromptStudy, models.PhasePromptBreak, models.PhasePromptCount:
		b.WriteString(m.renderQuestion(prompt.Question(promptField(m.phase))))
	case models.PhaseStudying:
		b.WriteString(m.renderCountdown())
	case models.PhaseOnBreak:
		b.WriteString(m.renderBreak())
	case models.PhaseBreakOver:
		b.WriteString(m.renderCycleHeader() + "\n")
		b.WriteString(CurrentTheme.Break.Render("Break's over. Back to work!"))
	case models.PhaseConfirming:
		b.WriteString(m.renderQuestion(prompt.RestartQuestion))
	case models.PhaseRejectedAnswer:
		b.WriteString(m.renderQuestion(prompt.RestartQuestion) + "\n")
		b.WriteString(CurrentTheme.Error.Render(prompt.InvalidAnswer))
	}

	b.WriteString("\n\n")
	b.WriteString(m.renderFooter())
	return fitWidth(CurrentTheme.Base.Render(b.String()), m.width)
}

func (m MainModel) renderQuestion(question string) string {
	return CurrentTheme.Question.Render(question) + "\n" + m.input.View()
}

func (m MainModel) renderCycleHeader() string {
	return CurrentTheme.Header.Render(fmt.Sprintf("Pomodoro %d of %d", m.timer.Cycle.Index+1, m.params.CycleCount))
}

func (m MainModel) renderCountdown() string {
	c := m.timer.Cycle
	lines := []string{
		m.renderCycleHeader(),
		"Time remaining: " + CurrentTheme.Clock.Render(c.Clock()),
		CurrentTheme.Bar.Render(c.Bar(config.BarWidth)) + " " + c.Percent(),
	}
	return strings.Join(lines, "\n")
}

func (m MainModel) renderBreak() string {
	msg := fmt.Sprintf("Time's up! Take a break for %s.", timer.FormatMinutes(m.params.BreakMinutes))
	out := "\n" + CurrentTheme.Break.Render(msg)
	if m.params.BreakMinutes > 0 {
		out += "\n" + CurrentTheme.Dim.Render(m.timer.Break.View()+" left")
	}
	return out
}

func (m MainModel) renderFooter() string {
	return CurrentTheme.Dim.Render(versionLabel()) + "  " + m.help.ShortHelpView(m.keys.ShortHelp())
}
