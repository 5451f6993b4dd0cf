package models

import "time"

// SessionParameters are the three values collected before a run.
type SessionParameters struct {
	StudyMinutes int
	BreakMinutes int
	CycleCount   int
}

// StudySeconds is the length of one study phase in seconds.
func (p SessionParameters) StudySeconds() int {
	return p.StudyMinutes * 60
}

// BreakDuration is the length of one break.
func (p SessionParameters) BreakDuration() time.Duration {
	return time.Duration(p.BreakMinutes) * time.Minute
}

// CycleState tracks the active study phase.
type CycleState struct {
	Index     int // 0-based
	Remaining int // seconds
}

// Answer is a validated reply to the restart prompt.
type Answer string

const (
	AnswerYes Answer = "yes"
	AnswerNo  Answer = "no"
)

// Phase enumerates the screens the driver moves through.
type Phase int

const (
	PhasePromptStudy Phase = iota
	PhasePromptBreak
	PhasePromptCount
	PhaseStudying
	PhaseOnBreak
	PhaseBreakOver
	PhaseConfirming
	PhaseRejectedAnswer
	PhaseTerminated
)

var phaseNames = map[Phase]string{
	PhasePromptStudy:    "prompt-study",
	PhasePromptBreak:    "prompt-break",
	PhasePromptCount:    "prompt-count",
	PhaseStudying:       "studying",
	PhaseOnBreak:        "on-break",
	PhaseBreakOver:      "break-over",
	PhaseConfirming:     "confirming",
	PhaseRejectedAnswer: "rejected-answer",
	PhaseTerminated:     "terminated",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// Running reports whether the phase belongs to the RUNNING state.
func (p Phase) Running() bool {
	return p != PhaseTerminated
}
