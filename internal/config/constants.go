package config

import "time"

// Timer durations.
const (
	TickInterval       = time.Second
	BreakOverPause     = 3 * time.Second
	InvalidAnswerPause = 2 * time.Second
)

// Progress bar.
const (
	BarWidth = 20
	BarFill  = "#"
	BarEmpty = " "
)

// Input constraints.
const (
	// InputWidth is the visible width of the prompt line.
	InputWidth = 16
)

// Application settings.
const (
	AppName = "pomo"
)
