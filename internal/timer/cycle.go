// Package timer implements the study countdown arithmetic: remaining time,
// progress fraction and the fixed-width progress bar.
package timer

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
)

// Cycle is one study countdown.
type Cycle struct {
	models.CycleState
	Total int
}

// NewCycle starts the countdown for cycle index with the full study time left.
func NewCycle(params models.SessionParameters, index int) Cycle {
	total := params.StudySeconds()
	if total < 0 {
		total = 0
	}
	return Cycle{
		CycleState: models.CycleState{Index: index, Remaining: total},
		Total:      total,
	}
}

// Done reports whether no study time is left.
func (c Cycle) Done() bool {
	return c.Remaining <= 0
}

// Elapsed is the number of ticks taken so far.
func (c Cycle) Elapsed() int {
	return c.Total - c.Remaining
}

// Tick removes one second and reports whether the countdown finished.
func (c *Cycle) Tick() bool {
	if c.Remaining > 0 {
		c.Remaining--
	}
	return c.Done()
}

// Progress is the elapsed fraction in [0,1). A zero-length cycle reports 0.
func (c Cycle) Progress() float64 {
	if c.Total <= 0 {
		return 0
	}
	return float64(c.Elapsed()) / float64(c.Total)
}

// Bar renders the progress as "[###   ]" with width inner characters.
func (c Cycle) Bar(width int) string {
	return RenderBar(c.Progress(), width)
}

// Percent formats the progress with one decimal, e.g. "12.5%".
func (c Cycle) Percent() string {
	return fmt.Sprintf("%.1f%%", c.Progress()*100)
}

// Clock renders the remaining time as mm:ss.
func (c Cycle) Clock() string {
	return FormatRemaining(c.Remaining)
}

// RenderBar draws a bracketed bar with floor(progress*width) filled cells.
func RenderBar(progress float64, width int) string {
	if width < 0 {
		width = 0
	}
	filled := int(progress * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat(config.BarFill, filled) + strings.Repeat(config.BarEmpty, width-filled) + "]"
}
