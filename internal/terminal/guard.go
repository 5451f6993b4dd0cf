package terminal

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/term"
)

// Guard holds the terminal state captured before the full-screen program
// starts. Release puts it back.
type Guard struct {
	t     Terminal
	state *term.State
	once  sync.Once
	err   error
}

// Acquire snapshots the current terminal modes.
func Acquire(t Terminal) (*Guard, error) {
	if err := Require(t); err != nil {
		return nil, err
	}
	state, err := t.SaveState()
	if err != nil {
		return nil, fmt.Errorf("save terminal state: %w", err)
	}
	return &Guard{t: t, state: state}, nil
}

// Release restores line discipline and cursor visibility. Every step runs even
// when an earlier one fails; later calls return the first call's result.
func (g *Guard) Release() error {
	if g == nil {
		return nil
	}
	g.once.Do(func() {
		var errs []error
		if g.state != nil {
			if err := g.t.RestoreState(g.state); err != nil {
				errs = append(errs, fmt.Errorf("restore terminal modes: %w", err))
			}
		}
		if err := g.t.ShowCursor(); err != nil {
			errs = append(errs, fmt.Errorf("show cursor: %w", err))
		}
		g.err = errors.Join(errs...)
	})
	return g.err
}
