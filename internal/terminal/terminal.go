// Package terminal owns the process-wide terminal modes for the lifetime of a
// run and puts them back exactly once when the run ends.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

//go:generate mockgen -source=terminal.go -destination=mock_terminal_test.go -package=terminal

var ErrNotATerminal = errors.New("stdin is not a terminal")

// Terminal is the slice of the controlling terminal the guard touches.
type Terminal interface {
	IsTerminal() bool
	SaveState() (*term.State, error)
	RestoreState(state *term.State) error
	ShowCursor() error
}

type tty struct {
	in  *os.File
	out io.Writer
}

// NewTTY wraps the process stdin/stdout pair.
func NewTTY(in *os.File, out io.Writer) Terminal {
	return &tty{in: in, out: out}
}

func (t *tty) fd() int {
	return int(t.in.Fd())
}

func (t *tty) IsTerminal() bool {
	return term.IsTerminal(t.fd())
}

func (t *tty) SaveState() (*term.State, error) {
	return term.GetState(t.fd())
}

func (t *tty) RestoreState(state *term.State) error {
	return term.Restore(t.fd(), state)
}

func (t *tty) ShowCursor() error {
	_, err := io.WriteString(t.out, ansi.ShowCursor)
	return err
}

// Require fails with ErrNotATerminal when t is not interactive.
func Require(t Terminal) error {
	if !t.IsTerminal() {
		return fmt.Errorf("%w: a full-screen session needs an interactive terminal", ErrNotATerminal)
	}
	return nil
}
