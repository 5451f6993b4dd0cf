package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/akyairhashvil/pomo/internal/terminal"
	"github.com/akyairhashvil/pomo/internal/tui"
	"github.com/akyairhashvil/pomo/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

func main() {
	util.InitLogger(os.Stderr, logrus.InfoLevel)

	if err := run(context.Background(), os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

// run owns the terminal for one process lifetime. The guard is released on
// every return path before main decides the exit code.
func run(ctx context.Context, in *os.File, out io.Writer) error {
	guard, err := terminal.Acquire(terminal.NewTTY(in, out))
	if err != nil {
		return err
	}
	defer func() {
		util.LogWarn("terminal restore incomplete", guard.Release())
	}()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	p := tea.NewProgram(
		tui.NewMainModel(),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := p.Run()
	return exitError(final, err)
}

// exitError maps the program result to the process outcome. Interrupts and
// signals are a normal way to stop; only input and program failures count.
func exitError(final tea.Model, runErr error) error {
	if runErr != nil {
		if errors.Is(runErr, tea.ErrInterrupted) || errors.Is(runErr, tea.ErrProgramKilled) {
			util.Log.Debug("session interrupted")
			return nil
		}
		return runErr
	}
	m, ok := final.(tui.MainModel)
	if !ok {
		return nil
	}
	if m.Interrupted() {
		util.Log.WithField("cycles", m.CompletedCycles()).Debug("session interrupted")
		return nil
	}
	if err := m.Err(); err != nil {
		util.LogError("invalid input", err)
		return err
	}
	util.Log.WithField("cycles", m.CompletedCycles()).Debug("session finished")
	return nil
}
