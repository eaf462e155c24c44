// Package tui implements the live watch view.
package tui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// Run starts the watch view and blocks until the user quits. It returns the
// switches that were active on exit.
func Run(model Model) (Model, error) {
	// Don't use alt screen - the final render stays in the scrollback
	p := tea.NewProgram(model)
	final, err := p.Run()
	if err != nil {
		return model, err
	}
	if m, ok := final.(Model); ok {
		return m, nil
	}
	return model, nil
}

// IsTerminal reports whether stdout is an interactive terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
