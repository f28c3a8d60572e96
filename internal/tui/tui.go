// Package tui renders the cinemood client: search, genre browse, the two
// user lists, and the feedback form, as one Bubble Tea program.
package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// Program is an alias for tea.Program, exposed so callers don't need to
// import bubbletea directly.
type Program = tea.Program

// NewProgram creates a Bubble Tea program over the app model. The program
// uses the alternate screen buffer for a clean TUI experience.
func NewProgram(deps Deps, opts ...tea.ProgramOption) *Program {
	allOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
	}
	allOpts = append(allOpts, opts...)
	return tea.NewProgram(NewAppModel(deps), allOpts...)
}

// Run creates and runs a TUI program, blocking until it exits.
func Run(deps Deps) error {
	if _, err := NewProgram(deps).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// WithOutput returns a program option that directs TUI output to the given
// writer. Useful for testing or redirecting output.
func WithOutput(w io.Writer) tea.ProgramOption {
	return tea.WithOutput(w)
}
