package builtin

import (
	"context"
	"fmt"
	"strings"

	"portfolioterm/internal/session"
	"portfolioterm/pkg/termtypes"
)

// ClearCommand empties the scrollback.
type ClearCommand struct {
	screen Screen
}

// Name returns the command name "clear" for registration and lookup.
func (c *ClearCommand) Name() string {
	return "clear"
}

// Description returns a brief description of what the clear command does.
func (c *ClearCommand) Description() string {
	return "Clear the terminal screen"
}

// Usage returns the syntax for the clear command.
func (c *ClearCommand) Usage() string {
	return "clear"
}

// Execute clears the screen. History is left alone.
func (c *ClearCommand) Execute(_ context.Context, _ *termtypes.Invocation) (termtypes.Result, error) {
	if c.screen != nil {
		c.screen.Clear()
	}
	return termtypes.Result{}, nil
}

// HistoryCommand lists the submitted lines.
type HistoryCommand struct {
	session *session.State
}

// Name returns the command name "history" for registration and lookup.
func (c *HistoryCommand) Name() string {
	return "history"
}

// Description returns a brief description of what the history command does.
func (c *HistoryCommand) Description() string {
	return "Show previously entered commands"
}

// Usage returns the syntax for the history command.
func (c *HistoryCommand) Usage() string {
	return "history"
}

// Execute prints the history, 1-indexed.
func (c *HistoryCommand) Execute(_ context.Context, _ *termtypes.Invocation) (termtypes.Result, error) {
	history := c.session.History()
	if len(history) == 0 {
		return termtypes.Text("No commands in history."), nil
	}
	lines := make([]string, len(history))
	for i, line := range history {
		lines[i] = fmt.Sprintf("%d  %s", i+1, line)
	}
	return termtypes.Text(strings.Join(lines, "\n")), nil
}

// MatrixCommand toggles the matrix display mode.
type MatrixCommand struct {
	session *session.State
}

// Name returns the command name "matrix" for registration and lookup.
func (c *MatrixCommand) Name() string {
	return "matrix"
}

// Description returns a brief description of what the matrix command does.
func (c *MatrixCommand) Description() string {
	return "Toggle matrix visual effect"
}

// Usage returns the syntax for the matrix command.
func (c *MatrixCommand) Usage() string {
	return "matrix"
}

// Execute flips the flag and reports the new state.
func (c *MatrixCommand) Execute(_ context.Context, _ *termtypes.Invocation) (termtypes.Result, error) {
	if c.session.ToggleMatrix() {
		return termtypes.Text("Matrix mode enabled."), nil
	}
	return termtypes.Text("Matrix mode disabled."), nil
}

// ExitCommand ends the session.
type ExitCommand struct {
	session *session.State
}

// Name returns the command name "exit" for registration and lookup.
func (c *ExitCommand) Name() string {
	return "exit"
}

// Description returns a brief description of what the exit command does.
func (c *ExitCommand) Description() string {
	return "Return to main site"
}

// Usage returns the syntax for the exit command.
func (c *ExitCommand) Usage() string {
	return "exit"
}

// Execute marks the session as ended; the front-end quits once the farewell
// line has been shown.
func (c *ExitCommand) Execute(_ context.Context, _ *termtypes.Invocation) (termtypes.Result, error) {
	c.session.RequestExit()
	return termtypes.Text("Logging out..."), nil
}
