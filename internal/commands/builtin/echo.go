package builtin

import (
	"context"
	"strings"

	"portfolioterm/pkg/termtypes"
)

// EchoCommand prints its arguments.
type EchoCommand struct{}

// Name returns the command name "echo" for registration and lookup.
func (c *EchoCommand) Name() string {
	return "echo"
}

// Description returns a brief description of what the echo command does.
func (c *EchoCommand) Description() string {
	return "Display a line of text"
}

// Usage returns the syntax for the echo command.
func (c *EchoCommand) Usage() string {
	return "echo <text>"
}

// Execute joins the arguments with single spaces. Runs of whitespace in the
// submitted line collapse because arguments are whitespace separated.
func (c *EchoCommand) Execute(_ context.Context, inv *termtypes.Invocation) (termtypes.Result, error) {
	return termtypes.Text(strings.Join(inv.Args, " ")), nil
}
