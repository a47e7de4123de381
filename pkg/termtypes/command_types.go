// Package termtypes defines the types shared across the portfolio terminal:
// the command table entries, handler results, colours and portfolio records.
package termtypes

import "context"

// CommandKind tags which half of the Command union is populated.
type CommandKind int

const (
	// ConstantCommand commands always produce their Value.
	ConstantCommand CommandKind = iota
	// HandlerCommand commands invoke Run with the parsed arguments.
	HandlerCommand
)

// Handler runs a command with its invocation and returns what should be rendered.
// A returned error is rendered as a single "Error: ..." line.
type Handler func(ctx context.Context, inv *Invocation) (Result, error)

// Command is one entry of the command table.
type Command struct {
	Name        string      // Lower-case lookup key
	Description string      // One-line description shown by help
	Usage       string      // Usage syntax
	Hidden      bool        // Excluded from the help table
	Kind        CommandKind // Selects Value or Run
	Value       string      // Output of a ConstantCommand
	Run         Handler     // Handler of a HandlerCommand
	Deferred    bool        // Handler performs I/O and runs off the input loop
}

// Constant builds a command that always prints value.
func Constant(name, description, value string) Command {
	return Command{
		Name:        name,
		Description: description,
		Usage:       name,
		Kind:        ConstantCommand,
		Value:       value,
	}
}

// Func builds a command backed by a handler.
func Func(name, description, usage string, run Handler) Command {
	return Command{
		Name:        name,
		Description: description,
		Usage:       usage,
		Kind:        HandlerCommand,
		Run:         run,
	}
}

// Invocation carries a single command call.
type Invocation struct {
	Name string   // Lower-cased command name
	Args []string // Positional arguments, whitespace separated
	Raw  string   // The submitted line
	Out  Output   // Direct access to the scrollback for intermediate lines
}

// Arg returns the i-th argument or "" when absent.
func (inv *Invocation) Arg(i int) string {
	if i < 0 || i >= len(inv.Args) {
		return ""
	}
	return inv.Args[i]
}

// Result is what a handler asks the renderer to show once it returns.
// The zero value means "no output, side effects already applied".
type Result struct {
	Text     string    // Typed character by character
	Fragment *Fragment // Trusted markup typed element by element
}

// Text returns a Result that types s.
func Text(s string) Result {
	return Result{Text: s}
}

// Markup returns a Result that types the fragment.
func Markup(f *Fragment) Result {
	return Result{Fragment: f}
}

// IsEmpty reports whether the result renders nothing.
func (r Result) IsEmpty() bool {
	return r.Text == "" && (r.Fragment == nil || r.Fragment.Len() == 0)
}

// Output is the subset of the renderer available to handlers.
type Output interface {
	// PrintBlock appends text instantly.
	PrintBlock(text string)
	// TypeLine appends text with the typing animation.
	TypeLine(text string)
	// TypeFragment appends trusted markup with the typing animation.
	TypeFragment(f *Fragment)
}
