package builtin

import (
	"context"
	"time"

	"portfolioterm/internal/session"
	"portfolioterm/pkg/termtypes"
)

// DateLayout is the format printed by date, e.g.
// "Wed Jan 01, 2025, 12:00:00 UTC+0000".
const DateLayout = "Mon Jan 02, 2006, 15:04:05 UTC-0700"

// WhoLayout formats the login time printed by who.
const WhoLayout = "2006-01-02 15:04"

// DateCommand prints the current local time.
type DateCommand struct {
	session *session.State
}

// Name returns the command name "date" for registration and lookup.
func (c *DateCommand) Name() string {
	return "date"
}

// Description returns a brief description of what the date command does.
func (c *DateCommand) Description() string {
	return "Show the current date and time"
}

// Usage returns the syntax for the date command.
func (c *DateCommand) Usage() string {
	return "date"
}

// Execute formats the session clock's current time.
func (c *DateCommand) Execute(_ context.Context, _ *termtypes.Invocation) (termtypes.Result, error) {
	return termtypes.Text(FormatDate(c.session.Now())), nil
}

// FormatDate renders t in the date command's layout, in t's location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// WhoCommand prints the simulated login record.
type WhoCommand struct {
	session *session.State
}

// Name returns the command name "who" for registration and lookup.
func (c *WhoCommand) Name() string {
	return "who"
}

// Description returns a brief description of what the who command does.
func (c *WhoCommand) Description() string {
	return "Show who is logged in"
}

// Usage returns the syntax for the who command.
func (c *WhoCommand) Usage() string {
	return "who"
}

// Execute prints the guest login line.
func (c *WhoCommand) Execute(_ context.Context, _ *termtypes.Invocation) (termtypes.Result, error) {
	return termtypes.Text("guest pts/1        " + c.session.LoginTime().Format(WhoLayout)), nil
}
