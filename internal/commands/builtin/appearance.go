package builtin

import (
	"context"
	"errors"
	"fmt"

	"portfolioterm/internal/session"
	"portfolioterm/pkg/termtypes"
)

const invalidComponent = "Invalid value. Use 0-255."

// parseColor validates r g b arguments. The returned message is the text to
// print when ok is false.
func parseColor(args []string, usage string) (c termtypes.RGB, message string, ok bool) {
	c, err := termtypes.ParseRGBArgs(args)
	switch {
	case err == nil:
		return c, "", true
	case errors.Is(err, termtypes.ErrMissingComponents):
		return c, usage, false
	default:
		return c, invalidComponent + "\n" + usage, false
	}
}

// ColorCommand sets the terminal text colour.
type ColorCommand struct {
	session *session.State
}

// Name returns the command name "color" for registration and lookup.
func (c *ColorCommand) Name() string {
	return "color"
}

// Description returns a brief description of what the color command does.
func (c *ColorCommand) Description() string {
	return "Change terminal text color (RGB)"
}

// Usage returns the syntax and an example for the color command.
func (c *ColorCommand) Usage() string {
	return "Usage: color <r> <g> <b>\nExample: color 255 100 50"
}

// Execute validates all three components before applying the colour.
func (c *ColorCommand) Execute(_ context.Context, inv *termtypes.Invocation) (termtypes.Result, error) {
	rgb, msg, ok := parseColor(inv.Args, c.Usage())
	if !ok {
		return termtypes.Text(msg), nil
	}
	if err := c.session.Settings().SetTerminalColor(rgb); err != nil {
		return termtypes.Result{}, err
	}
	return termtypes.Text(fmt.Sprintf("Terminal color set to %s", rgb)), nil
}

// AccentCommand sets the accent colour used for headers and highlights.
type AccentCommand struct {
	session *session.State
}

// Name returns the command name "accent" for registration and lookup.
func (c *AccentCommand) Name() string {
	return "accent"
}

// Description returns a brief description of what the accent command does.
func (c *AccentCommand) Description() string {
	return "Set site accent color (RGB)"
}

// Usage returns the syntax and an example for the accent command.
func (c *AccentCommand) Usage() string {
	return "Usage: accent <r> <g> <b>\nExample: accent 0 120 255"
}

// Execute validates all three components before applying the colour.
func (c *AccentCommand) Execute(_ context.Context, inv *termtypes.Invocation) (termtypes.Result, error) {
	rgb, msg, ok := parseColor(inv.Args, c.Usage())
	if !ok {
		return termtypes.Text(msg), nil
	}
	if err := c.session.Settings().SetAccent(rgb); err != nil {
		return termtypes.Result{}, err
	}
	return termtypes.Text(fmt.Sprintf("Accent color set to %s", rgb)), nil
}

// ThemeCommand switches between the light and dark palettes.
type ThemeCommand struct {
	session *session.State
}

// Name returns the command name "theme" for registration and lookup.
func (c *ThemeCommand) Name() string {
	return "theme"
}

// Description returns a brief description of what the theme command does.
func (c *ThemeCommand) Description() string {
	return "Set site theme (light/dark)"
}

// Usage returns the syntax for the theme command.
func (c *ThemeCommand) Usage() string {
	return "Usage: theme <light|dark>"
}

// Execute applies the theme. Only the exact words light and dark are accepted.
func (c *ThemeCommand) Execute(_ context.Context, inv *termtypes.Invocation) (termtypes.Result, error) {
	mode, ok := termtypes.ParseThemeMode(inv.Arg(0))
	if !ok {
		return termtypes.Text(c.Usage()), nil
	}
	if err := c.session.Settings().SetTheme(mode); err != nil {
		return termtypes.Result{}, err
	}
	return termtypes.Text(fmt.Sprintf("Theme set to %s.", mode)), nil
}

// RestoreCommand drops every persisted appearance override.
type RestoreCommand struct {
	session *session.State
}

// Name returns the command name "restore" for registration and lookup.
func (c *RestoreCommand) Name() string {
	return "restore"
}

// Description returns a brief description of what the restore command does.
func (c *RestoreCommand) Description() string {
	return "Restore all default settings"
}

// Usage returns the syntax for the restore command.
func (c *RestoreCommand) Usage() string {
	return "restore"
}

// Execute resets the theme, accent and terminal colour.
func (c *RestoreCommand) Execute(_ context.Context, _ *termtypes.Invocation) (termtypes.Result, error) {
	if err := c.session.Settings().Restore(); err != nil {
		return termtypes.Result{}, err
	}
	return termtypes.Text("System restored to default settings."), nil
}
