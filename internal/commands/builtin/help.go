package builtin

import (
	"context"

	"portfolioterm/internal/commands"
	"portfolioterm/internal/render"
	"portfolioterm/internal/services"
	"portfolioterm/pkg/termtypes"
)

// HelpCommand prints the command table as a two-column fragment.
type HelpCommand struct {
	registry *commands.Registry
	theme    *services.ThemeService
}

// Name returns the command name "help" for registration and lookup.
func (c *HelpCommand) Name() string {
	return "help"
}

// Description returns a brief description of what the help command does.
func (c *HelpCommand) Description() string {
	return "Show all available commands"
}

// Usage returns the syntax for the help command.
func (c *HelpCommand) Usage() string {
	return "help"
}

// Execute lists every non-hidden command in registration order.
func (c *HelpCommand) Execute(_ context.Context, _ *termtypes.Invocation) (termtypes.Result, error) {
	visible := c.registry.Visible()
	rows := make([]render.Row, 0, len(visible))
	for _, cmd := range visible {
		rows = append(rows, render.Row{Key: cmd.Name, Value: cmd.Description})
	}
	return termtypes.Markup(render.TableFragment(tableStyles(c.theme), "", "Command", "Description", rows)), nil
}

func tableStyles(theme *services.ThemeService) render.TableStyles {
	if theme == nil {
		return render.PlainTableStyles()
	}
	return theme.TableStyles()
}
