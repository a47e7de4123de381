// Package builtin provides the portfolio terminal's command set.
//
// Each command is a small struct with Name, Description, Usage and Execute
// methods; Register adapts them into the command table in the order they
// appear in help.
package builtin

import (
	"context"
	"fmt"

	"portfolioterm/internal/commands"
	"portfolioterm/internal/data"
	"portfolioterm/internal/services"
	"portfolioterm/internal/session"
	"portfolioterm/pkg/termtypes"
)

// Command is implemented by every handler-backed builtin.
type Command interface {
	Name() string
	Description() string
	Usage() string
	Execute(ctx context.Context, inv *termtypes.Invocation) (termtypes.Result, error)
}

// hiddenCommand is implemented by commands left out of help.
type hiddenCommand interface {
	Hidden() bool
}

// deferredCommand is implemented by commands that block on I/O.
type deferredCommand interface {
	Deferred() bool
}

// Screen is the part of the renderer clear needs.
type Screen interface {
	Clear()
}

// Deps are the collaborators shared by the builtins.
type Deps struct {
	Session       *session.State
	Catalog       data.Catalog
	Screen        Screen
	Theme         *services.ThemeService
	Markdown      *services.MarkdownService
	Browser       *services.BrowserService
	Contributions *services.ContributionService

	GitHubUser string // Account queried by gh
	RepoURL    string // Opened by repo
	RawBase    string // Prefix for view
}

// About is the biography printed by the about command.
const About = "Hi! I'm Rainier, a high school student passionate about technology and engineering."

// Entry adapts a Command into a command table entry.
func Entry(c Command) termtypes.Command {
	entry := termtypes.Func(c.Name(), c.Description(), c.Usage(), c.Execute)
	if h, ok := c.(hiddenCommand); ok {
		entry.Hidden = h.Hidden()
	}
	if d, ok := c.(deferredCommand); ok {
		entry.Deferred = d.Deferred()
	}
	return entry
}

// Register adds every builtin to reg. The visible commands are registered in
// help order, followed by the hidden ones.
func Register(reg *commands.Registry, deps Deps) error {
	if deps.Session == nil {
		return fmt.Errorf("builtin commands require a session")
	}

	about := About
	if deps.Catalog != nil && deps.Catalog.About() != "" {
		about = deps.Catalog.About()
	}

	view := &ViewCommand{deps: deps}
	entries := []termtypes.Command{
		Entry(&HelpCommand{registry: reg, theme: deps.Theme}),
		termtypes.Constant("about", "Display information about me", about),
		Entry(&LsCommand{deps: deps}),
		Entry(&CatCommand{deps: deps}),
		Entry(&EchoCommand{}),
		Entry(&DateCommand{session: deps.Session}),
		Entry(&WhoCommand{session: deps.Session}),
		termtypes.Constant("whoami", "Display the current user", "guest"),
		Entry(&ClearCommand{screen: deps.Screen}),
		Entry(&HistoryCommand{session: deps.Session}),
		Entry(&ColorCommand{session: deps.Session}),
		Entry(&GitHubCommand{deps: deps}),
		Entry(&ThemeCommand{session: deps.Session}),
		Entry(&AccentCommand{session: deps.Session}),
		Entry(&RestoreCommand{session: deps.Session}),
		Entry(&MatrixCommand{session: deps.Session}),
		Entry(&ExitCommand{session: deps.Session}),

		Entry(&RepoCommand{deps: deps}),
		Entry(&DevCommand{deps: deps, view: view}),
		Entry(view),
	}

	for _, e := range entries {
		if err := reg.Register(e); err != nil {
			return fmt.Errorf("failed to register %s: %w", e.Name, err)
		}
	}
	return nil
}
