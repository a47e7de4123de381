package builtin

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"portfolioterm/internal/data/embedded"
	"portfolioterm/internal/logger"
	"portfolioterm/internal/services"
	"portfolioterm/pkg/termtypes"
)

// GitHubCommand summarises a year of contributions.
type GitHubCommand struct {
	deps Deps
}

// Name returns the command name "gh" for registration and lookup.
func (c *GitHubCommand) Name() string {
	return "gh"
}

// Description returns a brief description of what the gh command does.
func (c *GitHubCommand) Description() string {
	return "Check GitHub contributions"
}

// Usage returns the syntax for the gh command.
func (c *GitHubCommand) Usage() string {
	return "Usage: gh [year]"
}

// Deferred reports that gh waits on the network.
func (c *GitHubCommand) Deferred() bool {
	return true
}

// Execute prints a progress line, then the summary or a failure line. It
// never returns an error; failures are reported as text.
func (c *GitHubCommand) Execute(ctx context.Context, inv *termtypes.Invocation) (termtypes.Result, error) {
	year := c.deps.Session.Now().Year()
	if arg := inv.Arg(0); arg != "" {
		n, err := strconv.Atoi(arg)
		if err != nil || n <= 0 {
			return termtypes.Text(c.Usage()), nil
		}
		year = n
	}

	inv.Out.PrintBlock(fmt.Sprintf("Fetching GitHub data for %d...", year))

	if c.deps.Contributions == nil {
		inv.Out.PrintBlock(fmt.Sprintf("Error: Could not retrieve contributions for %d.", year))
		return termtypes.Result{}, nil
	}

	summary, err := c.deps.Contributions.Yearly(ctx, c.deps.GitHubUser, year)
	switch {
	case errors.Is(err, services.ErrNoContributionData):
		inv.Out.PrintBlock(fmt.Sprintf("No data found for year %d.", year))
	case err != nil:
		logger.Warn("Contribution lookup failed", "year", year, "error", err)
		inv.Out.PrintBlock(fmt.Sprintf("Error: Could not retrieve contributions for %d.", year))
	default:
		inv.Out.PrintBlock(summary.Format())
	}
	return termtypes.Result{}, nil
}

// RepoCommand opens the site's source repository.
type RepoCommand struct {
	deps Deps
}

// Name returns the command name "repo" for registration and lookup.
func (c *RepoCommand) Name() string {
	return "repo"
}

// Description returns a brief description of what the repo command does.
func (c *RepoCommand) Description() string {
	return "Open main GitHub repository"
}

// Usage returns the syntax for the repo command.
func (c *RepoCommand) Usage() string {
	return "repo"
}

// Hidden keeps repo out of help.
func (c *RepoCommand) Hidden() bool {
	return true
}

// Execute opens the repository URL.
func (c *RepoCommand) Execute(_ context.Context, _ *termtypes.Invocation) (termtypes.Result, error) {
	return termtypes.Text(openLink(c.deps.Browser, c.deps.RepoURL, "Opening GitHub repository...")), nil
}

// openLink opens u and returns message. When no browser can be launched the
// URL is appended so it can be copied by hand.
func openLink(browser *services.BrowserService, u, message string) string {
	if browser == nil {
		return message + "\n" + u
	}
	if err := browser.Open(u); err != nil {
		logger.Warn("Could not open browser", "url", u, "error", err)
		return message + "\n" + u
	}
	return message
}

// sourceFiles maps viewable file names to their path in the repository.
var sourceFiles = map[string]string{
	"index.html":        "index.html",
	"terminal.html":     "terminal.html",
	"projects.html":     "projects.html",
	"publications.html": "publications.html",
	"labs.html":         "labs.html",
	"awards.html":       "awards.html",
	"sitemap.xml":       "sitemap.xml",
	"readme.md":         "README.md",
	"script.js":         "js/script.js",
	"projects.js":       "js/projects.js",
	"labs.js":           "js/labs.js",
	"awards.js":         "js/awards.js",
	"terminal.js":       "js/terminal.js",
	"styles.css":        "css/styles.css",
	"projects.css":      "css/projects.css",
	"labs.css":          "css/labs.css",
	"awards.css":        "css/awards.css",
	"terminal.css":      "css/terminal.css",
	"projects.json":     "data/projects.json",
	"awards.json":       "data/awards.json",
	"publications.json": "data/publications.json",
}

// SourcePath returns the repository path of a viewable file.
func SourcePath(file string) (string, bool) {
	p, ok := sourceFiles[strings.ToLower(file)]
	return p, ok
}

// ViewCommand opens one of the site's source files.
type ViewCommand struct {
	deps Deps
}

// Name returns the command name "view" for registration and lookup.
func (c *ViewCommand) Name() string {
	return "view"
}

// Description returns a brief description of what the view command does.
func (c *ViewCommand) Description() string {
	return "View source code (opens GitHub)"
}

// Usage returns the syntax for the view command.
func (c *ViewCommand) Usage() string {
	return "Usage: view <filename>\nTry \"dev\" for a list of files."
}

// Hidden keeps view out of help.
func (c *ViewCommand) Hidden() bool {
	return true
}

// Execute opens an allow-listed file. Anything else is reported as missing.
func (c *ViewCommand) Execute(_ context.Context, inv *termtypes.Invocation) (termtypes.Result, error) {
	if inv.Arg(0) == "" {
		return termtypes.Text(c.Usage()), nil
	}

	file := strings.ToLower(inv.Arg(0))
	path, ok := SourcePath(file)
	if !ok {
		return termtypes.Text(fmt.Sprintf("File not found: %s", file)), nil
	}
	msg := fmt.Sprintf("Opening %s in a new tab...", file)
	return termtypes.Text(openLink(c.deps.Browser, c.deps.RawBase+path, msg)), nil
}

// DevText is the developer view shown when markdown rendering is unavailable.
const DevText = "--- SECRET DEVELOPER VIEW ---\n" +
	"repo          : Open main GitHub repository\n" +
	"view <file>   : View source code (opens GitHub)\n\n" +
	"[ HTML ]\n" +
	"  index.html, projects.html, publications.html,\n" +
	"  labs.html, awards.html, terminal.html\n\n" +
	"[ CSS ]\n" +
	"  styles.css, projects.css, labs.css,\n" +
	"  awards.css, terminal.css\n\n" +
	"[ JavaScript ]\n" +
	"  script.js, projects.js, labs.js,\n" +
	"  awards.js, terminal.js\n\n" +
	"[ Data / Config ]\n" +
	"  publications.json, projects.json, awards.json,\n" +
	"  sitemap.xml, readme.md"

// DevCommand shows the developer view, or behaves like view when given a file.
type DevCommand struct {
	deps Deps
	view *ViewCommand
}

// Name returns the command name "dev" for registration and lookup.
func (c *DevCommand) Name() string {
	return "dev"
}

// Description returns a brief description of what the dev command does.
func (c *DevCommand) Description() string {
	return "Show the developer view"
}

// Usage returns the syntax for the dev command.
func (c *DevCommand) Usage() string {
	return "dev [file]"
}

// Hidden keeps dev out of help.
func (c *DevCommand) Hidden() bool {
	return true
}

// Execute renders the developer markdown for the current theme.
func (c *DevCommand) Execute(ctx context.Context, inv *termtypes.Invocation) (termtypes.Result, error) {
	if len(inv.Args) > 0 {
		return c.view.Execute(ctx, inv)
	}
	if c.deps.Markdown == nil {
		return termtypes.Text(DevText), nil
	}

	mode := termtypes.ThemeDark
	if c.deps.Session != nil && c.deps.Session.Settings() != nil {
		mode = c.deps.Session.Settings().Theme()
	}
	frag, err := c.deps.Markdown.RenderFragment(string(embedded.DeveloperViewData), mode)
	if err != nil {
		logger.Warn("Developer view rendering failed", "error", err)
		return termtypes.Text(DevText), nil
	}
	return termtypes.Markup(frag), nil
}
