package builtin

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"portfolioterm/internal/data"
	"portfolioterm/internal/render"
	"portfolioterm/pkg/termtypes"
)

const emptyListing = "(empty)"

var linkScheme = regexp.MustCompile(`^(https?://|mailto:)`)

// LsCommand lists the sections of the portfolio or the entries of one.
type LsCommand struct {
	deps Deps
}

// Name returns the command name "ls" for registration and lookup.
func (c *LsCommand) Name() string {
	return "ls"
}

// Description returns a brief description of what the ls command does.
func (c *LsCommand) Description() string {
	return "List sections or projects"
}

// Usage returns the syntax for the ls command.
func (c *LsCommand) Usage() string {
	return "ls [section] [-html]"
}

// Execute lists the root, a section's items, or renders the contact and
// award tables.
func (c *LsCommand) Execute(_ context.Context, inv *termtypes.Invocation) (termtypes.Result, error) {
	section := inv.Arg(0)
	catalog := c.deps.Catalog

	switch section {
	case "":
		return termtypes.Text(strings.Join(catalog.ListSections(), "\n")), nil
	case data.SectionProjects:
		entries := catalog.Projects()
		keys := make([]string, len(entries))
		for i, e := range entries {
			keys[i] = e.Key
		}
		return listing(keys), nil
	case data.SectionContact:
		return termtypes.Markup(c.contactTable()), nil
	case data.SectionAwards:
		if inv.Arg(1) == "-html" {
			return termtypes.Markup(c.awardsTable()), nil
		}
	}

	items, ok := catalog.SectionItems(section)
	if !ok {
		return termtypes.Text(fmt.Sprintf("ls: cannot access '%s': No such directory", section)), nil
	}
	return listing(items), nil
}

func (c *LsCommand) contactTable() *termtypes.Fragment {
	contacts := c.deps.Catalog.Contacts()
	rows := make([]render.Row, len(contacts))
	for i, ct := range contacts {
		rows[i] = render.Row{Key: ct.Platform, Value: linkScheme.ReplaceAllString(ct.Link, "")}
	}
	return render.TableFragment(tableStyles(c.deps.Theme), "You can reach me at:", "Platform", "Username / Address", rows)
}

func (c *LsCommand) awardsTable() *termtypes.Fragment {
	awards := c.deps.Catalog.Awards()
	rows := make([]render.Row, len(awards))
	for i, a := range awards {
		rows[i] = render.Row{Key: a.Title, Value: a.Description}
	}
	return render.TableFragment(tableStyles(c.deps.Theme), "", "Award", "Description", rows)
}

func listing(items []string) termtypes.Result {
	if len(items) == 0 {
		return termtypes.Text(emptyListing)
	}
	return termtypes.Text(strings.Join(items, "\n"))
}

// CatCommand prints a project or a section body.
type CatCommand struct {
	deps Deps
}

// Name returns the command name "cat" for registration and lookup.
func (c *CatCommand) Name() string {
	return "cat"
}

// Description returns a brief description of what the cat command does.
func (c *CatCommand) Description() string {
	return "Display section or project content"
}

// Usage returns the syntax for the cat command.
func (c *CatCommand) Usage() string {
	return "cat <section|projects/key>"
}

// Execute resolves the path against projects first, then sections.
func (c *CatCommand) Execute(_ context.Context, inv *termtypes.Invocation) (termtypes.Result, error) {
	path := inv.Arg(0)
	if path == "" {
		return termtypes.Text("cat: missing file operand"), nil
	}

	if p, ok := c.deps.Catalog.Project(strings.TrimPrefix(path, "projects/")); ok {
		return termtypes.Text(FormatProject(p)), nil
	}

	switch path {
	case data.SectionAbout, data.SectionExperience, data.SectionEducation, data.SectionSkills, data.SectionAwards:
		body, _ := c.deps.Catalog.SectionBody(path)
		if strings.TrimSpace(body) == "" {
			return termtypes.Text(emptyListing), nil
		}
		return termtypes.Text(body), nil
	}
	return termtypes.Text(fmt.Sprintf("cat: %s: No such file or directory", path)), nil
}

// FormatProject renders a project as title, description and links.
func FormatProject(p termtypes.Project) string {
	links := "none"
	if l := p.Links(); len(l) > 0 {
		links = strings.Join(l, ", ")
	}
	return fmt.Sprintf("%s\n%s\nLinks: %s", p.Title, p.Description, links)
}
