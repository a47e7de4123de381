// Package data provides the portfolio records behind the virtual filesystem
// of ls and cat: bundled fixtures, live project and award records, and the
// loader that fetches them.
package data

import "portfolioterm/pkg/termtypes"

// Section names of the virtual filesystem root, in listing order.
const (
	SectionAbout      = "about"
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionSkills     = "skills"
	SectionProjects   = "projects"
	SectionAwards     = "awards"
	SectionContact    = "contact"
)

var rootSections = []string{
	SectionAbout,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionProjects,
	SectionAwards,
	SectionContact,
}

// ProjectEntry is a project together with its lookup key.
type ProjectEntry struct {
	Key     string
	Project termtypes.Project
}

// Catalog is the read-only view of the portfolio used by ls and cat.
type Catalog interface {
	// ListSections returns the root sections in listing order.
	ListSections() []string
	// SectionItems returns the one-line entries of a listable section.
	// ok is false for sections that cannot be listed this way.
	SectionItems(section string) (items []string, ok bool)
	// SectionBody returns the full text of a readable section.
	SectionBody(section string) (body string, ok bool)
	// Projects returns every project in order.
	Projects() []ProjectEntry
	// Project looks up a project by key.
	Project(key string) (termtypes.Project, bool)
	// Awards returns every award in order.
	Awards() []termtypes.Award
	// Contacts returns every contact in order.
	Contacts() []termtypes.Contact
	// About returns the biography.
	About() string
}

// ListSections returns a copy of the root sections.
func ListSections() []string {
	out := make([]string, len(rootSections))
	copy(out, rootSections)
	return out
}
