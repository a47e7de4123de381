package data

import (
	"encoding/json"
	"fmt"
	"strings"

	"portfolioterm/internal/data/embedded"
	"portfolioterm/pkg/termtypes"
)

// Fixture is the shape of the bundled portfolio file.
type Fixture struct {
	About      string              `json:"about"`
	Experience []string            `json:"experience"`
	Education  []string            `json:"education"`
	Skills     []termtypes.Skill   `json:"skills"`
	Contact    []termtypes.Contact `json:"contact"`
	Projects   []termtypes.Project `json:"projects"`
	Awards     []termtypes.Award   `json:"awards"`
}

// Bundled is a Catalog backed entirely by a fixture.
type Bundled struct {
	fixture  Fixture
	projects []ProjectEntry
}

// NewBundled parses the embedded fixture.
func NewBundled() (*Bundled, error) {
	return ParseBundled(embedded.PortfolioData)
}

// ParseBundled parses a fixture document.
func ParseBundled(raw []byte) (*Bundled, error) {
	var f Fixture
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse portfolio fixture: %w", err)
	}
	return &Bundled{fixture: f, projects: projectEntries(f.Projects)}, nil
}

// ListSections implements Catalog.
func (b *Bundled) ListSections() []string {
	return ListSections()
}

// About implements Catalog.
func (b *Bundled) About() string {
	return b.fixture.About
}

// SectionItems implements Catalog.
func (b *Bundled) SectionItems(section string) ([]string, bool) {
	switch section {
	case SectionExperience:
		return trimBullets(b.fixture.Experience), true
	case SectionEducation:
		return trimBullets(b.fixture.Education), true
	case SectionSkills:
		out := make([]string, len(b.fixture.Skills))
		for i, s := range b.fixture.Skills {
			out[i] = s.Title
		}
		return out, true
	case SectionAwards:
		return awardTitles(b.Awards()), true
	}
	return nil, false
}

// SectionBody implements Catalog.
func (b *Bundled) SectionBody(section string) (string, bool) {
	switch section {
	case SectionAbout:
		return b.fixture.About, true
	case SectionExperience:
		return strings.Join(b.fixture.Experience, "\n"), true
	case SectionEducation:
		return strings.Join(b.fixture.Education, "\n"), true
	case SectionSkills:
		parts := make([]string, len(b.fixture.Skills))
		for i, s := range b.fixture.Skills {
			parts[i] = s.Title + ": " + s.Desc
		}
		return strings.Join(parts, "\n\n"), true
	case SectionAwards:
		return awardBody(b.Awards()), true
	}
	return "", false
}

// Projects implements Catalog.
func (b *Bundled) Projects() []ProjectEntry {
	return append([]ProjectEntry(nil), b.projects...)
}

// Project implements Catalog.
func (b *Bundled) Project(key string) (termtypes.Project, bool) {
	return findProject(b.projects, key)
}

// Awards implements Catalog.
func (b *Bundled) Awards() []termtypes.Award {
	return append([]termtypes.Award(nil), b.fixture.Awards...)
}

// Contacts implements Catalog.
func (b *Bundled) Contacts() []termtypes.Contact {
	return append([]termtypes.Contact(nil), b.fixture.Contact...)
}

func trimBullets(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = strings.TrimPrefix(s, "- ")
	}
	return out
}

func awardTitles(awards []termtypes.Award) []string {
	out := make([]string, len(awards))
	for i, a := range awards {
		out[i] = a.Title
		if out[i] == "" {
			out[i] = "(untitled)"
		}
	}
	return out
}

func awardBody(awards []termtypes.Award) string {
	parts := make([]string, len(awards))
	for i, a := range awards {
		parts[i] = a.Title + " — " + a.Description
	}
	return strings.Join(parts, "\n")
}

func findProject(entries []ProjectEntry, key string) (termtypes.Project, bool) {
	for _, e := range entries {
		if e.Key == key {
			return e.Project, true
		}
	}
	return termtypes.Project{}, false
}
