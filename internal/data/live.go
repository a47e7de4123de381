package data

import (
	"sync"

	"portfolioterm/pkg/termtypes"
)

// Live is a Catalog over fetched project and award records. Anything it does
// not hold, including empty collections, is answered by the fallback.
type Live struct {
	mu       sync.RWMutex
	fallback Catalog
	projects []ProjectEntry
	awards   []termtypes.Award
}

// NewLive creates a Live catalog with no records yet.
func NewLive(fallback Catalog) *Live {
	return &Live{fallback: fallback}
}

// SetProjects replaces the live project records.
func (l *Live) SetProjects(projects []termtypes.Project) {
	entries := projectEntries(projects)
	l.mu.Lock()
	defer l.mu.Unlock()
	l.projects = entries
}

// SetAwards replaces the live award records.
func (l *Live) SetAwards(awards []termtypes.Award) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.awards = append([]termtypes.Award(nil), awards...)
}

// ListSections implements Catalog.
func (l *Live) ListSections() []string {
	return ListSections()
}

// About implements Catalog.
func (l *Live) About() string {
	return l.fallback.About()
}

// SectionItems implements Catalog.
func (l *Live) SectionItems(section string) ([]string, bool) {
	if section == SectionAwards {
		return awardTitles(l.Awards()), true
	}
	return l.fallback.SectionItems(section)
}

// SectionBody implements Catalog.
func (l *Live) SectionBody(section string) (string, bool) {
	if section == SectionAwards {
		return awardBody(l.Awards()), true
	}
	return l.fallback.SectionBody(section)
}

// Projects implements Catalog.
func (l *Live) Projects() []ProjectEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if len(l.projects) == 0 {
		return l.fallback.Projects()
	}
	return append([]ProjectEntry(nil), l.projects...)
}

// Project implements Catalog.
func (l *Live) Project(key string) (termtypes.Project, bool) {
	return findProject(l.Projects(), key)
}

// Awards implements Catalog.
func (l *Live) Awards() []termtypes.Award {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if len(l.awards) == 0 {
		return l.fallback.Awards()
	}
	return append([]termtypes.Award(nil), l.awards...)
}

// Contacts implements Catalog.
func (l *Live) Contacts() []termtypes.Contact {
	return l.fallback.Contacts()
}
