package data

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"portfolioterm/internal/logger"
	"portfolioterm/pkg/termtypes"
)

// Fetcher retrieves a document over the network.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Loader reads project and award records from an ordered list of sources.
// A source is a local file path or an http(s) URL; the first one that
// yields a valid document wins.
type Loader struct {
	fetcher        Fetcher
	projectSources []string
	awardSources   []string
}

// NewLoader creates a Loader.
func NewLoader(fetcher Fetcher, projectSources, awardSources []string) *Loader {
	return &Loader{
		fetcher:        fetcher,
		projectSources: projectSources,
		awardSources:   awardSources,
	}
}

// LoadProjects returns the first project list that loads, or nil.
func (l *Loader) LoadProjects(ctx context.Context) []termtypes.Project {
	var projects []termtypes.Project
	if !l.loadFirst(ctx, "projects", l.projectSources, &projects) {
		return nil
	}
	return projects
}

// LoadAwards returns the first award list that loads, or nil.
func (l *Loader) LoadAwards(ctx context.Context) []termtypes.Award {
	var awards []termtypes.Award
	if !l.loadFirst(ctx, "awards", l.awardSources, &awards) {
		return nil
	}
	return awards
}

// Refresh loads both collections into a Live catalog.
func (l *Loader) Refresh(ctx context.Context, live *Live) {
	live.SetProjects(l.LoadProjects(ctx))
	live.SetAwards(l.LoadAwards(ctx))
}

func (l *Loader) loadFirst(ctx context.Context, what string, sources []string, into interface{}) bool {
	for _, src := range sources {
		raw, err := l.read(ctx, src)
		if err != nil {
			logger.Warn("Source failed, trying next", "collection", what, "source", src, "error", err)
			continue
		}
		if err := json.Unmarshal(raw, into); err != nil {
			logger.Warn("Source returned malformed JSON", "collection", what, "source", src, "error", err)
			continue
		}
		logger.Debug("Loaded collection", "collection", what, "source", src)
		return true
	}
	if len(sources) > 0 {
		logger.Warn("All sources failed", "collection", what)
	}
	return false
}

func (l *Loader) read(ctx context.Context, src string) ([]byte, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		if l.fetcher == nil {
			return nil, fmt.Errorf("no fetcher configured")
		}
		return l.fetcher.Fetch(ctx, src)
	}
	return os.ReadFile(src)
}
