package services

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"

	"portfolioterm/internal/logger"
	"portfolioterm/pkg/termtypes"
)

// MarkdownService renders markdown to ANSI text using Glamour.
type MarkdownService struct {
	initialized bool
	wordWrap    int
	renderers   map[termtypes.ThemeMode]*glamour.TermRenderer
}

// NewMarkdownService creates a new MarkdownService instance.
func NewMarkdownService() *MarkdownService {
	return &MarkdownService{
		wordWrap:  80,
		renderers: make(map[termtypes.ThemeMode]*glamour.TermRenderer),
	}
}

// Name returns the service name "markdown" for registration.
func (m *MarkdownService) Name() string {
	return "markdown"
}

// Initialize builds one renderer per theme.
func (m *MarkdownService) Initialize() error {
	for mode, style := range map[termtypes.ThemeMode]string{
		termtypes.ThemeDark:  "dark",
		termtypes.ThemeLight: "light",
	} {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(m.wordWrap),
		)
		if err != nil {
			return fmt.Errorf("failed to create markdown renderer: %w", err)
		}
		m.renderers[mode] = r
	}
	m.initialized = true
	logger.Debug("MarkdownService initialized successfully")
	return nil
}

// Render renders markdown for the given theme.
func (m *MarkdownService) Render(markdown string, mode termtypes.ThemeMode) (string, error) {
	if !m.initialized {
		return "", fmt.Errorf("markdown service not initialized")
	}
	if strings.TrimSpace(markdown) == "" {
		return "", fmt.Errorf("markdown content cannot be empty")
	}

	r, ok := m.renderers[mode]
	if !ok {
		r = m.renderers[termtypes.ThemeDark]
	}
	rendered, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return rendered, nil
}

// RenderFragment renders markdown and splits it into fragment elements, one
// per block separated by blank lines. Glamour pads lines with styled spaces,
// so blankness is judged on the stripped text.
func (m *MarkdownService) RenderFragment(markdown string, mode termtypes.ThemeMode) (*termtypes.Fragment, error) {
	rendered, err := m.Render(markdown, mode)
	if err != nil {
		return nil, err
	}

	var elements []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			elements = append(elements, strings.Join(current, "\n"))
			current = nil
		}
	}
	for _, line := range strings.Split(rendered, "\n") {
		if strings.TrimSpace(ansi.Strip(line)) == "" {
			flush()
			continue
		}
		current = append(current, strings.TrimRight(line, " "))
	}
	flush()
	return termtypes.NewFragment(elements...), nil
}
