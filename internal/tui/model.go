// Package tui is the full-screen front-end: a scrollback viewport above a
// single input line, redrawn whenever the renderer changes.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"portfolioterm/internal/logger"
	"portfolioterm/internal/render"
	"portfolioterm/internal/services"
	"portfolioterm/internal/shell"
)

// Message types
type changedMsg struct{}
type bootDoneMsg struct{}
type exitMsg struct{}

// Model is the bubbletea model around a Terminal.
type Model struct {
	term    *shell.Terminal
	ctx     context.Context
	changes chan struct{}

	input    textinput.Model
	viewport viewport.Model
	sized    bool
	ready    bool // Boot finished, input accepted
	exiting  bool
	width    int
	height   int
}

// New creates a Model. The renderer's follow hook is replaced so every
// scrollback change schedules a redraw; bursts of changes coalesce into one.
func New(ctx context.Context, term *shell.Terminal) Model {
	changes := make(chan struct{}, 1)
	term.Renderer.SetFollow(func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	})

	ti := textinput.New()
	ti.Prompt = term.Prompt()
	ti.CharLimit = 256
	ti.Blur()

	return Model{
		term:    term,
		ctx:     ctx,
		changes: changes,
		input:   ti,
	}
}

// Init starts the boot sequence, the live data load and the redraw loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.boot(),
		m.loadData(),
		waitForChange(m.changes),
	)
}

func (m Model) boot() tea.Cmd {
	term, ctx := m.term, m.ctx
	return func() tea.Msg {
		done := make(chan struct{})
		term.Boot(ctx, func() { close(done) })
		select {
		case <-done:
			return bootDoneMsg{}
		case <-ctx.Done():
			return nil
		}
	}
}

func (m Model) loadData() tea.Cmd {
	term, ctx := m.term, m.ctx
	return func() tea.Msg {
		term.LoadData(ctx)
		return nil
	}
}

func waitForChange(changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-changes
		return changedMsg{}
	}
}

// waitForExit lets the farewell line finish before quitting.
func (m Model) waitForExit() tea.Cmd {
	term := m.term
	return func() tea.Msg {
		term.Wait()
		return exitMsg{}
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		if !m.ready || m.exiting {
			return m, nil
		}
		switch msg.String() {
		case "enter":
			line := m.input.Value()
			m.input.SetValue("")
			m.term.Submit(line)
			m.input.Prompt = m.term.Prompt()
			return m, nil
		case "up":
			m.input.SetValue(m.term.Reader.Up())
			m.input.CursorEnd()
			return m, nil
		case "down":
			m.input.SetValue(m.term.Reader.Down())
			m.input.CursorEnd()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.term.Reader.SetBuffer(m.input.Value())
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.sized {
			m.viewport = viewport.New(msg.Width, max(msg.Height-1, 1))
			m.sized = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = max(msg.Height-1, 1)
		}
		m.input.Width = max(msg.Width-lipgloss.Width(m.input.Prompt)-1, 1)
		m.refresh()

	case changedMsg:
		m.refresh()
		m.input.Prompt = m.term.Prompt()
		cmds = append(cmds, waitForChange(m.changes))
		if m.term.Exited() && !m.exiting {
			m.exiting = true
			m.input.Blur()
			logger.Debug("Session exit requested", "session", m.term.State.ID())
			cmds = append(cmds, m.waitForExit())
		}

	case bootDoneMsg:
		m.ready = true
		cmds = append(cmds, m.input.Focus())

	case exitMsg:
		return m, tea.Quit

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// refresh redraws the scrollback and follows it to the bottom.
func (m *Model) refresh() {
	if !m.sized {
		return
	}
	m.viewport.SetContent(m.content())
	m.viewport.GotoBottom()
}

// content renders every block with the current theme.
func (m Model) content() string {
	theme := m.term.Theme.Current()
	text := theme.Text
	if m.term.State.Matrix() {
		text = theme.Matrix
	}
	wrap := lipgloss.NewStyle().Width(max(m.width, 1))

	blocks := m.term.Renderer.Blocks()
	lines := make([]string, 0, len(blocks))
	for _, b := range blocks {
		switch b.Kind {
		case render.BlockEcho:
			cmd := strings.TrimPrefix(b.Content, services.Prompt)
			lines = append(lines, wrap.Render(theme.Prompt.Render(services.Prompt)+text.Render(cmd)))
		case render.BlockMarkup:
			lines = append(lines, b.Content)
		default:
			lines = append(lines, wrap.Render(renderLines(text, b.Content)))
		}
	}
	return strings.Join(lines, "\n")
}

func renderLines(style lipgloss.Style, s string) string {
	parts := strings.Split(s, "\n")
	for i, p := range parts {
		parts[i] = style.Render(p)
	}
	return strings.Join(parts, "\n")
}

// View renders the TUI
func (m Model) View() string {
	if !m.sized {
		return ""
	}
	if !m.ready || m.exiting {
		return m.viewport.View() + "\n"
	}
	return m.viewport.View() + "\n" + m.input.View()
}

// Run starts the program on the alternate screen and blocks until exit.
func Run(ctx context.Context, term *shell.Terminal) error {
	p := tea.NewProgram(New(ctx, term), tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
