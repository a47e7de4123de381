package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Printer writes blocks to a stream, one block per call.
type Printer struct {
	styleProvider StyleProvider
	writer        io.Writer
	mode          Mode
	skipEcho      bool
	prefix        string

	mu sync.Mutex
}

// NewPrinter creates a Printer writing to os.Stdout by default.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{
		writer: os.Stdout,
		mode:   ModeAuto,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Echo writes the prompt and a submitted line.
func (p *Printer) Echo(text string) {
	p.Block(SemanticEcho, text)
}

// Text writes plain command output.
func (p *Printer) Text(text string) {
	p.Block(SemanticText, text)
}

// Markup writes a pre-rendered markup element.
func (p *Printer) Markup(text string) {
	p.Block(SemanticMarkup, text)
}

// Block writes text as a block of the given semantic type.
func (p *Printer) Block(semantic SemanticType, text string) {
	if semantic == SemanticEcho && p.skipEcho {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	var out string
	switch p.mode {
	case ModeJSON:
		out = p.renderJSON(semantic, text)
	case ModePlain:
		out = PlainTextStyle{}.Render(text) + "\n"
	default:
		out = p.renderStyled(semantic, text) + "\n"
	}

	if p.prefix != "" {
		out = p.prefix + out
	}
	_, _ = fmt.Fprint(p.writer, out)
}

func (p *Printer) renderStyled(semantic SemanticType, text string) string {
	if p.styleProvider == nil || !p.styleProvider.IsAvailable() {
		return text
	}
	// Markup carries its own styling.
	if semantic == SemanticMarkup {
		return text
	}
	lines := strings.Split(text, "\n")
	style := p.styleProvider.GetStyle(string(semantic))
	for i, l := range lines {
		lines[i] = style.Render(l)
	}
	return strings.Join(lines, "\n")
}

func (p *Printer) renderJSON(semantic SemanticType, text string) string {
	payload := map[string]interface{}{
		"type":    semantic,
		"message": PlainTextStyle{}.Render(text),
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return text + "\n"
	}
	return string(b) + "\n"
}

// SetWriter changes the destination.
func (p *Printer) SetWriter(writer io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.writer = writer
}

// IsStylable returns true if the printer can apply styles.
func (p *Printer) IsStylable() bool {
	return p.mode == ModeAuto && p.styleProvider != nil && p.styleProvider.IsAvailable()
}
