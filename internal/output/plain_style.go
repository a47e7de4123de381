package output

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// PlainTextStyle removes any ANSI styling from the text.
type PlainTextStyle struct{}

// Render implements TextStyle.
func (PlainTextStyle) Render(strs ...string) string {
	return ansi.Strip(strings.Join(strs, " "))
}

// PlainStyleProvider returns PlainTextStyle for every semantic type.
type PlainStyleProvider struct{}

// NewPlainStyleProvider creates a plain style provider.
func NewPlainStyleProvider() *PlainStyleProvider {
	return &PlainStyleProvider{}
}

// GetStyle implements StyleProvider.
func (p *PlainStyleProvider) GetStyle(string) TextStyle {
	return PlainTextStyle{}
}

// IsAvailable implements StyleProvider.
func (p *PlainStyleProvider) IsAvailable() bool {
	return true
}
