// Package output writes completed scrollback blocks to a stream for the
// line-mode and batch front-ends. Styling is injected so the package stays
// free of service dependencies.
package output

// StyleProvider is implemented by styling services (like ThemeService) to
// supply a style for each semantic type.
type StyleProvider interface {
	// GetStyle returns a TextStyle for the given semantic type.
	GetStyle(semantic string) TextStyle

	// IsAvailable returns true if the provider is ready to supply styles.
	IsAvailable() bool
}

// TextStyle renders text with styling. Multiple strings are joined with a
// space, matching lipgloss.Style.
type TextStyle interface {
	Render(strs ...string) string
}

// Mode defines the output modes a printer can operate in.
type Mode int

const (
	// ModeAuto styles output when a provider is available
	ModeAuto Mode = iota

	// ModePlain strips all styling, including styling embedded in markup
	ModePlain

	// ModeJSON writes one JSON object per block
	ModeJSON
)

// SemanticType is the kind of block being written.
type SemanticType string

const (
	// SemanticEcho is the prompt plus a submitted line.
	SemanticEcho SemanticType = "echo"
	// SemanticText is plain command output.
	SemanticText SemanticType = "text"
	// SemanticMarkup is pre-rendered trusted markup.
	SemanticMarkup SemanticType = "markup"
)
