package services

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"portfolioterm/internal/data/embedded"
	"portfolioterm/internal/logger"
	"portfolioterm/internal/output"
	"portfolioterm/internal/render"
	"portfolioterm/internal/session"
	"portfolioterm/pkg/termtypes"
)

// StyleConfig is one styled element of a palette file.
type StyleConfig struct {
	Foreground string `yaml:"foreground"`
	Background string `yaml:"background"`
	Bold       bool   `yaml:"bold"`
}

// PaletteConfig is the palette section of a theme file.
type PaletteConfig struct {
	Background string      `yaml:"background"`
	Muted      string      `yaml:"muted"`
	Header     StyleConfig `yaml:"header"`
	Accent     StyleConfig `yaml:"accent"`
	Error      StyleConfig `yaml:"error"`
	Border     StyleConfig `yaml:"border"`
	Matrix     StyleConfig `yaml:"matrix"`
}

// ThemeFile is the on-disk theme format.
type ThemeFile struct {
	Name    string        `yaml:"name"`
	Palette PaletteConfig `yaml:"palette"`
}

// Theme is the set of styles derived from a palette and the current settings.
type Theme struct {
	Mode       termtypes.ThemeMode
	Text       lipgloss.Style // Terminal colour
	Prompt     lipgloss.Style // Button colour, bold
	Header     lipgloss.Style
	Accent     lipgloss.Style
	Error      lipgloss.Style
	Border     lipgloss.Style
	Muted      lipgloss.Style
	Matrix     lipgloss.Style
	Background lipgloss.Color
}

// ThemeService builds styles from the session settings.
type ThemeService struct {
	initialized bool
	settings    *session.Settings
	palettes    map[termtypes.ThemeMode]PaletteConfig
}

// NewThemeService creates a ThemeService reading the given settings.
func NewThemeService(settings *session.Settings) *ThemeService {
	return &ThemeService{
		settings: settings,
		palettes: make(map[termtypes.ThemeMode]PaletteConfig),
	}
}

// Name returns the service name "theme" for registration.
func (t *ThemeService) Name() string {
	return "theme"
}

// Initialize loads the embedded palettes.
func (t *ThemeService) Initialize() error {
	files := map[termtypes.ThemeMode][]byte{
		termtypes.ThemeDark:  embedded.DarkThemeData,
		termtypes.ThemeLight: embedded.LightThemeData,
	}
	for mode, raw := range files {
		palette, err := loadPalette(raw)
		if err != nil {
			return fmt.Errorf("failed to load %s theme: %w", mode, err)
		}
		t.palettes[mode] = palette
	}
	t.initialized = true
	logger.Debug("ThemeService initialized", "themes", len(t.palettes))
	return nil
}

func loadPalette(raw []byte) (PaletteConfig, error) {
	var file ThemeFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return PaletteConfig{}, fmt.Errorf("failed to parse theme file: %w", err)
	}
	return file.Palette, nil
}

func createStyle(c StyleConfig) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c.Foreground != "" {
		style = style.Foreground(lipgloss.Color(c.Foreground))
	}
	if c.Background != "" {
		style = style.Background(lipgloss.Color(c.Background))
	}
	if c.Bold {
		style = style.Bold(true)
	}
	return style
}

// Current returns the theme for the current settings.
func (t *ThemeService) Current() Theme {
	mode := termtypes.ThemeDark
	if t.settings != nil {
		mode = t.settings.Theme()
	}
	palette := t.palettes[mode]

	terminal := termtypes.DefaultTerminalColor
	button := termtypes.DefaultTerminalColor
	if t.settings != nil {
		terminal = t.settings.TerminalColor()
		button = t.settings.ButtonColor()
	}

	accent := createStyle(palette.Accent)
	header := createStyle(palette.Header)
	if t.settings != nil {
		if c, ok := t.settings.Accent(); ok {
			accent = accent.Foreground(lipgloss.Color(c.Hex()))
			header = header.Foreground(lipgloss.Color(c.Hex()))
		}
	}

	return Theme{
		Mode:       mode,
		Text:       lipgloss.NewStyle().Foreground(lipgloss.Color(terminal.Hex())),
		Prompt:     lipgloss.NewStyle().Foreground(lipgloss.Color(button.Hex())).Bold(true),
		Header:     header,
		Accent:     accent,
		Error:      createStyle(palette.Error),
		Border:     createStyle(palette.Border),
		Muted:      lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Muted)),
		Matrix:     createStyle(palette.Matrix),
		Background: lipgloss.Color(palette.Background),
	}
}

// TableStyles returns styles for help, contact and award tables.
func (t *ThemeService) TableStyles() render.TableStyles {
	if !t.initialized {
		return render.PlainTableStyles()
	}
	th := t.Current()
	return render.TableStyles{
		Header: th.Header.Padding(0, 1),
		Key:    th.Accent.Padding(0, 1),
		Value:  lipgloss.NewStyle().Padding(0, 1),
		Border: th.Border,
	}
}

// GetStyle implements output.StyleProvider.
func (t *ThemeService) GetStyle(semantic string) output.TextStyle {
	th := t.Current()
	switch output.SemanticType(semantic) {
	case output.SemanticEcho:
		return th.Prompt
	case output.SemanticText:
		return th.Text
	default:
		return lipgloss.NewStyle()
	}
}

// IsAvailable implements output.StyleProvider.
func (t *ThemeService) IsAvailable() bool {
	return t.initialized
}

var (
	_ output.StyleProvider = (*ThemeService)(nil)
	_ output.TextStyle     = lipgloss.Style{}
)
