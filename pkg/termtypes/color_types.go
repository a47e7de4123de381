package termtypes

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ThemeMode is the page-wide light/dark appearance.
type ThemeMode string

const (
	// ThemeLight selects the light palette.
	ThemeLight ThemeMode = "light"
	// ThemeDark selects the dark palette.
	ThemeDark ThemeMode = "dark"
)

// ParseThemeMode accepts exactly "light" or "dark".
func ParseThemeMode(s string) (ThemeMode, bool) {
	switch ThemeMode(s) {
	case ThemeLight, ThemeDark:
		return ThemeMode(s), true
	}
	return "", false
}

// ErrInvalidComponent is returned when a colour component is not an integer in [0,255].
var ErrInvalidComponent = errors.New("invalid value. Use 0-255")

// ErrMissingComponents is returned when fewer than three components are given.
var ErrMissingComponents = errors.New("expected three components")

// RGB is an 8-bit colour.
type RGB struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// DefaultTerminalColor is the classic phosphor green.
var DefaultTerminalColor = RGB{R: 0, G: 255, B: 0}

// ParseRGBArgs validates the first three arguments as integers in [0,255].
// All three are checked before anything is returned, so callers never see
// a partially parsed colour.
func ParseRGBArgs(args []string) (RGB, error) {
	if len(args) < 3 {
		return RGB{}, ErrMissingComponents
	}
	var parts [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(args[i]))
		if err != nil || n < 0 || n > 255 {
			return RGB{}, ErrInvalidComponent
		}
		parts[i] = uint8(n)
	}
	return RGB{R: parts[0], G: parts[1], B: parts[2]}, nil
}

// ParseRGBString parses the persisted "rgb(r, g, b)" form or a "#rrggbb" hex string.
func ParseRGBString(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return RGB{}, fmt.Errorf("parse colour %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return RGB{R: r, G: g, B: b}, nil
	}
	inner, ok := strings.CutPrefix(s, "rgb(")
	if !ok || !strings.HasSuffix(inner, ")") {
		return RGB{}, fmt.Errorf("parse colour %q: unsupported format", s)
	}
	fields := strings.Split(strings.TrimSuffix(inner, ")"), ",")
	rgb, err := ParseRGBArgs(fields)
	if err != nil || len(fields) != 3 {
		return RGB{}, fmt.Errorf("parse colour %q: %w", s, ErrInvalidComponent)
	}
	return rgb, nil
}

// String returns the CSS-like form used for display and persistence.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex returns the colour as "#rrggbb".
func (c RGB) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// Brightness is the perceived brightness on a 0-255 scale.
func (c RGB) Brightness() float64 {
	return (float64(c.R)*299 + float64(c.G)*587 + float64(c.B)*114) / 1000
}

// IsDark reports whether the colour is too dark to be used for controls.
func (c RGB) IsDark() bool {
	return c.Brightness() < 60
}
