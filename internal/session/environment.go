package session

import (
	"time"

	"github.com/muesli/termenv"

	"portfolioterm/pkg/termtypes"
)

// Environment reports the operating environment's appearance preference.
type Environment interface {
	PrefersDark() bool
}

// TerminalEnvironment queries the controlling terminal's background colour.
// Prefer, when set to light or dark, overrides the detection.
type TerminalEnvironment struct {
	Prefer string
}

// PrefersDark implements Environment.
func (e TerminalEnvironment) PrefersDark() bool {
	if mode, ok := termtypes.ParseThemeMode(e.Prefer); ok {
		return mode == termtypes.ThemeDark
	}
	return termenv.HasDarkBackground()
}

// StaticEnvironment always reports the same preference.
type StaticEnvironment bool

// PrefersDark implements Environment.
func (s StaticEnvironment) PrefersDark() bool {
	return bool(s)
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time {
	return time.Now()
}
