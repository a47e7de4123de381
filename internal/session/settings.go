package session

import (
	"fmt"
	"sync"

	"portfolioterm/internal/logger"
	"portfolioterm/internal/storage"
	"portfolioterm/pkg/termtypes"
)

// Settings holds the ambient display preferences. Values are read from the
// store once at startup and written back on every change.
type Settings struct {
	mu       sync.RWMutex
	store    storage.Store
	env      Environment
	theme    termtypes.ThemeMode
	accent   *termtypes.RGB
	terminal termtypes.RGB
}

// LoadSettings reads persisted preferences, falling back to the environment
// for the theme and to the default phosphor green for the terminal colour.
// Unparseable stored values are ignored.
func LoadSettings(store storage.Store, env Environment) *Settings {
	s := &Settings{
		store:    store,
		env:      env,
		theme:    defaultTheme(env),
		terminal: termtypes.DefaultTerminalColor,
	}

	if v, ok := store.Get(storage.KeyTheme); ok {
		if mode, valid := termtypes.ParseThemeMode(v); valid {
			s.theme = mode
		} else {
			logger.Warn("Ignoring invalid stored theme", "value", v)
		}
	}
	if v, ok := store.Get(storage.KeyAccentColor); ok {
		if c, err := termtypes.ParseRGBString(v); err == nil {
			s.accent = &c
		} else {
			logger.Warn("Ignoring invalid stored accent colour", "value", v, "error", err)
		}
	}
	if v, ok := store.Get(storage.KeyTerminalColor); ok {
		if c, err := termtypes.ParseRGBString(v); err == nil {
			s.terminal = c
		} else {
			logger.Warn("Ignoring invalid stored terminal colour", "value", v, "error", err)
		}
	}
	return s
}

func defaultTheme(env Environment) termtypes.ThemeMode {
	if env != nil && env.PrefersDark() {
		return termtypes.ThemeDark
	}
	return termtypes.ThemeLight
}

// Theme returns the current page theme.
func (s *Settings) Theme() termtypes.ThemeMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// Accent returns the accent override, if any.
func (s *Settings) Accent() (termtypes.RGB, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.accent == nil {
		return termtypes.RGB{}, false
	}
	return *s.accent, true
}

// TerminalColor returns the terminal's text colour.
func (s *Settings) TerminalColor() termtypes.RGB {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.terminal
}

// ButtonColor is the colour used for the prompt and controls. Colours too
// dark to read fall back to the default green.
func (s *Settings) ButtonColor() termtypes.RGB {
	c := s.TerminalColor()
	if c.IsDark() {
		return termtypes.DefaultTerminalColor
	}
	return c
}

// SetTheme applies and persists the page theme.
func (s *Settings) SetTheme(mode termtypes.ThemeMode) error {
	if _, ok := termtypes.ParseThemeMode(string(mode)); !ok {
		return fmt.Errorf("invalid theme %q", mode)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Set(storage.KeyTheme, string(mode)); err != nil {
		return fmt.Errorf("failed to persist theme: %w", err)
	}
	s.theme = mode
	logger.SettingChange(storage.KeyTheme, string(mode))
	return nil
}

// SetAccent applies and persists the page accent colour.
func (s *Settings) SetAccent(c termtypes.RGB) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Set(storage.KeyAccentColor, c.String()); err != nil {
		return fmt.Errorf("failed to persist accent colour: %w", err)
	}
	s.accent = &c
	logger.SettingChange(storage.KeyAccentColor, c.String())
	return nil
}

// SetTerminalColor applies and persists the terminal colour.
func (s *Settings) SetTerminalColor(c termtypes.RGB) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Set(storage.KeyTerminalColor, c.String()); err != nil {
		return fmt.Errorf("failed to persist terminal colour: %w", err)
	}
	s.terminal = c
	logger.SettingChange(storage.KeyTerminalColor, c.String())
	return nil
}

// Restore removes every override and reapplies the environment defaults.
func (s *Settings) Restore() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range []string{storage.KeyAccentColor, storage.KeyTerminalColor, storage.KeyTheme} {
		if err := s.store.Remove(key); err != nil {
			return fmt.Errorf("failed to remove %s: %w", key, err)
		}
	}
	s.accent = nil
	s.terminal = termtypes.DefaultTerminalColor
	s.theme = defaultTheme(s.env)
	logger.Debug("Settings restored", "theme", s.theme)
	return nil
}
