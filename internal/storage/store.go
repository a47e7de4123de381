// Package storage provides the key-value store that keeps display settings
// across sessions. It mirrors the browser's local storage: flat string keys,
// string values, last write wins.
package storage

// Store is a flat string key-value store.
type Store interface {
	// Get returns the value and true if the key exists.
	Get(key string) (string, bool)
	// Set stores value under key, persisting it immediately.
	Set(key, value string) error
	// Remove deletes key. Removing a missing key is not an error.
	Remove(key string) error
}

// Keys used by the terminal for its persisted settings.
const (
	KeyTheme         = "theme"
	KeyAccentColor   = "accent-color"
	KeyTerminalColor = "terminal-color"
)
