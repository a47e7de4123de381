// Package session holds the per-session state of the terminal: command
// history, the simulated login time, display flags and persisted settings.
// A State is constructed once at startup and injected into every component.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// State is the process-wide session state.
type State struct {
	mu        sync.RWMutex
	id        string
	clock     Clock
	history   []string
	loginTime time.Time
	matrix    bool
	exited    bool
	settings  *Settings
}

// New creates a session. The login time starts at construction and is
// refreshed when the boot sequence completes.
func New(settings *Settings, clock Clock) *State {
	if clock == nil {
		clock = SystemClock{}
	}
	return &State{
		id:        uuid.New().String(),
		clock:     clock,
		loginTime: clock.Now(),
		settings:  settings,
	}
}

// ID returns the session identifier used in logs.
func (s *State) ID() string {
	return s.id
}

// Now returns the session clock's current time.
func (s *State) Now() time.Time {
	return s.clock.Now()
}

// Settings returns the persisted display settings.
func (s *State) Settings() *Settings {
	return s.settings
}

// AppendHistory records a submitted line.
func (s *State) AppendHistory(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, line)
}

// History returns a copy of the submitted lines in order.
func (s *State) History() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}

// HistoryLen returns the number of submitted lines.
func (s *State) HistoryLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.history)
}

// HistoryAt returns the i-th submitted line.
func (s *State) HistoryAt(i int) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.history) {
		return "", false
	}
	return s.history[i], true
}

// MarkLogin records the login time from the session clock.
func (s *State) MarkLogin() time.Time {
	now := s.clock.Now()
	s.mu.Lock()
	s.loginTime = now
	s.mu.Unlock()
	return now
}

// LoginTime returns the simulated login time.
func (s *State) LoginTime() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loginTime
}

// ToggleMatrix flips the matrix display flag and returns the new value.
func (s *State) ToggleMatrix() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matrix = !s.matrix
	return s.matrix
}

// Matrix reports whether matrix mode is on.
func (s *State) Matrix() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.matrix
}

// RequestExit marks the session as ended.
func (s *State) RequestExit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exited = true
}

// Exited reports whether exit was requested.
func (s *State) Exited() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.exited
}
