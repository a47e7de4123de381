package shell

import (
	"strings"
	"sync"

	"portfolioterm/internal/session"
)

// LineReader owns the input buffer and the history cursor. History itself
// lives in the session and is append-only.
type LineReader struct {
	mu       sync.Mutex
	session  *session.State
	cursor   int
	buffer   string
	onSubmit func(line string)
}

// NewLineReader creates a reader over the session's history. onSubmit is
// called with each accepted line after it has been recorded.
func NewLineReader(state *session.State, onSubmit func(line string)) *LineReader {
	return &LineReader{
		session:  state,
		cursor:   state.HistoryLen(),
		onSubmit: onSubmit,
	}
}

// Submit accepts raw input. Blank input is ignored and reported as false.
func (r *LineReader) Submit(raw string) bool {
	line := strings.TrimSpace(raw)
	if line == "" {
		return false
	}

	r.mu.Lock()
	r.session.AppendHistory(line)
	r.cursor = r.session.HistoryLen()
	r.buffer = ""
	r.mu.Unlock()

	if r.onSubmit != nil {
		r.onSubmit(line)
	}
	return true
}

// Up moves the cursor to the previous entry and loads it into the buffer.
// At the oldest entry it does nothing.
func (r *LineReader) Up() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cursor > 0 {
		r.cursor--
		r.buffer, _ = r.session.HistoryAt(r.cursor)
	}
	return r.buffer
}

// Down moves the cursor to the next entry. Moving past the newest entry
// clears the buffer and parks the cursor after the end.
func (r *LineReader) Down() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := r.session.HistoryLen()
	if r.cursor < n-1 {
		r.cursor++
		r.buffer, _ = r.session.HistoryAt(r.cursor)
	} else {
		r.cursor = n
		r.buffer = ""
	}
	return r.buffer
}

// Buffer returns the current input.
func (r *LineReader) Buffer() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buffer
}

// SetBuffer records input typed by the user.
func (r *LineReader) SetBuffer(s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.buffer = s
}

// Cursor returns the history position, in [0, len(history)].
func (r *LineReader) Cursor() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cursor
}
