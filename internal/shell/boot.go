package shell

import (
	"context"
	"time"

	"portfolioterm/internal/logger"
)

// BootLines are typed, one every boot interval, when the terminal starts.
var BootLines = []string{
	"[  OK  ] Initializing system modules...",
	"[  OK  ] Checking environment...",
	"[  OK  ] Network services started.",
	"[  OK  ] User session created.",
	"--- Terminal Ready ---",
	`Type "help" to get started.`,
}

// Boot clears the scrollback and starts typing BootLines, line i at
// i*interval. One interval after the last line starts, the login time is
// recorded and ready is called. Boot returns immediately; cancelling ctx
// abandons the sequence without calling ready.
func (t *Terminal) Boot(ctx context.Context, ready func()) {
	interval := t.Config.BootInterval
	delay := t.Config.BootDelay

	t.Renderer.Clear()
	start := time.Now()

	go func() {
		for i, line := range BootLines {
			if !waitUntil(ctx, start.Add(time.Duration(i)*interval)) {
				return
			}
			t.Renderer.TypeLineWithDelay(line, delay, nil)
		}
		if !waitUntil(ctx, start.Add(time.Duration(len(BootLines)+1)*interval)) {
			return
		}
		login := t.State.MarkLogin()
		logger.Debug("Boot complete", "session", t.State.ID(), "login", login)
		if ready != nil {
			ready()
		}
	}()
}

// BootSync runs Boot and blocks until it is ready and every boot line is
// fully typed.
func (t *Terminal) BootSync(ctx context.Context) error {
	done := make(chan struct{})
	t.Boot(ctx, func() { close(done) })
	select {
	case <-done:
		t.Renderer.Wait()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func waitUntil(ctx context.Context, at time.Time) bool {
	d := time.Until(at)
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
