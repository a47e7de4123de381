// Package testutils provides deterministic clocks and transcript helpers for
// portfolio terminal tests.
package testutils

import (
	"sync"
	"time"
)

// BaseTime is the instant every StepClock starts from.
var BaseTime = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// FixedClock always returns the same instant.
type FixedClock time.Time

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return time.Time(c)
}

// StepClock returns incrementing timestamps: each call is one step later
// than the previous one, starting from BaseTime.
type StepClock struct {
	mu    sync.Mutex
	step  time.Duration
	count int64
}

// NewStepClock creates a StepClock. A zero step defaults to one second.
func NewStepClock(step time.Duration) *StepClock {
	if step <= 0 {
		step = time.Second
	}
	return &StepClock{step: step}
}

// Now returns BaseTime plus the number of previous calls times the step.
func (c *StepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := BaseTime.Add(time.Duration(c.count) * c.step)
	c.count++
	return t
}

// Reset restarts the clock at BaseTime.
func (c *StepClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count = 0
}
