package testutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStepClock(t *testing.T) {
	c := NewStepClock(time.Minute)
	assert.Equal(t, BaseTime, c.Now())
	assert.Equal(t, BaseTime.Add(time.Minute), c.Now())
	c.Reset()
	assert.Equal(t, BaseTime, c.Now())
}

func TestFixedClock(t *testing.T) {
	c := FixedClock(BaseTime)
	assert.Equal(t, BaseTime, c.Now())
	assert.Equal(t, BaseTime, c.Now())
}

func TestTranscriptDiff(t *testing.T) {
	assert.Empty(t, TranscriptDiff("a\nb\n", "a\nb\n"))

	diff := TranscriptDiff("a\nb\n", "a\nc\n")
	assert.Contains(t, diff, "- b")
	assert.Contains(t, diff, "+ c")
	assert.Contains(t, diff, "  a")
}
