package services

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptColorService_Plain(t *testing.T) {
	theme, _ := newTestThemeService(t, true)
	svc := NewPromptColorService(theme, func(string) bool { return true })
	require.NoError(t, svc.Initialize())
	svc.SetProfile(termenv.Ascii)

	assert.False(t, svc.IsColorSupported())
	assert.Equal(t, Prompt, svc.Prompt())

	painter := svc.CreateCommandHighlighter()
	assert.Equal(t, []rune("help me"), painter.Paint([]rune("help me"), 0))
}

func TestPromptColorService_Highlight(t *testing.T) {
	theme, _ := newTestThemeService(t, true)
	svc := NewPromptColorService(theme, func(name string) bool { return name == "help" })
	require.NoError(t, svc.Initialize())
	svc.SetProfile(termenv.TrueColor)

	assert.True(t, svc.IsColorSupported())
	assert.Equal(t, Prompt, ansi.Strip(svc.Prompt()))

	painter := svc.CreateCommandHighlighter()
	for _, line := range []string{"help", "  nosuch arg", ""} {
		painted := string(painter.Paint([]rune(line), 0))
		assert.Equal(t, line, ansi.Strip(painted))
	}
}
