package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]log.Level{
		"debug":   log.DebugLevel,
		"INFO":    log.InfoLevel,
		"warn":    log.WarnLevel,
		"error":   log.ErrorLevel,
		"fatal":   log.FatalLevel,
		"unknown": log.InfoLevel,
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, parseLogLevel(in))
		})
	}
}

func TestConfigure_LogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pterm.log")
	require.NoError(t, Configure("debug", path, true))
	t.Cleanup(func() { _ = Configure("info", "", false) })

	assert.Equal(t, log.DebugLevel, Logger.GetLevel())
	Info("hello from test", "component", "logger")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
}

func TestConfigure_EnvFallback(t *testing.T) {
	t.Setenv("PTERM_LOG_LEVEL", "warn")
	require.NoError(t, Configure("", "", true))
	t.Cleanup(func() { _ = Configure("info", "", false) })

	assert.Equal(t, log.WarnLevel, Logger.GetLevel())
}

func TestNewStyledLogger_InheritsLevel(t *testing.T) {
	require.NoError(t, Configure("error", "", true))
	t.Cleanup(func() { _ = Configure("info", "", false) })

	l := NewStyledLogger("Renderer")
	assert.Equal(t, log.ErrorLevel, l.GetLevel())
}
