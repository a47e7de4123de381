package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolioterm/internal/testutils"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("PTERM_STORAGE_PATH", filepath.Join(dir, "settings.yaml"))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestVersionCommand(t *testing.T) {
	isolate(t)
	out := execute(t, "version")
	assert.True(t, strings.HasPrefix(out, "portfolioterm v"))
}

func TestBatchCommand(t *testing.T) {
	dir := isolate(t)
	script := testutils.WriteTempFile(t, "tour.txt", "whoami\ncolor 10 20 30\n")

	out := execute(t, "batch", "--format", "plain", "--log-level", "error", script)
	assert.Equal(t, "guest@portfolio:~$ whoami\nguest\nguest@portfolio:~$ color 10 20 30\nTerminal color set to rgb(10, 20, 30)\n", out)

	// The colour was persisted to the settings file.
	out = execute(t, "batch", "--log-level", "error", testutils.WriteTempFile(t, "again.txt", "restore\n"))
	assert.Contains(t, out, "System restored to default settings.")
	assert.FileExists(t, filepath.Join(dir, "settings.yaml"))
}

func TestFullScreen(t *testing.T) {
	tests := []struct {
		name string
		cmd  *cobra.Command
		want bool
	}{
		{name: "root", cmd: rootCmd, want: true},
		{name: "line", cmd: lineCmd, want: false},
		{name: "batch", cmd: batchCmd, want: false},
		{name: "version", cmd: versionCmd, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fullScreen(tt.cmd))
		})
	}
}
