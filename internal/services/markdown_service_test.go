package services

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolioterm/internal/data/embedded"
	"portfolioterm/pkg/termtypes"
)

func TestMarkdownService_Name(t *testing.T) {
	assert.Equal(t, "markdown", NewMarkdownService().Name())
}

func TestMarkdownService_Render(t *testing.T) {
	service := NewMarkdownService()

	_, err := service.Render("# Test", termtypes.ThemeDark)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not initialized")

	require.NoError(t, service.Initialize())

	_, err = service.Render("   ", termtypes.ThemeDark)
	assert.Error(t, err)

	for _, mode := range []termtypes.ThemeMode{termtypes.ThemeDark, termtypes.ThemeLight, "other"} {
		out, err := service.Render("# Title\n\nSome **bold** text", mode)
		require.NoError(t, err)
		plain := ansi.Strip(out)
		assert.Contains(t, plain, "Title")
		assert.Contains(t, plain, "bold")
	}
}

func TestMarkdownService_RenderFragment(t *testing.T) {
	service := NewMarkdownService()
	require.NoError(t, service.Initialize())

	frag, err := service.RenderFragment(string(embedded.DeveloperViewData), termtypes.ThemeDark)
	require.NoError(t, err)
	assert.Greater(t, frag.Len(), 1)

	var all string
	for _, el := range frag.Elements() {
		assert.NotEmpty(t, el)
		all += ansi.Strip(el)
	}
	assert.Contains(t, all, "Secret Developer View")
	assert.Contains(t, all, "terminal.js")
}
