package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolioterm/internal/storage"
	"portfolioterm/internal/testutils"
	"portfolioterm/pkg/termtypes"
)

func TestLoadSettings_Defaults(t *testing.T) {
	tests := []struct {
		name      string
		env       Environment
		wantTheme termtypes.ThemeMode
	}{
		{name: "dark environment", env: StaticEnvironment(true), wantTheme: termtypes.ThemeDark},
		{name: "light environment", env: StaticEnvironment(false), wantTheme: termtypes.ThemeLight},
		{name: "explicit preference", env: TerminalEnvironment{Prefer: "dark"}, wantTheme: termtypes.ThemeDark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := LoadSettings(storage.NewMemoryStore(), tt.env)
			assert.Equal(t, tt.wantTheme, s.Theme())
			assert.Equal(t, termtypes.DefaultTerminalColor, s.TerminalColor())
			_, ok := s.Accent()
			assert.False(t, ok)
		})
	}
}

func TestLoadSettings_RestoresPersistedValues(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(storage.KeyTheme, "light"))
	require.NoError(t, store.Set(storage.KeyAccentColor, "rgb(0, 120, 255)"))
	require.NoError(t, store.Set(storage.KeyTerminalColor, "rgb(255, 100, 50)"))

	s := LoadSettings(store, StaticEnvironment(true))
	assert.Equal(t, termtypes.ThemeLight, s.Theme())
	accent, ok := s.Accent()
	assert.True(t, ok)
	assert.Equal(t, termtypes.RGB{R: 0, G: 120, B: 255}, accent)
	assert.Equal(t, termtypes.RGB{R: 255, G: 100, B: 50}, s.TerminalColor())
}

func TestLoadSettings_IgnoresGarbage(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(storage.KeyTheme, "purple"))
	require.NoError(t, store.Set(storage.KeyTerminalColor, "not a colour"))

	s := LoadSettings(store, StaticEnvironment(false))
	assert.Equal(t, termtypes.ThemeLight, s.Theme())
	assert.Equal(t, termtypes.DefaultTerminalColor, s.TerminalColor())
}

func TestSettings_SetAndRestore(t *testing.T) {
	store := storage.NewMemoryStore()
	s := LoadSettings(store, StaticEnvironment(true))

	require.NoError(t, s.SetTheme(termtypes.ThemeLight))
	require.NoError(t, s.SetAccent(termtypes.RGB{R: 1, G: 2, B: 3}))
	require.NoError(t, s.SetTerminalColor(termtypes.RGB{R: 10, G: 20, B: 30}))

	v, _ := store.Get(storage.KeyTheme)
	assert.Equal(t, "light", v)
	v, _ = store.Get(storage.KeyAccentColor)
	assert.Equal(t, "rgb(1, 2, 3)", v)
	v, _ = store.Get(storage.KeyTerminalColor)
	assert.Equal(t, "rgb(10, 20, 30)", v)

	assert.Equal(t, termtypes.DefaultTerminalColor, s.ButtonColor(), "dark colours fall back to green")

	require.NoError(t, s.Restore())
	for _, key := range []string{storage.KeyTheme, storage.KeyAccentColor, storage.KeyTerminalColor} {
		_, ok := store.Get(key)
		assert.False(t, ok, key)
	}
	assert.Equal(t, termtypes.ThemeDark, s.Theme())
	assert.Equal(t, termtypes.DefaultTerminalColor, s.TerminalColor())
	_, ok := s.Accent()
	assert.False(t, ok)
}

func TestSettings_SetThemeRejectsUnknown(t *testing.T) {
	s := LoadSettings(storage.NewMemoryStore(), StaticEnvironment(false))
	assert.Error(t, s.SetTheme("blue"))
	assert.Equal(t, termtypes.ThemeLight, s.Theme())
}

func TestState_History(t *testing.T) {
	st := New(LoadSettings(storage.NewMemoryStore(), StaticEnvironment(false)), nil)
	assert.NotEmpty(t, st.ID())
	assert.Equal(t, 0, st.HistoryLen())

	st.AppendHistory("help")
	st.AppendHistory("ls")

	assert.Equal(t, []string{"help", "ls"}, st.History())
	line, ok := st.HistoryAt(1)
	assert.True(t, ok)
	assert.Equal(t, "ls", line)
	_, ok = st.HistoryAt(2)
	assert.False(t, ok)

	h := st.History()
	h[0] = "changed"
	assert.Equal(t, "help", st.History()[0])
}

func TestState_LoginTime(t *testing.T) {
	clock := testutils.NewStepClock(time.Minute)
	st := New(nil, clock)
	assert.Equal(t, testutils.BaseTime, st.LoginTime())

	marked := st.MarkLogin()
	assert.Equal(t, testutils.BaseTime.Add(time.Minute), marked)
	assert.Equal(t, marked, st.LoginTime())
}

func TestState_Flags(t *testing.T) {
	st := New(nil, testutils.FixedClock(testutils.BaseTime))
	assert.False(t, st.Matrix())
	assert.True(t, st.ToggleMatrix())
	assert.True(t, st.Matrix())
	assert.False(t, st.ToggleMatrix())

	assert.False(t, st.Exited())
	st.RequestExit()
	assert.True(t, st.Exited())
}
