package termtypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRGBArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    RGB
		wantErr error
	}{
		{name: "valid", args: []string{"10", "20", "30"}, want: RGB{10, 20, 30}},
		{name: "bounds", args: []string{"0", "255", "0"}, want: RGB{0, 255, 0}},
		{name: "extra args ignored", args: []string{"1", "2", "3", "4"}, want: RGB{1, 2, 3}},
		{name: "too few", args: []string{"1", "2"}, wantErr: ErrMissingComponents},
		{name: "out of range", args: []string{"300", "0", "0"}, wantErr: ErrInvalidComponent},
		{name: "negative", args: []string{"0", "-1", "0"}, wantErr: ErrInvalidComponent},
		{name: "non numeric", args: []string{"a", "b", "c"}, wantErr: ErrInvalidComponent},
		{name: "fraction", args: []string{"1.5", "2", "3"}, wantErr: ErrInvalidComponent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRGBArgs(tt.args)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, RGB{}, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRGBString(t *testing.T) {
	c, err := ParseRGBString("rgb(10, 20, 30)")
	require.NoError(t, err)
	assert.Equal(t, RGB{10, 20, 30}, c)

	c, err = ParseRGBString("#00ff00")
	require.NoError(t, err)
	assert.Equal(t, DefaultTerminalColor, c)

	_, err = ParseRGBString("rgb(1, 2)")
	assert.Error(t, err)

	_, err = ParseRGBString("blue")
	assert.Error(t, err)
}

func TestRGB_Formatting(t *testing.T) {
	c := RGB{R: 255, G: 100, B: 50}
	assert.Equal(t, "rgb(255, 100, 50)", c.String())
	assert.Equal(t, "#ff6432", c.Hex())

	roundTrip, err := ParseRGBString(c.String())
	require.NoError(t, err)
	assert.Equal(t, c, roundTrip)
}

func TestRGB_IsDark(t *testing.T) {
	assert.True(t, RGB{0, 0, 0}.IsDark())
	assert.True(t, RGB{10, 20, 30}.IsDark())
	assert.False(t, DefaultTerminalColor.IsDark())
}

func TestParseThemeMode(t *testing.T) {
	mode, ok := ParseThemeMode("dark")
	assert.True(t, ok)
	assert.Equal(t, ThemeDark, mode)

	_, ok = ParseThemeMode("Dark")
	assert.False(t, ok)
	_, ok = ParseThemeMode("")
	assert.False(t, ok)
}
