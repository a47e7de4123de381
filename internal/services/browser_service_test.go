package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowserService_Open(t *testing.T) {
	var launched []string
	svc := NewBrowserService(func(u string) error {
		launched = append(launched, u)
		return nil
	})
	require.NoError(t, svc.Initialize())

	tests := []struct {
		url     string
		wantErr bool
	}{
		{url: "https://github.com/Rainier-PS/Personal-Website"},
		{url: "http://example.com/x"},
		{url: "javascript:alert(1)", wantErr: true},
		{url: "file:///etc/passwd", wantErr: true},
		{url: "/relative", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			err := svc.Open(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
	assert.Equal(t, []string{"https://github.com/Rainier-PS/Personal-Website", "http://example.com/x"}, launched)
	assert.Equal(t, launched, svc.Opened())
}

func TestBrowserService_OpenerError(t *testing.T) {
	svc := NewBrowserService(func(string) error { return errors.New("no display") })
	err := svc.Open("https://example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no display")
}
