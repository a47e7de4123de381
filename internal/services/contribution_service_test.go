package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fetchFunc func(ctx context.Context, url string) ([]byte, error)

func (f fetchFunc) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f(ctx, url)
}

const sampleContributions = `{
  "total": {"2024": 321},
  "contributions": [
    {"date": "2024-01-01", "count": 2, "level": 1},
    {"date": "2024-03-14", "count": 17, "level": 4},
    {"date": "2024-06-01", "count": 5, "level": 2}
  ]
}`

func TestParseContributions(t *testing.T) {
	summary, err := ParseContributions([]byte(sampleContributions), "Rainier-PS", 2024)
	require.NoError(t, err)
	assert.Equal(t, int64(321), summary.Total)
	assert.Equal(t, "2024-03-14", summary.BusiestDay)
	assert.Equal(t, int64(17), summary.BusiestDays)

	_, err = ParseContributions([]byte(sampleContributions), "Rainier-PS", 2023)
	assert.ErrorIs(t, err, ErrNoContributionData)

	_, err = ParseContributions([]byte("<html>"), "Rainier-PS", 2024)
	assert.Error(t, err)
}

func TestParseContributions_MissingTotals(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "no total field", body: `{"contributions":[]}`},
		{name: "total not an object", body: `{"total":5,"contributions":[]}`},
		{name: "error payload", body: `{"error":"user not found"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseContributions([]byte(tt.body), "Rainier-PS", 2024)
			require.Error(t, err)
			assert.NotErrorIs(t, err, ErrNoContributionData)
		})
	}
}

func TestContributionSummary_Format(t *testing.T) {
	s := ContributionSummary{User: "Rainier-PS", Year: 2024, Total: 321}
	want := "\nGitHub Activity for Rainier-PS:\n" +
		"---------------------------------\n" +
		"Year: 2024\n" +
		"Total Contributions: 321\n"
	assert.Equal(t, want, s.Format())

	s.BusiestDay, s.BusiestDays = "2024-03-14", 17
	assert.Contains(t, s.Format(), "Busiest Day: 2024-03-14 (17)\n")
}

func TestContributionService_Yearly(t *testing.T) {
	var requested string
	svc := NewContributionService(fetchFunc(func(_ context.Context, url string) ([]byte, error) {
		requested = url
		return []byte(sampleContributions), nil
	}), "https://api.example.com/v4/")

	_, err := svc.Yearly(context.Background(), "Rainier-PS", 2024)
	assert.Error(t, err, "uninitialized")

	require.NoError(t, svc.Initialize())
	summary, err := svc.Yearly(context.Background(), "Rainier-PS", 2024)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/v4/Rainier-PS?y=2024", requested)
	assert.Equal(t, int64(321), summary.Total)
}

func TestContributionService_FetchError(t *testing.T) {
	svc := NewContributionService(fetchFunc(func(context.Context, string) ([]byte, error) {
		return nil, errors.New("offline")
	}), "")
	require.NoError(t, svc.Initialize())
	assert.Equal(t, DefaultContributionsAPI+"/u?y=2020", svc.URL("u", 2020))

	_, err := svc.Yearly(context.Background(), "u", 2020)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "offline")
}

func TestContributionService_RequiresFetcher(t *testing.T) {
	assert.Error(t, NewContributionService(nil, "").Initialize())
}

func TestContributionService_CachesFinishedYears(t *testing.T) {
	calls := map[string]int{}
	svc := NewContributionService(fetchFunc(func(_ context.Context, url string) ([]byte, error) {
		calls[url]++
		return []byte(`{"total":{"2024":3,"2025":9},"contributions":[]}`), nil
	}), "https://api.example.com/v4")
	svc.SetClock(func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) })
	require.NoError(t, svc.Initialize())

	for i := 0; i < 2; i++ {
		s, err := svc.Yearly(context.Background(), "u", 2024)
		require.NoError(t, err)
		assert.Equal(t, int64(3), s.Total)
		_, err = svc.Yearly(context.Background(), "u", 2025)
		require.NoError(t, err)
	}

	assert.Equal(t, 1, calls[svc.URL("u", 2024)])
	assert.Equal(t, 2, calls[svc.URL("u", 2025)])
}
