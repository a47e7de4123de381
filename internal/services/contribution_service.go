package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"portfolioterm/internal/cache"
	"portfolioterm/internal/data"
	"portfolioterm/internal/logger"
)

// ErrNoContributionData is returned when the API has no total for the year.
var ErrNoContributionData = errors.New("no contribution data")

// DefaultContributionsAPI is the public contributions endpoint.
const DefaultContributionsAPI = "https://github-contributions-api.jogruber.de/v4"

// ContributionSummary is the yearly activity of one account.
type ContributionSummary struct {
	User        string
	Year        int
	Total       int64
	BusiestDay  string
	BusiestDays int64
}

// ContributionService looks up yearly contribution totals. Summaries of
// years that have ended are kept for the life of the service.
type ContributionService struct {
	initialized bool
	fetcher     data.Fetcher
	api         string
	now         func() time.Time
	finished    *cache.LRU[string, ContributionSummary]
}

// NewContributionService creates a service that fetches through fetcher.
func NewContributionService(fetcher data.Fetcher, api string) *ContributionService {
	if api == "" {
		api = DefaultContributionsAPI
	}
	return &ContributionService{
		fetcher:  fetcher,
		api:      strings.TrimSuffix(api, "/"),
		now:      time.Now,
		finished: cache.New[string, ContributionSummary](16),
	}
}

// SetClock replaces the clock used to decide which years have ended.
func (c *ContributionService) SetClock(now func() time.Time) {
	c.now = now
}

// Name returns the service name "contributions" for registration.
func (c *ContributionService) Name() string {
	return "contributions"
}

// Initialize checks the service has a fetcher.
func (c *ContributionService) Initialize() error {
	if c.fetcher == nil {
		return fmt.Errorf("contribution service requires a fetcher")
	}
	c.initialized = true
	return nil
}

// URL returns the API address for user and year.
func (c *ContributionService) URL(user string, year int) string {
	return fmt.Sprintf("%s/%s?y=%d", c.api, user, year)
}

// Yearly fetches and summarises one year of contributions.
func (c *ContributionService) Yearly(ctx context.Context, user string, year int) (ContributionSummary, error) {
	if !c.initialized {
		return ContributionSummary{}, fmt.Errorf("contribution service not initialized")
	}

	key := fmt.Sprintf("%s/%d", user, year)
	if summary, ok := c.finished.Get(key); ok {
		logger.Debug("Contributions served from cache", "user", user, "year", year)
		return summary, nil
	}

	body, err := c.fetcher.Fetch(ctx, c.URL(user, year))
	if err != nil {
		return ContributionSummary{}, fmt.Errorf("failed to fetch contributions: %w", err)
	}
	summary, err := ParseContributions(body, user, year)
	if err != nil {
		return ContributionSummary{}, err
	}
	if year < c.now().Year() {
		c.finished.Set(key, summary)
	}
	return summary, nil
}

// ParseContributions extracts the total for year and the busiest day.
func ParseContributions(body []byte, user string, year int) (ContributionSummary, error) {
	if !gjson.ValidBytes(body) {
		return ContributionSummary{}, fmt.Errorf("malformed contribution response")
	}

	doc := gjson.ParseBytes(body)
	totals := doc.Get("total")
	if !totals.IsObject() {
		return ContributionSummary{}, fmt.Errorf("malformed contribution response: no totals")
	}
	total := totals.Get(strconv.Itoa(year))
	if !total.Exists() {
		return ContributionSummary{}, ErrNoContributionData
	}

	summary := ContributionSummary{User: user, Year: year, Total: total.Int()}
	doc.Get("contributions").ForEach(func(_, day gjson.Result) bool {
		if n := day.Get("count").Int(); n > summary.BusiestDays {
			summary.BusiestDays = n
			summary.BusiestDay = day.Get("date").String()
		}
		return true
	})

	logger.Debug("Parsed contributions", "user", user, "year", year, "total", summary.Total)
	return summary, nil
}

// Format renders the summary block printed by gh.
func (s ContributionSummary) Format() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\nGitHub Activity for %s:\n", s.User)
	sb.WriteString("---------------------------------\n")
	fmt.Fprintf(&sb, "Year: %d\n", s.Year)
	fmt.Fprintf(&sb, "Total Contributions: %d\n", s.Total)
	if s.BusiestDay != "" {
		fmt.Fprintf(&sb, "Busiest Day: %s (%d)\n", s.BusiestDay, s.BusiestDays)
	}
	return sb.String()
}
