package services

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"sync"

	"portfolioterm/internal/logger"
)

// Opener launches a URL in an external viewer.
type Opener func(u string) error

// SystemOpener opens u with the platform's default handler.
func SystemOpener(u string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", u)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", u)
	default:
		cmd = exec.Command("xdg-open", u)
	}
	cmd.Stdout, cmd.Stderr, cmd.Stdin = nil, nil, nil
	return cmd.Start()
}

// BrowserService opens links on behalf of repo and view.
type BrowserService struct {
	mu     sync.Mutex
	opener Opener
	opened []string
}

// NewBrowserService creates a BrowserService. A nil opener uses SystemOpener.
func NewBrowserService(opener Opener) *BrowserService {
	if opener == nil {
		opener = SystemOpener
	}
	return &BrowserService{opener: opener}
}

// Name returns the service name "browser" for registration.
func (b *BrowserService) Name() string {
	return "browser"
}

// Initialize implements Service.
func (b *BrowserService) Initialize() error {
	return nil
}

// Open validates u as an absolute http(s) URL and opens it.
func (b *BrowserService) Open(u string) error {
	parsed, err := url.Parse(u)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("refusing to open %q", u)
	}

	b.mu.Lock()
	opener := b.opener
	b.opened = append(b.opened, u)
	b.mu.Unlock()

	logger.ServiceOperation(b.Name(), "open", "url", u)
	if err := opener(u); err != nil {
		return fmt.Errorf("failed to open %s: %w", u, err)
	}
	return nil
}

// Opened returns every URL passed to Open, in order.
func (b *BrowserService) Opened() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.opened...)
}
