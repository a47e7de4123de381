// Package shell wires the portfolio terminal together and provides the
// line-mode and batch front-ends on top of it.
package shell

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"portfolioterm/internal/commands"
	"portfolioterm/internal/commands/builtin"
	"portfolioterm/internal/config"
	"portfolioterm/internal/data"
	"portfolioterm/internal/logger"
	"portfolioterm/internal/render"
	"portfolioterm/internal/services"
	"portfolioterm/internal/session"
	"portfolioterm/internal/storage"
)

// Options overrides the collaborators New would otherwise build from config.
type Options struct {
	Store       storage.Store       // Defaults to a file store at Config.StoragePath
	Environment session.Environment // Defaults to the terminal's background
	Clock       session.Clock       // Defaults to the wall clock
	Opener      services.Opener     // Defaults to the system browser
	HTTPClient  *http.Client        // Defaults to a client with Config.HTTPTimeout
}

// Terminal is one running portfolio session: renderer, dispatcher, line
// reader and the services behind the commands.
type Terminal struct {
	Config      *config.Config
	State       *session.State
	Renderer    *render.Renderer
	Dispatcher  *commands.Dispatcher
	Reader      *LineReader
	Services    *services.Registry
	Theme       *services.ThemeService
	PromptColor *services.PromptColorService
	Catalog     *data.Live
	Loader      *data.Loader

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	onClear func()
}

// New builds a Terminal from cfg.
func New(cfg *config.Config, opts Options) (*Terminal, error) {
	if cfg == nil {
		return nil, fmt.Errorf("terminal requires a config")
	}

	store, err := openStore(cfg, opts.Store)
	if err != nil {
		return nil, err
	}
	env := opts.Environment
	if env == nil {
		env = session.TerminalEnvironment{Prefer: cfg.PreferTheme}
	}

	state := session.New(session.LoadSettings(store, env), opts.Clock)
	logger.Debug("Session created", "session", state.ID())

	t := &Terminal{
		Config: cfg,
		State:  state,
		Renderer: render.New(render.Options{
			LineDelay:     cfg.LineDelay,
			FragmentDelay: cfg.FragmentDelay,
		}),
	}
	t.ctx, t.cancel = context.WithCancel(context.Background())

	httpService := services.NewHTTPService()
	httpService.SetTimeout(cfg.HTTPTimeout)
	if opts.HTTPClient != nil {
		httpService.SetClient(opts.HTTPClient)
	}
	contributions := services.NewContributionService(httpService, cfg.GitHubAPI)
	contributions.SetClock(state.Now)
	t.Theme = services.NewThemeService(state.Settings())
	markdown := services.NewMarkdownService()
	browser := services.NewBrowserService(opts.Opener)

	registry := commands.NewRegistry()
	t.PromptColor = services.NewPromptColorService(t.Theme, registry.IsValidCommand)

	t.Services = services.NewRegistry()
	for _, s := range []services.Service{httpService, contributions, t.Theme, markdown, browser, t.PromptColor} {
		if err := t.Services.RegisterService(s); err != nil {
			return nil, err
		}
	}
	if err := t.Services.InitializeAll(); err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	bundled, err := data.NewBundled()
	if err != nil {
		return nil, err
	}
	t.Catalog = data.NewLive(bundled)
	t.Loader = data.NewLoader(httpService, cfg.ProjectSources, cfg.AwardSources)

	err = builtin.Register(registry, builtin.Deps{
		Session:       state,
		Catalog:       t.Catalog,
		Screen:        t,
		Theme:         t.Theme,
		Markdown:      markdown,
		Browser:       browser,
		Contributions: contributions,
		GitHubUser:    cfg.GitHubUser,
		RepoURL:       cfg.RepoURL,
		RawBase:       cfg.RawBase,
	})
	if err != nil {
		return nil, err
	}

	t.Dispatcher = commands.NewDispatcher(t.ctx, registry, t.Renderer)
	t.Reader = NewLineReader(state, t.run)
	return t, nil
}

func openStore(cfg *config.Config, store storage.Store) (storage.Store, error) {
	if store != nil {
		return store, nil
	}
	if cfg.StoragePath == "" {
		logger.Warn("No settings path, settings will not persist")
		return storage.NewMemoryStore(), nil
	}
	fs, err := storage.OpenFileStore(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open settings: %w", err)
	}
	return fs, nil
}

// run echoes an accepted line and dispatches it.
func (t *Terminal) run(line string) {
	t.Renderer.Echo(services.Prompt + line)
	t.Dispatcher.Dispatch(line)
}

// Submit passes raw input through the line reader.
func (t *Terminal) Submit(raw string) bool {
	return t.Reader.Submit(raw)
}

// LoadData fetches live project and award records. Failures leave the
// bundled records in place.
func (t *Terminal) LoadData(ctx context.Context) {
	t.Loader.Refresh(ctx, t.Catalog)
}

// Prompt returns the styled prompt.
func (t *Terminal) Prompt() string {
	return t.PromptColor.Prompt()
}

// Clear empties the scrollback and runs the clear hook.
func (t *Terminal) Clear() {
	t.Renderer.Clear()
	t.mu.Lock()
	fn := t.onClear
	t.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// SetClearHook registers fn to run after every clear, e.g. to wipe the
// physical screen in line mode.
func (t *Terminal) SetClearHook(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onClear = fn
}

// Wait blocks until every deferred command and animation has finished.
func (t *Terminal) Wait() {
	t.Dispatcher.Wait()
	t.Renderer.Wait()
}

// Exited reports whether the session has been ended by exit.
func (t *Terminal) Exited() bool {
	return t.State.Exited()
}

// Context is cancelled when the terminal is closed.
func (t *Terminal) Context() context.Context {
	return t.ctx
}

// Close cancels deferred commands and waits for them to stop.
func (t *Terminal) Close() {
	t.cancel()
	t.Dispatcher.Wait()
	t.Renderer.Clear()
	t.Renderer.Wait()
}
