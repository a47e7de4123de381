package services

import (
	"regexp"

	"github.com/chzyer/readline"
	"github.com/muesli/termenv"
)

// Prompt is the fixed shell prompt.
const Prompt = "guest@portfolio:~$ "

// PromptColorService styles the prompt and the line being edited in line mode.
type PromptColorService struct {
	initialized bool
	theme       *ThemeService
	isCommand   func(name string) bool
	profile     termenv.Profile
}

// NewPromptColorService creates a PromptColorService. isCommand decides
// whether the first word of the edited line is a known command.
func NewPromptColorService(theme *ThemeService, isCommand func(string) bool) *PromptColorService {
	return &PromptColorService{
		theme:     theme,
		isCommand: isCommand,
		profile:   termenv.ColorProfile(),
	}
}

// Name returns the service name "prompt_color" for registration.
func (p *PromptColorService) Name() string {
	return "prompt_color"
}

// Initialize implements Service.
func (p *PromptColorService) Initialize() error {
	p.initialized = true
	return nil
}

// SetProfile overrides the detected colour profile.
func (p *PromptColorService) SetProfile(profile termenv.Profile) {
	p.profile = profile
}

// IsColorSupported reports whether the terminal renders colour.
func (p *PromptColorService) IsColorSupported() bool {
	return p.initialized && p.theme != nil && p.theme.IsAvailable() && p.profile != termenv.Ascii
}

// Prompt returns the prompt, coloured with the current button colour.
func (p *PromptColorService) Prompt() string {
	if !p.IsColorSupported() {
		return Prompt
	}
	return p.theme.Current().Prompt.Render(Prompt)
}

// CommandHighlighter implements readline.Painter, colouring the command name.
type CommandHighlighter struct {
	colorService *PromptColorService
	commandRegex *regexp.Regexp
}

// CreateCommandHighlighter returns a readline.Painter for the edited line.
func (p *PromptColorService) CreateCommandHighlighter() readline.Painter {
	return &CommandHighlighter{
		colorService: p,
		commandRegex: regexp.MustCompile(`^(\s*)(\S+)(.*)$`),
	}
}

// Paint implements readline.Painter.
func (h *CommandHighlighter) Paint(line []rune, _ int) []rune {
	if !h.colorService.IsColorSupported() {
		return line
	}
	m := h.commandRegex.FindStringSubmatch(string(line))
	if m == nil {
		return line
	}

	th := h.colorService.theme.Current()
	style := th.Error
	if h.colorService.isCommand != nil && h.colorService.isCommand(m[2]) {
		style = th.Accent
	}
	return []rune(m[1] + style.Render(m[2]) + m[3])
}

var _ readline.Painter = (*CommandHighlighter)(nil)
