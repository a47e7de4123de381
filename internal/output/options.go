package output

import "io"

// Option is a functional option for configuring Printer instances.
type Option func(*Printer)

// WithStyles configures the printer to use the provided StyleProvider.
// A nil or unavailable provider leaves the printer unstyled.
func WithStyles(provider StyleProvider) Option {
	return func(p *Printer) {
		if provider != nil && provider.IsAvailable() {
			p.styleProvider = provider
		}
	}
}

// WithWriter sets the destination. Default is os.Stdout.
func WithWriter(writer io.Writer) Option {
	return func(p *Printer) {
		if writer != nil {
			p.writer = writer
		}
	}
}

// WithMode selects the output mode.
func WithMode(mode Mode) Option {
	return func(p *Printer) {
		p.mode = mode
	}
}

// PlainText forces plain output.
func PlainText() Option {
	return WithMode(ModePlain)
}

// JSON writes one JSON object per block.
func JSON() Option {
	return WithMode(ModeJSON)
}

// SkipEcho drops echo blocks, for front-ends whose line editor already
// shows the submitted line.
func SkipEcho() Option {
	return func(p *Printer) {
		p.skipEcho = true
	}
}

// WithPrefix adds a prefix to every written block.
func WithPrefix(prefix string) Option {
	return func(p *Printer) {
		p.prefix = prefix
	}
}
