package shell

import (
	"context"
	"errors"
	"io"

	"github.com/chzyer/readline"

	"portfolioterm/internal/logger"
	"portfolioterm/internal/output"
)

// historyListener routes Up and Down through the LineReader so the line
// editor and the session share one history.
type historyListener struct {
	reader *LineReader
}

// OnChange implements readline.Listener.
func (l *historyListener) OnChange(line []rune, _ int, key rune) ([]rune, int, bool) {
	switch key {
	case readline.CharPrev:
		s := []rune(l.reader.Up())
		return s, len(s), true
	case readline.CharNext:
		s := []rune(l.reader.Down())
		return s, len(s), true
	case readline.CharEnter, readline.CharCtrlJ:
		return nil, 0, false
	}
	l.reader.SetBuffer(string(line))
	return nil, 0, false
}

// NewLineEditor builds the readline instance for t. readline keeps no
// history of its own; Up and Down are answered by t's LineReader.
func NewLineEditor(t *Terminal) (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Prompt:          t.Prompt(),
		HistoryLimit:    -1,
		Painter:         t.PromptColor.CreateCommandHighlighter(),
		Listener:        &historyListener{reader: t.Reader},
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
}

// RunLine boots t and reads lines until exit, end of input or ctx is done.
// Characters are not animated in line mode; each block is printed whole,
// and echo blocks are left to the editor which already shows the line.
func RunLine(ctx context.Context, t *Terminal, printer *output.Printer) error {
	rl, err := NewLineEditor(t)
	if err != nil {
		return err
	}
	defer func() { _ = rl.Close() }()

	t.Renderer.SetDelays(0, 0)
	t.Config.BootDelay = 0
	printer.SetWriter(rl.Stdout())
	t.Renderer.SetSink(PrinterSink(printer))
	t.SetClearHook(func() {
		if _, err := readline.ClearScreen(rl.Stdout()); err != nil {
			logger.Debug("Failed to clear screen", "error", err)
		}
	})

	go t.LoadData(ctx)
	if err := t.BootSync(ctx); err != nil {
		return err
	}
	logger.Info("Starting line mode", "session", t.State.ID())

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = rl.Close()
		case <-done:
		}
	}()

	for ctx.Err() == nil {
		line, err := rl.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			if len(line) == 0 {
				return nil
			}
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}

		if !t.Submit(line) {
			continue
		}
		t.Wait()
		if t.Exited() {
			return nil
		}
		rl.SetPrompt(t.Prompt())
	}
	return nil
}
