package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"portfolioterm/internal/logger"
	"portfolioterm/internal/output"
)

// RunBatch submits each line of r in order and writes the transcript to
// printer. Blank lines and lines starting with # are skipped. Each command
// completes, including deferred ones, before the next is submitted. exit
// stops the run.
func RunBatch(ctx context.Context, t *Terminal, r io.Reader, printer *output.Printer) error {
	t.Renderer.SetDelays(0, 0)
	t.Renderer.SetSink(PrinterSink(printer))
	t.State.MarkLogin()

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		logger.Debug("Batch line", "line", lineNo, "input", line)
		t.Submit(line)
		t.Wait()
		if t.Exited() {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read batch input: %w", err)
	}
	return nil
}
