package render

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"
)

// typeText reveals text into b one grapheme cluster per step.
func (r *Renderer) typeText(gen context.Context, b *block, text string, delay time.Duration) bool {
	if text == "" {
		return r.update(gen, b, "", true)
	}

	var sb strings.Builder
	g := uniseg.NewGraphemes(text)
	more := g.Next()
	for more {
		if !sleep(gen, delay) {
			return false
		}
		sb.WriteString(g.Str())
		more = g.Next()
		if !r.update(gen, b, sb.String(), !more) {
			return false
		}
	}
	return true
}

// typeFragment reveals each element into its own block. A block is appended
// only when its element starts, and the next element waits for the previous
// one to complete.
func (r *Renderer) typeFragment(gen context.Context, elements []string, delay time.Duration) bool {
	step := delay * 3 / 4
	for i, el := range elements {
		if i > 0 && !sleep(gen, delay*2) {
			return false
		}

		r.mu.Lock()
		if gen.Err() != nil {
			r.mu.Unlock()
			return false
		}
		b := r.appendLocked(BlockMarkup)
		r.mu.Unlock()
		r.notify()

		if !r.revealMarkup(gen, b, el, step) {
			return false
		}
	}
	return true
}

// revealMarkup grows the visible prefix of el one cell at a time. Escape
// sequences are never split, so partial content is always well formed.
func (r *Renderer) revealMarkup(gen context.Context, b *block, el string, step time.Duration) bool {
	lines := strings.Split(el, "\n")
	total := 0
	for _, l := range lines {
		total += ansi.StringWidth(l)
	}
	if total == 0 {
		return r.update(gen, b, el, true)
	}

	for n := 1; n <= total; n++ {
		if !sleep(gen, step) {
			return false
		}
		if !r.update(gen, b, prefixCells(lines, n), n == total) {
			return false
		}
	}
	return true
}

// prefixCells returns the first n visible cells across lines, keeping the
// line breaks between fully revealed lines.
func prefixCells(lines []string, n int) string {
	var out []string
	for _, l := range lines {
		w := ansi.StringWidth(l)
		if n >= w {
			out = append(out, l)
			n -= w
			continue
		}
		if n > 0 {
			out = append(out, ansi.Truncate(l, n, ""))
		}
		break
	}
	return strings.Join(out, "\n")
}
