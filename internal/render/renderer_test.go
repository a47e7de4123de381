package render

import (
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolioterm/pkg/termtypes"
)

func TestRenderer_PrintBlockAndEcho(t *testing.T) {
	var follows int32
	r := New(Options{Follow: func() { atomic.AddInt32(&follows, 1) }})

	r.Echo("guest@portfolio:~$ help")
	r.PrintBlock("line one\nline two")

	blocks := r.Blocks()
	require.Len(t, blocks, 2)
	assert.Equal(t, BlockEcho, blocks[0].Kind)
	assert.Equal(t, BlockText, blocks[1].Kind)
	assert.True(t, blocks[1].Done)
	assert.Equal(t, "guest@portfolio:~$ help\nline one\nline two\n", r.String())
	assert.Equal(t, int32(2), atomic.LoadInt32(&follows))
}

func TestRenderer_TypeLine(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "ascii", text: "hello"},
		{name: "empty", text: ""},
		{name: "graphemes", text: "héllo 👋🏽"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var completed []Block
			var mu sync.Mutex
			r := New(Options{Sink: SinkFunc(func(b Block) {
				mu.Lock()
				completed = append(completed, b)
				mu.Unlock()
			})})

			r.TypeLine(tt.text)
			r.Wait()

			blocks := r.Blocks()
			require.Len(t, blocks, 1)
			assert.Equal(t, tt.text, blocks[0].Content)
			assert.True(t, blocks[0].Done)
			require.Len(t, completed, 1)
			assert.Equal(t, tt.text, completed[0].Content)
		})
	}
}

func TestRenderer_TypeLineRevealsProgressively(t *testing.T) {
	var mu sync.Mutex
	var seen []string
	r := New(Options{})
	r.SetFollow(func() {
		lines := r.Lines()
		mu.Lock()
		defer mu.Unlock()
		if len(lines) > 0 {
			seen = append(seen, lines[0])
		}
	})

	done := make(chan struct{})
	r.TypeLineWithDelay("abc", 0, func() { close(done) })
	<-done
	r.Wait()

	assert.Equal(t, []string{"", "a", "ab", "abc"}, seen)
}

func TestRenderer_AppendOrderIsSubmissionOrder(t *testing.T) {
	r := New(Options{LineDelay: time.Millisecond})
	r.TypeLine("first line is long")
	r.PrintBlock("second")
	r.TypeLine("third")
	r.Wait()

	assert.Equal(t, []string{"first line is long", "second", "third"}, r.Lines())
}

func TestRenderer_TypeFragment(t *testing.T) {
	styled := "\x1b[1mbold\x1b[0m text"
	frag := termtypes.NewFragment("intro", styled, "two\nlines")

	r := New(Options{})
	done := make(chan struct{})
	r.TypeFragmentWithDelay(frag, 0, func() { close(done) })
	<-done
	r.Wait()

	blocks := r.Blocks()
	require.Len(t, blocks, 3)
	for _, b := range blocks {
		assert.Equal(t, BlockMarkup, b.Kind)
		assert.True(t, b.Done)
	}
	assert.Equal(t, "intro", blocks[0].Content)
	assert.Equal(t, "bold text", ansi.Strip(blocks[1].Content))
	assert.Equal(t, "two\nlines", blocks[2].Content)
}

func TestRenderer_TypeFragmentNeverSplitsEscapes(t *testing.T) {
	el := "\x1b[32mgo\x1b[0m"
	var mu sync.Mutex
	var partials []string
	r := New(Options{})
	r.SetFollow(func() {
		lines := r.Lines()
		mu.Lock()
		defer mu.Unlock()
		if len(lines) == 1 {
			partials = append(partials, lines[0])
		}
	})

	r.TypeFragmentWithDelay(termtypes.NewFragment(el), 0, nil)
	r.Wait()

	require.NotEmpty(t, partials)
	for _, p := range partials {
		assert.False(t, strings.HasSuffix(p, "\x1b"), "partial %q", p)
		assert.LessOrEqual(t, ansi.StringWidth(p), 2)
	}
	assert.Equal(t, "go", ansi.Strip(partials[len(partials)-1]))
}

func TestRenderer_ClearCancelsAnimations(t *testing.T) {
	r := New(Options{})
	r.TypeLineWithDelay(strings.Repeat("x", 1000), 10*time.Millisecond, nil)
	r.Clear()
	r.Wait()

	assert.Empty(t, r.Blocks())

	r.PrintBlock("after")
	assert.Equal(t, []string{"after"}, r.Lines())
}

func TestPrefixCells(t *testing.T) {
	lines := []string{"ab", "", "cd"}
	assert.Equal(t, "a", prefixCells(lines, 1))
	assert.Equal(t, "ab\n", prefixCells(lines, 2))
	assert.Equal(t, "ab\n\nc", prefixCells(lines, 3))
	assert.Equal(t, "ab\n\ncd", prefixCells(lines, 4))
}

func TestTableFragment(t *testing.T) {
	frag := TableFragment(PlainTableStyles(), "You can reach me at:", "Platform", "Username / Address", []Row{
		{Key: "Email", Value: "me@example.com"},
	})
	els := frag.Elements()
	require.Len(t, els, 1)
	assert.True(t, strings.HasPrefix(els[0], "You can reach me at:\n"))
	plain := ansi.Strip(els[0])
	assert.Contains(t, plain, "Platform")
	assert.Contains(t, plain, "me@example.com")

	assert.Equal(t, 1, TableFragment(PlainTableStyles(), "", "A", "B", nil).Len())
}
