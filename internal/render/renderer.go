package render

import (
	"context"
	"strings"
	"sync"
	"time"

	"portfolioterm/internal/logger"
	"portfolioterm/pkg/termtypes"
)

// Options configures a Renderer.
type Options struct {
	LineDelay     time.Duration // Per grapheme for TypeLine
	FragmentDelay time.Duration // Base delay for TypeFragment
	Follow        func()        // Called after every mutation
	Sink          Sink          // Receives completed blocks
}

// Renderer is the single owner of the scrollback. Every block belongs to
// exactly one animation, so concurrent reveals never touch each other's
// content. Clear cancels in-flight animations along with the content.
type Renderer struct {
	mu     sync.Mutex
	blocks []*block
	nextID int
	gen    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	lineDelay     time.Duration
	fragmentDelay time.Duration
	follow        func()
	sink          Sink
}

// New creates an empty Renderer.
func New(opts Options) *Renderer {
	r := &Renderer{
		lineDelay:     opts.LineDelay,
		fragmentDelay: opts.FragmentDelay,
		follow:        opts.Follow,
		sink:          opts.Sink,
	}
	r.gen, r.cancel = context.WithCancel(context.Background())
	return r
}

// SetFollow replaces the follow hook.
func (r *Renderer) SetFollow(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.follow = fn
}

// SetSink replaces the completed-block sink.
func (r *Renderer) SetSink(s Sink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sink = s
}

// SetDelays changes the animation speed for subsequent calls.
func (r *Renderer) SetDelays(line, fragment time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lineDelay = line
	r.fragmentDelay = fragment
}

// Echo appends the prompt and submitted line instantly.
func (r *Renderer) Echo(line string) {
	r.appendComplete(BlockEcho, line)
}

// PrintBlock appends text instantly.
func (r *Renderer) PrintBlock(text string) {
	r.appendComplete(BlockText, text)
}

// TypeLine appends text and reveals it one grapheme at a time.
func (r *Renderer) TypeLine(text string) {
	r.TypeLineWithDelay(text, r.currentLineDelay(), nil)
}

// TypeLineWithDelay is TypeLine with an explicit delay and an optional
// completion callback. The block is appended before this returns.
func (r *Renderer) TypeLineWithDelay(text string, delay time.Duration, done func()) {
	r.mu.Lock()
	b := r.appendLocked(BlockText)
	gen := r.gen
	r.wg.Add(1)
	r.mu.Unlock()
	r.notify()

	go func() {
		defer r.wg.Done()
		if r.typeText(gen, b, text, delay) && done != nil {
			done()
		}
	}()
}

// TypeFragment reveals a trusted fragment element by element.
func (r *Renderer) TypeFragment(f *termtypes.Fragment) {
	r.TypeFragmentWithDelay(f, r.currentFragmentDelay(), nil)
}

// TypeFragmentWithDelay is TypeFragment with an explicit base delay and an
// optional completion callback.
func (r *Renderer) TypeFragmentWithDelay(f *termtypes.Fragment, delay time.Duration, done func()) {
	elements := f.Elements()

	r.mu.Lock()
	gen := r.gen
	r.wg.Add(1)
	r.mu.Unlock()

	go func() {
		defer r.wg.Done()
		if r.typeFragment(gen, elements, delay) && done != nil {
			done()
		}
	}()
}

// Clear empties the scrollback and cancels every in-flight animation.
func (r *Renderer) Clear() {
	r.mu.Lock()
	r.cancel()
	r.blocks = nil
	r.gen, r.cancel = context.WithCancel(context.Background())
	r.mu.Unlock()
	logger.Debug("Scrollback cleared")
	r.notify()
}

// Wait blocks until every animation started so far has finished or been
// cancelled.
func (r *Renderer) Wait() {
	r.wg.Wait()
}

// Blocks returns a snapshot of the scrollback in append order.
func (r *Renderer) Blocks() []Block {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Block, len(r.blocks))
	for i, b := range r.blocks {
		out[i] = b.snapshot()
	}
	return out
}

// Lines returns the content of every block in append order.
func (r *Renderer) Lines() []string {
	blocks := r.Blocks()
	out := make([]string, len(blocks))
	for i, b := range blocks {
		out[i] = b.Content
	}
	return out
}

// String joins the scrollback into a newline-terminated transcript.
func (r *Renderer) String() string {
	lines := r.Lines()
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func (r *Renderer) currentLineDelay() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lineDelay
}

func (r *Renderer) currentFragmentDelay() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fragmentDelay
}

func (r *Renderer) appendComplete(kind BlockKind, text string) {
	r.mu.Lock()
	b := r.appendLocked(kind)
	b.content = text
	b.done = true
	snap := b.snapshot()
	sink := r.sink
	r.mu.Unlock()

	r.notify()
	if sink != nil {
		sink.BlockCompleted(snap)
	}
}

func (r *Renderer) appendLocked(kind BlockKind) *block {
	r.nextID++
	b := &block{id: r.nextID, kind: kind}
	r.blocks = append(r.blocks, b)
	return b
}

// update sets a block's content unless the generation has been cleared.
// It reports whether the block is still live.
func (r *Renderer) update(gen context.Context, b *block, content string, done bool) bool {
	r.mu.Lock()
	if gen.Err() != nil {
		r.mu.Unlock()
		return false
	}
	b.content = content
	b.done = done
	snap := b.snapshot()
	sink := r.sink
	r.mu.Unlock()

	r.notify()
	if done && sink != nil {
		sink.BlockCompleted(snap)
	}
	return true
}

// notify runs the follow hook outside the lock so it may read the scrollback.
func (r *Renderer) notify() {
	r.mu.Lock()
	fn := r.follow
	r.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// sleep waits for d or until gen is cancelled. Non-positive delays return
// immediately.
func sleep(gen context.Context, d time.Duration) bool {
	if d <= 0 {
		return gen.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-gen.Done():
		return false
	case <-t.C:
		return true
	}
}
