// Package render owns the scrollback: an append-only list of blocks that are
// either printed instantly or revealed with a typing animation.
package render

// BlockKind describes how a block's content should be presented.
type BlockKind int

const (
	// BlockEcho is the prompt plus a submitted line.
	BlockEcho BlockKind = iota
	// BlockText is plain text, never interpreted as markup.
	BlockText
	// BlockMarkup is one element of a trusted fragment and may carry ANSI styling.
	BlockMarkup
)

// String returns the kind's name as used in transcripts.
func (k BlockKind) String() string {
	switch k {
	case BlockEcho:
		return "echo"
	case BlockText:
		return "text"
	case BlockMarkup:
		return "markup"
	default:
		return "unknown"
	}
}

// Block is a snapshot of one scrollback entry.
type Block struct {
	ID      int
	Kind    BlockKind
	Content string // Revealed so far
	Done    bool   // Fully revealed
}

// Sink receives each block once it is fully revealed.
type Sink interface {
	BlockCompleted(b Block)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(b Block)

// BlockCompleted implements Sink.
func (f SinkFunc) BlockCompleted(b Block) {
	f(b)
}

type block struct {
	id      int
	kind    BlockKind
	content string
	done    bool
}

func (b *block) snapshot() Block {
	return Block{ID: b.id, Kind: b.kind, Content: b.content, Done: b.done}
}
