package shell

import (
	"portfolioterm/internal/output"
	"portfolioterm/internal/render"
)

// PrinterSink writes each completed block to p.
func PrinterSink(p *output.Printer) render.Sink {
	return render.SinkFunc(func(b render.Block) {
		p.Block(semanticOf(b.Kind), b.Content)
	})
}

func semanticOf(kind render.BlockKind) output.SemanticType {
	switch kind {
	case render.BlockEcho:
		return output.SemanticEcho
	case render.BlockMarkup:
		return output.SemanticMarkup
	default:
		return output.SemanticText
	}
}
