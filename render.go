package csv2png

import "io"

// Alignment controls column text alignment in rendered output.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Renderer writes a normalized table to w in a specific format.
// Implementations must reject tables that have not been through
// [Normalize] with [ErrNotNormalized].
type Renderer interface {
	Render(w io.Writer, t *Table) error
}
