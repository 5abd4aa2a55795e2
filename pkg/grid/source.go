package grid

import "fmt"

// Source supplies the display content for a single cell. Implementations must
// be safe for concurrent use; the engine calls Cell from every connection
// goroutine.
//
// row is the zero-based absolute row index and letter the precomputed column
// label for col, so implementations do not re-derive it.
type Source interface {
	Cell(row uint64, col uint32, letter string) string
}

// LabelSource is the default Source. It synthesizes a placeholder label from
// the cell coordinates; no backing store is consulted. The row in the label
// is one-based, matching what a spreadsheet user sees.
type LabelSource struct{}

func (LabelSource) Cell(row uint64, col uint32, letter string) string {
	return fmt.Sprintf("R%dC %s", row+1, letter)
}
