package grid

// Slice is a computed window together with the column labels and the cell
// content for every position in the window. ColLetters has exactly ColCount
// entries; CellsByRow has exactly RowCount rows of ColCount entries each.
type Slice struct {
	Window
	ColLetters []string
	CellsByRow [][]string
}

// Engine computes slices against fixed bounds. It is stateless apart from its
// immutable configuration and may be shared by any number of goroutines.
type Engine struct {
	bounds Bounds
	source Source
}

// NewEngine creates an engine over the given bounds. A nil source falls back
// to LabelSource.
func NewEngine(bounds Bounds, source Source) *Engine {
	if source == nil {
		source = LabelSource{}
	}
	return &Engine{bounds: bounds, source: source}
}

// Bounds returns the grid extent the engine serves. This is the metadata
// operation: it is constant for the engine's lifetime and cannot fail.
func (e *Engine) Bounds() Bounds {
	return e.bounds
}

// ComputeSlice computes the window for a viewport and fills in the column
// letters and cell content. Two calls with the same viewport return equal
// slices; nothing is cached across calls.
func (e *Engine) ComputeSlice(v Viewport) (*Slice, error) {
	w, err := ComputeWindow(e.bounds, v)
	if err != nil {
		return nil, err
	}

	letters := make([]string, w.ColCount)
	for c := uint32(0); c < w.ColCount; c++ {
		letters[c] = ColumnLetters(w.StartCol + c)
	}

	cells := make([][]string, w.RowCount)
	for r := uint32(0); r < w.RowCount; r++ {
		row := make([]string, w.ColCount)
		abs := w.StartRow + uint64(r)
		for c := uint32(0); c < w.ColCount; c++ {
			row[c] = e.source.Cell(abs, w.StartCol+c, letters[c])
		}
		cells[r] = row
	}

	return &Slice{Window: w, ColLetters: letters, CellsByRow: cells}, nil
}
