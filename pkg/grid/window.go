package grid

// Window is the computed slice of the grid: a contiguous block of rows and
// columns that covers the viewport plus its buffer margins.
//
// Invariants, for any valid viewport:
//
//	RowCount <= MaxRowWindow
//	ColCount <= MaxColWindow
//	StartRow + uint64(RowCount) <= bounds.MaxRows
//	StartCol + ColCount <= bounds.MaxCols
type Window struct {
	StartRow uint64
	RowCount uint32
	StartCol uint32
	ColCount uint32
}

// ComputeWindow derives the slice window for a viewport against the given
// bounds. The row axis: the first visible row is the scroll offset divided by
// the row height; the visible count is the screen height divided by the row
// height, rounded up; the buffer widens the count on both ends. The count is
// then clamped to the rows remaining below StartRow and to MaxRowWindow.
// Columns mirror rows with the horizontal inputs and MaxColWindow.
func ComputeWindow(b Bounds, v Viewport) (Window, error) {
	if err := v.Validate(); err != nil {
		return Window{}, err
	}

	startRow := v.ScrollTop / uint64(v.DefaultRowHeight)
	if startRow > b.MaxRows {
		startRow = b.MaxRows
	}
	visibleRows := ceilDiv(v.ScreenHeight, v.DefaultRowHeight)
	rawRows := uint64(visibleRows) + 2*uint64(v.VerticalBuffer)
	remainingRows := b.MaxRows - startRow
	rowCount := rawRows
	if rowCount > remainingRows {
		rowCount = remainingRows
	}
	if rowCount > uint64(MaxRowWindow) {
		rowCount = uint64(MaxRowWindow)
	}

	startCol64 := v.ScrollLeft / uint64(v.DefaultColumnWidth)
	if startCol64 > uint64(b.MaxCols) {
		startCol64 = uint64(b.MaxCols)
	}
	startCol := uint32(startCol64)
	visibleCols := ceilDiv(v.ScreenWidth, v.DefaultColumnWidth)
	rawCols := uint64(visibleCols) + 2*uint64(v.HorizontalBuffer)
	remainingCols := uint64(b.MaxCols - startCol)
	colCount := rawCols
	if colCount > remainingCols {
		colCount = remainingCols
	}
	if colCount > uint64(MaxColWindow) {
		colCount = uint64(MaxColWindow)
	}

	return Window{
		StartRow: startRow,
		RowCount: uint32(rowCount),
		StartCol: startCol,
		ColCount: uint32(colCount),
	}, nil
}

// ceilDiv rounds the quotient up. Widened to uint64 so a+b-1 cannot wrap.
func ceilDiv(a, b uint32) uint32 {
	if b == 0 {
		return 0
	}
	return uint32((uint64(a) + uint64(b) - 1) / uint64(b))
}
