package grid

import (
	"errors"
	"testing"
)

func TestComputeWindowVisibleRows(t *testing.T) {
	// 500px screen at 20px rows is 25 visible rows; a buffer of 5 on each
	// end gives 35 total starting at row 0.
	v := Viewport{
		ScreenWidth:        800,
		ScreenHeight:       500,
		VerticalBuffer:     5,
		HorizontalBuffer:   2,
		DefaultColumnWidth: 100,
		DefaultRowHeight:   20,
	}

	w, err := ComputeWindow(DefaultBounds(), v)
	if err != nil {
		t.Fatalf("ComputeWindow() error: %v", err)
	}
	if w.StartRow != 0 {
		t.Errorf("StartRow = %d, want 0", w.StartRow)
	}
	if w.RowCount != 35 {
		t.Errorf("RowCount = %d, want 35", w.RowCount)
	}
	if w.StartCol != 0 {
		t.Errorf("StartCol = %d, want 0", w.StartCol)
	}
	// ceil(800/100) = 8 visible, plus 2 on each side.
	if w.ColCount != 12 {
		t.Errorf("ColCount = %d, want 12", w.ColCount)
	}
}

func TestComputeWindowScrollOffsets(t *testing.T) {
	v := Viewport{
		ScreenWidth:        1000,
		ScreenHeight:       600,
		DefaultColumnWidth: 100,
		DefaultRowHeight:   24,
		ScrollLeft:         450, // floor(450/100) = col 4
		ScrollTop:          2500, // floor(2500/24) = row 104
	}

	w, err := ComputeWindow(DefaultBounds(), v)
	if err != nil {
		t.Fatalf("ComputeWindow() error: %v", err)
	}
	if w.StartRow != 104 {
		t.Errorf("StartRow = %d, want 104", w.StartRow)
	}
	if w.StartCol != 4 {
		t.Errorf("StartCol = %d, want 4", w.StartCol)
	}
	// ceil(600/24) = 25 rows, ceil(1000/100) = 10 cols, no buffers.
	if w.RowCount != 25 {
		t.Errorf("RowCount = %d, want 25", w.RowCount)
	}
	if w.ColCount != 10 {
		t.Errorf("ColCount = %d, want 10", w.ColCount)
	}
}

func TestComputeWindowSafetyCaps(t *testing.T) {
	// Absurd buffers must not produce an unbounded slice.
	v := Viewport{
		ScreenWidth:        10_000,
		ScreenHeight:       10_000,
		HorizontalBuffer:   1 << 30,
		VerticalBuffer:     1 << 30,
		DefaultColumnWidth: 1,
		DefaultRowHeight:   1,
	}

	w, err := ComputeWindow(DefaultBounds(), v)
	if err != nil {
		t.Fatalf("ComputeWindow() error: %v", err)
	}
	if w.RowCount != MaxRowWindow {
		t.Errorf("RowCount = %d, want cap %d", w.RowCount, MaxRowWindow)
	}
	if w.ColCount != MaxColWindow {
		t.Errorf("ColCount = %d, want cap %d", w.ColCount, MaxColWindow)
	}
}

func TestComputeWindowClampsToRemainingRows(t *testing.T) {
	b := DefaultBounds()
	v := Viewport{
		ScreenHeight:     500,
		DefaultRowHeight: 20,
		VerticalBuffer:   5,
		// 10 rows above the bottom of the grid.
		ScrollTop:          (b.MaxRows - 10) * 20,
		ScreenWidth:        800,
		DefaultColumnWidth: 100,
	}

	w, err := ComputeWindow(b, v)
	if err != nil {
		t.Fatalf("ComputeWindow() error: %v", err)
	}
	if w.StartRow != b.MaxRows-10 {
		t.Errorf("StartRow = %d, want %d", w.StartRow, b.MaxRows-10)
	}
	if w.RowCount != 10 {
		t.Errorf("RowCount = %d, want 10 (clamped to remaining rows)", w.RowCount)
	}
}

func TestComputeWindowScrolledPastEnd(t *testing.T) {
	b := Bounds{MaxRows: 100, MaxCols: 10}
	v := Viewport{
		ScreenWidth:        800,
		ScreenHeight:       600,
		DefaultColumnWidth: 100,
		DefaultRowHeight:   20,
		ScrollTop:          1 << 40,
		ScrollLeft:         1 << 40,
	}

	w, err := ComputeWindow(b, v)
	if err != nil {
		t.Fatalf("ComputeWindow() error: %v", err)
	}
	if w.RowCount != 0 || w.ColCount != 0 {
		t.Errorf("counts = (%d, %d), want (0, 0) past the grid end", w.RowCount, w.ColCount)
	}
	if w.StartRow+uint64(w.RowCount) > b.MaxRows {
		t.Errorf("StartRow+RowCount = %d exceeds MaxRows %d", w.StartRow+uint64(w.RowCount), b.MaxRows)
	}
	if w.StartCol+w.ColCount > b.MaxCols {
		t.Errorf("StartCol+ColCount = %d exceeds MaxCols %d", w.StartCol+w.ColCount, b.MaxCols)
	}
}

func TestComputeWindowRejectsZeroRowHeight(t *testing.T) {
	v := Viewport{DefaultColumnWidth: 100}
	_, err := ComputeWindow(DefaultBounds(), v)
	if err == nil {
		t.Fatal("ComputeWindow() error = nil, want validation error")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
	if verr.Field != "defaultRowHeight" {
		t.Errorf("Field = %q, want defaultRowHeight", verr.Field)
	}
}

func TestComputeWindowRejectsZeroColumnWidth(t *testing.T) {
	v := Viewport{DefaultRowHeight: 20}
	_, err := ComputeWindow(DefaultBounds(), v)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if verr.Field != "defaultColumnWidth" {
		t.Errorf("Field = %q, want defaultColumnWidth", verr.Field)
	}
}

func TestComputeWindowInvariants(t *testing.T) {
	b := DefaultBounds()
	viewports := []Viewport{
		{ScreenWidth: 1, ScreenHeight: 1, DefaultColumnWidth: 1, DefaultRowHeight: 1},
		{ScreenWidth: 1920, ScreenHeight: 1080, DefaultColumnWidth: 80, DefaultRowHeight: 22, HorizontalBuffer: 10, VerticalBuffer: 20},
		{ScreenWidth: 1 << 31, ScreenHeight: 1 << 31, DefaultColumnWidth: 1, DefaultRowHeight: 1, HorizontalBuffer: 1 << 31, VerticalBuffer: 1 << 31},
		{ScreenWidth: 500, ScreenHeight: 500, DefaultColumnWidth: 7, DefaultRowHeight: 13, ScrollLeft: 1 << 62, ScrollTop: 1 << 62},
		{ScreenWidth: 0, ScreenHeight: 0, DefaultColumnWidth: 50, DefaultRowHeight: 25, HorizontalBuffer: 3, VerticalBuffer: 4},
	}

	for i, v := range viewports {
		w, err := ComputeWindow(b, v)
		if err != nil {
			t.Fatalf("viewport %d: ComputeWindow() error: %v", i, err)
		}
		if w.RowCount > MaxRowWindow {
			t.Errorf("viewport %d: RowCount %d exceeds cap", i, w.RowCount)
		}
		if w.ColCount > MaxColWindow {
			t.Errorf("viewport %d: ColCount %d exceeds cap", i, w.ColCount)
		}
		if w.StartRow+uint64(w.RowCount) > b.MaxRows {
			t.Errorf("viewport %d: window exceeds MaxRows", i)
		}
		if uint64(w.StartCol)+uint64(w.ColCount) > uint64(b.MaxCols) {
			t.Errorf("viewport %d: window exceeds MaxCols", i)
		}
	}
}

func TestCeilDiv(t *testing.T) {
	cases := []struct{ a, b, want uint32 }{
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{500, 20, 25},
		{1<<32 - 1, 1, 1<<32 - 1},
		{1<<32 - 1, 1<<32 - 1, 1},
	}
	for _, tc := range cases {
		if got := ceilDiv(tc.a, tc.b); got != tc.want {
			t.Errorf("ceilDiv(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
