package grid

import "fmt"

// Viewport describes the client's visible region: screen extent and scroll
// offsets in pixel-like units, default cell sizes, and buffer margins added
// symmetrically around the visible range.
type Viewport struct {
	ScreenWidth        uint32
	ScreenHeight       uint32
	HorizontalBuffer   uint32
	VerticalBuffer     uint32
	DefaultColumnWidth uint32
	DefaultRowHeight   uint32
	ScrollLeft         uint64
	ScrollTop          uint64
}

// ValidationError reports a viewport field that fails validation. The field
// name uses the wire spelling so it can surface directly in a client error.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("grid: %s: %s", e.Field, e.Reason)
}

// Validate rejects viewports the window arithmetic cannot handle. The cell
// sizes are divisors, so zero is an input error rather than a crash.
func (v Viewport) Validate() error {
	if v.DefaultRowHeight == 0 {
		return &ValidationError{Field: "defaultRowHeight", Reason: "must be a positive integer"}
	}
	if v.DefaultColumnWidth == 0 {
		return &ValidationError{Field: "defaultColumnWidth", Reason: "must be a positive integer"}
	}
	return nil
}
