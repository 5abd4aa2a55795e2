package grid

// Default grid extent. The grid is conceptual: rows and columns exist as
// coordinates, not as stored data.
const (
	DefaultMaxRows uint64 = 10_000_000
	DefaultMaxCols uint32 = 1_000
)

// Safety caps on a single slice, applied after bound clamping. They hold
// regardless of client-supplied screen sizes and buffer margins.
const (
	MaxRowWindow uint32 = 1000
	MaxColWindow uint32 = 200
)

// Bounds declares the extent of the grid. It is immutable for the lifetime
// of an Engine and safe to read concurrently.
type Bounds struct {
	MaxRows uint64
	MaxCols uint32
}

// DefaultBounds returns the production grid extent.
func DefaultBounds() Bounds {
	return Bounds{MaxRows: DefaultMaxRows, MaxCols: DefaultMaxCols}
}
