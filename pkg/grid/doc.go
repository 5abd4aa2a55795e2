// Package grid implements the slice engine for the virtualized grid.
//
// The engine is a pure function from a client viewport description to a
// rectangular window of the grid: it floor-divides the scroll offsets by the
// default cell sizes to find the first visible row and column, ceil-divides
// the screen extents to count the visible cells, widens the window by the
// client's symmetric buffer margins, and clamps the result to the grid bounds
// and to hard safety caps so a client can never request an unbounded payload.
//
// Cell content comes from a Source. The default LabelSource synthesizes
// placeholder labels; a real data backend plugs in behind the same interface.
//
// The engine holds no mutable state and is safe for concurrent use from any
// number of connection goroutines.
package grid
