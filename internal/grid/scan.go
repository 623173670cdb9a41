// Package grid holds the line scanning shared by the two-mark games.
package grid

// Direction is a single step between neighbouring cells
type Direction struct {
	DRow int
	DCol int
}

// LineDirections are horizontal, vertical and both diagonals. Walking
// forward from every cell in these four directions visits every line.
var LineDirections = []Direction{
	{DRow: 0, DCol: 1},
	{DRow: 1, DCol: 0},
	{DRow: 1, DCol: 1},
	{DRow: 1, DCol: -1},
}

// Reader is read-only access to a rectangular board
type Reader[T comparable] interface {
	Rows() int
	Cols() int
	At(row, col int) T
}

// RunLength counts consecutive cells equal to the start cell, walking from
// (row, col) in direction d and stopping at the board edge.
func RunLength[T comparable](g Reader[T], row, col int, d Direction) int {
	want := g.At(row, col)
	count := 0
	for r, c := row, col; inBounds(g, r, c) && g.At(r, c) == want; r, c = r+d.DRow, c+d.DCol {
		count++
	}
	return count
}

// Winner returns the mark owning a line of at least run cells. Cells equal
// to empty never win.
func Winner[T comparable](g Reader[T], empty T, run int) (T, bool) {
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			if g.At(row, col) == empty {
				continue
			}
			for _, d := range LineDirections {
				if RunLength(g, row, col, d) >= run {
					return g.At(row, col), true
				}
			}
		}
	}
	return empty, false
}

// Full returns true when no cell equals empty
func Full[T comparable](g Reader[T], empty T) bool {
	return Count(g, empty) == 0
}

// Count returns the number of cells equal to v
func Count[T comparable](g Reader[T], v T) int {
	n := 0
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			if g.At(row, col) == v {
				n++
			}
		}
	}
	return n
}

func inBounds[T comparable](g Reader[T], row, col int) bool {
	return row >= 0 && row < g.Rows() && col >= 0 && col < g.Cols()
}
