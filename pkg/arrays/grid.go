// Package arrays provides resize, flatten and bounds helpers over 1D slices
// and fixed-size 2D grids.
package arrays

import (
	"fmt"
	"math"
)

// Grid is a fixed-size two-dimensional array. Cells are addressed as (x, y)
// with x in [0, Width) and y in [0, Height). A nil *Grid has no cells.
type Grid[T any] struct {
	width, height int
	cells         []T
}

// CheckExtents reports whether a width x height grid can be allocated.
// Negative extents count as zero.
func CheckExtents(width, height int) error {
	width, height = max(width, 0), max(height, 0)
	if width != 0 && height > math.MaxInt/width {
		return fmt.Errorf("%dx%d: %w", width, height, ErrGridTooLarge)
	}
	return nil
}

// NewGrid allocates a width x height grid of zero values. Negative extents
// are treated as zero. Extents whose cell count overflows int are rejected
// with ErrGridTooLarge.
func NewGrid[T any](width, height int) (*Grid[T], error) {
	if err := CheckExtents(width, height); err != nil {
		return nil, err
	}
	width, height = max(width, 0), max(height, 0)
	return &Grid[T]{
		width:  width,
		height: height,
		cells:  make([]T, width*height),
	}, nil
}

// GridFromRows copies rows into a new grid, rows[x][y] becoming cell (x, y).
// All rows must share the same length.
func GridFromRows[T any](rows [][]T) (*Grid[T], error) {
	height := 0
	if len(rows) > 0 {
		height = len(rows[0])
	}
	g, err := NewGrid[T](len(rows), height)
	if err != nil {
		return nil, err
	}
	for x, row := range rows {
		if len(row) != height {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", x, len(row), height, ErrRaggedRows)
		}
		copy(g.cells[x*height:(x+1)*height], row)
	}
	return g, nil
}

// Width is the extent of the first dimension.
func (g *Grid[T]) Width() int {
	if g == nil {
		return 0
	}
	return g.width
}

// Height is the extent of the second dimension.
func (g *Grid[T]) Height() int {
	if g == nil {
		return 0
	}
	return g.height
}

// At returns cell (x, y). It panics when the coordinate is out of bounds.
func (g *Grid[T]) At(x, y int) T {
	return g.cells[g.index(x, y)]
}

// Set stores v at cell (x, y). It panics when the coordinate is out of bounds.
func (g *Grid[T]) Set(x, y int, v T) {
	g.cells[g.index(x, y)] = v
}

func (g *Grid[T]) index(x, y int) int {
	if !InBounds(x, y, g) {
		panic(fmt.Sprintf("arrays: index (%d, %d) out of range for %dx%d grid", x, y, g.Width(), g.Height()))
	}
	return x*g.height + y
}
