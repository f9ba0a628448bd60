package arrays

import "github.com/zeusync/gametools/pkg/vector"

// GrowByOne returns a copy of s with one extra zero-valued element at the end.
// A nil or empty s yields a new slice of length 1.
func GrowByOne[T any](s []T) []T {
	if len(s) < 1 {
		return make([]T, 1)
	}
	grown := make([]T, len(s)+1)
	copy(grown, s)
	return grown
}

// ShrinkByOne returns a copy of s without its last element.
// A nil or empty s yields a new, empty, non-nil slice.
func ShrinkByOne[T any](s []T) []T {
	if len(s) < 1 {
		return make([]T, 0)
	}
	shrunk := make([]T, len(s)-1)
	copy(shrunk, s)
	return shrunk
}

// Flatten2D lists every cell of g, iterating x in the outer loop and y in the
// inner loop. A nil grid yields nil rather than an empty slice.
func Flatten2D[T any](g *Grid[T]) []T {
	if g == nil {
		return nil
	}
	out := make([]T, 0, g.width*g.height)
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			out = append(out, g.cells[x*g.height+y])
		}
	}
	return out
}

// InBounds reports whether (x, y) addresses a cell of g.
func InBounds[T any](x, y int, g *Grid[T]) bool {
	return x > -1 && y > -1 && x < g.Width() && y < g.Height()
}

// InBoundsInt is InBounds for a grid coordinate.
func InBoundsInt[T any](c vector.Vector2Int, g *Grid[T]) bool {
	return InBounds(c.X, c.Y, g)
}

// InBoundsFloat truncates both components toward zero before checking, so
// (-0.5, 0) lands on column 0.
func InBoundsFloat[T any](c vector.Vector2, g *Grid[T]) bool {
	return InBounds(int(c.X), int(c.Y), g)
}
