// Package grid holds adjacency helpers for integer grid coordinates.
package grid

import "github.com/zeusync/gametools/pkg/vector"

// ManhattanDistance returns |a.X-b.X| + |a.Y-b.Y|. Arithmetic wraps on
// overflow, so a difference of math.MinInt yields a negative distance.
func ManhattanDistance(a, b vector.Vector2Int) int {
	// The outer abs only matters when the sum overflows.
	return abs(abs(a.X-b.X) + abs(a.Y-b.Y))
}

// AdjacentCoordinates returns the four orthogonal neighbours of source in the
// fixed order +X, -X, +Y, -Y. Neighbours are not clipped to any grid, use
// arrays.InBoundsInt to filter them.
func AdjacentCoordinates(source vector.Vector2Int) [4]vector.Vector2Int {
	return [4]vector.Vector2Int{
		{X: source.X + 1, Y: source.Y},
		{X: source.X - 1, Y: source.Y},
		{X: source.X, Y: source.Y + 1},
		{X: source.X, Y: source.Y - 1},
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
