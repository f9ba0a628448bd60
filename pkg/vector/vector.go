// Package vector holds the engine-shaped numeric tuples used across gametools,
// together with distance and tolerance helpers over them.
package vector

import "gonum.org/v1/gonum/spatial/r3"

// Point3 is a position in 3-space. It shares its layout with r3.Vec so values
// convert to gonum's spatial types without copying.
type Point3 r3.Vec

// Vector2 is a floating-point 2-component tuple.
type Vector2 struct {
	X, Y float64
}

// Vector2Int is an integer 2-component tuple, used as a grid coordinate.
type Vector2Int struct {
	X, Y int
}

// Vector3Int is an integer 3-component tuple.
type Vector3Int struct {
	X, Y, Z int
}

// Positioned is anything that occupies a point in 3-space.
type Positioned interface {
	Position() Point3
}

var _ Positioned = Point3{}

// P3 builds a Point3.
func P3(x, y, z float64) Point3 { return Point3{X: x, Y: y, Z: z} }

// Position lets a bare point stand in wherever a Positioned is accepted.
func (p Point3) Position() Point3 { return p }

// Vec converts the point to a gonum r3.Vec.
func (p Point3) Vec() r3.Vec { return r3.Vec(p) }

// Vector3Int truncates every component toward zero.
func (p Point3) Vector3Int() Vector3Int {
	return Vector3Int{X: int(p.X), Y: int(p.Y), Z: int(p.Z)}
}

// Point3 widens the integer tuple to floating point.
func (v Vector3Int) Point3() Point3 {
	return Point3{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

// Vector2Int truncates both components toward zero.
func (v Vector2) Vector2Int() Vector2Int {
	return Vector2Int{X: int(v.X), Y: int(v.Y)}
}
