package vector

import (
	"iter"

	"github.com/zeusync/gametools/pkg/sequence"
)

// Number is the component type an Iterable3 can hold.
type Number interface {
	~int | ~float64
}

// Iterable3 wraps exactly three components and exposes them, in x, y, z
// order, as a sequence. The zero value is (0, 0, 0).
type Iterable3[T Number] struct {
	x, y, z T
}

type (
	// Iterable3Float is the floating-point wrapper.
	Iterable3Float = Iterable3[float64]

	// Iterable3Int is the integer wrapper.
	Iterable3Int = Iterable3[int]
)

// NewIterable3 returns a wrapper holding (0, 0, 0).
func NewIterable3[T Number]() *Iterable3[T] {
	return &Iterable3[T]{}
}

// IterableXY returns a wrapper holding (x, y, 0).
func IterableXY[T Number](x, y T) *Iterable3[T] {
	return &Iterable3[T]{x: x, y: y}
}

// IterableXYZ returns a wrapper holding (x, y, z).
func IterableXYZ[T Number](x, y, z T) *Iterable3[T] {
	return &Iterable3[T]{x: x, y: y, z: z}
}

// IterableFromPoint copies a Point3 into a floating-point wrapper.
func IterableFromPoint(p Point3) *Iterable3Float {
	return &Iterable3Float{x: p.X, y: p.Y, z: p.Z}
}

// IterableFromVector3Int copies a Vector3Int into an integer wrapper.
func IterableFromVector3Int(v Vector3Int) *Iterable3Int {
	return &Iterable3Int{x: v.X, y: v.Y, z: v.Z}
}

func (v *Iterable3[T]) X() T { return v.x }
func (v *Iterable3[T]) Y() T { return v.y }
func (v *Iterable3[T]) Z() T { return v.z }

func (v *Iterable3[T]) SetX(x T) { v.x = x }
func (v *Iterable3[T]) SetY(y T) { v.y = y }
func (v *Iterable3[T]) SetZ(z T) { v.z = z }

// ValueAt maps 0 to x and 1 to y. Every other index, negative or past 2,
// resolves to z.
func (v *Iterable3[T]) ValueAt(index int) T {
	switch index {
	case 0:
		return v.x
	case 1:
		return v.y
	default:
		return v.z
	}
}

// All yields x, y and z. Components are read as the traversal reaches them,
// and each call starts a new traversal.
func (v *Iterable3[T]) All() iter.Seq[T] {
	return sequence.Indexed(3, v.ValueAt).Seq()
}

// Values collects the three components into a new slice.
func (v *Iterable3[T]) Values() []T {
	return sequence.FromSeq(v.All()).Collect()
}

// Vector3Int converts to the integer tuple, truncating toward zero.
func (v *Iterable3[T]) Vector3Int() Vector3Int {
	return Vector3Int{X: int(v.x), Y: int(v.y), Z: int(v.z)}
}

// Point3 converts to the floating-point tuple.
func (v *Iterable3[T]) Point3() Point3 {
	return Point3{X: float64(v.x), Y: float64(v.y), Z: float64(v.z)}
}
