package vector

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// relativeTolerance is the fraction of the larger magnitude two values may differ by.
	relativeTolerance = 1e-6
	// absoluteTolerance keeps comparisons near zero meaningful: eight times
	// the smallest positive single-precision value.
	absoluteTolerance = 8 * math.SmallestNonzeroFloat32
)

// Distance returns the Euclidean distance between a and b. Operand order does
// not matter and either side may be a bare Point3 or any positioned object.
func Distance(a, b Positioned) float64 {
	return r3.Norm(r3.Sub(a.Position().Vec(), b.Position().Vec()))
}

// Approximately reports whether a and b are equal within the engine's
// floating-point tolerance. Both bounds are inclusive.
func Approximately(a, b float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, absoluteTolerance, relativeTolerance)
}

// ApproximatelyEqual compares two points component by component. It is not a
// bound on the length of a-b.
func ApproximatelyEqual(a, b Point3) bool {
	return Approximately(a.X, b.X) && Approximately(a.Y, b.Y) && Approximately(a.Z, b.Z)
}
