package vector

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIterable3(t *testing.T) {
	t.Run("Constructors", func(t *testing.T) {
		require.Equal(t, []int{0, 0, 0}, NewIterable3[int]().Values())
		require.Equal(t, []int{4, 5, 0}, IterableXY(4, 5).Values())
		require.Equal(t, []float64{1.5, 2.5, 3.5}, IterableXYZ(1.5, 2.5, 3.5).Values())
		require.Equal(t, []int{7, 8, 9}, IterableFromVector3Int(Vector3Int{X: 7, Y: 8, Z: 9}).Values())

		var zero Iterable3Float
		require.Equal(t, []float64{0, 0, 0}, zero.Values())
	})

	t.Run("Copy from point keeps each axis", func(t *testing.T) {
		v := IterableFromPoint(P3(1, 2, 3))
		require.Equal(t, 1.0, v.X())
		require.Equal(t, 2.0, v.Y())
		require.Equal(t, 3.0, v.Z())
	})

	t.Run("Sequence order", func(t *testing.T) {
		v := IterableXYZ(1, 2, 3)
		var got []int
		for c := range v.All() {
			got = append(got, c)
		}
		require.Equal(t, []int{1, 2, 3}, got)

		// A second traversal starts over.
		require.Equal(t, []int{1, 2, 3}, v.Values())
	})

	t.Run("Early break", func(t *testing.T) {
		var got []int
		for c := range IterableXYZ(7, 8, 9).All() {
			got = append(got, c)
			if c == 8 {
				break
			}
		}
		require.Equal(t, []int{7, 8}, got)
	})

	t.Run("Sequence reads live components", func(t *testing.T) {
		v := IterableXYZ(1, 2, 3)
		seq := v.All()
		v.SetY(20)
		var got []int
		for c := range seq {
			got = append(got, c)
		}
		require.Equal(t, []int{1, 20, 3}, got)
	})

	t.Run("ValueAt", func(t *testing.T) {
		v := IterableXYZ(1, 2, 3)
		require.Equal(t, 1, v.ValueAt(0))
		require.Equal(t, 2, v.ValueAt(1))
		require.Equal(t, 3, v.ValueAt(2))
		require.Equal(t, 3, v.ValueAt(5))
		require.Equal(t, 3, v.ValueAt(-1))
	})

	t.Run("Setters", func(t *testing.T) {
		v := NewIterable3[float64]()
		v.SetX(-1)
		v.SetY(0.5)
		v.SetZ(9)
		require.Equal(t, P3(-1, 0.5, 9), v.Point3())
	})

	t.Run("Conversions", func(t *testing.T) {
		f := IterableXYZ(1.9, -2.9, 3.0)
		require.Equal(t, Vector3Int{X: 1, Y: -2, Z: 3}, f.Vector3Int())
		require.Equal(t, P3(1.9, -2.9, 3), f.Point3())

		i := IterableXYZ(4, 5, 6)
		require.Equal(t, Vector3Int{X: 4, Y: 5, Z: 6}, i.Vector3Int())
		require.Equal(t, P3(4, 5, 6), i.Point3())
	})
}
