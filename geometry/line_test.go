// SPDX-License-Identifier: MIT

package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pgeo/geometry"
	"github.com/katalvlaran/pgeo/matrix"
)

// TestLine3_Covariant checks the Plücker entries of a line along x.
func TestLine3_Covariant(t *testing.T) {
	l := geometry.NewLine3(
		geometry.NewPoint3[float32](0, 0, 0, 1),
		geometry.NewPoint3[float32](1, 0, 0, 1),
	)
	m := l.Covariant()
	require.Equal(t, float32(-1), m.At(0, 3))
	require.Equal(t, float32(1), m.At(3, 0))

	for i := 0; i < 4; i++ {
		require.Zero(t, m.At(i, i))
		for j := 0; j < 4; j++ {
			require.Equal(t, -m.At(j, i), m.At(i, j), "antisymmetry at (%d, %d)", i, j)
			if (i == 0 && j == 3) || (i == 3 && j == 0) {
				continue
			}
			require.Zero(t, m.At(i, j))
		}
	}
}

// TestLine3_PluckerIdentities uses L*·L = 0 and L*·p = 0 for points on the
// line over random integer lines.
func TestLine3_PluckerIdentities(t *testing.T) {
	lines := []geometry.Line3[int64]{
		geometry.NewLine3(geometry.NewPoint3[int64](1, -2, 3, 1), geometry.NewPoint3[int64](4, 0, -5, 2)),
		geometry.NewLine3(geometry.NewPoint3[int64](0, 0, 0, 1), geometry.NewPoint3[int64](0, 0, 1, 0)),
		geometry.NewLine3(geometry.NewPoint3[int64](-3, 5, 2, -1), geometry.NewPoint3[int64](2, 2, 2, 7)),
	}
	var zero matrix.Matrix[int64, matrix.D4, matrix.D4, matrix.RowMajor]
	for _, l := range lines {
		require.Equal(t, zero, matrix.Mul(l.Contravariant(), l.Covariant()))

		onLine := geometry.Point3From(matrix.VectorFrom(l.P.Coordinates().Add(l.Q.Coordinates().Scale(3))))
		plane := geometry.JoinLinePoint(l, onLine)
		require.Equal(t, geometry.Plane3[int64]{}, plane)

		require.Equal(t, l.Covariant().Neg(), l.Reversed().Covariant())
	}
}

// TestLine3_Reverse covers both the in-place and the copying forms.
func TestLine3_Reverse(t *testing.T) {
	p := geometry.NewPoint3[float64](1, 2, 3, 1)
	q := geometry.NewPoint3[float64](4, 5, 6, 1)
	l := geometry.NewLine3(p, q)

	r := l.Reversed()
	require.Equal(t, q, r.P)
	require.Equal(t, p, r.Q)
	require.Equal(t, p, l.P) // unchanged

	l.Reverse()
	require.Equal(t, r, l)
	require.Equal(t, "Line3(Point3(4, 5, 6, 1) -> Point3(1, 2, 3, 1))", l.String())
}

// TestConvertLine converts both endpoints.
func TestConvertLine(t *testing.T) {
	l := geometry.NewLine3(geometry.NewPoint3(0.5, 1.0, 2.0, 1.0), geometry.NewPoint3(3.0, 4.0, 5.0, 1.0))
	got := geometry.ConvertLine[float32](l)
	require.Equal(t, float32(0.5), got.P.X())
	require.Equal(t, float32(5), got.Q.Z())
}
