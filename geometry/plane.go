// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"

	"github.com/katalvlaran/pgeo/matrix"
)

// Plane3 is a plane of projective 3-space given by the co-vector (x, y, z, w):
// a point p lies on the plane when x·p.x + y·p.y + z·p.z + w·p.w = 0.
// Planes that differ by a non-zero factor are equal.
type Plane3[T matrix.Scalar] struct {
	coords matrix.CoVector[T, matrix.D4]
}

// NewPlane3 returns the plane (x, y, z, w).
func NewPlane3[T matrix.Scalar](x, y, z, w T) Plane3[T] {
	var a Plane3[T]
	a.coords.SetIndex(0, x)
	a.coords.SetIndex(1, y)
	a.coords.SetIndex(2, z)
	a.coords.SetIndex(3, w)

	return a
}

// Plane3From wraps a coordinate co-vector.
func Plane3From[T matrix.Scalar](c matrix.CoVector[T, matrix.D4]) Plane3[T] {
	return Plane3[T]{coords: c}
}

func (a Plane3[T]) X() T { return a.coords.AtIndex(0) }
func (a Plane3[T]) Y() T { return a.coords.AtIndex(1) }
func (a Plane3[T]) Z() T { return a.coords.AtIndex(2) }
func (a Plane3[T]) W() T { return a.coords.AtIndex(3) }

func (a Plane3[T]) At(i int) T                       { return a.coords.AtIndex(i) }
func (a *Plane3[T]) Ref(i int) *T                    { return a.coords.RefIndex(i) }
func (a *Plane3[T]) Set(i int, v T)                  { a.coords.SetIndex(i, v) }
func (a Plane3[T]) XYZ() matrix.Vector[T, matrix.D3] { return pick3(a.At, 0, 1, 2) }
func (a Plane3[T]) YZW() matrix.Vector[T, matrix.D3] { return pick3(a.At, 1, 2, 3) }
func (a Plane3[T]) XZW() matrix.Vector[T, matrix.D3] { return pick3(a.At, 0, 2, 3) }
func (a Plane3[T]) XYW() matrix.Vector[T, matrix.D3] { return pick3(a.At, 0, 1, 3) }

// Coordinates returns a copy of the coordinate co-vector.
func (a Plane3[T]) Coordinates() matrix.CoVector[T, matrix.D4] { return a.coords }

// Normalized divides every coordinate by w. Planes through the origin (w = 0)
// are not supported, as with Point3.Normalized.
func (a Plane3[T]) Normalized() Plane3[T] {
	w := a.W()

	return NewPlane3(a.X()/w, a.Y()/w, a.Z()/w, w/w)
}

// Equal reports projective equality (normalised by w, compared exactly).
func (a Plane3[T]) Equal(o Plane3[T]) bool {
	x, y := a.Normalized(), o.Normalized()

	return x.coords.Equal(&y.coords)
}

// ApproxEqual is Equal with the tolerance policy of matrix.ApproxEqual.
func (a Plane3[T]) ApproxEqual(o Plane3[T], opts ...matrix.Option) bool {
	x, y := a.Normalized(), o.Normalized()

	return matrix.ApproxEqual[T](&x.coords, &y.coords, opts...)
}

func (a Plane3[T]) String() string {
	return fmt.Sprintf("Plane3(%v, %v, %v, %v)", a.X(), a.Y(), a.Z(), a.W())
}

// NormalizePlane returns a.Normalized().
func NormalizePlane[T matrix.Scalar](a Plane3[T]) Plane3[T] { return a.Normalized() }

// Incidence returns a·p. It is zero exactly when p lies on a; the sign tells
// which side of a the (w-positive) point is on.
func Incidence[T matrix.Scalar](a Plane3[T], p Point3[T]) T {
	return matrix.Dot(a.coords, p.coords)
}
