// SPDX-License-Identifier: MIT
// Package geometry: Point3, a point of projective 3-space.

package geometry

import (
	"fmt"

	"github.com/katalvlaran/pgeo/matrix"
)

// Point3 is a point in homogeneous coordinates (x, y, z, w), stored as a
// 4-element column vector. Points that differ by a non-zero factor are equal.
// The zero value has all coordinates zero and is not a valid point.
type Point3[T matrix.Scalar] struct {
	coords matrix.Vector[T, matrix.D4]
}

// NewPoint3 returns the point (x, y, z, w).
func NewPoint3[T matrix.Scalar](x, y, z, w T) Point3[T] {
	var p Point3[T]
	p.coords.SetIndex(0, x)
	p.coords.SetIndex(1, y)
	p.coords.SetIndex(2, z)
	p.coords.SetIndex(3, w)

	return p
}

// Point3From wraps a coordinate vector.
func Point3From[T matrix.Scalar](v matrix.Vector[T, matrix.D4]) Point3[T] {
	return Point3[T]{coords: v}
}

// ConvertPoint casts every coordinate of p to T.
func ConvertPoint[T, U matrix.Scalar](p Point3[U]) Point3[T] {
	return Point3From(matrix.VectorFrom(matrix.Convert[T](p.coords.Matrix)))
}

func (p Point3[T]) X() T { return p.coords.AtIndex(0) }
func (p Point3[T]) Y() T { return p.coords.AtIndex(1) }
func (p Point3[T]) Z() T { return p.coords.AtIndex(2) }
func (p Point3[T]) W() T { return p.coords.AtIndex(3) }

// At returns coordinate i (0..3).
func (p Point3[T]) At(i int) T { return p.coords.AtIndex(i) }

// Ref returns a writable reference to coordinate i.
func (p *Point3[T]) Ref(i int) *T { return p.coords.RefIndex(i) }

// Set writes coordinate i.
func (p *Point3[T]) Set(i int, v T) { p.coords.SetIndex(i, v) }

// Coordinates returns a copy of the coordinate vector.
func (p Point3[T]) Coordinates() matrix.Vector[T, matrix.D4] { return p.coords }

// XYZ, YZW, XZW and XYW drop one coordinate.
func (p Point3[T]) XYZ() matrix.Vector[T, matrix.D3] { return pick3(p.At, 0, 1, 2) }
func (p Point3[T]) YZW() matrix.Vector[T, matrix.D3] { return pick3(p.At, 1, 2, 3) }
func (p Point3[T]) XZW() matrix.Vector[T, matrix.D3] { return pick3(p.At, 0, 2, 3) }
func (p Point3[T]) XYW() matrix.Vector[T, matrix.D3] { return pick3(p.At, 0, 1, 3) }

// Normalized divides every coordinate by w, so that w becomes 1.
// A point at infinity (w = 0) yields whatever the division of T produces:
// ±Inf/NaN for floats, a run-time panic for integers.
func (p Point3[T]) Normalized() Point3[T] {
	w := p.W()

	return NewPoint3(p.X()/w, p.Y()/w, p.Z()/w, w/w)
}

// Equal reports projective equality: both points are normalised by w and
// compared exactly. Points at infinity are not supported (see Normalized).
func (p Point3[T]) Equal(o Point3[T]) bool {
	a, b := p.Normalized(), o.Normalized()

	return a.coords.Equal(&b.coords)
}

// ApproxEqual is Equal with the tolerance policy of matrix.ApproxEqual.
func (p Point3[T]) ApproxEqual(o Point3[T], opts ...matrix.Option) bool {
	a, b := p.Normalized(), o.Normalized()

	return matrix.ApproxEqual[T](&a.coords, &b.coords, opts...)
}

// String renders "Point3(x, y, z, w)".
func (p Point3[T]) String() string {
	return fmt.Sprintf("Point3(%v, %v, %v, %v)", p.X(), p.Y(), p.Z(), p.W())
}

// Normalize returns p.Normalized().
func Normalize[T matrix.Scalar](p Point3[T]) Point3[T] { return p.Normalized() }

// pick3 gathers three coordinates into a 3-vector.
func pick3[T matrix.Scalar](at func(int) T, i, j, k int) matrix.Vector[T, matrix.D3] {
	var v matrix.Vector[T, matrix.D3]
	v.SetIndex(0, at(i))
	v.SetIndex(1, at(j))
	v.SetIndex(2, at(k))

	return v
}
