// SPDX-License-Identifier: MIT
// Package geometry: join and meet of points, planes and lines.
//
// Join builds the smallest subspace containing its arguments, Meet the
// largest one contained in all of them. Degenerate inputs (collinear points,
// a line lying in the plane, ...) are not errors: they produce an all-zero or
// w = 0 result, which callers test for.

package geometry

import "github.com/katalvlaran/pgeo/matrix"

// Join returns the plane through three points.
// Implementation:
//   - x =  det(p1.yzw, p2.yzw, p3.yzw)
//   - y = -det(p1.xzw, p2.xzw, p3.xzw)
//   - z =  det(p1.xyw, p2.xyw, p3.xyw)
//   - w = -det(p1.xyz, p2.xyz, p3.xyz)
//
// Collinear points give the zero co-vector.
func Join[T matrix.Scalar](p1, p2, p3 Point3[T]) Plane3[T] {
	return NewPlane3(
		matrix.DeterminantOfVectors3(p1.YZW(), p2.YZW(), p3.YZW()),
		-matrix.DeterminantOfVectors3(p1.XZW(), p2.XZW(), p3.XZW()),
		matrix.DeterminantOfVectors3(p1.XYW(), p2.XYW(), p3.XYW()),
		-matrix.DeterminantOfVectors3(p1.XYZ(), p2.XYZ(), p3.XYZ()),
	)
}

// Meet returns the point common to three planes, by the same formula as Join.
// Planes sharing a line give the zero vector.
func Meet[T matrix.Scalar](a1, a2, a3 Plane3[T]) Point3[T] {
	return NewPoint3(
		matrix.DeterminantOfVectors3(a1.YZW(), a2.YZW(), a3.YZW()),
		-matrix.DeterminantOfVectors3(a1.XZW(), a2.XZW(), a3.XZW()),
		matrix.DeterminantOfVectors3(a1.XYW(), a2.XYW(), a3.XYW()),
		-matrix.DeterminantOfVectors3(a1.XYZ(), a2.XYZ(), a3.XYZ()),
	)
}

// MeetLinePlane returns the intersection of l with a: the covariant Plücker
// matrix of l times the coordinates of a. A line parallel to a meets it at
// infinity (w = 0); a line inside a gives the zero vector.
func MeetLinePlane[T matrix.Scalar](l Line3[T], a Plane3[T]) Point3[T] {
	return Point3From(matrix.MulVec(l.Covariant(), a.coords.Transposed()))
}

// JoinLinePoint returns the plane containing l and p: the contravariant
// Plücker matrix of l times p. A point on l gives the zero co-vector.
func JoinLinePoint[T matrix.Scalar](l Line3[T], p Point3[T]) Plane3[T] {
	return Plane3From(matrix.MulVec(l.Contravariant(), p.coords).Transposed())
}

// SideWrap returns the orientation of l2 relative to l1: the negated
// determinant of the four endpoints (l1.P, l1.Q, l2.P, l2.Q).
// Zero means the lines are coplanar (they intersect or are parallel); the sign
// tells on which side l2 passes l1. Swapping either line's endpoints flips it.
func SideWrap[T matrix.Scalar](l1, l2 Line3[T]) T {
	return -matrix.DeterminantOfVectors4(l1.P.coords, l1.Q.coords, l2.P.coords, l2.Q.coords)
}
