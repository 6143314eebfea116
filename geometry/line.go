// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"

	"github.com/katalvlaran/pgeo/matrix"
)

// Line3 is the line through two points, oriented from P to Q.
// P and Q must be distinct as projective points.
type Line3[T matrix.Scalar] struct {
	P Point3[T]
	Q Point3[T]
}

// NewLine3 returns the line from p to q.
func NewLine3[T matrix.Scalar](p, q Point3[T]) Line3[T] { return Line3[T]{P: p, Q: q} }

// ConvertLine casts both points of l to T.
func ConvertLine[T, U matrix.Scalar](l Line3[U]) Line3[T] {
	return Line3[T]{P: ConvertPoint[T](l.P), Q: ConvertPoint[T](l.Q)}
}

// Reverse exchanges P and Q in place.
func (l *Line3[T]) Reverse() { l.P, l.Q = l.Q, l.P }

// Reversed returns the line with P and Q exchanged.
func (l Line3[T]) Reversed() Line3[T] { return Line3[T]{P: l.Q, Q: l.P} }

// Covariant returns the antisymmetric Plücker matrix L with
// L(i, j) = p(i)·q(j) - p(j)·q(i). L·a is the meet of the line with plane a.
func (l Line3[T]) Covariant() matrix.Matrix[T, matrix.D4, matrix.D4, matrix.RowMajor] {
	var m matrix.Matrix[T, matrix.D4, matrix.D4, matrix.RowMajor]
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			v := l.pq(i, j)
			m.Set(i, j, v)
			m.Set(j, i, -v)
		}
	}

	return m
}

// Contravariant returns the dual Plücker matrix L*: entry (i, j) is, up to
// sign, the covariant entry of the complementary index pair.
// L*·p is the join of the line with point p.
func (l Line3[T]) Contravariant() matrix.Matrix[T, matrix.D4, matrix.D4, matrix.RowMajor] {
	var m matrix.Matrix[T, matrix.D4, matrix.D4, matrix.RowMajor]
	rows := [4][4]T{
		{0, l.pq(3, 2), l.pq(1, 3), l.pq(2, 1)},
		{l.pq(2, 3), 0, l.pq(3, 0), l.pq(0, 2)},
		{l.pq(3, 1), l.pq(0, 3), 0, l.pq(1, 0)},
		{l.pq(1, 2), l.pq(2, 0), l.pq(0, 1), 0},
	}
	for i := range rows {
		for j := range rows[i] {
			m.Set(i, j, rows[i][j])
		}
	}

	return m
}

// pq returns p(a)·q(b) - p(b)·q(a).
func (l Line3[T]) pq(a, b int) T {
	return l.P.At(a)*l.Q.At(b) - l.P.At(b)*l.Q.At(a)
}

func (l Line3[T]) String() string { return fmt.Sprintf("Line3(%v -> %v)", l.P, l.Q) }
