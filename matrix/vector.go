// SPDX-License-Identifier: MIT

package matrix

const opVectorOf = "VectorOf"

// Vector is an N×1 column matrix with one-index access.
// All Matrix methods are promoted; *Vector implements VectorEngine.
type Vector[T Scalar, N Dim] struct {
	Matrix[T, N, D1, RowMajor]
}

// CoVector is a 1×N row matrix with one-index access.
type CoVector[T Scalar, N Dim] struct {
	Matrix[T, D1, N, RowMajor]
}

// VectorOf builds a Vector from exactly N values.
// Errors: ErrDimensionMismatch when len(vals) != N.
//
//	v, err := matrix.VectorOf[float32, matrix.D3](1, 2, 3)
func VectorOf[T Scalar, N Dim](vals ...T) (Vector[T, N], error) {
	var v Vector[T, N]
	if err := AssignFlat[T, T](&v, vals); err != nil {
		return Vector[T, N]{}, matrixErrorf(opVectorOf, err)
	}

	return v, nil
}

// CoVectorOf builds a CoVector from exactly N values.
func CoVectorOf[T Scalar, N Dim](vals ...T) (CoVector[T, N], error) {
	var c CoVector[T, N]
	if err := AssignFlat[T, T](&c, vals); err != nil {
		return CoVector[T, N]{}, matrixErrorf(opVectorOf, err)
	}

	return c, nil
}

// VectorFrom reinterprets an N×1 matrix (e.g. an arithmetic result) as a Vector.
func VectorFrom[T Scalar, N Dim](m Matrix[T, N, D1, RowMajor]) Vector[T, N] {
	return Vector[T, N]{Matrix: m}
}

// CoVectorFrom reinterprets a 1×N matrix as a CoVector.
func CoVectorFrom[T Scalar, N Dim](m Matrix[T, D1, N, RowMajor]) CoVector[T, N] {
	return CoVector[T, N]{Matrix: m}
}

// Len returns N.
func (v *Vector[T, N]) Len() int { return extentOf[N]() }

// AtIndex returns element i. A column vector in row-major layout is contiguous,
// so the index is the storage offset.
func (v *Vector[T, N]) AtIndex(i int) T     { return v.engine.elems[i] }
func (v *Vector[T, N]) RefIndex(i int) *T   { return &v.engine.elems[i] }
func (v *Vector[T, N]) SetIndex(i int, x T) { v.engine.elems[i] = x }

// AssignValues replaces the elements with vals. len(vals) must be N.
func (v *Vector[T, N]) AssignValues(vals []T) error { return AssignFlat[T, T](v, vals) }

// Values returns a copy of the elements.
func (v *Vector[T, N]) Values() []T {
	out := make([]T, extentOf[N]())
	copy(out, v.engine.elems[:])

	return out
}

// Transposed returns the elements as a CoVector.
func (v Vector[T, N]) Transposed() CoVector[T, N] {
	var c CoVector[T, N]
	_ = AssignFrom[T, T](&c, v.ConstTranspose()) // shapes agree by construction

	return c
}

func (c *CoVector[T, N]) Len() int            { return extentOf[N]() }
func (c *CoVector[T, N]) AtIndex(i int) T     { return c.engine.elems[i] }
func (c *CoVector[T, N]) RefIndex(i int) *T   { return &c.engine.elems[i] }
func (c *CoVector[T, N]) SetIndex(i int, x T) { c.engine.elems[i] = x }

// AssignValues replaces the elements with vals. len(vals) must be N.
func (c *CoVector[T, N]) AssignValues(vals []T) error { return AssignFlat[T, T](c, vals) }

// Values returns a copy of the elements.
func (c *CoVector[T, N]) Values() []T {
	out := make([]T, extentOf[N]())
	copy(out, c.engine.elems[:])

	return out
}

// Transposed returns the elements as a Vector.
func (c CoVector[T, N]) Transposed() Vector[T, N] {
	var v Vector[T, N]
	_ = AssignFrom[T, T](&v, c.ConstTranspose()) // shapes agree by construction

	return v
}
