// SPDX-License-Identifier: MIT
// Package matrix: arithmetic on owning matrices and on arbitrary engines.
//
// Two families live here:
//   - Typed forms (Matrix.Add, Mul, MulVec, ...) whose operand extents are part
//     of the type. Mismatched shapes do not compile and nothing can fail.
//   - Engine forms (Sum, Diff, Product, InnerProductOf) that accept any engine,
//     views included, and check extents at runtime.
//
// Every form returns a fresh owning result; operands are never modified.

package matrix

const (
	opSum     = "Sum"
	opDiff    = "Diff"
	opProduct = "Product"
)

// Add returns m + o.
func (m Matrix[T, R, C, L]) Add(o Matrix[T, R, C, L]) Matrix[T, R, C, L] {
	var out Matrix[T, R, C, L]
	n := extentOf[R]() * extentOf[C]()
	for k := 0; k < n; k++ { // same layout on both sides: offsets coincide
		out.engine.elems[k] = m.engine.elems[k] + o.engine.elems[k]
	}

	return out
}

// Sub returns m - o.
func (m Matrix[T, R, C, L]) Sub(o Matrix[T, R, C, L]) Matrix[T, R, C, L] {
	var out Matrix[T, R, C, L]
	n := extentOf[R]() * extentOf[C]()
	for k := 0; k < n; k++ {
		out.engine.elems[k] = m.engine.elems[k] - o.engine.elems[k]
	}

	return out
}

// Scale returns s·m. Scalar multiplication commutes, so this also serves
// as m·s; see ScalarMul for the left-scalar spelling.
func (m Matrix[T, R, C, L]) Scale(s T) Matrix[T, R, C, L] {
	var out Matrix[T, R, C, L]
	n := extentOf[R]() * extentOf[C]()
	for k := 0; k < n; k++ {
		out.engine.elems[k] = s * m.engine.elems[k]
	}

	return out
}

// Neg returns -m.
func (m Matrix[T, R, C, L]) Neg() Matrix[T, R, C, L] {
	var out Matrix[T, R, C, L]
	n := extentOf[R]() * extentOf[C]()
	for k := 0; k < n; k++ {
		out.engine.elems[k] = -m.engine.elems[k]
	}

	return out
}

// ScalarMul returns s·m.
func ScalarMul[T Scalar, R, C Dim, L Layout](s T, m Matrix[T, R, C, L]) Matrix[T, R, C, L] {
	return m.Scale(s)
}

// Mul returns the product a·b of an R×K and a K×C matrix.
// The result takes the layout of a. Any layout mix is accepted.
// Implementation:
//   - Stage 1: for each (i, j) accumulate Σ_k a(i,k)·b(k,j) in T.
//
// Complexity:
//   - Time O(R·K·C), no allocation.
func Mul[T Scalar, R, K, C Dim, L1, L2 Layout](a Matrix[T, R, K, L1], b Matrix[T, K, C, L2]) Matrix[T, R, C, L1] {
	var out Matrix[T, R, C, L1]
	productInto[T](&out.engine, &a.engine, &b.engine)

	return out
}

// MulVec returns m·v, a vector of R elements.
func MulVec[T Scalar, R, C Dim, L Layout](m Matrix[T, R, C, L], v Vector[T, C]) Vector[T, R] {
	var out Vector[T, R]
	productInto[T](&out.engine, &m.engine, &v.engine)

	return out
}

// VecMul returns c·m, a co-vector of C elements.
func VecMul[T Scalar, R, C Dim, L Layout](c CoVector[T, R], m Matrix[T, R, C, L]) CoVector[T, C] {
	var out CoVector[T, C]
	productInto[T](&out.engine, &c.engine, &m.engine)

	return out
}

// Dot returns the scalar c·v.
func Dot[T Scalar, N Dim](c CoVector[T, N], v Vector[T, N]) T {
	var s T
	for k := 0; k < extentOf[N](); k++ {
		s += c.AtIndex(k) * v.AtIndex(k)
	}

	return s
}

// Transposed returns an owning C×R copy of m.
func Transposed[T Scalar, R, C Dim, L Layout](m Matrix[T, R, C, L]) Matrix[T, C, R, L] {
	var out Matrix[T, C, R, L]
	_ = AssignFrom[T, T](&out.engine, m.ConstTranspose()) // shapes agree by construction

	return out
}

// Sum returns a + b for any two R×C engines.
// Errors: ErrNilEngine, ErrDimensionMismatch (wrapped with "Sum").
func Sum[T Scalar, R, C Dim, L Layout](a, b Engine[T]) (Matrix[T, R, C, L], error) {
	var out Matrix[T, R, C, L]
	if err := validateOperands(&out.engine, a, b); err != nil {
		return out, matrixErrorf(opSum, err)
	}
	rows, cols := out.Size()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			*out.Ref(i, j) = a.At(i, j) + b.At(i, j)
		}
	}

	return out, nil
}

// Diff returns a - b for any two R×C engines.
func Diff[T Scalar, R, C Dim, L Layout](a, b Engine[T]) (Matrix[T, R, C, L], error) {
	var out Matrix[T, R, C, L]
	if err := validateOperands(&out.engine, a, b); err != nil {
		return out, matrixErrorf(opDiff, err)
	}
	rows, cols := out.Size()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			*out.Ref(i, j) = a.At(i, j) - b.At(i, j)
		}
	}

	return out, nil
}

// Product returns a·b for any engines with a.Rows == R, b.Columns == C and
// a.Columns == b.Rows.
// Errors: ErrNilEngine, ErrDimensionMismatch (wrapped with "Product").
func Product[T Scalar, R, C Dim, L Layout](a, b Engine[T]) (Matrix[T, R, C, L], error) {
	var out Matrix[T, R, C, L]
	if err := ValidateMulCompatible(a, b); err != nil {
		return out, matrixErrorf(opProduct, err)
	}
	if a.Rows() != extentOf[R]() || b.Columns() != extentOf[C]() {
		return out, matrixErrorf(opProduct, ErrDimensionMismatch)
	}
	productInto[T](&out.engine, a, b)

	return out, nil
}

// validateOperands checks that a and b are both shaped like dst.
func validateOperands[T Scalar](dst Sizable, a, b Engine[T]) error {
	if err := ValidateSameShape(dst, a); err != nil {
		return err
	}

	return ValidateSameShape(dst, b)
}

// productInto writes a·b into dst. Extents are the caller's responsibility.
// dst must not alias a or b.
func productInto[T Scalar](dst MutableEngine[T], a, b Engine[T]) {
	rows, cols := dst.Size()
	inner := a.Columns()
	var i, j, k int
	var acc T
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			acc = 0
			for k = 0; k < inner; k++ {
				acc += a.At(i, k) * b.At(k, j)
			}
			*dst.Ref(i, j) = acc
		}
	}
}
