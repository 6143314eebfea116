// SPDX-License-Identifier: MIT
// Package matrix: determinant, inverse, inner product and trace.
//
// All kernels are exact-arithmetic closed forms except Inverse, which runs
// Gauss-Jordan elimination with full pivoting on a private copy.

package matrix

import "math"

const (
	opDeterminant  = "Determinant"
	opInverse      = "Inverse"
	opInnerProduct = "InnerProduct"
)

// Determinant returns det(m) for N ≤ 4.
// Implementation:
//   - N=1: the single element.
//   - N=2: ad - bc.
//   - N=3: cofactor expansion along the first row.
//   - N=4: cofactor expansion along the first row over 3×3 minors.
//
// Determinism:
//   - The evaluation order is fixed; integer inputs give exact results.
func Determinant[T Scalar, N Dim, L Layout](m Matrix[T, N, N, L]) T {
	return determinant[T](&m.engine)
}

// Determinant2 is Determinant specialised to 2×2.
func Determinant2[T Scalar, L Layout](m Matrix[T, D2, D2, L]) T {
	return det2(m.At(0, 0), m.At(0, 1), m.At(1, 0), m.At(1, 1))
}

// Determinant3 is Determinant specialised to 3×3.
func Determinant3[T Scalar, L Layout](m Matrix[T, D3, D3, L]) T {
	return minor3[T](&m.engine, [3]int{0, 1, 2}, [3]int{0, 1, 2})
}

// DeterminantOf returns the determinant of any square engine up to 4×4,
// views included.
// Errors: ErrNilEngine, ErrDimensionMismatch (non-square or larger than 4×4).
func DeterminantOf[T Scalar](e Engine[T]) (T, error) {
	if err := ValidateNotNil(e); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	if r, c := e.Size(); r != c || r < 1 || r > MaxExtent {
		return 0, matrixErrorf(opDeterminant, ErrDimensionMismatch)
	}

	return determinant[T](e), nil
}

// DeterminantOfVectors3 returns the determinant of the 3×3 matrix whose rows
// are v1, v2, v3 (equal to the one with those columns).
func DeterminantOfVectors3[T Scalar](v1, v2, v3 Vector[T, D3]) T {
	var m Matrix[T, D3, D3, RowMajor]
	for j := 0; j < 3; j++ {
		*m.Ref(0, j) = v1.AtIndex(j)
		*m.Ref(1, j) = v2.AtIndex(j)
		*m.Ref(2, j) = v3.AtIndex(j)
	}

	return determinant[T](&m.engine)
}

// DeterminantOfVectors4 returns the determinant of the 4×4 matrix whose rows
// are v1..v4: a + b + c + d with
//
//	a =  v1(0)·det(v2,v3,v4 restricted to 1,2,3)
//	b = -v1(1)·det(... 0,2,3)
//	c =  v1(2)·det(... 0,1,3)
//	d = -v1(3)·det(... 0,1,2)
func DeterminantOfVectors4[T Scalar](v1, v2, v3, v4 Vector[T, D4]) T {
	var m Matrix[T, D4, D4, RowMajor]
	for j := 0; j < 4; j++ {
		*m.Ref(0, j) = v1.AtIndex(j)
		*m.Ref(1, j) = v2.AtIndex(j)
		*m.Ref(2, j) = v3.AtIndex(j)
		*m.Ref(3, j) = v4.AtIndex(j)
	}

	return determinant[T](&m.engine)
}

// determinant dispatches on the runtime extent; e must be square, 1..4.
func determinant[T Scalar](e Engine[T]) T {
	switch e.Rows() {
	case 1:
		return e.At(0, 0)
	case 2:
		return det2(e.At(0, 0), e.At(0, 1), e.At(1, 0), e.At(1, 1))
	case 3:
		return minor3(e, [3]int{0, 1, 2}, [3]int{0, 1, 2})
	}

	rest := [3]int{1, 2, 3}
	a := e.At(0, 0) * minor3(e, rest, [3]int{1, 2, 3})
	b := -e.At(0, 1) * minor3(e, rest, [3]int{0, 2, 3})
	c := e.At(0, 2) * minor3(e, rest, [3]int{0, 1, 3})
	d := -e.At(0, 3) * minor3(e, rest, [3]int{0, 1, 2})

	return a + b + c + d
}

func det2[T Scalar](a, b, c, d T) T { return a*d - b*c }

// minor3 is the determinant of the 3×3 submatrix of e picked by rows × cols.
func minor3[T Scalar](e Engine[T], rows, cols [3]int) T {
	at := func(r, c int) T { return e.At(rows[r], cols[c]) }

	return at(0, 0)*det2(at(1, 1), at(1, 2), at(2, 1), at(2, 2)) -
		at(0, 1)*det2(at(1, 0), at(1, 2), at(2, 0), at(2, 2)) +
		at(0, 2)*det2(at(1, 0), at(1, 1), at(2, 0), at(2, 1))
}

// Inverse returns m⁻¹ for a square floating-point matrix.
// MAIN DESCRIPTION:
//   - Gauss-Jordan elimination with full pivoting, performed in place on a
//     private copy of m. The copy ends up holding the inverse.
//
// Implementation:
//   - Stage 0: 1×1 fast path: the reciprocal of the single element.
//   - Stage 1: for each step pick, among rows and columns not yet pivoted,
//     the element of largest magnitude.
//   - Stage 2: swap its row onto the diagonal so the pivot sits at (c, c);
//     record (row, column) of the pivot for this step.
//   - Stage 3: scale the pivot row by 1/pivot (the pivot cell itself becomes
//     1/pivot) and eliminate column c from every other row.
//   - Stage 4: undo the recorded row interchanges as column interchanges,
//     last step first.
//
// Errors:
//   - ErrSingular (wrapped with "Inverse") when the best remaining pivot has
//     magnitude <= the pivot tolerance (DefaultPivotTolerance = 0, so only an
//     exact zero by default). NaN candidates are never chosen.
//
// Complexity:
//   - Time O(N³), no allocation.
//
// Notes:
//   - m is passed by value and never modified.
func Inverse[T Float, N Dim, L Layout](m Matrix[T, N, N, L], opts ...Option) (Matrix[T, N, N, L], error) {
	o := gatherOptions(opts...)
	n := extentOf[N]()
	a := m

	// Stage 0
	if n == 1 {
		p := a.At(0, 0)
		if !(math.Abs(float64(p)) > o.pivotTol) {
			return Matrix[T, N, N, L]{}, matrixErrorf(opInverse, ErrSingular)
		}
		*a.Ref(0, 0) = 1 / p

		return a, nil
	}

	var done [MaxExtent]bool
	var pivRow, pivCol [MaxExtent]int
	var i, j, step int
	for step = 0; step < n; step++ {
		// Stage 1
		pr, pc, best := -1, -1, -1.0
		for i = 0; i < n; i++ {
			if done[i] {
				continue
			}
			for j = 0; j < n; j++ {
				if done[j] {
					continue
				}
				if mag := math.Abs(float64(a.At(i, j))); mag > best {
					best, pr, pc = mag, i, j
				}
			}
		}
		if pr < 0 || best <= o.pivotTol {
			return Matrix[T, N, N, L]{}, matrixErrorf(opInverse, ErrSingular)
		}

		// Stage 2
		done[pc] = true
		a.SwapRows(pr, pc)
		pivRow[step], pivCol[step] = pr, pc

		// Stage 3
		inv := 1 / a.At(pc, pc)
		*a.Ref(pc, pc) = 1
		for j = 0; j < n; j++ {
			*a.Ref(pc, j) *= inv
		}
		for i = 0; i < n; i++ {
			if i == pc {
				continue
			}
			f := a.At(i, pc)
			*a.Ref(i, pc) = 0
			for j = 0; j < n; j++ {
				*a.Ref(i, j) -= a.At(pc, j) * f
			}
		}
	}

	// Stage 4
	for step = n - 1; step >= 0; step-- {
		a.SwapColumns(pivRow[step], pivCol[step]) // no-op when equal
	}

	return a, nil
}

// InnerProduct returns the Frobenius inner product Σ a(i,j)·b(i,j).
// Layouts may differ.
func InnerProduct[T Scalar, R, C Dim, L1, L2 Layout](a Matrix[T, R, C, L1], b Matrix[T, R, C, L2]) T {
	return innerProduct[T](&a.engine, &b.engine)
}

// InnerProductOf is InnerProduct for any two engines of equal extents.
func InnerProductOf[T Scalar](a, b Engine[T]) (T, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return 0, matrixErrorf(opInnerProduct, err)
	}

	return innerProduct(a, b), nil
}

func innerProduct[T Scalar](a, b Engine[T]) T {
	var s T
	rows, cols := a.Size()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			s += a.At(i, j) * b.At(i, j)
		}
	}

	return s
}

// Trace returns Σ m(i,i).
func Trace[T Scalar, N Dim, L Layout](m Matrix[T, N, N, L]) T {
	var s T
	for i := 0; i < extentOf[N](); i++ {
		s += m.At(i, i)
	}

	return s
}
