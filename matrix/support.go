// SPDX-License-Identifier: MIT
// Package matrix: engine-generic assignment and comparison.
//
// These helpers are written once against the capability interfaces and are
// used by every façade and view. Assignment validates the complete source
// before the first write, so a failed assignment leaves the destination as it
// was.

package matrix

import (
	"fmt"
	"math"
	"strings"
)

const (
	opAssignFrom = "AssignFrom"
	opAssignRows = "AssignRows"
	opAssignFlat = "AssignFlat"
)

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// AssignFrom copies src into dst element by element, converting U to T.
// Implementation:
//   - Stage 1: validate that both engines are non-nil and have the same extents.
//   - Stage 2: read every src(i, j) into a local buffer, converted to T.
//   - Stage 3: write the buffer into dst.
//
// Errors:
//   - ErrNilEngine, ErrDimensionMismatch (wrapped with "AssignFrom").
//
// Notes:
//   - dst and src may alias (m.Assign(m.Transpose()), overlapping windows):
//     every read happens before the first write.
func AssignFrom[T, U Scalar](dst MutableEngine[T], src Engine[U]) error {
	if err := ValidateSameShape(dst, src); err != nil {
		return matrixErrorf(opAssignFrom, err)
	}
	var buf [maxElements]T
	rows, cols := dst.Size()
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			buf[i*cols+j] = T(src.At(i, j))
		}
	}
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			*dst.Ref(i, j) = buf[i*cols+j]
		}
	}

	return nil
}

// AssignRows copies a nested row list into dst, converting U to T.
// The list must be rectangular (else ErrRaggedRows) and match dst's extents
// (else ErrDimensionMismatch). Nothing is written unless both checks pass.
func AssignRows[T, U Scalar](dst MutableEngine[T], rows [][]U) error {
	r, c, err := ValidateRows(rows)
	if err != nil {
		return matrixErrorf(opAssignRows, err)
	}
	if err = ValidateShape(dst, r, c); err != nil {
		return matrixErrorf(opAssignRows, err)
	}
	for i, row := range rows {
		for j, v := range row {
			*dst.Ref(i, j) = T(v)
		}
	}

	return nil
}

// AssignFlat copies a flat list into a vector-shaped engine through its
// one-index access. len(src) must equal rows·cols.
func AssignFlat[T, U Scalar](dst VectorEngine[T], src []U) error {
	if err := ValidateFlatLen(dst, len(src)); err != nil {
		return matrixErrorf(opAssignFlat, err)
	}
	for i, v := range src {
		*dst.RefIndex(i) = T(v)
	}

	return nil
}

// EnginesEqual reports whether a and b have the same extents and exactly
// equal elements. It stops at the first difference.
func EnginesEqual[T Scalar](a, b Engine[T]) bool {
	if ValidateSameShape(a, b) != nil {
		return false
	}
	rows, cols := a.Size()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if a.At(i, j) != b.At(i, j) {
				return false
			}
		}
	}

	return true
}

// ApproxEqual reports whether a and b have the same extents and every pair
// satisfies |a-b| <= eps + rtol*|b|, computed in float64.
// NaN never compares equal. Defaults: DefaultEpsilon, DefaultRelativeTolerance.
func ApproxEqual[T Scalar](a, b Engine[T], opts ...Option) bool {
	if ValidateSameShape(a, b) != nil {
		return false
	}
	o := gatherOptions(opts...)
	rows, cols := a.Size()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			x, y := float64(a.At(i, j)), float64(b.At(i, j))
			if !(math.Abs(x-y) <= o.eps+o.relTol*math.Abs(y)) {
				return false
			}
		}
	}

	return true
}

// formatEngine renders e one row per line: "[1, 2]\n[3, 4]\n".
func formatEngine[T Scalar](e Engine[T]) string {
	var b strings.Builder
	var i, j int
	rows, cols := e.Size()
	for i = 0; i < rows; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < cols; j++ {
			fmt.Fprintf(&b, "%v", e.At(i, j))
			if j+1 < cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
