// SPDX-License-Identifier: MIT
// Package matrix: interop with gonum.org/v1/gonum/mat.
//
// Fixed-size engines stay the source of truth; gonum is reached either through
// a zero-copy adapter (AsGonum) or through an explicit copy (ToDense,
// FromGonum). Elements cross the boundary as float64.

package matrix

import "gonum.org/v1/gonum/mat"

const opFromGonum = "FromGonum"

// GonumMatrix adapts an Engine to gonum's mat.Matrix without copying.
// Reads go straight to the engine, so later writes to it are observed.
type GonumMatrix[S Scalar] struct {
	e Engine[S]
}

// AsGonum wraps e for use with gonum routines (mat.Det, mat.Dense.Inverse, ...).
func AsGonum[S Scalar](e Engine[S]) GonumMatrix[S] { return GonumMatrix[S]{e: e} }

// Dims implements mat.Matrix.
func (g GonumMatrix[S]) Dims() (r, c int) { return g.e.Size() }

// At implements mat.Matrix.
func (g GonumMatrix[S]) At(i, j int) float64 { return float64(g.e.At(i, j)) }

// T implements mat.Matrix.
func (g GonumMatrix[S]) T() mat.Matrix { return mat.Transpose{Matrix: g} }

var _ mat.Matrix = GonumMatrix[float32]{}

// ToDense copies e into a freshly allocated *mat.Dense.
func ToDense[S Scalar](e Engine[S]) *mat.Dense {
	return mat.DenseCopyOf(AsGonum(e))
}

// FromGonum copies an R×C gonum matrix into a Matrix, converting to T.
// Errors: ErrDimensionMismatch (wrapped with "FromGonum").
func FromGonum[T Scalar, R, C Dim, L Layout](src mat.Matrix) (Matrix[T, R, C, L], error) {
	var m Matrix[T, R, C, L]
	r, c := src.Dims()
	if err := ValidateShape(&m, r, c); err != nil {
		return m, matrixErrorf(opFromGonum, err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			*m.Ref(i, j) = T(src.At(i, j))
		}
	}

	return m, nil
}
