// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures for engines, views and kernels.
//   • Keep random data integral and small so that integer and float results
//     can be compared exactly.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pgeo/matrix"
)

// mustRows builds a matrix from nested rows or fails the test.
// Implementation:
//   - Stage 1: call matrix.FromRows with explicit shape and layout.
//   - Stage 2: require.NoError aborts the test early on failure.
func mustRows[T matrix.Scalar, R, C matrix.Dim, L matrix.Layout](tb testing.TB, rows [][]T) matrix.Matrix[T, R, C, L] {
	tb.Helper()
	m, err := matrix.FromRows[T, R, C, L](rows)
	require.NoError(tb, err)

	return m
}

func mat2f(tb testing.TB, rows [][]float32) matrix.Mat2f {
	tb.Helper()
	return mustRows[float32, matrix.D2, matrix.D2, matrix.RowMajor](tb, rows)
}

func mat3f(tb testing.TB, rows [][]float32) matrix.Mat3f {
	tb.Helper()
	return mustRows[float32, matrix.D3, matrix.D3, matrix.RowMajor](tb, rows)
}

func mat4f(tb testing.TB, rows [][]float32) matrix.Mat4f {
	tb.Helper()
	return mustRows[float32, matrix.D4, matrix.D4, matrix.RowMajor](tb, rows)
}

func mat4d(tb testing.TB, rows [][]float64) matrix.Mat4d {
	tb.Helper()
	return mustRows[float64, matrix.D4, matrix.D4, matrix.RowMajor](tb, rows)
}

// mustVec builds a vector of exactly N values or fails the test.
func mustVec[T matrix.Scalar, N matrix.Dim](tb testing.TB, vals ...T) matrix.Vector[T, N] {
	tb.Helper()
	v, err := matrix.VectorOf[T, N](vals...)
	require.NoError(tb, err)

	return v
}

// randomMatrix fills an R×C matrix with integers drawn from [lo, hi].
// Determinism: the caller owns the seeded source.
func randomMatrix[T matrix.Scalar, R, C matrix.Dim, L matrix.Layout](rng *rand.Rand, lo, hi int) matrix.Matrix[T, R, C, L] {
	var m matrix.Matrix[T, R, C, L]
	rows, cols := m.Size()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.Set(i, j, T(lo+rng.Intn(hi-lo+1)))
		}
	}

	return m
}

// fillSequential writes 10*i + j at (i, j) through the mutable capability,
// so it works on owning matrices and views alike.
func fillSequential[T matrix.Scalar](m matrix.MutableEngine[T]) {
	rows, cols := m.Size()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			*m.Ref(i, j) = T(10*i + j)
		}
	}
}
