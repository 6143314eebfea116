// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pgeo/matrix"
)

// TestStorage_ZeroValue verifies extents and zero-initialisation of a fresh engine.
func TestStorage_ZeroValue(t *testing.T) {
	var s matrix.Storage[float32, matrix.D3, matrix.D2, matrix.RowMajor]
	r, c := s.Size()
	require.Equal(t, 3, r)             // rows from the type
	require.Equal(t, 2, c)             // columns from the type
	require.Equal(t, 3, s.Rows())      // Rows agrees with Size
	require.Equal(t, 2, s.Columns())   // Columns agrees with Size
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.Zero(t, s.At(i, j)) // zero value is the zero matrix
		}
	}
}

// TestStorage_FixedFootprint checks that a storage holds its elements inline.
func TestStorage_FixedFootprint(t *testing.T) {
	var s matrix.Storage[float32, matrix.D2, matrix.D2, matrix.RowMajor]
	require.Equal(t, uintptr(matrix.MaxExtent*matrix.MaxExtent*4), unsafe.Sizeof(s))
}

// TestStorage_LayoutIndependence writes the same logical matrix in both
// layouts and checks element access and raw spans.
func TestStorage_LayoutIndependence(t *testing.T) {
	var rm matrix.Storage[float32, matrix.D3, matrix.D2, matrix.RowMajor]
	var cm matrix.Storage[float32, matrix.D3, matrix.D2, matrix.ColumnMajor]
	fillSequential[float32](&rm)
	fillSequential[float32](&cm)

	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			require.Equal(t, rm.At(i, j), cm.At(i, j)) // element semantics never depend on layout
		}
	}
	require.True(t, matrix.EnginesEqual[float32](&rm, &cm))

	rs := rm.Span()
	require.Equal(t, 3, rs.Rows)
	require.Equal(t, 2, rs.Cols)
	require.Equal(t, 2, rs.RowStride) // row-major: next row is C cells away
	require.Equal(t, 1, rs.ColStride)
	require.Equal(t, []float32{0, 1, 10, 11, 20, 21}, rs.Data)

	cs := cm.Span()
	require.Equal(t, 1, cs.RowStride) // column-major: next column is R cells away
	require.Equal(t, 3, cs.ColStride)
	require.Equal(t, []float32{0, 10, 20, 1, 11, 21}, cs.Data)

	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			require.Equal(t, rm.At(i, j), rs.At(i, j))
			require.Equal(t, cm.At(i, j), cs.At(i, j))
			require.Equal(t, rm.At(i, j), rs.Transpose().At(j, i))
		}
	}
}

// TestStorage_SpanAliases ensures writes through a span reach the storage.
func TestStorage_SpanAliases(t *testing.T) {
	var s matrix.Storage[float64, matrix.D3, matrix.D4, matrix.RowMajor]
	sp := s.Span()
	require.Equal(t, 4, sp.RowStride)
	require.Equal(t, 1, sp.ColStride)

	*sp.Ref(2, 3) = 42
	require.Equal(t, 42.0, s.At(2, 3)) // shared cell

	*s.Ref(1, 0) = 7
	require.Equal(t, 7.0, sp.At(1, 0))
}

func checkSwapRowsColumns[L matrix.Layout](t *testing.T) {
	t.Helper()
	var s matrix.Storage[int32, matrix.D3, matrix.D4, L]
	fillSequential[int32](&s)

	s.SwapRows(0, 2)
	require.Equal(t, int32(20), s.At(0, 0))
	require.Equal(t, int32(23), s.At(0, 3))
	require.Equal(t, int32(3), s.At(2, 3))
	require.Equal(t, int32(11), s.At(1, 1)) // untouched row

	s.SwapColumns(1, 3)
	require.Equal(t, int32(23), s.At(0, 1))
	require.Equal(t, int32(21), s.At(0, 3))
	require.Equal(t, int32(13), s.At(1, 1))

	before := s
	s.SwapRows(1, 1)    // no-op
	s.SwapColumns(2, 2) // no-op
	require.Equal(t, before, s)
}

// TestStorage_SwapRowsColumns runs the same script in both layouts.
func TestStorage_SwapRowsColumns(t *testing.T) {
	t.Run("row-major", checkSwapRowsColumns[matrix.RowMajor])
	t.Run("column-major", checkSwapRowsColumns[matrix.ColumnMajor])
}

// TestStorage_Swap exchanges complete contents.
func TestStorage_Swap(t *testing.T) {
	var a, b matrix.Storage[float32, matrix.D2, matrix.D2, matrix.ColumnMajor]
	*a.Ref(0, 1) = 1
	*b.Ref(1, 0) = 2

	a.Swap(&b)
	require.Equal(t, float32(2), a.At(1, 0))
	require.Zero(t, a.At(0, 1))
	require.Equal(t, float32(1), b.At(0, 1))
	require.Zero(t, b.At(1, 0))
}

// TestStorage_ValueSemantics verifies that assignment copies.
func TestStorage_ValueSemantics(t *testing.T) {
	var a matrix.Storage[float32, matrix.D2, matrix.D2, matrix.RowMajor]
	*a.Ref(0, 0) = 3.14
	b := a
	*b.Ref(0, 0) = 100

	require.Equal(t, float32(3.14), a.At(0, 0)) // original unaffected
	require.Equal(t, float32(100), b.At(0, 0))
}
