// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pgeo/matrix"
)

func repeatedRows4(t *testing.T) matrix.Mat4f {
	t.Helper()
	return mat4f(t, [][]float32{
		{1, 2, 3, 1},
		{1, 2, 3, 1},
		{1, 2, 3, 1},
		{1, 2, 3, 1},
	})
}

// TestSubmatrix_Copy materialises a 3×3 window into an owning matrix.
func TestSubmatrix_Copy(t *testing.T) {
	m1 := repeatedRows4(t)
	v := m1.Submatrix(0, 3, 0, 3)
	require.True(t, v.IsValid())
	require.Equal(t, 3, v.Rows())
	require.Equal(t, 3, v.Columns())

	m2, err := matrix.FromEngine[float32, matrix.D3, matrix.D3, matrix.RowMajor](v)
	require.NoError(t, err)
	require.Equal(t, mat3f(t, [][]float32{{1, 2, 3}, {1, 2, 3}, {1, 2, 3}}), m2)

	var m3 matrix.Mat3f
	require.NoError(t, m3.Assign(m1.ConstSubmatrix(0, 3, 0, 3))) // const views are sources too
	require.Equal(t, m2, m3)
}

// TestSubmatrix_WriteThrough assigns through a window and checks the referent.
func TestSubmatrix_WriteThrough(t *testing.T) {
	m1 := repeatedRows4(t)
	err := m1.Submatrix(0, 3, 0, 3).AssignRows([][]float32{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	require.NoError(t, err)

	want := mat4f(t, [][]float32{
		{1, 2, 3, 1},
		{4, 5, 6, 1},
		{7, 8, 9, 1},
		{1, 2, 3, 1},
	})
	require.Equal(t, want, m1)

	v := m1.Submatrix(1, 2, 1, 3) // rows 1..2, columns 1..3
	v.Set(0, 0, 100)
	*v.Ref(1, 2) = -7
	require.Equal(t, float32(100), m1.At(1, 1))
	require.Equal(t, float32(-7), m1.At(2, 3))
	require.Equal(t, float32(100), v.At(0, 0)) // a second read sees the write
}

// TestSubmatrix_AssignMismatchLeavesReferent checks the no-partial-write rule.
func TestSubmatrix_AssignMismatchLeavesReferent(t *testing.T) {
	m1 := repeatedRows4(t)
	before := m1
	src := mat2f(t, [][]float32{{9, 9}, {9, 9}})

	err := m1.Submatrix(0, 3, 0, 3).Assign(&src)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Equal(t, before, m1)

	err = m1.Submatrix(0, 2, 0, 2).AssignRows([][]float32{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)
	require.Equal(t, before, m1)
}

// TestTranspose_SizeAndCopy covers the 3×2 → 2×3 scenario.
func TestTranspose_SizeAndCopy(t *testing.T) {
	m32 := mustRows[float32, matrix.D3, matrix.D2, matrix.RowMajor](t, [][]float32{
		{1, 2},
		{3, 4},
		{5, 6},
	})
	require.Equal(t, 3, m32.Rows())
	require.Equal(t, 2, m32.Columns())

	tv := m32.Transpose()
	require.Equal(t, 2, tv.Rows())
	require.Equal(t, 3, tv.Columns())

	m23, err := matrix.FromEngine[float32, matrix.D2, matrix.D3, matrix.RowMajor](tv)
	require.NoError(t, err)
	want := mustRows[float32, matrix.D2, matrix.D3, matrix.RowMajor](t, [][]float32{
		{1, 3, 5},
		{2, 4, 6},
	})
	require.Equal(t, want, m23)
	require.Equal(t, want, matrix.Transposed(m32)) // owning transpose agrees
}

// TestTranspose_WriteThrough writes via a transposed view.
func TestTranspose_WriteThrough(t *testing.T) {
	var m matrix.Matrix[float32, matrix.D3, matrix.D2, matrix.ColumnMajor]
	fillSequential[float32](&m)

	tv := m.Transpose()
	tv.Set(0, 2, 50)
	require.Equal(t, float32(50), m.At(2, 0))
	require.Equal(t, m.At(1, 1), tv.At(1, 1))
}

// TestTranspose_Twice verifies that a transpose of a transpose equals the original.
func TestTranspose_Twice(t *testing.T) {
	var m matrix.Matrix[int32, matrix.D2, matrix.D4, matrix.RowMajor]
	fillSequential[int32](&m)

	tt := matrix.TransposeOf[int32](m.Transpose())
	require.Equal(t, 2, tt.Rows())
	require.Equal(t, 4, tt.Columns())
	require.True(t, tt.Equal(&m))
	require.True(t, m.Equal(tt))

	ct := matrix.ConstTransposeOf[int32](m.ConstTranspose())
	require.True(t, ct.Equal(&m))
}

// TestViews_Chain builds a window over a transpose and writes through both.
func TestViews_Chain(t *testing.T) {
	var m matrix.Mat3f
	fillSequential[float32](&m)

	v := matrix.SubmatrixOf[float32](m.Transpose(), 0, 2, 1, 2)
	require.Equal(t, 2, v.Rows())
	require.Equal(t, 2, v.Columns())
	require.Equal(t, m.At(1, 0), v.At(0, 0)) // (0,0) → transpose (0,1) → m (1,0)
	require.Equal(t, m.At(2, 1), v.At(1, 1))

	v.Set(1, 0, 99) // → transpose (1,1) → m (1,1)
	require.Equal(t, float32(99), m.At(1, 1))

	cv := matrix.ConstSubmatrixOf[float32](v, 1, 1, 0, 2)
	require.Equal(t, 1, cv.Rows())
	require.Equal(t, float32(99), cv.At(0, 0))
}

// TestView_ZeroValueIsInvalid checks the unbound state.
func TestView_ZeroValueIsInvalid(t *testing.T) {
	var v matrix.View[float32, matrix.SubmatrixEngine[float32, *matrix.Storage[float32, matrix.D2, matrix.D2, matrix.RowMajor]]]
	require.False(t, v.IsValid())

	var cv matrix.ConstView[float32, matrix.ConstTransposeEngine[float32, *matrix.Storage[float32, matrix.D2, matrix.D2, matrix.RowMajor]]]
	require.False(t, cv.IsValid())

	src := mat2f(t, [][]float32{{1, 2}, {3, 4}})
	require.ErrorIs(t, v.Assign(&src), matrix.ErrInvalidView)
	require.ErrorIs(t, v.AssignRows([][]float32{{1}}), matrix.ErrInvalidView)

	m := src
	require.True(t, m.Submatrix(0, 1, 0, 1).IsValid())
	require.True(t, m.ConstTranspose().IsValid())
}

// TestTransposeEngine_SwapExchangesReferents checks that Swap rebinds views
// without touching the underlying matrices.
func TestTransposeEngine_SwapExchangesReferents(t *testing.T) {
	a := mat2f(t, [][]float32{{1, 2}, {3, 4}})
	b := mat2f(t, [][]float32{{5, 6}, {7, 8}})
	a0, b0 := a, b

	ta := matrix.NewTransposeEngine[float32](a.Engine())
	tb := matrix.NewTransposeEngine[float32](b.Engine())
	ta.Swap(&tb)

	require.Equal(t, float32(7), ta.At(0, 1)) // now reads b transposed
	require.Equal(t, float32(3), tb.At(0, 1)) // now reads a transposed
	require.Equal(t, a0, a)
	require.Equal(t, b0, b)

	ca := matrix.NewConstTransposeEngine[float32](a.Engine())
	cb := matrix.NewConstTransposeEngine[float32](b.Engine())
	ca.Swap(&cb)
	require.Equal(t, float32(6), ca.At(1, 0))
}

// TestSubmatrixEngine_Swap exchanges both referent and window.
func TestSubmatrixEngine_Swap(t *testing.T) {
	var a, b matrix.Mat4f
	fillSequential[float32](&a)
	fillSequential[float32](&b)

	va := matrix.NewSubmatrixEngine[float32](a.Engine(), 1, 2, 1, 2)
	vb := matrix.NewSubmatrixEngine[float32](b.Engine(), 0, 3, 0, 1)
	va.Swap(&vb)
	require.Equal(t, 3, va.Rows())
	require.Equal(t, 1, va.Columns())
	require.Equal(t, float32(20), va.At(2, 0))
	require.Equal(t, float32(11), vb.At(0, 0))

	ca := matrix.NewConstSubmatrixEngine[float32](a.Engine(), 0, 1, 0, 1)
	cb := matrix.NewConstSubmatrixEngine[float32](b.Engine(), 2, 1, 2, 1)
	ca.Swap(&cb)
	require.Equal(t, float32(22), ca.At(0, 0))
}

// TestView_String renders through the shared formatter.
func TestView_String(t *testing.T) {
	m := mat2f(t, [][]float32{{1, 2.5}, {3, 4}})
	require.Equal(t, "[1, 3]\n[2.5, 4]\n", m.Transpose().String())
	require.Equal(t, "[4]\n", m.ConstSubmatrix(1, 1, 1, 1).String())
}
