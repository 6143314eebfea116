// SPDX-License-Identifier: MIT
// Package matrix: Storage, the owning fixed-size engine.
//
// Storage keeps its elements in a fixed array sized for the largest supported
// shape, so a Storage is a plain value: assignment copies, the zero value is
// the zero matrix, and no allocation ever happens. Only the first R·C cells
// are used; the rest stay zero, which keeps == and reflect.DeepEqual exact.

package matrix

// Storage is the owning engine of an R×C matrix of T laid out by L.
// Mutating methods use pointer receivers; *Storage implements MutableEngine.
type Storage[T Scalar, R, C Dim, L Layout] struct {
	elems [maxElements]T
}

// Rows returns R.
func (s *Storage[T, R, C, L]) Rows() int { return extentOf[R]() }

// Columns returns C.
func (s *Storage[T, R, C, L]) Columns() int { return extentOf[C]() }

// Size returns (R, C).
func (s *Storage[T, R, C, L]) Size() (rows, cols int) { return extentOf[R](), extentOf[C]() }

// offset maps (i, j) to a cell index through the layout's strides.
func (s *Storage[T, R, C, L]) offset(i, j int) int {
	var l L
	rs, cs := l.strides(extentOf[R](), extentOf[C]())

	return i*rs + j*cs
}

// At returns element (i, j). Indices are a precondition, not checked.
func (s *Storage[T, R, C, L]) At(i, j int) T { return s.elems[s.offset(i, j)] }

// Ref returns a pointer to element (i, j).
func (s *Storage[T, R, C, L]) Ref(i, j int) *T { return &s.elems[s.offset(i, j)] }

// Swap exchanges the full contents of s and o.
func (s *Storage[T, R, C, L]) Swap(o *Storage[T, R, C, L]) {
	s.elems, o.elems = o.elems, s.elems
}

// SwapRows exchanges rows i1 and i2. Equal indices are a no-op.
func (s *Storage[T, R, C, L]) SwapRows(i1, i2 int) {
	if i1 == i2 {
		return
	}
	for j := 0; j < extentOf[C](); j++ {
		a, b := s.offset(i1, j), s.offset(i2, j)
		s.elems[a], s.elems[b] = s.elems[b], s.elems[a]
	}
}

// SwapColumns exchanges columns j1 and j2. Equal indices are a no-op.
func (s *Storage[T, R, C, L]) SwapColumns(j1, j2 int) {
	if j1 == j2 {
		return
	}
	for i := 0; i < extentOf[R](); i++ {
		a, b := s.offset(i, j1), s.offset(i, j2)
		s.elems[a], s.elems[b] = s.elems[b], s.elems[a]
	}
}

// Span returns a strided descriptor aliasing the used cells of s.
// Writes through Span.Data are visible in s and vice versa.
func (s *Storage[T, R, C, L]) Span() Span[T] {
	var l L
	rows, cols := s.Size()
	rs, cs := l.strides(rows, cols)

	return Span[T]{
		Data:      s.elems[:rows*cols],
		Rows:      rows,
		Cols:      cols,
		RowStride: rs,
		ColStride: cs,
	}
}

// Span is a raw strided two-dimensional window over a flat slice:
// element (i, j) lives at Data[i*RowStride + j*ColStride].
type Span[T Scalar] struct {
	Data      []T
	Rows      int
	Cols      int
	RowStride int
	ColStride int
}

// At returns element (i, j) of the span.
func (sp Span[T]) At(i, j int) T { return sp.Data[i*sp.RowStride+j*sp.ColStride] }

// Ref returns a pointer to element (i, j) of the span.
func (sp Span[T]) Ref(i, j int) *T { return &sp.Data[i*sp.RowStride+j*sp.ColStride] }

// Transpose returns the same data with the axes exchanged. No copy is made.
func (sp Span[T]) Transpose() Span[T] {
	return Span[T]{
		Data:      sp.Data,
		Rows:      sp.Cols,
		Cols:      sp.Rows,
		RowStride: sp.ColStride,
		ColStride: sp.RowStride,
	}
}
