// SPDX-License-Identifier: MIT
// Package matrix: Matrix, the owning fixed-size façade.
//
// Matrix wraps a Storage by value and adds the user-facing surface:
// construction from rows or other engines, whole-matrix assignment, views,
// equality and formatting. Arithmetic lives in impl_arithmetic.go.

package matrix

const (
	opFromRows   = "FromRows"
	opFromEngine = "FromEngine"
	opAssign     = "Assign"
)

// Matrix is an R×C matrix of T stored with layout L.
// The zero value is the zero matrix. Assignment copies all elements.
//
// Accessors use pointer receivers so that views can reference the storage;
// *Matrix implements MutableEngine. Arithmetic methods and String use value
// receivers and always return fresh values. A Matrix value therefore does not
// satisfy Engine: pass &m wherever an Engine or MutableEngine is expected.
type Matrix[T Scalar, R, C Dim, L Layout] struct {
	engine Storage[T, R, C, L]
}

// FromRows builds a Matrix from a nested row list, converting U to T.
// Errors: ErrRaggedRows, ErrDimensionMismatch (wrapped with "FromRows").
//
//	m, err := matrix.FromRows[float32, matrix.D2, matrix.D2, matrix.RowMajor]([][]float64{{1, 2}, {3, 4}})
func FromRows[T Scalar, R, C Dim, L Layout, U Scalar](rows [][]U) (Matrix[T, R, C, L], error) {
	var m Matrix[T, R, C, L]
	if err := AssignRows[T, U](&m.engine, rows); err != nil {
		return Matrix[T, R, C, L]{}, matrixErrorf(opFromRows, err)
	}

	return m, nil
}

// FromEngine copies any engine of matching extents, converting U to T.
// Use it to materialise views into an owning matrix.
func FromEngine[T Scalar, R, C Dim, L Layout, U Scalar](src Engine[U]) (Matrix[T, R, C, L], error) {
	var m Matrix[T, R, C, L]
	if err := AssignFrom[T, U](&m.engine, src); err != nil {
		return Matrix[T, R, C, L]{}, matrixErrorf(opFromEngine, err)
	}

	return m, nil
}

// Convert casts every element of src to T. Extents and layout are fixed by
// the type, so it cannot fail.
//
//	md := matrix.Convert[float64](mf)
func Convert[T, U Scalar, R, C Dim, L Layout](src Matrix[U, R, C, L]) Matrix[T, R, C, L] {
	var m Matrix[T, R, C, L]
	rows, cols := src.Size()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			*m.Ref(i, j) = T(src.At(i, j))
		}
	}

	return m
}

// ToLayout copies src into layout L2. Element (i, j) is preserved.
//
//	cm := matrix.ToLayout[matrix.ColumnMajor](rm)
func ToLayout[L2 Layout, T Scalar, R, C Dim, L1 Layout](src Matrix[T, R, C, L1]) Matrix[T, R, C, L2] {
	var m Matrix[T, R, C, L2]
	rows, cols := src.Size()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			*m.Ref(i, j) = src.At(i, j)
		}
	}

	return m
}

// Identity returns the N×N identity matrix.
func Identity[T Scalar, N Dim, L Layout]() Matrix[T, N, N, L] {
	var m Matrix[T, N, N, L]
	for i := 0; i < extentOf[N](); i++ {
		*m.Ref(i, i) = 1
	}

	return m
}

func (m *Matrix[T, R, C, L]) Rows() int              { return m.engine.Rows() }
func (m *Matrix[T, R, C, L]) Columns() int           { return m.engine.Columns() }
func (m *Matrix[T, R, C, L]) Size() (rows, cols int) { return m.engine.Size() }

// At returns element (i, j). Indices are a precondition, not checked.
func (m *Matrix[T, R, C, L]) At(i, j int) T { return m.engine.At(i, j) }

// Ref returns a writable reference to element (i, j).
func (m *Matrix[T, R, C, L]) Ref(i, j int) *T { return m.engine.Ref(i, j) }

// Set writes v at (i, j).
func (m *Matrix[T, R, C, L]) Set(i, j int, v T) { *m.engine.Ref(i, j) = v }

// Engine exposes the owning engine.
func (m *Matrix[T, R, C, L]) Engine() *Storage[T, R, C, L] { return &m.engine }

// Span returns the strided descriptor of the storage; see Storage.Span.
func (m *Matrix[T, R, C, L]) Span() Span[T] { return m.engine.Span() }

func (m *Matrix[T, R, C, L]) Swap(o *Matrix[T, R, C, L]) { m.engine.Swap(&o.engine) }
func (m *Matrix[T, R, C, L]) SwapRows(i1, i2 int)        { m.engine.SwapRows(i1, i2) }
func (m *Matrix[T, R, C, L]) SwapColumns(j1, j2 int)     { m.engine.SwapColumns(j1, j2) }

// Assign copies src into m. The shapes must match at runtime; on error m is
// unchanged. src may be a view of m itself: m.Assign(m.Transpose()) transposes
// a square m in place.
func (m *Matrix[T, R, C, L]) Assign(src Engine[T]) error {
	if err := AssignFrom[T, T](&m.engine, src); err != nil {
		return matrixErrorf(opAssign, err)
	}

	return nil
}

// AssignRows replaces the contents of m with a nested row list.
// Errors: ErrRaggedRows, ErrDimensionMismatch. On error m is unchanged.
func (m *Matrix[T, R, C, L]) AssignRows(rows [][]T) error {
	return AssignRows[T, T](&m.engine, rows)
}

// Submatrix returns a writable view of the window
// [rowStart, rowStart+rowExtent) × [colStart, colStart+colExtent).
// The window must fit inside m, and the view must not outlive m.
func (m *Matrix[T, R, C, L]) Submatrix(rowStart, rowExtent, colStart, colExtent int) View[T, SubmatrixEngine[T, *Storage[T, R, C, L]]] {
	return View[T, SubmatrixEngine[T, *Storage[T, R, C, L]]]{
		engine: NewSubmatrixEngine[T](&m.engine, rowStart, rowExtent, colStart, colExtent),
	}
}

// ConstSubmatrix is the read-only flavour of Submatrix.
func (m *Matrix[T, R, C, L]) ConstSubmatrix(rowStart, rowExtent, colStart, colExtent int) ConstView[T, ConstSubmatrixEngine[T, *Storage[T, R, C, L]]] {
	return ConstView[T, ConstSubmatrixEngine[T, *Storage[T, R, C, L]]]{
		engine: NewConstSubmatrixEngine[T](&m.engine, rowStart, rowExtent, colStart, colExtent),
	}
}

// Transpose returns a writable C×R view of m. Writes land in m.
func (m *Matrix[T, R, C, L]) Transpose() View[T, TransposeEngine[T, *Storage[T, R, C, L]]] {
	return View[T, TransposeEngine[T, *Storage[T, R, C, L]]]{
		engine: NewTransposeEngine[T](&m.engine),
	}
}

// ConstTranspose returns a read-only C×R view of m.
func (m *Matrix[T, R, C, L]) ConstTranspose() ConstView[T, ConstTransposeEngine[T, *Storage[T, R, C, L]]] {
	return ConstView[T, ConstTransposeEngine[T, *Storage[T, R, C, L]]]{
		engine: NewConstTransposeEngine[T](&m.engine),
	}
}

// Equal reports exact element-wise equality with any engine of the same shape.
func (m *Matrix[T, R, C, L]) Equal(o Engine[T]) bool { return EnginesEqual[T](&m.engine, o) }

// String renders the matrix one row per line, e.g. "[1, 2]\n[3, 4]\n".
func (m Matrix[T, R, C, L]) String() string { return formatEngine[T](&m.engine) }
