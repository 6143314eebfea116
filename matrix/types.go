// SPDX-License-Identifier: MIT
// Package matrix: capability interfaces shared by every engine and façade.
//
// An operation that needs a capability takes a parameter constrained by the
// matching interface. Types lacking the method fail to compile at the call site,
// which is how the package keeps read-only views from being written through.

package matrix

import "golang.org/x/exp/constraints"

// Scalar is the set of element types a matrix may hold.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Float narrows Scalar to the types for which division is exact enough to
// support inversion.
type Float interface {
	constraints.Float
}

// Sizable reports the two extents of a matrix-shaped value.
type Sizable interface {
	// Rows returns the number of rows.
	Rows() int
	// Columns returns the number of columns.
	Columns() int
	// Size returns (rows, columns).
	Size() (rows, cols int)
}

// Engine is a matrix engine: a sized value with two-index read access.
// Implementations: *Storage, SubmatrixEngine, ConstSubmatrixEngine,
// TransposeEngine, ConstTransposeEngine, the façades built on top of them.
type Engine[T Scalar] interface {
	Sizable
	// At returns element (i, j). Indices are not checked.
	At(i, j int) T
}

// MutableEngine is an Engine whose two-index access also yields a writable
// reference to the addressed element.
type MutableEngine[T Scalar] interface {
	Engine[T]
	// Ref returns a pointer to element (i, j). Writes through it are visible
	// to every view sharing the same storage.
	Ref(i, j int) *T
}

// VectorEngine is a MutableEngine with one-index access. Only degenerate
// shapes (Vector, CoVector) implement it.
type VectorEngine[T Scalar] interface {
	MutableEngine[T]
	AtIndex(i int) T
	RefIndex(i int) *T
}

// ViewEngine is a read-only engine that can be in the invalid (zero) state.
type ViewEngine[T Scalar] interface {
	Engine[T]
	IsValid() bool
}

// MutableViewEngine is a mutable engine that can be in the invalid (zero) state.
type MutableViewEngine[T Scalar] interface {
	MutableEngine[T]
	IsValid() bool
}

// Compile-time capability table. Const views are asserted as Engine only;
// they have no Ref method.
var (
	_ MutableEngine[float64] = (*Storage[float64, D3, D3, RowMajor])(nil)
	_ MutableEngine[float64] = (*Matrix[float64, D2, D4, ColumnMajor])(nil)
	_ VectorEngine[float32]  = (*Vector[float32, D4])(nil)
	_ VectorEngine[int32]    = (*CoVector[int32, D3])(nil)

	_ MutableViewEngine[float32] = SubmatrixEngine[float32, *Storage[float32, D4, D4, RowMajor]]{}
	_ MutableViewEngine[float32] = TransposeEngine[float32, *Storage[float32, D4, D4, RowMajor]]{}
	_ ViewEngine[float32]        = ConstSubmatrixEngine[float32, *Storage[float32, D4, D4, RowMajor]]{}
	_ ViewEngine[float32]        = ConstTransposeEngine[float32, *Storage[float32, D4, D4, RowMajor]]{}

	_ MutableViewEngine[float64] = View[float64, TransposeEngine[float64, *Storage[float64, D2, D3, RowMajor]]]{}
	_ ViewEngine[float64]        = ConstView[float64, ConstTransposeEngine[float64, *Storage[float64, D2, D3, RowMajor]]]{}
)
