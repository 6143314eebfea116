// SPDX-License-Identifier: MIT
// Package matrix: View and ConstView, façades over non-owning engines.
//
// Views are values holding a reference; copying a view never copies elements.
// They chain through the *Of constructors below: SubmatrixOf(TransposeOf(v), ...)
// is a window of a transpose of v, with every write landing in the storage at
// the bottom of the chain. Chaining is offered as functions rather than
// methods because a method returning View[T, SubmatrixEngine[T, E]] from
// View[T, E] would instantiate without bound.

package matrix

const opViewAssign = "View.Assign"

// View is a writable façade over a view engine E.
type View[T Scalar, E MutableViewEngine[T]] struct {
	engine E
}

// NewView wraps an already bound view engine.
func NewView[T Scalar, E MutableViewEngine[T]](e E) View[T, E] { return View[T, E]{engine: e} }

func (v View[T, E]) IsValid() bool          { return v.engine.IsValid() }
func (v View[T, E]) Rows() int              { return v.engine.Rows() }
func (v View[T, E]) Columns() int           { return v.engine.Columns() }
func (v View[T, E]) Size() (rows, cols int) { return v.engine.Size() }
func (v View[T, E]) At(i, j int) T          { return v.engine.At(i, j) }
func (v View[T, E]) Ref(i, j int) *T        { return v.engine.Ref(i, j) }
func (v View[T, E]) Set(i, j int, x T)      { *v.engine.Ref(i, j) = x }

// Engine returns the underlying view engine.
func (v View[T, E]) Engine() E { return v.engine }

// Assign copies src through the view into the referent.
// Errors: ErrInvalidView, ErrDimensionMismatch. On error nothing is written.
func (v View[T, E]) Assign(src Engine[T]) error {
	if !v.engine.IsValid() {
		return matrixErrorf(opViewAssign, ErrInvalidView)
	}
	if err := AssignFrom[T, T](v.engine, src); err != nil {
		return matrixErrorf(opViewAssign, err)
	}

	return nil
}

// AssignRows copies a nested row list through the view.
func (v View[T, E]) AssignRows(rows [][]T) error {
	if !v.engine.IsValid() {
		return matrixErrorf(opViewAssign, ErrInvalidView)
	}

	return AssignRows[T, T](v.engine, rows)
}

// Equal reports exact element-wise equality with any engine of the same shape.
func (v View[T, E]) Equal(o Engine[T]) bool { return EnginesEqual[T](v.engine, o) }

func (v View[T, E]) String() string { return formatEngine[T](v.engine) }

// ConstView is a read-only façade over a view engine E.
type ConstView[T Scalar, E ViewEngine[T]] struct {
	engine E
}

// NewConstView wraps an already bound read-only view engine.
func NewConstView[T Scalar, E ViewEngine[T]](e E) ConstView[T, E] {
	return ConstView[T, E]{engine: e}
}

func (v ConstView[T, E]) IsValid() bool          { return v.engine.IsValid() }
func (v ConstView[T, E]) Rows() int              { return v.engine.Rows() }
func (v ConstView[T, E]) Columns() int           { return v.engine.Columns() }
func (v ConstView[T, E]) Size() (rows, cols int) { return v.engine.Size() }
func (v ConstView[T, E]) At(i, j int) T          { return v.engine.At(i, j) }
func (v ConstView[T, E]) Engine() E              { return v.engine }
func (v ConstView[T, E]) Equal(o Engine[T]) bool { return EnginesEqual[T](v.engine, o) }
func (v ConstView[T, E]) String() string         { return formatEngine[T](v.engine) }

// SubmatrixOf returns a writable window over any mutable engine, including
// another view.
func SubmatrixOf[T Scalar, E MutableEngine[T]](e E, rowStart, rowExtent, colStart, colExtent int) View[T, SubmatrixEngine[T, E]] {
	return View[T, SubmatrixEngine[T, E]]{
		engine: NewSubmatrixEngine[T](e, rowStart, rowExtent, colStart, colExtent),
	}
}

// ConstSubmatrixOf returns a read-only window over any engine.
func ConstSubmatrixOf[T Scalar, E Engine[T]](e E, rowStart, rowExtent, colStart, colExtent int) ConstView[T, ConstSubmatrixEngine[T, E]] {
	return ConstView[T, ConstSubmatrixEngine[T, E]]{
		engine: NewConstSubmatrixEngine[T](e, rowStart, rowExtent, colStart, colExtent),
	}
}

// TransposeOf returns a writable transposed view over any mutable engine.
func TransposeOf[T Scalar, E MutableEngine[T]](e E) View[T, TransposeEngine[T, E]] {
	return View[T, TransposeEngine[T, E]]{engine: NewTransposeEngine[T](e)}
}

// ConstTransposeOf returns a read-only transposed view over any engine.
func ConstTransposeOf[T Scalar, E Engine[T]](e E) ConstView[T, ConstTransposeEngine[T, E]] {
	return ConstView[T, ConstTransposeEngine[T, E]]{engine: NewConstTransposeEngine[T](e)}
}
