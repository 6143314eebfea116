// SPDX-License-Identifier: MIT
// Package matrix: rectangular window engines.
//
// A submatrix engine never owns data. It stores its referent (normally a
// pointer engine such as *Storage) plus the window origin and extents, and
// forwards every access with the origin added. Views are cheap values: copying
// one copies the reference, not the elements. A view must not outlive its
// referent, and window bounds are a precondition of construction.

package matrix

// SubmatrixEngine is a writable window over a mutable referent.
// The zero value is invalid (IsValid reports false) and must not be accessed.
type SubmatrixEngine[T Scalar, P MutableEngine[T]] struct {
	ref       P
	valid     bool
	rowStart  int
	rowExtent int
	colStart  int
	colExtent int
}

// NewSubmatrixEngine binds a window of rowExtent×colExtent starting at
// (rowStart, colStart) of ref. The window must fit inside ref.
func NewSubmatrixEngine[T Scalar, P MutableEngine[T]](ref P, rowStart, rowExtent, colStart, colExtent int) SubmatrixEngine[T, P] {
	return SubmatrixEngine[T, P]{
		ref:       ref,
		valid:     true,
		rowStart:  rowStart,
		rowExtent: rowExtent,
		colStart:  colStart,
		colExtent: colExtent,
	}
}

func (v SubmatrixEngine[T, P]) IsValid() bool          { return v.valid }
func (v SubmatrixEngine[T, P]) Rows() int              { return v.rowExtent }
func (v SubmatrixEngine[T, P]) Columns() int           { return v.colExtent }
func (v SubmatrixEngine[T, P]) Size() (rows, cols int) { return v.rowExtent, v.colExtent }

// At returns referent element (rowStart+i, colStart+j).
func (v SubmatrixEngine[T, P]) At(i, j int) T { return v.ref.At(v.rowStart+i, v.colStart+j) }

// Ref returns a pointer into the referent; writes are visible through every
// other view of the same data.
func (v SubmatrixEngine[T, P]) Ref(i, j int) *T { return v.ref.Ref(v.rowStart+i, v.colStart+j) }

// Swap exchanges the bindings (referent and window) of two views.
func (v *SubmatrixEngine[T, P]) Swap(o *SubmatrixEngine[T, P]) { *v, *o = *o, *v }

// ConstSubmatrixEngine is the read-only flavour of SubmatrixEngine.
// It accepts any referent and never exposes element references.
type ConstSubmatrixEngine[T Scalar, P Engine[T]] struct {
	ref       P
	valid     bool
	rowStart  int
	rowExtent int
	colStart  int
	colExtent int
}

// NewConstSubmatrixEngine binds a read-only window; see NewSubmatrixEngine.
func NewConstSubmatrixEngine[T Scalar, P Engine[T]](ref P, rowStart, rowExtent, colStart, colExtent int) ConstSubmatrixEngine[T, P] {
	return ConstSubmatrixEngine[T, P]{
		ref:       ref,
		valid:     true,
		rowStart:  rowStart,
		rowExtent: rowExtent,
		colStart:  colStart,
		colExtent: colExtent,
	}
}

func (v ConstSubmatrixEngine[T, P]) IsValid() bool          { return v.valid }
func (v ConstSubmatrixEngine[T, P]) Rows() int              { return v.rowExtent }
func (v ConstSubmatrixEngine[T, P]) Columns() int           { return v.colExtent }
func (v ConstSubmatrixEngine[T, P]) Size() (rows, cols int) { return v.rowExtent, v.colExtent }
func (v ConstSubmatrixEngine[T, P]) At(i, j int) T          { return v.ref.At(v.rowStart+i, v.colStart+j) }

// Swap exchanges the bindings of two views.
func (v *ConstSubmatrixEngine[T, P]) Swap(o *ConstSubmatrixEngine[T, P]) { *v, *o = *o, *v }
