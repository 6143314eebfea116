// SPDX-License-Identifier: MIT

package matrix

// TransposeEngine presents its referent with rows and columns exchanged:
// Rows() is the referent's column count and (i, j) addresses referent (j, i).
// The zero value is invalid and must not be accessed.
type TransposeEngine[T Scalar, P MutableEngine[T]] struct {
	ref   P
	valid bool
}

// NewTransposeEngine binds a writable transposed view of ref.
func NewTransposeEngine[T Scalar, P MutableEngine[T]](ref P) TransposeEngine[T, P] {
	return TransposeEngine[T, P]{ref: ref, valid: true}
}

func (v TransposeEngine[T, P]) IsValid() bool    { return v.valid }
func (v TransposeEngine[T, P]) Rows() int        { return v.ref.Columns() }
func (v TransposeEngine[T, P]) Columns() int     { return v.ref.Rows() }
func (v TransposeEngine[T, P]) At(i, j int) T    { return v.ref.At(j, i) }
func (v TransposeEngine[T, P]) Ref(i, j int) *T  { return v.ref.Ref(j, i) }
func (v TransposeEngine[T, P]) Size() (int, int) { return v.ref.Columns(), v.ref.Rows() }

// Swap exchanges referents. Element data is untouched.
func (v *TransposeEngine[T, P]) Swap(o *TransposeEngine[T, P]) { *v, *o = *o, *v }

// ConstTransposeEngine is the read-only flavour of TransposeEngine.
type ConstTransposeEngine[T Scalar, P Engine[T]] struct {
	ref   P
	valid bool
}

// NewConstTransposeEngine binds a read-only transposed view of ref.
func NewConstTransposeEngine[T Scalar, P Engine[T]](ref P) ConstTransposeEngine[T, P] {
	return ConstTransposeEngine[T, P]{ref: ref, valid: true}
}

func (v ConstTransposeEngine[T, P]) IsValid() bool    { return v.valid }
func (v ConstTransposeEngine[T, P]) Rows() int        { return v.ref.Columns() }
func (v ConstTransposeEngine[T, P]) Columns() int     { return v.ref.Rows() }
func (v ConstTransposeEngine[T, P]) At(i, j int) T    { return v.ref.At(j, i) }
func (v ConstTransposeEngine[T, P]) Size() (int, int) { return v.ref.Columns(), v.ref.Rows() }

// Swap exchanges referents.
func (v *ConstTransposeEngine[T, P]) Swap(o *ConstTransposeEngine[T, P]) { *v, *o = *o, *v }
