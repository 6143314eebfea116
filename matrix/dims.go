// SPDX-License-Identifier: MIT

package matrix

// MaxExtent is the largest row or column count a Storage can hold.
const MaxExtent = 4

const maxElements = MaxExtent * MaxExtent

// D1 is the extent 1.
type D1 struct{}

// D2 is the extent 2.
type D2 struct{}

// D3 is the extent 3.
type D3 struct{}

// D4 is the extent 4.
type D4 struct{}

func (D1) Extent() int { return 1 }
func (D2) Extent() int { return 2 }
func (D3) Extent() int { return 3 }
func (D4) Extent() int { return 4 }

// Dim is a compile-time extent. The set is closed: extents are 1..MaxExtent.
type Dim interface {
	D1 | D2 | D3 | D4
	Extent() int
}

// extentOf returns the runtime value of a compile-time extent.
func extentOf[D Dim]() int {
	var d D
	return d.Extent()
}

// RowMajor stores rows contiguously: offset(i, j) = i*cols + j.
type RowMajor struct{}

// ColumnMajor stores columns contiguously: offset(i, j) = j*rows + i.
type ColumnMajor struct{}

func (RowMajor) strides(_, cols int) (rowStride, colStride int)    { return cols, 1 }
func (ColumnMajor) strides(rows, _ int) (rowStride, colStride int) { return 1, rows }

func (RowMajor) String() string    { return "row-major" }
func (ColumnMajor) String() string { return "column-major" }

// Layout selects the index map of an owning engine. Element semantics never
// depend on it; only the position of (i, j) in memory does.
type Layout interface {
	RowMajor | ColumnMajor
	String() string
	strides(rows, cols int) (rowStride, colStride int)
}
