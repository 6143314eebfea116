// SPDX-License-Identifier: MIT
// Package matrix: centralized validators.
// Purpose:
//   - Provide small, reusable validation helpers with a unified error policy.
//   - Validators return sentinel errors (no wrapping) so callers can tag them
//     with the operation name via matrixErrorf.
//
// Contract:
//   - Every validator is O(1) except ValidateRows, which is O(len(rows)).
//   - Validators never write; a failed validation leaves every operand untouched.

package matrix

import "reflect"

// ValidateNotNil ensures that e is neither a nil interface nor a nil pointer
// held by one, such as (*Matrix)(nil). Size never dereferences its receiver,
// so a nil pointer would otherwise pass every shape check and panic later.
func ValidateNotNil(e Sizable) error {
	if e == nil {
		return ErrNilEngine
	}
	if v := reflect.ValueOf(e); v.Kind() == reflect.Pointer && v.IsNil() {
		return ErrNilEngine
	}

	return nil
}

// ValidateShape ensures that e is exactly rows×cols.
func ValidateShape(e Sizable, rows, cols int) error {
	if err := ValidateNotNil(e); err != nil {
		return err
	}
	if r, c := e.Size(); r != rows || c != cols {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateSameShape ensures that a and b have identical extents.
func ValidateSameShape(a, b Sizable) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	ar, ac := a.Size()
	br, bc := b.Size()
	if ar != br || ac != bc {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateMulCompatible ensures a.Columns == b.Rows.
func ValidateMulCompatible(a, b Sizable) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Columns() != b.Rows() {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateRows checks that a nested row list is rectangular and returns its
// extents. An empty list is 0×0; an empty first row gives 0 columns.
func ValidateRows[U Scalar](rows [][]U) (r, c int, err error) {
	r = len(rows)
	if r == 0 {
		return 0, 0, nil
	}
	c = len(rows[0])
	for _, row := range rows[1:] {
		if len(row) != c {
			return 0, 0, ErrRaggedRows
		}
	}

	return r, c, nil
}

// ValidateFlatLen ensures that a flat list of n values fills e exactly.
func ValidateFlatLen(e Sizable, n int) error {
	if err := ValidateNotNil(e); err != nil {
		return err
	}
	if r, c := e.Size(); r*c != n {
		return ErrDimensionMismatch
	}

	return nil
}
