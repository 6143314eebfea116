// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every fallible operation returns one of these sentinels, possibly wrapped with
// an operation tag (see matrixErrorf); callers and tests match with errors.Is.
// Contract violations on indices (out-of-range i, j) are not errors: they are
// documented preconditions, and at most trip the runtime's own array checks.

package matrix

import (
	"errors"
	"fmt"
)

// ERROR PRIORITY (enforced in tests):
// nil engine -> ragged rows -> dimension mismatch -> singular.

var (
	// ErrNilEngine indicates that a nil engine interface was passed.
	ErrNilEngine = errors.New("matrix: nil engine")

	// ErrDimensionMismatch indicates incompatible extents between operands,
	// e.g., assigning a 3×2 source into a 2×3 destination, or Product where
	// a.Columns != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrRaggedRows indicates that a nested row list has rows of differing length.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrSingular is returned by Inverse when every remaining pivot candidate
	// is within the pivot tolerance of zero.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrInvalidView indicates use of a zero-value (unbound) view.
	ErrInvalidView = errors.New("matrix: invalid view")
)

// matrixErrorf wraps err with the operation tag: "<tag>: <err>".
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
