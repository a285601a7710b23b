// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//  - Single source of truth for shape, index and size checks.
//  - Return plain sentinel errors (no wrapping) so call sites wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing.

package sparse

// validateSize accepts 0 ≤ n ≤ MaxSize.
func validateSize(n int) error {
	if n < 0 {
		return ErrBadShape
	}
	if uint64(n) > MaxSize {
		return ErrTooLarge
	}

	return nil
}

// validateIndex accepts 0 ≤ i < size. The upper bound is exclusive.
func validateIndex(i, size int) error {
	if i < 0 || i >= size {
		return ErrOutOfRange
	}

	return nil
}

// validateCell checks both coordinates against the square dimension.
func validateCell(row, col, size int) error {
	if err := validateIndex(row, size); err != nil {
		return err
	}

	return validateIndex(col, size)
}

// validateSameSize accepts equal declared sizes only.
func validateSameSize(a, b int) error {
	if a != b {
		return ErrDimensionMismatch
	}

	return nil
}
