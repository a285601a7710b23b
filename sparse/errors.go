// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// This file defines ONLY package-level sentinel errors. Public methods wrap
// them with a call-site tag (see sparseErrorf) and tests match them via
// errors.Is. No method panics on user-triggered error conditions.

package sparse

import (
	"errors"
	"fmt"
)

// ERROR PRIORITY (enforced in tests):
// nil operand -> shape -> index range -> dimension mismatch -> arithmetic.

var (
	// ErrBadShape is returned when a requested dimension is negative, or when
	// an operation needs a non-empty operand and got a 0-sized one.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrTooLarge is returned when a requested matrix dimension exceeds
	// MaxSize, i.e. row/col would not fit the 32-bit halves of an index key.
	ErrTooLarge = errors.New("sparse: dimension exceeds index space")

	// ErrOutOfRange indicates that a row, column or vector index is outside [0, size).
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates binary arithmetic between operands of
	// unequal declared size.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrDivisionByZero is returned when dividing by an exact 0.0 scalar.
	ErrDivisionByZero = errors.New("sparse: division by zero")

	// ErrZeroNorm is returned when L1-normalising a vector whose absolute sum is 0.
	ErrZeroNorm = errors.New("sparse: zero norm")

	// ErrNilOperand indicates that a nil receiver or argument was used.
	ErrNilOperand = errors.New("sparse: nil operand")
)

// sparseErrorf wraps err with a "<op>: " tag, preserving the sentinel via %w.
func sparseErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// indexErrorf wraps err with an op tag and the offending coordinates.
func indexErrorf(op string, row, col int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", op, row, col, err)
}
