// SPDX-License-Identifier: MIT

// Package sparse: domain types shared by the sparse and dense containers.
// This file contains ONLY the public interfaces (Matrix, Logger), the Entry
// record and the packed index key helpers.
package sparse

// Matrix is the read-only square surface shared by *SparseMatrix and *Dense.
// Rendering helpers accept it so a snapshot and its source print the same way.
//
// Complexity notes: Size is O(1); At is O(1) (hash lookup or flat offset).
type Matrix interface {
	// Size returns the square dimension (rows == cols).
	Size() int

	// At returns the value at (row, col).
	// Returns ErrOutOfRange if row or col is outside [0, Size()).
	At(row, col int) (float64, error)
}

// Logger is the narrow logging collaborator used by Log methods.
// *zap.SugaredLogger satisfies it.
type Logger interface {
	Infof(template string, args ...interface{})
}

// Entry is one stored (row, col, value) cell of a SparseMatrix.
type Entry struct {
	Row   int
	Col   int
	Value float64
}

// cellKey packs (row, col) into a 64-bit hash key: row in the high 32 bits,
// col in the low 32 bits. Callers guarantee 0 ≤ row, col < MaxSize.
func cellKey(row, col int) uint64 {
	return uint64(uint32(row))<<32 | uint64(uint32(col))
}
