// Package sparse provides square sparse matrices, sparse vectors and dense
// vectors for iterative score-propagation style computations.
//
// The package provides:
//
//   - SparseVector: hashed storage of non-zero elements of one dimension,
//     with Add/Sub/Scale/Div, Dot and Magnitude.
//   - SparseMatrix: an ordered entry list plus a hashed (row,col) index, a
//     configurable default value for absent cells, row/column projection,
//     sorts, transposition, Add/Scale and matrix–matrix products.
//   - Vector: a dense vector multiplied from the left against a SparseMatrix
//     and L1-normalised between iterations.
//   - Dense: a row-major snapshot used for rendering and dense fallbacks.
//
// Typical flow: stream external data into a SparseMatrix with Set, derive
// matrices with Mul/Add/Transpose, then repeatedly apply Vector.MulMatrix and
// Vector.L1Normalise (see package propagate).
//
// All failures are returned as wrapped sentinel errors (ErrOutOfRange,
// ErrDimensionMismatch, ErrDivisionByZero, ErrZeroNorm, ErrTooLarge, ...)
// and are matched with errors.Is. Values are not safe for concurrent
// mutation.
package sparse
