// SPDX-License-Identifier: MIT

// Package sparse - Dense: row-major square snapshot.
//
// Purpose:
//   - Materialize a SparseMatrix (defaults included) for rendering, dense
//     fallbacks in multiplication, and cell-for-cell comparisons in tests.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//
// Complexity quicksheet:
//   - NewDense: O(n²) zero-init; At/Set: O(1); Clone: O(n²).

package sparse

import (
	"fmt"
	"io"
)

// Dense is a row-major n×n matrix of float64 values.
type Dense struct {
	n    int       // square dimension
	data []float64 // flat backing storage, len == n*n, offset = i*n + j
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ rowWalker    = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an n×n zero matrix. n == 0 is legal.
//
// Errors:
//   - ErrBadShape if n < 0.
//
// Complexity: O(n²) time and memory.
func NewDense(n int) (*Dense, error) {
	if n < 0 {
		return nil, sparseErrorf("NewDense", ErrBadShape)
	}

	return newDenseFilled(n, 0), nil
}

// NewDenseFrom copies a square row-major literal.
// Errors: ErrBadShape if rows is ragged or not square.
func NewDenseFrom(rows [][]float64) (*Dense, error) {
	n := len(rows)
	d := newDenseFilled(n, 0)
	for i, r := range rows {
		if len(r) != n {
			return nil, sparseErrorf("NewDenseFrom", ErrBadShape)
		}
		copy(d.data[i*n:(i+1)*n], r)
	}

	return d, nil
}

// newDenseFilled allocates an n×n matrix with every cell set to fill.
// Callers guarantee n ≥ 0.
func newDenseFilled(n int, fill float64) *Dense {
	data := make([]float64, n*n)
	if fill != 0 {
		for i := range data {
			data[i] = fill
		}
	}

	return &Dense{n: n, data: data}
}

// Size returns the square dimension.
func (d *Dense) Size() int { return d.n }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (d *Dense) indexOf(op string, row, col int) (int, error) {
	if err := validateCell(row, col, d.n); err != nil {
		return 0, indexErrorf(op, row, col, err)
	}

	return row*d.n + col, nil
}

// At retrieves the element at (row, col).
func (d *Dense) At(row, col int) (float64, error) {
	idx, err := d.indexOf("Dense.At", row, col)
	if err != nil {
		return 0, err
	}

	return d.data[idx], nil
}

// Set assigns v at (row, col).
func (d *Dense) Set(row, col int, v float64) error {
	idx, err := d.indexOf("Dense.Set", row, col)
	if err != nil {
		return err
	}
	d.data[idx] = v

	return nil
}

// Clone returns a deep copy.
func (d *Dense) Clone() *Dense {
	data := make([]float64, len(d.data))
	copy(data, d.data)

	return &Dense{n: d.n, data: data}
}

// ToSparse converts d into a SparseMatrix, skipping cells equal to the
// configured default value.
func (d *Dense) ToSparse(opts ...Option) (*SparseMatrix, error) {
	m, err := NewSparseMatrix(d.n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < d.n; i++ {
		for j := 0; j < d.n; j++ {
			m.put(i, j, d.data[i*d.n+j])
		}
	}

	return m, nil
}

// walkRows yields row slices of the backing buffer.
func (d *Dense) walkRows(fn func(row []float64)) {
	for i := 0; i < d.n; i++ {
		fn(d.data[i*d.n : (i+1)*d.n])
	}
}

// Format returns the plain rendering, identical to SparseMatrix.Format.
func (d *Dense) Format(precision int) string { return formatString(d, precision, writePlain) }

// Print writes the plain rendering to w.
func (d *Dense) Print(w io.Writer, precision int) error { return writePlain(w, d, precision) }

// String implements fmt.Stringer using DefaultPrecision.
func (d *Dense) String() string { return d.Format(DefaultPrecision) }
