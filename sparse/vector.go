// SPDX-License-Identifier: MIT

// Package sparse - Vector: dense float64 vector that multiplies against a
// SparseMatrix. Element-wise kernels delegate to gonum/floats.

package sparse

import (
	"io"

	"gonum.org/v1/gonum/floats"
)

// Vector is a dense vector with a size fixed at construction.
type Vector struct {
	data []float64
}

// Compile-time assertion.
var _ rowWalker = (*Vector)(nil)

// NewVector returns a zero vector of length n.
// Errors: ErrBadShape if n < 0.
func NewVector(n int) (*Vector, error) {
	if n < 0 {
		return nil, sparseErrorf("NewVector", ErrBadShape)
	}

	return &Vector{data: make([]float64, n)}, nil
}

// VectorFrom returns a vector holding a copy of values.
func VectorFrom(values []float64) *Vector {
	data := make([]float64, len(values))
	copy(data, values)

	return &Vector{data: data}
}

// Len returns the vector length.
func (v *Vector) Len() int { return len(v.data) }

// At returns element i.
// Errors: ErrOutOfRange unless 0 ≤ i < Len().
func (v *Vector) At(i int) (float64, error) {
	if err := validateIndex(i, len(v.data)); err != nil {
		return 0, indexErrorf("Vector.At", i, 0, err)
	}

	return v.data[i], nil
}

// Set assigns element i.
// Errors: ErrOutOfRange unless 0 ≤ i < Len().
func (v *Vector) Set(i int, x float64) error {
	if err := validateIndex(i, len(v.data)); err != nil {
		return indexErrorf("Vector.Set", i, 0, err)
	}
	v.data[i] = x

	return nil
}

// Values returns a copy of the elements.
func (v *Vector) Values() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return out
}

// Clone returns a deep copy.
func (v *Vector) Clone() *Vector { return VectorFrom(v.data) }

// checkOperand validates a binary operand.
func (v *Vector) checkOperand(op string, rhs *Vector) error {
	if rhs == nil {
		return sparseErrorf(op, ErrNilOperand)
	}
	if err := validateSameSize(len(v.data), len(rhs.data)); err != nil {
		return sparseErrorf(op, err)
	}

	return nil
}

// Add performs v += rhs element-wise.
// Errors: ErrNilOperand, ErrDimensionMismatch.
func (v *Vector) Add(rhs *Vector) error {
	if err := v.checkOperand("Vector.Add", rhs); err != nil {
		return err
	}
	floats.Add(v.data, rhs.data)

	return nil
}

// Sub performs v -= rhs element-wise.
// Errors: ErrNilOperand, ErrDimensionMismatch.
func (v *Vector) Sub(rhs *Vector) error {
	if err := v.checkOperand("Vector.Sub", rhs); err != nil {
		return err
	}
	floats.Sub(v.data, rhs.data)

	return nil
}

// Scale multiplies every element by alpha.
func (v *Vector) Scale(alpha float64) { floats.Scale(alpha, v.data) }

// Div divides every element by alpha.
// Errors: ErrDivisionByZero if alpha == 0.
func (v *Vector) Div(alpha float64) error {
	if alpha == 0 {
		return sparseErrorf("Vector.Div", ErrDivisionByZero)
	}
	for i := range v.data {
		v.data[i] /= alpha
	}

	return nil
}

// Dot returns Σ v_i·rhs_i.
// Errors: ErrNilOperand, ErrDimensionMismatch.
func (v *Vector) Dot(rhs *Vector) (float64, error) {
	if err := v.checkOperand("Vector.Dot", rhs); err != nil {
		return 0, err
	}

	return floats.Dot(v.data, rhs.data), nil
}

// L1Norm returns Σ|v_i|.
func (v *Vector) L1Norm() float64 {
	if len(v.data) == 0 {
		return 0
	}

	return floats.Norm(v.data, 1)
}

// L1Normalise divides every element by Σ|v_i| so the absolute sum becomes 1.
// Errors: ErrZeroNorm if the sum is exactly 0 (v is left untouched).
func (v *Vector) L1Normalise() error {
	norm := v.L1Norm()
	if norm == 0 {
		return sparseErrorf("Vector.L1Normalise", ErrZeroNorm)
	}
	for i := range v.data {
		v.data[i] /= norm
	}

	return nil
}

// MulMatrix performs v = v·m, i.e. v'[col] = Σ_row v[row]·m[row,col].
//
// Implementation:
//   - DefaultValue() == 0: walk the stored entries only, O(nnz);
//   - otherwise: read every cell, O(n²).
//
// Errors: ErrNilOperand, ErrDimensionMismatch (v is left untouched).
func (v *Vector) MulMatrix(m *SparseMatrix) error {
	if m == nil {
		return sparseErrorf("Vector.MulMatrix", ErrNilOperand)
	}
	if err := validateSameSize(len(v.data), m.size); err != nil {
		return sparseErrorf("Vector.MulMatrix", err)
	}
	out := make([]float64, len(v.data))
	if m.defaultValue == 0 {
		for _, e := range m.entries {
			out[e.Col] += v.data[e.Row] * e.Value
		}
	} else {
		for row, x := range v.data {
			for col := range out {
				out[col] += x * m.lookup(row, col)
			}
		}
	}
	v.data = out

	return nil
}

// walkRows yields the vector as a single row.
func (v *Vector) walkRows(fn func(row []float64)) { fn(v.data) }

// Format renders "(v0, v1, ...)" with the given number of decimals.
func (v *Vector) Format(precision int) string {
	return _fmtOpen + joinRow(v.data, _fmtSep, precision) + _fmtClose
}

// Print writes the rendering followed by a newline to w.
func (v *Vector) Print(w io.Writer, precision int) error {
	return writePlain(w, v, precision)
}

// String implements fmt.Stringer using DefaultPrecision.
func (v *Vector) String() string { return v.Format(DefaultPrecision) }

// Log sends message and then the tab-indented rendering to logger.
func (v *Vector) Log(message string, logger Logger, precision int) {
	logRows(message, logger, v, precision)
}
