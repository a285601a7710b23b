// SPDX-License-Identifier: MIT

// Package sparse - SparseVector: hashed storage of one logical dimension.
//
// Purpose:
//   - Store only non-zero elements; an absent index reads as exactly 0.0.
//   - Keep the invariant "every stored index < size, no stored 0.0" across
//     every public call, including failed ones.
//
// Determinism:
//   - Map iteration order is random in Go, so every ordered walk (Range, Dot,
//     Format) goes through the ascending index list from sortedIndices.
//
// Complexity quicksheet:
//   - Set/At: O(1); Add/Sub: O(nnz(rhs)); Dot: O(k log k), k = min nnz;
//     Range/Format: O(nnz log nnz).

package sparse

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// SparseVector is a fixed-size vector storing only its non-zero elements.
// The zero value is a valid empty vector of size 0.
type SparseVector struct {
	size int             // declared dimension; changed only by Resize
	data map[int]float64 // index -> non-zero value
}

// NewSparseVector returns an all-zero vector of the given size.
// Errors: ErrBadShape if size < 0.
func NewSparseVector(size int) (*SparseVector, error) {
	if size < 0 {
		return nil, sparseErrorf("NewSparseVector", ErrBadShape)
	}

	return &SparseVector{size: size, data: make(map[int]float64)}, nil
}

// Size returns the declared dimension.
func (v *SparseVector) Size() int { return v.size }

// NonZero returns the number of stored (non-zero) elements.
func (v *SparseVector) NonZero() int { return len(v.data) }

// Resize changes the declared dimension and clears every entry.
// Errors: ErrBadShape if n < 0 (the vector is left untouched).
func (v *SparseVector) Resize(n int) error {
	if n < 0 {
		return sparseErrorf("SparseVector.Resize", ErrBadShape)
	}
	v.size = n
	v.data = make(map[int]float64)

	return nil
}

// Set stores value at index i. Setting 0.0 removes the entry.
// Errors: ErrOutOfRange unless 0 ≤ i < Size().
func (v *SparseVector) Set(i int, value float64) error {
	if err := validateIndex(i, v.size); err != nil {
		return indexErrorf("SparseVector.Set", i, 0, err)
	}
	v.put(i, value)

	return nil
}

// put writes without bounds checks and keeps the no-stored-zero invariant.
func (v *SparseVector) put(i int, value float64) {
	if value == 0 {
		delete(v.data, i)
		return
	}
	if v.data == nil {
		v.data = make(map[int]float64)
	}
	v.data[i] = value
}

// At returns the element at index i, or 0.0 if it is not stored.
// Errors: ErrOutOfRange unless 0 ≤ i < Size().
func (v *SparseVector) At(i int) (float64, error) {
	if err := validateIndex(i, v.size); err != nil {
		return 0, indexErrorf("SparseVector.At", i, 0, err)
	}

	return v.data[i], nil
}

// Add performs v += rhs element-wise.
// Errors: ErrNilOperand, ErrDimensionMismatch.
func (v *SparseVector) Add(rhs *SparseVector) error {
	return v.accumulate("SparseVector.Add", rhs, 1)
}

// Sub performs v -= rhs element-wise.
// Errors: ErrNilOperand, ErrDimensionMismatch.
func (v *SparseVector) Sub(rhs *SparseVector) error {
	return v.accumulate("SparseVector.Sub", rhs, -1)
}

// accumulate adds sign*rhs into v after validating both operands.
func (v *SparseVector) accumulate(op string, rhs *SparseVector, sign float64) error {
	if rhs == nil {
		return sparseErrorf(op, ErrNilOperand)
	}
	if err := validateSameSize(v.size, rhs.size); err != nil {
		return sparseErrorf(op, err)
	}
	for i, x := range rhs.data {
		v.put(i, v.data[i]+sign*x)
	}

	return nil
}

// Scale multiplies every element by alpha. Scaling by 0 empties the vector.
func (v *SparseVector) Scale(alpha float64) {
	if alpha == 0 {
		v.data = make(map[int]float64)
		return
	}
	for i, x := range v.data {
		v.put(i, x*alpha)
	}
}

// Div divides every element by alpha.
// Errors: ErrDivisionByZero if alpha == 0 (the vector is left untouched).
func (v *SparseVector) Div(alpha float64) error {
	if alpha == 0 {
		return sparseErrorf("SparseVector.Div", ErrDivisionByZero)
	}
	for i, x := range v.data {
		v.put(i, x/alpha)
	}

	return nil
}

// Dot returns Σ v_i·rhs_i. It walks the operand with fewer non-zeros in
// ascending index order and looks the other one up in O(1).
// Errors: ErrNilOperand, ErrDimensionMismatch.
func (v *SparseVector) Dot(rhs *SparseVector) (float64, error) {
	if rhs == nil {
		return 0, sparseErrorf("SparseVector.Dot", ErrNilOperand)
	}
	if err := validateSameSize(v.size, rhs.size); err != nil {
		return 0, sparseErrorf("SparseVector.Dot", err)
	}
	short, long := v, rhs
	if len(long.data) < len(short.data) {
		short, long = long, short
	}

	return dotSorted(short.sortedIndices(), short, long), nil
}

// dotSorted sums short[i]*long[i] over idx, which must list short's entries.
func dotSorted(idx []int, short, long *SparseVector) float64 {
	var sum float64
	for _, i := range idx {
		if y, ok := long.data[i]; ok {
			sum += short.data[i] * y
		}
	}

	return sum
}

// Magnitude returns the Euclidean norm sqrt(Σ v_i²) over stored entries.
func (v *SparseVector) Magnitude() float64 {
	var sum float64
	for _, i := range v.sortedIndices() {
		x := v.data[i]
		sum += x * x
	}

	return math.Sqrt(sum)
}

// Range calls fn for each stored (index, value) pair in ascending index
// order until fn returns false. Range may be called any number of times.
// Mutating v from inside fn is not supported.
func (v *SparseVector) Range(fn func(i int, value float64) bool) {
	for _, i := range v.sortedIndices() {
		if !fn(i, v.data[i]) {
			return
		}
	}
}

// sortedIndices returns the stored indices in ascending order.
func (v *SparseVector) sortedIndices() []int {
	idx := make([]int, 0, len(v.data))
	for i := range v.data {
		idx = append(idx, i)
	}
	sort.Ints(idx)

	return idx
}

// Clone returns a deep copy of v.
func (v *SparseVector) Clone() *SparseVector {
	out := &SparseVector{size: v.size, data: make(map[int]float64, len(v.data))}
	for i, x := range v.data {
		out.data[i] = x
	}

	return out
}

// Equal reports whether v and rhs have the same size and identical elements.
func (v *SparseVector) Equal(rhs *SparseVector) bool {
	if rhs == nil || v.size != rhs.size || len(v.data) != len(rhs.data) {
		return false
	}
	for i, x := range v.data {
		if y, ok := rhs.data[i]; !ok || y != x {
			return false
		}
	}

	return true
}

// Format renders the stored entries as "(i: v, i: v)" with the given number
// of decimals. An empty vector renders as "()".
func (v *SparseVector) Format(precision int) string {
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	first := true
	v.Range(func(i int, x float64) bool {
		if !first {
			sb.WriteString(_fmtSep)
		}
		first = false
		fmt.Fprintf(&sb, "%d: %s", i, formatValue(x, precision))
		return true
	})
	sb.WriteString(_fmtClose)

	return sb.String()
}

// String implements fmt.Stringer using DefaultPrecision.
func (v *SparseVector) String() string { return v.Format(DefaultPrecision) }

// Log writes message and then the tab-indented rendering of v to logger.
func (v *SparseVector) Log(message string, logger Logger, precision int) {
	logger.Infof("%s", message)
	logger.Infof("\t%s", v.Format(precision))
}
