// SPDX-License-Identifier: MIT

// Package sparse - matrix products.
//
// Convention:
//   - Mul stores Σ_k A[i,k]·B[k,j] at (i, j): the natural product A·B.
//     The fixture [[1,2],[3,4]]·[[5,6],[7,8]] = [[19,22],[43,50]] pins it.
//
// Paths:
//   - both defaults 0: rows of A and columns of B are materialized as
//     SparseVectors and only non-empty (row, col) pairs are dotted;
//   - otherwise the defaults contribute to every sum, so the product is
//     computed over dense snapshots in i→k→j order.
//
// Determinism:
//   - rows/columns are visited in ascending order and each dot walks the
//     shorter operand in ascending index order.

package sparse

import "sort"

// axisVectors groups m's stored non-zero entries into one SparseVector per
// row (byRow) or per column. Only non-empty vectors are returned, keyed by
// their row/column id, together with the ascending list of ids.
func (m *SparseMatrix) axisVectors(byRow bool) (map[int]*SparseVector, []int) {
	vecs := make(map[int]*SparseVector)
	for _, e := range m.entries {
		if e.Value == 0 {
			continue
		}
		major, minor := e.Col, e.Row
		if byRow {
			major, minor = e.Row, e.Col
		}
		v, ok := vecs[major]
		if !ok {
			v = &SparseVector{size: m.size, data: make(map[int]float64)}
			vecs[major] = v
		}
		v.data[minor] = e.Value
	}
	ids := make([]int, 0, len(vecs))
	for id := range vecs {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return vecs, ids
}

// Mul performs m = m·rhs. rhs may be m itself.
// The receiver keeps its default value; only cells that differ from it are stored.
//
// Errors: ErrNilOperand, ErrDimensionMismatch (m is left untouched).
//
// Complexity:
//   - sparse path: O(R·C·k) with R non-empty rows of m, C non-empty columns
//     of rhs and k the shorter non-zero count of each pair;
//   - dense path: O(n³) time, O(n²) memory.
func (m *SparseMatrix) Mul(rhs *SparseMatrix) error {
	if rhs == nil {
		return sparseErrorf("SparseMatrix.Mul", ErrNilOperand)
	}
	if err := validateSameSize(m.size, rhs.size); err != nil {
		return sparseErrorf("SparseMatrix.Mul", err)
	}
	if m.defaultValue == 0 && rhs.defaultValue == 0 {
		m.entries = m.mulSparse(rhs)
	} else {
		m.entries = m.mulDense(rhs)
	}
	m.rehash()

	return nil
}

// mulSparse returns the stored entries of m·rhs when both defaults are 0.
func (m *SparseMatrix) mulSparse(rhs *SparseMatrix) []Entry {
	rows, rowIDs := m.axisVectors(true)
	cols, colIDs := rhs.axisVectors(false)

	// Sorted index lists are computed once per vector, not once per pair.
	rowIdx := make(map[int][]int, len(rows))
	for id, v := range rows {
		rowIdx[id] = v.sortedIndices()
	}
	colIdx := make(map[int][]int, len(cols))
	for id, v := range cols {
		colIdx[id] = v.sortedIndices()
	}

	var out []Entry
	for _, i := range rowIDs {
		a, ai := rows[i], rowIdx[i]
		for _, j := range colIDs {
			b, bj := cols[j], colIdx[j]
			var sum float64
			if len(ai) <= len(bj) {
				sum = dotSorted(ai, a, b)
			} else {
				sum = dotSorted(bj, b, a)
			}
			if sum != 0 {
				out = append(out, Entry{Row: i, Col: j, Value: sum})
			}
		}
	}

	return out
}

// mulDense returns the entries of m·rhs that differ from m's default value.
func (m *SparseMatrix) mulDense(rhs *SparseMatrix) []Entry {
	n := m.size
	a, b := m.ToDense(), rhs.ToDense()
	c := make([]float64, n*n)
	for i := 0; i < n; i++ {
		ci := c[i*n : (i+1)*n]
		for k := 0; k < n; k++ {
			aik := a.data[i*n+k]
			if aik == 0 {
				continue
			}
			bk := b.data[k*n : (k+1)*n]
			for j := range ci {
				ci[j] += aik * bk[j]
			}
		}
	}
	var out []Entry
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v := c[i*n+j]; v != m.defaultValue {
				out = append(out, Entry{Row: i, Col: j, Value: v})
			}
		}
	}

	return out
}

// MulSelfTransposed performs m = m·mᵀ.
func (m *SparseMatrix) MulSelfTransposed() error {
	if err := m.Mul(m.TransposedCopy()); err != nil {
		return sparseErrorf("SparseMatrix.MulSelfTransposed", err)
	}

	return nil
}

// MulVector performs m = m·V where V is the single-column matrix holding v
// in column 0. Afterwards column 0 of m is m·v and every other column is 0.
//
// Errors: ErrNilOperand, ErrDimensionMismatch.
func (m *SparseMatrix) MulVector(v *SparseVector) error {
	if v == nil {
		return sparseErrorf("SparseMatrix.MulVector", ErrNilOperand)
	}
	if err := validateSameSize(m.size, v.size); err != nil {
		return sparseErrorf("SparseMatrix.MulVector", err)
	}
	col := &SparseMatrix{size: m.size, index: make(map[uint64]int, len(v.data))}
	v.Range(func(i int, x float64) bool {
		col.put(i, 0, x)
		return true
	})
	if err := m.Mul(col); err != nil {
		return sparseErrorf("SparseMatrix.MulVector", err)
	}

	return nil
}
