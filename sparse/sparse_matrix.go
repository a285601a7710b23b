// SPDX-License-Identifier: MIT

// Package sparse - SparseMatrix: ordered entry list + hashed (row,col) index.
//
// Purpose:
//   - entries is the authoritative storage; its order is unconstrained until
//     RowSort/ColSort is requested.
//   - index maps cellKey(row,col) to a position in entries. It is rebuilt
//     synchronously by every operation that reorders or replaces entries
//     (sorts, Transpose, Mul, Add, Clear), so it is an exact inverse of
//     entries at every public call boundary.
//   - defaultValue is the implicit value of absent cells. It need not be 0.
//
// Invariants:
//   - each (row,col) appears at most once in entries;
//   - 0 ≤ row, col < size ≤ MaxSize;
//   - every check of a public method runs before any mutation.
//
// Complexity quicksheet:
//   - Set/At: O(1); Row/Col: O(nnz); sorts: O(nnz log nnz); Transpose: O(nnz).

package sparse

import (
	"io"
	"sort"
)

// SparseMatrix is a square matrix storing only cells that were explicitly set.
type SparseMatrix struct {
	size         int            // square dimension
	entries      []Entry        // authoritative storage
	index        map[uint64]int // cellKey -> position in entries
	defaultValue float64        // value of absent cells
}

// Compile-time assertions.
var (
	_ Matrix    = (*SparseMatrix)(nil)
	_ rowWalker = (*SparseMatrix)(nil)
)

// NewSparseMatrix returns an empty size×size matrix.
//
// Errors:
//   - ErrBadShape if size < 0;
//   - ErrTooLarge if size > MaxSize.
func NewSparseMatrix(size int, opts ...Option) (*SparseMatrix, error) {
	if err := validateSize(size); err != nil {
		return nil, sparseErrorf("NewSparseMatrix", err)
	}
	o := gatherOptions(opts...)

	return &SparseMatrix{
		size:         size,
		entries:      make([]Entry, 0, o.capacity),
		index:        make(map[uint64]int, o.capacity),
		defaultValue: o.defaultValue,
	}, nil
}

// NewSparseMatrixFrom builds a matrix from a square row-major literal.
// Cells equal to the configured default value are not stored.
//
// Errors: ErrBadShape if rows is ragged or not square.
func NewSparseMatrixFrom(rows [][]float64, opts ...Option) (*SparseMatrix, error) {
	n := len(rows)
	for _, r := range rows {
		if len(r) != n {
			return nil, sparseErrorf("NewSparseMatrixFrom", ErrBadShape)
		}
	}
	m, err := NewSparseMatrix(n, opts...)
	if err != nil {
		return nil, err
	}
	for i, r := range rows {
		for j, x := range r {
			m.put(i, j, x) // bounds hold by construction
		}
	}

	return m, nil
}

// Size returns the square dimension.
func (m *SparseMatrix) Size() int { return m.size }

// DefaultValue returns the implicit value of absent cells.
func (m *SparseMatrix) DefaultValue() float64 { return m.defaultValue }

// Len returns the number of stored entries.
func (m *SparseMatrix) Len() int { return len(m.entries) }

// Set stores value at (row, col).
//
// Behavior:
//   - an existing entry is overwritten in place, even with the default value
//     (no compaction on this path);
//   - a new entry is appended only if value != DefaultValue().
//
// Errors: ErrOutOfRange unless 0 ≤ row, col < Size(); nothing is mutated.
func (m *SparseMatrix) Set(row, col int, value float64) error {
	if err := validateCell(row, col, m.size); err != nil {
		return indexErrorf("SparseMatrix.Set", row, col, err)
	}
	m.put(row, col, value)

	return nil
}

// put is Set without the bounds check.
func (m *SparseMatrix) put(row, col int, value float64) {
	key := cellKey(row, col)
	if pos, ok := m.index[key]; ok {
		m.entries[pos].Value = value
		return
	}
	if value == m.defaultValue {
		return
	}
	if m.index == nil {
		m.index = make(map[uint64]int)
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, Entry{Row: row, Col: col, Value: value})
}

// At returns the value at (row, col): the stored value or DefaultValue().
// Errors: ErrOutOfRange unless 0 ≤ row, col < Size().
func (m *SparseMatrix) At(row, col int) (float64, error) {
	if err := validateCell(row, col, m.size); err != nil {
		return 0, indexErrorf("SparseMatrix.At", row, col, err)
	}

	return m.lookup(row, col), nil
}

// lookup is At without the bounds check.
func (m *SparseMatrix) lookup(row, col int) float64 {
	if pos, ok := m.index[cellKey(row, col)]; ok {
		return m.entries[pos].Value
	}

	return m.defaultValue
}

// Row returns row r as a SparseVector of length Size().
//
// Only stored entries whose value is non-zero are projected. SparseVector
// has a fixed 0.0 default, so absent cells of a matrix with a non-zero
// DefaultValue() read as 0.0 in the result: the projection is lossy.
//
// Errors: ErrOutOfRange unless 0 ≤ r < Size().
func (m *SparseMatrix) Row(r int) (*SparseVector, error) {
	if err := validateIndex(r, m.size); err != nil {
		return nil, indexErrorf("SparseMatrix.Row", r, 0, err)
	}
	v := &SparseVector{size: m.size, data: make(map[int]float64)}
	for _, e := range m.entries {
		if e.Row == r {
			v.put(e.Col, e.Value)
		}
	}

	return v, nil
}

// Col returns column c as a SparseVector of length Size(). Same lossy
// projection rules as Row.
//
// Errors: ErrOutOfRange unless 0 ≤ c < Size().
func (m *SparseMatrix) Col(c int) (*SparseVector, error) {
	if err := validateIndex(c, m.size); err != nil {
		return nil, indexErrorf("SparseMatrix.Col", 0, c, err)
	}
	v := &SparseVector{size: m.size, data: make(map[int]float64)}
	for _, e := range m.entries {
		if e.Col == c {
			v.put(e.Row, e.Value)
		}
	}

	return v, nil
}

// RowSort stable-sorts the storage by ascending row and rebuilds the index.
// Logical content is unchanged.
func (m *SparseMatrix) RowSort() {
	sort.SliceStable(m.entries, func(i, j int) bool { return m.entries[i].Row < m.entries[j].Row })
	m.rehash()
}

// ColSort stable-sorts the storage by ascending column and rebuilds the index.
func (m *SparseMatrix) ColSort() {
	sort.SliceStable(m.entries, func(i, j int) bool { return m.entries[i].Col < m.entries[j].Col })
	m.rehash()
}

// Transpose swaps row and column of every entry in place.
func (m *SparseMatrix) Transpose() {
	for i := range m.entries {
		e := &m.entries[i]
		e.Row, e.Col = e.Col, e.Row
	}
	m.rehash()
}

// TransposedCopy returns mᵀ as a new matrix; m is not modified.
func (m *SparseMatrix) TransposedCopy() *SparseMatrix {
	t := m.Clone()
	t.Transpose()

	return t
}

// Add performs m += rhs cell-wise, defaults included: the new default value
// is m.DefaultValue() + rhs.DefaultValue(). Cells whose sum equals the new
// default are not stored.
//
// Errors: ErrNilOperand, ErrDimensionMismatch (m is left untouched).
func (m *SparseMatrix) Add(rhs *SparseMatrix) error {
	if rhs == nil {
		return sparseErrorf("SparseMatrix.Add", ErrNilOperand)
	}
	if err := validateSameSize(m.size, rhs.size); err != nil {
		return sparseErrorf("SparseMatrix.Add", err)
	}
	def := m.defaultValue + rhs.defaultValue
	out := make([]Entry, 0, len(m.entries)+len(rhs.entries))
	for _, e := range m.entries {
		out = append(out, Entry{Row: e.Row, Col: e.Col, Value: e.Value + rhs.lookup(e.Row, e.Col)})
	}
	for _, e := range rhs.entries {
		if _, ok := m.index[cellKey(e.Row, e.Col)]; !ok {
			out = append(out, Entry{Row: e.Row, Col: e.Col, Value: m.defaultValue + e.Value})
		}
	}
	m.defaultValue = def
	m.entries = out
	m.compact()

	return nil
}

// Scale multiplies every cell, the default included, by alpha.
func (m *SparseMatrix) Scale(alpha float64) {
	for i := range m.entries {
		m.entries[i].Value *= alpha
	}
	m.defaultValue *= alpha
	m.compact()
}

// compact drops entries equal to the default value and rebuilds the index.
func (m *SparseMatrix) compact() {
	kept := m.entries[:0]
	for _, e := range m.entries {
		if e.Value != m.defaultValue {
			kept = append(kept, e)
		}
	}
	m.entries = kept
	m.rehash()
}

// Clear resets the dimension to 0 and drops every entry. The default value
// is kept.
func (m *SparseMatrix) Clear() {
	m.size = 0
	m.entries = m.entries[:0]
	m.rehash()
}

// rehash rebuilds index from entries.
func (m *SparseMatrix) rehash() {
	m.index = make(map[uint64]int, len(m.entries))
	for pos, e := range m.entries {
		m.index[cellKey(e.Row, e.Col)] = pos
	}
}

// Clone returns a deep copy of m.
func (m *SparseMatrix) Clone() *SparseMatrix {
	out := &SparseMatrix{
		size:         m.size,
		entries:      make([]Entry, len(m.entries)),
		defaultValue: m.defaultValue,
	}
	copy(out.entries, m.entries)
	out.rehash()

	return out
}

// Equal reports whether m and rhs have the same size and the same value in
// every cell. Storage order and default values are irrelevant unless some
// cell is absent from both.
func (m *SparseMatrix) Equal(rhs *SparseMatrix) bool {
	if rhs == nil || m.size != rhs.size {
		return false
	}
	covered := len(m.entries)
	for _, e := range m.entries {
		if rhs.lookup(e.Row, e.Col) != e.Value {
			return false
		}
	}
	for _, e := range rhs.entries {
		if _, ok := m.index[cellKey(e.Row, e.Col)]; ok {
			continue
		}
		covered++
		if m.defaultValue != e.Value {
			return false
		}
	}
	if uint64(covered) < uint64(m.size)*uint64(m.size) {
		return m.defaultValue == rhs.defaultValue
	}

	return true
}

// Range calls fn for every stored entry in storage order until fn returns
// false. It is a read-only view: mutating m from inside fn is not supported.
func (m *SparseMatrix) Range(fn func(e Entry) bool) {
	for _, e := range m.entries {
		if !fn(e) {
			return
		}
	}
}

// Entries returns a copy of the stored entries in storage order.
func (m *SparseMatrix) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)

	return out
}

// ToDense materializes m, defaults included, as a dense snapshot.
// Complexity: O(n² + nnz) time and O(n²) memory.
func (m *SparseMatrix) ToDense() *Dense {
	d := newDenseFilled(m.size, m.defaultValue)
	for _, e := range m.entries {
		d.data[e.Row*d.n+e.Col] = e.Value
	}

	return d
}

// sortedSnapshot returns a copy of entries ordered by (row, col).
func (m *SparseMatrix) sortedSnapshot() []Entry {
	snap := m.Entries()
	sort.Slice(snap, func(i, j int) bool {
		if snap[i].Row != snap[j].Row {
			return snap[i].Row < snap[j].Row
		}
		return snap[i].Col < snap[j].Col
	})

	return snap
}

// walkRows yields each dense row from a (row,col)-sorted snapshot, filling
// absent cells with the default value. m is not mutated.
// Memory: O(nnz + n).
func (m *SparseMatrix) walkRows(fn func(row []float64)) {
	snap := m.sortedSnapshot()
	buf := make([]float64, m.size)
	k := 0
	for r := 0; r < m.size; r++ {
		for j := range buf {
			buf[j] = m.defaultValue
		}
		for ; k < len(snap) && snap[k].Row == r; k++ {
			buf[snap[k].Col] = snap[k].Value
		}
		fn(buf)
	}
}

// Format returns the plain rendering: one "(v0, v1, ...)\n" line per row.
func (m *SparseMatrix) Format(precision int) string {
	return formatString(m, precision, writePlain)
}

// Print writes the plain rendering to w.
func (m *SparseMatrix) Print(w io.Writer, precision int) error {
	return writePlain(w, m, precision)
}

// FormatMatlab returns the MATLAB/Octave literal of m.
func (m *SparseMatrix) FormatMatlab(precision int) string {
	return formatString(m, precision, writeMatlab)
}

// PrintMatlab writes the MATLAB/Octave literal of m to w.
func (m *SparseMatrix) PrintMatlab(w io.Writer, precision int) error {
	return writeMatlab(w, m, precision)
}

// Log sends message and then one tab-indented line per row to logger.
func (m *SparseMatrix) Log(message string, logger Logger, precision int) {
	logRows(message, logger, m, precision)
}

// String implements fmt.Stringer using DefaultPrecision.
func (m *SparseMatrix) String() string { return m.Format(DefaultPrecision) }
