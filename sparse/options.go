// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for SparseMatrix construction.
// This file defines:
//   - documented defaults (constants),
//   - Option and the internal options struct,
//   - WithX constructors (panic on nonsensical values),
//   - gatherOptions helper.
//
// Design goals:
//   - No global state; each matrix carries its own policy.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package sparse

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValue is the implicit value of absent cells in a new SparseMatrix.
	DefaultValue = 0.0

	// DefaultCapacity is the number of entries pre-allocated by NewSparseMatrix.
	DefaultCapacity = 0

	// DefaultPrecision is the number of decimals used by String().
	DefaultPrecision = 3
)

// MaxSize is the largest supported matrix dimension: row and col are packed
// into a 64-bit key as two 32-bit halves, so every index must be < 2^32.
const MaxSize uint64 = 1 << 32

// ---------- Internal panic messages ----------

const (
	panicDefaultValueInvalid = "sparse: WithDefaultValue: value must be finite"
	panicCapacityInvalid     = "sparse: WithCapacity: capacity must be non-negative"
)

// Option mutates matrix construction options.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	defaultValue float64 // DefaultValue
	capacity     int     // DefaultCapacity
}

// WithDefaultValue sets the implicit value returned for absent cells.
// Panics if v is NaN or ±Inf.
//
// Notes:
//   - Row/Col projections into SparseVector drop a non-zero default.
func WithDefaultValue(v float64) Option {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(panicDefaultValueInvalid)
	}

	return func(o *options) { o.defaultValue = v }
}

// WithCapacity pre-allocates storage for n entries.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(panicCapacityInvalid)
	}

	return func(o *options) { o.capacity = n }
}

// gatherOptions applies opts in order over the defaults.
func gatherOptions(opts ...Option) options {
	o := options{
		defaultValue: DefaultValue,
		capacity:     DefaultCapacity,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
