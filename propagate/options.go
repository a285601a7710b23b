// SPDX-License-Identifier: MIT

// Package propagate: functional configuration for Run.
// Defaults are the single source of truth; WithX constructors panic on
// nonsensical values (programmer error).

package propagate

import (
	"math"

	"github.com/katalvlaran/lvsparse/sparse"
	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDamping is the weight of the propagated score; 1−d is spread
	// uniformly over all nodes at every step.
	DefaultDamping = 0.85

	// DefaultTolerance is the L1 residual at which iteration stops.
	DefaultTolerance = 1e-9

	// DefaultMaxIterations caps the number of propagation steps.
	DefaultMaxIterations = 100

	// DefaultDumpPrecision disables logging of the final scores.
	DefaultDumpPrecision = -1
)

// ---------- Internal panic messages ----------

const (
	panicDampingInvalid   = "propagate: WithDamping: d must be in (0, 1]"
	panicToleranceInvalid = "propagate: WithTolerance: tol must be finite, non-negative"
	panicMaxIterInvalid   = "propagate: WithMaxIterations: n must be ≥ 1"
	panicDumpInvalid      = "propagate: WithDump: precision must be non-negative"
)

// Option mutates Run configuration.
type Option func(*options)

type options struct {
	damping   float64
	tolerance float64
	maxIter   int
	start     *sparse.Vector // nil ⇒ uniform 1/n
	logger    *zap.Logger
	dump      int // decimals for the final score dump; <0 ⇒ off
}

// WithDamping sets the damping factor d ∈ (0, 1]. d = 1 disables the
// uniform teleport term and gives plain propagation.
func WithDamping(d float64) Option {
	if math.IsNaN(d) || d <= 0 || d > 1 {
		panic(panicDampingInvalid)
	}

	return func(o *options) { o.damping = d }
}

// WithTolerance sets the L1 residual threshold.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.tolerance = tol }
}

// WithMaxIterations caps the number of steps.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicMaxIterInvalid)
	}

	return func(o *options) { o.maxIter = n }
}

// WithStart sets the initial score vector. It is copied and L1-normalised
// by Run; its length must equal the matrix size.
func WithStart(v *sparse.Vector) Option {
	return func(o *options) { o.start = v }
}

// WithLogger routes iteration logs to l. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithDump logs the final score vector at Info level with the given number
// of decimals.
func WithDump(precision int) Option {
	if precision < 0 {
		panic(panicDumpInvalid)
	}

	return func(o *options) { o.dump = precision }
}

func gatherOptions(opts ...Option) options {
	o := options{
		damping:   DefaultDamping,
		tolerance: DefaultTolerance,
		maxIter:   DefaultMaxIterations,
		logger:    zap.NewNop(),
		dump:      DefaultDumpPrecision,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
