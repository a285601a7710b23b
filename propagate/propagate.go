// SPDX-License-Identifier: MIT

package propagate

import (
	"fmt"

	"github.com/katalvlaran/lvsparse/sparse"
	"go.uber.org/zap"
)

// Result is the outcome of Run.
type Result struct {
	Scores     *sparse.Vector // L1-normalised scores, Σ|x_i| = 1
	Iterations int            // number of steps taken
	Residual   float64        // L1 distance between the last two iterates
}

// Run iterates x ← d·(x·m) + (1−d)/n, L1-normalising x after every step,
// until ‖x_k − x_{k−1}‖₁ ≤ tolerance.
//
// Implementation:
//   - Stage 1: validate m and the start vector (uniform 1/n by default).
//   - Stage 2: iterate with Vector.MulMatrix, Scale, Add and L1Normalise.
//   - Stage 3: stop on convergence, or return the last iterate together
//     with ErrNoConvergence after MaxIterations steps.
//
// Errors:
//   - sparse.ErrNilOperand if m is nil;
//   - sparse.ErrBadShape if m.Size() == 0;
//   - sparse.ErrDimensionMismatch if the start vector has the wrong length;
//   - sparse.ErrZeroNorm if the start vector or an iterate sums to 0
//     (e.g. d = 1 and every score flows into empty rows);
//   - ErrNoConvergence (with a non-nil Result).
func Run(m *sparse.SparseMatrix, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)

	// Stage 1: validate.
	if m == nil {
		return nil, fmt.Errorf("propagate.Run: %w", sparse.ErrNilOperand)
	}
	n := m.Size()
	if n == 0 {
		return nil, fmt.Errorf("propagate.Run: %w", sparse.ErrBadShape)
	}
	x, err := startVector(n, o.start)
	if err != nil {
		return nil, fmt.Errorf("propagate.Run: %w", err)
	}
	var teleport *sparse.Vector
	if o.damping < 1 {
		teleport = uniform(n, (1-o.damping)/float64(n))
	}

	// Stage 2: iterate.
	res := &Result{Scores: x}
	for it := 1; it <= o.maxIter; it++ {
		next := x.Clone()
		if err = next.MulMatrix(m); err != nil {
			return nil, fmt.Errorf("propagate.Run: step %d: %w", it, err)
		}
		if teleport != nil {
			next.Scale(o.damping)
			_ = next.Add(teleport) // same length by construction
		}
		if err = next.L1Normalise(); err != nil {
			return nil, fmt.Errorf("propagate.Run: step %d: %w", it, err)
		}

		diff := next.Clone()
		_ = diff.Sub(x)
		res.Scores, res.Iterations, res.Residual = next, it, diff.L1Norm()
		o.logger.Debug("propagate: iteration",
			zap.Int("iteration", it),
			zap.Float64("residual", res.Residual),
		)
		x = next

		// Stage 3: converged.
		if res.Residual <= o.tolerance {
			o.finish(res, true)
			return res, nil
		}
	}
	o.finish(res, false)

	return res, fmt.Errorf("propagate.Run: %d iterations, residual %g: %w",
		res.Iterations, res.Residual, ErrNoConvergence)
}

// finish emits the completion entry and, if enabled, the score dump.
func (o *options) finish(res *Result, converged bool) {
	o.logger.Info("propagate: done",
		zap.Bool("converged", converged),
		zap.Int("iterations", res.Iterations),
		zap.Float64("residual", res.Residual),
		zap.Int("size", res.Scores.Len()),
	)
	if o.dump >= 0 {
		res.Scores.Log("propagate: scores", o.logger.Sugar(), o.dump)
	}
}

// startVector returns the normalised initial iterate.
func startVector(n int, start *sparse.Vector) (*sparse.Vector, error) {
	if start == nil {
		return uniform(n, 1/float64(n)), nil
	}
	if start.Len() != n {
		return nil, sparse.ErrDimensionMismatch
	}
	x := start.Clone()
	if err := x.L1Normalise(); err != nil {
		return nil, err
	}

	return x, nil
}

// uniform returns a length-n vector with every element set to c.
func uniform(n int, c float64) *sparse.Vector {
	values := make([]float64, n)
	for i := range values {
		values[i] = c
	}

	return sparse.VectorFrom(values)
}
