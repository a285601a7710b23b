// SPDX-License-Identifier: MIT
// Package propagate_test contains unit tests for score propagation.
package propagate_test

import (
	"testing"

	"github.com/katalvlaran/lvsparse/propagate"
	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// chain is a row-stochastic 3-node matrix: 0→{1,2}, 1→0, 2→1.
// Its stationary distribution with d = 1 is (0.4, 0.4, 0.2).
func chain(t *testing.T) *sparse.SparseMatrix {
	t.Helper()
	m, err := sparse.NewSparseMatrixFrom([][]float64{
		{0, 0.5, 0.5},
		{1, 0, 0},
		{0, 1, 0},
	})
	require.NoError(t, err)

	return m
}

func TestRun_TwoCycleIsFixedPoint(t *testing.T) {
	m, err := sparse.NewSparseMatrixFrom([][]float64{{0, 1}, {1, 0}})
	require.NoError(t, err)

	res, err := propagate.Run(m)
	require.NoError(t, err)
	require.Equal(t, 1, res.Iterations)
	require.InDeltaSlice(t, []float64{0.5, 0.5}, res.Scores.Values(), 1e-12)
}

func TestRun_Undamped(t *testing.T) {
	res, err := propagate.Run(chain(t),
		propagate.WithDamping(1),
		propagate.WithTolerance(1e-12),
		propagate.WithMaxIterations(1000),
	)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0.4, 0.4, 0.2}, res.Scores.Values(), 1e-9)
	require.LessOrEqual(t, res.Residual, 1e-12)
	require.InDelta(t, 1.0, res.Scores.L1Norm(), 1e-12)
}

func TestRun_Damped(t *testing.T) {
	res, err := propagate.Run(chain(t), propagate.WithTolerance(1e-12), propagate.WithMaxIterations(1000))
	require.NoError(t, err)

	// Closed form of x = 0.85·x·M + 0.05 for the chain above.
	x0 := 0.128625 / 0.3316875
	x1 := 0.78625*x0 + 0.0925
	x2 := 0.425*x0 + 0.05
	require.InDeltaSlice(t, []float64{x0, x1, x2}, res.Scores.Values(), 1e-9)
}

func TestRun_CustomStart(t *testing.T) {
	start := sparse.VectorFrom([]float64{0, 0, 10})
	res, err := propagate.Run(chain(t),
		propagate.WithDamping(1),
		propagate.WithStart(start),
		propagate.WithTolerance(1e-12),
		propagate.WithMaxIterations(1000),
	)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0.4, 0.4, 0.2}, res.Scores.Values(), 1e-9)
	require.Equal(t, []float64{0, 0, 10}, start.Values(), "start vector must not be modified")
}

func TestRun_NoConvergence(t *testing.T) {
	res, err := propagate.Run(chain(t), propagate.WithDamping(1), propagate.WithMaxIterations(1))
	require.ErrorIs(t, err, propagate.ErrNoConvergence)
	require.NotNil(t, res)
	require.Equal(t, 1, res.Iterations)
	require.Greater(t, res.Residual, 0.0)
}

func TestRun_Errors(t *testing.T) {
	_, err := propagate.Run(nil)
	require.ErrorIs(t, err, sparse.ErrNilOperand)

	empty, err := sparse.NewSparseMatrix(0)
	require.NoError(t, err)
	_, err = propagate.Run(empty)
	require.ErrorIs(t, err, sparse.ErrBadShape)

	_, err = propagate.Run(chain(t), propagate.WithStart(sparse.VectorFrom([]float64{1, 1})))
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)

	_, err = propagate.Run(chain(t), propagate.WithStart(sparse.VectorFrom([]float64{0, 0, 0})))
	require.ErrorIs(t, err, sparse.ErrZeroNorm)

	// Every score drains into empty rows with no teleport term.
	sink, err := sparse.NewSparseMatrix(2)
	require.NoError(t, err)
	_, err = propagate.Run(sink, propagate.WithDamping(1))
	require.ErrorIs(t, err, sparse.ErrZeroNorm)
}

func TestRun_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m, err := sparse.NewSparseMatrixFrom([][]float64{{0, 1}, {1, 0}})
	require.NoError(t, err)

	res, err := propagate.Run(m, propagate.WithLogger(zap.New(core)), propagate.WithDump(2))
	require.NoError(t, err)

	steps := logs.FilterMessage("propagate: iteration").All()
	require.Len(t, steps, res.Iterations)
	require.Equal(t, int64(1), steps[0].ContextMap()["iteration"])

	done := logs.FilterMessage("propagate: done").All()
	require.Len(t, done, 1)
	require.Equal(t, true, done[0].ContextMap()["converged"])

	require.Equal(t, 1, logs.FilterMessage("propagate: scores").Len())
	require.Equal(t, 1, logs.FilterMessage("\t(0.50, 0.50)").Len())
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { propagate.WithDamping(0) })
	require.Panics(t, func() { propagate.WithDamping(1.5) })
	require.Panics(t, func() { propagate.WithTolerance(-1) })
	require.Panics(t, func() { propagate.WithMaxIterations(0) })
	require.Panics(t, func() { propagate.WithDump(-1) })
	require.NotPanics(t, func() { propagate.WithLogger(nil) })
}
