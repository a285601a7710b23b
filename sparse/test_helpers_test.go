// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures (seeded RNG, literal matrices).
//   - Keep assertions on logical content, never on storage order, unless a
//     test is explicitly about ordering.

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/stretchr/testify/require"
)

// tol is the absolute tolerance for floating-point comparisons.
const tol = 1e-9

// mustMatrix builds a SparseMatrix from a square literal or fails the test.
func mustMatrix(t testing.TB, rows [][]float64, opts ...sparse.Option) *sparse.SparseMatrix {
	t.Helper()
	m, err := sparse.NewSparseMatrixFrom(rows, opts...)
	require.NoError(t, err)

	return m
}

// mustVector builds a SparseVector of the given size from index→value pairs.
func mustVector(t testing.TB, size int, values map[int]float64) *sparse.SparseVector {
	t.Helper()
	v, err := sparse.NewSparseVector(size)
	require.NoError(t, err)
	for i, x := range values {
		require.NoError(t, v.Set(i, x))
	}

	return v
}

// requireCells asserts m equals want cell-for-cell within tol.
func requireCells(t testing.TB, want [][]float64, m sparse.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Size(), "size")
	for i, row := range want {
		for j, w := range row {
			got, err := m.At(i, j)
			require.NoError(t, err)
			require.InDeltaf(t, w, got, tol, "cell (%d,%d)", i, j)
		}
	}
}

// randomMatrix returns an n×n matrix with roughly density·n² non-zero cells
// drawn from a seeded RNG, plus the dense literal it was built from.
func randomMatrix(t testing.TB, rng *rand.Rand, n int, density float64) (*sparse.SparseMatrix, [][]float64) {
	t.Helper()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			if rng.Float64() < density {
				rows[i][j] = float64(rng.Intn(19) - 9) // small integers keep sums exact
			}
		}
	}

	return mustMatrix(t, rows), rows
}

// randomVector returns a size-n SparseVector with roughly density·n non-zeros.
func randomVector(t testing.TB, rng *rand.Rand, n int, density float64) *sparse.SparseVector {
	t.Helper()
	values := make(map[int]float64)
	for i := 0; i < n; i++ {
		if rng.Float64() < density {
			values[i] = rng.NormFloat64()
		}
	}

	return mustVector(t, n, values)
}
