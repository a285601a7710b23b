// SPDX-License-Identifier: MIT
// Package sparse_test contains unit tests for the Dense snapshot.
package sparse_test

import (
	"testing"

	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/stretchr/testify/require"
)

func TestNewDense(t *testing.T) {
	_, err := sparse.NewDense(-1)
	require.ErrorIs(t, err, sparse.ErrBadShape)

	d, err := sparse.NewDense(2)
	require.NoError(t, err)
	requireCells(t, [][]float64{{0, 0}, {0, 0}}, d)

	_, err = sparse.NewDenseFrom([][]float64{{1, 2}})
	require.ErrorIs(t, err, sparse.ErrBadShape)
}

func TestDense_SetAtClone(t *testing.T) {
	d, err := sparse.NewDenseFrom([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	c := d.Clone()
	require.NoError(t, c.Set(0, 0, 10))
	requireCells(t, [][]float64{{1, 2}, {3, 4}}, d)
	requireCells(t, [][]float64{{10, 2}, {3, 4}}, c)

	require.ErrorIs(t, d.Set(2, 0, 1), sparse.ErrOutOfRange)
	_, err = d.At(0, 2)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
}

func TestDense_ToSparse(t *testing.T) {
	d, err := sparse.NewDenseFrom([][]float64{{0, 2}, {0, 0}})
	require.NoError(t, err)

	m, err := d.ToSparse()
	require.NoError(t, err)
	require.Equal(t, 1, m.Len())
	requireCells(t, [][]float64{{0, 2}, {0, 0}}, m)
}
