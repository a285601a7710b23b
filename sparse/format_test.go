// SPDX-License-Identifier: MIT
// Package sparse_test contains snapshot tests for the textual dumps.
package sparse_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// observedSugar returns a SugaredLogger recording Info+ entries.
func observedSugar() (*zap.SugaredLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	return zap.New(core).Sugar(), logs
}

// messages extracts the message of every recorded entry.
func messages(logs *observer.ObservedLogs) []string {
	var out []string
	for _, e := range logs.All() {
		out = append(out, e.Message)
	}

	return out
}

func TestSparseMatrix_Format(t *testing.T) {
	m := mustMatrix(t, [][]float64{{1, 0}, {0, 2.5}})
	require.Equal(t, "(1.0, 0.0)\n(0.0, 2.5)\n", m.Format(1))
	require.Equal(t, "(1.000, 0.000)\n(0.000, 2.500)\n", m.String())
}

func TestSparseMatrix_FormatUsesDefault(t *testing.T) {
	m, err := sparse.NewSparseMatrix(2, sparse.WithDefaultValue(9))
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 0, 1))
	require.Equal(t, "(9, 9)\n(1, 9)\n", m.Format(0))
}

func TestSparseMatrix_FormatDoesNotMutate(t *testing.T) {
	m, err := sparse.NewSparseMatrix(3)
	require.NoError(t, err)
	require.NoError(t, m.Set(2, 2, 1))
	require.NoError(t, m.Set(0, 1, 2))
	require.NoError(t, m.Set(1, 0, 3))
	before := m.Entries()

	require.Equal(t, "(0, 2, 0)\n(3, 0, 0)\n(0, 0, 1)\n", m.Format(0))
	require.Equal(t, before, m.Entries(), "rendering must not reorder storage")
}

func TestSparseMatrix_FormatMatlab(t *testing.T) {
	m := mustMatrix(t, [][]float64{{1, 2}, {3, 4}})
	require.Equal(t, "[1.0 2.0;\n3.0 4.0]\n", m.FormatMatlab(1))

	empty, err := sparse.NewSparseMatrix(0)
	require.NoError(t, err)
	require.Equal(t, "[]\n", empty.FormatMatlab(1))
	require.Equal(t, "", empty.Format(1))
}

func TestSparseMatrix_PrintWriters(t *testing.T) {
	m := mustMatrix(t, [][]float64{{1, 2}, {3, 4}})

	var buf bytes.Buffer
	require.NoError(t, m.Print(&buf, 0))
	require.Equal(t, "(1, 2)\n(3, 4)\n", buf.String())

	buf.Reset()
	require.NoError(t, m.PrintMatlab(&buf, 0))
	require.Equal(t, "[1 2;\n3 4]\n", buf.String())
}

// failWriter fails every write.
type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestSparseMatrix_PrintPropagatesWriteError(t *testing.T) {
	m := mustMatrix(t, [][]float64{{1}})
	require.ErrorIs(t, m.Print(failWriter{}, 1), errWrite)
	require.ErrorIs(t, m.PrintMatlab(failWriter{}, 1), errWrite)
}

func TestSparseMatrix_Log(t *testing.T) {
	logger, logs := observedSugar()
	m := mustMatrix(t, [][]float64{{1, 2}, {3, 4}})

	m.Log("transition matrix", logger, 1)
	require.Equal(t, []string{
		"transition matrix",
		"\t(1.0, 2.0)",
		"\t(3.0, 4.0)",
	}, messages(logs))
}

func TestVector_Log(t *testing.T) {
	logger, logs := observedSugar()
	sparse.VectorFrom([]float64{0.25, 0.75}).Log("scores", logger, 2)
	require.Equal(t, []string{"scores", "\t(0.25, 0.75)"}, messages(logs))

	var buf bytes.Buffer
	require.NoError(t, sparse.VectorFrom([]float64{1, 2}).Print(&buf, 0))
	require.Equal(t, "(1, 2)\n", buf.String())
}

func TestSparseVector_Log(t *testing.T) {
	logger, logs := observedSugar()
	mustVector(t, 4, map[int]float64{2: 1.5}).Log("row 3", logger, 1)
	require.Equal(t, []string{"row 3", "\t(2: 1.5)"}, messages(logs))
}

func TestDense_FormatMatchesSparse(t *testing.T) {
	m := mustMatrix(t, [][]float64{{1, 0, 2}, {0, 3, 0}, {4, 0, 5}}, sparse.WithDefaultValue(0))
	d := m.ToDense()
	require.Equal(t, m.Format(2), d.Format(2))
	require.Equal(t, m.String(), d.String())

	var buf bytes.Buffer
	require.NoError(t, d.Print(&buf, 2))
	require.Equal(t, m.Format(2), buf.String())
}
