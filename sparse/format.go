// SPDX-License-Identifier: MIT

// Package sparse - human-readable dumps.
//
// Formats (observable contract, covered by Example tests):
//   - plain:  one "(v0, v1, ...)\n" line per row;
//   - MATLAB: "[" rows of space-separated values joined by ";\n" "]\n";
//   - log:    message, then one "\t(v0, v1, ...)" line per row via Logger.
//
// Values are printed with a fixed number of decimals (strconv 'f' format).
// A negative precision selects the shortest exact representation.

package sparse

import (
	"io"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen        = "("
	_fmtClose       = ")"
	_fmtSep         = ", "
	_fmtRowEnd      = "\n"
	_fmtLogIndent   = "\t"
	_fmtMatlabOpen  = "["
	_fmtMatlabClose = "]\n"
	_fmtMatlabSep   = " "
	_fmtMatlabRow   = ";\n"
)

// rowWalker yields the dense rows of a square matrix in ascending row order.
// The slice passed to fn is reused between calls.
type rowWalker interface {
	walkRows(fn func(row []float64))
}

// formatValue renders x with the given number of decimals.
func formatValue(x float64, precision int) string {
	return strconv.FormatFloat(x, 'f', precision, 64)
}

// joinRow renders row with sep between values.
func joinRow(row []float64, sep string, precision int) string {
	var sb strings.Builder
	for j, x := range row {
		if j > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(formatValue(x, precision))
	}

	return sb.String()
}

// writePlain streams the plain "(a, b)\n" rendering of rw into w.
func writePlain(w io.Writer, rw rowWalker, precision int) error {
	var err error
	rw.walkRows(func(row []float64) {
		if err != nil {
			return
		}
		_, err = io.WriteString(w, _fmtOpen+joinRow(row, _fmtSep, precision)+_fmtClose+_fmtRowEnd)
	})

	return err
}

// writeMatlab streams the MATLAB/Octave literal of rw into w.
func writeMatlab(w io.Writer, rw rowWalker, precision int) error {
	if _, err := io.WriteString(w, _fmtMatlabOpen); err != nil {
		return err
	}
	var err error
	first := true
	rw.walkRows(func(row []float64) {
		if err != nil {
			return
		}
		line := joinRow(row, _fmtMatlabSep, precision)
		if !first {
			line = _fmtMatlabRow + line
		}
		first = false
		_, err = io.WriteString(w, line)
	})
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, _fmtMatlabClose)

	return err
}

// logRows sends message and then each tab-indented row of rw to logger.
func logRows(message string, logger Logger, rw rowWalker, precision int) {
	logger.Infof("%s", message)
	rw.walkRows(func(row []float64) {
		logger.Infof("%s", _fmtLogIndent+_fmtOpen+joinRow(row, _fmtSep, precision)+_fmtClose)
	})
}

// formatString renders rw with writer into a string.
// strings.Builder never fails, so the error is dropped.
func formatString(rw rowWalker, precision int, writer func(io.Writer, rowWalker, int) error) string {
	var sb strings.Builder
	_ = writer(&sb, rw, precision)

	return sb.String()
}
