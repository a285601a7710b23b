// Package lvsparse is a small numeric toolkit for large, mostly-zero square
// matrices and the score-propagation loops that run over them.
//
// Under the hood, everything is organized under two subpackages:
//
//	sparse/     SparseVector, SparseMatrix (hashed index, mutable default),
//	            dense Vector and Dense snapshot, text dumps
//	propagate/  damped power iteration over a SparseMatrix with L1 normalisation
//
// Quick example:
//
//	m, _ := sparse.NewSparseMatrixFrom([][]float64{{0, 1}, {1, 0}})
//	res, _ := propagate.Run(m)
//	fmt.Println(res.Scores)
//
//	go get github.com/katalvlaran/lvsparse
package lvsparse
