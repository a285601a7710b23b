// Package propagate runs iterative score propagation over a sparse.SparseMatrix.
//
// What & Why:
//
//	Many ranking schemes (citation scores, PageRank, trust propagation) are
//	the fixed point of x ← d·(x·M) + (1−d)/n, renormalised so Σ|x_i| = 1.
//	Run iterates that map with a dense sparse.Vector until the L1 distance
//	between successive iterates drops to the tolerance.
//
// Complexity:
//
//	Each step costs O(nnz(M)) when M's default value is 0, O(n²) otherwise.
//	Total: O(I·nnz), I = number of iterations (≤ MaxIterations).
//
// Logging:
//
//	One Debug entry per iteration and one Info entry on completion, through
//	the *zap.Logger given with WithLogger (zap.NewNop by default).
package propagate
