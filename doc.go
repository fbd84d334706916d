// Package kronmv multiplies vectors by Kronecker products of small matrices
// without ever building the product.
//
// 🚀 What is kronmv?
//
//	A small, dependency-light library for separable linear operators:
//		• Kernel: y = (Q₁ ⊗ … ⊗ Q_N)·x in O(Σ size·len) instead of O(len²)
//		• Modes: out-of-place, caller-owned output, in-place
//		• Strategies: copy-in/copy-out fibers or zero-copy strided views
//		• Parallel passes over independent fibers (opt-in)
//
// Under the hood, everything is organized under two subpackages:
//
//	kron/   - the Kronecker-vector kernel (Multiply, MultiplyInto, MultiplyInPlace)
//	matrix/ - Matrix interface, row-major Dense, MatVec kernels, strided views, Kron
//
// Quick example: for Q₁ = diag(1,2) and Q₂ = [[0,1],[1,0]],
//
//	kron.Multiply([]matrix.Matrix{Q1, Q2}, []float64{1, 2, 3, 4})
//
// returns [2 1 8 6], the same as forming the 4×4 product Q₁ ⊗ Q₂ and applying it.
//
//	go get github.com/katalvlaran/kronmv
package kronmv
