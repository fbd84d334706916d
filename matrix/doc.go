// Package matrix offers the dense linear-algebra collaborators used by the
// Kronecker kernel.
//
// The matrix package provides:
//
//   - Matrix, a small interface (Rows, Cols, At, Set, Clone) any storage can satisfy.
//   - Dense, a row-major implementation with safe accessors and a NaN/Inf policy.
//   - MatVec / MatVecInto for contiguous vectors and MatVecStrided for StridedVec views.
//   - Mul and Kron (explicit Kronecker product) for reference computations.
//
// Passing *Dense unlocks flat-slice fast paths; any other Matrix goes through At.
package matrix
