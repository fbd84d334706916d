// SPDX-License-Identifier: MIT

// Package kron multiplies a vector by a Kronecker product of small matrices
// without ever forming the product.
//
// Given factors Q₁,…,Q_N and x with len(x) = Π Qᵢ.Cols(), Multiply returns
//
//	y = (Q₁ ⊗ Q₂ ⊗ … ⊗ Q_N)·x,  len(y) = Π Qᵢ.Rows().
//
// x is read as an N-mode tensor in row-major order: mode N varies fastest.
// The kernel applies one factor per mode, last to first ("shuffle" method):
// for factor i every fiber of mode i (elements nright apart, where nright is
// the product of the row counts of the factors already applied) is replaced
// by Qᵢ times that fiber. Cost is O(Σᵢ rows(i)·cols(i)·Π_{j≠i} extent(j))
// instead of the O(Π rows · Π cols) of the explicit product.
//
// Entry points:
//
//	Multiply(factors, x)         - fresh output slice; x untouched.
//	MultiplyInto(dst, factors, x) - writes into a caller-owned dst.
//	MultiplyInPlace(factors, buf) - overwrites buf; needs Π cols == Π rows.
//	Dims(factors)                 - (Π cols, Π rows) with overflow checks.
//	Explicit(factors)             - the full product, for small inputs and checks.
//
// Fiber strategies (WithStrategy):
//
//	StrategyCopy    - gather fiber → small matvec → scatter (default).
//	StrategyStrided - matvec reads the fiber through a zero-copy strided view.
//
// Both strategies accumulate in the same order and give bit-identical output.
// WithWorkers(n) spreads the fibers of each pass over n goroutines.
//
// Errors: ErrEmptyFactorList, ErrNilFactor, ErrBadFactorShape,
// ErrDimensionOverflow and ErrDimensionMismatch are reported before any
// caller-visible buffer is written; match them with errors.Is.
//
// Concurrency: calls share no state. Factors are only read, so one factor
// list may serve concurrent calls as long as nobody mutates it meanwhile.
// The buffer handed to MultiplyInPlace (or dst in MultiplyInto) must not be
// touched by anyone else for the duration of the call.
package kron
