// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// matrix multiplication, the explicit Kronecker product and matrix-vector
// products over contiguous or strided vectors. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Every kernel has a *Dense fast path (flat slices) and an At-based fallback.
//   - MatVecInto and MatVecStrided share one accumulation order (j ascending per row),
//     so contiguous and strided callers obtain bit-identical results.

package matrix

import "fmt"

// ZeroSum is the initial sum value for dot products and similar accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul           = "Mul"
	opKron          = "Kron"
	opMatVec        = "MatVec"
	opMatVecInto    = "MatVecInto"
	opMatVecStrided = "MatVecStrided"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int // loop iterators
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}
			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Kron forms the Kronecker product A ⊗ B explicitly.
// MAIN DESCRIPTION:
//   - Result has shape (ra*rb)×(ca*cb) with entry [i*rb+k, j*cb+l] = A[i,j]*B[k,l].
//
// Implementation:
//   - Stage 1: Validate A,B non-nil.
//   - Stage 2: Fast-path for *Dense×*Dense writes block (i,j) as A[i,j]·B row by row;
//     fallback reads both operands through At.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(ra*ca*rb*cb), Space O(ra*ca*rb*cb).
//
// Notes:
//   - Memory grows as the product of operand sizes; use kron.Multiply when only (A⊗B)·x is needed.
func Kron(a, b Matrix) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	ra, ca, rb, cb := a.Rows(), a.Cols(), b.Rows(), b.Cols()
	res, err := NewDense(ra*rb, ca*cb)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	outCols := ca * cb

	var i, j, k, l int
	var av, bv float64
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var dst, src int
			for i = 0; i < ra; i++ {
				for j = 0; j < ca; j++ {
					av = da.data[i*ca+j]
					for k = 0; k < rb; k++ {
						dst = (i*rb+k)*outCols + j*cb
						src = k * cb
						for l = 0; l < cb; l++ {
							res.data[dst+l] = av * db.data[src+l]
						}
					}
				}
			}

			return res, nil
		}
	}

	for i = 0; i < ra; i++ {
		for j = 0; j < ca; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opKron, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			for k = 0; k < rb; k++ {
				for l = 0; l < cb; l++ {
					if bv, err = b.At(k, l); err != nil {
						return nil, matrixErrorf(opKron, fmt.Errorf("At(%d,%d): %w", k, l, err))
					}
					res.data[(i*rb+k)*outCols+j*cb+l] = av * bv
				}
			}
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order (shared with MatVecInto).
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, m.Rows()) // allocate exactly rows outputs
	if err := MatVecInto(y, m, x); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	return y, nil
}

// MatVecInto computes dst = m * x without allocating.
//
// Contract: m non-nil; len(x) == m.Cols(); len(dst) == m.Rows(); dst and x must not overlap.
// Fast-path: *Dense performs one pass per row with flat indexing.
// Complexity: Time O(r*c), Space O(1).
func MatVecInto(dst []float64, m Matrix, x []float64) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opMatVecInto, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return matrixErrorf(opMatVecInto, err)
	}
	if err := ValidateVecLen(dst, m.Rows()); err != nil {
		return matrixErrorf(opMatVecInto, err)
	}

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			dst[i] = acc
		}

		return nil
	}

	// Fallback: interface-based dot-products via At.
	rows, cols := m.Rows(), m.Cols()
	var i, j int
	var mv, acc float64
	var err error
	for i = 0; i < rows; i++ {
		acc = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return matrixErrorf(opMatVecInto, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			acc += mv * x[j]
		}
		dst[i] = acc
	}

	return nil
}

// MatVecStrided computes dst = m * x where both vectors are strided views.
// MAIN DESCRIPTION:
//   - Reads x in place (no gather); results are staged in tmp and then written through dst.
//
// Implementation:
//   - Stage 1: validate m non-nil, x.Len()==Cols, dst.Len()==Rows, len(tmp)>=Rows.
//   - Stage 2: accumulate each row into tmp[i] with j ascending.
//   - Stage 3: write tmp[0:Rows] through dst.
//
// Behavior highlights:
//   - dst may address exactly the same positions as x (in-place fiber update);
//     no x element is overwritten before every row has been computed.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1) beyond tmp.
func MatVecStrided(dst *StridedVec, m Matrix, x *StridedVec, tmp []float64) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opMatVecStrided, err)
	}
	if dst == nil || x == nil {
		return matrixErrorf(opMatVecStrided, ErrNilMatrix)
	}
	rows, cols := m.Rows(), m.Cols()
	if x.n != cols || dst.n != rows || len(tmp) < rows {
		return matrixErrorf(opMatVecStrided, ErrDimensionMismatch)
	}

	var i, j, p int
	var acc float64
	if d, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			acc = ZeroSum
			base = i * cols
			for j, p = 0, x.off; j < cols; j, p = j+1, p+x.stride {
				acc += d.data[base+j] * x.data[p]
			}
			tmp[i] = acc
		}
	} else {
		var mv float64
		var err error
		for i = 0; i < rows; i++ {
			acc = ZeroSum
			for j, p = 0, x.off; j < cols; j, p = j+1, p+x.stride {
				if mv, err = m.At(i, j); err != nil {
					return matrixErrorf(opMatVecStrided, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
				acc += mv * x.data[p]
			}
			tmp[i] = acc
		}
	}

	// Write-through after every row is computed.
	for i, p = 0, dst.off; i < rows; i, p = i+1, p+dst.stride {
		dst.data[p] = tmp[i]
	}

	return nil
}
