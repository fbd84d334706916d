// SPDX-License-Identifier: MIT

// Package kron - public entry points.
//
// Contract shared by all entry points:
//   - Validation (factors, lengths) completes before any caller buffer is written.
//   - Factors are read-only; nothing is retained after return.

package kron

import "github.com/katalvlaran/kronmv/matrix"

// Multiply returns y = (Q₁ ⊗ … ⊗ Q_N)·x as a fresh slice; x is not modified.
// MAIN DESCRIPTION:
//   - Out-of-place mode-wise contraction.
//
// Implementation:
//   - Stage 1: validate and snapshot factors; require len(x) == Π cols.
//   - Stage 2: all-square lists run in a copy of x; otherwise two scratch
//     buffers sized to the largest intermediate alternate between passes.
//
// Errors:
//   - ErrEmptyFactorList, ErrNilFactor, ErrBadFactorShape, ErrDimensionOverflow,
//     ErrDimensionMismatch (len(x) != Π cols).
//
// Complexity:
//   - Time O(Σᵢ rows(i)·cols(i)·Π_{j≠i} extent(j)), Space O(max working length).
func Multiply(factors []matrix.Matrix, x []float64, opts ...Option) ([]float64, error) {
	p, err := newPlan(factors)
	if err != nil {
		return nil, kronErrorf(opMultiply, err)
	}
	if len(x) != p.in {
		return nil, kronErrorf(opMultiply, lengthErrorf("x", len(x), p.in))
	}
	o := gatherOptions(opts...)

	if p.square {
		y := make([]float64, p.in)
		copy(y, x)
		if _, err = p.run(y, nil, o); err != nil {
			return nil, kronErrorf(opMultiply, err)
		}
		return y, nil
	}

	res, err := p.runScratch(x, o)
	if err != nil {
		return nil, kronErrorf(opMultiply, err)
	}
	y := make([]float64, p.out)
	copy(y, res)

	return y, nil
}

// MultiplyInto writes y = (Q₁ ⊗ … ⊗ Q_N)·x into dst.
//
// Contract: len(x) == Π cols; len(dst) == Π rows. dst may be x itself when every
// factor is square; partial overlap between dst and x is not allowed.
// dst is left untouched on any error.
func MultiplyInto(dst []float64, factors []matrix.Matrix, x []float64, opts ...Option) error {
	p, err := newPlan(factors)
	if err != nil {
		return kronErrorf(opMultiplyInto, err)
	}
	if len(x) != p.in {
		return kronErrorf(opMultiplyInto, lengthErrorf("x", len(x), p.in))
	}
	if len(dst) != p.out {
		return kronErrorf(opMultiplyInto, lengthErrorf("dst", len(dst), p.out))
	}
	o := gatherOptions(opts...)

	if p.square {
		copy(dst, x) // no-op when dst is x
		if _, err = p.run(dst, nil, o); err != nil {
			return kronErrorf(opMultiplyInto, err)
		}
		return nil
	}

	res, err := p.runScratch(x, o)
	if err != nil {
		return kronErrorf(opMultiplyInto, err)
	}
	copy(dst, res)

	return nil
}

// MultiplyInPlace overwrites buf with (Q₁ ⊗ … ⊗ Q_N)·buf.
// MAIN DESCRIPTION:
//   - The caller lends buf exclusively for the duration of the call.
//
// Implementation:
//   - Stage 1: validate factors; require Π cols == Π rows == len(buf).
//   - Stage 2: all-square lists rewrite buf fiber by fiber (no scratch);
//     rectangular factors with matching totals (e.g. 2×3 ⊗ 3×2) go through
//     scratch buffers and the result is copied back.
//
// Errors:
//   - Same as Multiply, plus ErrDimensionMismatch when Π cols != Π rows.
//     buf is untouched on any error.
func MultiplyInPlace(factors []matrix.Matrix, buf []float64, opts ...Option) error {
	p, err := newPlan(factors)
	if err != nil {
		return kronErrorf(opMultiplyInPlace, err)
	}
	if p.in != p.out {
		return kronErrorf(opMultiplyInPlace, lengthErrorf("output", p.out, p.in))
	}
	if len(buf) != p.in {
		return kronErrorf(opMultiplyInPlace, lengthErrorf("buf", len(buf), p.in))
	}
	o := gatherOptions(opts...)

	if p.square {
		if _, err = p.run(buf, nil, o); err != nil {
			return kronErrorf(opMultiplyInPlace, err)
		}
		return nil
	}

	res, err := p.runScratch(buf, o)
	if err != nil {
		return kronErrorf(opMultiplyInPlace, err)
	}
	copy(buf, res)

	return nil
}

// runScratch copies x into a scratch buffer and runs all passes with a second
// scratch buffer for rectangular factors. x is never written.
func (p *plan) runScratch(x []float64, o Options) ([]float64, error) {
	work := make([]float64, p.maxLen)
	spare := make([]float64, p.maxLen)
	copy(work, x)

	return p.run(work, spare, o)
}

// Dims reports the input length (Π cols) and output length (Π rows) of the
// Kronecker product of factors without touching any data.
func Dims(factors []matrix.Matrix) (in, out int, err error) {
	s, err := checkFactors(factors)
	if err != nil {
		return 0, 0, kronErrorf(opDims, err)
	}

	return s.in, s.out, nil
}

// Explicit forms Q₁ ⊗ … ⊗ Q_N as a dense matrix by folding matrix.Kron left to right.
//
// Notes:
//   - Memory is Π rows · Π cols; meant for small lists, reference checks and debugging.
func Explicit(factors []matrix.Matrix) (matrix.Matrix, error) {
	if _, err := checkFactors(factors); err != nil {
		return nil, kronErrorf(opExplicit, err)
	}
	acc := factors[0].Clone()
	var err error
	for i := 1; i < len(factors); i++ {
		if acc, err = matrix.Kron(acc, factors[i]); err != nil {
			return nil, kronErrorf(opExplicit, factorErrorf(i, err))
		}
	}

	return acc, nil
}
