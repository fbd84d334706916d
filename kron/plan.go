// SPDX-License-Identifier: MIT

// Package kron - factor validation and the pass plan.
//
// Purpose:
//   - Validate the factor list once, before any caller buffer is touched.
//   - Derive Π cols, Π rows and the largest intermediate working length.
//   - Snapshot every factor as *matrix.Dense so passes never call At and cannot fail midway.

package kron

import "github.com/katalvlaran/kronmv/matrix"

// shape is the dimension summary of a validated factor list.
type shape struct {
	in     int  // Π cols(i): required input length
	out    int  // Π rows(i): output length
	maxLen int  // largest working length over all passes (>= in, out)
	square bool // every factor has rows == cols
}

// plan is a validated factor list ready to run.
type plan struct {
	shape
	factors []*matrix.Dense // read-only snapshots, same order as the caller's list
}

// mulChecked returns a*b for positive a, b, or false on int overflow.
func mulChecked(a, b int) (int, bool) {
	p := a * b
	if a != 0 && p/a != b {
		return 0, false
	}

	return p, true
}

// checkFactors validates the list and computes its shape.
// MAIN DESCRIPTION:
//   - Error priority: empty list → nil factor → bad shape → overflow.
//
// Implementation:
//   - Stage 1: reject N == 0 and nil/typed-nil factors; reject non-positive shapes.
//   - Stage 2: accumulate Π cols and Π rows with overflow checks.
//   - Stage 3: walk passes last→first; the working length before pass i is
//     Π_{j<=i} cols(j) · Π_{j>i} rows(j); track the maximum.
//
// Complexity:
//   - Time O(N), Space O(N).
func checkFactors(factors []matrix.Matrix) (shape, error) {
	n := len(factors)
	if n == 0 {
		return shape{}, ErrEmptyFactorList
	}

	rows := make([]int, n)
	cols := make([]int, n)
	s := shape{in: 1, out: 1, square: true}
	var ok bool
	for i, f := range factors {
		if f == nil {
			return shape{}, factorErrorf(i, ErrNilFactor)
		}
		if d, isDense := f.(*matrix.Dense); isDense && d == nil {
			return shape{}, factorErrorf(i, ErrNilFactor)
		}
		rows[i], cols[i] = f.Rows(), f.Cols()
		if rows[i] <= 0 || cols[i] <= 0 {
			return shape{}, factorErrorf(i, ErrBadFactorShape)
		}
		if rows[i] != cols[i] {
			s.square = false
		}
		if s.in, ok = mulChecked(s.in, cols[i]); !ok {
			return shape{}, ErrDimensionOverflow
		}
		if s.out, ok = mulChecked(s.out, rows[i]); !ok {
			return shape{}, ErrDimensionOverflow
		}
	}

	// prefix[i] = Π_{j<i} cols(j); suffix = Π_{j>=i} rows(j) built from the back.
	prefix := make([]int, n+1)
	prefix[0] = 1
	for i := 0; i < n; i++ {
		prefix[i+1] = prefix[i] * cols[i] // bounded by s.in, already checked
	}
	s.maxLen = s.in
	suffix := 1
	var length int
	for i := n - 1; i >= 0; i-- {
		suffix *= rows[i] // bounded by s.out
		// Length after pass i: modes < i still at cols, modes >= i at rows.
		if length, ok = mulChecked(prefix[i], suffix); !ok {
			return shape{}, ErrDimensionOverflow
		}
		if length > s.maxLen {
			s.maxLen = length
		}
	}

	return s, nil
}

// newPlan validates factors and snapshots them.
func newPlan(factors []matrix.Matrix) (*plan, error) {
	s, err := checkFactors(factors)
	if err != nil {
		return nil, err
	}
	p := &plan{shape: s, factors: make([]*matrix.Dense, len(factors))}
	for i, f := range factors {
		if p.factors[i], err = matrix.DenseOf(f); err != nil {
			return nil, factorErrorf(i, err)
		}
	}

	return p, nil
}

// run applies every factor, last to first, starting from work[:p.in].
// MAIN DESCRIPTION:
//   - Mode-wise contraction over a flat buffer.
//
// Implementation:
//   - nleft starts at Π cols and is divided by cols(i) at the top of pass i,
//     so inside pass i it equals Π_{j<i} cols(j) (1 for the first factor; no clamping).
//   - nright is Π_{j>i} rows(j): 1 before the last factor, multiplied by rows(i) after pass i.
//   - Square factors rewrite their fibers in place; a rectangular factor writes
//     into spare and the two buffers swap roles.
//
// Inputs:
//   - work: holds the input in work[:p.in]; cap >= p.maxLen unless p.square.
//   - spare: scratch with cap >= p.maxLen; unused (may be nil) when p.square.
//
// Returns:
//   - the slice (aliasing work or spare) holding the p.out results.
//
// Complexity:
//   - Time O(Σᵢ rows(i)·cols(i)·len/cols(i)), Space O(maxRows) temps per worker.
func (p *plan) run(work, spare []float64, o Options) ([]float64, error) {
	nleft := p.in
	nright := 1
	length := p.in
	var rows, cols, next int
	var src, dst []float64
	for i := len(p.factors) - 1; i >= 0; i-- {
		q := p.factors[i]
		rows, cols = q.Shape()
		nleft /= cols

		next = nleft * rows * nright
		src = work[:length]
		dst = src
		if rows != cols {
			dst = spare[:next]
		}
		if err := applyMode(q, src, dst, nleft, nright, o); err != nil {
			return nil, factorErrorf(i, err)
		}
		if rows != cols {
			work, spare = spare, work
		}
		length = next
		nright *= rows
	}

	return work[:length], nil
}
