// SPDX-License-Identifier: MIT

// Package kron - one pass: apply a single factor to every fiber of its mode.
//
// Layout inside pass i (q = Qᵢ, r×c):
//   - src is nleft blocks of c*nright elements; dst is nleft blocks of r*nright.
//   - Fiber (k, j), 0≤k<nleft, 0≤j<nright, is src[k*c*nright + j + t*nright] for t<c
//     and lands at dst[k*r*nright + j + s*nright] for s<r.
//   - Fibers are numbered f = k*nright + j; any subset can run on any goroutine.

package kron

import (
	"github.com/katalvlaran/kronmv/matrix"
	"golang.org/x/sync/errgroup"
)

// fiberWorker holds the per-goroutine state for one pass.
type fiberWorker struct {
	q        *matrix.Dense
	strategy Strategy
	in, out  []float64          // copy temps: len cols / len rows (out doubles as strided staging)
	src, dst *matrix.StridedVec // views moved with Rebase for every fiber
}

// newFiberWorker builds views anchored at the first fiber of src and dst.
func newFiberWorker(q *matrix.Dense, src, dst []float64, nright int, s Strategy) (*fiberWorker, error) {
	rows, cols := q.Shape()
	srcView, err := matrix.NewStridedVec(src, 0, cols, nright)
	if err != nil {
		return nil, err
	}
	dstView, err := matrix.NewStridedVec(dst, 0, rows, nright)
	if err != nil {
		return nil, err
	}
	w := &fiberWorker{
		q:        q,
		strategy: s,
		out:      make([]float64, rows),
		src:      srcView,
		dst:      dstView,
	}
	if s == StrategyCopy {
		w.in = make([]float64, cols)
	}

	return w, nil
}

// apply multiplies fibers [from, to) of the pass.
func (w *fiberWorker) apply(from, to, nright int) error {
	rows, cols := w.q.Shape()
	srcBlock, dstBlock := cols*nright, rows*nright
	var k, j int
	for f := from; f < to; f++ {
		k, j = f/nright, f%nright
		if err := w.src.Rebase(k*srcBlock + j); err != nil {
			return err
		}
		if err := w.dst.Rebase(k*dstBlock + j); err != nil {
			return err
		}
		if err := w.fiber(); err != nil {
			return err
		}
	}

	return nil
}

// fiber multiplies the fiber currently addressed by w.src into w.dst.
func (w *fiberWorker) fiber() error {
	if w.strategy == StrategyStrided {
		return matrix.MatVecStrided(w.dst, w.q, w.src, w.out)
	}
	if err := w.src.Gather(w.in); err != nil {
		return err
	}
	if err := matrix.MatVecInto(w.out, w.q, w.in); err != nil {
		return err
	}

	return w.dst.Scatter(w.out)
}

// applyMode runs one pass over all nleft*nright fibers.
// MAIN DESCRIPTION:
//   - Sequential when Workers==1 or the pass is smaller than MinParallelFibers;
//     otherwise fibers are split into contiguous chunks, one errgroup task each.
//
// Behavior highlights:
//   - src and dst may be the same slice when q is square: each fiber reads and
//     writes only its own positions and stages the result before writing.
//   - Chunks never share positions, so workers need no locking.
//
// Complexity:
//   - Time O(nleft*nright*rows*cols), Space O(workers*(rows+cols)).
func applyMode(q *matrix.Dense, src, dst []float64, nleft, nright int, o Options) error {
	fibers := nleft * nright
	workers := o.workers
	if workers > fibers {
		workers = fibers
	}
	if workers <= 1 || fibers < o.minParallelFibers {
		w, err := newFiberWorker(q, src, dst, nright, o.strategy)
		if err != nil {
			return err
		}
		return w.apply(0, fibers, nright)
	}

	chunk := (fibers + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for from := 0; from < fibers; from += chunk {
		to := from + chunk
		if to > fibers {
			to = fibers
		}
		g.Go(func() error {
			w, err := newFiberWorker(q, src, dst, nright, o.strategy)
			if err != nil {
				return err
			}
			return w.apply(from, to, nright)
		})
	}

	return g.Wait()
}
