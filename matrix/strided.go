// SPDX-License-Identifier: MIT

// Package matrix - StridedVec: a no-copy strided window over a flat []float64.
//
// Purpose:
//   - Address the fiber {data[off], data[off+stride], ..., data[off+(n-1)*stride]}
//     of a flat buffer without copying it.
//   - Keep the public surface safe: At/Set return errors instead of panicking.
//
// AI-Hints:
//   - Keep one StridedVec per worker and move it with Rebase; construction validates once.
//   - Gather/Scatter give the copy-in/copy-out form for kernels that want contiguous temps.
//
// Complexity quicksheet:
//   - NewStridedVec/Rebase/At/Set: O(1); Gather/Scatter: O(n).

package matrix

import "fmt"

const (
	ctxStrided = "StridedVec"
	ctxRebase  = "Rebase"
	ctxGather  = "Gather"
	ctxScatter = "Scatter"
)

// StridedVec is a non-owning strided view (shared storage).
// Writes through the view are visible in the underlying buffer.
type StridedVec struct {
	data   []float64 // underlying storage owner (caller's buffer)
	off    int       // index of element 0 in data
	n      int       // logical length
	stride int       // distance between consecutive elements (>0)
}

// NewStridedVec creates a view of n elements starting at offset, stride apart.
//
// Errors:
//   - ErrBadShape when n<=0, stride<=0, offset<0 or the last element falls past len(data).
//
// Complexity:
//   - Time O(1), Space O(1).
func NewStridedVec(data []float64, offset, n, stride int) (*StridedVec, error) {
	if err := checkWindow(len(data), offset, n, stride); err != nil {
		return nil, fmt.Errorf("%s(%d,%d,%d): %w", ctxStrided, offset, n, stride, err)
	}

	return &StridedVec{data: data, off: offset, n: n, stride: stride}, nil
}

// checkWindow validates a strided window against a buffer of length size.
func checkWindow(size, offset, n, stride int) error {
	if n <= 0 || stride <= 0 || offset < 0 {
		return ErrBadShape
	}
	// Last addressed index must be inside the buffer.
	if offset >= size || (n-1) > (size-1-offset)/stride {
		return ErrBadShape
	}

	return nil
}

// Len returns the logical length of the view.
func (v *StridedVec) Len() int { return v.n }

// Stride returns the distance between consecutive elements.
func (v *StridedVec) Stride() int { return v.stride }

// Offset returns the index of element 0 in the underlying buffer.
func (v *StridedVec) Offset() int { return v.off }

// Rebase moves the view to a new starting offset, keeping length and stride.
// The view is left unchanged on error.
func (v *StridedVec) Rebase(offset int) error {
	if err := checkWindow(len(v.data), offset, v.n, v.stride); err != nil {
		return fmt.Errorf("%s.%s(%d): %w", ctxStrided, ctxRebase, offset, err)
	}
	v.off = offset

	return nil
}

// At reads element i of the view or returns ErrOutOfRange.
// Complexity: O(1).
func (v *StridedVec) At(i int) (float64, error) {
	if i < 0 || i >= v.n {
		return 0, fmt.Errorf("%s.At(%d): %w", ctxStrided, i, ErrOutOfRange)
	}

	return v.data[v.off+i*v.stride], nil
}

// Set writes element i of the view (write-through) or returns ErrOutOfRange.
// Complexity: O(1).
func (v *StridedVec) Set(i int, val float64) error {
	if i < 0 || i >= v.n {
		return fmt.Errorf("%s.Set(%d): %w", ctxStrided, i, ErrOutOfRange)
	}
	v.data[v.off+i*v.stride] = val

	return nil
}

// Gather copies the view into dst (len(dst) must equal Len()).
// Complexity: O(n).
func (v *StridedVec) Gather(dst []float64) error {
	if len(dst) != v.n {
		return fmt.Errorf("%s.%s: %w", ctxStrided, ctxGather, ErrDimensionMismatch)
	}
	var i, p int
	for i, p = 0, v.off; i < v.n; i, p = i+1, p+v.stride {
		dst[i] = v.data[p]
	}

	return nil
}

// Scatter copies src into the view positions (len(src) must equal Len()).
// Complexity: O(n).
func (v *StridedVec) Scatter(src []float64) error {
	if len(src) != v.n {
		return fmt.Errorf("%s.%s: %w", ctxStrided, ctxScatter, ErrDimensionMismatch)
	}
	var i, p int
	for i, p = 0, v.off; i < v.n; i, p = i+1, p+v.stride {
		v.data[p] = src[i]
	}

	return nil
}
