// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Avoid logic duplication; each facade delegates to the canonical implementation.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
//
// AI-Hints: Identity factors make kron.Multiply act on a single mode.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// Product is a discoverable alias of Mul.
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// KronProduct is a discoverable alias of Kron.
func KronProduct(a, b Matrix) (Matrix, error) { return Kron(a, b) }

// MatVecMul is a discoverable alias of MatVec.
func MatVecMul(m Matrix, x []float64) ([]float64, error) { return MatVec(m, x) }
