// SPDX-License-Identifier: MIT
// Package kron_test contains test helpers
//
// Purpose:
//   • Deterministic factor and vector fixtures.
//   • A naive reference: form the full product with Explicit, then MatVec.
//   • Foreign Matrix implementations to drive validation and fallback paths.

package kron_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/kronmv/kron"
	"github.com/katalvlaran/kronmv/matrix"
)

// tol is the absolute tolerance used when the reference sums in a different order.
const tol = 1e-12

// hide WRAPS any Matrix to hide its concrete type (forces DenseOf to copy via At).
type hide struct{ matrix.Matrix }

// shapeOnly reports an arbitrary shape and holds no data.
// Only validation paths may touch it.
type shapeOnly struct{ r, c int }

func (s shapeOnly) Rows() int { return s.r }
func (s shapeOnly) Cols() int { return s.c }
func (s shapeOnly) At(int, int) (float64, error) { return 0, nil }
func (s shapeOnly) Set(int, int, float64) error { return nil }
func (s shapeOnly) Clone() matrix.Matrix { return s }

// errBrokenRead is returned by brokenAt.
var errBrokenRead = errors.New("broken read")

// brokenAt is a well-shaped matrix whose reads always fail.
type brokenAt struct{ shapeOnly }

func (b brokenAt) At(int, int) (float64, error) { return 0, errBrokenRead }

// mustDense BUILDS r×c *Dense from row-major vals or fails the test.
func mustDense(t testing.TB, r, c int, vals ...float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFrom(r, c, vals)
	if err != nil {
		t.Fatalf("NewDenseFrom(%d,%d): %v", r, c, err)
	}

	return d
}

// identity RETURNS I_n or fails the test.
func identity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return d
}

// randDense RETURNS r×c with deterministic U(-1,1) entries.
func randDense(t testing.TB, rng *rand.Rand, r, c int) *matrix.Dense {
	t.Helper()
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
	}

	return mustDense(t, r, c, vals...)
}

// randVec RETURNS n deterministic U(-1,1) values.
func randVec(rng *rand.Rand, n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.Float64()*2 - 1
	}

	return v
}

// randFactors BUILDS one random factor per shape pair {rows, cols}.
func randFactors(t testing.TB, rng *rand.Rand, shapes [][2]int) []matrix.Matrix {
	t.Helper()
	fs := make([]matrix.Matrix, len(shapes))
	for i, s := range shapes {
		fs[i] = randDense(t, rng, s[0], s[1])
	}

	return fs
}

// naive COMPUTES (Q₁⊗…⊗Q_N)·x by forming the full product.
func naive(t testing.TB, factors []matrix.Matrix, x []float64) []float64 {
	t.Helper()
	K, err := kron.Explicit(factors)
	if err != nil {
		t.Fatalf("Explicit: %v", err)
	}
	y, err := matrix.MatVec(K, x)
	if err != nil {
		t.Fatalf("MatVec: %v", err)
	}

	return y
}

// requireClose FAILS unless a and b agree elementwise within tol.
func requireClose(t testing.TB, want, got []float64) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("len: want %d, got %d", len(want), len(got))
	}
	for i := range want {
		d := want[i] - got[i]
		if d < -tol || d > tol {
			t.Fatalf("[%d]: want %.17g, got %.17g", i, want[i], got[i])
		}
	}
}

// clone RETURNS a copy of v.
func clone(v []float64) []float64 {
	c := make([]float64, len(v))
	copy(c, v)

	return c
}
