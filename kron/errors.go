// SPDX-License-Identifier: MIT
// Package kron: sentinel error set.
// Every message is prefixed with "kron: ..."; callers match with errors.Is.
// Context (operation, factor index) is added through kronErrorf.

package kron

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyFactorList is returned when no factors are given. An empty
	// product is not treated as the identity.
	ErrEmptyFactorList = errors.New("kron: empty factor list")

	// ErrNilFactor indicates a nil matrix inside the factor list.
	ErrNilFactor = errors.New("kron: nil factor")

	// ErrBadFactorShape indicates a factor reporting rows<=0 or cols<=0.
	ErrBadFactorShape = errors.New("kron: factor shape must be positive")

	// ErrDimensionOverflow indicates that Π cols, Π rows or an intermediate
	// working length does not fit in an int.
	ErrDimensionOverflow = errors.New("kron: dimension overflows int")

	// ErrDimensionMismatch indicates len(x) != Π cols, a destination whose
	// length is not Π rows, or an in-place call with Π cols != Π rows.
	ErrDimensionMismatch = errors.New("kron: dimension mismatch")
)

// Operation tags.
const (
	opMultiply        = "Multiply"
	opMultiplyInto    = "MultiplyInto"
	opMultiplyInPlace = "MultiplyInPlace"
	opDims            = "Dims"
	opExplicit        = "Explicit"
)

// kronErrorf wraps err with an operation tag, preserving it for errors.Is.
func kronErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// factorErrorf attaches the offending factor index.
func factorErrorf(i int, err error) error {
	return fmt.Errorf("factor %d: %w", i, err)
}

// lengthErrorf reports a length contract violation with both values.
func lengthErrorf(what string, got, want int) error {
	return fmt.Errorf("len(%s)=%d, want %d: %w", what, got, want, ErrDimensionMismatch)
}
