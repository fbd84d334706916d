// SPDX-License-Identifier: MIT

package kron

// Test bridge for kron_test.
//
// Provided Surface:
//   - OptionsSnapshot / GatherOptionsSnapshot_TestOnly: read-only view of the effective Options.
//   - Panic message constants, so tests match on stable strings.
//   - PlanShape_TestOnly: the dimension summary computed by checkFactors.

import "github.com/katalvlaran/kronmv/matrix"

// Panic message exports.
const (
	PanicStrategyInvalid_TestOnly  = panicStrategyInvalid
	PanicWorkersInvalid_TestOnly   = panicWorkersInvalid
	PanicMinFibersInvalid_TestOnly = panicMinFibersInvalid
)

// OptionsSnapshot mirrors the unexported Options fields.
type OptionsSnapshot struct {
	Strategy          Strategy
	Workers           int
	MinParallelFibers int
}

// GatherOptionsSnapshot_TestOnly applies opts on top of the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		Strategy:          o.strategy,
		Workers:           o.workers,
		MinParallelFibers: o.minParallelFibers,
	}
}

// PlanShape_TestOnly returns (in, out, maxLen, square) for factors.
func PlanShape_TestOnly(factors []matrix.Matrix) (int, int, int, bool, error) {
	s, err := checkFactors(factors)

	return s.in, s.out, s.maxLen, s.square, err
}

// MulChecked_TestOnly exposes the overflow-checked product.
var MulChecked_TestOnly = mulChecked
