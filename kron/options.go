// SPDX-License-Identifier: MIT

// Package kron: functional configuration for the kernel.
// This file defines:
//   - Strategy (how a single fiber is multiplied),
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state; the result never depends on
//     Workers because fibers are independent and each is summed in a fixed order.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package kron

import "fmt"

// Strategy selects how each fiber is fed to the small matrix-vector product.
type Strategy int

const (
	// StrategyCopy gathers the fiber into a contiguous temp, multiplies into a
	// second temp and scatters the result back.
	StrategyCopy Strategy = iota

	// StrategyStrided multiplies straight from a zero-copy strided view of the
	// working buffer; only the output is staged.
	StrategyStrided
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case StrategyCopy:
		return "copy"
	case StrategyStrided:
		return "strided"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultStrategy is the copy-in/copy-out fiber strategy.
	DefaultStrategy = StrategyCopy

	// DefaultWorkers runs every pass on the calling goroutine.
	DefaultWorkers = 1

	// DefaultMinParallelFibers is the fiber count below which a pass stays
	// sequential even when Workers > 1.
	DefaultMinParallelFibers = 1024
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicStrategyInvalid  = "kron: WithStrategy: unknown strategy"
	panicWorkersInvalid   = "kron: WithWorkers: n must be >= 1"
	panicMinFibersInvalid = "kron: WithMinParallelFibers: n must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	strategy          Strategy // DefaultStrategy
	workers           int      // >= 1; DefaultWorkers
	minParallelFibers int      // >= 1; DefaultMinParallelFibers
}

// WithStrategy selects the fiber strategy.
// Panics with a stable message on an unknown Strategy value.
func WithStrategy(s Strategy) Option {
	if s != StrategyCopy && s != StrategyStrided {
		panic(panicStrategyInvalid)
	}

	return func(o *Options) { o.strategy = s }
}

// WithWorkers spreads the fibers of each pass over up to n goroutines.
//
// Notes:
//   - n=1 (default) keeps the kernel single-threaded with no goroutines.
//   - Output is identical for every n.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithMinParallelFibers sets the smallest per-pass fiber count worth
// splitting across workers. Passes with fewer fibers run sequentially.
func WithMinParallelFibers(n int) Option {
	if n < 1 {
		panic(panicMinFibersInvalid)
	}

	return func(o *Options) { o.minParallelFibers = n }
}

// gatherOptions applies user-provided setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		strategy:          DefaultStrategy,
		workers:           DefaultWorkers,
		minParallelFibers: DefaultMinParallelFibers,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
