// SPDX-License-Identifier: MIT

// Package echelon: functional configuration for the elimination engine.
// This file defines:
//   - PivotStrategy and InconsistencyMode enums,
//   - documented defaults (constants),
//   - WithX constructors with strict validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Defaults:
//   - leftmost-nonzero pivoting, last-row-only inconsistency test,
//     snap-to-zero tolerances 1e-8 (absolute) and 1e-5 (relative).
//
// Notes:
//   - No global state; every entry point resolves its own Options value.
//   - Panic only on invalid parameters (programmer error).
package echelon

import (
	"fmt"

	"github.com/katalvlaran/echelon/matrix"
)

// PivotStrategy selects how ForwardElimination picks the pivot row.
type PivotStrategy int

const (
	// LeftmostNonzero takes the first nonzero entry found in the leftmost
	// nonzero column (row-major scan). No magnitude comparison.
	LeftmostNonzero PivotStrategy = iota

	// PartialPivot keeps the leftmost nonzero column but takes the row with
	// the largest |value| in it (ties → smallest row). Better conditioned;
	// changes intermediate echelon forms but not the reduced form.
	PartialPivot
)

// String implements fmt.Stringer.
func (s PivotStrategy) String() string {
	switch s {
	case LeftmostNonzero:
		return "leftmost-nonzero"
	case PartialPivot:
		return "partial-pivot"
	default:
		return fmt.Sprintf("PivotStrategy(%d)", int(s))
	}
}

// InconsistencyMode selects which rows InconsistentSystem inspects.
type InconsistencyMode int

const (
	// LastRowOnly inspects only the bottom row. Misses a 0 = c row that
	// is followed by all-zero rows.
	LastRowOnly InconsistencyMode = iota

	// FullScan inspects every row for "all coefficients zero, constant nonzero".
	FullScan
)

// String implements fmt.Stringer.
func (m InconsistencyMode) String() string {
	switch m {
	case LastRowOnly:
		return "last-row-only"
	case FullScan:
		return "full-scan"
	default:
		return fmt.Sprintf("InconsistencyMode(%d)", int(m))
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultAbsTol is the absolute tolerance of the snap-to-zero test in RowReduce.
	DefaultAbsTol = 1e-8

	// DefaultRelTol is the relative tolerance of the snap-to-zero test in RowReduce.
	DefaultRelTol = 1e-5

	// DefaultPivotStrategy is the pivot rule used when none is given.
	DefaultPivotStrategy = LeftmostNonzero

	// DefaultInconsistencyMode is the inconsistency test used when none is given.
	DefaultInconsistencyMode = LastRowOnly
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicAbsTolInvalid = "echelon: WithAbsTol: tolerance must be finite, non-negative"
	panicRelTolInvalid = "echelon: WithRelTol: tolerance must be finite, non-negative"
	panicPivotInvalid  = "echelon: WithPivotStrategy: unknown strategy"
	panicModeInvalid   = "echelon: WithInconsistencyMode: unknown mode"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	absTol float64           // DefaultAbsTol
	relTol float64           // DefaultRelTol
	pivot  PivotStrategy     // DefaultPivotStrategy
	mode   InconsistencyMode // DefaultInconsistencyMode
}

// WithAbsTol sets the absolute snap-to-zero tolerance.
// Panics when tol is NaN, ±Inf or negative.
//
// AI-Hints:
//   - WithAbsTol(0) together with WithRelTol(0) disables snapping: only exact
//     cancellations produce zeros.
func WithAbsTol(tol float64) Option {
	if matrix.ValidateFinite(tol) != nil || tol < 0 {
		panic(panicAbsTolInvalid)
	}

	return func(o *Options) { o.absTol = tol }
}

// WithRelTol sets the relative snap-to-zero tolerance.
// Panics when tol is NaN, ±Inf or negative.
func WithRelTol(tol float64) Option {
	if matrix.ValidateFinite(tol) != nil || tol < 0 {
		panic(panicRelTolInvalid)
	}

	return func(o *Options) { o.relTol = tol }
}

// WithPivotStrategy selects the pivot rule used by ForwardElimination.
// Panics on an unknown strategy value.
func WithPivotStrategy(s PivotStrategy) Option {
	if s != LeftmostNonzero && s != PartialPivot {
		panic(panicPivotInvalid)
	}

	return func(o *Options) { o.pivot = s }
}

// WithInconsistencyMode selects the rows inspected by InconsistentSystem.
// Panics on an unknown mode value.
func WithInconsistencyMode(m InconsistencyMode) Option {
	if m != LastRowOnly && m != FullScan {
		panic(panicModeInvalid)
	}

	return func(o *Options) { o.mode = m }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		absTol: DefaultAbsTol,
		relTol: DefaultRelTol,
		pivot:  DefaultPivotStrategy,
		mode:   DefaultInconsistencyMode,
	}
}

// gatherOptions applies user setters on top of defaults (last-writer-wins).
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		set(&o)
	}

	return o
}
