// SPDX-License-Identifier: MIT
// Package echelon: sentinel error set.
// Engine functions return these sentinels wrapped with an operation tag
// (engineErrorf); callers match them with errors.Is. Storage-level failures
// (nil matrix, bad shape, NaN/Inf) surface as the matrix package sentinels.

package echelon

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/echelon/matrix"
)

var (
	// ErrDegeneratePivot is returned when a row operation is asked to divide by
	// a zero pivot entry. Nothing is written to the matrix in that case.
	ErrDegeneratePivot = errors.New("echelon: degenerate (zero) pivot")

	// ErrInconsistentSystem reports an echelon row of the form 0 = c, c ≠ 0.
	// Returned by Reduce, Solve and SteadyState; InconsistentSystem reports
	// the same condition as a boolean instead.
	ErrInconsistentSystem = errors.New("echelon: inconsistent system")

	// ErrUnderdetermined reports free variables where a unique solution was required.
	ErrUnderdetermined = errors.New("echelon: system has free variables")

	// ErrRelativeError reports that a relative difference is undefined
	// (0/0, NaN/Inf operands, or overflow). See RelativeError.
	ErrRelativeError = errors.New("echelon: relative error undefined")

	// ErrNotStochastic reports a transition matrix whose columns are not
	// non-negative and summing to 1 within tolerance.
	ErrNotStochastic = errors.New("echelon: matrix is not column-stochastic")
)

// ErrIndexOutOfBounds is the storage sentinel for bad row/column indices,
// re-exported so engine callers need a single import.
var ErrIndexOutOfBounds = matrix.ErrOutOfRange

// Operation tags for unified error wrapping.
const (
	opSwapRows      = "SwapRows"
	opRowReduce     = "RowReduce"
	opNormalizeRow  = "NormalizeRow"
	opForward       = "ForwardElimination"
	opInconsistent  = "InconsistentSystem"
	opBacksub       = "Backsubstitution"
	opReduce        = "Reduce"
	opSolve         = "Solve"
	opPivotColumns  = "PivotColumns"
	opRank          = "Rank"
	opIsEchelon     = "IsEchelon"
	opIsReduced     = "IsReduced"
	opSteadyState   = "SteadyState"
	opRelativeError = "RelativeError"
)

// engineErrorf wraps err with an operation tag, preserving it for errors.Is/As.
func engineErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
