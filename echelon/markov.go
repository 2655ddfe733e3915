// SPDX-License-Identifier: MIT

package echelon

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/echelon/matrix"
)

// SteadyState returns the stationary distribution x of a column-stochastic
// transition matrix P (P·x = x, Σx = 1).
//
// Implementation:
//   - Stage 1: validate P (square, entries ≥ 0, columns sum to 1 within tolerance).
//   - Stage 2: reduce B = P − I, read as an augmented system whose last column
//     is the constant term for x_n = 1.
//   - Stage 3: x = (−R[0][n−1], …, −R[n−2][n−1], 1), normalized to sum 1.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (non-square).
//   - ErrNotStochastic when Stage 1 fails.
//   - ErrUnderdetermined when the chain has no unique stationary distribution
//     with x_n ≠ 0: several closed classes, or a transient last state
//     (P=[[1,0.5],[0,0.5]] has x=[1,0], which x_n = 1 cannot reach).
//
// AI-Hints:
//   - Multiply the result by a population size to get expected head counts.
func SteadyState(p matrix.Matrix, opts ...Option) ([]float64, error) {
	if err := matrix.ValidateSquareNonNil(p); err != nil {
		return nil, engineErrorf(opSteadyState, err)
	}
	o := gatherOptions(opts...)
	if err := validateStochastic(p, o); err != nil {
		return nil, engineErrorf(opSteadyState, err)
	}

	I, err := matrix.IdentityLike(p)
	if err != nil {
		return nil, engineErrorf(opSteadyState, err)
	}
	b, err := matrix.Sub(p, I)
	if err != nil {
		return nil, engineErrorf(opSteadyState, err)
	}
	o.mode = FullScan
	r, err := reduce(b, o)
	if errors.Is(err, ErrInconsistentSystem) {
		// a pivot in the x_n column forces x_n = 0
		return nil, engineErrorf(opSteadyState,
			fmt.Errorf("last state transient (x_n = 0): %w", ErrUnderdetermined))
	}
	if err != nil {
		return nil, engineErrorf(opSteadyState, err)
	}

	n := p.Rows()
	pivots, err := pivotsOf(r)
	if err != nil {
		return nil, engineErrorf(opSteadyState, err)
	}
	if len(pivots) != n-1 {
		return nil, engineErrorf(opSteadyState,
			fmt.Errorf("rank %d, want %d: %w", len(pivots), n-1, ErrUnderdetermined))
	}
	for k, pv := range pivots {
		if pv.Col != k {
			return nil, engineErrorf(opSteadyState,
				fmt.Errorf("free variable at column %d: %w", k, ErrUnderdetermined))
		}
	}

	x := make([]float64, n)
	for k := 0; k < n-1; k++ {
		v, err := r.At(k, n-1)
		if err != nil {
			return nil, engineErrorf(opSteadyState, err)
		}
		x[k] = -v
	}
	x[n-1] = 1
	sum := floats.Sum(x)
	if sum == 0 {
		return nil, engineErrorf(opSteadyState, ErrUnderdetermined)
	}
	floats.Scale(1/sum, x)
	log.Debugw("steady state", "states", n, "x", x)

	return x, nil
}

// validateStochastic checks entries ≥ 0 and column sums ≈ 1.
func validateStochastic(p matrix.Matrix, o Options) error {
	n := p.Rows()
	col := make([]float64, n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			v, err := p.At(i, j)
			if err != nil {
				return err
			}
			if v < 0 {
				return fmt.Errorf("entry (%d,%d) = %g: %w", i, j, v, ErrNotStochastic)
			}
			col[i] = v
		}
		if s := floats.Sum(col); !IsClose(s, 1, o.absTol, o.relTol) {
			return fmt.Errorf("column %d sums to %g: %w", j, s, ErrNotStochastic)
		}
	}

	return nil
}
