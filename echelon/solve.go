// SPDX-License-Identifier: MIT
// Package echelon - pipeline helpers built on the three passes.
//
// Purpose:
//   - Reduce: ForwardElimination → InconsistentSystem → Backsubstitution.
//   - Solve: unique solution of A·x = b via the augmented matrix [A | b].
//   - PivotColumns / Rank: pivot structure of echelon-form matrices.
//   - IsEchelon / IsReduced: invariant checks used by tests and callers
//     that receive matrices from elsewhere.

package echelon

import (
	"fmt"

	"github.com/katalvlaran/echelon/matrix"
)

// Reduce runs the full pipeline on an augmented matrix and returns its
// reduced row-echelon form. m is not mutated.
//
// Errors:
//   - ErrInconsistentSystem when the configured InconsistencyMode flags the
//     echelon form.
//   - matrix.ErrNilMatrix / matrix.ErrNaNInf from the working copy.
func Reduce(m matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	out, err := reduce(m, gatherOptions(opts...))
	if err != nil {
		return nil, engineErrorf(opReduce, err)
	}

	return out, nil
}

func reduce(m matrix.Matrix, o Options) (*matrix.Dense, error) {
	work, err := workingCopy(m)
	if err != nil {
		return nil, err
	}
	if err = forwardInPlace(work, o); err != nil {
		return nil, err
	}

	var bad bool
	if o.mode == FullScan {
		bad, err = anyRowInconsistent(work)
	} else {
		bad, err = lastRowInconsistent(work)
	}
	if err != nil {
		return nil, err
	}
	if bad {
		return nil, ErrInconsistentSystem
	}
	if err = backsubInPlace(work, o); err != nil {
		return nil, err
	}

	return work, nil
}

// Solve returns the unique x with A·x = b.
//
// The consistency test always runs in FullScan mode here, whatever the
// options say: a solver must not miss a 0 = c row above trailing zero rows.
//
// Errors:
//   - matrix.ErrNilMatrix (A or b nil), matrix.ErrDimensionMismatch (len(b) != Rows(A)).
//   - ErrInconsistentSystem when no solution exists.
//   - ErrUnderdetermined when some variable is free.
func Solve(a matrix.Matrix, b []float64, opts ...Option) ([]float64, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, engineErrorf(opSolve, err)
	}
	if err := matrix.ValidateVecLen(b, a.Rows()); err != nil {
		return nil, engineErrorf(opSolve, err)
	}

	rows, cols := a.Rows(), a.Cols()
	aug, err := matrix.NewDense(rows, cols+1)
	if err != nil {
		return nil, engineErrorf(opSolve, err)
	}
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, engineErrorf(opSolve, err)
			}
			if err = aug.Set(i, j, v); err != nil {
				return nil, engineErrorf(opSolve, err)
			}
		}
		if err = aug.Set(i, cols, b[i]); err != nil {
			return nil, engineErrorf(opSolve, err)
		}
	}

	o := gatherOptions(opts...)
	o.mode = FullScan
	r, err := reduce(aug, o)
	if err != nil {
		return nil, engineErrorf(opSolve, err)
	}

	pivots, err := pivotsOf(r)
	if err != nil {
		return nil, engineErrorf(opSolve, err)
	}
	if len(pivots) < cols {
		return nil, engineErrorf(opSolve,
			fmt.Errorf("rank %d < %d unknowns: %w", len(pivots), cols, ErrUnderdetermined))
	}
	x := make([]float64, cols)
	for _, p := range pivots {
		if x[p.Col], err = r.At(p.Row, cols); err != nil {
			return nil, engineErrorf(opSolve, err)
		}
	}

	return x, nil
}

// PivotColumns returns the leading nonzero entry of every nonzero row, in row
// order. Meaningful for echelon or reduced input; m is not mutated.
// Errors: matrix.ErrNilMatrix.
func PivotColumns(m matrix.Matrix) ([]Pivot, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, engineErrorf(opPivotColumns, err)
	}
	out := make([]Pivot, 0, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		row, err := readRow(m, i)
		if err != nil {
			return nil, engineErrorf(opPivotColumns, err)
		}
		if k := firstNonzero(row); k >= 0 {
			out = append(out, Pivot{Row: i, Col: k})
		}
	}

	return out, nil
}

// pivotsOf is PivotColumns on a validated *matrix.Dense.
func pivotsOf(d *matrix.Dense) ([]Pivot, error) {
	out := make([]Pivot, 0, d.Rows())
	for i := 0; i < d.Rows(); i++ {
		row, err := d.RowView(i)
		if err != nil {
			return nil, err
		}
		if k := firstNonzero(row); k >= 0 {
			out = append(out, Pivot{Row: i, Col: k})
		}
	}

	return out, nil
}

// Rank returns the number of pivots of m after forward elimination.
// All columns count, including a constants column.
func Rank(m matrix.Matrix, opts ...Option) (int, error) {
	e, err := ForwardElimination(m, opts...)
	if err != nil {
		return 0, engineErrorf(opRank, err)
	}

	pivots, err := pivotsOf(e)
	if err != nil {
		return 0, engineErrorf(opRank, err)
	}

	return len(pivots), nil
}

// IsEchelon reports whether pivot columns strictly increase with the row
// index and every all-zero row sits below every nonzero row.
// Errors: matrix.ErrNilMatrix.
func IsEchelon(m matrix.Matrix) (bool, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return false, engineErrorf(opIsEchelon, err)
	}
	prev := -1
	seenZero := false
	for i := 0; i < m.Rows(); i++ {
		row, err := readRow(m, i)
		if err != nil {
			return false, engineErrorf(opIsEchelon, err)
		}
		k := firstNonzero(row)
		if k < 0 {
			seenZero = true
			continue
		}
		if seenZero || k <= prev {
			return false, nil
		}
		prev = k
	}

	return true, nil
}

// IsReduced reports whether m is in reduced row-echelon form: echelon, every
// pivot equal to 1 and every other entry of a pivot column zero. Pivots are
// compared with RelativeErrorOr against relTol and zeros with absTol, so
// results from other libraries qualify too.
// Errors: matrix.ErrNilMatrix.
func IsReduced(m matrix.Matrix, opts ...Option) (bool, error) {
	ok, err := IsEchelon(m)
	if err != nil || !ok {
		if err != nil {
			err = engineErrorf(opIsReduced, err)
		}
		return false, err
	}
	pivots, err := PivotColumns(m)
	if err != nil {
		return false, engineErrorf(opIsReduced, err)
	}
	o := gatherOptions(opts...)

	var v float64
	for _, p := range pivots {
		for h := 0; h < m.Rows(); h++ {
			if v, err = m.At(h, p.Col); err != nil {
				return false, engineErrorf(opIsReduced, err)
			}
			if h == p.Row {
				if RelativeErrorOr(v, 1) > o.relTol {
					return false, nil
				}
				continue
			}
			if !IsClose(v, 0, o.absTol, 0) {
				return false, nil
			}
		}
	}

	return true, nil
}
