// SPDX-License-Identifier: MIT
// Package echelon - backsubstitution (reduced row-echelon form).
//
// Deliverables:
//  1. Input is never mutated; all work happens on a *matrix.Dense clone.
//  2. Rows are processed top to bottom; all-zero rows are skipped.
//  3. Each pivot row is divided by its leading entry (pivot becomes exactly 1),
//     then used to clear the pivot column in every other row.
//
// Notes:
//   - The row index decides which row is skipped during clearing, not the
//     pivot column; the two differ when a pivot sits right of the diagonal.
//   - Already-reduced input is a fixed point.

package echelon

import "github.com/katalvlaran/echelon/matrix"

// Backsubstitution returns the reduced row-echelon form of an echelon-form
// matrix as a new *matrix.Dense.
//
// Callers must check InconsistentSystem first: an inconsistent input does not
// fail, but its reduced form does not describe a solution.
//
// Errors:
//   - matrix.ErrNilMatrix when m is nil.
//   - matrix.ErrNaNInf when a non-Dense input holds a non-finite value.
//
// Complexity: O(m²·n).
func Backsubstitution(m matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	work, err := workingCopy(m)
	if err != nil {
		return nil, engineErrorf(opBacksub, err)
	}
	if err = backsubInPlace(work, gatherOptions(opts...)); err != nil {
		return nil, engineErrorf(opBacksub, err)
	}

	return work, nil
}

func backsubInPlace(a *matrix.Dense, o Options) error {
	rows := a.Rows()
	for i := 0; i < rows; i++ {
		row, err := a.RowView(i)
		if err != nil {
			return err
		}
		pivot := firstNonzero(row)
		if pivot < 0 {
			log.Debugw("zero row skipped", "row", i)
			continue
		}
		if err = normalizeRow(a, i, pivot); err != nil {
			return err
		}
		for h := 0; h < rows; h++ {
			if h == i {
				continue
			}
			if err = rowReduce(a, i, h, pivot, o); err != nil {
				return err
			}
		}
	}

	return nil
}
