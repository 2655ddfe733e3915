// SPDX-License-Identifier: MIT
// Package echelon - elementary row operations.
//
// Purpose:
//   - Provide the two in-place primitives the elimination passes are built
//     from (SwapRows, RowReduce) plus pivot normalization (NormalizeRow).
//   - Validate every index before touching the matrix: a failing call leaves
//     the matrix unchanged.
//
// Numeric policy:
//   - RowReduce snaps an entry to exact zero when it is close to the value
//     being subtracted (IsClose with absTol/relTol). Pivot detection and the
//     inconsistency test compare against 0 exactly and rely on this.
//
// AI-Hints:
//   - *matrix.Dense takes the RowView fast-path (contiguous row slices);
//     other Matrix implementations go through At/Set in the same k order,
//     so both paths produce identical bits.

package echelon

import (
	"fmt"
	"math"

	"github.com/katalvlaran/echelon/matrix"
)

// IsClose reports |a−b| ≤ atol + rtol·|b|.
// The relation is asymmetric: b is the reference magnitude. NaN is never close.
func IsClose(a, b, atol, rtol float64) bool {
	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// SwapRows exchanges rows i and j of m in place. i == j is a no-op.
//
// Errors:
//   - matrix.ErrNilMatrix when m is nil.
//   - ErrIndexOutOfBounds when i or j is outside [0, Rows()).
//
// Complexity: O(cols).
func SwapRows(m matrix.Matrix, i, j int) error {
	if err := validateRows(m, i, j); err != nil {
		return engineErrorf(opSwapRows, err)
	}
	if err := swapRows(m, i, j); err != nil {
		return engineErrorf(opSwapRows, err)
	}

	return nil
}

// RowReduce eliminates the entry (j, pivotCol) using row i as the pivot row:
//
//	factor = m[j][p] / m[i][p]
//	m[j][k] = 0                        if IsClose(m[j][k], factor·m[i][k])
//	m[j][k] = m[j][k] − factor·m[i][k] otherwise
//
// Errors:
//   - matrix.ErrNilMatrix when m is nil.
//   - ErrIndexOutOfBounds for a bad row or column index.
//   - ErrDegeneratePivot when m[i][pivotCol] == 0 (m is left untouched).
//
// Complexity: O(cols).
//
// Notes:
//   - i == j is legal and zeroes row j (factor 1, every entry cancels).
func RowReduce(m matrix.Matrix, i, j, pivotCol int, opts ...Option) error {
	if err := validateRows(m, i, j); err != nil {
		return engineErrorf(opRowReduce, err)
	}
	if err := matrix.ValidateColIndex(m, pivotCol); err != nil {
		return engineErrorf(opRowReduce, err)
	}
	if err := rowReduce(m, i, j, pivotCol, gatherOptions(opts...)); err != nil {
		return engineErrorf(opRowReduce, err)
	}

	return nil
}

// NormalizeRow divides row i by its entry at col, leaving exactly 1 at (i, col).
//
// Errors:
//   - matrix.ErrNilMatrix, ErrIndexOutOfBounds as for RowReduce.
//   - ErrDegeneratePivot when m[i][col] == 0.
//
// Complexity: O(cols).
func NormalizeRow(m matrix.Matrix, i, col int) error {
	if err := validateRows(m, i); err != nil {
		return engineErrorf(opNormalizeRow, err)
	}
	if err := matrix.ValidateColIndex(m, col); err != nil {
		return engineErrorf(opNormalizeRow, err)
	}
	if err := normalizeRow(m, i, col); err != nil {
		return engineErrorf(opNormalizeRow, err)
	}

	return nil
}

// validateRows checks m for nil and every row index for range.
func validateRows(m matrix.Matrix, rows ...int) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return err
	}
	for _, r := range rows {
		if err := matrix.ValidateRowIndex(m, r); err != nil {
			return err
		}
	}

	return nil
}

// swapRows assumes validated indices.
func swapRows(m matrix.Matrix, i, j int) error {
	if i == j {
		return nil
	}
	if d, ok := m.(*matrix.Dense); ok {
		ri, err := d.RowView(i)
		if err != nil {
			return err
		}
		rj, err := d.RowView(j)
		if err != nil {
			return err
		}
		for k := range ri {
			ri[k], rj[k] = rj[k], ri[k]
		}

		return nil
	}

	// Generic fallback: read both rows first, then write, so a failing Set
	// cannot be caused by a half-swapped state.
	ri, err := readRow(m, i)
	if err != nil {
		return err
	}
	rj, err := readRow(m, j)
	if err != nil {
		return err
	}
	for k := range ri {
		if err = m.Set(i, k, rj[k]); err != nil {
			return err
		}
		if err = m.Set(j, k, ri[k]); err != nil {
			return err
		}
	}

	return nil
}

// rowReduce assumes validated indices.
func rowReduce(m matrix.Matrix, i, j, p int, o Options) error {
	if d, ok := m.(*matrix.Dense); ok {
		ri, err := d.RowView(i)
		if err != nil {
			return err
		}
		rj, err := d.RowView(j)
		if err != nil {
			return err
		}
		if ri[p] == 0 {
			return fmt.Errorf("row %d, col %d: %w", i, p, ErrDegeneratePivot)
		}
		factor := rj[p] / ri[p]
		var sub float64
		for k := range rj {
			sub = factor * ri[k]
			if IsClose(rj[k], sub, o.absTol, o.relTol) {
				rj[k] = 0
			} else {
				rj[k] -= sub
			}
		}

		return nil
	}

	pivot, err := m.At(i, p)
	if err != nil {
		return err
	}
	if pivot == 0 {
		return fmt.Errorf("row %d, col %d: %w", i, p, ErrDegeneratePivot)
	}
	target, err := m.At(j, p)
	if err != nil {
		return err
	}
	factor := target / pivot

	var vi, vj, sub float64
	for k := 0; k < m.Cols(); k++ {
		if vi, err = m.At(i, k); err != nil {
			return err
		}
		if vj, err = m.At(j, k); err != nil {
			return err
		}
		sub = factor * vi
		if IsClose(vj, sub, o.absTol, o.relTol) {
			vj = 0
		} else {
			vj -= sub
		}
		if err = m.Set(j, k, vj); err != nil {
			return err
		}
	}

	return nil
}

// normalizeRow assumes validated indices. The pivot entry is written as an
// exact 1 rather than value/value.
func normalizeRow(m matrix.Matrix, i, col int) error {
	if d, ok := m.(*matrix.Dense); ok {
		row, err := d.RowView(i)
		if err != nil {
			return err
		}
		value := row[col]
		if value == 0 {
			return fmt.Errorf("row %d, col %d: %w", i, col, ErrDegeneratePivot)
		}
		for k := range row {
			row[k] /= value
		}
		row[col] = 1

		return nil
	}

	row, err := readRow(m, i)
	if err != nil {
		return err
	}
	value := row[col]
	if value == 0 {
		return fmt.Errorf("row %d, col %d: %w", i, col, ErrDegeneratePivot)
	}
	for k := range row {
		if k == col {
			row[k] = 1
		} else {
			row[k] /= value
		}
		if err = m.Set(i, k, row[k]); err != nil {
			return err
		}
	}

	return nil
}

// readRow returns row i of m. For *matrix.Dense the result aliases storage;
// callers that write through it must own that contract.
func readRow(m matrix.Matrix, i int) ([]float64, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d.RowView(i)
	}
	out := make([]float64, m.Cols())
	var err error
	for k := range out {
		if out[k], err = m.At(i, k); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// firstNonzero returns the column of the first nonzero entry of row, or -1.
func firstNonzero(row []float64) int {
	for k, v := range row {
		if v != 0 {
			return k
		}
	}

	return -1
}
