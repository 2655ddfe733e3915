// SPDX-License-Identifier: MIT

package echelon

import "github.com/katalvlaran/echelon/matrix"

// InconsistentSystem reports whether an echelon-form augmented matrix
// encodes an unsatisfiable equation 0 = c (c ≠ 0). The last column is the
// constants column.
//
// LastRowOnly (default) tests only the bottom row:
// sum the nonzero entries of the row except the last nonzero one; the row is
// inconsistent when that sum is exactly zero and the constant is nonzero.
// FullScan checks every row for "all coefficients zero, constant nonzero".
//
// m is not mutated. Errors: matrix.ErrNilMatrix.
//
// Notes:
//   - LastRowOnly relies on the 0 = c row being the bottom row. Forward
//     elimination can leave all-zero rows below it (e.g. [[1,1,1],[1,1,2],[2,2,2]]);
//     use FullScan, or Reduce/Solve, when that matters.
func InconsistentSystem(m matrix.Matrix, opts ...Option) (bool, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return false, engineErrorf(opInconsistent, err)
	}
	o := gatherOptions(opts...)

	var verdict bool
	var err error
	switch o.mode {
	case FullScan:
		verdict, err = anyRowInconsistent(m)
	default:
		verdict, err = lastRowInconsistent(m)
	}
	if err != nil {
		return false, engineErrorf(opInconsistent, err)
	}
	log.Debugw("inconsistency check", "mode", o.mode, "inconsistent", verdict)

	return verdict, nil
}

func lastRowInconsistent(m matrix.Matrix) (bool, error) {
	row, err := readRow(m, m.Rows()-1)
	if err != nil {
		return false, err
	}

	nonzero := make([]int, 0, len(row))
	for k, v := range row {
		if v != 0 {
			nonzero = append(nonzero, k)
		}
	}
	total := 0.0
	if len(nonzero) > 0 {
		for _, k := range nonzero[:len(nonzero)-1] {
			total += row[k]
		}
	}

	return total == 0 && row[len(row)-1] != 0, nil
}

func anyRowInconsistent(m matrix.Matrix) (bool, error) {
	last := m.Cols() - 1
	for i := 0; i < m.Rows(); i++ {
		row, err := readRow(m, i)
		if err != nil {
			return false, err
		}
		if row[last] != 0 && firstNonzero(row) == last {
			return true, nil
		}
	}

	return false, nil
}
