// SPDX-License-Identifier: MIT
// Package echelon - forward elimination (row-echelon form).
//
// Deliverables:
//  1. Input is never mutated; all work happens on a *matrix.Dense clone.
//  2. Pivot search covers rows i..m-1 and columns i..n-1; the default rule
//     takes the leftmost nonzero column and, within it, the first row found.
//  3. No pivot left → stop early; remaining rows are zero in the remaining columns.
//  4. Every row below the pivot is reduced with RowReduce (snap-to-zero policy).
//
// Determinism:
//   - Fixed row-major scan order; no map iteration; identical input → identical bits.
//
// Complexity:
//   - Time O(min(m,n)·m·n), Space O(m·n) for the working copy.

package echelon

import (
	"math"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/echelon/matrix"
)

var log = logging.Logger("echelon")

// Pivot identifies a pivot entry by row and column.
type Pivot struct {
	Row int
	Col int
}

// ForwardElimination returns the row-echelon form of m as a new *matrix.Dense.
//
// Behavior highlights:
//   - Pivot columns strictly increase with the row index.
//   - All-zero rows end up at the bottom.
//   - m is read-only; a non-Dense m is copied through At.
//
// Errors:
//   - matrix.ErrNilMatrix when m is nil.
//   - matrix.ErrNaNInf when a non-Dense input holds a non-finite value.
//
// AI-Hints:
//   - Pass WithPivotStrategy(PartialPivot) for ill-conditioned inputs; the
//     reduced form is the same, only the intermediate echelon form differs.
func ForwardElimination(m matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	work, err := workingCopy(m)
	if err != nil {
		return nil, engineErrorf(opForward, err)
	}
	if err = forwardInPlace(work, gatherOptions(opts...)); err != nil {
		return nil, engineErrorf(opForward, err)
	}

	return work, nil
}

// forwardInPlace runs the elimination loop on a working copy.
func forwardInPlace(a *matrix.Dense, o Options) error {
	rows := a.Rows()
	for i := 0; i < rows-1; i++ {
		p, found, err := findPivot(a, i, o.pivot)
		if err != nil {
			return err
		}
		if !found {
			log.Debugw("no pivot left, stopping early", "row", i)
			break
		}
		log.Debugw("pivot selected", "step", i, "row", p.Row, "col", p.Col, "strategy", o.pivot)

		if p.Row != i {
			if err = swapRows(a, p.Row, i); err != nil {
				return err
			}
		}
		for h := i + 1; h < rows; h++ {
			if err = rowReduce(a, i, h, p.Col, o); err != nil {
				return err
			}
		}
	}

	return nil
}

// findPivot locates the pivot for step i in the submatrix rows i.., cols i...
// found is false when that submatrix is entirely zero.
func findPivot(a *matrix.Dense, i int, s PivotStrategy) (Pivot, bool, error) {
	rows, cols := a.Shape()
	best := Pivot{Row: -1, Col: cols}

	var row []float64
	var err error
	var h, k int
	for h = i; h < rows; h++ {
		if row, err = a.RowView(h); err != nil {
			return Pivot{}, false, err
		}
		// Only columns left of the current best can improve it.
		for k = i; k < best.Col; k++ {
			if row[k] != 0 {
				best = Pivot{Row: h, Col: k}
				break
			}
		}
	}
	if best.Row < 0 {
		return Pivot{}, false, nil
	}
	if s != PartialPivot {
		return best, true, nil
	}

	// Partial pivoting: same column, largest magnitude, first row on ties.
	var v, bestAbs float64
	if v, err = a.At(best.Row, best.Col); err != nil {
		return Pivot{}, false, err
	}
	bestAbs = math.Abs(v)
	for h = best.Row + 1; h < rows; h++ {
		if v, err = a.At(h, best.Col); err != nil {
			return Pivot{}, false, err
		}
		if math.Abs(v) > bestAbs {
			best.Row, bestAbs = h, math.Abs(v)
		}
	}

	return best, true, nil
}

// workingCopy clones m into a fresh *matrix.Dense.
func workingCopy(m matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*matrix.Dense); ok {
		return d.Clone().(*matrix.Dense), nil
	}

	out, err := matrix.NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
