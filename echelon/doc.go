// Package echelon reduces matrices to row-echelon and reduced row-echelon
// form and classifies the linear systems they encode.
//
// 🚀 Pipeline
//
//	caller builds an augmented matrix [A | b]
//	  → ForwardElimination   (row-echelon form, input untouched)
//	  → InconsistentSystem   (0 = c row? stop)
//	  → Backsubstitution     (reduced row-echelon form, input untouched)
//	  → caller reads the solution from the last column
//
// Reduce runs the three steps in one call; Solve and SteadyState build on it.
//
// ✨ Key features:
//   - Elementary row operations (SwapRows, RowReduce, NormalizeRow) that
//     validate indices and refuse zero pivots with ErrDegeneratePivot.
//   - Snap-to-zero: RowReduce writes an exact 0 wherever the subtraction
//     would leave floating-point residue (|a−b| ≤ 1e-8 + 1e-5·|b| by default),
//     so pivot detection can compare against 0 exactly.
//   - Leftmost-nonzero pivoting by default; WithPivotStrategy(PartialPivot)
//     for ill-conditioned input.
//   - Last-row inconsistency test by default; WithInconsistencyMode(FullScan)
//     checks every row.
//   - RelativeError with an explicit error and documented fallback value.
//
// ⚙️ Usage:
//
//	aug, _ := matrix.NewDenseFromRows([][]float64{
//		{2, 1, -1, 8},
//		{-3, -1, 2, -11},
//		{-2, 1, 2, -3},
//	})
//	e, _ := echelon.ForwardElimination(aug)
//	if bad, _ := echelon.InconsistentSystem(e); !bad {
//		r, _ := echelon.Backsubstitution(e)
//		fmt.Print(r) // last column: 2, 3, -1
//	}
//
// Concurrency: every entry point works on its own copy and keeps no shared
// state; independent matrices may be processed from independent goroutines.
//
// Logging: debug records (pivot choice, early stop, skipped zero rows,
// inconsistency verdicts) go to the go-log subsystem "echelon".
package echelon
