// Package echelon is the module root of a small Gauss–Jordan elimination
// engine for float64 matrices.
//
// 🚀 What is inside?
//
//	matrix/   - Matrix interface, row-major Dense storage, validators,
//	            Add/Sub/MatVec, AllClose, gonum interop
//	echelon/  - row operations, ForwardElimination, InconsistentSystem,
//	            Backsubstitution, Reduce/Solve/Rank, SteadyState
//	examples/ - runnable Markov-chain steady-state driver
//
// ✨ Guarantees
//
//   - Inputs are never mutated by the elimination passes.
//   - Floating-point residue is snapped to exact zero during row reduction,
//     so pivot detection compares against 0 exactly.
//   - Every failure is a sentinel error, matched with errors.Is.
//
// Import the subpackages directly:
//
//	import (
//		"github.com/katalvlaran/echelon/echelon"
//		"github.com/katalvlaran/echelon/matrix"
//	)
package echelon
