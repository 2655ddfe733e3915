// Package matrix is the storage layer of the echelon module.
//
// The matrix package provides:
//
//   - Matrix, a bounds-checked interface over mutable two-dimensional float64 data.
//   - Dense, a row-major implementation with a flat backing slice and
//     zero-copy RowView access for row-oriented kernels.
//   - Sentinel errors (ErrOutOfRange, ErrDimensionMismatch, ErrNilMatrix, ...)
//     matched with errors.Is.
//   - Small kernels (Add, Sub, MatVec), constructors (NewIdentity,
//     NewDenseFromRows) and AllClose for tolerance-based comparison.
//   - gonum interop via FromGonum and (*Dense).ToGonum.
//
// Row reduction itself lives in package echelon.
package matrix
