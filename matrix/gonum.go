// SPDX-License-Identifier: MIT
// Package matrix - gonum interop.
//
// Purpose:
//   - Let callers that already hold gonum matrices feed them into the
//     elimination engine, and hand results back to gonum for further work
//     (products, norms, decompositions this package does not provide).
//
// Determinism:
//   - Both directions copy in fixed row-major order; no storage is shared.

package matrix

import "gonum.org/v1/gonum/mat"

// FromGonum copies any gonum mat.Matrix into a new *Dense.
//
// Errors:
//   - ErrNilMatrix when src is nil.
//   - ErrInvalidDimensions for empty shapes.
//   - ErrNaNInf when a value is non-finite and the policy is on (see opts).
//
// Complexity: O(r*c).
func FromGonum(src mat.Matrix, opts ...Option) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf(ctxFromGon, ErrNilMatrix)
	}
	r, c := src.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(ctxFromGon, err)
	}
	o := gatherOptions(opts...)
	out.validateNaNInf = o.validateNaNInf

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = src.At(i, j)
			if out.validateNaNInf && isNonFinite(v) {
				return nil, denseErrorf(ctxFromGon, i, j, ErrNaNInf)
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

// ToGonum returns an independent *mat.Dense holding a copy of m.
// Complexity: O(r*c).
func (m *Dense) ToGonum() *mat.Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return mat.NewDense(m.r, m.c, cp)
}
