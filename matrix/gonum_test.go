// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/echelon/matrix"
)

func TestGonumRoundTrip(t *testing.T) {
	src := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})

	d, err := matrix.FromGonum(src)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, d)

	// no shared storage in either direction
	src.Set(0, 0, 100)
	require.Equal(t, 1.0, MustAt(t, d, 0, 0))

	g := d.ToGonum()
	require.True(t, mat.Equal(g, mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})))
	g.Set(1, 1, -5)
	require.Equal(t, 5.0, MustAt(t, d, 1, 1))
}

// A product computed by gonum matches MatVec on the converted matrix.
func TestGonumMatVecAgreement(t *testing.T) {
	d := RandFilledDense(t, 4, 4, 3)
	x := []float64{1, -2, 0.5, 3}

	want, err := matrix.MatVec(d, x)
	require.NoError(t, err)

	var got mat.VecDense
	got.MulVec(d.ToGonum(), mat.NewVecDense(4, x))
	require.InDeltaSlice(t, want, got.RawVector().Data, 1e-12)
}

func TestFromGonumErrors(t *testing.T) {
	_, err := matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	bad := mat.NewDense(1, 2, []float64{1, math.Inf(1)})
	_, err = matrix.FromGonum(bad)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	d, err := matrix.FromGonum(bad, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.True(t, math.IsInf(MustAt(t, d, 0, 1), 1))
}
