// SPDX-License-Identifier: MIT

package echelon_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/echelon/echelon"
	"github.com/katalvlaran/echelon/matrix"
)

// The step-by-step pipeline a caller runs by hand on P − I.
func TestMarkovPipeline_EndToEnd(t *testing.T) {
	e, err := echelon.ForwardElimination(markovSystem(t))
	require.NoError(t, err)

	bad, err := echelon.InconsistentSystem(e)
	require.NoError(t, err)
	require.False(t, bad)

	r, err := echelon.Backsubstitution(e)
	require.NoError(t, err)

	x := make([]float64, 3)
	for k := 0; k < 2; k++ {
		v, err := r.At(k, 2)
		require.NoError(t, err)
		x[k] = -v
	}
	x[2] = 1
	floats.Scale(2500/floats.Sum(x), x)
	require.InDeltaSlice(t, markovPopulation, x, 1e-6)
}

func TestSteadyState_Population(t *testing.T) {
	p := mustRows(t, markovRows)
	x, err := echelon.SteadyState(p)
	require.NoError(t, err)
	require.InDelta(t, 1.0, floats.Sum(x), 1e-12)

	scaled := append([]float64(nil), x...)
	floats.Scale(2500, scaled)
	require.InDeltaSlice(t, markovPopulation, scaled, 1e-6)

	// P·x = x
	px, err := matrix.MatVec(p, x)
	require.NoError(t, err)
	require.InDeltaSlice(t, x, px, 1e-9)
}

func TestSteadyState_Small(t *testing.T) {
	x, err := echelon.SteadyState(mustRows(t, [][]float64{{1}}))
	require.NoError(t, err)
	require.Equal(t, []float64{1}, x)

	x, err = echelon.SteadyState(hide{mustRows(t, [][]float64{{0.9, 0.5}, {0.1, 0.5}})})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{5.0 / 6.0, 1.0 / 6.0}, x, 1e-12)
}

func TestSteadyState_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   matrix.Matrix
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"not square", mustRows(t, [][]float64{{1, 0, 0}, {0, 1, 0}}), matrix.ErrDimensionMismatch},
		{"negative entry", mustRows(t, [][]float64{{1.2, 0}, {-0.2, 1}}), echelon.ErrNotStochastic},
		{"column sum", mustRows(t, [][]float64{{0.5, 0.5}, {0.4, 0.5}}), echelon.ErrNotStochastic},
		{"two closed classes", mustRows(t, [][]float64{{1, 0}, {0, 1}}), echelon.ErrUnderdetermined},
		{"last state transient", mustRows(t, [][]float64{{1, 0.5}, {0, 0.5}}), echelon.ErrUnderdetermined},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := echelon.SteadyState(tc.in)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// State 2 leaks into the absorbing state 1, so x = [1, 0] and x_n = 1 is
// unreachable. This surfaces as underdetermined, never as an inconsistent system.
func TestSteadyState_TransientLastState(t *testing.T) {
	p := mustRows(t, [][]float64{
		{1, 0.2, 0.5},
		{0, 0.8, 0},
		{0, 0, 0.5},
	})
	_, err := echelon.SteadyState(p)
	require.ErrorIs(t, err, echelon.ErrUnderdetermined)
	require.NotErrorIs(t, err, echelon.ErrInconsistentSystem)
	require.Contains(t, err.Error(), "last state transient")
}
