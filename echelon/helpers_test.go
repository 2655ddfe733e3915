// SPDX-License-Identifier: MIT
// Package echelon_test contains shared fixtures for the engine tests.
//
// Purpose:
//   - Build matrices from row literals in one line.
//   - hide masks *matrix.Dense so tests can drive the At/Set fallback paths.
//   - Deterministic random fills (fixed seeds) for property-style tests.

package echelon_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/echelon/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic At/Set code paths.
type hide struct{ matrix.Matrix }

// markovRows is the 3-state column-stochastic transition matrix of the
// population example.
var markovRows = [][]float64{
	{0.90, 0.01, 0.09},
	{0.01, 0.90, 0.01},
	{0.09, 0.09, 0.90},
}

// markovPopulation is the expected steady-state head count for 2500 individuals.
var markovPopulation = []float64{1088.5167464114832, 227.27272727272728, 1184.2105263157894}

// mustRows builds a *matrix.Dense from row literals or fails the test.
func mustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// markovSystem returns B = P − I for the population example.
func markovSystem(t testing.TB) matrix.Matrix {
	t.Helper()
	p := mustRows(t, markovRows)
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	b, err := matrix.Sub(p, I)
	require.NoError(t, err)

	return b
}

// randomInts fills an r×c matrix with integers in [-span, span] from a fixed
// seed; zeros appear often enough to exercise swaps and rank deficiency.
func randomInts(t testing.TB, r, c, span int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, float64(rng.Intn(2*span+1)-span)))
		}
	}

	return m
}

// diagDominant returns a random n×n strictly diagonally dominant matrix
// (always nonsingular) from a fixed seed.
func diagDominant(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				require.NoError(t, m.Set(i, j, rng.Float64()*2-1))
			}
		}
		require.NoError(t, m.Set(i, i, float64(n)+rng.Float64()))
	}

	return m
}

// requireClose asserts element-wise closeness of got to the row literal want.
func requireClose(t testing.TB, want [][]float64, got matrix.Matrix, tol float64) {
	t.Helper()
	w := mustRows(t, want)
	ok, err := matrix.AllClose(got, w, 0, tol)
	require.NoError(t, err)
	require.Truef(t, ok, "want:\n%v\ngot:\n%v", w, got)
}
