// SPDX-License-Identifier: MIT

package echelon_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/echelon/echelon"
)

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { echelon.WithAbsTol(-1) })
	require.Panics(t, func() { echelon.WithAbsTol(math.NaN()) })
	require.Panics(t, func() { echelon.WithRelTol(math.Inf(1)) })
	require.Panics(t, func() { echelon.WithRelTol(-1e-9) })
	require.Panics(t, func() { echelon.WithAbsTol(math.Inf(-1)) })
	require.Panics(t, func() { echelon.WithAbsTol(math.Inf(1)) })
	require.Panics(t, func() { echelon.WithRelTol(math.NaN()) })
	require.Panics(t, func() { echelon.WithPivotStrategy(echelon.PivotStrategy(9)) })
	require.Panics(t, func() { echelon.WithInconsistencyMode(echelon.InconsistencyMode(-1)) })

	require.NotPanics(t, func() { echelon.WithAbsTol(0) })
	require.NotPanics(t, func() { echelon.WithRelTol(0) })
}

func TestOptions_Defaults(t *testing.T) {
	require.Equal(t, 1e-8, echelon.DefaultAbsTol)
	require.Equal(t, 1e-5, echelon.DefaultRelTol)
	require.Equal(t, echelon.LeftmostNonzero, echelon.DefaultPivotStrategy)
	require.Equal(t, echelon.LastRowOnly, echelon.DefaultInconsistencyMode)
}

func TestOptions_Strings(t *testing.T) {
	require.Equal(t, "leftmost-nonzero", echelon.LeftmostNonzero.String())
	require.Equal(t, "partial-pivot", echelon.PartialPivot.String())
	require.Equal(t, "PivotStrategy(7)", echelon.PivotStrategy(7).String())
	require.Equal(t, "last-row-only", echelon.LastRowOnly.String())
	require.Equal(t, "full-scan", echelon.FullScan.String())
	require.Equal(t, "InconsistencyMode(3)", echelon.InconsistencyMode(3).String())
}

// Last writer wins: an explicit FullScan followed by LastRowOnly is LastRowOnly.
func TestOptions_LastWriterWins(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 1, 1}, {0, 0, 1}, {0, 0, 0}})
	got, err := echelon.InconsistentSystem(m,
		echelon.WithInconsistencyMode(echelon.FullScan),
		echelon.WithInconsistencyMode(echelon.LastRowOnly))
	require.NoError(t, err)
	require.False(t, got)
}
