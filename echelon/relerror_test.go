// SPDX-License-Identifier: MIT

package echelon_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/echelon/echelon"
)

func TestRelativeError(t *testing.T) {
	cases := []struct {
		name    string
		a, b    float64
		want    float64
		wantErr bool
	}{
		{"equal", 4, 4, 0, false},
		{"half", 1, 2, 0.5, false},
		{"symmetric", 2, 1, 0.5, false},
		{"one zero", 0, 5, 1, false},
		{"opposite signs", -1, 1, 2, false},
		{"both zero", 0, 0, echelon.RelErrFallback, true},
		{"nan", math.NaN(), 1, echelon.RelErrFallback, true},
		{"inf", 1, math.Inf(-1), echelon.RelErrFallback, true},
		{"overflow", math.MaxFloat64, -math.MaxFloat64, echelon.RelErrFallback, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := echelon.RelativeError(tc.a, tc.b)
			if tc.wantErr {
				require.ErrorIs(t, err, echelon.ErrRelativeError)
			} else {
				require.NoError(t, err)
			}
			require.InDelta(t, tc.want, got, 1e-15)
			require.InDelta(t, tc.want, echelon.RelativeErrorOr(tc.a, tc.b), 1e-15)
		})
	}
}
