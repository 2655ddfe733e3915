// SPDX-License-Identifier: MIT

package echelon

import (
	"fmt"
	"math"
)

// RelErrFallback is the value RelativeError returns alongside an error, and
// the value RelativeErrorOr returns silently, when the relative difference is
// undefined.
const RelErrFallback = 0.0

// RelativeError returns |a−b| / max(|a|, |b|).
//
// Errors (value is RelErrFallback in every case, err wraps ErrRelativeError):
//   - a or b is NaN or ±Inf;
//   - a == b == 0 (0/0);
//   - the quotient is not finite (|a−b| overflowed).
//
// Complexity: O(1).
func RelativeError(a, b float64) (float64, error) {
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return RelErrFallback, relErrorf(a, b, "non-finite operand")
	}
	den := math.Max(math.Abs(a), math.Abs(b))
	if den == 0 {
		return RelErrFallback, relErrorf(a, b, "both operands zero")
	}
	r := math.Abs(a-b) / den
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return RelErrFallback, relErrorf(a, b, "overflow")
	}

	return r, nil
}

// RelativeErrorOr is RelativeError for callers that only want a number:
// undefined cases collapse to RelErrFallback.
func RelativeErrorOr(a, b float64) float64 {
	r, _ := RelativeError(a, b)

	return r
}

func relErrorf(a, b float64, why string) error {
	return fmt.Errorf("%s(%g,%g): %s: %w", opRelativeError, a, b, why, ErrRelativeError)
}
