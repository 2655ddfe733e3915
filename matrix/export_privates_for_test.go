// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box) for the options snapshot.
//
// Purpose:
//   - Expose a read-only view of the resolved Options to matrix_test without
//     widening the production API.
//
// Maintenance:
//   - Keep OptionsSnapshot in sync with Options; tests catch drift.

// OptionsSnapshot mirrors Options with exported fields.
type OptionsSnapshot struct {
	ValidateNaNInf bool
}

// GatherOptionsSnapshot_TestOnly resolves opts on top of the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{ValidateNaNInf: o.validateNaNInf}
}

// IsNonFinite_TestOnly forwards to isNonFinite.
func IsNonFinite_TestOnly(v float64) bool { return isNonFinite(v) }
