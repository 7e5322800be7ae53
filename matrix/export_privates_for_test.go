// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private kernels.
//
// Purpose:
//   - Expose UNEXPORTED helpers to matrix_test ONLY (the file name ends in
//     _test.go, so it never reaches production builds).
//
// AI-Hints:
//   - If a private helper changes signature, mirror the change here once, not across many tests.

var (
	// ExportedIsZeroPivot exposes the singular-pivot predicate of Inverse.
	ExportedIsZeroPivot = isZeroPivot

	// ExportedColumnBounds exposes the ±Inf-seeded accumulator behind ScaleRange.
	ExportedColumnBounds = columnBounds
)

// ExportedPivotRow exposes the partial-pivot row search on a *Dense.
func ExportedPivotRow(m *Dense, i int) int { return pivotRow(m, i) }
