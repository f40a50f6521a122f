// SPDX-License-Identifier: MIT

// Package matrix implements the linear algebra backbone for coordinate
// conversions: matrices addressed as (row, column) that represent conversions
// in homogeneous form, an (m+1)×(n+1) matrix whose last row is 0 … 0 1.
//
// # Storage
//
// Square sizes 1–4 use the fixed types Matrix1…Matrix4 with named exported
// fields; every other shape uses General. General can additionally carry a
// double-double error term per element; all arithmetic kernels (Multiply,
// Solve, Inverse, the factory chains) compute and return in that extended
// precision, which is what lets a chain of mutually inverse conversions
// collapse back to an exact identity.
//
// # Factory
//
// The Create* functions build conversions from higher-level descriptions:
//
//   - CreateTransformAxes derives an axis swap/flip matrix from source and
//     target axis directions.
//   - CreateTransformEnvelopes and CreateTransform derive scale-and-offset
//     conversions mapping one envelope onto another, optionally combined
//     with axis reordering.
//   - CreateDimensionSelect retains, reorders or duplicates dimensions.
//   - CreatePassThrough expands a conversion to operate on a middle block
//     of a larger coordinate tuple.
//
// # Errors
//
// All failures are reported through the package sentinels in errors.go and
// matched with errors.Is; no public entry point panics on user input.
package matrix
