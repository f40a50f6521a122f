// SPDX-License-Identifier: MIT

// Package transform provides coordinate operations between geodetic datums.
//
// The building block is the Transform interface: a mapping from source to
// target coordinate tuples that can also report its Jacobian. Linear wraps an
// affine matrix, Concatenated chains steps with chain-rule derivatives.
//
// Datum shifts come in two flavours. Molodensky (complete and abridged)
// works directly on geographic coordinates; BursaWolfParameters describes the
// seven-parameter position vector transformation between geocentric frames
// and converts to and from its 4×4 matrix in extended precision.
//
// A non-linear kernel works in a normalized space, usually radians.
// ContextualParameters carries the affine conversions surrounding such a
// kernel together with the parameters describing the whole sequence;
// ReformatChain and the WKT formatter use it to present a chain as a single
// parameterized operation.
package transform
