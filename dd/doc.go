// Package dd implements double-double arithmetic: each number is carried as
// a (Value, Error) pair of float64 where Error is the part of the real value
// that did not fit in Value. Propagating the error term through compensated
// add/multiply/divide/sqrt keeps roughly 32 significant decimal digits,
// against 16 for a plain float64.
//
// The package exists to protect chained affine-transform arithmetic (axis
// swap ∘ unit conversion ∘ datum shift) from catastrophic cancellation; it
// is not a general extended-precision type. Matrix kernels are the only
// intended consumers — public APIs keep exposing plain float64.
//
// All operations are deterministic, allocation-free and mutate the receiver
// in place. A DD value must not be shared between goroutines while mutated.
package dd
