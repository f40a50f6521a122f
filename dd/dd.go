// SPDX-License-Identifier: MIT
// Package dd: the DD value type and its compensated arithmetic kernels.
//
// Purpose:
//   - Represent a real number as Value + Error with |Error| ≤ 0.5 ulp(Value).
//   - Provide the add / multiply / divide / sqrt primitives used by the
//     matrix package so that long affine chains do not lose precision.
//
// Notes:
//   - The algorithms are the classic error-free transformations: Knuth
//     two-sum, Dekker split two-product, and their quick variants.
//   - Every operation reads its operands fully before writing the receiver,
//     so aliased calls such as d.Multiply(d) are safe.

package dd

import "math"

// split is the Dekker splitting constant 2²⁷+1, used to cut a float64 into
// two 26-bit halves whose product is exact.
const split = 134217729.0

// DD carries a real number as Value + Error.
// The pair is normalized: |Error| ≤ 0.5 ulp(Value).
type DD struct {
	Value float64
	Error float64
}

// New returns a DD initialized to the given value. The error term is taken
// from the well-known-constant table (values derived from π), or zero.
func New(value float64) DD {
	return DD{Value: value, Error: ErrorForWellKnownValue(value)}
}

// NewWithError returns a DD with an explicit error term.
// Callers are responsible for |error| ≤ 0.5 ulp(value).
func NewWithError(value, error float64) DD {
	return DD{Value: value, Error: error}
}

// quickTwoSum computes s+e = a+b exactly, assuming |a| ≥ |b|.
func quickTwoSum(a, b float64) (s, e float64) {
	s = a + b
	e = b - (s - a)

	return s, e
}

// twoSum computes s+e = a+b exactly for arbitrary a, b (Knuth).
func twoSum(a, b float64) (s, e float64) {
	s = a + b
	v := s - a
	e = (a - (s - v)) + (b - v)

	return s, e
}

// splitDouble cuts a into hi+lo halves with at most 26 significant bits each.
func splitDouble(a float64) (hi, lo float64) {
	t := split * a
	hi = t - (t - a)
	lo = a - hi

	return hi, lo
}

// twoProd computes p+e = a*b exactly (Dekker).
func twoProd(a, b float64) (p, e float64) {
	p = a * b
	ahi, alo := splitDouble(a)
	bhi, blo := splitDouble(b)
	e = ((ahi*bhi - p) + ahi*blo + alo*bhi) + alo*blo

	return p, e
}

// Set replaces the receiver with the given plain value; the error term is
// inferred from the well-known-constant table.
func (d *DD) Set(value float64) {
	d.Value = value
	d.Error = ErrorForWellKnownValue(value)
}

// SetFrom copies the other number into the receiver.
func (d *DD) SetFrom(other *DD) {
	d.Value = other.Value
	d.Error = other.Error
}

// Clear sets the receiver to zero.
func (d *DD) Clear() {
	d.Value = 0
	d.Error = 0
}

// Negate flips the sign of the receiver.
func (d *DD) Negate() {
	d.Value = -d.Value
	d.Error = -d.Error
}

// IsZero reports whether both components are zero.
func (d *DD) IsZero() bool {
	return d.Value == 0 && d.Error == 0
}

// Add sets the receiver to this + other.
// Stage 1: exact two-sum of the values.
// Stage 2: fold both error terms into the residual, renormalize.
func (d *DD) Add(other *DD) {
	s, e := twoSum(d.Value, other.Value)
	e += d.Error + other.Error
	d.Value, d.Error = quickTwoSum(s, e)
}

// AddDouble sets the receiver to this + v for a plain float64 v.
func (d *DD) AddDouble(v float64) {
	s, e := twoSum(d.Value, v)
	e += d.Error
	d.Value, d.Error = quickTwoSum(s, e)
}

// Subtract sets the receiver to this − other.
func (d *DD) Subtract(other *DD) {
	s, e := twoSum(d.Value, -other.Value)
	e += d.Error - other.Error
	d.Value, d.Error = quickTwoSum(s, e)
}

// Multiply sets the receiver to this × other.
// Stage 1: exact two-product of the values.
// Stage 2: cross error terms enter the residual at first order only
// (the Error×Error term is below the representable range), renormalize.
func (d *DD) Multiply(other *DD) {
	dv, de := d.Value, d.Error
	ov, oe := other.Value, other.Error
	p, e := twoProd(dv, ov)
	e += dv*oe + de*ov
	d.Value, d.Error = quickTwoSum(p, e)
}

// MultiplyDouble sets the receiver to this × v for a plain float64 v.
func (d *DD) MultiplyDouble(v float64) {
	p, e := twoProd(d.Value, v)
	e += d.Error * v
	d.Value, d.Error = quickTwoSum(p, e)
}

// Divide sets the receiver to this ÷ other.
// Long division with two remainder refinements: q₁ from the leading values,
// then two corrections computed on the double-double remainder. The combined
// quotient is accurate to the full double-double precision.
func (d *DD) Divide(other *DD) {
	q1 := d.Value / other.Value
	rem := *d
	t := *other
	t.MultiplyDouble(q1)
	rem.Subtract(&t)

	q2 := rem.Value / other.Value
	t = *other
	t.MultiplyDouble(q2)
	rem.Subtract(&t)

	q3 := rem.Value / other.Value
	d.Value, d.Error = quickTwoSum(q1, q2)
	d.AddDouble(q3)
}

// DivideDouble sets the receiver to this ÷ v for a plain float64 v.
func (d *DD) DivideDouble(v float64) {
	o := DD{Value: v}
	d.Divide(&o)
}

// InverseDivide sets the receiver to x ÷ this.
func (d *DD) InverseDivide(x *DD) {
	num := *x
	num.Divide(d)
	*d = num
}

// Sqrt sets the receiver to its square root (Karp's method).
// A negative value propagates NaN, per the package policy of letting IEEE
// special values flow through; zero stays exactly zero.
func (d *DD) Sqrt() {
	if d.IsZero() {
		return
	}
	s := math.Sqrt(d.Value)
	// Residual r = this − s², then first-order correction e = r/(2s).
	p, pe := twoProd(s, s)
	rem := *d
	t := DD{Value: p, Error: pe}
	rem.Subtract(&t)
	e := rem.Value / (2 * s)
	d.Value, d.Error = quickTwoSum(s, e)
}
