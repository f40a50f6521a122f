// SPDX-License-Identifier: MIT
// Package transform: contextual parameters of a normalized kernel.
//
// A non-linear kernel (datum shift, projection) works in a normalized space,
// typically radians. ContextualParameters carries the two affine conversions
// surrounding the kernel (normalize before, denormalize after) together with
// the parameter values describing the whole sequence, so that the complete
// transform can be assembled and later formatted as a single operation.

package transform

import (
	"fmt"
	"math"

	"github.com/katalvlaran/georef/matrix"
)

// Parameter is one named value describing the complete transform sequence.
// Boolean parameters are carried as 0 or 1.
type Parameter struct {
	Name  string
	Value float64
}

// ContextualParameters describes a normalize → kernel → denormalize sequence
// as a whole.
//
// The lifecycle has two phases. While mutable, the kernel's constructor
// edits the normalization matrices in place through Normalization and the
// NormalizeGeographicInputs / DenormalizeGeographicOutputs helpers. Calling
// Concatenation assembles the complete transform and freezes the instance;
// every later mutation attempt returns ErrFrozen.
type ContextualParameters struct {
	descriptor  string
	parameters  []Parameter
	normalize   matrix.Matrix // (sourceDim+1) square affine, extended precision
	denormalize matrix.Matrix // (targetDim+1) square affine, extended precision
	frozen      bool
}

// NewContextualParameters creates mutable contextual parameters for a kernel
// with the given coordinate dimensions. Both surrounding conversions start
// as identities in extended precision.
// Errors: matrix.ErrInvalidDimensions on non-positive dimensions.
func NewContextualParameters(descriptor string, sourceDim, targetDim int) (*ContextualParameters, error) {
	normalize, err := newExtendedIdentity(sourceDim + 1)
	if err != nil {
		return nil, fmt.Errorf("NewContextualParameters: %w", err)
	}
	denormalize, err := newExtendedIdentity(targetDim + 1)
	if err != nil {
		return nil, fmt.Errorf("NewContextualParameters: %w", err)
	}

	return &ContextualParameters{
		descriptor:  descriptor,
		normalize:   normalize,
		denormalize: denormalize,
	}, nil
}

// newExtendedIdentity allocates a size×size extended-precision identity.
func newExtendedIdentity(size int) (matrix.Matrix, error) {
	m, err := matrix.NewExtended(size, size)
	if err != nil {
		return nil, err
	}
	for i := 0; i < size; i++ {
		_ = m.Set(i, i, 1)
	}

	return m, nil
}

// Descriptor returns the name describing the whole sequence.
func (c *ContextualParameters) Descriptor() string {
	return c.descriptor
}

// SetParameter records a named value describing the complete sequence,
// replacing any previous value of the same name.
// Errors: ErrFrozen after Concatenation.
func (c *ContextualParameters) SetParameter(name string, value float64) error {
	if c.frozen {
		return fmt.Errorf("SetParameter(%q): %w", name, ErrFrozen)
	}
	for i := range c.parameters {
		if c.parameters[i].Name == name {
			c.parameters[i].Value = value

			return nil
		}
	}
	c.parameters = append(c.parameters, Parameter{Name: name, Value: value})

	return nil
}

// Parameters returns a copy of the recorded parameter values, in insertion
// order.
func (c *ContextualParameters) Parameters() []Parameter {
	out := make([]Parameter, len(c.parameters))
	copy(out, c.parameters)

	return out
}

// Normalization returns the normalize (norm true) or denormalize (norm
// false) affine matrix. While the instance is mutable the returned reference
// is live: edits through matrix.Concatenate or Set take effect on the
// transform assembled later. After freezing, a deep copy is returned.
func (c *ContextualParameters) Normalization(norm bool) matrix.Matrix {
	m := c.denormalize
	if norm {
		m = c.normalize
	}
	if c.frozen {
		return m.Clone()
	}

	return m
}

// NormalizeGeographicInputs modifies the normalize conversion so that input
// geographic coordinates (λ degrees, φ degrees, trailing dimensions
// unchanged) become (λ−λ0, φ) in radians before reaching the kernel.
// The degree→radian factor goes through the well-known-constant table, so
// the full double-double value of π/180 is applied.
// Errors: ErrFrozen.
func (c *ContextualParameters) NormalizeGeographicInputs(λ0 float64) error {
	if c.frozen {
		return fmt.Errorf("NormalizeGeographicInputs: %w", ErrFrozen)
	}
	degToRad := math.Pi / 180
	var offset *float64
	if λ0 != 0 {
		shift := -λ0 * degToRad
		offset = &shift
	}
	if err := matrix.Concatenate(c.normalize, 0, &degToRad, offset); err != nil {
		return fmt.Errorf("NormalizeGeographicInputs: %w", err)
	}
	if err := matrix.Concatenate(c.normalize, 1, &degToRad, nil); err != nil {
		return fmt.Errorf("NormalizeGeographicInputs: %w", err)
	}

	return nil
}

// DenormalizeGeographicOutputs modifies the denormalize conversion so that
// kernel outputs (λ, φ) in radians become (λ+λ0, φ) in degrees.
// Errors: ErrFrozen.
func (c *ContextualParameters) DenormalizeGeographicOutputs(λ0 float64) error {
	if c.frozen {
		return fmt.Errorf("DenormalizeGeographicOutputs: %w", ErrFrozen)
	}
	radToDeg := 180 / math.Pi
	var offset *float64
	if λ0 != 0 {
		offset = &λ0
	}
	if err := matrix.ConcatenateAfter(c.denormalize, 0, &radToDeg, offset); err != nil {
		return fmt.Errorf("DenormalizeGeographicOutputs: %w", err)
	}
	if err := matrix.ConcatenateAfter(c.denormalize, 1, &radToDeg, nil); err != nil {
		return fmt.Errorf("DenormalizeGeographicOutputs: %w", err)
	}

	return nil
}

// Concatenation assembles the complete normalize → kernel → denormalize
// transform and freezes the receiver.
// Errors: ErrNilTransform, ErrDimensionMismatch when the kernel dimensions
// do not match the normalization matrices, ErrNonAffine if a normalization
// matrix was edited into a non-affine form.
func (c *ContextualParameters) Concatenation(kernel Transform) (Transform, error) {
	if kernel == nil {
		return nil, fmt.Errorf("Concatenation: %w", ErrNilTransform)
	}
	if kernel.SourceDim() != c.normalize.Rows()-1 {
		return nil, fmt.Errorf("Concatenation: kernel expects %dD input but normalization is %dD: %w",
			kernel.SourceDim(), c.normalize.Rows()-1, ErrDimensionMismatch)
	}
	if kernel.TargetDim() != c.denormalize.Rows()-1 {
		return nil, fmt.Errorf("Concatenation: kernel yields %dD output but denormalization is %dD: %w",
			kernel.TargetDim(), c.denormalize.Rows()-1, ErrDimensionMismatch)
	}
	normalize, err := NewLinear(c.normalize)
	if err != nil {
		return nil, fmt.Errorf("Concatenation: %w", err)
	}
	denormalize, err := NewLinear(c.denormalize)
	if err != nil {
		return nil, fmt.Errorf("Concatenation: %w", err)
	}
	c.frozen = true

	return NewConcatenated(normalize, kernel, denormalize)
}

// IsFrozen reports whether Concatenation has been invoked.
func (c *ContextualParameters) IsFrozen() bool {
	return c.frozen
}

// Clone returns a mutable deep copy, frozen state not included.
func (c *ContextualParameters) Clone() *ContextualParameters {
	out := &ContextualParameters{
		descriptor:  c.descriptor,
		parameters:  make([]Parameter, len(c.parameters)),
		normalize:   c.normalize.Clone(),
		denormalize: c.denormalize.Clone(),
	}
	copy(out.parameters, c.parameters)

	return out
}

// Equal reports whether two contextual parameters describe the same
// sequence: same descriptor, same parameter values and element-wise equal
// normalization matrices (exact comparison).
func (c *ContextualParameters) Equal(other *ContextualParameters) bool {
	if c == other {
		return true
	}
	if other == nil || c.descriptor != other.descriptor || len(c.parameters) != len(other.parameters) {
		return false
	}
	for i := range c.parameters {
		if c.parameters[i] != other.parameters[i] {
			return false
		}
	}

	return matrix.Equal(c.normalize, other.normalize, 0) &&
		matrix.Equal(c.denormalize, other.denormalize, 0)
}
