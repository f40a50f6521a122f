// SPDX-License-Identifier: MIT
// Package transform: the Transform contract and its linear/concatenated
// implementations.

package transform

import (
	"fmt"

	"github.com/katalvlaran/georef/matrix"
)

// Transform maps coordinate tuples from a source space to a target space and
// can optionally report its Jacobian at the transformed point.
//
// Transform(src, derivate) returns the transformed tuple and, when derivate
// is true, the targetDim×sourceDim Jacobian matrix evaluated at src. When
// derivate is false the matrix result is nil. Implementations never mutate
// the src slice.
type Transform interface {
	// SourceDim returns the number of source ordinates per tuple.
	SourceDim() int

	// TargetDim returns the number of target ordinates per tuple.
	TargetDim() int

	// Transform converts one coordinate tuple, optionally with its Jacobian.
	Transform(src []float64, derivate bool) ([]float64, matrix.Matrix, error)
}

// validateInput checks that src matches the transform's source dimension.
func validateInput(src []float64, sourceDim int) error {
	if len(src) != sourceDim {
		return fmt.Errorf("got %d ordinates, want %d: %w", len(src), sourceDim, ErrDimensionMismatch)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Linear
// ---------------------------------------------------------------------------

// Linear is an affine Transform backed by a homogeneous
// (targetDim+1)×(sourceDim+1) matrix whose last row is 0 … 0 1.
type Linear struct {
	m matrix.Matrix
}

// NewLinear wraps an affine matrix as a Transform. The matrix may be
// rectangular (adding or dropping dimensions), but its last row must be
// exactly 0 … 0 1.
// Errors: ErrNilTransform on nil input, ErrNonAffine otherwise.
func NewLinear(m matrix.Matrix) (*Linear, error) {
	if m == nil {
		return nil, fmt.Errorf("NewLinear: %w", ErrNilTransform)
	}
	if m.Rows() < 2 || m.Cols() < 2 {
		return nil, fmt.Errorf("NewLinear: %d×%d has no coordinate dimensions: %w",
			m.Rows(), m.Cols(), ErrDimensionMismatch)
	}
	last := m.Rows() - 1
	for col := 0; col < m.Cols()-1; col++ {
		if v, _ := m.At(last, col); v != 0 {
			return nil, fmt.Errorf("NewLinear: %w", ErrNonAffine)
		}
	}
	if v, _ := m.At(last, m.Cols()-1); v != 1 {
		return nil, fmt.Errorf("NewLinear: %w", ErrNonAffine)
	}

	return &Linear{m: m}, nil
}

// Matrix returns the backing matrix. The reference is live: it is the same
// matrix the transform applies, not a copy.
func (l *Linear) Matrix() matrix.Matrix {
	return l.m
}

// SourceDim returns the number of source ordinates.
func (l *Linear) SourceDim() int {
	return l.m.Cols() - 1
}

// TargetDim returns the number of target ordinates.
func (l *Linear) TargetDim() int {
	return l.m.Rows() - 1
}

// Transform applies the affine conversion. The Jacobian of an affine
// conversion is its linear part, independent of the evaluated point.
func (l *Linear) Transform(src []float64, derivate bool) ([]float64, matrix.Matrix, error) {
	srcDim, tgtDim := l.SourceDim(), l.TargetDim()
	if err := validateInput(src, srcDim); err != nil {
		return nil, nil, fmt.Errorf("Linear.Transform: %w", err)
	}
	dst := make([]float64, tgtDim)
	for row := 0; row < tgtDim; row++ {
		sum, _ := l.m.At(row, srcDim) // translation term
		for col := 0; col < srcDim; col++ {
			coeff, _ := l.m.At(row, col)
			sum += coeff * src[col]
		}
		dst[row] = sum
	}
	if !derivate {
		return dst, nil, nil
	}
	jac, err := matrix.NewGeneral(tgtDim, srcDim)
	if err != nil {
		return nil, nil, fmt.Errorf("Linear.Transform: %w", err)
	}
	for row := 0; row < tgtDim; row++ {
		for col := 0; col < srcDim; col++ {
			v, _ := l.m.At(row, col)
			_ = jac.Set(row, col, v)
		}
	}

	return dst, jac, nil
}

// Inverse returns the linear transform backed by the inverse matrix.
// Errors: those of matrix.Inverse.
func (l *Linear) Inverse() (*Linear, error) {
	inv, err := matrix.Inverse(l.m)
	if err != nil {
		return nil, fmt.Errorf("Linear.Inverse: %w", err)
	}

	return NewLinear(inv)
}

// ---------------------------------------------------------------------------
// Concatenated
// ---------------------------------------------------------------------------

// Concatenated applies a sequence of transforms one after the other.
type Concatenated struct {
	steps []Transform
}

// NewConcatenated chains the given transforms. Nested Concatenated steps are
// flattened; a single-step chain returns that step unchanged.
// Errors: ErrNilTransform on an empty chain or nil step, ErrDimensionMismatch
// when consecutive steps disagree on dimensions.
func NewConcatenated(steps ...Transform) (Transform, error) {
	flat := make([]Transform, 0, len(steps))
	for _, step := range steps {
		if step == nil {
			return nil, fmt.Errorf("NewConcatenated: %w", ErrNilTransform)
		}
		if c, ok := step.(*Concatenated); ok {
			flat = append(flat, c.steps...)
		} else {
			flat = append(flat, step)
		}
	}
	if len(flat) == 0 {
		return nil, fmt.Errorf("NewConcatenated: %w", ErrNilTransform)
	}
	for i := 1; i < len(flat); i++ {
		if flat[i-1].TargetDim() != flat[i].SourceDim() {
			return nil, fmt.Errorf("NewConcatenated: step %d targets %dD but step %d expects %dD: %w",
				i-1, flat[i-1].TargetDim(), i, flat[i].SourceDim(), ErrDimensionMismatch)
		}
	}
	if len(flat) == 1 {
		return flat[0], nil
	}

	return &Concatenated{steps: flat}, nil
}

// Steps returns a copy of the chain.
func (c *Concatenated) Steps() []Transform {
	out := make([]Transform, len(c.steps))
	copy(out, c.steps)

	return out
}

// SourceDim returns the source dimension of the first step.
func (c *Concatenated) SourceDim() int {
	return c.steps[0].SourceDim()
}

// TargetDim returns the target dimension of the last step.
func (c *Concatenated) TargetDim() int {
	return c.steps[len(c.steps)-1].TargetDim()
}

// Transform runs the tuple through every step. The Jacobian follows the
// chain rule: the product of the per-step Jacobians, each evaluated at the
// intermediate point it receives.
func (c *Concatenated) Transform(src []float64, derivate bool) ([]float64, matrix.Matrix, error) {
	if err := validateInput(src, c.SourceDim()); err != nil {
		return nil, nil, fmt.Errorf("Concatenated.Transform: %w", err)
	}
	point := src
	var jacobian matrix.Matrix
	for i, step := range c.steps {
		next, stepJac, err := step.Transform(point, derivate)
		if err != nil {
			return nil, nil, fmt.Errorf("Concatenated.Transform: step %d: %w", i, err)
		}
		if derivate {
			if jacobian == nil {
				jacobian = stepJac
			} else {
				if jacobian, err = matrix.Multiply(stepJac, jacobian); err != nil {
					return nil, nil, fmt.Errorf("Concatenated.Transform: step %d: %w", i, err)
				}
			}
		}
		point = next
	}

	return point, jacobian, nil
}
