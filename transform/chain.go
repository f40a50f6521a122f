// SPDX-License-Identifier: MIT
// Package transform: reformatting a transform chain around its kernel.

package transform

import (
	"fmt"

	"github.com/katalvlaran/georef/matrix"
)

// ChainStep is one element of a reformatted chain, exactly one of the three
// content fields set:
//   - Transform: a step left unchanged;
//   - Affine: a neighbour affine rewritten so the kernel's normalization is
//     no longer folded into it;
//   - Parameters: the kernel shown as a single parameterized operation,
//     Inverted when the chain applies its inverse.
type ChainStep struct {
	Transform  Transform
	Affine     matrix.Matrix
	Parameters *ContextualParameters
	Inverted   bool
}

// ReformatChain rewrites a chain of transforms for presentation, replacing
// the kernel at steps[index] by its contextual parameters. A contextual
// operation semantically includes its normalize and denormalize conversions,
// so the neighbouring affine steps are rewritten to exclude them:
//
//	shown-before = normalize⁻¹ × before
//	shown-after  = after × denormalize⁻¹
//
// When the chain holds the inverse of the kernel, the roles swap and no
// matrix inversion is needed: shown-before = denormalize × before and
// shown-after = after × normalize. A rewritten affine that collapses to the
// identity is dropped; when the kernel has no affine neighbour on a side,
// the residual conversion is inserted as a new step if it is not the
// identity.
//
// Errors: ErrIndexOutOfBounds, ErrNilTransform, and matrix.ErrSingular when
// a normalization matrix cannot be inverted; in that case the chain is left
// unreformatted and no partial result is returned.
func (c *ContextualParameters) ReformatChain(steps []Transform, index int, inverse bool) ([]ChainStep, error) {
	if index < 0 || index >= len(steps) {
		return nil, fmt.Errorf("ReformatChain: index %d of %d steps: %w",
			index, len(steps), ErrIndexOutOfBounds)
	}
	for i, step := range steps {
		if step == nil {
			return nil, fmt.Errorf("ReformatChain: step %d: %w", i, ErrNilTransform)
		}
	}

	shownBefore, consumeBefore, err := c.reformatSide(steps, index, inverse, true)
	if err != nil {
		return nil, fmt.Errorf("ReformatChain: %w", err)
	}
	shownAfter, consumeAfter, err := c.reformatSide(steps, index, inverse, false)
	if err != nil {
		return nil, fmt.Errorf("ReformatChain: %w", err)
	}

	out := make([]ChainStep, 0, len(steps)+2)
	for i, step := range steps {
		switch {
		case i == index-1 && consumeBefore:
			// Replaced by shownBefore next to the kernel, or dropped.
		case i == index+1 && consumeAfter:
			// Same on the output side.
		case i == index:
			if shownBefore != nil {
				out = append(out, ChainStep{Affine: shownBefore})
			}
			out = append(out, ChainStep{Parameters: c, Inverted: inverse})
			if shownAfter != nil {
				out = append(out, ChainStep{Affine: shownAfter})
			}
		default:
			out = append(out, ChainStep{Transform: step})
		}
	}

	return out, nil
}

// reformatSide computes the rewritten affine on one side of the kernel.
// It returns the matrix to show (nil when it collapses to the identity) and
// whether the neighbouring step was consumed by the rewrite.
func (c *ContextualParameters) reformatSide(steps []Transform, index int, inverse, beforeSide bool) (matrix.Matrix, bool, error) {
	// The conversion to strip from this side. Inverting swaps which matrix
	// sits on which side and cancels the inversion.
	var userDefined matrix.Matrix
	if inverse == beforeSide {
		userDefined = c.denormalize
	} else {
		userDefined = c.normalize
	}
	if !inverse {
		inverted, err := matrix.Inverse(userDefined)
		if err != nil {
			return nil, false, err
		}
		userDefined = inverted
	} else {
		userDefined = userDefined.Clone()
	}

	neighbour := index + 1
	if beforeSide {
		neighbour = index - 1
	}
	consumed := false
	if neighbour >= 0 && neighbour < len(steps) {
		if linear, ok := steps[neighbour].(*Linear); ok {
			// shown-before = stripped × before; shown-after = after × stripped.
			var product *matrix.General
			var err error
			if beforeSide {
				product, err = matrix.Multiply(userDefined, linear.Matrix())
			} else {
				product, err = matrix.Multiply(linear.Matrix(), userDefined)
			}
			if err != nil {
				return nil, false, err
			}
			userDefined = product
			consumed = true
		}
	}
	if userDefined.IsIdentity() {
		return nil, consumed, nil
	}

	return userDefined, consumed, nil
}
