// SPDX-License-Identifier: MIT
// Package transform: Well-Known Text 1 formatting of transform chains.
//
// The elements produced are the math-transform subset of WKT 1:
// Param_MT for a parameterized operation (affine or contextual), Concat_MT
// for a sequence and Inverse_MT for an inverted operation. Output is
// single-line, elements separated by ", ".

package transform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/georef/matrix"
)

// contextualProvider is implemented by kernels carrying contextual
// parameters, which format as a single Param_MT element instead of the raw
// normalize → kernel → denormalize sequence.
type contextualProvider interface {
	Context() *ContextualParameters
}

// FormatWKT renders a reformatted chain as WKT 1. A single step is rendered
// bare; several steps are wrapped in Concat_MT.
// Errors: ErrUnformattable when a step carries no recognizable content.
func FormatWKT(steps []ChainStep) (string, error) {
	parts := make([]string, 0, len(steps))
	for i, step := range steps {
		part, err := formatStep(step)
		if err != nil {
			return "", fmt.Errorf("FormatWKT: step %d: %w", i, err)
		}
		parts = append(parts, part)
	}
	if len(parts) == 1 {
		return parts[0], nil
	}

	return "Concat_MT[" + strings.Join(parts, ", ") + "]", nil
}

// FormatTransformWKT renders a transform without chain reformatting: affine
// steps as Affine Param_MT elements, contextual kernels through their
// parameters, concatenations as Concat_MT.
// Errors: ErrNilTransform, ErrUnformattable.
func FormatTransformWKT(t Transform) (string, error) {
	if t == nil {
		return "", fmt.Errorf("FormatTransformWKT: %w", ErrNilTransform)
	}
	switch v := t.(type) {
	case *Linear:
		return formatAffine(v.Matrix()), nil
	case *Concatenated:
		steps := v.Steps()
		chain := make([]ChainStep, len(steps))
		for i, step := range steps {
			chain[i] = ChainStep{Transform: step}
		}

		return FormatWKT(chain)
	default:
		if p, ok := t.(contextualProvider); ok {
			return formatContextual(p.Context()), nil
		}
	}

	return "", fmt.Errorf("FormatTransformWKT: %T: %w", t, ErrUnformattable)
}

// formatStep renders one reformatted step.
func formatStep(step ChainStep) (string, error) {
	switch {
	case step.Parameters != nil:
		wkt := formatContextual(step.Parameters)
		if step.Inverted {
			wkt = "Inverse_MT[" + wkt + "]"
		}

		return wkt, nil
	case step.Affine != nil:
		return formatAffine(step.Affine), nil
	case step.Transform != nil:
		return FormatTransformWKT(step.Transform)
	}

	return "", ErrUnformattable
}

// formatContextual renders contextual parameters as a Param_MT element.
func formatContextual(c *ContextualParameters) string {
	var sb strings.Builder
	sb.WriteString("Param_MT[")
	sb.WriteString(strconv.Quote(c.Descriptor()))
	for _, p := range c.Parameters() {
		sb.WriteString(", ")
		writeParameter(&sb, p.Name, p.Value)
	}
	sb.WriteByte(']')

	return sb.String()
}

// formatAffine renders a matrix as the "Affine" Param_MT element: the shape
// first, then only the elements that differ from the identity pattern.
func formatAffine(m matrix.Matrix) string {
	var sb strings.Builder
	sb.WriteString(`Param_MT["Affine"`)
	sb.WriteString(", ")
	writeParameter(&sb, "num_row", float64(m.Rows()))
	sb.WriteString(", ")
	writeParameter(&sb, "num_col", float64(m.Cols()))
	for row := 0; row < m.Rows(); row++ {
		for col := 0; col < m.Cols(); col++ {
			v, _ := m.At(row, col)
			trivial := 0.0
			if row == col {
				trivial = 1.0
			}
			if v == trivial {
				continue
			}
			sb.WriteString(", ")
			writeParameter(&sb, fmt.Sprintf("elt_%d_%d", row, col), v)
		}
	}
	sb.WriteByte(']')

	return sb.String()
}

// writeParameter appends one Parameter["name", value] element.
func writeParameter(sb *strings.Builder, name string, value float64) {
	sb.WriteString("Parameter[")
	sb.WriteString(strconv.Quote(name))
	sb.WriteString(", ")
	sb.WriteString(strconv.FormatFloat(value, 'g', -1, 64))
	sb.WriteByte(']')
}
