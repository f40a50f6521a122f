// SPDX-License-Identifier: MIT
// Package transform_test: contextual parameters lifecycle.

package transform_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/georef/matrix"
	"github.com/katalvlaran/georef/transform"
)

func TestContextualParameters_Lifecycle(t *testing.T) {
	t.Parallel()

	c, err := transform.NewContextualParameters("Datum shift", 2, 2)
	require.NoError(t, err)
	require.Equal(t, "Datum shift", c.Descriptor())
	require.False(t, c.IsFrozen())

	require.NoError(t, c.SetParameter("dim", 2))
	require.NoError(t, c.SetParameter("X-axis translation", 84.87))
	require.NoError(t, c.SetParameter("dim", 3)) // replaces, keeps position
	require.Equal(t, []transform.Parameter{
		{Name: "dim", Value: 3},
		{Name: "X-axis translation", Value: 84.87},
	}, c.Parameters())

	// Both normalization matrices start as identities.
	require.True(t, c.Normalization(true).IsIdentity())
	require.True(t, c.Normalization(false).IsIdentity())
}

func TestContextualParameters_NormalizeGeographicInputs(t *testing.T) {
	t.Parallel()

	c, err := transform.NewContextualParameters("Datum shift", 2, 2)
	require.NoError(t, err)
	require.NoError(t, c.NormalizeGeographicInputs(10))

	normalize, err := transform.NewLinear(c.Normalization(true))
	require.NoError(t, err)
	dst, _, err := normalize.Transform([]float64{10, 45}, false)
	require.NoError(t, err)
	require.InDelta(t, 0, dst[0], 1e-12, "λ0 becomes the origin")
	require.InDelta(t, 45*math.Pi/180, dst[1], 1e-12)
}

// TestContextualParameters_PipelineRoundTrip wires an identity kernel between
// the geographic conversions: the complete pipeline must give back its input
// up to rounding.
func TestContextualParameters_PipelineRoundTrip(t *testing.T) {
	t.Parallel()

	c, err := transform.NewContextualParameters("No-op shift", 2, 2)
	require.NoError(t, err)
	require.NoError(t, c.NormalizeGeographicInputs(0))
	require.NoError(t, c.DenormalizeGeographicOutputs(0))

	identity, err := matrix.CreateIdentity(3)
	require.NoError(t, err)
	kernel, err := transform.NewLinear(identity)
	require.NoError(t, err)

	pipeline, err := c.Concatenation(kernel)
	require.NoError(t, err)
	dst, _, err := pipeline.Transform([]float64{2.13, 53.81}, false)
	require.NoError(t, err)
	require.InDelta(t, 2.13, dst[0], 1e-12)
	require.InDelta(t, 53.81, dst[1], 1e-12)
}

func TestContextualParameters_Freeze(t *testing.T) {
	t.Parallel()

	c, err := transform.NewContextualParameters("Datum shift", 2, 2)
	require.NoError(t, err)
	live := c.Normalization(true)

	identity, err := matrix.CreateIdentity(3)
	require.NoError(t, err)
	kernel, err := transform.NewLinear(identity)
	require.NoError(t, err)
	_, err = c.Concatenation(kernel)
	require.NoError(t, err)
	require.True(t, c.IsFrozen())

	require.ErrorIs(t, c.SetParameter("dim", 2), transform.ErrFrozen)
	require.ErrorIs(t, c.NormalizeGeographicInputs(0), transform.ErrFrozen)
	require.ErrorIs(t, c.DenormalizeGeographicOutputs(0), transform.ErrFrozen)

	// After freezing, Normalization hands out copies only.
	frozenCopy := c.Normalization(true)
	require.NotSame(t, live, frozenCopy)
	require.NoError(t, frozenCopy.Set(0, 0, 99))
	v, err := c.Normalization(true).At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v, "mutating the copy must not leak back")
}

func TestContextualParameters_DimensionChecks(t *testing.T) {
	t.Parallel()

	c, err := transform.NewContextualParameters("Datum shift", 2, 3)
	require.NoError(t, err)

	_, err = c.Concatenation(nil)
	require.ErrorIs(t, err, transform.ErrNilTransform)

	identity, err := matrix.CreateIdentity(3)
	require.NoError(t, err)
	flat, err := transform.NewLinear(identity) // 2D → 2D, but 3D expected out
	require.NoError(t, err)
	_, err = c.Concatenation(flat)
	require.ErrorIs(t, err, transform.ErrDimensionMismatch)
}

func TestContextualParameters_CloneAndEqual(t *testing.T) {
	t.Parallel()

	c, err := transform.NewContextualParameters("Datum shift", 2, 2)
	require.NoError(t, err)
	require.NoError(t, c.SetParameter("dim", 2))
	require.NoError(t, c.NormalizeGeographicInputs(0))

	clone := c.Clone()
	require.True(t, c.Equal(clone))
	require.False(t, clone.IsFrozen())

	require.NoError(t, clone.SetParameter("dim", 3))
	require.False(t, c.Equal(clone))

	other, err := transform.NewContextualParameters("Other shift", 2, 2)
	require.NoError(t, err)
	require.False(t, c.Equal(other))
	require.False(t, c.Equal(nil))
	require.True(t, c.Equal(c))
}
