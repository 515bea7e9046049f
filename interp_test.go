package xmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerp(t *testing.T) {
	assert.Equal(t, 1.0, Lerp(1.0, 3.0, 0.0))
	assert.Equal(t, 3.0, Lerp(1.0, 3.0, 1.0))
	assert.Equal(t, 2.0, Lerp(1.0, 3.0, 0.5))
	assert.InDelta(t, 1.5, Lerp(1.0, 3.0, 0.25), 1e-12)
}

func TestCosineInterp(t *testing.T) {
	assert.InDelta(t, 1.0, CosineInterp(1.0, 3.0, 0.0), 1e-12)
	assert.InDelta(t, 3.0, CosineInterp(1.0, 3.0, 1.0), 1e-12)
	// The half cosine crosses the midpoint at mu = 1/2 like the
	// linear form, but flattens at the ends.
	assert.InDelta(t, 2.0, CosineInterp(1.0, 3.0, 0.5), 1e-12)
	assert.Less(t, CosineInterp(1.0, 3.0, 0.1), Lerp(1.0, 3.0, 0.1))
}

func TestCubicInterp(t *testing.T) {
	// The curve passes through the middle samples.
	assert.InDelta(t, 1.0, CubicInterp(0.0, 1.0, 2.0, 3.0, 0.0), 1e-12)
	assert.InDelta(t, 2.0, CubicInterp(0.0, 1.0, 2.0, 3.0, 1.0), 1e-12)
	assert.InDelta(t, 1.5, CubicInterp(0.0, 1.0, 2.0, 3.0, 0.5), 1e-12)
}

func TestCatmullRomInterp(t *testing.T) {
	// The spline passes through the middle samples.
	assert.InDelta(t, 1.0, CatmullRomInterp(0.0, 1.0, 2.0, 3.0, 0.0), 1e-12)
	assert.InDelta(t, 2.0, CatmullRomInterp(0.0, 1.0, 2.0, 3.0, 1.0), 1e-12)
	assert.InDelta(t, 1.5, CatmullRomInterp(0.0, 1.0, 2.0, 3.0, 0.5), 1e-12)
}
