package geom

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"
)

func TestVec2Zero(t *testing.T) {
	var v Vec2[float64]
	assert.True(t, v.IsNull(), "zero value should be the null vector")
	assert.Equal(t, 0.0, v.Length())

	v2 := V2(3.0, 4.0)
	assert.False(t, v2.IsNull())
	assert.InDelta(t, 5.0, v2.Length(), 1e-12)
}

func TestVec2Ops(t *testing.T) {
	v := V2(1.0, 0.0)
	w := V2(0.0, 1.0)

	assert.True(t, v.Eq(v))
	assert.False(t, v.Eq(w))

	assert.True(t, v.Add(w).Eq(V2(1.0, 1.0)))
	assert.True(t, v.Sub(w).Eq(V2(1.0, -1.0)))
	assert.True(t, v.Mul(2).Eq(V2(2.0, 0.0)))
	assert.True(t, v.Neg().Eq(V2(-1.0, 0.0)))
	assert.True(t, v.Sub(v).IsNull())

	half, err := v.Div(2)
	require.NoError(t, err)
	assert.True(t, half.Eq(V2(0.5, 0.0)))

	_, err = v.Div(0)
	assert.ErrorIs(t, err, ErrDivisionByZero)

	assert.Equal(t, 0.0, v.Dot(w))
	assert.Equal(t, 1.0, v.Dot(v))
	assert.Equal(t, 2.0, V2(2.0, 0.5).Dot(V2(0.5, 2.0)))
}

func TestVec2Eq(t *testing.T) {
	v := V2(1.0, 1.0)
	assert.True(t, v.Eq(V2(1.0+0x1p-52, 1.0)), "difference of exactly epsilon")
	assert.False(t, v.Eq(V2(1.0+0x1p-50, 1.0)), "difference above epsilon")

	// Integer vectors compare exactly.
	assert.True(t, V2(1, 2).Eq(V2(1, 2)))
	assert.False(t, V2(1, 2).Eq(V2(1, 3)))

	// Exactness holds even where float64 can no longer tell the
	// components apart.
	big := int64(1) << 60
	assert.True(t, V2(big, 0).Eq(V2(big, 0)))
	assert.False(t, V2(big, 0).Eq(V2(big+1, 0)))
}

func TestVec2Normalize(t *testing.T) {
	v := V2(3.0, 3.0)
	n, err := v.Normalize()
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2/2, n.X, 1e-12)
	assert.InDelta(t, math.Sqrt2/2, n.Y, 1e-12)
	assert.InDelta(t, 1.0, n.Length(), 1e-12)

	_, err = Vec2[float64]{}.Normalize()
	assert.ErrorIs(t, err, ErrNullVector)
}

func TestVec2Projections(t *testing.T) {
	v := V2(1.0, 1.0)
	v2 := V2(2.0, 0.0)
	v3 := V2(0.0, -1.0)

	cases := []struct {
		name   string
		of, on Vec2[float64]
		want   Vec2[float64]
	}{
		{"diag onto x", v, v2, V2(1.0, 0.0)},
		{"x onto diag", v2, v, V2(1.0, 1.0)},
		{"diag onto -y", v, v3, V2(0.0, 1.0)},
		{"-y onto diag", v3, v, V2(-0.5, -0.5)},
		{"x onto -y", v2, v3, V2(0.0, 0.0)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := c.of.Project(c.on)
			require.NoError(t, err)
			assert.True(t, got.Eq(c.want), "got %v, want %v", got, c.want)
		})
	}

	_, err := v.Project(Vec2[float64]{})
	assert.ErrorIs(t, err, ErrNullVector)

	s, err := v.ScalarProject(v2)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s, 1e-12)

	s, err = v2.ScalarProject(v)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, s, 1e-12)

	s, err = v3.ScalarProject(v)
	require.NoError(t, err)
	assert.InDelta(t, -math.Sqrt2/2, s, 1e-12)

	_, err = v.ScalarProject(Vec2[float64]{})
	assert.ErrorIs(t, err, ErrNullVector)
}

func TestVec2Normals(t *testing.T) {
	v := V2(1.0, 2.0)
	assert.True(t, v.RightNormal().Eq(V2(-2.0, 1.0)))
	assert.True(t, v.LeftNormal().Eq(V2(2.0, -1.0)))
	assert.Equal(t, 0.0, v.Dot(v.LeftNormal()), "perpendicular")
}

func TestVec2Rotate(t *testing.T) {
	v := V2(1.0, 0.0)
	assert.True(t, v.Rotate(math.Pi).Eq(V2(-1.0, 0.0)))
	assert.True(t, v.Rotate(math.Pi/2).Eq(V2(0.0, 1.0)))
	assert.True(t, v.Rotate(math.Pi/4).Eq(V2(math.Sqrt2/2, math.Sqrt2/2)))
	assert.Equal(t, v, v.Rotate(0))
}

func TestVec2String(t *testing.T) {
	assert.Equal(t, "Vector2[1, 2]", V2(1, 2).String())
	assert.Equal(t, "Vector2[1.5, -2]", V2(1.5, -2.0).String())
}

func TestVec2Conv(t *testing.T) {
	assert.Equal(t, V2(1, 2), V2Conv[int](V2(1.9, 2.1)))
	assert.Equal(t, V2(1.0, 2.0), V2Conv[float64](V2(1, 2)))
}

func TestVec2Interop(t *testing.T) {
	assert.Equal(t, image.Pt(3, 4), V2(3.0, 4.0).ImagePoint())
	assert.Equal(t, V2(3, 4), FromImagePoint(image.Pt(3, 4)))

	assert.Equal(t, fixed.Point26_6{X: 96, Y: 128}, V2(1.5, 2.0).Fixed())

	f := V2(1.5, -2.5).F64()
	assert.Equal(t, 1.5, f[0])
	assert.Equal(t, -2.5, f[1])
	assert.Equal(t, V2(1.5, -2.5), FromF64Vec2(f))
}
