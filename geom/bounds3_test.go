package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBounds3Construction(t *testing.T) {
	b := B3(V3(1.0, -2.0, 3.0), V3(-1.0, 2.0, -3.0))
	assert.False(t, b.IsEmpty())
	assert.True(t, b.Upper.Eq(V3(1.0, 2.0, 3.0)))
	assert.True(t, b.Lower.Eq(V3(-1.0, -2.0, -3.0)))

	assert.True(t, B3(V3(1.0, 1.0, 1.0), V3(1.0, 1.0, 1.0)).IsEmpty())

	// One degenerate axis is enough to empty the whole box.
	assert.True(t, B3(V3(0.0, 0.0, 0.0), V3(1.0, 1.0, 0.0)).IsEmpty())
}

func TestBounds3IncludeIntersect(t *testing.T) {
	b := B3(V3(0.0, 0.0, 0.0), V3(1.0, 1.0, 1.0))

	b.Include(V3(2.0, -1.0, 0.5))
	assert.True(t, b.Upper.Eq(V3(2.0, 1.0, 1.0)))
	assert.True(t, b.Lower.Eq(V3(0.0, -1.0, 0.0)))

	o := B3(V3(0.5, 0.5, 0.5), V3(5.0, 5.0, 5.0))
	got := b.Intersection(o)
	assert.True(t, got.Upper.Eq(V3(2.0, 1.0, 1.0)))
	assert.True(t, got.Lower.Eq(V3(0.5, 0.5, 0.5)))
	assert.True(t, b.IsIntersecting(o))

	disjoint := B3(V3(10.0, 10.0, 10.0), V3(11.0, 11.0, 11.0))
	assert.True(t, b.Intersection(disjoint).IsEmpty())
	assert.False(t, b.IsIntersecting(disjoint))

	assert.True(t, b.Intersection(b).Eq(b))
}

func TestBounds3Containment(t *testing.T) {
	b := B3(V3(0.0, 0.0, 0.0), V3(2.0, 2.0, 2.0))

	assert.True(t, b.HasPointInside(V3(2.0, 2.0, 2.0)), "boundary is inclusive")
	assert.False(t, b.HasPointInside(V3(2.0, 2.0, 2.1)))
	assert.True(t, b.HasBoundsInside(B3(V3(0.0, 0.0, 0.0), V3(1.0, 1.0, 1.0))))
	assert.False(t, b.HasBoundsInside(B3(V3(1.0, 1.0, 1.0), V3(3.0, 3.0, 3.0))))
}

func TestBounds3String(t *testing.T) {
	b := B3(V3(0, 0, 0), V3(1, 2, 3))
	assert.Equal(t, "Bounds3[Vector3[0, 0, 0], Vector3[1, 2, 3]]", b.String())
}
