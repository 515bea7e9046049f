package geom

import (
	"fmt"
	"image"
)

// Bounds2 is a 2-dimensional axis-aligned bounds described by its two
// corners. It contains the points with Lower.X <= X <= Upper.X and
// Lower.Y <= Y <= Upper.Y; boundaries are closed on both sides. It is
// empty if Upper is not strictly greater than Lower on every axis.
//
// Assigning Upper or Lower directly may produce an empty bounds. That
// is a valid state, not an error.
type Bounds2[T Scalar] struct {
	Lower, Upper Vec2[T]
}

// B2 returns the bounds covering the two corner points. Each axis is
// reordered independently so that Upper >= Lower. If the two points
// are equal on some axis, the bounds is empty.
func B2[T Scalar](first, second Vec2[T]) Bounds2[T] {
	var b Bounds2[T]
	b.Set(first, second)
	return b
}

// B2Conv converts a Bounds2[In] to a Bounds2[Out] with possible loss
// of precision.
func B2Conv[Out Scalar, In Scalar](b Bounds2[In]) Bounds2[Out] {
	return Bounds2[Out]{
		Lower: V2Conv[Out](b.Lower),
		Upper: V2Conv[Out](b.Upper),
	}
}

func FromImageRect(r image.Rectangle) Bounds2[int] {
	return Bounds2[int]{
		Lower: FromImagePoint(r.Min),
		Upper: FromImagePoint(r.Max),
	}
}

// IsEmpty reports whether the bounds contains no points, which is the
// case when Upper is not strictly greater than Lower on some axis.
func (b Bounds2[T]) IsEmpty() bool {
	return b.Upper.X <= b.Lower.X || b.Upper.Y <= b.Lower.Y
}

// Set resets the bounds to cover the two corner points, reordering
// each axis independently so that Upper >= Lower.
func (b *Bounds2[T]) Set(first, second Vec2[T]) {
	if first.X < second.X {
		first.X, second.X = second.X, first.X
	}
	if first.Y < second.Y {
		first.Y, second.Y = second.Y, first.Y
	}
	b.Upper, b.Lower = first, second
}

// Size returns the extent of the bounds on each axis.
func (b Bounds2[T]) Size() Vec2[T] {
	return b.Upper.Sub(b.Lower)
}

// Include expands the bounds, axis by axis, to cover p. It never
// shrinks the bounds.
func (b *Bounds2[T]) Include(p Vec2[T]) {
	if p.X > b.Upper.X {
		b.Upper.X = p.X
	}
	if p.X < b.Lower.X {
		b.Lower.X = p.X
	}
	if p.Y > b.Upper.Y {
		b.Upper.Y = p.Y
	}
	if p.Y < b.Lower.Y {
		b.Lower.Y = p.Y
	}
}

// IncludeBounds expands the bounds to cover o, which is equivalent to
// including both of its corners.
func (b *Bounds2[T]) IncludeBounds(o Bounds2[T]) {
	b.Include(o.Upper)
	b.Include(o.Lower)
}

// Intersect tightens the bounds, axis by axis, to the region covered
// by both b and o. If the two do not overlap on some axis, b becomes
// empty. That is a valid outcome, not an error.
func (b *Bounds2[T]) Intersect(o Bounds2[T]) {
	if o.Upper.X < b.Upper.X {
		b.Upper.X = o.Upper.X
	}
	if o.Upper.Y < b.Upper.Y {
		b.Upper.Y = o.Upper.Y
	}
	if o.Lower.X > b.Lower.X {
		b.Lower.X = o.Lower.X
	}
	if o.Lower.Y > b.Lower.Y {
		b.Lower.Y = o.Lower.Y
	}
}

// Intersection returns the intersection of b and o without modifying
// either.
func (b Bounds2[T]) Intersection(o Bounds2[T]) Bounds2[T] {
	b.Intersect(o)
	return b
}

// Union returns the smallest bounds covering both b and o.
func (b Bounds2[T]) Union(o Bounds2[T]) Bounds2[T] {
	b.IncludeBounds(o)
	return b
}

// HasPointInside reports whether p is inside the bounds. Points
// exactly on the boundary count as inside.
func (b Bounds2[T]) HasPointInside(p Vec2[T]) bool {
	return p.X <= b.Upper.X && p.X >= b.Lower.X &&
		p.Y <= b.Upper.Y && p.Y >= b.Lower.Y
}

// HasBoundsInside reports whether o is entirely inside the bounds,
// using the same inclusive rule on both of its corners.
func (b Bounds2[T]) HasBoundsInside(o Bounds2[T]) bool {
	return b.HasPointInside(o.Upper) && b.HasPointInside(o.Lower)
}

// IsIntersecting reports whether the intersection of b and o is
// non-empty.
func (b Bounds2[T]) IsIntersecting(o Bounds2[T]) bool {
	return !b.Intersection(o).IsEmpty()
}

// Eq reports whether b and o cover the same region. All empty bounds
// are considered equal.
func (b Bounds2[T]) Eq(o Bounds2[T]) bool {
	if b.IsEmpty() && o.IsEmpty() {
		return true
	}
	return b.Lower.Eq(o.Lower) && b.Upper.Eq(o.Upper)
}

func (b Bounds2[T]) String() string {
	return fmt.Sprintf("Bounds2[%v, %v]", b.Lower, b.Upper)
}

func (b Bounds2[T]) ImageRect() image.Rectangle {
	return image.Rectangle{
		Min: b.Lower.ImagePoint(),
		Max: b.Upper.ImagePoint(),
	}
}
