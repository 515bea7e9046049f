package geom

import "fmt"

// Bounds3 is a 3-dimensional axis-aligned bounds described by its two
// corners. It follows the same closed-boundary rules as Bounds2.
type Bounds3[T Scalar] struct {
	Lower, Upper Vec3[T]
}

// B3 returns the bounds covering the two corner points. Each axis is
// reordered independently so that Upper >= Lower. If the two points
// are equal on some axis, the bounds is empty.
func B3[T Scalar](first, second Vec3[T]) Bounds3[T] {
	var b Bounds3[T]
	b.Set(first, second)
	return b
}

// B3Conv converts a Bounds3[In] to a Bounds3[Out] with possible loss
// of precision.
func B3Conv[Out Scalar, In Scalar](b Bounds3[In]) Bounds3[Out] {
	return Bounds3[Out]{
		Lower: V3Conv[Out](b.Lower),
		Upper: V3Conv[Out](b.Upper),
	}
}

// IsEmpty reports whether the bounds contains no points, which is the
// case when Upper is not strictly greater than Lower on some axis.
func (b Bounds3[T]) IsEmpty() bool {
	return b.Upper.X <= b.Lower.X || b.Upper.Y <= b.Lower.Y || b.Upper.Z <= b.Lower.Z
}

// Set resets the bounds to cover the two corner points, reordering
// each axis independently so that Upper >= Lower.
func (b *Bounds3[T]) Set(first, second Vec3[T]) {
	if first.X < second.X {
		first.X, second.X = second.X, first.X
	}
	if first.Y < second.Y {
		first.Y, second.Y = second.Y, first.Y
	}
	if first.Z < second.Z {
		first.Z, second.Z = second.Z, first.Z
	}
	b.Upper, b.Lower = first, second
}

// Size returns the extent of the bounds on each axis.
func (b Bounds3[T]) Size() Vec3[T] {
	return b.Upper.Sub(b.Lower)
}

// Include expands the bounds, axis by axis, to cover p. It never
// shrinks the bounds.
func (b *Bounds3[T]) Include(p Vec3[T]) {
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
	if p.Z > b.Upper.Z {
		b.Upper.Z = p.Z
	}
	if p.Z < b.Lower.Z {
		b.Lower.Z = p.Z
	}
}

// IncludeBounds expands the bounds to cover o, which is equivalent to
// including both of its corners.
func (b *Bounds3[T]) IncludeBounds(o Bounds3[T]) {
	b.Include(o.Upper)
	b.Include(o.Lower)
}

// Intersect tightens the bounds, axis by axis, to the region covered
// by both b and o. If the two do not overlap on some axis, b becomes
// empty. That is a valid outcome, not an error.
func (b *Bounds3[T]) Intersect(o Bounds3[T]) {
	if o.Upper.X < b.Upper.X {
		b.Upper.X = o.Upper.X
	}
	if o.Upper.Y < b.Upper.Y {
		b.Upper.Y = o.Upper.Y
	}
	if o.Upper.Z < b.Upper.Z {
		b.Upper.Z = o.Upper.Z
	}
	if o.Lower.X > b.Lower.X {
		b.Lower.X = o.Lower.X
	}
	if o.Lower.Y > b.Lower.Y {
		b.Lower.Y = o.Lower.Y
	}
	if o.Lower.Z > b.Lower.Z {
		b.Lower.Z = o.Lower.Z
	}
}

// Intersection returns the intersection of b and o without modifying
// either.
func (b Bounds3[T]) Intersection(o Bounds3[T]) Bounds3[T] {
	b.Intersect(o)
	return b
}

// Union returns the smallest bounds covering both b and o.
func (b Bounds3[T]) Union(o Bounds3[T]) Bounds3[T] {
	b.IncludeBounds(o)
	return b
}

// HasPointInside reports whether p is inside the bounds. Points
// exactly on the boundary count as inside.
func (b Bounds3[T]) HasPointInside(p Vec3[T]) bool {
	return p.X <= b.Upper.X && p.X >= b.Lower.X &&
		p.Y <= b.Upper.Y && p.Y >= b.Lower.Y &&
		p.Z <= b.Upper.Z && p.Z >= b.Lower.Z
}

// HasBoundsInside reports whether o is entirely inside the bounds,
// using the same inclusive rule on both of its corners.
func (b Bounds3[T]) HasBoundsInside(o Bounds3[T]) bool {
	return b.HasPointInside(o.Upper) && b.HasPointInside(o.Lower)
}

// IsIntersecting reports whether the intersection of b and o is
// non-empty.
func (b Bounds3[T]) IsIntersecting(o Bounds3[T]) bool {
	return !b.Intersection(o).IsEmpty()
}

// Eq reports whether b and o cover the same region. All empty bounds
// are considered equal.
func (b Bounds3[T]) Eq(o Bounds3[T]) bool {
	if b.IsEmpty() && o.IsEmpty() {
		return true
	}
	return b.Lower.Eq(o.Lower) && b.Upper.Eq(o.Upper)
}

func (b Bounds3[T]) String() string {
	return fmt.Sprintf("Bounds3[%v, %v]", b.Lower, b.Upper)
}
