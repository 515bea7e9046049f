package geom

import "fmt"

// Bounds is an axis-aligned bounds of arbitrary dimension, the
// index-accessed counterpart of Bounds2 and Bounds3. Its corners are
// kept behind accessors because they share the receiver's dimension.
// The zero value has dimension 0 and is empty; usable values come
// from NewBounds.
//
// The corners are Vectors and share their backing storage under plain
// assignment; the accessors and mutators here always clone, so two
// Bounds alias only when copied directly. Mutate copies through Set,
// SetLowerLimit, and SetUpperLimit rather than sharing them.
type Bounds[T Scalar] struct {
	lower, upper Vector[T]
}

// NewBounds returns the bounds covering the two corner points. Each
// axis is reordered independently so that the upper limit is >= the
// lower limit. It panics if the dimensions of the two points differ.
func NewBounds[T Scalar](first, second Vector[T]) Bounds[T] {
	var b Bounds[T]
	b.Set(first, second)
	return b
}

// Dim returns the dimension of the bounds.
func (b Bounds[T]) Dim() int {
	return b.upper.Dim()
}

// UpperLimit returns a copy of the upper corner.
func (b Bounds[T]) UpperLimit() Vector[T] {
	return b.upper.Clone()
}

// LowerLimit returns a copy of the lower corner.
func (b Bounds[T]) LowerLimit() Vector[T] {
	return b.lower.Clone()
}

// SetUpperLimit replaces the upper corner. The result may be an empty
// bounds, which is a valid state, not an error. It panics if the
// dimension of v differs from the bounds' dimension.
func (b *Bounds[T]) SetUpperLimit(v Vector[T]) {
	b.upper.sameDim(v)
	b.upper = v.Clone()
}

// SetLowerLimit replaces the lower corner. The result may be an empty
// bounds, which is a valid state, not an error. It panics if the
// dimension of v differs from the bounds' dimension.
func (b *Bounds[T]) SetLowerLimit(v Vector[T]) {
	b.lower.sameDim(v)
	b.lower = v.Clone()
}

// IsEmpty reports whether the bounds contains no points, which is the
// case when the upper limit is not strictly greater than the lower
// limit on some axis.
func (b Bounds[T]) IsEmpty() bool {
	if b.upper.Dim() == 0 {
		return true
	}
	for i, x := range b.upper.c {
		if x <= b.lower.c[i] {
			return true
		}
	}
	return false
}

// Set resets the bounds to cover the two corner points, reordering
// each axis independently so that the upper limit is >= the lower
// limit. It panics if the dimensions of the two points differ.
func (b *Bounds[T]) Set(first, second Vector[T]) {
	first.sameDim(second)
	upper := first.Clone()
	lower := second.Clone()
	for i, x := range upper.c {
		if x < lower.c[i] {
			upper.c[i], lower.c[i] = lower.c[i], x
		}
	}
	b.upper, b.lower = upper, lower
}

// Include expands the bounds, axis by axis, to cover p. It never
// shrinks the bounds. It panics if the dimension of p differs from
// the bounds' dimension.
func (b *Bounds[T]) Include(p Vector[T]) {
	b.upper.sameDim(p)
	for i, x := range p.c {
		if x > b.upper.c[i] {
			b.upper.c[i] = x
		}
		if x < b.lower.c[i] {
			b.lower.c[i] = x
		}
	}
}

// IncludeBounds expands the bounds to cover o, which is equivalent to
// including both of its corners.
func (b *Bounds[T]) IncludeBounds(o Bounds[T]) {
	b.Include(o.upper)
	b.Include(o.lower)
}

// Intersect tightens the bounds, axis by axis, to the region covered
// by both b and o. If the two do not overlap on some axis, b becomes
// empty. That is a valid outcome, not an error. It panics if the
// dimensions differ.
func (b *Bounds[T]) Intersect(o Bounds[T]) {
	b.upper.sameDim(o.upper)
	for i, x := range o.upper.c {
		if x < b.upper.c[i] {
			b.upper.c[i] = x
		}
		if o.lower.c[i] > b.lower.c[i] {
			b.lower.c[i] = o.lower.c[i]
		}
	}
}

// Intersection returns the intersection of b and o without modifying
// either.
func (b Bounds[T]) Intersection(o Bounds[T]) Bounds[T] {
	c := Bounds[T]{lower: b.lower.Clone(), upper: b.upper.Clone()}
	c.Intersect(o)
	return c
}

// Union returns the smallest bounds covering both b and o.
func (b Bounds[T]) Union(o Bounds[T]) Bounds[T] {
	c := Bounds[T]{lower: b.lower.Clone(), upper: b.upper.Clone()}
	c.IncludeBounds(o)
	return c
}

// HasPointInside reports whether p is inside the bounds. Points
// exactly on the boundary count as inside.
func (b Bounds[T]) HasPointInside(p Vector[T]) bool {
	b.upper.sameDim(p)
	for i, x := range p.c {
		if x > b.upper.c[i] || x < b.lower.c[i] {
			return false
		}
	}
	return true
}

// HasBoundsInside reports whether o is entirely inside the bounds,
// using the same inclusive rule on both of its corners.
func (b Bounds[T]) HasBoundsInside(o Bounds[T]) bool {
	return b.HasPointInside(o.upper) && b.HasPointInside(o.lower)
}

// IsIntersecting reports whether the intersection of b and o is
// non-empty.
func (b Bounds[T]) IsIntersecting(o Bounds[T]) bool {
	return !b.Intersection(o).IsEmpty()
}

// Eq reports whether b and o cover the same region. All empty bounds
// are considered equal, regardless of dimension.
func (b Bounds[T]) Eq(o Bounds[T]) bool {
	if b.IsEmpty() && o.IsEmpty() {
		return true
	}
	return b.lower.Eq(o.lower) && b.upper.Eq(o.upper)
}

func (b Bounds[T]) String() string {
	return fmt.Sprintf("Bounds%d[%v, %v]", b.Dim(), b.lower, b.upper)
}
