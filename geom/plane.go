package geom

// PlaneVector is the operation set a vector type needs for plane
// geometry. Vec2 and Vec3 of any Float type satisfy it.
type PlaneVector[T Float, V any] interface {
	Dot(V) T
	Normalize() (V, error)
	Sub(V) V
	Mul(T) V
}

// Plane is an oriented plane described by a unit normal and its
// signed distance from the origin along that normal. The vector type
// picks the dimension: Vec2 gives an oriented line, Vec3 a plane in
// space.
type Plane[T Float, V PlaneVector[T, V]] struct {
	normal V
	origin T
}

// NewPlane returns the plane orthogonal to normal that passes through
// point. The normal is normalized before being stored; a null normal
// returns ErrNullVector.
func NewPlane[T Float, V PlaneVector[T, V]](normal, point V) (Plane[T, V], error) {
	var p Plane[T, V]
	if err := p.Set(normal, point); err != nil {
		return Plane[T, V]{}, err
	}
	return p, nil
}

// Normal returns the plane's unit normal.
func (p Plane[T, V]) Normal() V {
	return p.normal
}

// Offset returns the signed distance between the plane and the
// origin, measured along the normal.
func (p Plane[T, V]) Offset() T {
	return p.origin
}

// Set replaces the plane with the one orthogonal to normal passing
// through point. On error the receiver is unchanged.
func (p *Plane[T, V]) Set(normal, point V) error {
	n, err := normal.Normalize()
	if err != nil {
		return err
	}
	p.normal = n
	p.origin = point.Dot(n)
	return nil
}

// IsOn reports whether point lies on the plane, to within the machine
// epsilon of T. The tolerance matches vector equality so that the
// plane predicates and Eq agree on the same points.
func (p Plane[T, V]) IsOn(point V) bool {
	return AboutEq(point.Dot(p.normal), p.origin)
}

// IsOver reports whether point lies strictly on the side of the plane
// the normal points toward.
func (p Plane[T, V]) IsOver(point V) bool {
	return point.Dot(p.normal) > p.origin
}

// IsUnder reports whether point lies strictly on the side of the
// plane the normal points away from.
func (p Plane[T, V]) IsUnder(point V) bool {
	return point.Dot(p.normal) < p.origin
}

// Distance returns the unsigned gap between point and the plane. It
// is zero for points on the plane.
func (p Plane[T, V]) Distance(point V) T {
	d := point.Dot(p.normal)
	if d > p.origin {
		return d - p.origin
	}
	return p.origin - d
}

// Project drops point onto the plane along the normal.
func (p Plane[T, V]) Project(point V) V {
	d := point.Dot(p.normal)
	return point.Sub(p.normal.Mul(d - p.origin))
}
