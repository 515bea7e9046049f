package geom

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// Vec3 is a 3-dimensional vector. The zero value is the null vector.
type Vec3[T Scalar] struct {
	X, Y, Z T
}

// V3 is shorthand for Vec3[T]{x, y, z}.
func V3[T Scalar](x, y, z T) Vec3[T] {
	return Vec3[T]{x, y, z}
}

// V3Conv converts a Vec3[In] to a Vec3[Out] with possible loss of
// precision.
func V3Conv[Out Scalar, In Scalar](v Vec3[In]) Vec3[Out] {
	return V3(Out(v.X), Out(v.Y), Out(v.Z))
}

func FromF64Vec3(v f64.Vec3) Vec3[float64] {
	return V3(v[0], v[1], v[2])
}

// IsNull reports whether every component is exactly zero.
func (v Vec3[T]) IsNull() bool {
	return (v.X == 0) && (v.Y == 0) && (v.Z == 0)
}

func (v Vec3[T]) Add(w Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

func (v Vec3[T]) Sub(w Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

func (v Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{-v.X, -v.Y, -v.Z}
}

func (v Vec3[T]) Mul(k T) Vec3[T] {
	return Vec3[T]{v.X * k, v.Y * k, v.Z * k}
}

// Div divides every component by k. It returns ErrDivisionByZero if k
// is exactly zero.
func (v Vec3[T]) Div(k T) (Vec3[T], error) {
	if k == 0 {
		return Vec3[T]{}, ErrDivisionByZero
	}
	return Vec3[T]{v.X / k, v.Y / k, v.Z / k}, nil
}

// Dot returns the dot product of v and w.
func (v Vec3[T]) Dot(w Vec3[T]) T {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the right-handed cross product v × w. Note that
// v.Cross(w) == w.Cross(v).Neg().
func (v Vec3[T]) Cross(w Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the Euclidean norm of v.
func (v Vec3[T]) Length() T {
	x, y, z := float64(v.X), float64(v.Y), float64(v.Z)
	return T(math.Sqrt(x*x + y*y + z*z))
}

// Normalize returns the unit vector pointing in the direction of v.
// It returns ErrNullVector if v is null, since the null vector has no
// direction.
func (v Vec3[T]) Normalize() (Vec3[T], error) {
	if v.IsNull() {
		return Vec3[T]{}, ErrNullVector
	}
	x, y, z := float64(v.X), float64(v.Y), float64(v.Z)
	l := math.Sqrt(x*x + y*y + z*z)
	return V3(T(x/l), T(y/l), T(z/l)), nil
}

// Project returns the projection of v onto w, which is
// w * (v·w / w·w). It returns ErrNullVector if w is null.
func (v Vec3[T]) Project(w Vec3[T]) (Vec3[T], error) {
	if w.IsNull() {
		return Vec3[T]{}, ErrNullVector
	}
	k := float64(v.Dot(w)) / float64(w.Dot(w))
	return V3(T(float64(w.X)*k), T(float64(w.Y)*k), T(float64(w.Z)*k)), nil
}

// ScalarProject returns the signed length of the projection of v onto
// w, which is v·ŵ. It returns ErrNullVector if w is null.
func (v Vec3[T]) ScalarProject(w Vec3[T]) (T, error) {
	n, err := w.Normalize()
	if err != nil {
		return 0, err
	}
	return v.Dot(n), nil
}

// Eq reports whether v and w are equal to within the machine epsilon
// of T on every component.
func (v Vec3[T]) Eq(w Vec3[T]) bool {
	return AboutEq(v.X, w.X) && AboutEq(v.Y, w.Y) && AboutEq(v.Z, w.Z)
}

func (v Vec3[T]) String() string {
	return fmt.Sprintf("Vector3[%v, %v, %v]", v.X, v.Y, v.Z)
}

func (v Vec3[T]) F64() f64.Vec3 {
	return f64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}
