package geom

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// Vec4 is a 4-dimensional vector. The zero value is the null vector.
type Vec4[T Scalar] struct {
	X, Y, Z, W T
}

// V4 is shorthand for Vec4[T]{x, y, z, w}.
func V4[T Scalar](x, y, z, w T) Vec4[T] {
	return Vec4[T]{x, y, z, w}
}

// V4Conv converts a Vec4[In] to a Vec4[Out] with possible loss of
// precision.
func V4Conv[Out Scalar, In Scalar](v Vec4[In]) Vec4[Out] {
	return V4(Out(v.X), Out(v.Y), Out(v.Z), Out(v.W))
}

func FromF64Vec4(v f64.Vec4) Vec4[float64] {
	return V4(v[0], v[1], v[2], v[3])
}

// IsNull reports whether every component is exactly zero.
func (v Vec4[T]) IsNull() bool {
	return (v.X == 0) && (v.Y == 0) && (v.Z == 0) && (v.W == 0)
}

func (v Vec4[T]) Add(w Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X + w.X, v.Y + w.Y, v.Z + w.Z, v.W + w.W}
}

func (v Vec4[T]) Sub(w Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X - w.X, v.Y - w.Y, v.Z - w.Z, v.W - w.W}
}

func (v Vec4[T]) Neg() Vec4[T] {
	return Vec4[T]{-v.X, -v.Y, -v.Z, -v.W}
}

func (v Vec4[T]) Mul(k T) Vec4[T] {
	return Vec4[T]{v.X * k, v.Y * k, v.Z * k, v.W * k}
}

// Div divides every component by k. It returns ErrDivisionByZero if k
// is exactly zero.
func (v Vec4[T]) Div(k T) (Vec4[T], error) {
	if k == 0 {
		return Vec4[T]{}, ErrDivisionByZero
	}
	return Vec4[T]{v.X / k, v.Y / k, v.Z / k, v.W / k}, nil
}

// Dot returns the dot product of v and w.
func (v Vec4[T]) Dot(w Vec4[T]) T {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z + v.W*w.W
}

// Length returns the Euclidean norm of v.
func (v Vec4[T]) Length() T {
	x, y, z, w := float64(v.X), float64(v.Y), float64(v.Z), float64(v.W)
	return T(math.Sqrt(x*x + y*y + z*z + w*w))
}

// Normalize returns the unit vector pointing in the direction of v.
// It returns ErrNullVector if v is null, since the null vector has no
// direction.
func (v Vec4[T]) Normalize() (Vec4[T], error) {
	if v.IsNull() {
		return Vec4[T]{}, ErrNullVector
	}
	x, y, z, w := float64(v.X), float64(v.Y), float64(v.Z), float64(v.W)
	l := math.Sqrt(x*x + y*y + z*z + w*w)
	return V4(T(x/l), T(y/l), T(z/l), T(w/l)), nil
}

// Project returns the projection of v onto w, which is
// w * (v·w / w·w). It returns ErrNullVector if w is null.
func (v Vec4[T]) Project(w Vec4[T]) (Vec4[T], error) {
	if w.IsNull() {
		return Vec4[T]{}, ErrNullVector
	}
	k := float64(v.Dot(w)) / float64(w.Dot(w))
	return V4(T(float64(w.X)*k), T(float64(w.Y)*k), T(float64(w.Z)*k), T(float64(w.W)*k)), nil
}

// ScalarProject returns the signed length of the projection of v onto
// w, which is v·ŵ. It returns ErrNullVector if w is null.
func (v Vec4[T]) ScalarProject(w Vec4[T]) (T, error) {
	n, err := w.Normalize()
	if err != nil {
		return 0, err
	}
	return v.Dot(n), nil
}

// Eq reports whether v and w are equal to within the machine epsilon
// of T on every component.
func (v Vec4[T]) Eq(w Vec4[T]) bool {
	return AboutEq(v.X, w.X) && AboutEq(v.Y, w.Y) && AboutEq(v.Z, w.Z) && AboutEq(v.W, w.W)
}

func (v Vec4[T]) String() string {
	return fmt.Sprintf("Vector4[%v, %v, %v, %v]", v.X, v.Y, v.Z, v.W)
}

func (v Vec4[T]) F64() f64.Vec4 {
	return f64.Vec4{float64(v.X), float64(v.Y), float64(v.Z), float64(v.W)}
}
