package geom

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

// Vec2 is a 2-dimensional vector. The zero value is the null vector.
type Vec2[T Scalar] struct {
	X, Y T
}

// V2 is shorthand for Vec2[T]{x, y}.
func V2[T Scalar](x, y T) Vec2[T] {
	return Vec2[T]{x, y}
}

// V2Conv converts a Vec2[In] to a Vec2[Out] with possible loss of
// precision.
func V2Conv[Out Scalar, In Scalar](v Vec2[In]) Vec2[Out] {
	return V2(Out(v.X), Out(v.Y))
}

func FromImagePoint(p image.Point) Vec2[int] {
	return V2(p.X, p.Y)
}

func FromF64Vec2(v f64.Vec2) Vec2[float64] {
	return V2(v[0], v[1])
}

// IsNull reports whether every component is exactly zero.
func (v Vec2[T]) IsNull() bool {
	return (v.X == 0) && (v.Y == 0)
}

func (v Vec2[T]) Add(w Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X + w.X, v.Y + w.Y}
}

func (v Vec2[T]) Sub(w Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X - w.X, v.Y - w.Y}
}

func (v Vec2[T]) Neg() Vec2[T] {
	return Vec2[T]{-v.X, -v.Y}
}

func (v Vec2[T]) Mul(k T) Vec2[T] {
	return Vec2[T]{v.X * k, v.Y * k}
}

// Div divides every component by k. It returns ErrDivisionByZero if k
// is exactly zero.
func (v Vec2[T]) Div(k T) (Vec2[T], error) {
	if k == 0 {
		return Vec2[T]{}, ErrDivisionByZero
	}
	return Vec2[T]{v.X / k, v.Y / k}, nil
}

// Dot returns the dot product of v and w.
func (v Vec2[T]) Dot(w Vec2[T]) T {
	return v.X*w.X + v.Y*w.Y
}

// Length returns the Euclidean norm of v.
func (v Vec2[T]) Length() T {
	x, y := float64(v.X), float64(v.Y)
	return T(math.Sqrt(x*x + y*y))
}

// Normalize returns the unit vector pointing in the direction of v.
// It returns ErrNullVector if v is null, since the null vector has no
// direction.
func (v Vec2[T]) Normalize() (Vec2[T], error) {
	if v.IsNull() {
		return Vec2[T]{}, ErrNullVector
	}
	x, y := float64(v.X), float64(v.Y)
	l := math.Sqrt(x*x + y*y)
	return V2(T(x/l), T(y/l)), nil
}

// Project returns the projection of v onto w, which is
// w * (v·w / w·w). It returns ErrNullVector if w is null.
func (v Vec2[T]) Project(w Vec2[T]) (Vec2[T], error) {
	if w.IsNull() {
		return Vec2[T]{}, ErrNullVector
	}
	k := float64(v.Dot(w)) / float64(w.Dot(w))
	return V2(T(float64(w.X)*k), T(float64(w.Y)*k)), nil
}

// ScalarProject returns the signed length of the projection of v onto
// w, which is v·ŵ. It returns ErrNullVector if w is null.
func (v Vec2[T]) ScalarProject(w Vec2[T]) (T, error) {
	n, err := w.Normalize()
	if err != nil {
		return 0, err
	}
	return v.Dot(n), nil
}

// LeftNormal returns the left-hand perpendicular of v.
func (v Vec2[T]) LeftNormal() Vec2[T] {
	return Vec2[T]{v.Y, -v.X}
}

// RightNormal returns the right-hand perpendicular of v.
func (v Vec2[T]) RightNormal() Vec2[T] {
	return Vec2[T]{-v.Y, v.X}
}

// Rotate returns v rotated counterclockwise by angle radians.
func (v Vec2[T]) Rotate(angle float64) Vec2[T] {
	if angle == 0 {
		return v
	}
	sin, cos := math.Sincos(angle)
	x, y := float64(v.X), float64(v.Y)
	return V2(T(cos*x-sin*y), T(sin*x+cos*y))
}

// Eq reports whether v and w are equal to within the machine epsilon
// of T on every component.
func (v Vec2[T]) Eq(w Vec2[T]) bool {
	return AboutEq(v.X, w.X) && AboutEq(v.Y, w.Y)
}

func (v Vec2[T]) String() string {
	return fmt.Sprintf("Vector2[%v, %v]", v.X, v.Y)
}

func (v Vec2[T]) ImagePoint() image.Point {
	return image.Pt(int(v.X), int(v.Y))
}

func (v Vec2[T]) F64() f64.Vec2 {
	return f64.Vec2{float64(v.X), float64(v.Y)}
}

// Fixed returns v as a 26.6 fixed-point point, rounding toward zero.
func (v Vec2[T]) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(float64(v.X) * 64),
		Y: fixed.Int26_6(float64(v.Y) * 64),
	}
}
