package geom

import (
	"fmt"
	"iter"
	"math"
	"strings"
)

// Vector is a vector of arbitrary dimension. The dimension is set at
// construction and never changes. Unlike Vec2 and friends, components
// are accessed by index, and accessing an index at or past the
// dimension is a programming error that panics.
//
// The components live in a backing slice, so assigning a Vector copies
// a reference to the same storage and a Set through either value is
// visible through both. Use Clone for an independent copy.
type Vector[T Scalar] struct {
	c []T
}

// NewVector returns the null vector of the given dimension. It panics
// if dim is not positive.
func NewVector[T Scalar](dim int) Vector[T] {
	if dim <= 0 {
		panic(fmt.Sprintf("geom: invalid vector dimension %d", dim))
	}
	return Vector[T]{c: make([]T, dim)}
}

// Vec returns a vector with the given components. The components are
// copied, so the argument slice may be reused.
func Vec[T Scalar](components ...T) Vector[T] {
	if len(components) == 0 {
		panic("geom: invalid vector dimension 0")
	}
	c := make([]T, len(components))
	copy(c, components)
	return Vector[T]{c: c}
}

// Dim returns the dimension of v.
func (v Vector[T]) Dim() int {
	return len(v.c)
}

// Get returns the component at index i. It panics if i is out of
// range.
func (v Vector[T]) Get(i int) T {
	if i < 0 || i >= len(v.c) {
		panic(fmt.Sprintf("geom: index %d out of range for dimension %d", i, len(v.c)))
	}
	return v.c[i]
}

// Set sets the component at index i. It panics if i is out of range.
func (v *Vector[T]) Set(i int, x T) {
	if i < 0 || i >= len(v.c) {
		panic(fmt.Sprintf("geom: index %d out of range for dimension %d", i, len(v.c)))
	}
	v.c[i] = x
}

// Clone returns a copy of v with its own backing storage.
func (v Vector[T]) Clone() Vector[T] {
	c := make([]T, len(v.c))
	copy(c, v.c)
	return Vector[T]{c: c}
}

// Components returns a copy of v's components.
func (v Vector[T]) Components() []T {
	c := make([]T, len(v.c))
	copy(c, v.c)
	return c
}

// All returns an iterator over v's indices and components.
func (v Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.c {
			if !yield(i, x) {
				return
			}
		}
	}
}

// IsNull reports whether every component is exactly zero.
func (v Vector[T]) IsNull() bool {
	for _, x := range v.c {
		if x != 0 {
			return false
		}
	}
	return true
}

func (v Vector[T]) sameDim(w Vector[T]) {
	if len(v.c) != len(w.c) {
		panic(fmt.Sprintf("geom: dimension mismatch: %d != %d", len(v.c), len(w.c)))
	}
}

// Add returns the component-wise sum of v and w. It panics if their
// dimensions differ.
func (v Vector[T]) Add(w Vector[T]) Vector[T] {
	v.sameDim(w)
	c := make([]T, len(v.c))
	for i, x := range v.c {
		c[i] = x + w.c[i]
	}
	return Vector[T]{c: c}
}

// Sub returns the component-wise difference of v and w. It panics if
// their dimensions differ.
func (v Vector[T]) Sub(w Vector[T]) Vector[T] {
	v.sameDim(w)
	c := make([]T, len(v.c))
	for i, x := range v.c {
		c[i] = x - w.c[i]
	}
	return Vector[T]{c: c}
}

func (v Vector[T]) Neg() Vector[T] {
	c := make([]T, len(v.c))
	for i, x := range v.c {
		c[i] = -x
	}
	return Vector[T]{c: c}
}

func (v Vector[T]) Mul(k T) Vector[T] {
	c := make([]T, len(v.c))
	for i, x := range v.c {
		c[i] = x * k
	}
	return Vector[T]{c: c}
}

// Div divides every component by k. It returns ErrDivisionByZero if k
// is exactly zero.
func (v Vector[T]) Div(k T) (Vector[T], error) {
	if k == 0 {
		return Vector[T]{}, ErrDivisionByZero
	}
	c := make([]T, len(v.c))
	for i, x := range v.c {
		c[i] = x / k
	}
	return Vector[T]{c: c}, nil
}

// Dot returns the dot product of v and w. It panics if their
// dimensions differ.
func (v Vector[T]) Dot(w Vector[T]) T {
	v.sameDim(w)
	var sum T
	for i, x := range v.c {
		sum += x * w.c[i]
	}
	return sum
}

// Length returns the Euclidean norm of v.
func (v Vector[T]) Length() T {
	var sum float64
	for _, x := range v.c {
		sum += float64(x) * float64(x)
	}
	return T(math.Sqrt(sum))
}

// Normalize returns the unit vector pointing in the direction of v.
// It returns ErrNullVector if v is null, since the null vector has no
// direction.
func (v Vector[T]) Normalize() (Vector[T], error) {
	if v.IsNull() {
		return Vector[T]{}, ErrNullVector
	}
	var sum float64
	for _, x := range v.c {
		sum += float64(x) * float64(x)
	}
	l := math.Sqrt(sum)
	c := make([]T, len(v.c))
	for i, x := range v.c {
		c[i] = T(float64(x) / l)
	}
	return Vector[T]{c: c}, nil
}

// Project returns the projection of v onto w, which is
// w * (v·w / w·w). It returns ErrNullVector if w is null and panics if
// the dimensions differ.
func (v Vector[T]) Project(w Vector[T]) (Vector[T], error) {
	v.sameDim(w)
	if w.IsNull() {
		return Vector[T]{}, ErrNullVector
	}
	k := float64(v.Dot(w)) / float64(w.Dot(w))
	c := make([]T, len(w.c))
	for i, x := range w.c {
		c[i] = T(float64(x) * k)
	}
	return Vector[T]{c: c}, nil
}

// ScalarProject returns the signed length of the projection of v onto
// w, which is v·ŵ. It returns ErrNullVector if w is null.
func (v Vector[T]) ScalarProject(w Vector[T]) (T, error) {
	n, err := w.Normalize()
	if err != nil {
		return 0, err
	}
	return v.Dot(n), nil
}

// Eq reports whether v and w have the same dimension and are equal to
// within the machine epsilon of T on every component.
func (v Vector[T]) Eq(w Vector[T]) bool {
	if len(v.c) != len(w.c) {
		return false
	}
	for i, x := range v.c {
		if !AboutEq(x, w.c[i]) {
			return false
		}
	}
	return true
}

func (v Vector[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Vector%d[", len(v.c))
	for i, x := range v.c {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", x)
	}
	sb.WriteString("]")
	return sb.String()
}
