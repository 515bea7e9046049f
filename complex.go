package xmath

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Complex is a complex number with a real and an imaginary part. The
// polar coordinates are derived on demand rather than stored.
type Complex[T constraints.Float] struct {
	Re, Im T
}

// Cpx is shorthand for Complex[T]{re, im}.
func Cpx[T constraints.Float](re, im T) Complex[T] {
	return Complex[T]{re, im}
}

// Radial returns the radial polar coordinate of c, its distance from
// the origin.
func (c Complex[T]) Radial() T {
	re, im := float64(c.Re), float64(c.Im)
	return T(math.Sqrt(re*re + im*im))
}

// Angular returns the angular polar coordinate of c, in radians.
func (c Complex[T]) Angular() T {
	return T(math.Atan2(float64(c.Im), float64(c.Re)))
}

func (c Complex[T]) Add(d Complex[T]) Complex[T] {
	return Complex[T]{c.Re + d.Re, c.Im + d.Im}
}

func (c Complex[T]) Sub(d Complex[T]) Complex[T] {
	return Complex[T]{c.Re - d.Re, c.Im - d.Im}
}

func (c Complex[T]) Neg() Complex[T] {
	return Complex[T]{-c.Re, -c.Im}
}

// Mul returns c * d, computed in polar form: the magnitudes multiply
// and the angles add. This rounds differently from the algebraic
// cross-multiplication formula and is kept that way deliberately.
func (c Complex[T]) Mul(d Complex[T]) Complex[T] {
	theta := float64(c.Angular() + d.Angular())
	r := float64(c.Radial() * d.Radial())
	sin, cos := math.Sincos(theta)
	return Complex[T]{T(r * cos), T(r * sin)}
}

// Div returns c / d, computed in polar form: the magnitudes divide
// and the angles subtract. Dividing by the zero complex follows IEEE
// semantics and yields Inf or NaN components.
func (c Complex[T]) Div(d Complex[T]) Complex[T] {
	theta := float64(c.Angular() - d.Angular())
	r := float64(c.Radial() / d.Radial())
	sin, cos := math.Sincos(theta)
	return Complex[T]{T(r * cos), T(r * sin)}
}

// Eq reports whether c and d are exactly equal, field by field.
func (c Complex[T]) Eq(d Complex[T]) bool {
	return c.Re == d.Re && c.Im == d.Im
}

// String renders c as, for example, Complex[3 + 4 i], omitting a zero
// term.
func (c Complex[T]) String() string {
	switch {
	case c.Re != 0 && c.Im != 0:
		return fmt.Sprintf("Complex[%v + %v i]", c.Re, c.Im)
	case c.Im != 0:
		return fmt.Sprintf("Complex[%v i]", c.Im)
	default:
		return fmt.Sprintf("Complex[%v]", c.Re)
	}
}
