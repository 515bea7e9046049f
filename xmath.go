// Package xmath provides exact and approximate numeric value types:
// rational numbers with exact arithmetic, complex numbers with
// polar-form products, and interpolation helpers.
//
// Geometric types live in the geom subpackage.
package xmath

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrDivisionByZero is returned by operations that would divide by an
// exact zero.
var ErrDivisionByZero = errors.New("xmath: division by zero")

// GCD returns the greatest common divisor of a and b, ignoring signs.
// GCD(0, b) is |b|, and GCD(0, 0) is 0.
func GCD[T constraints.Signed](a, b T) T {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for a != 0 {
		if b == 0 {
			return a
		}
		a, b = b, a%b
	}
	return b
}
