// Package geom provides exact and approximate geometric value types:
// fixed-dimension vectors, axis-aligned bounds, and oriented planes.
//
// All types are plain values. Operations either return new values or,
// where noted, modify only the receiver. Nothing is shared by
// reference, so distinct values are safe to use from any number of
// goroutines.
package geom

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Scalar is a constraint for the types that geom types and functions
// can handle.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Float is a constraint for the scalar types that support fractional
// results, such as normalizations and plane offsets.
type Float interface {
	constraints.Float
}

var (
	// ErrDivisionByZero is returned by operations that would divide by
	// a zero scalar.
	ErrDivisionByZero = errors.New("geom: division by zero")

	// ErrNullVector is returned by operations that are undefined for
	// the null vector, such as normalization and projection targets.
	ErrNullVector = errors.New("geom: null vector has no direction")
)

// Epsilon returns the machine epsilon of T as a float64. Integer
// types have an epsilon of zero, making their comparisons exact.
func Epsilon[T Scalar]() float64 {
	var z T
	switch any(z).(type) {
	case float32:
		return 0x1p-23
	case float64:
		return 0x1p-52
	default:
		return 0
	}
}

// AboutEq reports whether a and b differ by no more than the machine
// epsilon of T. This is the equality used by every Eq method in this
// package.
func AboutEq[T Scalar](a, b T) bool {
	eps := Epsilon[T]()
	if eps == 0 {
		// Integers compare in T itself. Converting 64-bit values
		// to float64 would collapse neighbors above 2^53.
		return a == b
	}
	d := float64(a) - float64(b)
	if d < 0 {
		d = -d
	}
	return d <= eps
}
