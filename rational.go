package xmath

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Rational is an exact fraction. It is kept in canonical reduced form
// at all times: the numerator and denominator share no common factor
// and the denominator is positive. The zero value represents 0/1,
// following the convention of math/big that a zero denominator reads
// as 1.
type Rational[T constraints.Signed] struct {
	n, d T
}

// Rat returns the fraction num/den reduced to canonical form. A zero
// denominator is a precondition violation and panics; use Div for
// division that can fail at runtime.
func Rat[T constraints.Signed](num, den T) Rational[T] {
	if den == 0 {
		panic("xmath: zero denominator")
	}
	r := Rational[T]{num, den}
	r.normalize()
	return r
}

func (r *Rational[T]) normalize() {
	if r.d == 0 {
		r.d = 1
	}
	if r.d < 0 {
		r.n, r.d = -r.n, -r.d
	}
	g := GCD(r.n, r.d)
	r.n /= g
	r.d /= g
}

// Num returns the numerator. It carries the sign of the fraction.
func (r Rational[T]) Num() T {
	return r.n
}

// Den returns the denominator, which is always positive.
func (r Rational[T]) Den() T {
	if r.d == 0 {
		return 1
	}
	return r.d
}

// Set replaces the fraction with num/den reduced to canonical form.
// It panics if den is zero.
func (r *Rational[T]) Set(num, den T) {
	if den == 0 {
		panic("xmath: zero denominator")
	}
	r.n, r.d = num, den
	r.normalize()
}

// SetNum replaces the numerator. The fraction is re-reduced, so the
// stored numerator and denominator may both change.
func (r *Rational[T]) SetNum(num T) {
	r.n, r.d = num, r.Den()
	r.normalize()
}

// SetDen replaces the denominator. The fraction is re-reduced, so the
// stored numerator and denominator may both change. It panics if den
// is zero.
func (r *Rational[T]) SetDen(den T) {
	if den == 0 {
		panic("xmath: zero denominator")
	}
	r.d = den
	r.normalize()
}

// Add returns r + s. The denominators are first reduced by their gcd
// so that the intermediate products stay small; the full product of
// both denominators is never formed when they share a factor.
func (r Rational[T]) Add(s Rational[T]) Rational[T] {
	rd, sd := r.Den(), s.Den()
	g1 := GCD(rd, sd)
	if g1 == 1 {
		return Rational[T]{r.n*sd + rd*s.n, rd * sd}
	}
	t := r.n*(sd/g1) + (rd/g1)*s.n
	g2 := GCD(t, g1)
	return Rational[T]{t / g2, (rd / g1) * (sd / g2)}
}

// Sub returns r - s, with the same intermediate reduction as Add.
func (r Rational[T]) Sub(s Rational[T]) Rational[T] {
	rd, sd := r.Den(), s.Den()
	g1 := GCD(rd, sd)
	if g1 == 1 {
		return Rational[T]{r.n*sd - rd*s.n, rd * sd}
	}
	t := r.n*(sd/g1) - (rd/g1)*s.n
	g2 := GCD(t, g1)
	return Rational[T]{t / g2, (rd / g1) * (sd / g2)}
}

// Mul returns r * s. Each numerator is cross-reduced against the
// other's denominator before multiplying, keeping the intermediate
// products small.
func (r Rational[T]) Mul(s Rational[T]) Rational[T] {
	rd, sd := r.Den(), s.Den()
	g1 := GCD(r.n, sd)
	g2 := GCD(rd, s.n)
	return Rational[T]{(r.n / g1) * (s.n / g2), (rd / g2) * (sd / g1)}
}

// Div returns r / s. It returns ErrDivisionByZero if s is zero;
// otherwise it multiplies by the reciprocal with the same
// cross-reduction as Mul and restores the denominator's sign.
func (r Rational[T]) Div(s Rational[T]) (Rational[T], error) {
	if s.n == 0 {
		return Rational[T]{}, ErrDivisionByZero
	}
	rd, sd := r.Den(), s.Den()
	g1 := GCD(r.n, s.n)
	g2 := GCD(rd, sd)
	n := (r.n / g1) * (sd / g2)
	d := (rd / g2) * (s.n / g1)
	if d < 0 {
		n, d = -n, -d
	}
	return Rational[T]{n, d}, nil
}

// Eq reports whether r and s represent the same value. Canonical form
// makes this an exact field comparison; no tolerance is involved.
func (r Rational[T]) Eq(s Rational[T]) bool {
	return r.n == s.n && r.Den() == s.Den()
}

// Cmp returns -1, 0, or 1 depending on whether r is less than, equal
// to, or greater than s. Both denominators are positive, so the cross
// products compare sign-safely.
func (r Rational[T]) Cmp(s Rational[T]) int {
	a, b := r.n*s.Den(), s.n*r.Den()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Less reports whether r < s.
func (r Rational[T]) Less(s Rational[T]) bool {
	return r.Cmp(s) < 0
}

// Float64 returns r as a float64.
func (r Rational[T]) Float64() float64 {
	return float64(r.n) / float64(r.Den())
}

// Approximate returns r as a floating-point value of type F, with the
// division carried out in F.
func Approximate[F constraints.Float, T constraints.Signed](r Rational[T]) F {
	return F(r.Num()) / F(r.Den())
}

func (r Rational[T]) String() string {
	return fmt.Sprintf("Rational[%v/%v]", r.n, r.Den())
}
