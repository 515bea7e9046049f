package xmath

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Interpolation helpers after Paul Bourke's formulas:
// http://paulbourke.net/miscellaneous/interpolation/
// mu is the position between the samples, from 0 to 1.

// Lerp returns the linear interpolation between p1 and p2 at mu.
func Lerp[T constraints.Float](p1, p2, mu T) T {
	return p1*(1-mu) + p2*mu
}

// CosineInterp interpolates between p1 and p2 along a half cosine,
// giving a smooth start and stop.
func CosineInterp[T constraints.Float](p1, p2, mu T) T {
	mu2 := (1 - T(math.Cos(float64(mu)*math.Pi))) / 2
	return p1*(1-mu2) + p2*mu2
}

// CubicInterp interpolates between p1 and p2 at mu using the
// neighboring samples p0 and p3 to shape the curve.
func CubicInterp[T constraints.Float](p0, p1, p2, p3, mu T) T {
	mu2 := mu * mu
	a0 := p3 - p2 - p0 + p1
	a1 := p0 - p1 - a0
	a2 := p2 - p0
	a3 := p1
	return a0*mu*mu2 + a1*mu2 + a2*mu + a3
}

// CatmullRomInterp is CubicInterp with Catmull-Rom spline
// coefficients, which keeps the curve through p1 and p2 smoother at
// the joins.
func CatmullRomInterp[T constraints.Float](p0, p1, p2, p3, mu T) T {
	mu2 := mu * mu
	a0 := -p0/2 + 3*p1/2 - 3*p2/2 + p3/2
	a1 := p0 - 5*p1/2 + 2*p2 - p3/2
	a2 := -p0/2 + p2/2
	a3 := p1
	return a0*mu*mu2 + a1*mu2 + a2*mu + a3
}
