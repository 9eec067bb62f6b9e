package vecmat

import (
	"github.com/chewxy/math32"
)

// Precision is the number of decimal digits that geometric comparisons
// resolve.
const Precision = 3

// Epsilon is 10^-Precision, the magnitude below which a value is considered
// zero. It is used for every "is this effectively zero" decision in this
// package: vector lengths, determinants, dot products, and the w coordinate of
// homogeneous points.
var Epsilon = epsilon(Precision)

// Pi is π as a float32.
const Pi float32 = math32.Pi

// Degree is the size of one degree in radians.
const Degree = Pi / 180

// Radians converts an angle in degrees to radians.
func Radians(deg float32) float32 {
	return deg * Degree
}

// Degrees converts an angle in radians to degrees.
func Degrees(rad float32) float32 {
	return rad / Degree
}

// epsilon returns 10^-precision. Powers of ten up to 10^10 are exact in
// float32, so the result is the correctly rounded value.
func epsilon(precision int) float32 {
	scale := float32(1)
	for range precision {
		scale *= 10
	}
	return 1 / scale
}

func clamp32(x, lo, hi float32) float32 {
	return min(max(x, lo), hi)
}
