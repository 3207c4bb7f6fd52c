package tribology

import (
	"gonum.org/v1/gonum/floats"
)

// Linspace returns n evenly spaced coordinates from lo to hi inclusive.
// Linspace returns an empty axis for n < 1 and Axis{lo} for n == 1.
func Linspace(lo, hi float64, n int) Axis {
	switch {
	case n < 1:
		return Axis{}
	case n == 1:
		return Axis{lo}
	}
	axis := floats.Span(make(Axis, n), lo, hi)
	axis[n-1] = hi // endpoints are exact so |x| <= r holds at the ball boundary.
	return axis
}

// wrapIndex maps a negative index to its position counted from the end of a
// sequence of length n, the way index -1 addresses the last element.
func wrapIndex(i, n int) int {
	if i < 0 {
		return i + n
	}
	return i
}
