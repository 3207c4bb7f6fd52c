// Package tribology synthesizes surface height profiles of contact bodies:
// ball cross-sections and the solids of revolution swept from them.
package tribology

import "math"

// Axis is an ordered sequence of sampling coordinates.
// Coordinates are expected to increase but this is not enforced.
type Axis []float64

// Profile2D holds surface heights index-aligned with an Axis.
// No coordinates are stored: element i is the height at axis[i].
type Profile2D []float64

// BallProfile returns the cross-section of a ball of radius rBall sampled at
// xAxis. Heights are measured from the point where the ball touches a flat
// plane, so the height at x=0 is exactly zero:
//
//	h(x) = sign(r) * (|r| - sqrt(r² - x²))
//
// A negative rBall yields the concave (socket) profile.
//
// Every coordinate must satisfy |x| <= |rBall|. Heights outside that domain
// have no real value and are returned as NaN rather than masked; use
// CheckBallDomain to reject such axes up front.
func BallProfile(xAxis Axis, rBall float64) Profile2D {
	sign := OrientationOf(rBall).Sign()
	r := math.Abs(rBall)
	r2 := rBall * rBall
	prof := make(Profile2D, len(xAxis))
	for i, x := range xAxis {
		prof[i] = (r - math.Sqrt(r2-x*x)) * sign
	}
	return prof
}

// CheckBallDomain returns a *DomainError for the first coordinate of xAxis
// outside the ball of radius rBall, or nil if BallProfile is defined over the
// whole axis.
func CheckBallDomain(xAxis Axis, rBall float64) error {
	r2 := rBall * rBall
	for i, x := range xAxis {
		if x*x > r2 || math.IsNaN(x) {
			return &DomainError{Index: i, X: x, Radius: rBall}
		}
	}
	return nil
}
