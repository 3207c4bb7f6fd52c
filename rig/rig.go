// Package rig holds the contact geometry of standard tribometer setups.
package rig

import "math"

// DefaultPlateAngle is the plate angle of a ball-on-3-plates cell in radians
// (approximately 90 degrees).
const DefaultPlateAngle = 1.5708

// Ball3Plates is a rotating ball pressed onto three inclined plates.
type Ball3Plates struct {
	BallRadius float64
	// PlateAngle is the angle between the plates in radians. It is used as
	// given, so a zero value means parallel plates; use NewBall3Plates for
	// the standard cell.
	PlateAngle float64
}

// NewBall3Plates returns a ball-on-3-plates cell with DefaultPlateAngle.
func NewBall3Plates(ballRadius float64) Ball3Plates {
	return Ball3Plates{BallRadius: ballRadius, PlateAngle: DefaultPlateAngle}
}

// SlidingRadius returns the lever arm of the friction forces about the ball's
// rotation axis.
func (b Ball3Plates) SlidingRadius() float64 {
	return b.BallRadius * math.Sin((math.Pi-b.PlateAngle)/2)
}

// NormalForce returns the normal force on each of the three contacts for an
// axial load on the ball.
func (b Ball3Plates) NormalForce(axial float64) float64 {
	return axial / 3 / math.Cos(b.PlateAngle/2)
}

// FourBall is a rotating ball loaded against three stationary balls held in a cup.
type FourBall struct {
	RotatingRadius   float64
	StationaryRadius float64
}

// Geometry returns the sliding radius (lever arm) on the rotating ball and the
// angle between the contact normal force and the vertical axis in radians.
func (f FourBall) Geometry() (slidingRadius, contactAngle float64) {
	r2 := f.StationaryRadius
	circum := math.Sqrt(3) / 3 * 2 * r2 // circumcircle of the stationary ball centers
	contactAngle = math.Acos(circum / (f.RotatingRadius + r2))
	slidingRadius = circum - r2*math.Cos(contactAngle)
	return slidingRadius, contactAngle
}

// NormalForce returns the normal force on each of the three contacts for an
// axial load on the rotating ball.
func (f FourBall) NormalForce(axial float64) float64 {
	_, angle := f.Geometry()
	return axial / math.Sin(angle) / 3
}
