// Package kinematics computes the speeds of two bodies in a rolling-sliding
// contact from their surface velocities.
package kinematics

import (
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats"
)

// VSlide returns the sliding speed v1 - v2.
func VSlide[T constraints.Float](v1, v2 T) T {
	return v1 - v2
}

// VRoll returns the rolling (entrainment) speed (v1 + v2) / 2.
func VRoll[T constraints.Float](v1, v2 T) T {
	return (v1 + v2) / 2
}

// SRR returns the slide-to-roll ratio VSlide/VRoll. The ratio is ±Inf or NaN
// when the rolling speed is zero.
func SRR[T constraints.Float](v1, v2 T) T {
	return VSlide(v1, v2) / VRoll(v1, v2)
}

// VSlideTo stores the element-wise sliding speeds of v1 and v2 in dst and
// returns it. It panics if the lengths of the arguments differ.
func VSlideTo(dst, v1, v2 []float64) []float64 {
	return floats.SubTo(dst, v1, v2)
}

// VRollTo stores the element-wise rolling speeds of v1 and v2 in dst and
// returns it. It panics if the lengths of the arguments differ.
func VRollTo(dst, v1, v2 []float64) []float64 {
	floats.AddTo(dst, v1, v2)
	floats.Scale(0.5, dst)
	return dst
}

// SRRTo stores the element-wise slide-to-roll ratios of v1 and v2 in dst and
// returns it. It panics if the lengths of the arguments differ.
func SRRTo(dst, v1, v2 []float64) []float64 {
	roll := VRollTo(make([]float64, len(v1)), v1, v2)
	VSlideTo(dst, v1, v2)
	return floats.DivTo(dst, dst, roll)
}
