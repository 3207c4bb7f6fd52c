// Package hertz computes the effective radius and modulus of two bodies in
// Hertzian contact.
package hertz

import (
	"math"

	"github.com/cfernandesFEUP/tribology/helpers/matter"
	"gonum.org/v1/gonum/unit"
)

// Reff returns the effective (reduced) radius of two radii of curvature,
// 1/(1/r1 + 1/r2). Concave surfaces have negative radii.
//
// A zero or infinite radius stands for a flat surface and contributes no
// curvature: the other radius is returned. Two flat surfaces, or radii of
// equal magnitude and opposite sign, give 0.
func Reff(r1, r2 float64) float64 {
	switch {
	case flat(r1) && r2 != 0:
		return r2
	case flat(r2) && r1 != 0:
		return r1
	case flat(r1) && flat(r2):
		return 0
	case r1 == -r2:
		return 0
	}
	return 1 / (1/r1 + 1/r2)
}

func flat(r float64) bool {
	return r == 0 || math.IsInf(r, 0)
}

// Radii are the effective radii of a contact: in the x (rolling) plane,
// in the y (transverse) plane, and combined.
type Radii struct {
	R, X, Y float64
}

// Eeff returns the effective radii of two bodies with principal radii
// rx1, ry1 and rx2, ry2.
func Eeff(rx1, ry1, rx2, ry2 float64) Radii {
	x := Reff(rx1, rx2)
	y := Reff(ry1, ry2)
	return Radii{R: Reff(x, y), X: x, Y: y}
}

// Meff returns the effective elastic modulus of two bodies
//
//	E' = 1 / ((1-ν1²)/(2E1) + (1-ν2²)/(2E2))
func Meff(e1 unit.Pressure, nu1 float64, e2 unit.Pressure, nu2 float64) unit.Pressure {
	c1 := (1 - nu1*nu1) / (2 * float64(e1))
	c2 := (1 - nu2*nu2) / (2 * float64(e2))
	return unit.Pressure(1 / (c1 + c2))
}

// MeffOf returns the effective elastic modulus of two materials.
// It returns an error if either material is not valid.
func MeffOf(a, b matter.Elastic) (unit.Pressure, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if err := b.Validate(); err != nil {
		return 0, err
	}
	return Meff(a.E, a.Nu, b.E, b.Nu), nil
}
