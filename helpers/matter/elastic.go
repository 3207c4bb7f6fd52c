// Package matter holds elastic properties of common contact body materials.
package matter

import (
	"errors"

	"gonum.org/v1/gonum/unit"
)

const gpa = unit.Giga * unit.Pascal

var (
	// Steel52100 is AISI 52100 bearing steel, the usual ball and race material.
	Steel52100 = Elastic{Name: "AISI 52100", E: 210 * gpa, Nu: 0.29}
	// SiliconNitride is Si3N4 used for hybrid bearing balls.
	SiliconNitride = Elastic{Name: "Si3N4", E: 310 * gpa, Nu: 0.27}
	// TungstenCarbide is WC-Co cemented carbide.
	TungstenCarbide = Elastic{Name: "WC-Co", E: 614 * gpa, Nu: 0.22}
	// GlassBK7 is the optical glass of film thickness rig discs.
	GlassBK7 = Elastic{Name: "BK7", E: 82 * gpa, Nu: 0.206}
)

// Elastic is an isotropic linear elastic material.
type Elastic struct {
	Name string
	// E is Young's modulus.
	E unit.Pressure
	// Nu is Poisson's ratio.
	Nu float64
}

// Validate returns an error if the properties are not physically admissible
// for an isotropic material.
func (m Elastic) Validate() error {
	if m.E <= 0 {
		return errors.New("young's modulus must be positive")
	}
	if m.Nu <= -1 || m.Nu >= 0.5 {
		return errors.New("poisson's ratio must be in (-1, 0.5)")
	}
	return nil
}

// PlaneStrainModulus returns E/(1-ν²).
func (m Elastic) PlaneStrainModulus() unit.Pressure {
	return m.E / unit.Pressure(1-m.Nu*m.Nu)
}
