package tribology

// Orientation is the convex/concave sense encoded by the sign of a radius or
// diameter.
type Orientation int8

const (
	// Flat is the orientation of a zero (or NaN) radius. Its sign is 0.
	Flat Orientation = iota
	// Convex bodies bulge out of the reference plane (positive radius).
	Convex
	// Concave bodies curve into the reference plane (negative radius).
	Concave
)

// OrientationOf returns the orientation encoded by the sign of v.
func OrientationOf(v float64) Orientation {
	switch {
	case v > 0:
		return Convex
	case v < 0:
		return Concave
	}
	return Flat
}

// Sign returns the multiplier of the orientation: 1, -1 or 0 for Flat.
func (o Orientation) Sign() float64 {
	switch o {
	case Convex:
		return 1
	case Concave:
		return -1
	}
	return 0
}

func (o Orientation) String() string {
	switch o {
	case Flat:
		return "flat"
	case Convex:
		return "convex"
	case Concave:
		return "concave"
	}
	return "Orientation(?)"
}
