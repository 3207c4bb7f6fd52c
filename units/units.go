// Package units converts between rotational speed units and SI prefixes.
package units

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/unit"
)

// RPMToRadPerSec converts a rotational speed in revolutions per minute to
// radians per second.
func RPMToRadPerSec(rpm float64) float64 {
	return rpm / 60 * 2 * math.Pi
}

// RadPerSecToRPM converts a rotational speed in radians per second to
// revolutions per minute.
func RadPerSecToRPM(radPerSec float64) float64 {
	return 1 / RPMToRadPerSec(1/radPerSec)
}

// Prefix is an SI unit prefix symbol. Micro is spelled "mu".
type Prefix string

// Supported prefixes.
const (
	Pico  Prefix = "p"
	Nano  Prefix = "n"
	Micro Prefix = "mu"
	Milli Prefix = "m"
	None  Prefix = ""
	Kilo  Prefix = "k"
	Mega  Prefix = "M"
	Giga  Prefix = "G"
	Tera  Prefix = "T"
)

var prefixFactor = map[Prefix]float64{
	Pico:  unit.Pico,
	Nano:  unit.Nano,
	Micro: unit.Micro,
	Milli: unit.Milli,
	None:  1,
	Kilo:  unit.Kilo,
	Mega:  unit.Mega,
	Giga:  unit.Giga,
	Tera:  unit.Tera,
}

// ErrUnknownPrefix is returned for prefixes not listed in this package.
var ErrUnknownPrefix = errors.New("unknown SI prefix")

// Factor returns the multiplier of the prefix, e.g. 1e-3 for Milli.
func (p Prefix) Factor() (float64, error) {
	f, ok := prefixFactor[p]
	if !ok {
		return 0, fmt.Errorf("%q: %w", string(p), ErrUnknownPrefix)
	}
	return f, nil
}

// Refix converts v expressed with prefix in to the same quantity expressed
// with prefix out. For example Refix(2, Milli, Micro) returns 2000.
func Refix(v float64, in, out Prefix) (float64, error) {
	fin, fout, err := factors(in, out)
	if err != nil {
		return 0, err
	}
	return v * fin / fout, nil
}

// RefixTo stores the converted values of v in dst and returns it.
// It panics if dst and v have different lengths.
func RefixTo(dst, v []float64, in, out Prefix) ([]float64, error) {
	fin, fout, err := factors(in, out)
	if err != nil {
		return nil, err
	}
	return floats.ScaleTo(dst, fin/fout, v), nil
}

func factors(in, out Prefix) (fin, fout float64, err error) {
	fin, err = in.Factor()
	if err != nil {
		return 0, 0, err
	}
	fout, err = out.Factor()
	if err != nil {
		return 0, 0, err
	}
	return fin, fout, nil
}
