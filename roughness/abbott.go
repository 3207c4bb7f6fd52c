// Package roughness computes statistics of measured surface height traces.
package roughness

import (
	"errors"

	"gonum.org/v1/gonum/floats"
)

// AbbottFirestone returns the Abbott-Firestone (bearing area) curve of a
// height trace. baskets holds res heights evenly spaced from the highest to
// the lowest trace value; cumDist[i] is the share of the trace at or above
// baskets[i], scaled to res. A zero res yields empty slices and a negative
// res is an error.
func AbbottFirestone(trace []float64, res int) (baskets, cumDist []float64, err error) {
	if len(trace) == 0 {
		return nil, nil, errors.New("empty trace")
	}
	if res < 0 {
		return nil, nil, errors.New("negative resolution")
	}
	hi, lo := floats.Max(trace), floats.Min(trace)
	baskets = make([]float64, res)
	switch res {
	case 0:
	case 1:
		baskets[0] = hi
	default:
		floats.Span(baskets, hi, lo)
		baskets[res-1] = lo
	}
	cumDist = make([]float64, res)
	n := float64(len(trace))
	for i, b := range baskets {
		above := 0
		for _, h := range trace {
			if h >= b {
				above++
			}
		}
		cumDist[i] = float64(above) / n * float64(res)
	}
	return baskets, cumDist, nil
}
