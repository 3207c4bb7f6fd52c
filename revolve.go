package tribology

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// Revolver builds solids of revolution from 2D profiles.
// The zero value fills the grid on the calling goroutine.
type Revolver struct {
	// Workers bounds the number of goroutines filling grid rows.
	// Values below 2 disable concurrent filling. Results are identical
	// for any number of workers.
	Workers int
}

// Revolve sweeps prof around a central axis to form a body of diameter
// yDiam sampled at yAxis. See Revolver.Revolve.
func Revolve(prof Profile2D, yAxis Axis, yDiam float64) (Profile3D, Profile2D, error) {
	return Revolver{}.Revolve(prof, yAxis, yDiam)
}

// MustRevolve is like Revolve but panics on error.
func MustRevolve(prof Profile2D, yAxis Axis, yDiam float64) (Profile3D, Profile2D) {
	grid, center, err := Revolve(prof, yAxis, yDiam)
	if err != nil {
		panic(err)
	}
	return grid, center
}

// Revolve sweeps prof around a central axis to form a body of diameter yDiam,
// sampled at yAxis. A positive yDiam forms a convex body, a negative one a
// concave body. The returned grid has dimensions (len(prof), len(yAxis)).
//
// Each raw cell is the distance from the revolution axis to the swept surface:
//
//	bracket = (|d|/2 - s*prof[ix])² - y[iy]²
//	raw     = |d|/2 - s*sqrt(bracket)   if bracket > 0
//	raw     = |d|/2                     otherwise (saturated)
//
// where s is the sign of yDiam (0 for yDiam == 0). The grid is then shifted so
// that a reference height becomes zero: the global minimum for convex bodies,
// a fixed cell otherwise (see referenceHeight).
//
// The second result is the centerline slice along the x-axis, taken at y index
// len(yAxis)/2 with the opposite sign of the returned grid.
// Empty axes yield an empty grid and slice with a nil error.
// For non-convex bodies, if the fixed reference cell falls outside the grid
// (len(yAxis) <= len(prof)/2-1), Revolve returns an error wrapping
// ErrReferenceOutOfRange.
func (r Revolver) Revolve(prof Profile2D, yAxis Axis, yDiam float64) (Profile3D, Profile2D, error) {
	orient := OrientationOf(yDiam)
	grid := newProfile3D(len(prof), len(yAxis))
	half := math.Abs(yDiam) / 2
	sign := orient.Sign()
	r.fill(grid.nx, func(ix int) {
		sweepRow(grid.row(ix), prof[ix], yAxis, half, sign)
	})
	if grid.Len() == 0 {
		return grid, Profile2D{}, nil
	}
	ref, err := referenceHeight(grid, orient)
	if err != nil {
		return Profile3D{}, nil, err
	}
	// The surface is -(raw - ref); the grid is returned negated and the
	// centerline is not.
	for i := range grid.data {
		grid.data[i] -= ref
	}
	center := grid.Col(grid.ny / 2)
	for i := range center {
		center[i] = -center[i]
	}
	return grid, center, nil
}

// sweepRow computes the raw distances to the revolution axis for a profile
// height h at every y coordinate. No squares are formed, so diameters near
// the float64 range stay finite.
func sweepRow(dst []float64, h float64, yAxis Axis, half, sign float64) {
	a := math.Abs(half - sign*h)
	for iy, y := range yAxis {
		b := math.Abs(y)
		if a <= b {
			dst[iy] = half
			continue
		}
		// sqrt(a² - b²) = a*sqrt((1-t)(1+t)), t = b/a in [0, 1).
		t := b / a
		dst[iy] = half - sign*a*math.Sqrt((1-t)*(1+t))
	}
}

func (r Revolver) fill(nx int, row func(ix int)) {
	if r.Workers < 2 || nx < 2 {
		for ix := 0; ix < nx; ix++ {
			row(ix)
		}
		return
	}
	var g errgroup.Group
	g.SetLimit(r.Workers)
	for ix := 0; ix < nx; ix++ {
		g.Go(func() error {
			row(ix)
			return nil
		})
	}
	_ = g.Wait() // rows never fail.
}

// referenceHeight returns the raw height that becomes zero after
// normalization. Convex bodies use the global minimum of the grid. Other
// bodies use the cell (nx/2-1, nx/2-1); an index of -1 addresses the last
// row or column.
//
// NOTE: the column index is derived from the x length, not the y length.
// It probably should be ny/2-1 but is kept as is until confirmed; changing it
// alters every concave result.
func referenceHeight(grid Profile3D, orient Orientation) (float64, error) {
	if orient == Convex {
		return floats.Min(grid.data), nil
	}
	i := grid.nx/2 - 1
	ix, iy := wrapIndex(i, grid.nx), wrapIndex(i, grid.ny)
	if iy < 0 || iy >= grid.ny {
		return 0, fmt.Errorf("cell (%d, %d) of %dx%d grid: %w", i, i, grid.nx, grid.ny, ErrReferenceOutOfRange)
	}
	return grid.data[ix*grid.ny+iy], nil
}
