package tribology

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Profile3D is a height field sampled on an x/y grid. Cell (ix, iy) holds the
// surface height above x-axis coordinate ix and y-axis coordinate iy.
// The zero value is an empty grid.
type Profile3D struct {
	nx, ny int
	data   []float64 // row major, nx rows of ny heights
}

func newProfile3D(nx, ny int) Profile3D {
	return Profile3D{nx: nx, ny: ny, data: make([]float64, nx*ny)}
}

// Dims returns the number of x and y samples of the grid.
func (p Profile3D) Dims() (nx, ny int) { return p.nx, p.ny }

// Len returns the number of cells in the grid.
func (p Profile3D) Len() int { return len(p.data) }

// At returns the height at cell (ix, iy). It panics if the cell is outside the grid.
func (p Profile3D) At(ix, iy int) float64 {
	p.checkCell(ix, iy)
	return p.data[ix*p.ny+iy]
}

func (p Profile3D) checkCell(ix, iy int) {
	if ix < 0 || ix >= p.nx || iy < 0 || iy >= p.ny {
		panic(fmt.Sprintf("cell (%d, %d) out of %dx%d grid", ix, iy, p.nx, p.ny))
	}
}

// row returns the backing storage of row ix.
func (p Profile3D) row(ix int) []float64 {
	return p.data[ix*p.ny : (ix+1)*p.ny]
}

// Row returns a copy of the heights along the y-axis at x index ix.
func (p Profile3D) Row(ix int) []float64 {
	if ix < 0 || ix >= p.nx {
		panic(fmt.Sprintf("row %d out of %dx%d grid", ix, p.nx, p.ny))
	}
	return append([]float64(nil), p.row(ix)...)
}

// Col returns a copy of the heights along the x-axis at y index iy. The result
// is index-aligned with the x-axis the grid was built from.
func (p Profile3D) Col(iy int) Profile2D {
	if iy < 0 || iy >= p.ny {
		panic(fmt.Sprintf("column %d out of %dx%d grid", iy, p.nx, p.ny))
	}
	col := make(Profile2D, p.nx)
	for ix := range col {
		col[ix] = p.data[ix*p.ny+iy]
	}
	return col
}

// Min returns the lowest height of the grid. It panics on an empty grid.
func (p Profile3D) Min() float64 { return floats.Min(p.data) }

// Max returns the highest height of the grid. It panics on an empty grid.
func (p Profile3D) Max() float64 { return floats.Max(p.data) }

// Dense returns a copy of the grid as an nx×ny matrix, or nil if the grid
// is empty.
func (p Profile3D) Dense() *mat.Dense {
	if len(p.data) == 0 {
		return nil
	}
	return mat.NewDense(p.nx, p.ny, append([]float64(nil), p.data...))
}

// Points returns the grid as points (x, y, height) using the axes the grid was
// sampled on. Points are ordered row by row.
func (p Profile3D) Points(xAxis, yAxis Axis) ([]r3.Vec, error) {
	if len(xAxis) != p.nx || len(yAxis) != p.ny {
		return nil, errors.New("axis lengths do not match grid dimensions")
	}
	pts := make([]r3.Vec, 0, len(p.data))
	for ix, x := range xAxis {
		for iy, y := range yAxis {
			pts = append(pts, r3.Vec{X: x, Y: y, Z: p.data[ix*p.ny+iy]})
		}
	}
	return pts, nil
}
