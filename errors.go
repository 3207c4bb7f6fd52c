package tribology

import (
	"errors"
	"fmt"
)

// ErrReferenceOutOfRange is returned by Revolve when the reference cell of a
// concave (or flat) revolution lies outside the computed grid.
var ErrReferenceOutOfRange = errors.New("reference cell outside profile grid")

// DomainError reports an axis coordinate for which a ball profile has no real
// height, that is |x| > |r|.
type DomainError struct {
	Index  int     // index of the first offending coordinate
	X      float64 // offending coordinate
	Radius float64 // ball radius
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("x[%d]=%g outside ball of radius %g", e.Index, e.X, e.Radius)
}
