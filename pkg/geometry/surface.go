package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-lambert-raytracer/pkg/core"
)

// SurfaceTolerance is how far a point may be from a surface and still count
// as lying on it.
const SurfaceTolerance = 1e-3

// ErrNotOnSurface is wrapped by every SurfaceError
var ErrNotOnSurface = errors.New("point is not on the shape surface")

// SurfaceError reports a normal requested at a point off the shape's
// surface. It indicates a caller bug and is raised with panic.
type SurfaceError struct {
	Shape    string
	Point    core.Point
	Distance float64 // distance from the surface, when known
}

func (e *SurfaceError) Error() string {
	return fmt.Sprintf("%s: point (%g, %g, %g) is %g away from the surface",
		e.Shape, e.Point.X, e.Point.Y, e.Point.Z, e.Distance)
}

func (e *SurfaceError) Unwrap() error {
	return ErrNotOnSurface
}

// requireOnSurface panics unless distance is within SurfaceTolerance. The
// tolerance is absolute: it does not grow with the shape or with how far the
// point is from the shape's anchor.
func requireOnSurface(shape string, point core.Point, distance float64) {
	if math.Abs(distance) <= SurfaceTolerance {
		return
	}
	panic(&SurfaceError{Shape: shape, Point: point, Distance: math.Abs(distance)})
}
