package geometry

import (
	"github.com/df07/go-lambert-raytracer/pkg/core"
)

// Shape interface for primitives that can be hit by rays
type Shape interface {
	// Intersect returns the smallest non-negative hit parameter along ray,
	// or core.NoIntersection.
	Intersect(ray core.Ray) core.Intersection
	// NormalAt returns the outward normal at a point on the surface. The
	// point must lie on the surface; otherwise NormalAt panics with a
	// *SurfaceError.
	NormalAt(point core.Point, hit core.Intersection) core.Normal
}
