package geometry

import (
	"math"

	"github.com/df07/go-lambert-raytracer/pkg/core"
)

// parallelEpsilon bounds |d·n| below which a ray counts as parallel to a
// plane
const parallelEpsilon = 1e-8

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point  core.Point  // A point on the plane
	Normal core.Normal // Normal vector
}

// NewPlane creates a new plane. The normal is normalized.
func NewPlane(normal core.Vector, point core.Point) *Plane {
	return &Plane{
		Point:  point,
		Normal: normal.Normalize(),
	}
}

// Intersect solves t = ((c - o)·n) / (d·n)
func (p *Plane) Intersect(ray core.Ray) core.Intersection {
	return intersectPlane(ray, p.Point, p.Normal)
}

// NormalAt returns the plane normal, which is the same everywhere
func (p *Plane) NormalAt(point core.Point, _ core.Intersection) core.Normal {
	offset := point.Subtract(p.Point)
	requireOnSurface("plane", point, offset.Dot(p.Normal.ToVector()))
	return p.Normal
}

func intersectPlane(ray core.Ray, center core.Point, normal core.Normal) core.Intersection {
	n := normal.ToVector()
	denominator := ray.Direction.Dot(n)

	// Parallel rays never meet the plane, wherever they start
	if math.Abs(denominator) <= parallelEpsilon {
		return core.NoIntersection
	}

	t := center.Subtract(ray.Origin).Dot(n) / denominator
	return core.IntersectAt(t)
}
