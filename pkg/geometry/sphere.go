package geometry

import (
	"math"

	"github.com/df07/go-lambert-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Point
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Point, radius float64) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
	}
}

// Intersect tests if a ray intersects with the sphere
func (s *Sphere) Intersect(ray core.Ray) core.Intersection {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	if a == 0 {
		return core.NoIntersection
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return core.NoIntersection
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	if t1 > t2 {
		t1, t2 = t2, t1
	}

	// Prefer the nearer root; fall back to the far one when the origin is
	// inside the sphere
	switch {
	case t1 >= 0:
		return core.IntersectAt(t1)
	case t2 >= 0:
		return core.IntersectAt(t2)
	default:
		return core.NoIntersection
	}
}

// NormalAt returns the outward normal (from center to point)
func (s *Sphere) NormalAt(point core.Point, _ core.Intersection) core.Normal {
	offset := point.Subtract(s.Center)
	requireOnSurface("sphere", point, offset.Length()-math.Abs(s.Radius))
	return offset.Normalize()
}

// Transform moves the center. Scaling also multiplies the radius by the
// largest scale factor: a non-uniformly scaled sphere is over-approximated
// by its bounding sphere rather than turned into an ellipsoid.
func (s *Sphere) Transform(t core.Transformation) {
	s.Center = t.Matrix().MultiplyPoint(s.Center)
	if t.Kind == core.ScaleKind {
		s.Radius *= t.MaxScaleFactor()
	}
}
