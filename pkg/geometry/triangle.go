package geometry

import (
	"math"

	"github.com/df07/go-lambert-raytracer/pkg/core"
)

// triangleEpsilon bounds the determinant for parallel rays and the minimum
// accepted hit distance
const triangleEpsilon = 1e-8

// Triangle represents a single triangle defined by three vertices, stored
// as position vectors
type Triangle struct {
	A, B, C core.Vector
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(a, b, c core.Point) *Triangle {
	return &Triangle{
		A: a.ToVector(),
		B: b.ToVector(),
		C: c.ToVector(),
	}
}

// Vertices returns the three vertices as points
func (t *Triangle) Vertices() [3]core.Point {
	return [3]core.Point{t.A.ToPoint(), t.B.ToPoint(), t.C.ToPoint()}
}

// Intersect tests if a ray intersects with the triangle using the
// Möller-Trumbore algorithm
func (t *Triangle) Intersect(ray core.Ray) core.Intersection {
	ab := t.B.Subtract(t.A)
	ac := t.C.Subtract(t.A)

	pvec := ray.Direction.Cross(ac)
	det := ab.Dot(pvec)

	// If determinant is near zero, ray lies in plane of triangle
	if math.Abs(det) < triangleEpsilon {
		return core.NoIntersection
	}

	invDet := 1.0 / det
	ao := ray.Origin.ToVector().Subtract(t.A)
	u := ao.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return core.NoIntersection
	}

	qvec := ao.Cross(ab)
	v := ray.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return core.NoIntersection
	}

	// Only hits strictly in front of the origin count, so a ray leaving the
	// surface does not hit the triangle it starts on
	tParam := ac.Dot(qvec) * invDet
	if tParam <= triangleEpsilon {
		return core.NoIntersection
	}
	return core.IntersectAt(tParam)
}

// NormalAt returns the flat normal ab × ac, independent of the hit location
func (t *Triangle) NormalAt(point core.Point, _ core.Intersection) core.Normal {
	normal := t.normal()
	requireOnSurface("triangle", point, point.ToVector().Subtract(t.A).Dot(normal.ToVector()))
	return normal
}

func (t *Triangle) normal() core.Normal {
	return t.B.Subtract(t.A).Cross(t.C.Subtract(t.A)).Normalize()
}

// Transform maps every vertex through the transformation
func (t *Triangle) Transform(tr core.Transformation) {
	m := tr.Matrix()
	t.A = m.MultiplyPoint(t.A.ToPoint()).ToVector()
	t.B = m.MultiplyPoint(t.B.ToPoint()).ToVector()
	t.C = m.MultiplyPoint(t.C.ToPoint()).ToVector()
}
