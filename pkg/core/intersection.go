package core

import "math"

// Intersection is the outcome of a ray query: either no hit, or a hit at
// parameter T, the smallest non-negative parameter in front of the ray origin.
type Intersection struct {
	T   float64
	Hit bool
}

// NoIntersection is the "no hit" result
var NoIntersection = Intersection{}

// IntersectAt returns a hit at parameter t. Non-finite parameters collapse to
// NoIntersection so degenerate geometry can never surface as a hit.
func IntersectAt(t float64) Intersection {
	if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
		return NoIntersection
	}
	return Intersection{T: t, Hit: true}
}

// Closer reports whether i is a hit strictly nearer than other
func (i Intersection) Closer(other Intersection) bool {
	if !i.Hit {
		return false
	}
	return !other.Hit || i.T < other.T
}
