package core

// Ray is a half-line through space. Callers are expected to pass a
// normalized direction; it is not enforced here.
type Ray struct {
	Origin    Point
	Direction Vector
}

// NewRay creates a new ray
func NewRay(origin Point, direction Vector) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Point {
	return r.Origin.Add(r.Direction.Multiply(t))
}
