package core

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vector is a free displacement or direction in 3D space. It is not assumed
// to be normalized.
type Vector struct {
	X, Y, Z float64
}

// Point is an absolute position in world space.
type Point struct {
	X, Y, Z float64
}

// Normal is a unit surface orientation.
type Normal struct {
	X, Y, Z float64
}

// normalSlack absorbs rounding when checking normal components.
const normalSlack = 1e-9

// NewVector creates a new Vector
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// NewPoint creates a new Point
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// NewNormal creates a normal from its components. Each component must lie in
// [-1, 1]; this is a weak sanity check and does not enforce unit length.
func NewNormal(x, y, z float64) Normal {
	for _, c := range [3]float64{x, y, z} {
		if math.Abs(c) > 1+normalSlack || math.IsNaN(c) {
			panic(fmt.Sprintf("normal components must be within [-1, 1], got (%g, %g, %g)", x, y, z))
		}
	}
	return Normal{X: x, Y: y, Z: z}
}

func (v Vector) r3() r3.Vec { return r3.Vec(v) }

// Add returns the sum of two vectors
func (v Vector) Add(other Vector) Vector {
	return Vector(r3.Add(v.r3(), other.r3()))
}

// Subtract returns the difference of two vectors
func (v Vector) Subtract(other Vector) Vector {
	return Vector(r3.Sub(v.r3(), other.r3()))
}

// Negate returns the vector pointing the opposite way
func (v Vector) Negate() Vector {
	return Vector(r3.Scale(-1, v.r3()))
}

// Multiply returns the vector scaled by a scalar
func (v Vector) Multiply(scalar float64) Vector {
	return Vector(r3.Scale(scalar, v.r3()))
}

// Divide returns the vector divided by a scalar
func (v Vector) Divide(scalar float64) Vector {
	return Vector{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

// Dot returns the dot product of two vectors
func (v Vector) Dot(other Vector) float64 {
	return r3.Dot(v.r3(), other.r3())
}

// Cross returns the cross product of two vectors
func (v Vector) Cross(other Vector) Vector {
	return Vector(r3.Cross(v.r3(), other.r3()))
}

// Length returns the Euclidean norm of the vector
func (v Vector) Length() float64 {
	return r3.Norm(v.r3())
}

// LengthSquared returns the squared norm of the vector
func (v Vector) LengthSquared() float64 {
	return r3.Norm2(v.r3())
}

// Normalize returns the unit normal pointing along v. The zero vector
// normalizes to the zero normal.
func (v Vector) Normalize() Normal {
	if v.LengthSquared() == 0 {
		return Normal{}
	}
	return Normal(r3.Unit(v.r3()))
}

// ToPoint reinterprets the vector as a position vector from the origin
func (v Vector) ToPoint() Point {
	return Point(v)
}

// Add returns the point displaced by a vector
func (p Point) Add(v Vector) Point {
	return Point(r3.Add(r3.Vec(p), v.r3()))
}

// Subtract returns the vector from other to p
func (p Point) Subtract(other Point) Vector {
	return Vector(r3.Sub(r3.Vec(p), r3.Vec(other)))
}

// ToVector returns the position vector of the point
func (p Point) ToVector() Vector {
	return Vector(p)
}

// DistanceTo returns the Euclidean distance between two points
func (p Point) DistanceTo(other Point) float64 {
	return p.Subtract(other).Length()
}

// Dot returns the dot product of two normals
func (n Normal) Dot(other Normal) float64 {
	return r3.Dot(r3.Vec(n), r3.Vec(other))
}

// ToVector returns the normal as a plain vector
func (n Normal) ToVector() Vector {
	return Vector(n)
}

// Multiply scales the normal into a vector
func (n Normal) Multiply(scalar float64) Vector {
	return Vector(r3.Scale(scalar, r3.Vec(n)))
}

// Negate returns the opposite orientation
func (n Normal) Negate() Normal {
	return Normal{-n.X, -n.Y, -n.Z}
}

// IsZero reports whether n is the degenerate zero normal
func (n Normal) IsZero() bool {
	return n == Normal{}
}
