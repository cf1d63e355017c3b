package geometry

import (
	"math"

	"github.com/df07/go-lambert-raytracer/pkg/core"
)

// boxEpsilon is the minimum exit distance for a ray starting inside the box,
// matching the triangle's self-hit guard
const boxEpsilon = 1e-8

// AlignedBox represents an axis-aligned box between two corners
type AlignedBox struct {
	Min core.Point // Minimum corner
	Max core.Point // Maximum corner
}

// NewAlignedBox creates a box from its min and max corners
func NewAlignedBox(min, max core.Point) *AlignedBox {
	return &AlignedBox{Min: min, Max: max}
}

// NewAlignedBoxFromDimensions creates a box around center. The dimensions
// are half-extents, so (1,1,1) creates a 2x2x2 box.
func NewAlignedBoxFromDimensions(center core.Point, width, height, length float64) *AlignedBox {
	size := core.NewVector(width, height, length)
	return NewAlignedBox(center.Add(size.Negate()), center.Add(size))
}

// Intersect tests the ray against the box using the slab method. A ray
// starting inside the box reports its exit point. A ray starting on a face
// and pointing into the box hits that face at t = 0; one pointing out
// misses.
func (b *AlignedBox) Intersect(ray core.Ray) core.Intersection {
	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		var min, max, origin, direction float64

		switch axis {
		case 0: // X axis
			min, max = b.Min.X, b.Max.X
			origin, direction = ray.Origin.X, ray.Direction.X
		case 1: // Y axis
			min, max = b.Min.Y, b.Max.Y
			origin, direction = ray.Origin.Y, ray.Direction.Y
		case 2: // Z axis
			min, max = b.Min.Z, b.Max.Z
			origin, direction = ray.Origin.Z, ray.Direction.Z
		}

		// A ray parallel to this slab either runs inside it forever or
		// never enters it
		if direction == 0 {
			if origin < min || origin > max {
				return core.NoIntersection
			}
			continue
		}

		t1 := (min - origin) / direction
		t2 := (max - origin) / direction

		// Ensure t1 <= t2 (swap if needed)
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)

		// No intersection if the intervals do not overlap
		if tMin > tMax {
			return core.NoIntersection
		}
	}

	if math.IsInf(tMin, 0) || math.IsNaN(tMin) {
		return core.NoIntersection
	}

	if tMin >= 0 {
		return core.IntersectAt(tMin)
	}
	// Origin inside the box: the exit is the first surface in front. An
	// origin on a face heading outward has already left the box.
	if tMax <= boxEpsilon {
		return core.NoIntersection
	}
	return core.IntersectAt(tMax)
}

// NormalAt returns the unit normal of the face the point lies on, testing
// faces in the order x-min, x-max, y-min, y-max, z-min, z-max
func (b *AlignedBox) NormalAt(point core.Point, _ core.Intersection) core.Normal {
	faces := []struct {
		coordinate, plane float64
		normal            core.Normal
	}{
		{point.X, b.Min.X, core.Normal{X: -1}},
		{point.X, b.Max.X, core.Normal{X: 1}},
		{point.Y, b.Min.Y, core.Normal{Y: -1}},
		{point.Y, b.Max.Y, core.Normal{Y: 1}},
		{point.Z, b.Min.Z, core.Normal{Z: -1}},
		{point.Z, b.Max.Z, core.Normal{Z: 1}},
	}

	for _, face := range faces {
		if math.Abs(face.coordinate-face.plane) < SurfaceTolerance {
			return face.normal
		}
	}

	panic(&SurfaceError{Shape: "aligned box", Point: point, Distance: b.distanceToSurface(point)})
}

// distanceToSurface returns the distance from point to the nearest face plane
func (b *AlignedBox) distanceToSurface(point core.Point) float64 {
	return math.Min(
		math.Min(math.Abs(point.X-b.Min.X), math.Abs(point.X-b.Max.X)),
		math.Min(
			math.Min(math.Abs(point.Y-b.Min.Y), math.Abs(point.Y-b.Max.Y)),
			math.Min(math.Abs(point.Z-b.Min.Z), math.Abs(point.Z-b.Max.Z)),
		),
	)
}
