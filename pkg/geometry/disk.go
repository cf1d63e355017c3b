package geometry

import (
	"math"

	"github.com/df07/go-lambert-raytracer/pkg/core"
)

// Disk represents a flat circular disk in 3D space
type Disk struct {
	Center core.Point  // Center of the disk
	Radius float64     // Radius of the disk
	Normal core.Normal // Normal vector (pointing "up" from the disk)
}

// NewDisk creates a new disk. The normal is normalized.
func NewDisk(center core.Point, radius float64, normal core.Vector) *Disk {
	return &Disk{
		Center: center,
		Radius: radius,
		Normal: normal.Normalize(),
	}
}

// Intersect runs the plane test, then rejects hits outside the radius
func (d *Disk) Intersect(ray core.Ray) core.Intersection {
	hit := intersectPlane(ray, d.Center, d.Normal)
	if !hit.Hit {
		return core.NoIntersection
	}

	if ray.At(hit.T).DistanceTo(d.Center) > d.Radius {
		return core.NoIntersection
	}
	return hit
}

// NormalAt returns the disk normal, which is the same everywhere on the disk
func (d *Disk) NormalAt(point core.Point, _ core.Intersection) core.Normal {
	offset := point.Subtract(d.Center)
	requireOnSurface("disk", point, offset.Dot(d.Normal.ToVector()))
	requireOnSurface("disk", point, math.Max(0, offset.Length()-d.Radius))
	return d.Normal
}
