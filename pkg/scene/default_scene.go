package scene

import (
	"github.com/df07/go-lambert-raytracer/pkg/core"
	"github.com/df07/go-lambert-raytracer/pkg/geometry"
	"github.com/df07/go-lambert-raytracer/pkg/lights"
)

// NewDefaultScene creates a scene with one of every primitive in front of a
// back wall, lit by a directional and a point light
func NewDefaultScene() *Scene {
	s := New()
	s.Camera = geometry.NewDefaultCamera()

	s.AddShape(
		geometry.NewSphere(core.NewPoint(0, 0, 0), 3),
		geometry.NewSphere(core.NewPoint(-6, -4, -2), 2),
		geometry.NewAlignedBoxFromDimensions(core.NewPoint(6, -4, 0), 1.5, 1.5, 1.5),
		geometry.NewTriangle(
			core.NewPoint(-8, 4, -3),
			core.NewPoint(-2, 4, -3),
			core.NewPoint(-5, 8, -3),
		),
		geometry.NewDisk(core.NewPoint(5, 5, -2), 2, core.NewVector(0, 0.3, 1)),
		geometry.NewPlane(core.NewVector(0, 0, 1), core.NewPoint(0, 0, -10)),
	)

	s.AddLight(
		lights.NewDirectionalLight(core.NewVector(-1, -1, -1)).WithStrength(0.8),
		lights.NewPointLight(core.NewPoint(0, 10, 15)).WithStrength(0.4),
	)

	return s
}
