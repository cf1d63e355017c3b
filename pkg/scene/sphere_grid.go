package scene

import (
	"github.com/df07/go-lambert-raytracer/pkg/core"
	"github.com/df07/go-lambert-raytracer/pkg/geometry"
	"github.com/df07/go-lambert-raytracer/pkg/lights"
)

const (
	sphereGridSize    = 10
	sphereGridSpacing = 1.2
	sphereGridRadius  = 0.45
)

// NewSphereGridScene creates a scene with a 10x10 grid of spheres facing the
// camera, in front of a back wall
func NewSphereGridScene() *Scene {
	s := New()
	s.Camera = geometry.NewDefaultCamera()

	offset := float64(sphereGridSize-1) * sphereGridSpacing / 2
	for i := 0; i < sphereGridSize; i++ {
		for j := 0; j < sphereGridSize; j++ {
			center := core.NewPoint(
				float64(i)*sphereGridSpacing-offset,
				float64(j)*sphereGridSpacing-offset,
				0,
			)
			s.AddShape(geometry.NewSphere(center, sphereGridRadius))
		}
	}

	s.AddShape(geometry.NewPlane(core.NewVector(0, 0, 1), core.NewPoint(0, 0, -2)))
	s.AddLight(lights.NewDirectionalLight(core.NewVector(-1, -1, -2)))

	return s
}
