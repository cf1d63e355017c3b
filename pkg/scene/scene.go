package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-lambert-raytracer/pkg/core"
	"github.com/df07/go-lambert-raytracer/pkg/geometry"
	"github.com/df07/go-lambert-raytracer/pkg/lights"
)

// ErrNotTransformable is returned when a transformation targets a shape that
// cannot be transformed
var ErrNotTransformable = errors.New("shape does not support transformation")

// Default image size used when a scene does not specify one
const (
	DefaultWidth  = 500
	DefaultHeight = 500
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera *geometry.Camera // Suggested camera, may be nil
	Shapes []geometry.Shape // Objects in the scene, in insertion order
	Lights []lights.Light   // Lights in the scene
	Width  int              // Suggested image width
	Height int              // Suggested image height
}

// Hit describes the nearest intersection found along a ray
type Hit struct {
	Shape        geometry.Shape
	Index        int // Position of Shape in Scene.Shapes
	Intersection core.Intersection
}

// New creates an empty scene with the default image size
func New() *Scene {
	return &Scene{
		Shapes: make([]geometry.Shape, 0),
		Lights: make([]lights.Light, 0),
		Width:  DefaultWidth,
		Height: DefaultHeight,
	}
}

// AddShape appends shapes to the scene
func (s *Scene) AddShape(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// AddLight appends lights to the scene
func (s *Scene) AddLight(l ...lights.Light) {
	s.Lights = append(s.Lights, l...)
}

// NearestHit returns the closest intersection along ray. On equal distances
// the shape added first wins.
func (s *Scene) NearestHit(ray core.Ray) (Hit, bool) {
	nearest := Hit{Index: -1, Intersection: core.NoIntersection}

	for i, shape := range s.Shapes {
		hit := shape.Intersect(ray)
		if math.IsNaN(hit.T) {
			continue
		}
		if hit.Closer(nearest.Intersection) {
			nearest = Hit{Shape: shape, Index: i, Intersection: hit}
		}
	}

	return nearest, nearest.Index >= 0
}

// Transform applies t to the shape at index
func (s *Scene) Transform(index int, t core.Transformation) error {
	if index < 0 || index >= len(s.Shapes) {
		return fmt.Errorf("shape index %d out of range [0, %d)", index, len(s.Shapes))
	}
	transformer, ok := s.Shapes[index].(core.Transformer)
	if !ok {
		return fmt.Errorf("shape %d (%T): %w", index, s.Shapes[index], ErrNotTransformable)
	}
	transformer.Transform(t)
	return nil
}

// PrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) PrimitiveCount() int {
	return len(s.Shapes)
}

// Validate reports nil shapes or lights and an invalid image size
func (s *Scene) Validate() error {
	for i, shape := range s.Shapes {
		if shape == nil {
			return fmt.Errorf("shape %d is nil", i)
		}
	}
	for i, light := range s.Lights {
		if light == nil {
			return fmt.Errorf("light %d is nil", i)
		}
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", s.Width, s.Height)
	}
	return nil
}
