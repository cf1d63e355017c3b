package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-lambert-raytracer/pkg/core"
)

func TestViewFrame_PointOnPixel(t *testing.T) {
	frame := NewViewFrame(core.NewPoint(0, 0, 10), 10, 10)

	tests := []struct {
		name     string
		x, y     int
		expected core.Point
	}{
		{"first pixel", 0, 0, core.NewPoint(-5, -5, 10)},
		{"center pixel", 50, 50, core.NewPoint(0, 0, 10)},
		{"last column", 99, 0, core.NewPoint(4.9, -5, 10)},
		{"quarter", 25, 75, core.NewPoint(-2.5, 2.5, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := frame.PointOnPixel(tt.x, tt.y, 100, 100)
			if p.DistanceTo(tt.expected) > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, p)
			}
		})
	}
}

func TestViewFrame_NonSquareImage(t *testing.T) {
	frame := NewViewFrame(core.NewPoint(1, 2, 3), 4, 2)

	p := frame.PointOnPixel(200, 50, 400, 100)
	expected := core.NewPoint(1, 2, 3)
	if p.DistanceTo(expected) > 1e-9 {
		t.Errorf("Expected %v, got %v", expected, p)
	}
}

func TestCamera_RayForPixel(t *testing.T) {
	camera := NewCamera(core.NewPoint(0, 0, 20), NewViewFrame(core.NewPoint(0, 0, 10), 10, 10))

	ray := camera.RayForPixel(50, 50, 100, 100)
	if ray.Origin != camera.Position {
		t.Errorf("Expected origin %v, got %v", camera.Position, ray.Origin)
	}
	if math.Abs(ray.Direction.Length()-1) > 1e-12 {
		t.Errorf("Expected unit direction, got length %v", ray.Direction.Length())
	}
	if math.Abs(ray.Direction.Z+1) > 1e-12 {
		t.Errorf("Expected direction (0,0,-1), got %v", ray.Direction)
	}

	// The ray passes through the frame point for its pixel
	corner := camera.RayForPixel(0, 0, 100, 100)
	frameHit := corner.At(corner.Direction.Length() * camera.Position.DistanceTo(core.NewPoint(-5, -5, 10)))
	if frameHit.DistanceTo(core.NewPoint(-5, -5, 10)) > 1e-9 {
		t.Errorf("Expected ray through (-5,-5,10), reached %v", frameHit)
	}
}

func TestCamera_Transform(t *testing.T) {
	frame := NewViewFrame(core.NewPoint(0, 0, 10), 10, 10)
	camera := NewCamera(core.NewPoint(0, 0, 20), frame)

	camera.Transform(core.Translate(core.NewVector(1, 2, 3)))

	if camera.Position.DistanceTo(core.NewPoint(1, 2, 23)) > 1e-9 {
		t.Errorf("Expected position (1,2,23), got %v", camera.Position)
	}
	if camera.Frame != frame {
		t.Errorf("Expected frame unchanged, got %v", camera.Frame)
	}
}
