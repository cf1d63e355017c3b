package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-lambert-raytracer/pkg/core"
)

func TestDiskIntersect(t *testing.T) {
	// Create a disk at origin facing up with radius 1
	disk := NewDisk(core.NewPoint(0, 0, 0), 1.0, core.NewVector(0, 1, 0))

	tests := []struct {
		name      string
		ray       core.Ray
		shouldHit bool
		expectedT float64
	}{
		{
			name:      "Ray hits center of disk",
			ray:       core.NewRay(core.NewPoint(0, 1, 0), core.NewVector(0, -1, 0)),
			shouldHit: true,
			expectedT: 1.0,
		},
		{
			name:      "Ray hits edge of disk",
			ray:       core.NewRay(core.NewPoint(1, 1, 0), core.NewVector(0, -1, 0)),
			shouldHit: true,
			expectedT: 1.0,
		},
		{
			name:      "Ray misses disk (outside radius)",
			ray:       core.NewRay(core.NewPoint(1.1, 1, 0), core.NewVector(0, -1, 0)),
			shouldHit: false,
		},
		{
			name:      "Ray parallel to disk plane",
			ray:       core.NewRay(core.NewPoint(0, 0, 0), core.NewVector(1, 0, 0)),
			shouldHit: false,
		},
		{
			name:      "Ray hits from below",
			ray:       core.NewRay(core.NewPoint(0, -1, 0), core.NewVector(0, 1, 0)),
			shouldHit: true,
			expectedT: 1.0,
		},
		{
			name:      "Ray points away from disk",
			ray:       core.NewRay(core.NewPoint(0, 1, 0), core.NewVector(0, 1, 0)),
			shouldHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := disk.Intersect(tt.ray)

			if hit.Hit != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got hit=%v", tt.shouldHit, hit.Hit)
			}

			if tt.shouldHit && math.Abs(hit.T-tt.expectedT) > 1e-6 {
				t.Errorf("Expected t=%v, got t=%v", tt.expectedT, hit.T)
			}
		})
	}
}

func TestDiskNormalAt(t *testing.T) {
	disk := NewDisk(core.NewPoint(0, 2, 0), 1.0, core.NewVector(0, 0, 5))

	if n := disk.Normal; n != (core.Normal{X: 0, Y: 0, Z: 1}) {
		t.Fatalf("Expected normalized normal (0,0,1), got %v", n)
	}

	ray := core.NewRay(core.NewPoint(0.5, 2, 3), core.NewVector(0, 0, -1))
	hit := disk.Intersect(ray)
	if !hit.Hit {
		t.Fatal("Expected hit")
	}
	if n := disk.NormalAt(ray.At(hit.T), hit); n != disk.Normal {
		t.Errorf("Expected disk normal %v, got %v", disk.Normal, n)
	}
}

func TestDiskNormalAt_OffSurfacePanics(t *testing.T) {
	disk := NewDisk(core.NewPoint(0, 0, 0), 1.0, core.NewVector(0, 1, 0))

	tests := []struct {
		name  string
		point core.Point
	}{
		{"above the disk", core.NewPoint(0, 0.5, 0)},
		{"in plane but outside radius", core.NewPoint(3, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				err, ok := recover().(error)
				if !ok || !errors.Is(err, ErrNotOnSurface) {
					t.Errorf("Expected ErrNotOnSurface panic, got %v", err)
				}
			}()
			disk.NormalAt(tt.point, core.NoIntersection)
		})
	}
}
