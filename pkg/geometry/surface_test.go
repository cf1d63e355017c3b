package geometry

import (
	"errors"
	"testing"

	"github.com/df07/go-lambert-raytracer/pkg/core"
)

func TestNormalAt_ToleranceIsAbsolute(t *testing.T) {
	plane := NewPlane(core.NewVector(0, 0, 1), core.NewPoint(0, 0, 0))
	disk := NewDisk(core.NewPoint(0, 0, 0), 500, core.NewVector(0, 0, 1))
	sphere := NewSphere(core.NewPoint(0, 0, 0), 1000)
	triangle := NewTriangle(
		core.NewPoint(-1000, 0, 0),
		core.NewPoint(1000, 0, 0),
		core.NewPoint(0, 2000, 0),
	)

	tests := []struct {
		name        string
		shape       Shape
		point       core.Point
		shouldPanic bool
	}{
		{"plane far from anchor", plane, core.NewPoint(1000, 0, 0), false},
		{"plane half a unit off, far from anchor", plane, core.NewPoint(1000, 0, 0.5), true},
		{"large disk", disk, core.NewPoint(400, 0, 0), false},
		{"large disk half a unit above centre", disk, core.NewPoint(0, 0, 0.5), true},
		{"large sphere", sphere, core.NewPoint(1000, 0, 0), false},
		{"large sphere half a unit outside", sphere, core.NewPoint(1000.5, 0, 0), true},
		{"large sphere half a unit inside", sphere, core.NewPoint(0, 999.5, 0), true},
		{"large triangle", triangle, core.NewPoint(0, 500, 0), false},
		{"large triangle half a unit off", triangle, core.NewPoint(0, 500, 0.5), true},
		{"within tolerance", plane, core.NewPoint(1000, 0, SurfaceTolerance/2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if !tt.shouldPanic {
					if r != nil {
						t.Errorf("Expected no panic, got %v", r)
					}
					return
				}
				err, ok := r.(error)
				if !ok || !errors.Is(err, ErrNotOnSurface) {
					t.Errorf("Expected ErrNotOnSurface panic, got %v", r)
				}
			}()
			tt.shape.NormalAt(tt.point, core.NoIntersection)
		})
	}
}
