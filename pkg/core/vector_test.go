package core

import (
	"math"
	"testing"
)

func vectorsClose(a, b Vector, tolerance float64) bool {
	return a.Subtract(b).Length() <= tolerance
}

func TestVector_Arithmetic(t *testing.T) {
	v := NewVector(1, 2, 4)
	w := NewVector(0, -1, 2)

	tests := []struct {
		name     string
		got      Vector
		expected Vector
	}{
		{"add", v.Add(w), NewVector(1, 1, 6)},
		{"subtract", v.Subtract(w), NewVector(1, 3, 2)},
		{"negate", v.Negate(), NewVector(-1, -2, -4)},
		{"multiply", w.Multiply(2), NewVector(0, -2, 4)},
		{"divide", v.Divide(2), NewVector(0.5, 1, 2)},
		{"cross x*y", NewVector(1, 0, 0).Cross(NewVector(0, 1, 0)), NewVector(0, 0, 1)},
		{"cross y*x", NewVector(0, 1, 0).Cross(NewVector(1, 0, 0)), NewVector(0, 0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}

	if d := v.Dot(w); d != 6 {
		t.Errorf("Expected dot 6, got %f", d)
	}
	if l := v.Length(); math.Abs(l-math.Sqrt(21)) > 1e-12 {
		t.Errorf("Expected length %f, got %f", math.Sqrt(21), l)
	}
	if l := v.LengthSquared(); l != 21 {
		t.Errorf("Expected squared length 21, got %f", l)
	}
}

func TestVector_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vector
		expected Normal
	}{
		{"axis aligned", NewVector(0, 0, -2), Normal{0, 0, -1}},
		{"diagonal", NewVector(3, 4, 0), Normal{0.6, 0.8, 0}},
		{"zero vector", NewVector(0, 0, 0), Normal{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.vector.Normalize()
			if !vectorsClose(n.ToVector(), tt.expected.ToVector(), 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, n)
			}
		})
	}
}

func TestVector_NormalizeZeroIsDefined(t *testing.T) {
	n := Vector{}.Normalize()
	if !n.IsZero() {
		t.Errorf("Expected zero normal, got %v", n)
	}
	if math.IsNaN(n.X) || math.IsNaN(n.Y) || math.IsNaN(n.Z) {
		t.Errorf("Zero normal must not contain NaN, got %v", n)
	}
}

func TestPoint_Arithmetic(t *testing.T) {
	p := NewPoint(1, 2, 3)
	q := NewPoint(4, 6, 3)

	if v := q.Subtract(p); v != NewVector(3, 4, 0) {
		t.Errorf("Expected point difference (3,4,0), got %v", v)
	}
	if r := p.Add(NewVector(1, 1, 1)); r != NewPoint(2, 3, 4) {
		t.Errorf("Expected (2,3,4), got %v", r)
	}
	if d := p.DistanceTo(q); math.Abs(d-5) > 1e-12 {
		t.Errorf("Expected distance 5, got %f", d)
	}
	if v := p.ToVector(); v.ToPoint() != p {
		t.Errorf("Point/vector conversion should round trip, got %v", v.ToPoint())
	}
}

func TestNewNormal_RejectsOutOfRangeComponents(t *testing.T) {
	tests := []struct {
		name      string
		x, y, z   float64
		wantPanic bool
	}{
		{"unit z", 0, 0, 1, false},
		{"negative unit", -1, 0, 0, false},
		{"too large", 0, 1.5, 0, true},
		{"too small", 0, 0, -2, true},
		{"nan", math.NaN(), 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if (r != nil) != tt.wantPanic {
					t.Errorf("panic = %v, wantPanic %t", r, tt.wantPanic)
				}
			}()
			NewNormal(tt.x, tt.y, tt.z)
		})
	}
}

func TestNormal_Operations(t *testing.T) {
	n := NewNormal(0, 1, 0)
	if d := n.Dot(NewNormal(0, 1, 0)); d != 1 {
		t.Errorf("Expected dot 1, got %f", d)
	}
	if v := n.Multiply(3); v != NewVector(0, 3, 0) {
		t.Errorf("Expected (0,3,0), got %v", v)
	}
	if neg := n.Negate(); neg != (Normal{0, -1, 0}) {
		t.Errorf("Expected (0,-1,0), got %v", neg)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewPoint(1, 0, 0), NewVector(0, 0, -1))
	if p := ray.At(2.5); p != NewPoint(1, 0, -2.5) {
		t.Errorf("Expected (1,0,-2.5), got %v", p)
	}
	if p := ray.At(0); p != ray.Origin {
		t.Errorf("Expected origin at t=0, got %v", p)
	}
}

func TestIntersectAt(t *testing.T) {
	tests := []struct {
		name    string
		t       float64
		wantHit bool
	}{
		{"positive", 2, true},
		{"zero", 0, true},
		{"negative", -1, false},
		{"nan", math.NaN(), false},
		{"infinite", math.Inf(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := IntersectAt(tt.t)
			if hit.Hit != tt.wantHit {
				t.Errorf("IntersectAt(%v).Hit = %t, want %t", tt.t, hit.Hit, tt.wantHit)
			}
		})
	}

	if !IntersectAt(1).Closer(NoIntersection) {
		t.Error("Any hit should be closer than no hit")
	}
	if IntersectAt(1).Closer(IntersectAt(1)) {
		t.Error("Equal hits must not be closer than each other")
	}
	if NoIntersection.Closer(IntersectAt(1)) {
		t.Error("No hit is never closer")
	}
}
