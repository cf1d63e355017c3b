package lights

import (
	"fmt"

	"github.com/df07/go-lambert-raytracer/pkg/core"
)

// DefaultStrength is the multiplier used when a light is created without one
const DefaultStrength = 1.0

// DirectionalLight is a light infinitely far away whose rays all travel along
// the same direction
type DirectionalLight struct {
	Direction core.Normal // Direction the light travels
	strength  float64
}

// NewDirectionalLight creates a directional light travelling along direction
func NewDirectionalLight(direction core.Vector) *DirectionalLight {
	return &DirectionalLight{Direction: direction.Normalize(), strength: DefaultStrength}
}

// NewDefaultLight returns the light used when a scene defines none: a
// directional light travelling along -z, toward the default camera's view
func NewDefaultLight() *DirectionalLight {
	return NewDirectionalLight(core.NewVector(0, 0, -1))
}

// WithStrength sets the light's multiplier
func (l *DirectionalLight) WithStrength(strength float64) *DirectionalLight {
	l.strength = strength
	return l
}

func (l *DirectionalLight) Type() LightType { return LightTypeDirectional }

// DirectionTo is the same for every point: the reverse of the travel direction
func (l *DirectionalLight) DirectionTo(_ core.Point) core.Normal {
	return l.Direction.Negate()
}

func (l *DirectionalLight) Strength() float64 { return l.strength }

func (l *DirectionalLight) String() string {
	return fmt.Sprintf("directional light along (%g, %g, %g) x%g",
		l.Direction.X, l.Direction.Y, l.Direction.Z, l.strength)
}

// PointLight emits equally in every direction from a position. There is no
// distance falloff.
type PointLight struct {
	Position core.Point
	strength float64
}

// NewPointLight creates a point light at position
func NewPointLight(position core.Point) *PointLight {
	return &PointLight{Position: position, strength: DefaultStrength}
}

// WithStrength sets the light's multiplier
func (l *PointLight) WithStrength(strength float64) *PointLight {
	l.strength = strength
	return l
}

func (l *PointLight) Type() LightType { return LightTypePoint }

// DirectionTo returns normalize(position - point)
func (l *PointLight) DirectionTo(point core.Point) core.Normal {
	return l.Position.Subtract(point).Normalize()
}

func (l *PointLight) Strength() float64 { return l.strength }

// Transform moves the light position
func (l *PointLight) Transform(t core.Transformation) {
	l.Position = t.Matrix().MultiplyPoint(l.Position)
}

func (l *PointLight) String() string {
	return fmt.Sprintf("point light at (%g, %g, %g) x%g",
		l.Position.X, l.Position.Y, l.Position.Z, l.strength)
}

// Lambert returns the diffuse contribution of light at point with surface
// normal n: strength * max(0, n · toLight)
func Lambert(light Light, point core.Point, n core.Normal) float64 {
	cosine := n.Dot(light.DirectionTo(point))
	if cosine <= 0 {
		return 0
	}
	return light.Strength() * cosine
}
