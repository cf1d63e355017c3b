package lights

import "github.com/df07/go-lambert-raytracer/pkg/core"

type LightType string

const (
	LightTypeDirectional LightType = "directional"
	LightTypePoint       LightType = "point"
)

// Light interface for sources that contribute direct diffuse lighting
type Light interface {
	Type() LightType

	// DirectionTo returns the unit direction FROM point TO the light.
	// A zero normal means the direction is undefined (point on the light).
	DirectionTo(point core.Point) core.Normal

	// Strength scales the light's Lambertian contribution
	Strength() float64
}
