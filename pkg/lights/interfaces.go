package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

type LightType string

const (
	LightTypePoint LightType = "point"
)

// Light interface for sources that illuminate surfaces directly
type Light interface {
	Type() LightType

	// Position is the point shadow rays are aimed at
	Position() core.Tuple

	// Intensity is the color and brightness of the emitted light
	Intensity() core.Color

	// SamplePositions returns the points tested for soft-shadow occlusion.
	// A radius of zero collapses them to Position.
	SamplePositions(radius float64) []core.Tuple
}
