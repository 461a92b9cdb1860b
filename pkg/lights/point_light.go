package lights

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PointLight is a light with no size, located at a single point in space
type PointLight struct {
	position  core.Tuple
	intensity core.Color
}

// NewPointLight creates a new point light
func NewPointLight(position core.Tuple, intensity core.Color) *PointLight {
	return &PointLight{position: position, intensity: intensity}
}

func (l *PointLight) Type() LightType {
	return LightTypePoint
}

func (l *PointLight) Position() core.Tuple {
	return l.position
}

func (l *PointLight) Intensity() core.Color {
	return l.intensity
}

// SamplePositions returns the 8 corners of a cube of half-size radius centered
// on the light
func (l *PointLight) SamplePositions(radius float64) []core.Tuple {
	if radius <= 0 {
		return []core.Tuple{l.position}
	}

	samples := make([]core.Tuple, 0, 8)
	for _, dx := range []float64{-radius, radius} {
		for _, dy := range []float64{-radius, radius} {
			for _, dz := range []float64{-radius, radius} {
				samples = append(samples, l.position.Add(core.NewVector(dx, dy, dz)))
			}
		}
	}
	return samples
}

func (l *PointLight) String() string {
	return fmt.Sprintf("point light at %v, intensity %v", l.position, l.intensity)
}
