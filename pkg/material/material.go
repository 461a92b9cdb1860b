package material

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ErrInvalidMaterial is returned by Validate for out-of-range coefficients
var ErrInvalidMaterial = errors.New("invalid material")

// Common refractive indices
const (
	RefractiveIndexVacuum  = 1.0
	RefractiveIndexAir     = 1.00029
	RefractiveIndexWater   = 1.333
	RefractiveIndexGlass   = 1.5
	RefractiveIndexDiamond = 2.417
)

// Material holds the Phong coefficients and secondary-ray properties of a surface
type Material struct {
	Color           core.Color
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64 // [0,1]
	Transparency    float64 // [0,1]
	RefractiveIndex float64 // > 0, vacuum = 1
	Pattern         Pattern // optional, overrides Color
}

// DefaultMaterial returns a white, opaque, non-reflective Phong material
func DefaultMaterial() Material {
	return Material{
		Color:           core.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflective:      0,
		Transparency:    0,
		RefractiveIndex: RefractiveIndexVacuum,
	}
}

// Glass returns a fully transparent material with the refractive index of glass
func Glass() Material {
	m := DefaultMaterial()
	m.Transparency = 1.0
	m.RefractiveIndex = RefractiveIndexGlass
	return m
}

// Validate checks coefficient ranges
func (m Material) Validate() error {
	switch {
	case m.RefractiveIndex <= 0:
		return fmt.Errorf("%w: refractive index must be > 0, got %g", ErrInvalidMaterial, m.RefractiveIndex)
	case m.Reflective < 0 || m.Reflective > 1:
		return fmt.Errorf("%w: reflective must be in [0,1], got %g", ErrInvalidMaterial, m.Reflective)
	case m.Transparency < 0 || m.Transparency > 1:
		return fmt.Errorf("%w: transparency must be in [0,1], got %g", ErrInvalidMaterial, m.Transparency)
	case m.Shininess < 0:
		return fmt.Errorf("%w: shininess must be >= 0, got %g", ErrInvalidMaterial, m.Shininess)
	}
	return nil
}

// SurfaceColor returns the pattern color at worldPoint, or the flat color when
// the material has no pattern
func (m Material) SurfaceColor(object Object, worldPoint core.Tuple) core.Color {
	if m.Pattern == nil {
		return m.Color
	}
	return ColorAt(m.Pattern, object, worldPoint)
}
