package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// UVMapping selects how pattern-space points are projected onto a texture
type UVMapping int

const (
	// PlanarMapping tiles the texture across the xz plane, one copy per unit square
	PlanarMapping UVMapping = iota
	// SphericalMapping wraps the texture around the unit sphere
	SphericalMapping
)

// TexturePattern provides color from a 2D image
type TexturePattern struct {
	transformable
	Width   int
	Height  int
	Pixels  []core.Color // Row-major: Pixels[y*Width + x]
	Mapping UVMapping
}

// NewTexturePattern creates a new texture pattern with planar mapping
func NewTexturePattern(width, height int, pixels []core.Color) *TexturePattern {
	return &TexturePattern{
		transformable: identityTransform(),
		Width:         width,
		Height:        height,
		Pixels:        pixels,
		Mapping:       PlanarMapping,
	}
}

// PatternAt projects the point to UV space and samples the texture
func (t *TexturePattern) PatternAt(point core.Tuple) core.Color {
	u, v := t.uv(point)
	return t.Sample(u, v)
}

func (t *TexturePattern) uv(p core.Tuple) (float64, float64) {
	switch t.Mapping {
	case SphericalMapping:
		theta := math.Atan2(p.X, p.Z)
		radius := math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
		if radius == 0 {
			return 0, 0
		}
		phi := math.Acos(core.Clamp(p.Y/radius, -1, 1))
		u := 1 - (theta/(2*math.Pi) + 0.5)
		// v stays inside [0,1) so the north pole samples the top row instead of wrapping
		v := core.Clamp(1-phi/math.Pi, 0, math.Nextafter(1, 0))
		return u, v
	default:
		return p.X, p.Z
	}
}

// Sample returns the nearest texel at the given UV coordinates.
// Coordinates wrap outside [0,1); v=0 is the bottom row of the image.
func (t *TexturePattern) Sample(u, v float64) core.Color {
	if t.Width == 0 || t.Height == 0 {
		return core.Black
	}
	u -= math.Floor(u)
	v -= math.Floor(v)

	x := int(u * float64(t.Width))
	y := int((1.0 - v) * float64(t.Height))

	x = core.Clamp(x, 0, t.Width-1)
	y = core.Clamp(y, 0, t.Height-1)

	return t.Pixels[y*t.Width+x]
}
