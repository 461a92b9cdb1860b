package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/lucasb-eyer/go-colorful"
)

// hclColor converts a perceptual HCL color to a core.Color clamped to the RGB gamut.
// h: hue (0-360 degrees), c: chroma, l: lightness (0-1)
func hclColor(h, c, l float64) core.Color {
	rgb := colorful.Hcl(h, c, l).Clamped()
	return core.NewColor(rgb.R, rgb.G, rgb.B)
}

// NewSphereGridScene creates a grid of shiny spheres with hue varying along x
// and chroma varying along z
func NewSphereGridScene(cameraOverrides ...CameraConfig) (*Scene, error) {
	cameraConfig := CameraConfig{
		Width:       480,
		Height:      270,
		FieldOfView: 40,
		From:        core.NewPoint(4.5, 6, -9),
		To:          core.NewPoint(4.5, 0.8, 4.5),
		Up:          core.NewVector(0, 1, 0),
	}

	world := NewWorld()
	world.Light = lights.NewPointLight(core.NewPoint(-5, 15, -10), core.NewColor(1, 0.97, 0.92))

	ground := geometry.NewPlane()
	ground.Material().Color = core.NewColor(0.5, 0.5, 0.5)
	ground.Material().Specular = 0
	ground.Material().Reflective = 0.15
	world.Add(ground)

	const gridSize = 10
	const targetArea = 9.0
	spacing := targetArea / float64(gridSize-1)
	radius := math.Max(0.05, math.Min(0.35, spacing*0.35))

	const (
		baseLightness = 0.65
		minChroma     = 0.1
		maxChroma     = 0.6
	)

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i) * spacing
			z := float64(j) * spacing

			hue := float64(i) / float64(gridSize-1) * 360.0
			chroma := minChroma + float64(j)/float64(gridSize-1)*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)

			sphere := geometry.NewSphere()
			if err := place(sphere, core.Scaling(radius, radius, radius), core.Translation(x, radius, z)); err != nil {
				return nil, fmt.Errorf("sphere grid scene: %w", err)
			}
			m := sphere.Material()
			m.Color = hclColor(hue, chroma, lightness)
			m.Diffuse = 0.7
			m.Specular = 0.6
			m.Shininess = 150
			m.Reflective = 0.05 + 0.1*float64((i+j)%3)/2.0
			world.Add(sphere)
		}
	}

	return newScene("sphere-grid", world, cameraConfig, cameraOverrides), nil
}
