package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewTexturedScene creates a scene demonstrating texture and pattern mapping
// on each kind of shape
func NewTexturedScene(cameraOverrides ...CameraConfig) (*Scene, error) {
	cameraConfig := CameraConfig{
		Width:       480,
		Height:      270,
		FieldOfView: 50,
		From:        core.NewPoint(0, 2, -10),
		To:          core.NewPoint(0, 1, 0),
		Up:          core.NewVector(0, 1, 0),
	}

	world := NewWorld()
	world.Light = lights.NewPointLight(core.NewPoint(-5, 10, -10), core.White)

	// Procedural textures
	checkerboard := material.NewCheckerboardTexture(256, 256, 32,
		core.NewColor(0.9, 0.9, 0.9),
		core.NewColor(0.2, 0.2, 0.8),
	)
	redGreenGradient := material.NewGradientTexture(256, 256,
		core.NewColor(1.0, 0.2, 0.2),
		core.NewColor(0.2, 1.0, 0.2),
	)
	redGreenGradient.Mapping = material.SphericalMapping
	uvDebug := material.NewUVDebugTexture(256, 256)
	uvDebug.Mapping = material.SphericalMapping

	var errs []error
	errs = append(errs, place(checkerboard, core.Scaling(4, 1, 4)))

	floor := geometry.NewPlane()
	floor.Material().Pattern = checkerboard
	floor.Material().Specular = 0

	left := geometry.NewSphere()
	errs = append(errs, place(left, core.Translation(-2.5, 1, 0)))
	left.Material().Pattern = uvDebug

	middle := geometry.NewSphere()
	errs = append(errs, place(middle, core.Translation(0, 1, 0)))
	middle.Material().Pattern = redGreenGradient

	stripes := material.NewStripePattern(core.NewColor(0.95, 0.75, 0.2), core.NewColor(0.6, 0.2, 0.1))
	errs = append(errs, place(stripes, core.Scaling(0.25, 1, 1), core.RotationZ(core.Radians(45))))
	right := geometry.NewCube()
	errs = append(errs, place(right, core.Scaling(0.8, 0.8, 0.8), core.RotationY(core.Radians(30)), core.Translation(2.5, 0.8, 0)))
	right.Material().Pattern = stripes

	gradient := material.NewGradientPattern(core.NewColor(0.1, 0.3, 0.6), core.NewColor(0.9, 0.9, 1))
	errs = append(errs, place(gradient, core.Scaling(20, 1, 1), core.Translation(-10, 0, 0)))
	backdrop := geometry.NewPlane()
	errs = append(errs, place(backdrop, core.RotationX(core.Radians(90)), core.Translation(0, 0, 10)))
	backdrop.Material().Pattern = gradient
	backdrop.Material().Specular = 0

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("textured scene: %w", err)
	}

	world.Add(floor, left, middle, right, backdrop)
	return newScene("textured", world, cameraConfig, cameraOverrides), nil
}
