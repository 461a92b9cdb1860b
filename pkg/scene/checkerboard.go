package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewCheckerboardScene creates a mirrored sphere sitting on a textured checkerboard
func NewCheckerboardScene(cameraOverrides ...CameraConfig) (*Scene, error) {
	cameraConfig := CameraConfig{
		Width:       300,
		Height:      200,
		FieldOfView: 60,
		From:        core.NewPoint(0, 1.5, -3),
		To:          core.NewPoint(0, 1, 0),
		Up:          core.NewVector(0, 1, 0),
	}

	world := NewWorld()
	world.Light = lights.NewPointLight(core.NewPoint(-9.6, 10, -30), core.White)

	var errs []error

	// One texture copy covers a 4x4 block of floor with 8x8 checks
	checks := material.NewCheckerboardTexture(256, 256, 32,
		core.NewColor(0.9, 0.9, 0.9),
		core.NewColor(0.15, 0.15, 0.15),
	)
	errs = append(errs, place(checks, core.Scaling(4, 1, 4)))

	floor := geometry.NewPlane()
	floor.Material().Pattern = checks
	floor.Material().Specular = 0
	floor.Material().Reflective = 0.1

	sphere := geometry.NewSphere()
	errs = append(errs, place(sphere, core.Translation(0, 1, 1)))
	sphere.Material().Color = core.NewColor(0.1, 0.1, 0.2)
	sphere.Material().Diffuse = 0.3
	sphere.Material().Reflective = 0.8
	sphere.Material().Shininess = 300

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("checkerboard scene: %w", err)
	}

	world.Add(floor, sphere)
	return newScene("checkerboard", world, cameraConfig, cameraOverrides), nil
}
