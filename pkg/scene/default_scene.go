package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene creates three spheres resting on a checkered floor
func NewDefaultScene(cameraOverrides ...CameraConfig) (*Scene, error) {
	cameraConfig := CameraConfig{
		Width:       300,
		Height:      150,
		FieldOfView: 60,
		From:        core.NewPoint(0, 1.5, -5),
		To:          core.NewPoint(0, 1, 0),
		Up:          core.NewVector(0, 1, 0),
	}

	world := NewWorld()
	world.Light = lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White)

	var errs []error

	floor := geometry.NewPlane()
	floor.Material().Pattern = material.NewCheckerPattern(core.NewColor(0.8, 0.8, 0.8), core.Black)

	middle := geometry.NewSphere()
	errs = append(errs, place(middle, core.Translation(-0.5, 1, 0.5)))
	middle.Material().Color = core.NewColor(0.1, 1, 0.5)
	middle.Material().Diffuse = 0.7
	middle.Material().Specular = 0.3
	rings := material.NewRingPattern(core.NewColor(0, 1, 0), core.NewColor(1, 0, 0))
	errs = append(errs, place(rings, core.Scaling(0.2, 0.2, 0.2), core.RotationX(core.Radians(60))))
	middle.Material().Pattern = rings

	right := geometry.NewSphere()
	errs = append(errs, place(right, core.Scaling(0.5, 0.5, 0.5), core.Translation(1.5, 0.5, -0.5)))
	right.Material().Color = core.NewColor(0.5, 1, 0.1)
	right.Material().Diffuse = 0.7
	right.Material().Specular = 0.3

	left := geometry.NewSphere()
	errs = append(errs, place(left, core.Scaling(0.33, 0.33, 0.33), core.Translation(-1.5, 0.33, -0.75)))
	left.Material().Color = core.NewColor(1, 0.8, 0.1)
	left.Material().Diffuse = 0.7
	left.Material().Specular = 0.3

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("default scene: %w", err)
	}

	world.Add(floor, middle, right, left)

	s := newScene("default", world, cameraConfig, cameraOverrides)
	s.Render.MaxDepth = 3
	return s, nil
}
