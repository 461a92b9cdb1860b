package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewQuadricsScene creates a row of cylinders and cones, capped and open
func NewQuadricsScene(cameraOverrides ...CameraConfig) (*Scene, error) {
	cameraConfig := CameraConfig{
		Width:       400,
		Height:      225,
		FieldOfView: 50,
		From:        core.NewPoint(0, 2.5, -7),
		To:          core.NewPoint(0, 1, 0),
		Up:          core.NewVector(0, 1, 0),
	}

	world := NewWorld()
	world.Light = lights.NewPointLight(core.NewPoint(-6, 10, -8), core.White)

	var errs []error

	checks := material.NewCheckerPattern(core.NewColor(0.8, 0.8, 0.8), core.NewColor(0.45, 0.45, 0.45))
	floor := geometry.NewPlane()
	floor.Material().Pattern = checks
	floor.Material().Specular = 0
	floor.Material().Reflective = 0.15

	// Open gold tube tipped toward the camera so its hollow interior shows
	tube, err := geometry.NewCylinder(0, 1, false)
	if err != nil {
		return nil, fmt.Errorf("quadrics scene: %w", err)
	}
	errs = append(errs, place(tube, core.Scaling(0.5, 1.6, 0.5), core.RotationX(core.Radians(-60)), core.Translation(0, 0.6, 0)))
	gold := tube.Material()
	gold.Color = core.NewColor(0.8, 0.6, 0.2)
	gold.Diffuse = 0.4
	gold.Reflective = 0.4
	gold.Shininess = 300

	post, err := geometry.NewCylinder(0, 2, true)
	if err != nil {
		return nil, fmt.Errorf("quadrics scene: %w", err)
	}
	errs = append(errs, place(post, core.Scaling(0.5, 1, 0.5), core.Translation(-2.6, 0, 0.5)))
	post.Material().Color = core.NewColor(0.8, 0.2, 0.2)

	// Apex at the top: y spans (-1, 0) before the lift
	spire, err := geometry.NewCone(-1, 0, true)
	if err != nil {
		return nil, fmt.Errorf("quadrics scene: %w", err)
	}
	errs = append(errs, place(spire, core.Scaling(0.7, 1.8, 0.7), core.Translation(2.6, 1.8, 0.5)))
	spire.Material().Color = core.NewColor(0.2, 0.2, 0.8)

	frustum, err := geometry.NewCone(0.5, 1, true)
	if err != nil {
		return nil, fmt.Errorf("quadrics scene: %w", err)
	}
	errs = append(errs, place(frustum, core.Scaling(0.8, 1.2, 0.8), core.Translation(1.2, -0.6, -2)))
	frustum.SetMaterial(material.Glass())
	frustum.Material().Diffuse = 0.1
	frustum.Material().Reflective = 0.9
	frustum.Material().Transparency = 0.9

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("quadrics scene: %w", err)
	}

	world.Add(floor, tube, post, spire, frustum)
	return newScene("quadrics", world, cameraConfig, cameraOverrides), nil
}
