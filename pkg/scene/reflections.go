package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewReflectionsScene creates a hall of two facing mirrors. Each pixel that
// sees a mirror bounces until the depth budget runs out.
func NewReflectionsScene(cameraOverrides ...CameraConfig) (*Scene, error) {
	cameraConfig := CameraConfig{
		Width:       400,
		Height:      200,
		FieldOfView: 70,
		From:        core.NewPoint(-1.5, 1.6, -3.5),
		To:          core.NewPoint(0.5, 1, 0),
		Up:          core.NewVector(0, 1, 0),
	}

	world := NewWorld()
	world.Light = lights.NewPointLight(core.NewPoint(-2, 6, -4), core.White)

	var errs []error

	floor := geometry.NewPlane()
	stripes := material.NewStripePattern(core.NewColor(0.9, 0.85, 0.7), core.NewColor(0.35, 0.3, 0.25))
	errs = append(errs, place(stripes, core.Scaling(0.5, 1, 0.5), core.RotationY(math.Pi/4)))
	floor.Material().Pattern = stripes
	floor.Material().Specular = 0

	mirror := func(z float64) *geometry.Plane {
		p := geometry.NewPlane()
		errs = append(errs, place(p, core.RotationX(math.Pi/2), core.Translation(0, 0, z)))
		p.Material().Color = core.NewColor(0.05, 0.05, 0.08)
		p.Material().Diffuse = 0.1
		p.Material().Specular = 0.5
		p.Material().Reflective = 0.9
		return p
	}
	front := mirror(-6)
	back := mirror(3)

	red := geometry.NewSphere()
	errs = append(errs, place(red, core.Scaling(0.7, 0.7, 0.7), core.Translation(0.5, 0.7, 0)))
	red.Material().Color = core.NewColor(0.9, 0.2, 0.2)
	red.Material().Reflective = 0.2

	blue := geometry.NewSphere()
	errs = append(errs, place(blue, core.Scaling(0.4, 0.4, 0.4), core.Translation(-0.8, 0.4, 0.9)))
	blue.Material().Color = core.NewColor(0.2, 0.3, 0.9)

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("reflections scene: %w", err)
	}

	world.Add(floor, front, back, red, blue)
	s := newScene("reflections", world, cameraConfig, cameraOverrides)
	s.Render.MaxDepth = 8
	return s, nil
}
