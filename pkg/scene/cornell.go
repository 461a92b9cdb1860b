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

// NewCornellScene creates a Cornell-style room with plane walls, a mirror
// sphere, a glass sphere and a rotated box
func NewCornellScene(cameraOverrides ...CameraConfig) (*Scene, error) {
	cameraConfig := CameraConfig{
		Width:       400,
		Height:      400,
		FieldOfView: 55,
		From:        core.NewPoint(0, 2.5, -7),
		To:          core.NewPoint(0, 2.5, 0),
		Up:          core.NewVector(0, 1, 0),
	}

	// Room dimensions: x in [-2.5, 2.5], y in [0, 5], back wall at z=2.5
	const roomSize = 5.0
	half := roomSize / 2

	world := NewWorld()
	world.Light = lights.NewPointLight(core.NewPoint(0, roomSize-0.5, -1), core.White)

	wall := func(color core.Color) material.Material {
		m := material.DefaultMaterial()
		m.Color = color
		m.Specular = 0
		m.Ambient = 0.15
		return m
	}
	white := wall(core.NewColor(0.73, 0.73, 0.73))
	red := wall(core.NewColor(0.65, 0.05, 0.05))
	green := wall(core.NewColor(0.12, 0.45, 0.15))

	var errs []error

	floor := geometry.NewPlane()
	floor.SetMaterial(white)

	ceiling := geometry.NewPlane()
	ceiling.SetMaterial(white)
	errs = append(errs, place(ceiling, core.Translation(0, roomSize, 0)))

	backWall := geometry.NewPlane()
	backWall.SetMaterial(white)
	errs = append(errs, place(backWall, core.RotationX(math.Pi/2), core.Translation(0, 0, half)))

	leftWall := geometry.NewPlane()
	leftWall.SetMaterial(red)
	errs = append(errs, place(leftWall, core.RotationZ(math.Pi/2), core.Translation(-half, 0, 0)))

	rightWall := geometry.NewPlane()
	rightWall.SetMaterial(green)
	errs = append(errs, place(rightWall, core.RotationZ(math.Pi/2), core.Translation(half, 0, 0)))

	mirror := geometry.NewSphere()
	errs = append(errs, place(mirror, core.Scaling(0.8, 0.8, 0.8), core.Translation(-1, 0.8, 0.8)))
	mirror.Material().Color = core.NewColor(0.8, 0.8, 0.9)
	mirror.Material().Diffuse = 0.1
	mirror.Material().Reflective = 0.9

	glass := geometry.NewGlassSphere()
	errs = append(errs, place(glass, core.Scaling(0.7, 0.7, 0.7), core.Translation(1, 0.7, -0.8)))
	glass.Material().Color = core.Black
	glass.Material().Diffuse = 0.1
	glass.Material().Reflective = 0.9

	box := geometry.NewCube()
	errs = append(errs, place(box, core.Scaling(0.5, 1, 0.5), core.RotationY(core.Radians(20)), core.Translation(0.9, 1, 1.2)))
	box.SetMaterial(white)

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("cornell scene: %w", err)
	}

	world.Add(floor, ceiling, backWall, leftWall, rightWall, mirror, glass, box)
	return newScene("cornell", world, cameraConfig, cameraOverrides), nil
}
