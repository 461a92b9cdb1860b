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

// glassRoom returns a world with a checkered floor and a checkered back wall
// for refracting objects to distort
func glassRoom() (*World, error) {
	world := NewWorld()
	world.Light = lights.NewPointLight(core.NewPoint(-4.9, 4.9, -1), core.White)

	var errs []error

	floor := geometry.NewPlane()
	floorChecks := material.NewCheckerPattern(core.NewColor(0.35, 0.35, 0.35), core.NewColor(0.65, 0.65, 0.65))
	floor.Material().Pattern = floorChecks
	floor.Material().Specular = 0
	floor.Material().Reflective = 0.4

	wall := geometry.NewPlane()
	errs = append(errs, place(wall, core.RotationX(math.Pi/2), core.Translation(0, 0, 5)))
	wallChecks := material.NewCheckerPattern(core.NewColor(0.45, 0.45, 0.45), core.NewColor(0.55, 0.55, 0.55))
	errs = append(errs, place(wallChecks, core.Scaling(0.5, 0.5, 0.5)))
	wall.Material().Pattern = wallChecks
	wall.Material().Ambient = 0
	wall.Material().Diffuse = 0.4
	wall.Material().Specular = 0
	wall.Material().Reflective = 0.3

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	world.Add(floor, wall)
	return world, nil
}

func glassMaterial(color core.Color, index float64) material.Material {
	m := material.Glass()
	m.Color = color
	m.Ambient = 0
	m.Diffuse = 0.1
	m.Specular = 1
	m.Shininess = 300
	m.Reflective = 0.9
	m.RefractiveIndex = index
	return m
}

// NewRefractionScene creates three overlapping glass spheres of increasing
// refractive index in front of a checkered wall
func NewRefractionScene(cameraOverrides ...CameraConfig) (*Scene, error) {
	cameraConfig := CameraConfig{
		Width:       400,
		Height:      200,
		FieldOfView: 65,
		From:        core.NewPoint(0, 2, -5),
		To:          core.NewPoint(0, 1, 0),
		Up:          core.NewVector(0, 1, 0),
	}

	world, err := glassRoom()
	if err != nil {
		return nil, fmt.Errorf("refraction scene: %w", err)
	}

	var errs []error

	outer := geometry.NewSphere()
	outer.SetMaterial(glassMaterial(core.NewColor(0.1, 0, 0.2), material.RefractiveIndexGlass))
	errs = append(errs, place(outer, core.Scaling(1.2, 1.2, 1.2), core.Translation(0, 1.2, 0)))

	left := geometry.NewSphere()
	left.SetMaterial(glassMaterial(core.NewColor(0, 0.2, 0), 2.0))
	errs = append(errs, place(left, core.Scaling(0.5, 0.5, 0.5), core.Translation(-0.3, 1.2, -0.25)))

	right := geometry.NewSphere()
	right.SetMaterial(glassMaterial(core.NewColor(0.2, 0, 0), material.RefractiveIndexDiamond))
	errs = append(errs, place(right, core.Scaling(0.5, 0.5, 0.5), core.Translation(0.3, 1.2, 0.25)))

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("refraction scene: %w", err)
	}

	world.Add(outer, left, right)
	s := newScene("refraction", world, cameraConfig, cameraOverrides)
	s.Render.MaxDepth = 6
	return s, nil
}

// NewHollowGlassScene creates a glass sphere with an air pocket inside it and
// a solid blue sphere inside the pocket
func NewHollowGlassScene(cameraOverrides ...CameraConfig) (*Scene, error) {
	cameraConfig := CameraConfig{
		Width:       300,
		Height:      300,
		FieldOfView: 45,
		From:        core.NewPoint(0, 2.5, -5),
		To:          core.NewPoint(0, 1, 0),
		Up:          core.NewVector(0, 1, 0),
	}

	world, err := glassRoom()
	if err != nil {
		return nil, fmt.Errorf("hollow glass scene: %w", err)
	}

	var errs []error

	shell := geometry.NewSphere()
	shell.SetMaterial(glassMaterial(core.Black, material.RefractiveIndexGlass))
	errs = append(errs, place(shell, core.Translation(0, 1, 0)))

	pocket := geometry.NewSphere()
	pocket.SetMaterial(glassMaterial(core.Black, material.RefractiveIndexAir))
	errs = append(errs, place(pocket, core.Scaling(0.9, 0.9, 0.9), core.Translation(0, 1, 0)))

	center := geometry.NewSphere()
	errs = append(errs, place(center, core.Scaling(0.4, 0.4, 0.4), core.Translation(0, 1, 0)))
	center.Material().Color = core.NewColor(0.1, 0.2, 0.5)

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("hollow glass scene: %w", err)
	}

	world.Add(shell, pocket, center)
	s := newScene("hollow-glass", world, cameraConfig, cameraOverrides)
	s.Render.MaxDepth = 8
	return s, nil
}
