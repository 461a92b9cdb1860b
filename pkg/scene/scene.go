package scene

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name   string
	World  *World
	Camera CameraConfig
	Render RenderConfig
}

// CameraConfig describes the image size and the view
type CameraConfig struct {
	Width       int        // Image width in pixels
	Height      int        // Image height in pixels
	FieldOfView float64    // Field of view in degrees
	From        core.Tuple // Eye position
	To          core.Tuple // Point the camera looks at
	Up          core.Tuple // Approximate up direction
}

// RenderConfig contains rendering configuration
type RenderConfig struct {
	MaxDepth         int     // Remaining-bounce budget for reflection and refraction
	SoftShadows      bool    // Sample the 8 corners around the light instead of its center
	SoftShadowRadius float64 // Half-size of the sampling cube around the light
	Workers          int     // Parallel tile workers, 0 = number of CPUs
	TileSize         int     // Tile edge in pixels for parallel rendering
}

// DefaultCameraConfig returns a small 4:3 view of the origin from -z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Width:       400,
		Height:      300,
		FieldOfView: 60,
		From:        core.NewPoint(0, 1.5, -5),
		To:          core.NewPoint(0, 1, 0),
		Up:          core.NewVector(0, 1, 0),
	}
}

// DefaultRenderConfig returns the settings used when a scene does not override them
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		MaxDepth:         5,
		SoftShadows:      false,
		SoftShadowRadius: 0.25,
		Workers:          0,
		TileSize:         32,
	}
}

// MergeCameraConfig applies the non-zero fields of override on top of base
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.FieldOfView != 0 {
		result.FieldOfView = override.FieldOfView
	}
	if override.From != (core.Tuple{}) {
		result.From = override.From
	}
	if override.To != (core.Tuple{}) {
		result.To = override.To
	}
	if override.Up != (core.Tuple{}) {
		result.Up = override.Up
	}
	return result
}

// MergeRenderConfig applies the non-zero fields of override on top of base.
// SoftShadows is only ever switched on by an override.
func MergeRenderConfig(base, override RenderConfig) RenderConfig {
	result := base
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.SoftShadows {
		result.SoftShadows = true
	}
	if override.SoftShadowRadius != 0 {
		result.SoftShadowRadius = override.SoftShadowRadius
	}
	if override.Workers != 0 {
		result.Workers = override.Workers
	}
	if override.TileSize != 0 {
		result.TileSize = override.TileSize
	}
	return result
}

// newScene wires a world into a scene with default settings and applied camera overrides
func newScene(name string, world *World, camera CameraConfig, cameraOverrides []CameraConfig) *Scene {
	if len(cameraOverrides) > 0 {
		camera = MergeCameraConfig(camera, cameraOverrides[0])
	}
	return &Scene{
		Name:   name,
		World:  world,
		Camera: camera,
		Render: DefaultRenderConfig(),
	}
}

// ShapeCount returns the number of shapes in the scene
func (s *Scene) ShapeCount() int {
	if s.World == nil {
		return 0
	}
	return len(s.World.Shapes)
}

// placeable is anything with a fallible transform setter
type placeable interface {
	SetTransform(core.Matrix) error
}

// place sets the transform of a shape or pattern to the given transforms
// applied in order
func place(p placeable, transforms ...core.Matrix) error {
	return p.SetTransform(core.Chain(transforms...))
}

// mustPlace is place for fixed transforms that are known to be invertible.
// It panics if the transform is singular.
func mustPlace(p placeable, transforms ...core.Matrix) {
	if err := place(p, transforms...); err != nil {
		panic(fmt.Sprintf("scene: %v", err))
	}
}
