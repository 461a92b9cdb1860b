package scene

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownScene is returned when a built-in scene name is not registered
var ErrUnknownScene = errors.New("unknown scene")

// Builder constructs a built-in scene, optionally overriding its camera
type Builder func(cameraOverrides ...CameraConfig) (*Scene, error)

type builtin struct {
	displayName string
	description string
	build       Builder
}

var builtins = map[string]builtin{
	"default": {
		displayName: "Default Scene",
		description: "Three patterned spheres on a checkered floor",
		build:       NewDefaultScene,
	},
	"checkerboard": {
		displayName: "Checkerboard",
		description: "Mirrored sphere on a textured checkerboard",
		build:       NewCheckerboardScene,
	},
	"cornell": {
		displayName: "Cornell Room",
		description: "Colored walls with a mirror sphere, a glass sphere and a box",
		build:       NewCornellScene,
	},
	"quadrics": {
		displayName: "Cylinders and Cones",
		description: "Open and capped cylinders next to a cone and a glass frustum",
		build:       NewQuadricsScene,
	},
	"reflections": {
		displayName: "Hall of Mirrors",
		description: "Two facing mirrors that bounce until the depth budget runs out",
		build:       NewReflectionsScene,
	},
	"refraction": {
		displayName: "Nested Glass",
		description: "Overlapping glass spheres with increasing refractive index",
		build:       NewRefractionScene,
	},
	"hollow-glass": {
		displayName: "Hollow Glass",
		description: "Glass sphere with an air pocket around a solid core",
		build:       NewHollowGlassScene,
	},
	"sphere-grid": {
		displayName: "Sphere Grid",
		description: "10x10 grid of shiny spheres in varying hues",
		build:       NewSphereGridScene,
	},
	"textured": {
		displayName: "Textures and Patterns",
		description: "Procedural textures and patterns on spheres, a cube and planes",
		build:       NewTexturedScene,
	},
}

// BuiltinNames returns the registered scene names in sorted order
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewBuiltin builds the named built-in scene
func NewBuiltin(name string, cameraOverrides ...CameraConfig) (*Scene, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return b.build(cameraOverrides...)
}
