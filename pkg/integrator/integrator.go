package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the color seen along a ray. remaining is the number of
	// secondary bounces still allowed.
	RayColor(ray core.Ray, world *scene.World, remaining int) core.Color
}
