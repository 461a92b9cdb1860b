package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// WhittedIntegrator implements recursive Whitted ray tracing: Phong direct
// lighting with shadow rays plus mirror reflection and refraction
type WhittedIntegrator struct {
	config scene.RenderConfig
}

// NewWhittedIntegrator creates a new Whitted integrator
func NewWhittedIntegrator(config scene.RenderConfig) *WhittedIntegrator {
	return &WhittedIntegrator{config: config}
}

// RayColor implements Integrator
func (wi *WhittedIntegrator) RayColor(ray core.Ray, world *scene.World, remaining int) core.Color {
	return wi.ColorAt(world, ray, remaining)
}

// ColorAt returns black when the ray misses everything, otherwise the shaded
// color of the nearest visible hit
func (wi *WhittedIntegrator) ColorAt(world *scene.World, ray core.Ray, remaining int) core.Color {
	comps, ok := PrepareHit(world, ray)
	if !ok {
		return core.Black
	}
	return wi.ShadeHit(world, comps, remaining)
}

// PrepareHit intersects the ray with the world and precomputes the shading
// geometry of the nearest visible hit
func PrepareHit(world *scene.World, ray core.Ray) (geometry.Computations, bool) {
	xs := world.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return geometry.Computations{}, false
	}
	return geometry.Prepare(hit, ray, xs), true
}

// ShadeHit combines direct lighting with the reflected and refracted
// contributions. Surfaces that both reflect and transmit are blended with
// the Schlick approximation.
func (wi *WhittedIntegrator) ShadeHit(world *scene.World, comps geometry.Computations, remaining int) core.Color {
	mat := comps.Object.Material()

	surface := core.Black
	if world.Light != nil {
		intensity := wi.LightIntensity(world, comps.OverPoint)
		surface = lights.Lighting(mat, comps.Object, world.Light, comps.Point, comps.EyeV, comps.NormalV, intensity)
	}

	reflected := wi.ReflectedColor(world, comps, remaining)
	refracted := wi.RefractedColor(world, comps, remaining)

	if mat.Reflective > 0 && mat.Transparency > 0 {
		reflectance := comps.Schlick()
		return surface.
			Add(reflected.Multiply(reflectance)).
			Add(refracted.Multiply(1 - reflectance))
	}

	return surface.Add(reflected).Add(refracted)
}

// ReflectedColor traces the mirror ray from the over point
func (wi *WhittedIntegrator) ReflectedColor(world *scene.World, comps geometry.Computations, remaining int) core.Color {
	reflective := comps.Object.Material().Reflective
	if remaining <= 0 || core.ApproxEqual(reflective, 0) {
		return core.Black
	}

	reflectRay := core.NewRay(comps.OverPoint, comps.ReflectV)
	color := wi.ColorAt(world, reflectRay, remaining-1)
	return color.Multiply(reflective)
}

// RefractedColor traces the transmitted ray from the under point using
// Snell's law. Total internal reflection contributes black.
func (wi *WhittedIntegrator) RefractedColor(world *scene.World, comps geometry.Computations, remaining int) core.Color {
	transparency := comps.Object.Material().Transparency
	if remaining <= 0 || transparency <= 0 {
		return core.Black
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.EyeV.Dot(comps.NormalV)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		return core.Black
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := comps.NormalV.Multiply(nRatio*cosI - cosT).Subtract(comps.EyeV.Multiply(nRatio))
	refractRay := core.NewRay(comps.UnderPoint, direction)

	color := wi.ColorAt(world, refractRay, remaining-1)
	return color.Multiply(transparency)
}

// IsShadowed reports whether any surface lies between point and lightPosition
func IsShadowed(world *scene.World, lightPosition, point core.Tuple) bool {
	v := lightPosition.Subtract(point)
	distance := v.Magnitude()
	ray := core.NewRay(point, v.Normalize())

	hit, ok := world.Intersect(ray).Hit()
	return ok && hit.T < distance
}

// LightIntensity returns the unoccluded fraction of the world's light as
// seen from point: 0 or 1 with hard shadows, a multiple of 1/8 with soft
// shadows
func (wi *WhittedIntegrator) LightIntensity(world *scene.World, point core.Tuple) float64 {
	if world.Light == nil {
		return 0
	}

	radius := 0.0
	if wi.config.SoftShadows {
		radius = wi.config.SoftShadowRadius
	}
	samples := world.Light.SamplePositions(radius)

	visible := 0
	for _, p := range samples {
		if !IsShadowed(world, p, point) {
			visible++
		}
	}
	return float64(visible) / float64(len(samples))
}
