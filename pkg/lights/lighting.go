package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Lighting evaluates the Phong model at a surface point. lightIntensity is the
// unoccluded fraction of the light in [0,1]; 0 leaves only the ambient term.
// Channels are not clamped.
func Lighting(mat *material.Material, object material.Object, light Light, point, eye, normal core.Tuple, lightIntensity float64) core.Color {
	surfaceColor := mat.SurfaceColor(object, point)
	effectiveColor := surfaceColor.MultiplyColor(light.Intensity())
	ambient := effectiveColor.Multiply(mat.Ambient)

	if lightIntensity <= 0 {
		return ambient
	}

	lightV := light.Position().Subtract(point).Normalize()
	lightDotNormal := lightV.Dot(normal)
	if lightDotNormal < 0 {
		// Light is on the other side of the surface
		return ambient
	}

	diffuse := effectiveColor.Multiply(mat.Diffuse * lightDotNormal)

	specular := core.Black
	reflectV := lightV.Negate().Reflect(normal)
	reflectDotEye := reflectV.Dot(eye)
	if reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, mat.Shininess)
		specular = light.Intensity().Multiply(mat.Specular * factor)
	}

	return ambient.Add(diffuse.Add(specular).Multiply(lightIntensity))
}
