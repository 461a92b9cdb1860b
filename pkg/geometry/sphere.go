package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere is a unit sphere centered on its object-space origin
type Sphere struct {
	Base
}

// NewSphere creates a new unit sphere with the default material
func NewSphere() *Sphere {
	return &Sphere{Base: NewBase()}
}

// NewGlassSphere creates a unit sphere with a glass material
func NewGlassSphere() *Sphere {
	s := NewSphere()
	s.SetMaterial(material.Glass())
	return s
}

// LocalIntersect solves the ray/sphere quadratic in object space
func (s *Sphere) LocalIntersect(ray core.Ray) []float64 {
	// Vector from sphere center to ray origin
	sphereToRay := ray.Origin.Subtract(core.Origin)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	// Tangent ray
	if core.ApproxEqual(discriminant, 0) {
		return []float64{-b / (2 * a)}
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	return []float64{t1, t2}
}

// LocalNormalAt points from the center through the surface point
func (s *Sphere) LocalNormalAt(point core.Tuple) core.Tuple {
	return point.Subtract(core.Origin).Normalize()
}
