package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/google/uuid"
)

// BumpEpsilon is how far over/under points are pushed off the surface
const BumpEpsilon = 0.01

// Computations holds the shading geometry precomputed for one hit
type Computations struct {
	T          float64
	Object     Shape
	Point      core.Tuple // Exact surface point
	OverPoint  core.Tuple // Point pushed along the normal, origin for shadow and reflection rays
	UnderPoint core.Tuple // Point pushed against the normal, origin for refraction rays
	EyeV       core.Tuple
	NormalV    core.Tuple // Faces the eye
	ReflectV   core.Tuple
	Inside     bool
	N1         float64 // Refractive index of the medium being left
	N2         float64 // Refractive index of the medium being entered
}

// Prepare computes the shading geometry for hit. xs must be the full sorted
// intersection list the hit was chosen from so the refractive indices on each
// side of the surface can be resolved.
func Prepare(hit Intersection, ray core.Ray, xs Intersections) Computations {
	comps := Computations{
		T:      hit.T,
		Object: hit.Object,
	}

	comps.Point = ray.Position(hit.T)
	comps.EyeV = ray.Direction.Negate()
	comps.NormalV = NormalAt(hit.Object, comps.Point)

	if comps.NormalV.Dot(comps.EyeV) < 0 {
		comps.Inside = true
		comps.NormalV = comps.NormalV.Negate()
	}

	bump := comps.NormalV.Multiply(BumpEpsilon)
	comps.OverPoint = comps.Point.Add(bump)
	comps.UnderPoint = comps.Point.Subtract(bump)
	comps.ReflectV = ray.Direction.Reflect(comps.NormalV)

	comps.N1, comps.N2 = RefractiveIndices(hit, xs)
	return comps
}

// RefractiveIndices walks xs in order keeping a stack of the shapes the ray is
// currently inside, and returns the indices on the near (n1) and far (n2)
// side of hit. Shapes are matched by identity. If hit is not in xs both
// indices are those of vacuum.
func RefractiveIndices(hit Intersection, xs Intersections) (n1, n2 float64) {
	n1, n2 = material.RefractiveIndexVacuum, material.RefractiveIndexVacuum
	containers := make([]Shape, 0, len(xs))

	for _, x := range xs {
		isHit := x.Same(hit)
		if isHit {
			n1 = topIndex(containers)
		}

		if idx := indexOf(containers, x.Object.ID()); idx >= 0 {
			containers = append(containers[:idx], containers[idx+1:]...)
		} else {
			containers = append(containers, x.Object)
		}

		if isHit {
			n2 = topIndex(containers)
			break
		}
	}
	return n1, n2
}

func topIndex(containers []Shape) float64 {
	if len(containers) == 0 {
		return material.RefractiveIndexVacuum
	}
	return containers[len(containers)-1].Material().RefractiveIndex
}

func indexOf(containers []Shape, id uuid.UUID) int {
	for i, s := range containers {
		if s.ID() == id {
			return i
		}
	}
	return -1
}

// Schlick approximates the Fresnel reflectance at the hit. Total internal
// reflection yields 1.
func (c Computations) Schlick() float64 {
	cos := c.EyeV.Dot(c.NormalV)

	if c.N1 > c.N2 {
		ratio := c.N1 / c.N2
		sin2T := ratio * ratio * (1 - cos*cos)
		if sin2T > 1 {
			return 1
		}
		cos = math.Sqrt(1 - sin2T)
	}

	r0 := (c.N1 - c.N2) / (c.N1 + c.N2)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
