package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Plane is the infinite xz plane through the object-space origin
type Plane struct {
	Base
}

// NewPlane creates a new plane with the default material
func NewPlane() *Plane {
	return &Plane{Base: NewBase()}
}

// LocalIntersect returns the single crossing of y=0, or nothing for parallel rays
func (p *Plane) LocalIntersect(ray core.Ray) []float64 {
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}
	return []float64{-ray.Origin.Y / ray.Direction.Y}
}

// LocalNormalAt is +y everywhere
func (p *Plane) LocalNormalAt(point core.Tuple) core.Tuple {
	return core.NewVector(0, 1, 0)
}
