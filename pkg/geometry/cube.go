package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cube is an axis-aligned box spanning [-1,1] on each axis in object space.
// Scale, rotate and translate it through its transform.
type Cube struct {
	Base
}

// NewCube creates a new cube with the default material
func NewCube() *Cube {
	return &Cube{Base: NewBase()}
}

// LocalIntersect intersects the ray with the three slabs and keeps the overlap
func (c *Cube) LocalIntersect(ray core.Ray) []float64 {
	xMin, xMax := checkAxis(ray.Origin.X, ray.Direction.X)
	yMin, yMax := checkAxis(ray.Origin.Y, ray.Direction.Y)
	zMin, zMax := checkAxis(ray.Origin.Z, ray.Direction.Z)

	tMin := math.Max(xMin, math.Max(yMin, zMin))
	tMax := math.Min(xMax, math.Min(yMax, zMax))
	if tMin > tMax {
		return nil
	}
	return []float64{tMin, tMax}
}

// checkAxis returns where the ray enters and leaves the slab [-1,1] on one axis
func checkAxis(origin, direction float64) (float64, float64) {
	tMinNumerator := -1 - origin
	tMaxNumerator := 1 - origin

	var tMin, tMax float64
	if math.Abs(direction) >= core.Epsilon {
		tMin = tMinNumerator / direction
		tMax = tMaxNumerator / direction
	} else {
		tMin = tMinNumerator * math.Inf(1)
		tMax = tMaxNumerator * math.Inf(1)
	}

	if tMin > tMax {
		tMin, tMax = tMax, tMin
	}
	return tMin, tMax
}

// LocalNormalAt picks the face whose axis has the largest absolute coordinate
func (c *Cube) LocalNormalAt(point core.Tuple) core.Tuple {
	absX, absY, absZ := math.Abs(point.X), math.Abs(point.Y), math.Abs(point.Z)
	maxC := math.Max(absX, math.Max(absY, absZ))

	switch maxC {
	case absX:
		return core.NewVector(point.X, 0, 0).Normalize()
	case absY:
		return core.NewVector(0, point.Y, 0).Normalize()
	default:
		return core.NewVector(0, 0, point.Z).Normalize()
	}
}
