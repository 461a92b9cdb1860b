package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cylinder is a unit-radius cylinder around the object-space y axis, truncated
// to Minimum < y < Maximum. Capped closes both ends with discs.
type Cylinder struct {
	Base
	Minimum float64
	Maximum float64
	Capped  bool
}

// NewCylinder creates a new cylinder spanning (minimum, maximum) on y.
// Pass math.Inf to leave an end open to infinity.
func NewCylinder(minimum, maximum float64, capped bool) (*Cylinder, error) {
	if minimum >= maximum {
		return nil, fmt.Errorf("cylinder minimum must be below maximum, got min=%g max=%g", minimum, maximum)
	}
	return &Cylinder{Base: NewBase(), Minimum: minimum, Maximum: maximum, Capped: capped}, nil
}

// LocalIntersect returns the side crossings inside the height bounds followed by any cap hits
func (c *Cylinder) LocalIntersect(ray core.Ray) []float64 {
	var ts []float64

	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z
	// a ≈ 0 means the ray runs parallel to the axis and can only hit the caps
	if math.Abs(a) >= core.Epsilon {
		b := 2 * (ray.Origin.X*ray.Direction.X + ray.Origin.Z*ray.Direction.Z)
		cc := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - 1
		ts = c.sideHits(ray, solveQuadratic(a, b, cc))
	}

	if c.Capped {
		ts = append(ts, capHits(ray, c.Minimum, c.Maximum, func(float64) float64 { return 1 })...)
	}
	return ts
}

func (c *Cylinder) sideHits(ray core.Ray, roots []float64) []float64 {
	var ts []float64
	for _, t := range roots {
		y := ray.Origin.Y + t*ray.Direction.Y
		if c.Minimum < y && y < c.Maximum {
			ts = append(ts, t)
		}
	}
	return ts
}

// LocalNormalAt is radial on the side and ±y on the caps
func (c *Cylinder) LocalNormalAt(point core.Tuple) core.Tuple {
	dist := point.X*point.X + point.Z*point.Z
	if dist < 1 && point.Y >= c.Maximum-core.Epsilon {
		return core.NewVector(0, 1, 0)
	}
	if dist < 1 && point.Y <= c.Minimum+core.Epsilon {
		return core.NewVector(0, -1, 0)
	}
	return core.NewVector(point.X, 0, point.Z).Normalize()
}

// solveQuadratic returns the real roots of a·t² + b·t + c in ascending order.
// A discriminant within Epsilon of zero yields the single tangent root.
func solveQuadratic(a, b, c float64) []float64 {
	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}
	if core.ApproxEqual(discriminant, 0) {
		return []float64{-b / (2 * a)}
	}
	sqrtD := math.Sqrt(discriminant)
	t0 := (-b - sqrtD) / (2 * a)
	t1 := (-b + sqrtD) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return []float64{t0, t1}
}

// capHits intersects the planes y=minimum and y=maximum, keeping points within
// radius(y) of the axis
func capHits(ray core.Ray, minimum, maximum float64, radius func(y float64) float64) []float64 {
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}
	var ts []float64
	for _, y := range []float64{minimum, maximum} {
		if math.IsInf(y, 0) {
			continue
		}
		t := (y - ray.Origin.Y) / ray.Direction.Y
		x := ray.Origin.X + t*ray.Direction.X
		z := ray.Origin.Z + t*ray.Direction.Z
		r := radius(y)
		if x*x+z*z <= r*r+core.Epsilon {
			ts = append(ts, t)
		}
	}
	return ts
}
