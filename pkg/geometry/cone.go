package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cone is the double-napped cone x² + z² = y² with its apex at the object-space
// origin, truncated to Minimum < y < Maximum. Capped closes both ends with
// discs of radius |y|. A frustum is a cone with both bounds on the same side
// of the apex.
type Cone struct {
	Base
	Minimum float64
	Maximum float64
	Capped  bool
}

// NewCone creates a new cone spanning (minimum, maximum) on y
func NewCone(minimum, maximum float64, capped bool) (*Cone, error) {
	if minimum >= maximum {
		return nil, fmt.Errorf("cone minimum must be below maximum, got min=%g max=%g", minimum, maximum)
	}
	return &Cone{Base: NewBase(), Minimum: minimum, Maximum: maximum, Capped: capped}, nil
}

// LocalIntersect returns the side crossings inside the height bounds followed by any cap hits
func (c *Cone) LocalIntersect(ray core.Ray) []float64 {
	o, d := ray.Origin, ray.Direction
	a := d.X*d.X - d.Y*d.Y + d.Z*d.Z
	b := 2 * (o.X*d.X - o.Y*d.Y + o.Z*d.Z)
	cc := o.X*o.X - o.Y*o.Y + o.Z*o.Z

	var roots []float64
	if math.Abs(a) < core.Epsilon {
		// Parallel to one nappe: at most a single crossing of the other
		if math.Abs(b) >= core.Epsilon {
			roots = []float64{-cc / (2 * b)}
		}
	} else {
		roots = solveQuadratic(a, b, cc)
	}

	var ts []float64
	for _, t := range roots {
		y := o.Y + t*d.Y
		if c.Minimum < y && y < c.Maximum {
			ts = append(ts, t)
		}
	}

	if c.Capped {
		ts = append(ts, capHits(ray, c.Minimum, c.Maximum, math.Abs)...)
	}
	return ts
}

// LocalNormalAt slopes away from the axis on the side and is ±y on the caps.
// The apex has no defined normal and yields the zero vector.
func (c *Cone) LocalNormalAt(point core.Tuple) core.Tuple {
	dist := point.X*point.X + point.Z*point.Z
	if dist < point.Y*point.Y && point.Y >= c.Maximum-core.Epsilon {
		return core.NewVector(0, 1, 0)
	}
	if dist < point.Y*point.Y && point.Y <= c.Minimum+core.Epsilon {
		return core.NewVector(0, -1, 0)
	}

	y := math.Sqrt(dist)
	if point.Y > 0 {
		y = -y
	}
	return core.NewVector(point.X, y, point.Z).Normalize()
}
