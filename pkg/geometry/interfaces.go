package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/google/uuid"
)

// Shape interface for primitives that can be hit by rays.
// LocalIntersect and LocalNormalAt work in object space; use Intersect and
// NormalAt to go through the shape's transform.
type Shape interface {
	ID() uuid.UUID
	Transform() core.Matrix
	InverseTransform() core.Matrix
	NormalTransform() core.Matrix
	Material() *material.Material
	LocalIntersect(ray core.Ray) []float64
	LocalNormalAt(point core.Tuple) core.Tuple
}
