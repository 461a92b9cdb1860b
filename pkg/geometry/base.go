package geometry

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/google/uuid"
)

// Base holds the state shared by every shape: a stable identity, the
// object-to-world transform with its cached inverses, and the material
type Base struct {
	id              uuid.UUID
	transform       core.Matrix
	inverse         core.Matrix
	normalTransform core.Matrix // transpose of inverse
	material        material.Material
}

// NewBase creates a shape base with a fresh identity, identity transform and default material
func NewBase() Base {
	return Base{
		id:              uuid.New(),
		transform:       core.Identity(),
		inverse:         core.Identity(),
		normalTransform: core.Identity(),
		material:        material.DefaultMaterial(),
	}
}

// ID returns the shape's identity, used to recognise re-entry into the same object
func (b *Base) ID() uuid.UUID {
	return b.id
}

// Transform returns the object-to-world transform
func (b *Base) Transform() core.Matrix {
	return b.transform
}

// InverseTransform returns the world-to-object transform
func (b *Base) InverseTransform() core.Matrix {
	return b.inverse
}

// NormalTransform returns the transpose of the inverse transform
func (b *Base) NormalTransform() core.Matrix {
	return b.normalTransform
}

// SetTransform replaces the object-to-world transform. A singular matrix is
// rejected with core.ErrSingularMatrix and the shape is left unchanged.
func (b *Base) SetTransform(m core.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("shape %s: %w", b.id, err)
	}
	b.transform = m
	b.inverse = inv
	b.normalTransform = inv.Transpose()
	return nil
}

// Material returns a pointer to the shape's material so callers can tweak it in place
func (b *Base) Material() *material.Material {
	return &b.material
}

// SetMaterial replaces the shape's material
func (b *Base) SetMaterial(m material.Material) {
	b.material = m
}

// Intersect transforms a world-space ray into the shape's object space and
// returns its intersections sorted by t
func Intersect(s Shape, ray core.Ray) Intersections {
	local := ray.Transform(s.InverseTransform())
	ts := s.LocalIntersect(local)
	xs := make([]Intersection, len(ts))
	for i, t := range ts {
		xs[i] = Intersection{T: t, Object: s}
	}
	return NewIntersections(xs...)
}

// NormalAt returns the normalized world-space surface normal at a world-space point
func NormalAt(s Shape, worldPoint core.Tuple) core.Tuple {
	localPoint := s.InverseTransform().MultiplyTuple(worldPoint)
	localNormal := s.LocalNormalAt(localPoint)
	worldNormal := s.NormalTransform().MultiplyTuple(localNormal)
	worldNormal.W = 0
	return worldNormal.Normalize()
}
