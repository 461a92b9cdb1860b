package material

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Pattern provides spatially-varying colors for materials
type Pattern interface {
	// PatternAt returns the color at a point already in pattern space
	PatternAt(point core.Tuple) core.Color
	Transform() core.Matrix
	InverseTransform() core.Matrix
}

// Object is the part of a shape a pattern needs to map world points into object space
type Object interface {
	InverseTransform() core.Matrix
}

// ColorAt maps a world-space point through the object's inverse transform, then
// the pattern's inverse transform, and samples the pattern there
func ColorAt(pattern Pattern, object Object, worldPoint core.Tuple) core.Color {
	objectPoint := object.InverseTransform().MultiplyTuple(worldPoint)
	patternPoint := pattern.InverseTransform().MultiplyTuple(objectPoint)
	return pattern.PatternAt(patternPoint)
}

// transformable carries a pattern transform and its cached inverse
type transformable struct {
	transform core.Matrix
	inverse   core.Matrix
}

func identityTransform() transformable {
	return transformable{transform: core.Identity(), inverse: core.Identity()}
}

// Transform returns the pattern-to-object transform
func (t *transformable) Transform() core.Matrix {
	return t.transform
}

// InverseTransform returns the cached object-to-pattern transform
func (t *transformable) InverseTransform() core.Matrix {
	return t.inverse
}

// SetTransform replaces the pattern transform. A singular matrix is rejected
// and the previous transform is kept.
func (t *transformable) SetTransform(m core.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("pattern transform: %w", err)
	}
	t.transform = m
	t.inverse = inv
	return nil
}
