package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// SolidPattern is a uniform color
type SolidPattern struct {
	transformable
	Color core.Color
}

// NewSolidPattern creates a new solid color pattern
func NewSolidPattern(color core.Color) *SolidPattern {
	return &SolidPattern{transformable: identityTransform(), Color: color}
}

// PatternAt returns the solid color regardless of position
func (p *SolidPattern) PatternAt(point core.Tuple) core.Color {
	return p.Color
}

// StripePattern alternates A and B along x in unit-wide bands
type StripePattern struct {
	transformable
	A, B core.Color
}

// NewStripePattern creates a new stripe pattern
func NewStripePattern(a, b core.Color) *StripePattern {
	return &StripePattern{transformable: identityTransform(), A: a, B: b}
}

func (p *StripePattern) PatternAt(point core.Tuple) core.Color {
	if int(math.Floor(point.X))%2 == 0 {
		return p.A
	}
	return p.B
}

// GradientPattern blends linearly from A to B across each unit of x
type GradientPattern struct {
	transformable
	A, B core.Color
}

// NewGradientPattern creates a new gradient pattern
func NewGradientPattern(a, b core.Color) *GradientPattern {
	return &GradientPattern{transformable: identityTransform(), A: a, B: b}
}

func (p *GradientPattern) PatternAt(point core.Tuple) core.Color {
	fraction := point.X - math.Floor(point.X)
	return p.A.Add(p.B.Subtract(p.A).Multiply(fraction))
}

// RingPattern alternates A and B in concentric rings around the y axis
type RingPattern struct {
	transformable
	A, B core.Color
}

// NewRingPattern creates a new ring pattern
func NewRingPattern(a, b core.Color) *RingPattern {
	return &RingPattern{transformable: identityTransform(), A: a, B: b}
}

func (p *RingPattern) PatternAt(point core.Tuple) core.Color {
	distance := math.Sqrt(point.X*point.X + point.Z*point.Z)
	if int(math.Floor(distance))%2 == 0 {
		return p.A
	}
	return p.B
}

// CheckerPattern alternates A and B in unit cubes
type CheckerPattern struct {
	transformable
	A, B core.Color
}

// NewCheckerPattern creates a new 3D checker pattern
func NewCheckerPattern(a, b core.Color) *CheckerPattern {
	return &CheckerPattern{transformable: identityTransform(), A: a, B: b}
}

func (p *CheckerPattern) PatternAt(point core.Tuple) core.Color {
	// small bias keeps points lying exactly on a cell face (e.g. a y=0 plane) stable
	sum := math.Floor(point.X+1e-9) + math.Floor(point.Y+1e-9) + math.Floor(point.Z+1e-9)
	if int(sum)%2 == 0 {
		return p.A
	}
	return p.B
}
