package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// World is the set of shapes and the light being rendered. It must not be
// modified while a render is in progress.
type World struct {
	Shapes []geometry.Shape
	Light  lights.Light
}

// NewWorld creates an empty world with no light
func NewWorld() *World {
	return &World{Shapes: make([]geometry.Shape, 0)}
}

// Add appends shapes to the world
func (w *World) Add(shapes ...geometry.Shape) {
	w.Shapes = append(w.Shapes, shapes...)
}

// Contains reports whether the shape is part of the world
func (w *World) Contains(s geometry.Shape) bool {
	for _, shape := range w.Shapes {
		if shape.ID() == s.ID() {
			return true
		}
	}
	return false
}

// Intersect tests the ray against every shape and returns all intersections
// sorted by t
func (w *World) Intersect(ray core.Ray) geometry.Intersections {
	var xs []geometry.Intersection
	for _, shape := range w.Shapes {
		xs = append(xs, geometry.Intersect(shape, ray)...)
	}
	return geometry.NewIntersections(xs...)
}

// DefaultWorld returns the two concentric spheres and white light used as a
// reference world
func DefaultWorld() *World {
	w := NewWorld()
	w.Light = lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White)

	outer := geometry.NewSphere()
	m := material.DefaultMaterial()
	m.Color = core.NewColor(0.8, 1.0, 0.6)
	m.Diffuse = 0.7
	m.Specular = 0.2
	outer.SetMaterial(m)

	inner := geometry.NewSphere()
	mustPlace(inner, core.Scaling(0.5, 0.5, 0.5))

	w.Add(outer, inner)
	return w
}
