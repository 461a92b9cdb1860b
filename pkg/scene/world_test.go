package scene

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

func TestNewWorld(t *testing.T) {
	w := NewWorld()
	if len(w.Shapes) != 0 {
		t.Errorf("new world has %d shapes", len(w.Shapes))
	}
	if w.Light != nil {
		t.Errorf("new world has a light")
	}
}

func TestDefaultWorld(t *testing.T) {
	w := DefaultWorld()

	if !w.Light.Position().ApproxEqual(core.NewPoint(-10, 10, -10)) {
		t.Errorf("light position = %v", w.Light.Position())
	}
	if !w.Light.Intensity().ApproxEqual(core.White) {
		t.Errorf("light intensity = %v", w.Light.Intensity())
	}
	if len(w.Shapes) != 2 {
		t.Fatalf("expected 2 shapes, got %d", len(w.Shapes))
	}

	outer := w.Shapes[0].Material()
	if !outer.Color.ApproxEqual(core.NewColor(0.8, 1.0, 0.6)) || outer.Diffuse != 0.7 || outer.Specular != 0.2 {
		t.Errorf("outer material = %+v", *outer)
	}
	if !w.Shapes[1].Transform().ApproxEqual(core.Scaling(0.5, 0.5, 0.5)) {
		t.Errorf("inner transform = %v", w.Shapes[1].Transform())
	}
}

func TestWorld_Intersect(t *testing.T) {
	w := DefaultWorld()
	ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))

	xs := w.Intersect(ray)
	expected := []float64{4, 4.5, 5.5, 6}
	if len(xs) != len(expected) {
		t.Fatalf("expected %d intersections, got %d", len(expected), len(xs))
	}
	for i, want := range expected {
		if !core.ApproxEqual(xs[i].T, want) {
			t.Errorf("xs[%d].T = %g, want %g", i, xs[i].T, want)
		}
	}
}

func TestWorld_Contains(t *testing.T) {
	w := DefaultWorld()
	if !w.Contains(w.Shapes[0]) {
		t.Errorf("world should contain its own shape")
	}
	if w.Contains(geometry.NewSphere()) {
		t.Errorf("world should not contain a fresh sphere with the same geometry")
	}
}

func TestMustPlace(t *testing.T) {
	s := geometry.NewSphere()
	mustPlace(s, core.Scaling(2, 2, 2), core.Translation(0, 1, 0))
	if !s.Transform().ApproxEqual(core.Chain(core.Scaling(2, 2, 2), core.Translation(0, 1, 0))) {
		t.Errorf("unexpected transform\n%v", s.Transform())
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic for a singular transform")
		}
	}()
	mustPlace(geometry.NewSphere(), core.Scaling(0, 1, 1))
}
