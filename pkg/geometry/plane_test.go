package geometry

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestPlane_NormalIsConstant(t *testing.T) {
	p := NewPlane()
	for _, point := range []core.Tuple{core.NewPoint(0, 0, 0), core.NewPoint(10, 0, -10), core.NewPoint(-5, 0, 150)} {
		if n := p.LocalNormalAt(point); !n.ApproxEqual(core.NewVector(0, 1, 0)) {
			t.Errorf("LocalNormalAt(%v) = %v, want (0,1,0)", point, n)
		}
	}
}

func TestPlane_Intersect(t *testing.T) {
	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		expected  []float64
	}{
		{"parallel", core.NewPoint(0, 10, 0), core.NewVector(0, 0, 1), nil},
		{"coplanar", core.NewPoint(0, 0, 0), core.NewVector(0, 0, 1), nil},
		{"from above", core.NewPoint(0, 1, 0), core.NewVector(0, -1, 0), []float64{1}},
		{"from below", core.NewPoint(0, -1, 0), core.NewVector(0, 1, 0), []float64{1}},
		{"behind origin", core.NewPoint(0, 1, 0), core.NewVector(0, 1, 0), []float64{-1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlane()
			xs := Intersect(p, core.NewRay(tt.origin, tt.direction))
			assertTs(t, xs, tt.expected)
		})
	}
}

func TestPlane_TransformedNormal(t *testing.T) {
	p := NewPlane()
	if err := p.SetTransform(core.RotationZ(-1.5707963267948966)); err != nil {
		t.Fatal(err)
	}
	// Rotating the xz plane a quarter turn about z turns its normal to +x
	n := NormalAt(p, core.NewPoint(0, 3, 4))
	if !n.ApproxEqual(core.NewVector(1, 0, 0)) {
		t.Errorf("NormalAt = %v, want (1,0,0)", n)
	}
}
