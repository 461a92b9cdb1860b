package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestCone_Intersect(t *testing.T) {
	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		expected  []float64
	}{
		{"grazes apex", core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1), []float64{5}},
		{"tangent along surface", core.NewPoint(0, 0, -5), core.NewVector(1, 1, 1), []float64{8.66025}},
		{"two nappes", core.NewPoint(1, 1, -5), core.NewVector(-0.5, -1, 1), []float64{4.55006, 49.44994}},
		{"parallel to one nappe", core.NewPoint(0, 0, -1), core.NewVector(0, 1, 1), []float64{0.35355}},
	}

	c, err := NewCone(math.Inf(-1), math.Inf(1), false)
	if err != nil {
		t.Fatal(err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := Intersect(c, core.NewRay(tt.origin, tt.direction.Normalize()))
			if len(xs) != len(tt.expected) {
				t.Fatalf("expected %d intersections, got %d: %v", len(tt.expected), len(xs), xs)
			}
			for i, want := range tt.expected {
				if math.Abs(xs[i].T-want) > 1e-4 {
					t.Errorf("xs[%d].T = %g, want %g", i, xs[i].T, want)
				}
			}
		})
	}
}

func TestCone_CappedIntersect(t *testing.T) {
	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		count     int
	}{
		{"misses beside", core.NewPoint(0, 0, -5), core.NewVector(0, 1, 0), 0},
		{"side and cap", core.NewPoint(0, 0, -0.25), core.NewVector(0, 1, 1), 2},
		{"both nappes and caps", core.NewPoint(0, 0, -0.25), core.NewVector(0, 1, 0), 4},
	}

	c, err := NewCone(-0.5, 0.5, true)
	if err != nil {
		t.Fatal(err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := Intersect(c, core.NewRay(tt.origin, tt.direction.Normalize()))
			if len(xs) != tt.count {
				t.Errorf("expected %d intersections, got %d", tt.count, len(xs))
			}
		})
	}
}

func TestCone_NormalAt(t *testing.T) {
	tests := []struct {
		point    core.Tuple
		expected core.Tuple
	}{
		{core.NewPoint(0, 0, 0), core.NewVector(0, 0, 0)},
		{core.NewPoint(1, 1, 1), core.NewVector(1, -math.Sqrt2, 1).Normalize()},
		{core.NewPoint(-1, -1, 0), core.NewVector(-1, 1, 0).Normalize()},
	}

	c, err := NewCone(math.Inf(-1), math.Inf(1), false)
	if err != nil {
		t.Fatal(err)
	}
	for _, tt := range tests {
		if n := c.LocalNormalAt(tt.point); !n.ApproxEqual(tt.expected) {
			t.Errorf("LocalNormalAt(%v) = %v, want %v", tt.point, n, tt.expected)
		}
	}
}

func TestCone_CapNormal(t *testing.T) {
	c, err := NewCone(-1, 2, true)
	if err != nil {
		t.Fatal(err)
	}
	if n := c.LocalNormalAt(core.NewPoint(0.5, 2, 0)); !n.ApproxEqual(core.NewVector(0, 1, 0)) {
		t.Errorf("top cap normal = %v", n)
	}
	if n := c.LocalNormalAt(core.NewPoint(0, -1, 0.5)); !n.ApproxEqual(core.NewVector(0, -1, 0)) {
		t.Errorf("bottom cap normal = %v", n)
	}
}
