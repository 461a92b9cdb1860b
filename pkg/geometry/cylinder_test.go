package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func mustCylinder(t *testing.T, minimum, maximum float64, capped bool) *Cylinder {
	t.Helper()
	c, err := NewCylinder(minimum, maximum, capped)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestCylinder_InfiniteIntersect(t *testing.T) {
	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		expected  []float64
	}{
		{"miss outside parallel", core.NewPoint(1, 0, 0), core.NewVector(0, 1, 0), nil},
		{"miss inside parallel", core.NewPoint(0, 0, 0), core.NewVector(0, 1, 0), nil},
		{"miss skew", core.NewPoint(0, 0, -5), core.NewVector(1, 1, 1), nil},
		{"tangent", core.NewPoint(1, 0, -5), core.NewVector(0, 0, 1), []float64{5}},
		{"through axis", core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1), []float64{4, 6}},
	}

	c := mustCylinder(t, math.Inf(-1), math.Inf(1), false)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := Intersect(c, core.NewRay(tt.origin, tt.direction.Normalize()))
			assertTs(t, xs, tt.expected)
		})
	}
}

func TestCylinder_SkewHit(t *testing.T) {
	c := mustCylinder(t, math.Inf(-1), math.Inf(1), false)
	ray := core.NewRay(core.NewPoint(0.5, 0, -5), core.NewVector(0.1, 1, 1).Normalize())
	xs := Intersect(c, ray)
	if len(xs) != 2 {
		t.Fatalf("expected 2 intersections, got %d", len(xs))
	}
	want := []float64{6.80798, 7.08872}
	for i := range want {
		if math.Abs(xs[i].T-want[i]) > 1e-3 {
			t.Errorf("xs[%d].T = %g, want %g", i, xs[i].T, want[i])
		}
	}
}

func TestCylinder_TruncatedIntersect(t *testing.T) {
	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		count     int
	}{
		{"escapes through open end", core.NewPoint(0, 1.5, 0), core.NewVector(0.1, 1, 0), 0},
		{"above", core.NewPoint(0, 3, -5), core.NewVector(0, 0, 1), 0},
		{"below", core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1), 0},
		{"at maximum", core.NewPoint(0, 2, -5), core.NewVector(0, 0, 1), 0},
		{"at minimum", core.NewPoint(0, 1, -5), core.NewVector(0, 0, 1), 0},
		{"middle", core.NewPoint(0, 1.5, -2), core.NewVector(0, 0, 1), 2},
	}

	c := mustCylinder(t, 1, 2, false)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := Intersect(c, core.NewRay(tt.origin, tt.direction.Normalize()))
			if len(xs) != tt.count {
				t.Errorf("expected %d intersections, got %d", tt.count, len(xs))
			}
		})
	}
}

func TestCylinder_CappedIntersect(t *testing.T) {
	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		count     int
	}{
		{"down the axis", core.NewPoint(0, 3, 0), core.NewVector(0, -1, 0), 2},
		{"top cap and side", core.NewPoint(0, 3, -2), core.NewVector(0, -1, 2), 2},
		{"bottom cap and side", core.NewPoint(0, 0, -2), core.NewVector(0, 1, 2), 2},
		{"parallel outside", core.NewPoint(2, 3, 0), core.NewVector(0, -1, 0), 0},
	}

	c := mustCylinder(t, 1, 2, true)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := Intersect(c, core.NewRay(tt.origin, tt.direction.Normalize()))
			if len(xs) != tt.count {
				t.Errorf("expected %d intersections, got %d", tt.count, len(xs))
			}
		})
	}
}

func TestCylinder_NormalAt(t *testing.T) {
	tests := []struct {
		name     string
		capped   bool
		point    core.Tuple
		expected core.Tuple
	}{
		{"side +x", false, core.NewPoint(1, 1.5, 0), core.NewVector(1, 0, 0)},
		{"side -z", false, core.NewPoint(0, 1.8, -1), core.NewVector(0, 0, -1)},
		{"side +z", false, core.NewPoint(0, 1.2, 1), core.NewVector(0, 0, 1)},
		{"side -x", false, core.NewPoint(-1, 1, 0), core.NewVector(-1, 0, 0)},
		{"bottom center", true, core.NewPoint(0, 1, 0), core.NewVector(0, -1, 0)},
		{"bottom off x", true, core.NewPoint(0.5, 1, 0), core.NewVector(0, -1, 0)},
		{"bottom off z", true, core.NewPoint(0, 1, 0.5), core.NewVector(0, -1, 0)},
		{"top center", true, core.NewPoint(0, 2, 0), core.NewVector(0, 1, 0)},
		{"top off x", true, core.NewPoint(0.5, 2, 0), core.NewVector(0, 1, 0)},
		{"top off z", true, core.NewPoint(0, 2, 0.5), core.NewVector(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustCylinder(t, 1, 2, tt.capped)
			if n := c.LocalNormalAt(tt.point); !n.ApproxEqual(tt.expected) {
				t.Errorf("LocalNormalAt(%v) = %v, want %v", tt.point, n, tt.expected)
			}
		})
	}
}

func TestNewCylinder_InvalidBounds(t *testing.T) {
	if _, err := NewCylinder(2, 1, false); err == nil {
		t.Error("expected error for minimum above maximum")
	}
	if _, err := NewCylinder(1, 1, true); err == nil {
		t.Error("expected error for zero height")
	}
}
