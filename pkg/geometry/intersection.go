package geometry

import (
	"fmt"
	"sort"
)

// Intersection pairs a ray parameter with the shape it hit
type Intersection struct {
	T      float64
	Object Shape
}

// NewIntersection creates a new intersection record
func NewIntersection(t float64, object Shape) Intersection {
	return Intersection{T: t, Object: object}
}

// Same reports whether two records describe the same crossing of the same shape
func (i Intersection) Same(other Intersection) bool {
	if i.Object == nil || other.Object == nil {
		return false
	}
	return i.T == other.T && i.Object.ID() == other.Object.ID()
}

func (i Intersection) String() string {
	if i.Object == nil {
		return fmt.Sprintf("intersection(t=%g)", i.T)
	}
	return fmt.Sprintf("intersection(t=%g, object=%s)", i.T, i.Object.ID())
}

// Intersections is a list of intersection records kept in ascending t order
type Intersections []Intersection

// NewIntersections collects records and sorts them by t. Equal t values keep
// their input order.
func NewIntersections(xs ...Intersection) Intersections {
	result := make(Intersections, len(xs))
	copy(result, xs)
	result.Sort()
	return result
}

// Sort orders the records by ascending t, keeping equal values in place
func (xs Intersections) Sort() {
	sort.SliceStable(xs, func(i, j int) bool {
		return xs[i].T < xs[j].T
	})
}

// Merge returns a new sorted list containing both sets of records
func (xs Intersections) Merge(other Intersections) Intersections {
	merged := make(Intersections, 0, len(xs)+len(other))
	merged = append(merged, xs...)
	merged = append(merged, other...)
	merged.Sort()
	return merged
}

// Hit returns the record with the smallest non-negative t. The list does not
// need to be sorted.
func (xs Intersections) Hit() (Intersection, bool) {
	var best Intersection
	found := false
	for _, x := range xs {
		if x.T < 0 {
			continue
		}
		if !found || x.T < best.T {
			best = x
			found = true
		}
	}
	return best, found
}
