// Package geom provides the planar math used by the floor-plan editor:
// point-to-segment distances, clamped projections, and rotation
// normalization. All functions are pure and operate on orb.Point values
// in model feet.
package geom

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Pt builds an orb.Point from x/y coordinates.
func Pt(x, y float64) orb.Point {
	return orb.Point{x, y}
}

// SegmentLength returns the Euclidean length of segment a-b.
func SegmentLength(a, b orb.Point) float64 {
	return planar.Distance(a, b)
}

// ProjectPointOntoSegment returns the closest point to p on the segment
// a-b (not the infinite line). A degenerate segment collapses to a.
func ProjectPointOntoSegment(p, a, b orb.Point) orb.Point {
	dx := b[0] - a[0]
	dy := b[1] - a[1]

	if dx == 0 && dy == 0 {
		return a
	}

	t := ((p[0]-a[0])*dx + (p[1]-a[1])*dy) / (dx*dx + dy*dy)
	if t < 0 {
		return a
	}
	if t > 1 {
		return b
	}

	return orb.Point{a[0] + t*dx, a[1] + t*dy}
}

// DistancePointToSegment returns the distance from p to the closest
// point on segment a-b.
func DistancePointToSegment(p, a, b orb.Point) float64 {
	return planar.Distance(p, ProjectPointOntoSegment(p, a, b))
}

// NormalizeRotation maps any rotation in degrees onto [0, 360).
func NormalizeRotation(deg int) int {
	r := deg % 360
	if r < 0 {
		r += 360
	}
	return r
}
