package interact

import (
	"github.com/paulmach/orb"

	"github.com/barnwright/plansketch/internal/core"
	"github.com/barnwright/plansketch/internal/geom"
)

// SnapTolerance is the maximum model-space distance, in feet, at which
// a free point is pulled onto an exterior edge or interior wall.
const SnapTolerance = 1.0

// SnapResult is the outcome of a snap query. When Snapped is false,
// Point is the original query point and Rotation is 0. Edge names the
// exterior edge hit, or "wall" for an interior wall, or "".
type SnapResult struct {
	Point    orb.Point
	Snapped  bool
	Rotation int
	Edge     string
}

// Snapper resolves free-form model points onto the nearest attachment
// point of the plan: the four exterior edges first, then interior
// walls. Openings inherit the facing rotation of whatever they attach
// to; rooms only ever attach to the exterior.
type Snapper struct {
	Plan *core.Plan
}

// SnapForOpening snaps p onto an exterior edge or interior wall within
// tolerance, with the inferred facing rotation.
func (s *Snapper) SnapForOpening(p orb.Point) SnapResult {
	if r, ok := s.snapExterior(p); ok {
		return r
	}
	if r, ok := s.snapWalls(p); ok {
		return r
	}
	return SnapResult{Point: p}
}

// SnapForRoom snaps p onto an exterior edge only. Interior walls are
// never room anchors.
func (s *Snapper) SnapForRoom(p orb.Point) SnapResult {
	if r, ok := s.snapExterior(p); ok {
		return r
	}
	return SnapResult{Point: p}
}

// SnapForWall snaps a wall endpoint being drawn or dragged, so interior
// walls chain onto the perimeter or each other. Same algorithm as
// SnapForOpening; callers ignore the rotation.
func (s *Snapper) SnapForWall(p orb.Point) SnapResult {
	return s.SnapForOpening(p)
}

// snapExterior tests the four exterior edges. An edge matches when the
// point's perpendicular distance is within tolerance and its projection
// falls within the edge's extent.
func (s *Snapper) snapExterior(p orb.Point) (SnapResult, bool) {
	for _, e := range s.Plan.Footprint.Edges() {
		proj := geom.ProjectPointOntoSegment(p, e.Start, e.End)
		if geom.SegmentLength(p, proj) <= SnapTolerance {
			return SnapResult{
				Point:    proj,
				Snapped:  true,
				Rotation: e.Rotation,
				Edge:     e.Name,
			}, true
		}
	}
	return SnapResult{}, false
}

// snapWalls tests every interior wall by point-to-segment distance and
// infers rotation from the wall's own orientation.
func (s *Snapper) snapWalls(p orb.Point) (SnapResult, bool) {
	for _, w := range s.Plan.Walls {
		if geom.DistancePointToSegment(p, w.Start, w.End) > SnapTolerance {
			continue
		}
		rot := 90
		if w.Horizontal() {
			rot = 0
		}
		return SnapResult{
			Point:    geom.ProjectPointOntoSegment(p, w.Start, w.End),
			Snapped:  true,
			Rotation: rot,
			Edge:     "wall",
		}, true
	}
	return SnapResult{}, false
}
