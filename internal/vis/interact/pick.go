package interact

import (
	"github.com/paulmach/orb"

	"github.com/barnwright/plansketch/internal/core"
	"github.com/barnwright/plansketch/internal/geom"
)

// Hit-test tolerances in model feet.
const (
	openingHitRadius = 2.0
	wallHitTolerance = 0.5
	handleHitRadius  = 0.8
)

// HitKind is the entity category a hit test resolved to.
type HitKind int

const (
	HitNone HitKind = iota
	HitHandle
	HitRoom
	HitOpening
	HitWall
)

// WallEnd identifies which endpoint handle of a wall was hit.
type WallEnd int

const (
	EndStart WallEnd = iota
	EndEnd
)

// Hit is the topmost entity under a model point. For HitHandle, ID is
// the wall's id and End the endpoint.
type Hit struct {
	Kind HitKind
	ID   string
	End  WallEnd
}

// HitAt finds the topmost entity whose visual footprint contains p.
// Endpoint handles are only considered for the currently selected wall
// (selectedWallID may be empty). Priority: handles, then rooms, then
// openings, then walls.
func HitAt(plan *core.Plan, p orb.Point, selectedWallID string) Hit {
	if selectedWallID != "" {
		if w := plan.WallByID(selectedWallID); w != nil {
			if geom.SegmentLength(p, w.Start) <= handleHitRadius {
				return Hit{Kind: HitHandle, ID: w.ID, End: EndStart}
			}
			if geom.SegmentLength(p, w.End) <= handleHitRadius {
				return Hit{Kind: HitHandle, ID: w.ID, End: EndEnd}
			}
		}
	}

	// Rooms hit-test against the unrotated bounding box; rotation is
	// visual only.
	for _, r := range plan.Rooms {
		if r.Bound().Contains(p) {
			return Hit{Kind: HitRoom, ID: r.ID}
		}
	}

	for _, o := range plan.Openings {
		if o.Pos == nil {
			continue
		}
		if geom.SegmentLength(p, *o.Pos) <= openingHitRadius {
			return Hit{Kind: HitOpening, ID: o.ID}
		}
	}

	for _, w := range plan.Walls {
		if geom.DistancePointToSegment(p, w.Start, w.End) <= wallHitTolerance {
			return Hit{Kind: HitWall, ID: w.ID}
		}
	}

	return Hit{Kind: HitNone}
}
