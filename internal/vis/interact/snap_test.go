package interact

import (
	"testing"

	"github.com/paulmach/orb"

	"github.com/barnwright/plansketch/internal/core"
)

func testPlan() *core.Plan {
	return core.NewPlan(core.Footprint{Width: 30, Length: 40}, "")
}

func TestSnapForOpeningExteriorEdges(t *testing.T) {
	s := Snapper{Plan: testPlan()}

	tests := []struct {
		name     string
		p        orb.Point
		wantPt   orb.Point
		wantRot  int
		wantEdge string
	}{
		{"south wall", orb.Point{15, 39.6}, orb.Point{15, 40}, 0, "bottom"},
		{"north wall", orb.Point{15, 0.4}, orb.Point{15, 0}, 180, "top"},
		{"west wall", orb.Point{0.7, 20}, orb.Point{0, 20}, 90, "left"},
		{"east wall", orb.Point{29.5, 20}, orb.Point{30, 20}, 270, "right"},
	}

	for _, tt := range tests {
		got := s.SnapForOpening(tt.p)
		if !got.Snapped {
			t.Errorf("%s: point %v did not snap", tt.name, tt.p)
			continue
		}
		if got.Point != tt.wantPt || got.Rotation != tt.wantRot || got.Edge != tt.wantEdge {
			t.Errorf("%s: got (%v, rot %d, %s), want (%v, rot %d, %s)",
				tt.name, got.Point, got.Rotation, got.Edge, tt.wantPt, tt.wantRot, tt.wantEdge)
		}
	}
}

func TestSnapIdempotent(t *testing.T) {
	s := Snapper{Plan: testPlan()}

	p := orb.Point{15, 0}
	got := s.SnapForOpening(p)
	if !got.Snapped || got.Point != p {
		t.Errorf("point already on edge: got (%v, snapped=%v), want identity", got.Point, got.Snapped)
	}
}

func TestSnapMissReturnsOriginal(t *testing.T) {
	s := Snapper{Plan: testPlan()}

	p := orb.Point{15, 20}
	got := s.SnapForOpening(p)
	if got.Snapped || got.Point != p || got.Rotation != 0 {
		t.Errorf("interior point: got (%v, snapped=%v, rot=%d), want unchanged", got.Point, got.Snapped, got.Rotation)
	}
}

func TestSnapToleranceBoundary(t *testing.T) {
	plan := testPlan()
	plan.AddWall(&core.Wall{ID: "w1", Start: orb.Point{10, 10}, End: orb.Point{10, 30}})
	s := Snapper{Plan: plan}

	const eps = 0.001
	inside := s.SnapForOpening(orb.Point{10 + SnapTolerance - eps, 20})
	if !inside.Snapped {
		t.Errorf("point at tolerance-eps did not snap")
	}
	outside := s.SnapForOpening(orb.Point{10 + SnapTolerance + eps, 20})
	if outside.Snapped {
		t.Errorf("point at tolerance+eps snapped")
	}
}

func TestSnapToInteriorWallRotation(t *testing.T) {
	plan := testPlan()
	plan.AddWall(&core.Wall{ID: "v", Start: orb.Point{10, 10}, End: orb.Point{10, 30}})
	plan.AddWall(&core.Wall{ID: "h", Start: orb.Point{15, 20}, End: orb.Point{25, 20}})
	s := Snapper{Plan: plan}

	vert := s.SnapForOpening(orb.Point{10.5, 15})
	if !vert.Snapped || vert.Rotation != 90 || vert.Edge != "wall" {
		t.Errorf("vertical wall snap: got rot %d edge %q snapped %v, want 90/wall/true",
			vert.Rotation, vert.Edge, vert.Snapped)
	}
	if vert.Point != (orb.Point{10, 15}) {
		t.Errorf("vertical wall snap point = %v, want (10,15)", vert.Point)
	}

	horiz := s.SnapForOpening(orb.Point{20, 20.5})
	if !horiz.Snapped || horiz.Rotation != 0 {
		t.Errorf("horizontal wall snap: got rot %d, want 0", horiz.Rotation)
	}
}

func TestExteriorEdgeExtentRespected(t *testing.T) {
	s := Snapper{Plan: testPlan()}

	// Close to the bottom edge's line, but past the footprint corner:
	// the projection clamps to the corner, which is more than the
	// tolerance away.
	got := s.SnapForOpening(orb.Point{35, 39.8})
	if got.Snapped {
		t.Errorf("point beyond edge extent snapped to %v", got.Point)
	}
}

func TestSnapForRoomExteriorOnly(t *testing.T) {
	plan := testPlan()
	plan.AddWall(&core.Wall{ID: "w1", Start: orb.Point{10, 10}, End: orb.Point{10, 30}})
	s := Snapper{Plan: plan}

	// 0.3 ft from the interior wall, far from any exterior edge: the
	// generic snap takes it, the room snap must not.
	p := orb.Point{10.3, 20}
	if got := s.SnapForOpening(p); !got.Snapped {
		t.Fatalf("opening snap missed point %v next to interior wall", p)
	}
	if got := s.SnapForRoom(p); got.Snapped {
		t.Errorf("room snapped to interior wall at %v", got.Point)
	}

	edge := s.SnapForRoom(orb.Point{15, 39.7})
	if !edge.Snapped || edge.Point != (orb.Point{15, 40}) {
		t.Errorf("room did not snap to exterior edge: %+v", edge)
	}
}

func TestSnapForWallMatchesOpening(t *testing.T) {
	plan := testPlan()
	plan.AddWall(&core.Wall{ID: "w1", Start: orb.Point{10, 10}, End: orb.Point{10, 30}})
	s := Snapper{Plan: plan}

	p := orb.Point{10.4, 25}
	wall := s.SnapForWall(p)
	opening := s.SnapForOpening(p)
	if wall.Point != opening.Point || wall.Snapped != opening.Snapped {
		t.Errorf("SnapForWall diverged from SnapForOpening: %+v vs %+v", wall, opening)
	}
}
