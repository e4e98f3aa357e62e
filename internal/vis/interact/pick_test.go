package interact

import (
	"testing"

	"github.com/paulmach/orb"

	"github.com/barnwright/plansketch/internal/core"
)

func pickPlan() *core.Plan {
	plan := core.NewPlan(core.Footprint{Width: 30, Length: 40}, "")
	plan.AddWall(&core.Wall{ID: "w1", Start: orb.Point{10, 10}, End: orb.Point{10, 30}})
	pos := orb.Point{20, 40}
	plan.AddOpening(&core.Opening{ID: "o1", Type: core.Walkdoor, Width: 3, Height: 7, Pos: &pos})
	plan.AddRoom(&core.Room{ID: "r1", Kind: core.KindRoom, X: 2, Y: 2, Width: 6, Length: 8})
	return plan
}

func TestHitWall(t *testing.T) {
	plan := pickPlan()

	hit := HitAt(plan, orb.Point{10.3, 20}, "")
	if hit.Kind != HitWall || hit.ID != "w1" {
		t.Errorf("near wall: got %+v, want wall w1", hit)
	}

	miss := HitAt(plan, orb.Point{11, 20}, "")
	if miss.Kind != HitNone {
		t.Errorf("0.99ft+ from wall: got %+v, want none", miss)
	}
}

func TestHitOpening(t *testing.T) {
	plan := pickPlan()

	hit := HitAt(plan, orb.Point{21.5, 39.5}, "")
	if hit.Kind != HitOpening || hit.ID != "o1" {
		t.Errorf("near opening: got %+v, want opening o1", hit)
	}
}

func TestHitRoomBoundingBox(t *testing.T) {
	plan := pickPlan()

	hit := HitAt(plan, orb.Point{5, 6}, "")
	if hit.Kind != HitRoom || hit.ID != "r1" {
		t.Errorf("inside room box: got %+v, want room r1", hit)
	}

	// Rotation does not change the hit box.
	plan.RoomByID("r1").Rotation = 90
	hit = HitAt(plan, orb.Point{5, 6}, "")
	if hit.Kind != HitRoom {
		t.Errorf("rotated room lost its unrotated hit box: %+v", hit)
	}
}

func TestHitHandleOnlyWhenSelected(t *testing.T) {
	plan := pickPlan()
	p := orb.Point{10.2, 10.2}

	without := HitAt(plan, p, "")
	if without.Kind == HitHandle {
		t.Fatalf("handle hit without wall selection: %+v", without)
	}

	with := HitAt(plan, p, "w1")
	if with.Kind != HitHandle || with.End != EndStart {
		t.Errorf("selected wall near start: got %+v, want start handle", with)
	}

	end := HitAt(plan, orb.Point{10.1, 29.8}, "w1")
	if end.Kind != HitHandle || end.End != EndEnd {
		t.Errorf("selected wall near end: got %+v, want end handle", end)
	}
}

func TestHitPriorityRoomOverWall(t *testing.T) {
	plan := core.NewPlan(core.Footprint{Width: 30, Length: 40}, "")
	plan.AddWall(&core.Wall{ID: "w1", Start: orb.Point{5, 2}, End: orb.Point{5, 9}})
	plan.AddRoom(&core.Room{ID: "r1", Kind: core.KindRoom, X: 2, Y: 2, Width: 6, Length: 8})

	hit := HitAt(plan, orb.Point{5, 5}, "")
	if hit.Kind != HitRoom {
		t.Errorf("room and wall overlap: got %+v, want room first", hit)
	}
}
