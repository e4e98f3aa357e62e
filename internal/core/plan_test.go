package core

import (
	"testing"

	"github.com/paulmach/orb"
)

func TestTempIDs(t *testing.T) {
	p := NewPlan(Footprint{Width: 30, Length: 40}, "")

	a := p.NewTempID()
	b := p.NewTempID()
	if a == b {
		t.Errorf("NewTempID returned duplicate %q", a)
	}
	if !IsTempID(a) || !IsTempID(b) {
		t.Errorf("temp ids %q, %q not recognized", a, b)
	}
	if IsTempID("a7c1e2") {
		t.Errorf("persisted id misread as temporary")
	}
}

func TestPlanAddRemove(t *testing.T) {
	p := NewPlan(Footprint{Width: 30, Length: 40}, "q1")

	w := &Wall{ID: p.NewTempID(), Start: orb.Point{5, 5}, End: orb.Point{5, 35}}
	p.AddWall(w)
	if p.WallByID(w.ID) != w {
		t.Fatalf("WallByID(%q) did not find the added wall", w.ID)
	}

	p.RemoveWall(w.ID)
	if p.WallByID(w.ID) != nil {
		t.Errorf("wall %q still present after RemoveWall", w.ID)
	}

	o := &Opening{ID: "op-1", Type: Walkdoor, Width: 3, Height: 7}
	p.AddOpening(o)
	r := &Room{ID: "rm-1", Kind: KindRoom, Width: 10, Length: 12}
	p.AddRoom(r)

	p.RemoveOpening("op-1")
	p.RemoveRoom("rm-1")
	if p.OpeningByID("op-1") != nil || p.RoomByID("rm-1") != nil {
		t.Errorf("entities still present after removal")
	}
}

func TestWallGeometry(t *testing.T) {
	w := &Wall{ID: "w1", Start: orb.Point{0, 0}, End: orb.Point{3, 4}}
	if got := w.Length(); got != 5.0 {
		t.Errorf("Length() = %v, want 5.0", got)
	}

	horiz := &Wall{Start: orb.Point{0, 0}, End: orb.Point{10, 1}}
	vert := &Wall{Start: orb.Point{0, 0}, End: orb.Point{1, 10}}
	if !horiz.Horizontal() {
		t.Errorf("mostly-horizontal wall not reported horizontal")
	}
	if vert.Horizontal() {
		t.Errorf("mostly-vertical wall reported horizontal")
	}
}

func TestFootprintEdges(t *testing.T) {
	fp := Footprint{Width: 30, Length: 40}

	rotations := map[string]int{}
	for _, e := range fp.Edges() {
		rotations[e.Name] = e.Rotation
	}

	want := map[string]int{"bottom": 0, "top": 180, "left": 90, "right": 270}
	for name, rot := range want {
		if rotations[name] != rot {
			t.Errorf("edge %s rotation = %d, want %d", name, rotations[name], rot)
		}
	}
}
