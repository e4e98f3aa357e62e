package core

import (
	"testing"

	"github.com/paulmach/orb"
)

func TestDrainHeuristicPlacement(t *testing.T) {
	fp := Footprint{Width: 40, Length: 60}

	tests := []struct {
		location string
		wantX    float64
		wantY    float64
	}{
		{"center", 20, 30},
		{"north wall", 20, 15},
		{"south end", 20, 45},
		{"east side", 30, 30},
		{"north-west corner", 10, 15},
		{"", 20, 30},
	}

	for _, tt := range tests {
		d := &FloorDrain{LengthFt: 10, Orientation: Horizontal, Location: tt.location}
		a, b := d.Segment(fp, 0)
		cx := (a[0] + b[0]) / 2
		cy := (a[1] + b[1]) / 2
		if cx != tt.wantX || cy != tt.wantY {
			t.Errorf("location %q: center = (%v,%v), want (%v,%v)", tt.location, cx, cy, tt.wantX, tt.wantY)
		}
	}
}

func TestDrainIndexStagger(t *testing.T) {
	fp := Footprint{Width: 40, Length: 60}
	d := &FloorDrain{LengthFt: 10, Orientation: Horizontal, Location: "center"}

	a0, _ := d.Segment(fp, 0)
	a1, _ := d.Segment(fp, 1)
	if a0[1] == a1[1] {
		t.Errorf("duplicate unplaced drains not staggered: both at y=%v", a0[1])
	}
}

func TestDrainExplicitPositionWins(t *testing.T) {
	fp := Footprint{Width: 40, Length: 60}
	pos := orb.Point{5, 5}
	d := &FloorDrain{LengthFt: 6, Orientation: Vertical, Location: "center", Pos: &pos}

	a, b := d.Segment(fp, 3)
	if a[0] != 5 || b[0] != 5 {
		t.Errorf("placed drain ignored explicit position: %v %v", a, b)
	}
	if b[1]-a[1] != 6 {
		t.Errorf("vertical drain span = %v, want 6", b[1]-a[1])
	}
}
