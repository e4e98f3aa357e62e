package geom

import (
	"math"
	"testing"
)

func TestSegmentLength(t *testing.T) {
	got := SegmentLength(Pt(0, 0), Pt(3, 4))
	if got != 5.0 {
		t.Errorf("SegmentLength((0,0),(3,4)) = %v, want 5.0", got)
	}
}

func TestDistancePointToSegment(t *testing.T) {
	tests := []struct {
		name    string
		p, a, b [2]float64
		want    float64
	}{
		{"perpendicular", [2]float64{5, 3}, [2]float64{0, 0}, [2]float64{10, 0}, 3},
		{"beyond end clamps", [2]float64{13, 4}, [2]float64{0, 0}, [2]float64{10, 0}, 5},
		{"before start clamps", [2]float64{-3, 4}, [2]float64{0, 0}, [2]float64{10, 0}, 5},
		{"on segment", [2]float64{5, 0}, [2]float64{0, 0}, [2]float64{10, 0}, 0},
		{"degenerate segment", [2]float64{3, 4}, [2]float64{0, 0}, [2]float64{0, 0}, 5},
	}

	for _, tt := range tests {
		got := DistancePointToSegment(Pt(tt.p[0], tt.p[1]), Pt(tt.a[0], tt.a[1]), Pt(tt.b[0], tt.b[1]))
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: DistancePointToSegment = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestProjectPointOntoSegment(t *testing.T) {
	tests := []struct {
		name    string
		p, a, b [2]float64
		want    [2]float64
	}{
		{"interior projection", [2]float64{5, 3}, [2]float64{0, 0}, [2]float64{10, 0}, [2]float64{5, 0}},
		{"clamped to end", [2]float64{13, 4}, [2]float64{0, 0}, [2]float64{10, 0}, [2]float64{10, 0}},
		{"clamped to start", [2]float64{-3, 4}, [2]float64{0, 0}, [2]float64{10, 0}, [2]float64{0, 0}},
		{"degenerate", [2]float64{3, 4}, [2]float64{2, 2}, [2]float64{2, 2}, [2]float64{2, 2}},
	}

	for _, tt := range tests {
		got := ProjectPointOntoSegment(Pt(tt.p[0], tt.p[1]), Pt(tt.a[0], tt.a[1]), Pt(tt.b[0], tt.b[1]))
		if math.Abs(got[0]-tt.want[0]) > 1e-9 || math.Abs(got[1]-tt.want[1]) > 1e-9 {
			t.Errorf("%s: ProjectPointOntoSegment = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestNormalizeRotation(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 0},
		{90, 90},
		{360, 0},
		{450, 90},
		{-90, 270},
		{-360, 0},
	}

	for _, tt := range tests {
		if got := NormalizeRotation(tt.in); got != tt.want {
			t.Errorf("NormalizeRotation(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
