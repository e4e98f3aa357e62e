package interact

import (
	"math"
	"testing"

	"github.com/paulmach/orb"

	"github.com/barnwright/plansketch/internal/core"
)

func TestTransformRoundTrip(t *testing.T) {
	vp := NewViewport(core.Footprint{Width: 30, Length: 40}, 12)
	vp.Resize(1000, 700)

	points := []orb.Point{
		{0, 0},
		{30, 40},
		{15, 20},
		{5, 39.6},
		{29.99, 0.01},
	}
	zooms := []float64{0.5, 1.0, 1.7, 3.0}

	for _, z := range zooms {
		vp.SetUserZoom(z)
		for _, p := range points {
			got := vp.ToModel(vp.ToScreen(p))
			if math.Abs(got[0]-p[0]) > 1e-4 || math.Abs(got[1]-p[1]) > 1e-4 {
				t.Errorf("zoom %v: round trip of %v gave %v", z, p, got)
			}
		}
	}
}

func TestBaseZoomFits(t *testing.T) {
	vp := NewViewport(core.Footprint{Width: 30, Length: 40}, 12)

	// Small building on a big surface never magnifies past native scale.
	vp.Resize(2000, 2000)
	if vp.BaseZoom() != 1.0 {
		t.Errorf("big surface: baseZoom = %v, want 1.0", vp.BaseZoom())
	}

	// A huge building must shrink to fit.
	vp.SetFootprint(core.Footprint{Width: 300, Length: 400})
	vp.Resize(1000, 700)
	if vp.BaseZoom() >= 1.0 {
		t.Errorf("huge footprint: baseZoom = %v, want < 1.0", vp.BaseZoom())
	}
	// And stays clamped above the legibility floor.
	vp.SetFootprint(core.Footprint{Width: 3000, Length: 4000})
	if vp.BaseZoom() < 0.2 {
		t.Errorf("baseZoom %v below minimum clamp", vp.BaseZoom())
	}
}

func TestSetFootprintResetsUserZoom(t *testing.T) {
	vp := NewViewport(core.Footprint{Width: 30, Length: 40}, 12)
	vp.Resize(1000, 700)

	vp.SetUserZoom(2.0)
	vp.SetFootprint(core.Footprint{Width: 50, Length: 60})
	if vp.UserZoom != 1.0 {
		t.Errorf("UserZoom = %v after footprint change, want 1.0", vp.UserZoom)
	}
}

func TestUserZoomClamped(t *testing.T) {
	vp := NewViewport(core.Footprint{Width: 30, Length: 40}, 12)

	vp.SetUserZoom(10)
	if vp.UserZoom != MaxUserZoom {
		t.Errorf("UserZoom = %v, want clamped to %v", vp.UserZoom, MaxUserZoom)
	}
	vp.SetUserZoom(0.01)
	if vp.UserZoom != MinUserZoom {
		t.Errorf("UserZoom = %v, want clamped to %v", vp.UserZoom, MinUserZoom)
	}

	vp.SetUserZoom(1.0)
	for i := 0; i < 20; i++ {
		vp.ZoomIn()
	}
	if vp.UserZoom > MaxUserZoom {
		t.Errorf("ZoomIn exceeded max: %v", vp.UserZoom)
	}
	for i := 0; i < 40; i++ {
		vp.ZoomOut()
	}
	if vp.UserZoom < MinUserZoom {
		t.Errorf("ZoomOut exceeded min: %v", vp.UserZoom)
	}
}

func TestModelCenterMapsToSurfaceCenter(t *testing.T) {
	vp := NewViewport(core.Footprint{Width: 30, Length: 40}, 12)
	vp.Resize(1000, 700)

	s := vp.ToScreen(orb.Point{15, 20})
	if math.Abs(float64(s.X)-500) > 0.5 || math.Abs(float64(s.Y)-350) > 0.5 {
		t.Errorf("footprint center mapped to %v, want surface center (500,350)", s)
	}
}
