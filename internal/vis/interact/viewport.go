// Package interact holds the interaction geometry of the editor: the
// viewport transform between model feet and surface pixels, the
// snapping engine and the hit-test engine.
package interact

import (
	"gioui.org/f32"
	"github.com/paulmach/orb"

	"github.com/barnwright/plansketch/internal/core"
)

// Viewport zoom bounds.
const (
	MinUserZoom = 0.5
	MaxUserZoom = 3.0
	minBaseZoom = 0.2
	maxBaseZoom = 1.0
	fitMargin   = 40 // px kept clear around the drawing when fitting
)

// Viewport converts between model coordinates (feet, origin at the
// building corner) and surface coordinates (pixels). The drawing is
// centered on the surface and rotated a fixed 90 degrees so the long
// axis runs across the screen; baseZoom fits the footprint into the
// surface and UserZoom is the user-adjustable factor on top of it.
type Viewport struct {
	BaseScale float64 // px per foot at zoom 1.0
	UserZoom  float64

	fp       core.Footprint
	surfaceW float64
	surfaceH float64
	baseZoom float64
}

// NewViewport creates a viewport for the footprint. The base zoom is
// recomputed on the first Resize.
func NewViewport(fp core.Footprint, baseScale float64) *Viewport {
	v := &Viewport{
		BaseScale: baseScale,
		UserZoom:  1.0,
		fp:        fp,
		baseZoom:  maxBaseZoom,
	}
	v.recomputeBaseZoom()
	return v
}

// Resize records the available surface size and refits the base zoom.
func (v *Viewport) Resize(w, h int) {
	v.surfaceW = float64(w)
	v.surfaceH = float64(h)
	v.recomputeBaseZoom()
}

// SetFootprint swaps the footprint dimensions, refits the base zoom and
// resets the user zoom to 1.0.
func (v *Viewport) SetFootprint(fp core.Footprint) {
	v.fp = fp
	v.UserZoom = 1.0
	v.recomputeBaseZoom()
}

// SetUserZoom clamps and applies a user zoom factor.
func (v *Viewport) SetUserZoom(z float64) {
	if z < MinUserZoom {
		z = MinUserZoom
	}
	if z > MaxUserZoom {
		z = MaxUserZoom
	}
	v.UserZoom = z
}

// ZoomIn bumps the user zoom one step.
func (v *Viewport) ZoomIn() { v.SetUserZoom(v.UserZoom * 1.25) }

// ZoomOut drops the user zoom one step.
func (v *Viewport) ZoomOut() { v.SetUserZoom(v.UserZoom / 1.25) }

// BaseZoom returns the current fit-to-surface factor.
func (v *Viewport) BaseZoom() float64 { return v.baseZoom }

// Scale returns the effective pixels-per-foot of the current view.
func (v *Viewport) Scale() float64 {
	return v.BaseScale * v.baseZoom * v.UserZoom
}

// recomputeBaseZoom fits the rotated footprint inside the surface,
// clamped so tiny surfaces stay legible and small buildings are never
// magnified past native scale.
func (v *Viewport) recomputeBaseZoom() {
	// After the 90° rotation the footprint Length spans screen X and
	// Width spans screen Y.
	extentX := v.fp.Length * v.BaseScale
	extentY := v.fp.Width * v.BaseScale

	z := maxBaseZoom
	if extentX > 0 && extentY > 0 && v.surfaceW > 2*fitMargin && v.surfaceH > 2*fitMargin {
		zx := (v.surfaceW - 2*fitMargin) / extentX
		zy := (v.surfaceH - 2*fitMargin) / extentY
		z = zx
		if zy < zx {
			z = zy
		}
	}
	if z < minBaseZoom {
		z = minBaseZoom
	}
	if z > maxBaseZoom {
		z = maxBaseZoom
	}
	v.baseZoom = z
}

// ToScreen maps a model point to surface pixels: translate to the
// footprint center, rotate 90°, scale, translate to the surface center.
func (v *Viewport) ToScreen(p orb.Point) f32.Point {
	k := v.Scale()
	c := v.fp.Center()
	mx := p[0] - c[0]
	my := p[1] - c[1]

	// Rotate +90°: (x, y) -> (-y, x).
	rx := -my * k
	ry := mx * k

	return f32.Pt(float32(rx+v.surfaceW/2), float32(ry+v.surfaceH/2))
}

// ToModel is the exact algebraic inverse of ToScreen.
func (v *Viewport) ToModel(s f32.Point) orb.Point {
	k := v.Scale()
	c := v.fp.Center()
	rx := (float64(s.X) - v.surfaceW/2) / k
	ry := (float64(s.Y) - v.surfaceH/2) / k

	// Inverse of the +90° rotation: (x, y) -> (y, -x).
	return orb.Point{ry + c[0], -rx + c[1]}
}
