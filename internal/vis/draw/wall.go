package draw

import (
	"image/color"

	"gioui.org/layout"
	"github.com/paulmach/orb"

	"github.com/barnwright/plansketch/internal/core"
	"github.com/barnwright/plansketch/internal/vis/interact"
)

// Wall paints an interior wall.
func Wall(gtx layout.Context, vp *interact.Viewport, w *core.Wall, col color.NRGBA) {
	Segment(gtx, vp.ToScreen(w.Start), vp.ToScreen(w.End), 3, col)
}

// WallHandles paints the endpoint handles of the selected wall, with
// the dragged endpoint (if any) shown at its live position.
func WallHandles(gtx layout.Context, vp *interact.Viewport, w *core.Wall) {
	r := float32(5)
	FilledCircle(gtx, vp.ToScreen(w.Start), r, ColorHandle)
	FilledCircle(gtx, vp.ToScreen(w.End), r, ColorHandle)
}

// WallPreview paints the live preview of a wall being drawn, from the
// snapped start to the snapped cursor.
func WallPreview(gtx layout.Context, vp *interact.Viewport, a, b orb.Point) {
	Segment(gtx, vp.ToScreen(a), vp.ToScreen(b), 2, ColorWallPreview)
}
