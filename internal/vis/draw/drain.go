package draw

import (
	"gioui.org/layout"

	"github.com/barnwright/plansketch/internal/core"
	"github.com/barnwright/plansketch/internal/vis/interact"
)

// Drain paints a floor drain as a dashed segment. idx staggers drains
// that only have a heuristic position so duplicates stay visible.
func Drain(gtx layout.Context, vp *interact.Viewport, d *core.FloorDrain, fp core.Footprint, idx int) {
	a, b := d.Segment(fp, idx)
	DashedSegment(gtx, vp.ToScreen(a), vp.ToScreen(b), 2, 8, 5, ColorDrain)
}
