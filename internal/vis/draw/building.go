package draw

import (
	"fmt"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/widget/material"

	"github.com/barnwright/plansketch/internal/core"
	"github.com/barnwright/plansketch/internal/geom"
	"github.com/barnwright/plansketch/internal/vis/interact"
)

// Building paints the exterior outline of the footprint with its
// dimension labels.
func Building(gtx layout.Context, th *material.Theme, vp *interact.Viewport, fp core.Footprint) {
	corners := [4]f32.Point{
		vp.ToScreen(geom.Pt(0, 0)),
		vp.ToScreen(geom.Pt(fp.Width, 0)),
		vp.ToScreen(geom.Pt(fp.Width, fp.Length)),
		vp.ToScreen(geom.Pt(0, fp.Length)),
	}
	Quad(gtx, corners, 3, ColorOutline)

	// Width label sits past the left edge, length label above the top
	// edge (both in rotated screen orientation).
	widthAt := vp.ToScreen(geom.Pt(fp.Width/2, 0))
	widthAt.X += 10
	Label(gtx, th, widthAt, 13, fmt.Sprintf("%g'", fp.Width), ColorDimension)

	lengthAt := vp.ToScreen(geom.Pt(0, fp.Length/2))
	lengthAt.Y -= 22
	Label(gtx, th, lengthAt, 13, fmt.Sprintf("%g'", fp.Length), ColorDimension)
}

// ZoomLabel paints the current zoom percentage at the given corner
// position.
func ZoomLabel(gtx layout.Context, th *material.Theme, vp *interact.Viewport, at f32.Point) {
	pct := int(vp.UserZoom*100 + 0.5)
	Label(gtx, th, at, 12, fmt.Sprintf("zoom %d%%", pct), ColorDimension)
}
