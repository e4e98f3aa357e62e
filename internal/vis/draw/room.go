package draw

import (
	"fmt"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/widget/material"
	"github.com/paulmach/orb"

	"github.com/barnwright/plansketch/internal/core"
	"github.com/barnwright/plansketch/internal/vis/interact"
)

// Room paints a room at its committed position.
func Room(gtx layout.Context, th *material.Theme, vp *interact.Viewport, r *core.Room, col color.NRGBA) {
	RoomAt(gtx, th, vp, r, orb.Point{r.X, r.Y}, col, false)
}

// RoomAt paints a room with its top-left corner at an arbitrary model
// position. Floating rooms additionally show their live dimensions.
func RoomAt(gtx layout.Context, th *material.Theme, vp *interact.Viewport, r *core.Room, topLeft orb.Point, col color.NRGBA, floating bool) {
	cx := topLeft[0] + r.Width/2
	cy := topLeft[1] + r.Length/2

	// Rotation is a drawing concern only; hit-testing stays on the
	// unrotated box.
	rad := float64(r.Rotation) * math.Pi / 180
	cos := math.Cos(rad)
	sin := math.Sin(rad)
	rot := func(x, y float64) f32.Point {
		dx := x - cx
		dy := y - cy
		return vp.ToScreen(orb.Point{cx + dx*cos - dy*sin, cy + dx*sin + dy*cos})
	}

	corners := [4]f32.Point{
		rot(topLeft[0], topLeft[1]),
		rot(topLeft[0]+r.Width, topLeft[1]),
		rot(topLeft[0]+r.Width, topLeft[1]+r.Length),
		rot(topLeft[0], topLeft[1]+r.Length),
	}
	Quad(gtx, corners, 2, col)

	label := r.Kind.String()
	if floating {
		label = fmt.Sprintf("%s %g' × %g'", label, r.Width, r.Length)
	}
	at := vp.ToScreen(orb.Point{cx, cy})
	at.X -= float32(len(label)) * 3
	at.Y -= 7
	Label(gtx, th, at, 12, label, ColorLabel)
}
