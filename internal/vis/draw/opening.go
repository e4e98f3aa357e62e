package draw

import (
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"github.com/paulmach/orb"

	"github.com/barnwright/plansketch/internal/core"
	"github.com/barnwright/plansketch/internal/vis/interact"
)

// Opening paints a placed opening with its type-specific glyph, rotated
// to its committed rotation.
func Opening(gtx layout.Context, vp *interact.Viewport, o *core.Opening, col color.NRGBA) {
	if o.Pos == nil {
		return
	}
	OpeningAt(gtx, vp, o, *o.Pos, col)
}

// OpeningAt paints an opening glyph at an arbitrary model position,
// used both for committed openings and the floating ghost.
func OpeningAt(gtx layout.Context, vp *interact.Viewport, o *core.Opening, pos orb.Point, col color.NRGBA) {
	rad := float64(o.Rotation) * math.Pi / 180
	ux := math.Cos(rad)
	uy := math.Sin(rad)
	half := o.Width / 2

	a := vp.ToScreen(orb.Point{pos[0] - ux*half, pos[1] - uy*half})
	b := vp.ToScreen(orb.Point{pos[0] + ux*half, pos[1] + uy*half})

	switch o.Type {
	case core.Walkdoor:
		drawWalkdoor(gtx, a, b, o.Swing, col)
	case core.Window:
		drawWindow(gtx, a, b, col)
	case core.OverheadDoor:
		drawOverhead(gtx, a, b, col)
	default:
		Segment(gtx, a, b, 4, col)
	}
}

// drawWalkdoor paints the door leaf plus a quarter-circle swing arc
// hinged at one end.
func drawWalkdoor(gtx layout.Context, a, b f32.Point, swing core.SwingDirection, col color.NRGBA) {
	Segment(gtx, a, b, 4, col)

	hinge := a
	free := b
	if swing == core.SwingLeft {
		hinge, free = b, a
	}

	dx := float64(free.X - hinge.X)
	dy := float64(free.Y - hinge.Y)
	r := float32(math.Sqrt(dx*dx + dy*dy))
	start := math.Atan2(dy, dx) * 180 / math.Pi

	sweep := 90.0
	if swing == core.SwingOut {
		sweep = -90.0
	}
	arcCol := col
	arcCol.A = 150
	Arc(gtx, hinge, r, start, sweep, 1, arcCol)
}

// drawWindow paints two thin parallel lines.
func drawWindow(gtx layout.Context, a, b f32.Point, col color.NRGBA) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	length := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if length < 0.1 {
		return
	}
	px := -dy / length * 2
	py := dx / length * 2

	Segment(gtx, f32.Pt(a.X+px, a.Y+py), f32.Pt(b.X+px, b.Y+py), 1.5, col)
	Segment(gtx, f32.Pt(a.X-px, a.Y-py), f32.Pt(b.X-px, b.Y-py), 1.5, col)
}

// drawOverhead paints a wide leaf with tick marks along it.
func drawOverhead(gtx layout.Context, a, b f32.Point, col color.NRGBA) {
	Segment(gtx, a, b, 5, col)

	dx := b.X - a.X
	dy := b.Y - a.Y
	length := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if length < 0.1 {
		return
	}
	ux := dx / length
	uy := dy / length
	px := -uy * 5
	py := ux * 5

	ticks := 4
	for i := 1; i < ticks; i++ {
		t := length * float32(i) / float32(ticks)
		cx := a.X + ux*t
		cy := a.Y + uy*t
		Segment(gtx, f32.Pt(cx-px, cy-py), f32.Pt(cx+px, cy+py), 1, col)
	}
}
