// Package widgets provides the Gio UI widgets of the editor.
package widgets

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget/material"

	"github.com/barnwright/plansketch/internal/core"
	"github.com/barnwright/plansketch/internal/vis/draw"
	"github.com/barnwright/plansketch/internal/vis/interact"
	"github.com/barnwright/plansketch/internal/vis/state"
)

// Workspace is the drawing surface: it routes pointer events into the
// editor and repaints the plan every frame.
type Workspace struct {
	editor   *state.Editor
	viewport *interact.Viewport

	lastSize image.Point
}

// NewWorkspace creates the drawing surface widget.
func NewWorkspace(ed *state.Editor, vp *interact.Viewport) *Workspace {
	return &Workspace{editor: ed, viewport: vp}
}

// Layout handles events and renders the workspace.
func (w *Workspace) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	bounds := gtx.Constraints.Max
	defer clip.Rect(image.Rect(0, 0, bounds.X, bounds.Y)).Push(gtx.Ops).Pop()

	if bounds != w.lastSize {
		w.lastSize = bounds
		w.viewport.Resize(bounds.X, bounds.Y)
	}

	paint.Fill(gtx.Ops, color.NRGBA{R: 25, G: 28, B: 32, A: 255})

	w.handlePointerEvents(gtx)
	w.render(gtx, th)

	return layout.Dimensions{Size: bounds}
}

func (w *Workspace) handlePointerEvents(gtx layout.Context) {
	area := clip.Rect(image.Rect(0, 0, gtx.Constraints.Max.X, gtx.Constraints.Max.Y)).Push(gtx.Ops)
	event.Op(gtx.Ops, w)
	area.Pop()

	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: w,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Move | pointer.Scroll,
		})
		if !ok {
			break
		}
		pe, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		w.handlePointerEvent(pe)
	}
}

func (w *Workspace) handlePointerEvent(ev pointer.Event) {
	p := w.viewport.ToModel(ev.Position)

	switch ev.Kind {
	case pointer.Press:
		if ev.Buttons.Contain(pointer.ButtonPrimary) {
			w.editor.Press(p)
		}
	case pointer.Drag:
		w.editor.Drag(p)
	case pointer.Release:
		w.editor.Release(p)
	case pointer.Move:
		w.editor.Move(p)
	case pointer.Scroll:
		if ev.Scroll.Y > 0 {
			w.viewport.ZoomOut()
		} else if ev.Scroll.Y < 0 {
			w.viewport.ZoomIn()
		}
	}
}

// render is the draw pass: building, drains, rooms, walls, openings,
// then whatever transient interaction is live on top.
func (w *Workspace) render(gtx layout.Context, th *material.Theme) {
	plan := w.editor.Plan
	vp := w.viewport

	draw.Building(gtx, th, vp, plan.Footprint)

	for i, d := range plan.Drains {
		draw.Drain(gtx, vp, d, plan.Footprint, i)
	}

	for _, r := range plan.Rooms {
		// A picked-up room is rendered as a ghost instead.
		if r == w.floatingRoom() {
			continue
		}
		col := draw.ColorRoom
		if w.isSelected(interact.HitRoom, r.ID) {
			col = draw.ColorRoomSel
		} else if w.editor.Hover.Kind == interact.HitRoom && w.editor.Hover.ID == r.ID {
			col = draw.ColorWallHover
		}
		draw.Room(gtx, th, vp, r, col)
	}

	w.renderWalls(gtx, vp)

	for _, o := range plan.Openings {
		// A picked-up opening is rendered as a ghost instead.
		if o == w.floatingOpening() {
			continue
		}
		col := draw.ColorOpening
		if w.isSelected(interact.HitOpening, o.ID) {
			col = draw.ColorOpeningSel
		} else if w.editor.Hover.Kind == interact.HitOpening && w.editor.Hover.ID == o.ID {
			col = draw.ColorWallHover
		}
		draw.Opening(gtx, vp, o, col)
	}

	w.renderTransient(gtx, th, vp)

	draw.ZoomLabel(gtx, th, vp, f32.Pt(12, float32(w.lastSize.Y)-24))
}

func (w *Workspace) renderWalls(gtx layout.Context, vp *interact.Viewport) {
	dragging, _ := w.editor.Interaction.(*state.DraggingHandle)
	floating, _ := w.editor.Interaction.(*state.Floating)

	for _, wall := range w.editor.Plan.Walls {
		// A picked-up wall is rendered as a ghost instead.
		if floating != nil && floating.Wall == wall {
			continue
		}

		if dragging != nil && dragging.WallID == wall.ID {
			preview := *wall
			if dragging.End == interact.EndStart {
				preview.Start = dragging.Cursor
			} else {
				preview.End = dragging.Cursor
			}
			draw.Wall(gtx, vp, &preview, draw.ColorWallSelected)
			draw.WallHandles(gtx, vp, &preview)
			continue
		}

		col := draw.ColorWall
		selected := w.isSelected(interact.HitWall, wall.ID)
		if selected {
			col = draw.ColorWallSelected
		} else if w.editor.Hover.Kind == interact.HitWall && w.editor.Hover.ID == wall.ID {
			col = draw.ColorWallHover
		}
		draw.Wall(gtx, vp, wall, col)
		if selected {
			draw.WallHandles(gtx, vp, wall)
		}
	}
}

func (w *Workspace) renderTransient(gtx layout.Context, th *material.Theme, vp *interact.Viewport) {
	switch i := w.editor.Interaction.(type) {
	case *state.DrawingWall:
		a := w.editor.SnapPreview(i.Start)
		b := w.editor.SnapPreview(i.Cursor)
		draw.WallPreview(gtx, vp, a, b)
	case *state.Floating:
		switch {
		case i.Opening != nil:
			draw.OpeningAt(gtx, vp, i.Opening, i.Pointer, draw.ColorGhost)
		case i.Room != nil:
			draw.RoomAt(gtx, th, vp, i.Room, i.Pointer, draw.ColorGhost, true)
		case i.Wall != nil:
			a, b := i.WallGhost()
			draw.Segment(gtx, vp.ToScreen(a), vp.ToScreen(b), 3, draw.ColorGhost)
		}
	}
}

// floatingOpening returns the opening currently held by a pick-up or
// placement, or nil.
func (w *Workspace) floatingOpening() *core.Opening {
	if f, ok := w.editor.Interaction.(*state.Floating); ok {
		return f.Opening
	}
	return nil
}

// floatingRoom returns the room currently held by a pick-up or
// placement, or nil.
func (w *Workspace) floatingRoom() *core.Room {
	if f, ok := w.editor.Interaction.(*state.Floating); ok {
		return f.Room
	}
	return nil
}

func (w *Workspace) isSelected(kind interact.HitKind, id string) bool {
	sel, ok := w.editor.Interaction.(state.Selected)
	return ok && sel.Kind == kind && sel.ID == id
}
