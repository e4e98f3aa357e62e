package widgets

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/barnwright/plansketch/internal/core"
	"github.com/barnwright/plansketch/internal/vis/interact"
	"github.com/barnwright/plansketch/internal/vis/state"
)

// Toolbar holds the tool mode buttons and entity actions.
type Toolbar struct {
	editor   *state.Editor
	viewport *interact.Viewport

	selectBtn   widget.Clickable
	wallBtn     widget.Clickable
	doorBtn     widget.Clickable
	windowBtn   widget.Clickable
	overheadBtn widget.Clickable
	roomBtn     widget.Clickable
	porchBtn    widget.Clickable
	loftBtn     widget.Clickable

	rotateBtn widget.Clickable
	deleteBtn widget.Clickable

	zoomInBtn  widget.Clickable
	zoomOutBtn widget.Clickable
}

// NewToolbar creates the toolbar.
func NewToolbar(ed *state.Editor, vp *interact.Viewport) *Toolbar {
	return &Toolbar{editor: ed, viewport: vp}
}

// Layout renders the toolbar.
func (t *Toolbar) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	height := 48
	rect := image.Rect(0, 0, gtx.Constraints.Max.X, height)
	paint.FillShape(gtx.Ops, color.NRGBA{R: 40, G: 43, B: 48, A: 255}, clip.Rect(rect).Op())

	t.handleClicks(gtx)

	return layout.Inset{Left: unit.Dp(10), Right: unit.Dp(10), Top: unit.Dp(8), Bottom: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle, Spacing: layout.SpaceStart}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return t.layoutModeButtons(gtx, th)
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return t.layoutSeparator(gtx)
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return t.layoutActions(gtx, th)
			}),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return layout.Dimensions{}
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return t.layoutZoom(gtx, th)
			}),
		)
	})
}

func (t *Toolbar) layoutModeButtons(gtx layout.Context, th *material.Theme) layout.Dimensions {
	mode := t.editor.Mode
	btn := func(b *widget.Clickable, label string, m state.Mode) layout.FlexChild {
		return layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.button(gtx, th, b, label, mode == m)
		})
	}
	return layout.Flex{Axis: layout.Horizontal, Spacing: layout.SpaceStart}.Layout(gtx,
		btn(&t.selectBtn, "Select", state.ModeSelect),
		t.spacer(),
		btn(&t.wallBtn, "Wall", state.ModeDrawWall),
		t.spacer(),
		btn(&t.doorBtn, "Door", state.ModePlaceDoor),
		t.spacer(),
		btn(&t.windowBtn, "Window", state.ModePlaceWindow),
		t.spacer(),
		btn(&t.overheadBtn, "Overhead", state.ModePlaceOverhead),
		t.spacer(),
		btn(&t.roomBtn, "Room", state.ModePlaceRoom),
		t.spacer(),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.button(gtx, th, &t.porchBtn, "Porch", false)
		}),
		t.spacer(),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.button(gtx, th, &t.loftBtn, "Loft", false)
		}),
	)
}

func (t *Toolbar) layoutActions(gtx layout.Context, th *material.Theme) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal, Spacing: layout.SpaceStart}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.button(gtx, th, &t.rotateBtn, "Rotate", false)
		}),
		t.spacer(),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.button(gtx, th, &t.deleteBtn, "Delete", false)
		}),
	)
}

func (t *Toolbar) layoutZoom(gtx layout.Context, th *material.Theme) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal, Spacing: layout.SpaceStart}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.button(gtx, th, &t.zoomOutBtn, "-", false)
		}),
		t.spacer(),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.button(gtx, th, &t.zoomInBtn, "+", false)
		}),
	)
}

func (t *Toolbar) spacer() layout.FlexChild {
	return layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout)
}

func (t *Toolbar) layoutSeparator(gtx layout.Context) layout.Dimensions {
	return layout.Inset{Left: unit.Dp(8), Right: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		rect := image.Rect(0, 0, 1, 24)
		paint.FillShape(gtx.Ops, color.NRGBA{R: 60, G: 65, B: 70, A: 255}, clip.Rect(rect).Op())
		return layout.Dimensions{Size: image.Point{X: 1, Y: 24}}
	})
}

func (t *Toolbar) button(gtx layout.Context, th *material.Theme, btn *widget.Clickable, text string, active bool) layout.Dimensions {
	bg := color.NRGBA{R: 55, G: 58, B: 65, A: 255}
	if active {
		bg = color.NRGBA{R: 80, G: 130, B: 180, A: 255}
	}
	if btn.Hovered() {
		bg.R = minU8(bg.R+15, 255)
		bg.G = minU8(bg.G+15, 255)
		bg.B = minU8(bg.B+15, 255)
	}

	return btn.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Background{}.Layout(gtx,
			func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Min = image.Point{X: 56, Y: 28}
				rect := image.Rect(0, 0, gtx.Constraints.Min.X, gtx.Constraints.Min.Y)
				paint.FillShape(gtx.Ops, bg, clip.Rect(rect).Op())
				return layout.Dimensions{Size: gtx.Constraints.Min}
			},
			func(gtx layout.Context) layout.Dimensions {
				return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					label := material.Label(th, 12, text)
					label.Color = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
					return label.Layout(gtx)
				})
			},
		)
	})
}

func (t *Toolbar) handleClicks(gtx layout.Context) {
	for t.selectBtn.Clicked(gtx) {
		t.editor.SetMode(state.ModeSelect)
	}
	for t.wallBtn.Clicked(gtx) {
		t.editor.SetMode(state.ModeDrawWall)
	}
	for t.doorBtn.Clicked(gtx) {
		t.editor.SetMode(state.ModePlaceDoor)
	}
	for t.windowBtn.Clicked(gtx) {
		t.editor.SetMode(state.ModePlaceWindow)
	}
	for t.overheadBtn.Clicked(gtx) {
		t.editor.SetMode(state.ModePlaceOverhead)
	}
	for t.roomBtn.Clicked(gtx) {
		t.editor.SeedRoom(core.KindRoom, 10, 10)
		t.editor.SetMode(state.ModePlaceRoom)
	}
	for t.porchBtn.Clicked(gtx) {
		t.editor.SeedRoom(core.KindPorch, 8, 10)
		t.editor.SetMode(state.ModePlaceRoom)
	}
	for t.loftBtn.Clicked(gtx) {
		t.editor.SeedRoom(core.KindLoft, 12, 12)
		t.editor.SetMode(state.ModePlaceRoom)
	}

	for t.rotateBtn.Clicked(gtx) {
		t.editor.RotateSelection()
	}
	for t.deleteBtn.Clicked(gtx) {
		t.editor.DeleteSelection()
	}

	for t.zoomInBtn.Clicked(gtx) {
		t.viewport.ZoomIn()
	}
	for t.zoomOutBtn.Clicked(gtx) {
		t.viewport.ZoomOut()
	}
}

func minU8(a, b uint8) uint8 {
	if a < b {
		return a
	}
	return b
}
