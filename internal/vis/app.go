// Package vis implements the Gio application shell for the floor-plan
// editor.
package vis

import (
	"image"
	"image/color"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"go.uber.org/zap"

	"github.com/barnwright/plansketch/internal/core"
	"github.com/barnwright/plansketch/internal/store"
	"github.com/barnwright/plansketch/internal/vis/interact"
	"github.com/barnwright/plansketch/internal/vis/state"
	"github.com/barnwright/plansketch/internal/vis/widgets"
)

// BaseScale is the fixed drawing scale in pixels per foot at zoom 1.0.
const BaseScale = 12.0

// App is the editor application.
type App struct {
	editor    *state.Editor
	viewport  *interact.Viewport
	theme     *material.Theme
	workspace *widgets.Workspace
	toolbar   *widgets.Toolbar
	log       *zap.Logger
}

// NewApp wires the editor over an already-loaded plan.
func NewApp(plan *core.Plan, st store.Store, log *zap.Logger) *App {
	th := material.NewTheme()
	ed := state.NewEditor(plan, st, log)
	vp := interact.NewViewport(plan.Footprint, BaseScale)

	return &App{
		editor:    ed,
		viewport:  vp,
		theme:     th,
		workspace: widgets.NewWorkspace(ed, vp),
		toolbar:   widgets.NewToolbar(ed, vp),
		log:       log,
	}
}

// Editor exposes the interaction state machine, for callers wiring
// attribute forms or footprint changes.
func (a *App) Editor() *state.Editor { return a.editor }

// SetFootprint applies new building dimensions and recomputes the view.
func (a *App) SetFootprint(fp core.Footprint) {
	a.editor.SetFootprint(fp)
	a.viewport.SetFootprint(fp)
}

// Run drives the window event loop until the window closes.
func (a *App) Run(w *app.Window) error {
	var ops op.Ops
	tag := new(int)

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			for {
				ev, ok := gtx.Event(key.Filter{Focus: tag, Optional: key.ModCtrl | key.ModShift})
				if !ok {
					break
				}
				if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
					a.handleKeyEvent(ke)
				}
			}
			event.Op(gtx.Ops, tag)

			a.layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (a *App) handleKeyEvent(e key.Event) {
	switch e.Name {
	case key.NameEscape:
		a.editor.Cancel()
	case key.NameDeleteForward, key.NameDeleteBackward:
		a.editor.DeleteSelection()
	case "R":
		a.editor.RotateSelection()
	case "S":
		a.editor.SetMode(state.ModeSelect)
	case "W":
		a.editor.SetMode(state.ModeDrawWall)
	case "D":
		a.editor.SetMode(state.ModePlaceDoor)
	case "0":
		a.viewport.SetUserZoom(1.0)
	case "+", "=":
		a.viewport.ZoomIn()
	case "-":
		a.viewport.ZoomOut()
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	paint.Fill(gtx.Ops, color.NRGBA{R: 30, G: 30, B: 35, A: 255})

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.toolbar.Layout(gtx, a.theme)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return a.workspace.Layout(gtx, a.theme)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.layoutStatus(gtx)
		}),
	)
}

// layoutStatus renders the status line: the active mode and the newest
// transient notice (persistence failures land here).
func (a *App) layoutStatus(gtx layout.Context) layout.Dimensions {
	height := 24
	rect := image.Rect(0, 0, gtx.Constraints.Max.X, height)
	paint.FillShape(gtx.Ops, color.NRGBA{R: 40, G: 43, B: 48, A: 255}, clip.Rect(rect).Op())

	text := a.editor.Mode.String()
	if msg := a.editor.Notices.Current(); msg != "" {
		text += "  |  " + msg
	}

	layout.Inset{Left: unit.Dp(10), Top: unit.Dp(4)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		label := material.Label(a.theme, 12, text)
		label.Color = color.NRGBA{R: 200, G: 200, B: 205, A: 255}
		return label.Layout(gtx)
	})

	return layout.Dimensions{Size: image.Point{X: gtx.Constraints.Max.X, Y: height}}
}
