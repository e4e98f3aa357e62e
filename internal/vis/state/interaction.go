// Package state owns the editor's tool mode and transient interaction
// state, and turns pointer events into plan mutations plus store calls.
package state

import (
	"github.com/paulmach/orb"

	"github.com/barnwright/plansketch/internal/core"
	"github.com/barnwright/plansketch/internal/vis/interact"
)

// Mode is the active tool.
type Mode int

const (
	ModeSelect Mode = iota
	ModeDrawWall
	ModePlaceDoor
	ModePlaceWindow
	ModePlaceOverhead
	ModePlaceRoom
)

func (m Mode) String() string {
	return [...]string{"select", "draw-wall", "place-door", "place-window", "place-overhead", "place-room"}[m]
}

// Interaction is the transient pointer interaction, modeled as a tagged
// union so that illegal combinations (a floating item while dragging a
// handle, two concurrent drags) cannot be represented.
type Interaction interface{ interaction() }

// Idle: no transient interaction.
type Idle struct{}

// Selected: one entity is selected and highlighted.
type Selected struct {
	Kind interact.HitKind
	ID   string
}

// Floating: an entity detached from any committed position, rendered at
// the live pointer location until the next click commits it. Exactly
// one of Opening, Room, Wall is set.
type Floating struct {
	Opening *core.Opening
	Room    *core.Room
	Wall    *core.Wall
	Pointer orb.Point // raw pointer position, used for the ghost

	fresh   bool       // true for a new placement, false for a pick-up
	origPos *orb.Point // pre-pickup position, for cancel/restore
	grab    orb.Point  // wall pick-up: offset from pointer to Start
}

// WallGhost returns the floating wall's endpoints at the current
// pointer position, preserving the wall's shape.
func (f *Floating) WallGhost() (orb.Point, orb.Point) {
	dx := f.Wall.End[0] - f.Wall.Start[0]
	dy := f.Wall.End[1] - f.Wall.Start[1]
	start := orb.Point{f.Pointer[0] + f.grab[0], f.Pointer[1] + f.grab[1]}
	return start, orb.Point{start[0] + dx, start[1] + dy}
}

// DrawingWall: a wall drag is in progress from Start (raw, unsnapped).
type DrawingWall struct {
	Start  orb.Point
	Cursor orb.Point
}

// DraggingHandle: an endpoint of the selected wall is being dragged.
// Cursor is the live snapped handle position.
type DraggingHandle struct {
	WallID string
	End    interact.WallEnd
	Cursor orb.Point
}

func (Idle) interaction()            {}
func (Selected) interaction()        {}
func (*Floating) interaction()       {}
func (*DrawingWall) interaction()    {}
func (*DraggingHandle) interaction() {}
