package core

import (
	"fmt"
	"strings"
)

// TempIDPrefix marks locally generated identifiers. Entities carrying a
// temporary ID are exactly the ones not yet acknowledged by the store.
const TempIDPrefix = "tmp-"

// IsTempID reports whether id was generated locally rather than by the
// persistence store.
func IsTempID(id string) bool {
	return strings.HasPrefix(id, TempIDPrefix)
}

// Plan owns every entity of one editing session: the interior walls,
// openings, rooms, floor drains and cupolas drawn over a footprint.
// Session is the external quote/session identifier; empty means
// local-only, unsaved mode.
type Plan struct {
	Footprint Footprint
	Session   string

	Walls    []*Wall
	Openings []*Opening
	Rooms    []*Room
	Drains   []*FloorDrain
	Cupolas  []*Cupola

	nextTempID int
}

// NewPlan creates an empty plan over the given footprint.
func NewPlan(fp Footprint, session string) *Plan {
	return &Plan{Footprint: fp, Session: session}
}

// NewTempID mints the next locally unique temporary identifier.
func (p *Plan) NewTempID() string {
	p.nextTempID++
	return fmt.Sprintf("%s%d", TempIDPrefix, p.nextTempID)
}

// WallByID finds a wall, or nil.
func (p *Plan) WallByID(id string) *Wall {
	for _, w := range p.Walls {
		if w.ID == id {
			return w
		}
	}
	return nil
}

// OpeningByID finds an opening, or nil.
func (p *Plan) OpeningByID(id string) *Opening {
	for _, o := range p.Openings {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// RoomByID finds a room, or nil.
func (p *Plan) RoomByID(id string) *Room {
	for _, r := range p.Rooms {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// AddWall appends a wall to the plan.
func (p *Plan) AddWall(w *Wall) { p.Walls = append(p.Walls, w) }

// AddOpening appends an opening to the plan.
func (p *Plan) AddOpening(o *Opening) { p.Openings = append(p.Openings, o) }

// AddRoom appends a room to the plan.
func (p *Plan) AddRoom(r *Room) { p.Rooms = append(p.Rooms, r) }

// AddDrain appends a floor drain to the plan.
func (p *Plan) AddDrain(d *FloorDrain) { p.Drains = append(p.Drains, d) }

// AddCupola appends a cupola to the plan.
func (p *Plan) AddCupola(c *Cupola) { p.Cupolas = append(p.Cupolas, c) }

// RemoveWall deletes a wall by id.
func (p *Plan) RemoveWall(id string) {
	for i, w := range p.Walls {
		if w.ID == id {
			p.Walls = append(p.Walls[:i], p.Walls[i+1:]...)
			return
		}
	}
}

// RemoveOpening deletes an opening by id.
func (p *Plan) RemoveOpening(id string) {
	for i, o := range p.Openings {
		if o.ID == id {
			p.Openings = append(p.Openings[:i], p.Openings[i+1:]...)
			return
		}
	}
}

// RemoveRoom deletes a room by id.
func (p *Plan) RemoveRoom(id string) {
	for i, r := range p.Rooms {
		if r.ID == id {
			p.Rooms = append(p.Rooms[:i], p.Rooms[i+1:]...)
			return
		}
	}
}

// RemoveDrain deletes a floor drain by id.
func (p *Plan) RemoveDrain(id string) {
	for i, d := range p.Drains {
		if d.ID == id {
			p.Drains = append(p.Drains[:i], p.Drains[i+1:]...)
			return
		}
	}
}

// RemoveCupola deletes a cupola by id.
func (p *Plan) RemoveCupola(id string) {
	for i, c := range p.Cupolas {
		if c.ID == id {
			p.Cupolas = append(p.Cupolas[:i], p.Cupolas[i+1:]...)
			return
		}
	}
}

// SetFootprint replaces the footprint dimensions. Entities keep their
// coordinates; the caller is responsible for recomputing the viewport.
func (p *Plan) SetFootprint(fp Footprint) {
	p.Footprint = fp
}
