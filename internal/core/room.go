package core

import "github.com/paulmach/orb"

// Room is a room, porch or loft area. X/Y is the top-left corner in
// model feet. Width and Length are fixed at creation time; only the
// position and rotation change afterwards. Rooms are session-local and
// never persisted.
type Room struct {
	ID       string
	Kind     RoomKind
	X, Y     float64
	Width    float64
	Length   float64
	Rotation int
}

// Bound returns the unrotated bounding box of the room. Hit-testing
// uses this box as-is; rotation affects drawing only.
func (r *Room) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{r.X, r.Y},
		Max: orb.Point{r.X + r.Width, r.Y + r.Length},
	}
}

// MoveTo repositions the room's top-left corner.
func (r *Room) MoveTo(p orb.Point) {
	r.X = p[0]
	r.Y = p[1]
}
