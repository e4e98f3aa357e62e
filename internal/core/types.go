// Package core defines the domain model for the floor-plan editor:
// the building footprint and the entities drawn on it.
package core

// OpeningType classifies wall openings.
type OpeningType int

const (
	Walkdoor OpeningType = iota
	Window
	OverheadDoor
	OtherOpening
)

func (t OpeningType) String() string {
	return [...]string{"walkdoor", "window", "overhead_door", "other"}[t]
}

// SwingDirection is the hinge side / swing of a walk door.
type SwingDirection int

const (
	SwingLeft SwingDirection = iota
	SwingRight
	SwingIn
	SwingOut
)

func (s SwingDirection) String() string {
	return [...]string{"left", "right", "in", "out"}[s]
}

// RoomKind classifies interior room-like areas.
type RoomKind int

const (
	KindRoom RoomKind = iota
	KindPorch
	KindLoft
)

func (k RoomKind) String() string {
	return [...]string{"room", "porch", "loft"}[k]
}

// DrainOrientation is the axis a floor drain runs along.
type DrainOrientation int

const (
	Horizontal DrainOrientation = iota
	Vertical
)

func (o DrainOrientation) String() string {
	return [...]string{"horizontal", "vertical"}[o]
}
