package core

import (
	"strings"

	"github.com/paulmach/orb"
)

// FloorDrain is a drainage channel in the slab. Pos is authoritative
// once the drain has been placed; for legacy or never-placed records
// the free-text Location drives a best-effort default layout.
type FloorDrain struct {
	ID          string
	LengthFt    float64
	Orientation DrainOrientation
	Location    string
	Pos         *orb.Point
}

// Segment returns the drain's drawn endpoints for a footprint, using
// the explicit position when present and the location heuristic
// otherwise. idx offsets unplaced duplicates so they do not overlap.
func (d *FloorDrain) Segment(fp Footprint, idx int) (orb.Point, orb.Point) {
	center := d.heuristicCenter(fp, idx)
	if d.Pos != nil {
		center = *d.Pos
	}

	half := d.LengthFt / 2
	if d.Orientation == Vertical {
		return orb.Point{center[0], center[1] - half}, orb.Point{center[0], center[1] + half}
	}
	return orb.Point{center[0] - half, center[1]}, orb.Point{center[0] + half, center[1]}
}

// heuristicCenter maps location text like "center", "north wall" or
// "south-east corner" onto an approximate footprint position.
func (d *FloorDrain) heuristicCenter(fp Footprint, idx int) orb.Point {
	loc := strings.ToLower(d.Location)
	x := fp.Width / 2
	y := fp.Length / 2

	switch {
	case strings.Contains(loc, "north"):
		y = fp.Length / 4
	case strings.Contains(loc, "south"):
		y = fp.Length * 3 / 4
	}
	switch {
	case strings.Contains(loc, "west"):
		x = fp.Width / 4
	case strings.Contains(loc, "east"):
		x = fp.Width * 3 / 4
	}

	// Stagger unplaced drains so duplicates stay visible.
	y += float64(idx) * 2
	return orb.Point{x, y}
}

// Cupola is a roof-level annotation. It has no drawing coordinates:
// cupolas are listed and counted, not placed on the slab.
type Cupola struct {
	ID          string
	Size        string // free text, e.g. `24"x24"`
	Kind        string
	WeatherVane bool
	Location    string
}
