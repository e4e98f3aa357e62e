package core

import "github.com/paulmach/orb"

// Footprint is the exterior rectangle of the building in feet. The
// model-space rectangle spans [0,0]–[Width,Length]; the footprint is
// supplied by the caller and immutable for the editor's lifetime.
type Footprint struct {
	Width  float64 // X extent, feet
	Length float64 // Y extent, feet
}

// ExteriorEdge is one of the four sides of the footprint rectangle.
type ExteriorEdge struct {
	Name     string // "top", "bottom", "left", "right"
	Start    orb.Point
	End      orb.Point
	Rotation int // rotation an attached opening inherits, facing inward
}

// Edges enumerates the four exterior edges with the rotation an entity
// snapped onto that edge inherits. Bottom is y=Length (rotation 0),
// top is y=0 (180), left x=0 (90), right x=Width (270).
func (f Footprint) Edges() []ExteriorEdge {
	return []ExteriorEdge{
		{Name: "bottom", Start: orb.Point{0, f.Length}, End: orb.Point{f.Width, f.Length}, Rotation: 0},
		{Name: "top", Start: orb.Point{0, 0}, End: orb.Point{f.Width, 0}, Rotation: 180},
		{Name: "left", Start: orb.Point{0, 0}, End: orb.Point{0, f.Length}, Rotation: 90},
		{Name: "right", Start: orb.Point{f.Width, 0}, End: orb.Point{f.Width, f.Length}, Rotation: 270},
	}
}

// Center returns the midpoint of the footprint rectangle.
func (f Footprint) Center() orb.Point {
	return orb.Point{f.Width / 2, f.Length / 2}
}

// Contains reports whether p lies inside the footprint rectangle.
func (f Footprint) Contains(p orb.Point) bool {
	return p[0] >= 0 && p[0] <= f.Width && p[1] >= 0 && p[1] <= f.Length
}
