package core

import (
	"github.com/paulmach/orb"

	"github.com/barnwright/plansketch/internal/geom"
)

// Wall is an interior partition wall. Start and End are model feet and
// are never equal: zero-length drags are discarded before a Wall is
// created.
type Wall struct {
	ID    string
	Start orb.Point
	End   orb.Point
}

// Length returns the wall length in feet.
func (w *Wall) Length() float64 {
	return geom.SegmentLength(w.Start, w.End)
}

// Horizontal reports whether the wall runs more along X than Y. Used to
// infer the rotation of openings snapped onto it.
func (w *Wall) Horizontal() bool {
	dx := w.End[0] - w.Start[0]
	dy := w.End[1] - w.Start[1]
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx >= dy
}
