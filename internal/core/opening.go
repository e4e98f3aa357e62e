package core

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/paulmach/orb"
)

// Default opening size in feet when SizeDetail cannot be parsed.
const (
	DefaultOpeningWidth  = 3
	DefaultOpeningHeight = 7
)

// Opening is a door, window or overhead door. Width and Height are the
// authoritative dimensions; SizeDetail carries the legacy free-text
// form (`3' × 7'`) for display and round-tripping. Pos is nil until the
// opening is first placed on the drawing. Rotation is always a multiple
// of 90.
type Opening struct {
	ID         string
	Type       OpeningType
	Width      float64
	Height     float64
	SizeDetail string
	Quantity   int
	Location   string
	WallSide   string // which logical side of the building, informational
	Swing      SwingDirection
	Pos        *orb.Point
	Rotation   int
}

// Placed reports whether the opening has a committed position.
func (o *Opening) Placed() bool {
	return o.Pos != nil
}

var sizeDetailRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\D+(\d+(?:\.\d+)?)`)

// ParseSizeDetail extracts width and height from a free-text size such
// as "3' × 7'" or "10x10". Anything that does not yield two numbers
// falls back to the 3×7 default; malformed text is a leniency, not an
// error.
func ParseSizeDetail(s string) (width, height float64) {
	m := sizeDetailRe.FindStringSubmatch(s)
	if m == nil {
		return DefaultOpeningWidth, DefaultOpeningHeight
	}
	w, err1 := strconv.ParseFloat(m[1], 64)
	h, err2 := strconv.ParseFloat(m[2], 64)
	if err1 != nil || err2 != nil || w <= 0 || h <= 0 {
		return DefaultOpeningWidth, DefaultOpeningHeight
	}
	return w, h
}

// FormatSizeDetail renders numeric dimensions in the legacy text form.
func FormatSizeDetail(width, height float64) string {
	return fmt.Sprintf("%s' × %s'", trimFloat(width), trimFloat(height))
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
