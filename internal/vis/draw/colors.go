package draw

import "image/color"

// Palette for the drawing surface.
var (
	ColorOutline      = color.NRGBA{R: 200, G: 205, B: 210, A: 255}
	ColorWall         = color.NRGBA{R: 150, G: 160, B: 170, A: 255}
	ColorWallHover    = color.NRGBA{R: 190, G: 205, B: 220, A: 255}
	ColorWallSelected = color.NRGBA{R: 255, G: 200, B: 80, A: 255}
	ColorWallPreview  = color.NRGBA{R: 120, G: 180, B: 240, A: 200}
	ColorHandle       = color.NRGBA{R: 255, G: 200, B: 80, A: 255}
	ColorOpening      = color.NRGBA{R: 120, G: 190, B: 120, A: 255}
	ColorOpeningSel   = color.NRGBA{R: 255, G: 200, B: 80, A: 255}
	ColorRoom         = color.NRGBA{R: 110, G: 150, B: 210, A: 255}
	ColorRoomSel      = color.NRGBA{R: 255, G: 200, B: 80, A: 255}
	ColorDrain        = color.NRGBA{R: 90, G: 170, B: 200, A: 255}
	ColorGhost        = color.NRGBA{R: 180, G: 200, B: 220, A: 140}
	ColorLabel        = color.NRGBA{R: 210, G: 210, B: 215, A: 255}
	ColorDimension    = color.NRGBA{R: 160, G: 165, B: 170, A: 255}
)
