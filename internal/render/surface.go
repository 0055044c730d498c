// Package render draws frames and bodies onto a line-drawing surface.
package render

import (
	"image/color"

	"wireframe/internal/projection"
)

// Surface is the drawing target. Errors are surface failures and are not
// recoverable.
type Surface interface {
	Clear(c color.RGBA) error
	DrawLine(a, b projection.Point, c color.RGBA) error
	Present() error
	// Size reports the current viewport size in pixels.
	Size() (width, height int)
}

// TextSurface is implemented by surfaces that can print a status line.
type TextSurface interface {
	DrawText(x, y int, text string, c color.RGBA) error
}

// Palette holds the colors used for a frame.
type Palette struct {
	Background color.RGBA
	Edge       color.RGBA
	X, Y, Z    color.RGBA
	Text       color.RGBA
}

// DefaultPalette draws white edges on black with red, green and blue rays.
var DefaultPalette = Palette{
	Background: color.RGBA{A: 0xff},
	Edge:       color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	X:          color.RGBA{R: 0xff, A: 0xff},
	Y:          color.RGBA{G: 0xff, A: 0xff},
	Z:          color.RGBA{B: 0xff, A: 0xff},
	Text:       color.RGBA{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff},
}
