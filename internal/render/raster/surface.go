// Package raster is a software drawing surface backed by an image.RGBA.
// It needs no window and is used for snapshots and tests.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"wireframe/internal/projection"
)

type Surface struct {
	img    *image.RGBA
	frames int
}

func New(width, height int) *Surface {
	return &Surface{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Resize replaces the backing image. The next draw call sees the new size.
func (s *Surface) Resize(width, height int) {
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

func (s *Surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Surface) Clear(c color.RGBA) error {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return nil
}

func (s *Surface) DrawLine(a, b projection.Point, c color.RGBA) error {
	if math.IsInf(a.X, 0) || math.IsInf(a.Y, 0) || math.IsInf(b.X, 0) || math.IsInf(b.Y, 0) {
		return nil
	}
	drawLine(s.img, a.X, a.Y, b.X, b.Y, c)
	return nil
}

// DrawText prints text with its baseline at y.
func (s *Surface) DrawText(x, y int, text string, c color.RGBA) error {
	d := font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
	return nil
}

// Present completes a frame. The image keeps its contents until the next Clear.
func (s *Surface) Present() error {
	s.frames++
	return nil
}

// Frames is the number of presented frames.
func (s *Surface) Frames() int { return s.frames }

func (s *Surface) Image() *image.RGBA { return s.img }

func (s *Surface) WritePNG(w io.Writer) error {
	if err := png.Encode(w, s.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
