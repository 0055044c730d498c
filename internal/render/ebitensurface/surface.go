// Package ebitensurface draws lines onto an ebiten screen image.
package ebitensurface

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"wireframe/internal/projection"
)

// debugGlyphHeight is the line height of ebitenutil's debug font.
const debugGlyphHeight = 16

// Surface wraps the screen passed to an ebiten Draw call. It is only valid
// for the duration of that call.
type Surface struct {
	screen      *ebiten.Image
	strokeWidth float32
}

func New(screen *ebiten.Image) *Surface {
	return &Surface{screen: screen, strokeWidth: 1}
}

func (s *Surface) Size() (int, int) {
	b := s.screen.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Surface) Clear(c color.RGBA) error {
	s.screen.Fill(c)
	return nil
}

func (s *Surface) DrawLine(a, b projection.Point, c color.RGBA) error {
	vector.StrokeLine(s.screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), s.strokeWidth, c, true)
	return nil
}

// DrawText prints with the debug font; y is the baseline. The debug font
// has a fixed color.
func (s *Surface) DrawText(x, y int, text string, _ color.RGBA) error {
	ebitenutil.DebugPrintAt(s.screen, text, x, y-debugGlyphHeight+4)
	return nil
}

// Present is a no-op: ebiten presents after Draw returns.
func (s *Surface) Present() error { return nil }
