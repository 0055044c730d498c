package render

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"

	"wireframe/internal/geom"
	"wireframe/internal/projection"
)

// Renderer projects geometry and issues line calls on a surface.
type Renderer struct {
	Projector projection.Projector
	Palette   Palette
}

func NewRenderer(p projection.Projector, palette Palette) *Renderer {
	if p == nil {
		p = projection.Func(projection.Orthographic)
	}
	return &Renderer{Projector: p, Palette: palette}
}

func (r *Renderer) project(s Surface, p mgl64.Vec3) projection.Point {
	w, h := s.Size()
	return r.Projector.Project(p, float64(w), float64(h))
}

// DrawFrame draws the three basis rays of f, each rayLength long, from its
// location.
func (r *Renderer) DrawFrame(s Surface, f geom.Frame, rayLength float64) error {
	start := r.project(s, f.Location)
	colors := [3]color.RGBA{r.Palette.X, r.Palette.Y, r.Palette.Z}
	for i, basis := range f.Basis() {
		end := r.project(s, f.Location.Add(basis.Mul(rayLength)))
		if !start.Visible() || !end.Visible() {
			continue
		}
		if err := s.DrawLine(start, end, colors[i]); err != nil {
			return fmt.Errorf("draw frame ray %d: %w", i, err)
		}
	}
	return nil
}

// DrawBody draws every edge of b and, when its axes are visible, its local
// frame with rays rayLength long. Lines with a culled endpoint are skipped.
func (r *Renderer) DrawBody(s Surface, b *geom.Body, rayLength float64) error {
	if b.AxesVisible() {
		if err := r.DrawFrame(s, b.Frame(), rayLength); err != nil {
			return fmt.Errorf("body %s: %w", b.Name(), err)
		}
	}

	vertices := b.Vertices()
	points := make([]projection.Point, len(vertices))
	for i, v := range vertices {
		points[i] = r.project(s, v)
	}
	for _, e := range b.Edges() {
		from, to := points[e[0]], points[e[1]]
		if !from.Visible() || !to.Visible() {
			continue
		}
		if err := s.DrawLine(from, to, r.Palette.Edge); err != nil {
			return fmt.Errorf("body %s edge %v: %w", b.Name(), e, err)
		}
	}
	return nil
}
