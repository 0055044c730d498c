package render

import (
	"errors"
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wireframe/internal/geom"
	"wireframe/internal/projection"
)

type line struct {
	a, b projection.Point
	c    color.RGBA
}

type recorder struct {
	w, h   int
	lines  []line
	failAt int
}

func (r *recorder) Clear(color.RGBA) error { return nil }
func (r *recorder) Present() error         { return nil }
func (r *recorder) Size() (int, int)       { return r.w, r.h }

func (r *recorder) DrawLine(a, b projection.Point, c color.RGBA) error {
	if r.failAt > 0 && len(r.lines)+1 == r.failAt {
		return errors.New("surface lost")
	}
	r.lines = append(r.lines, line{a, b, c})
	return nil
}

func TestRenderer_DrawFrame(t *testing.T) {
	rec := &recorder{w: 800, h: 600}
	r := NewRenderer(nil, DefaultPalette)

	require.NoError(t, r.DrawFrame(rec, geom.FrameAt(mgl64.Vec3{10, 20, 30}), 100))
	require.Len(t, rec.lines, 3)

	start := projection.Point{X: 410, Y: 320}
	assert.Equal(t, line{start, projection.Point{X: 510, Y: 320}, DefaultPalette.X}, rec.lines[0])
	assert.Equal(t, line{start, projection.Point{X: 410, Y: 420}, DefaultPalette.Y}, rec.lines[1])
	// z ray collapses onto the location under orthographic projection
	assert.Equal(t, line{start, start, DefaultPalette.Z}, rec.lines[2])
}

func TestRenderer_DrawBody(t *testing.T) {
	r := NewRenderer(projection.Func(projection.Orthographic), DefaultPalette)
	cube := geom.Cube(50, mgl64.Vec3{0, 0, 100})

	rec := &recorder{w: 800, h: 800}
	require.NoError(t, r.DrawBody(rec, cube, 100))
	assert.Len(t, rec.lines, 12)
	for _, l := range rec.lines {
		assert.Equal(t, DefaultPalette.Edge, l.c)
	}

	cube.SetAxesVisible(true)
	rec = &recorder{w: 800, h: 800}
	require.NoError(t, r.DrawBody(rec, cube, 100))
	assert.Len(t, rec.lines, 15)
	assert.Equal(t, DefaultPalette.X, rec.lines[0].c)
}

func TestRenderer_RequeriesSize(t *testing.T) {
	r := NewRenderer(nil, DefaultPalette)
	rec := &recorder{w: 100, h: 100}
	f := geom.DefaultFrame()

	require.NoError(t, r.DrawFrame(rec, f, 10))
	rec.w, rec.h = 300, 200
	require.NoError(t, r.DrawFrame(rec, f, 10))

	assert.Equal(t, projection.Point{X: 50, Y: 50}, rec.lines[0].a)
	assert.Equal(t, projection.Point{X: 150, Y: 100}, rec.lines[3].a)
}

func TestRenderer_PropagatesSurfaceErrors(t *testing.T) {
	r := NewRenderer(nil, DefaultPalette)
	rec := &recorder{w: 800, h: 800, failAt: 5}
	err := r.DrawBody(rec, geom.Tetrahedron(50, mgl64.Vec3{}), 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tetrahedron")
}

func TestRenderer_SkipsCulledLines(t *testing.T) {
	behindIsCulled := projection.Func(func(p mgl64.Vec3, w, h float64) projection.Point {
		if p.Z() < 0 {
			return projection.Culled
		}
		return projection.Orthographic(p, w, h)
	})
	r := NewRenderer(behindIsCulled, DefaultPalette)

	// the cube straddles z = 0: only the four edges of its front face survive
	rec := &recorder{w: 800, h: 800}
	require.NoError(t, r.DrawBody(rec, geom.Cube(50, mgl64.Vec3{}), 100))
	assert.Len(t, rec.lines, 4)
	for _, l := range rec.lines {
		assert.True(t, l.a.Visible() && l.b.Visible())
	}

	rec = &recorder{w: 800, h: 800}
	require.NoError(t, r.DrawFrame(rec, geom.FrameAt(mgl64.Vec3{0, 0, -1}), 100))
	assert.Empty(t, rec.lines)
}
