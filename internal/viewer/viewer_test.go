package viewer

import (
	"context"
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wireframe/internal/input"
	"wireframe/internal/projection"
	"wireframe/internal/render/raster"
	"wireframe/internal/scene"
)

// scripted replays one held set per frame on a raster surface.
type scripted struct {
	*raster.Surface
	frames   []input.Set
	polled   int
	closeAt  int
	failDraw bool
}

func (s *scripted) Poll() input.Set {
	var held input.Set
	if s.polled < len(s.frames) {
		held = s.frames[s.polled]
	}
	s.polled++
	return held
}

func (s *scripted) ShouldClose() bool { return s.closeAt > 0 && s.polled >= s.closeAt }

func (s *scripted) DrawLine(a, b projection.Point, c color.RGBA) error {
	if s.failDraw {
		return errors.New("surface lost")
	}
	return s.Surface.DrawLine(a, b, c)
}

func TestViewer_RunUntilQuit(t *testing.T) {
	b := &scripted{
		Surface: raster.New(200, 200),
		frames: []input.Set{
			input.SetOf(input.RotateXPos),
			input.SetOf(input.RotateXPos),
			input.SetOf(input.ModeGlobal),
			input.SetOf(input.Quit),
			input.SetOf(input.RotateYPos),
		},
	}
	v := New(scene.New(scene.Options{}), nil)

	require.NoError(t, v.Run(context.Background(), b))
	assert.Equal(t, uint64(4), v.Ticks())
	assert.Equal(t, 4, b.Frames(), "the quitting tick is still drawn and presented")
	assert.Equal(t, scene.Global, v.World().Mode())
}

func TestViewer_RunStopsOnClose(t *testing.T) {
	b := &scripted{Surface: raster.New(100, 100), closeAt: 3}
	v := New(scene.New(scene.Options{}), nil)

	require.NoError(t, v.Run(context.Background(), b))
	assert.Equal(t, uint64(3), v.Ticks())
}

func TestViewer_RunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	v := New(scene.New(scene.Options{}), nil)

	require.NoError(t, v.Run(ctx, &scripted{Surface: raster.New(10, 10)}))
	assert.Zero(t, v.Ticks())
}

func TestViewer_SurfaceErrorsAreFatal(t *testing.T) {
	b := &scripted{Surface: raster.New(100, 100), failDraw: true}
	v := New(scene.New(scene.Options{}), nil)

	err := v.Run(context.Background(), b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "surface lost")
	assert.Equal(t, uint64(1), v.Ticks())
	assert.Zero(t, b.Frames())
}

func TestViewer_PressFiresOncePerKeyDown(t *testing.T) {
	b := &scripted{
		Surface: raster.New(100, 100),
		frames: []input.Set{
			input.SetOf(input.ToggleAxes),
			input.SetOf(input.ToggleAxes),
			input.SetOf(input.ToggleAxes),
		},
	}
	v := New(scene.New(scene.Options{}), nil)
	for n := 0; n < 3; n++ {
		_, err := v.Frame(b)
		require.NoError(t, err)
	}
	assert.True(t, v.World().AxesVisible())
}

func TestViewer_ResizeTakesEffectNextFrame(t *testing.T) {
	b := &scripted{Surface: raster.New(100, 100)}
	v := New(scene.New(scene.Options{}), nil)

	_, err := v.Frame(b)
	require.NoError(t, err)

	b.Resize(300, 50)
	_, err = v.Frame(b)
	require.NoError(t, err)

	w, h := b.Size()
	assert.Equal(t, 300, w)
	assert.Equal(t, 50, h)
	// world frame origin is drawn at the new centre
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, b.Image().RGBAAt(200, 25))
}
