// Package viewer runs the frame loop: one scene tick between successive
// presentations of the drawing surface.
package viewer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"wireframe/internal/input"
	"wireframe/internal/render"
	"wireframe/internal/scene"
)

// Backend is a window: a surface plus a source of key state.
type Backend interface {
	render.Surface
	// Poll processes pending window events and returns the held commands.
	Poll() input.Set
	ShouldClose() bool
}

type Viewer struct {
	world *scene.World
	log   *zap.Logger
	edges input.Edges
	ticks uint64
}

func New(world *scene.World, log *zap.Logger) *Viewer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Viewer{world: world, log: log}
}

func (v *Viewer) World() *scene.World { return v.world }

// Ticks is the number of completed ticks.
func (v *Viewer) Ticks() uint64 { return v.ticks }

// Tick advances the world with one input snapshot.
func (v *Viewer) Tick(s input.Snapshot) (quit bool) {
	quit = v.world.Tick(s)
	v.ticks++
	return quit
}

// Draw renders the world onto s without presenting.
func (v *Viewer) Draw(s render.Surface) error {
	if err := v.world.Draw(s); err != nil {
		return fmt.Errorf("draw tick %d: %w", v.ticks, err)
	}
	return nil
}

// Frame samples input once, ticks, draws and presents.
func (v *Viewer) Frame(b Backend) (quit bool, err error) {
	snap := v.edges.Update(b.Poll())
	quit = v.Tick(snap)
	if err := v.Draw(b); err != nil {
		return quit, err
	}
	if err := b.Present(); err != nil {
		return quit, fmt.Errorf("present: %w", err)
	}
	return quit, nil
}

// Run drives frames until the window closes, a quit command arrives or ctx
// is cancelled. Each is honored only between frames. Surface errors end the
// loop and are returned.
func (v *Viewer) Run(ctx context.Context, b Backend) error {
	v.log.Info("viewer started", zap.Stringer("mode", v.world.Mode()), zap.Int("bodies", len(v.world.Bodies())))
	defer func() {
		v.log.Info("viewer stopped", zap.Uint64("ticks", v.ticks))
	}()

	for !b.ShouldClose() {
		if ctx.Err() != nil {
			return nil
		}
		quit, err := v.Frame(b)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
	return nil
}
