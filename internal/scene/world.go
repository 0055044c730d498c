// Package scene owns the bodies and the world frame and advances them one
// tick at a time.
package scene

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"wireframe/internal/geom"
	"wireframe/internal/input"
	"wireframe/internal/render"
)

const (
	DefaultDeltaAngle     = 0.05
	DefaultDeltaDistance  = 5.0
	DefaultSolidScale     = 50.0
	DefaultWorldRayLength = 400.0
	DefaultBodyRayLength  = 100.0
)

type Options struct {
	// Prototypes is the canonical body set restored on reset. When nil the
	// platonic solids at DefaultSolidScale are used.
	Prototypes []*geom.Body

	DeltaAngle    float64
	DeltaDistance float64

	Mode         Mode
	ShowBodyAxes bool

	WorldRayLength float64
	BodyRayLength  float64

	Renderer *render.Renderer
	HUD      bool
	Logger   *zap.Logger
}

// World is the scene state. It is not safe for concurrent use; the frame
// loop owns it.
type World struct {
	prototypes []*geom.Body
	bodies     []*geom.Body
	frame      geom.Frame

	mode        Mode
	axesVisible bool

	deltaAngle    float64
	deltaDistance float64

	worldRay, bodyRay float64
	renderer          *render.Renderer
	hud               bool
	log               *zap.Logger
}

func New(opts Options) *World {
	if opts.Prototypes == nil {
		opts.Prototypes = geom.PlatonicSolids(DefaultSolidScale)
	}
	if opts.DeltaAngle == 0 {
		opts.DeltaAngle = DefaultDeltaAngle
	}
	if opts.DeltaDistance == 0 {
		opts.DeltaDistance = DefaultDeltaDistance
	}
	if opts.WorldRayLength == 0 {
		opts.WorldRayLength = DefaultWorldRayLength
	}
	if opts.BodyRayLength == 0 {
		opts.BodyRayLength = DefaultBodyRayLength
	}
	if opts.Renderer == nil {
		opts.Renderer = render.NewRenderer(nil, render.DefaultPalette)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	prototypes := make([]*geom.Body, len(opts.Prototypes))
	for i, b := range opts.Prototypes {
		prototypes[i] = b.Clone()
	}

	w := &World{
		prototypes:    prototypes,
		mode:          opts.Mode,
		axesVisible:   opts.ShowBodyAxes,
		deltaAngle:    opts.DeltaAngle,
		deltaDistance: opts.DeltaDistance,
		worldRay:      opts.WorldRayLength,
		bodyRay:       opts.BodyRayLength,
		renderer:      opts.Renderer,
		hud:           opts.HUD,
		log:           opts.Logger,
	}
	w.restore()
	return w
}

func (w *World) Bodies() []*geom.Body { return w.bodies }

func (w *World) Frame() geom.Frame { return w.frame }

func (w *World) Mode() Mode { return w.mode }

func (w *World) AxesVisible() bool { return w.axesVisible }

func (w *World) restore() {
	w.bodies = make([]*geom.Body, len(w.prototypes))
	for i, p := range w.prototypes {
		b := p.Clone()
		b.SetAxesVisible(w.axesVisible)
		w.bodies[i] = b
	}
	w.frame = geom.DefaultFrame()
}

// Reset replaces the bodies and the world frame with the canonical layout.
// The rotation mode and the axes visibility are kept.
func (w *World) Reset() {
	w.restore()
	w.log.Info("scene reset", zap.Int("bodies", len(w.bodies)))
}

// SetMode selects m. It reports whether the mode changed.
func (w *World) SetMode(m Mode) bool {
	if m == w.mode {
		return false
	}
	w.mode = m
	w.log.Info("rotation mode changed", zap.Stringer("mode", m))
	return true
}

func (w *World) CycleMode() {
	w.SetMode(w.mode.next())
}

// ToggleAxes flips the local axes display on every body.
func (w *World) ToggleAxes() {
	w.axesVisible = !w.axesVisible
	for _, b := range w.bodies {
		b.SetAxesVisible(w.axesVisible)
	}
	w.log.Info("body axes toggled", zap.Bool("visible", w.axesVisible))
}

type contribution struct {
	pos, neg input.Command
	basis    func(geom.Frame) mgl64.Vec3
}

func frameX(f geom.Frame) mgl64.Vec3 { return f.X }
func frameY(f geom.Frame) mgl64.Vec3 { return f.Y }
func frameZ(f geom.Frame) mgl64.Vec3 { return f.Z }

var (
	rotations = []contribution{
		{input.RotateXPos, input.RotateXNeg, frameX},
		{input.RotateYPos, input.RotateYNeg, frameY},
		{input.RotateZPos, input.RotateZNeg, frameZ},
	}
	translations = []contribution{
		{input.TranslateXPos, input.TranslateXNeg, frameX},
		{input.TranslateYPos, input.TranslateYNeg, frameY},
		{input.TranslateZPos, input.TranslateZNeg, frameZ},
	}
)

func (w *World) sum(s input.Snapshot, cs []contribution) mgl64.Vec3 {
	var v mgl64.Vec3
	for _, c := range cs {
		if s.Held(c.pos) {
			v = v.Add(c.basis(w.frame))
		}
		if s.Held(c.neg) {
			v = v.Sub(c.basis(w.frame))
		}
	}
	return geom.Direction(v)
}

// RotationVector is the rotation axis requested by s, expressed in the
// world frame's current basis. It is zero or unit length.
func (w *World) RotationVector(s input.Snapshot) mgl64.Vec3 {
	return w.sum(s, rotations)
}

// TranslationVector is the translation direction requested by s, expressed
// in the world frame's current basis. It is zero or unit length.
func (w *World) TranslationVector(s input.Snapshot) mgl64.Vec3 {
	return w.sum(s, translations)
}

// Tick advances the scene by one step. Motion vectors are derived from the
// world frame as it stood when s was sampled, then discrete commands apply,
// then every body moves. quit reports a quit request; the tick still
// completes.
func (w *World) Tick(s input.Snapshot) (quit bool) {
	axis := w.RotationVector(s)
	direction := w.TranslationVector(s)

	w.command(s)
	w.Step(axis, direction)

	return s.Pressed(input.Quit) || s.Held(input.Quit)
}

func (w *World) command(s input.Snapshot) {
	if s.Pressed(input.Reset) {
		w.Reset()
	}
	switch {
	case s.Pressed(input.ModeLocal):
		w.SetMode(Local)
	case s.Pressed(input.ModeGlobal):
		w.SetMode(Global)
	case s.Pressed(input.ModeCoordSystem):
		w.SetMode(CoordSystem)
	case s.Pressed(input.ModeCycle):
		w.CycleMode()
	}
	if s.Pressed(input.ToggleAxes) {
		w.ToggleAxes()
	}
}

// Step applies one rotation step about axis and one translation step along
// direction to every body, and to the world frame in CoordSystem mode.
func (w *World) Step(axis, direction mgl64.Vec3) {
	for _, b := range w.bodies {
		b.Rotate(w.mode.pivot(b, w.frame), axis, w.deltaAngle)
		b.Translate(direction, w.deltaDistance)
	}
	if w.mode.movesWorld() {
		w.frame.Rotate(w.frame.Location, axis, w.deltaAngle)
		w.frame.Translate(direction, w.deltaDistance)
	}
}

// Draw clears s and draws every body followed by the world frame. It does
// not present.
func (w *World) Draw(s render.Surface) error {
	if err := s.Clear(w.renderer.Palette.Background); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	for _, b := range w.bodies {
		if err := w.renderer.DrawBody(s, b, w.bodyRay); err != nil {
			return err
		}
	}
	if err := w.renderer.DrawFrame(s, w.frame, w.worldRay); err != nil {
		return fmt.Errorf("world frame: %w", err)
	}
	if ts, ok := s.(render.TextSurface); ok && w.hud {
		return w.drawHUD(ts, w.renderer.Palette.Text)
	}
	return nil
}

func (w *World) drawHUD(ts render.TextSurface, c color.RGBA) error {
	text := fmt.Sprintf("mode: %s  bodies: %d", w.mode, len(w.bodies))
	if err := ts.DrawText(8, 16, text, c); err != nil {
		return fmt.Errorf("hud: %w", err)
	}
	return nil
}
