package viewer

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"wireframe/internal/config"
	"wireframe/internal/geom"
	"wireframe/internal/meshio"
	"wireframe/internal/render"
	"wireframe/internal/scene"
)

// NewWorld builds the scene described by cfg: the platonic solids plus any
// configured glTF meshes, which all return on reset.
func NewWorld(cfg config.Config, log *zap.Logger) (*scene.World, error) {
	prototypes := geom.PlatonicSolids(cfg.Scene.SolidScale)
	for _, m := range cfg.Meshes {
		bodies, err := meshio.LoadGLTF(m.Path, m.Scale, mgl64.Vec3(m.Offset))
		if err != nil {
			return nil, fmt.Errorf("load mesh: %w", err)
		}
		log.Info("mesh loaded", zap.String("path", m.Path), zap.Int("bodies", len(bodies)))
		prototypes = append(prototypes, bodies...)
	}

	return scene.New(scene.Options{
		Prototypes:     prototypes,
		DeltaAngle:     cfg.Motion.DeltaAngle,
		DeltaDistance:  cfg.Motion.DeltaDistance,
		Mode:           cfg.Mode(),
		ShowBodyAxes:   cfg.Scene.ShowBodyAxes,
		WorldRayLength: cfg.Scene.WorldRayLength,
		BodyRayLength:  cfg.Scene.BodyRayLength,
		Renderer:       render.NewRenderer(cfg.Projector(), render.DefaultPalette),
		HUD:            cfg.Scene.HUD,
		Logger:         log,
	}), nil
}
