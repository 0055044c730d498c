package main

import (
	"flag"
	"log"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"wireframe/internal/config"
	"wireframe/internal/input"
	"wireframe/internal/logging"
	"wireframe/internal/render/ebitensurface"
	"wireframe/internal/viewer"
)

// Game ticks the scene once per drawn frame. Update may run several times
// between draws, so it only accumulates key state.
type Game struct {
	viewer *viewer.Viewer
	keys   map[input.Command]ebiten.Key
	log    *zap.Logger

	held, pressed input.Set
	quit          bool
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.held = input.Sample(g.keys, ebiten.IsKeyPressed)
	g.pressed |= input.Sample(g.keys, inpututil.IsKeyJustPressed)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.quit {
		return
	}
	g.quit = g.viewer.Tick(input.NewSnapshot(g.held, g.pressed))
	g.pressed = 0

	if err := g.viewer.Draw(ebitensurface.New(screen)); err != nil {
		g.log.Fatal("display failed", zap.Error(err))
	}
}

// Layout keeps one screen pixel per window unit so resizing changes the
// viewport.
func (g *Game) Layout(w, h int) (int, int) {
	return w, h
}

func main() {
	configPath := flag.String("config", "", "path to a YAML configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalln("failed to load config:", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		log.Fatalln("failed to build logger:", err)
	}
	logger = logger.With(zap.String("session", uuid.NewString()))
	defer func() { _ = logger.Sync() }()

	keys, err := input.Resolve(cfg.Bindings(), ebitensurface.Keys)
	if err != nil {
		logger.Fatal("invalid key bindings", zap.Error(err))
	}

	world, err := viewer.NewWorld(cfg, logger)
	if err != nil {
		logger.Fatal("failed to build scene", zap.Error(err))
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(cfg.Window.VSync)

	game := &Game{viewer: viewer.New(world, logger), keys: keys, log: logger}
	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("game loop failed", zap.Error(err))
	}
	logger.Info("viewer stopped", zap.Uint64("ticks", game.viewer.Ticks()))
}
