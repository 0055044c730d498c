package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"wireframe/internal/config"
	"wireframe/internal/input"
	"wireframe/internal/logging"
	"wireframe/internal/render/glsurface"
	"wireframe/internal/viewer"
)

// window binds the configured keys to a GL surface.
type window struct {
	*glsurface.Surface
	keys map[input.Command]glfw.Key
}

func (w window) Poll() input.Set { return w.Surface.Poll(w.keys) }

func main() {
	// GLFW and GL calls must stay on the main thread.
	runtime.LockOSThread()

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

	keys, err := input.Resolve(cfg.Bindings(), glsurface.Keys)
	if err != nil {
		logger.Fatal("invalid key bindings", zap.Error(err))
	}

	world, err := viewer.NewWorld(cfg, logger)
	if err != nil {
		logger.Fatal("failed to build scene", zap.Error(err))
	}

	surface, err := glsurface.Open(glsurface.Options{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		VSync:  cfg.Window.VSync,
	})
	if err != nil {
		logger.Fatal("failed to open window", zap.Error(err))
	}
	defer surface.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := viewer.New(world, logger).Run(ctx, window{Surface: surface, keys: keys}); err != nil {
		surface.Close()
		logger.Fatal("display failed", zap.Error(err))
	}
}
