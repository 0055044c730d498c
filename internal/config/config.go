// Package config loads the viewer configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"wireframe/internal/input"
	"wireframe/internal/projection"
	"wireframe/internal/scene"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Window     Window            `yaml:"window"`
	Motion     Motion            `yaml:"motion"`
	Scene      Scene             `yaml:"scene"`
	Projection Projection        `yaml:"projection"`
	Log        Log               `yaml:"log"`
	Keys       map[string]string `yaml:"keys,omitempty"`
	Meshes     []Mesh            `yaml:"meshes,omitempty"`
}

type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	VSync  bool   `yaml:"vsync"`
}

type Motion struct {
	DeltaAngle    float64 `yaml:"delta_angle"`
	DeltaDistance float64 `yaml:"delta_distance"`
}

type Scene struct {
	SolidScale     float64 `yaml:"solid_scale"`
	ShowBodyAxes   bool    `yaml:"show_body_axes"`
	WorldRayLength float64 `yaml:"world_ray_length"`
	BodyRayLength  float64 `yaml:"body_ray_length"`
	Mode           string  `yaml:"mode"`
	HUD            bool    `yaml:"hud"`
}

type Projection struct {
	Kind           string  `yaml:"kind"`
	FOV            float64 `yaml:"fov"`
	ViewerDistance float64 `yaml:"viewer_distance"`
}

type Log struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

// Mesh is an extra body imported from a glTF file.
type Mesh struct {
	Path   string     `yaml:"path"`
	Scale  float64    `yaml:"scale"`
	Offset [3]float64 `yaml:"offset"`
}

func Default() Config {
	return Config{
		Window: Window{Title: "Wireframe Mode", Width: 800, Height: 800, VSync: true},
		Motion: Motion{
			DeltaAngle:    scene.DefaultDeltaAngle,
			DeltaDistance: scene.DefaultDeltaDistance,
		},
		Scene: Scene{
			SolidScale:     scene.DefaultSolidScale,
			ShowBodyAxes:   true,
			WorldRayLength: scene.DefaultWorldRayLength,
			BodyRayLength:  scene.DefaultBodyRayLength,
			Mode:           scene.Local.String(),
			HUD:            true,
		},
		Projection: Projection{Kind: "orthographic", FOV: 300, ViewerDistance: 400},
		Log:        Log{Level: "info", Encoding: "console"},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads YAML from r over the defaults and validates the result.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return invalid("window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Motion.DeltaAngle <= 0 || c.Motion.DeltaDistance <= 0 {
		return invalid("motion steps must be positive")
	}
	if c.Scene.SolidScale <= 0 {
		return invalid("solid_scale %v", c.Scene.SolidScale)
	}
	if c.Scene.WorldRayLength <= 0 || c.Scene.BodyRayLength <= 0 {
		return invalid("ray lengths must be positive")
	}
	if _, err := scene.ParseMode(c.Scene.Mode); err != nil {
		return invalid("%v", err)
	}
	if _, err := projection.ByName(c.Projection.Kind, c.Projection.FOV, c.Projection.ViewerDistance); err != nil {
		return invalid("%v", err)
	}
	if c.Projection.Kind == "perspective" && (c.Projection.FOV <= 0 || c.Projection.ViewerDistance <= 0) {
		return invalid("perspective needs positive fov and viewer_distance")
	}
	if _, err := input.ParseBindings(c.Keys); err != nil {
		return invalid("%v", err)
	}
	for i, m := range c.Meshes {
		if m.Path == "" {
			return invalid("mesh %d: empty path", i)
		}
		if m.Scale <= 0 {
			return invalid("mesh %d (%s): scale %v", i, m.Path, m.Scale)
		}
	}
	return nil
}

// Mode returns the parsed initial rotation mode.
func (c Config) Mode() scene.Mode {
	m, _ := scene.ParseMode(c.Scene.Mode)
	return m
}

// Projector returns the configured projection strategy.
func (c Config) Projector() projection.Projector {
	p, err := projection.ByName(c.Projection.Kind, c.Projection.FOV, c.Projection.ViewerDistance)
	if err != nil {
		return projection.Func(projection.Orthographic)
	}
	return p
}

// Bindings returns the key bindings with configured overrides applied.
func (c Config) Bindings() input.Bindings {
	b, err := input.ParseBindings(c.Keys)
	if err != nil {
		return input.DefaultBindings()
	}
	return b
}
