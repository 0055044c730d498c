package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wireframe/internal/input"
	"wireframe/internal/projection"
	"wireframe/internal/scene"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 0.05, cfg.Motion.DeltaAngle)
	assert.Equal(t, 5.0, cfg.Motion.DeltaDistance)
	assert.Equal(t, scene.Local, cfg.Mode())
	assert.Equal(t, input.DefaultBindings(), cfg.Bindings())
}

func TestDecode(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`
window:
  title: test
  width: 1024
motion:
  delta_angle: 0.1
scene:
  mode: coord_system
projection:
  kind: perspective
keys:
  quit: Q
meshes:
  - path: teapot.glb
    scale: 10
    offset: [0, 0, 50]
`))
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Window.Title)
	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 800, cfg.Window.Height, "unset fields keep their defaults")
	assert.Equal(t, 0.1, cfg.Motion.DeltaAngle)
	assert.Equal(t, 5.0, cfg.Motion.DeltaDistance)
	assert.Equal(t, scene.CoordSystem, cfg.Mode())
	assert.IsType(t, projection.Perspective{}, cfg.Projector())
	assert.Equal(t, "Q", cfg.Bindings()[input.Quit])
	require.Len(t, cfg.Meshes, 1)
	assert.Equal(t, [3]float64{0, 0, 50}, cfg.Meshes[0].Offset)
}

func TestDecode_Empty(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDecode_Invalid(t *testing.T) {
	tests := map[string]string{
		"zero width":        "window: {width: 0}",
		"negative step":     "motion: {delta_distance: -1}",
		"unknown mode":      "scene: {mode: orbit}",
		"unknown projector": "projection: {kind: fisheye}",
		"unknown command":   "keys: {fly: F}",
		"mesh scale":        "meshes: [{path: a.glb, scale: 0}]",
		"mesh path":         "meshes: [{scale: 1}]",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(doc))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}

	_, err := Decode(strings.NewReader("window: {colour: red}"))
	assert.Error(t, err, "unknown fields are rejected")
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "viewer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log: {level: debug, encoding: json}\n"), 0o600))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
