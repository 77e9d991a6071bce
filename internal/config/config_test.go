package config

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leterax/go-pyramid/pkg/camera"
	"github.com/leterax/go-pyramid/pkg/input"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	l := NewLoader(t.TempDir())

	cfg, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, "", l.ConfigFile())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, WindowConfig{Width: 640, Height: 480, Title: "Pyramid", VSync: true}, cfg.Window)
	assert.Equal(t, "data/textures/pyramid.png", cfg.Assets.Texture)
	assert.Equal(t, mgl32.Vec3{0, 1, 3}, cfg.Camera.StartPosition())
	assert.InDelta(t, math.Pi, cfg.Camera.Yaw, 1e-6)

	tun := cfg.Camera.Tunables()
	def := camera.DefaultTunables()
	assert.InDelta(t, def.FOV, tun.FOV, 1e-6)
	assert.Equal(t, def.Near, tun.Near)
	assert.Equal(t, def.Far, tun.Far)
	assert.Equal(t, def.MoveSpeed, tun.MoveSpeed)
	assert.Equal(t, def.LookSpeed, tun.LookSpeed)
	assert.Equal(t, def.PitchMax, tun.PitchMax)

	bindings, err := cfg.KeyBindings()
	require.NoError(t, err)
	assert.Equal(t, input.DefaultBindings(), bindings)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
logLevel: debug
window:
  width: 1280
  height: 720
  title: Demo
camera:
  start: [1, 2, 3]
  fov: 60
  moveSpeed: 8
bindings:
  forward: up
  back: down
  left: left
  right: right
`)

	l := NewLoader(dir)
	cfg, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, FileName, filepath.Base(l.ConfigFile()))
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, "Demo", cfg.Window.Title)
	assert.True(t, cfg.Window.VSync)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, cfg.Camera.StartPosition())
	assert.InDelta(t, math.Pi/3, cfg.Camera.Tunables().FOV, 1e-6)
	assert.Equal(t, float32(8), cfg.Camera.MoveSpeed)
	assert.Equal(t, float32(camera.DefaultLookSpeed), cfg.Camera.LookSpeed)

	bindings, err := cfg.KeyBindings()
	require.NoError(t, err)
	assert.Equal(t, input.Bindings{
		input.KeyUp:    input.MoveForward,
		input.KeyDown:  input.MoveBack,
		input.KeyLeft:  input.MoveLeft,
		input.KeyRight: input.MoveRight,
	}, bindings)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("PYRAMID_CAMERA_MOVESPEED", "12.5")
	t.Setenv("PYRAMID_LOGLEVEL", "warn")

	cfg, err := NewLoader(t.TempDir()).Load()
	require.NoError(t, err)

	assert.Equal(t, float32(12.5), cfg.Camera.MoveSpeed)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "window: [unclosed")

	_, err := NewLoader(dir).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"zero width", "window: {width: 0}", "window size"},
		{"short start", "camera: {start: [1, 2]}", "camera.start"},
		{"far before near", "camera: {near: 10, far: 5}", "near < far"},
		{"negative speed", "camera: {lookSpeed: -1}", "speeds"},
		{"pitch at vertical", "camera: {pitchMax: 1.6}", "pitchMax"},
		{"fov", "camera: {fov: 180}", "camera.fov"},
		{"bad key", "bindings: {forward: F13}", "unknown key name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)

			_, err := NewLoader(dir).Load()
			require.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestHandleChange(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "camera: {moveSpeed: 4}")

	l := NewLoader(dir)
	_, err := l.Load()
	require.NoError(t, err)

	var logs bytes.Buffer
	logger := zerolog.New(&logs)
	var got []Config
	onChange := func(c Config) { got = append(got, c) }

	writeConfig(t, dir, "camera: {moveSpeed: 9}")
	require.NoError(t, l.v.ReadInConfig())
	l.handleChange(logger, fsnotify.Event{Name: path, Op: fsnotify.Write}, onChange)

	require.Len(t, got, 1)
	assert.Equal(t, float32(9), got[0].Camera.MoveSpeed)
	assert.Contains(t, logs.String(), "Reloaded config")

	// Invalid edits are dropped.
	writeConfig(t, dir, "camera: {moveSpeed: -1}")
	require.NoError(t, l.v.ReadInConfig())
	l.handleChange(logger, fsnotify.Event{Name: path, Op: fsnotify.Write}, onChange)
	assert.Len(t, got, 1)
	assert.Contains(t, logs.String(), "Ignoring config change")

	// Events other than writes are ignored.
	l.handleChange(logger, fsnotify.Event{Name: path, Op: fsnotify.Chmod}, onChange)
	assert.Len(t, got, 1)
}

func TestWatchWithoutFileIsNoop(t *testing.T) {
	l := NewLoader(t.TempDir())
	_, err := l.Load()
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		l.Watch(zerolog.Nop(), func(Config) { t.Fatal("unexpected change") })
	})
}
