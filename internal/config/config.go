package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/leterax/go-pyramid/pkg/camera"
	"github.com/leterax/go-pyramid/pkg/input"
)

// FileName is the config file looked up in the config directory
const FileName = "pyramid.yaml"

// ErrInvalid marks a config that was read but holds unusable values
var ErrInvalid = errors.New("invalid config")

// WindowConfig holds window settings
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
	VSync  bool   `mapstructure:"vsync"`
}

// AssetsConfig holds asset paths
type AssetsConfig struct {
	Texture string `mapstructure:"texture"`
}

// CameraConfig holds the starting pose and camera tunables. Angles other
// than FOV are radians.
type CameraConfig struct {
	Start     []float32 `mapstructure:"start"`
	Yaw       float32   `mapstructure:"yaw"`
	FOV       float32   `mapstructure:"fov"` // degrees
	Near      float32   `mapstructure:"near"`
	Far       float32   `mapstructure:"far"`
	MoveSpeed float32   `mapstructure:"moveSpeed"`
	LookSpeed float32   `mapstructure:"lookSpeed"`
	PitchMax  float32   `mapstructure:"pitchMax"`
}

// Config is the full application configuration
type Config struct {
	LogLevel  string            `mapstructure:"logLevel"`
	LogPretty bool              `mapstructure:"logPretty"`
	Window    WindowConfig      `mapstructure:"window"`
	Assets    AssetsConfig      `mapstructure:"assets"`
	Camera    CameraConfig      `mapstructure:"camera"`
	Bindings  map[string]string `mapstructure:"bindings"`
}

// StartPosition returns Camera.Start as a vector.
func (c CameraConfig) StartPosition() mgl32.Vec3 {
	var p mgl32.Vec3
	copy(p[:], c.Start)
	return p
}

// Tunables converts the config into camera parameters.
func (c CameraConfig) Tunables() camera.Tunables {
	return camera.Tunables{
		FOV:       mgl32.DegToRad(c.FOV),
		Near:      c.Near,
		Far:       c.Far,
		MoveSpeed: c.MoveSpeed,
		LookSpeed: c.LookSpeed,
		PitchMax:  c.PitchMax,
	}
}

// KeyBindings parses the configured movement bindings.
func (c Config) KeyBindings() (input.Bindings, error) {
	return input.ParseBindings(c.Bindings)
}

// Validate checks the values the camera and window rely on.
func (c Config) Validate() error {
	cam := c.Camera
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case len(cam.Start) != 3:
		return fmt.Errorf("%w: camera.start needs 3 components, got %d", ErrInvalid, len(cam.Start))
	case cam.FOV <= 0 || cam.FOV >= 180:
		return fmt.Errorf("%w: camera.fov %v out of (0, 180)", ErrInvalid, cam.FOV)
	case cam.Near <= 0 || cam.Far <= cam.Near:
		return fmt.Errorf("%w: camera planes need 0 < near < far, got %v/%v", ErrInvalid, cam.Near, cam.Far)
	case cam.MoveSpeed <= 0 || cam.LookSpeed <= 0:
		return fmt.Errorf("%w: camera speeds must be positive", ErrInvalid)
	case cam.PitchMax <= 0 || cam.PitchMax >= math.Pi/2:
		return fmt.Errorf("%w: camera.pitchMax %v out of (0, pi/2)", ErrInvalid, cam.PitchMax)
	}
	if _, err := c.KeyBindings(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Loader reads the config file from one directory
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a loader for FileName in configDir. Environment
// variables prefixed PYRAMID_ override file values, e.g.
// PYRAMID_CAMERA_MOVESPEED.
func NewLoader(configDir string) *Loader {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(strings.TrimSuffix(FileName, ".yaml"))
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix("PYRAMID")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("logPretty", true)

	v.SetDefault("window.width", 640)
	v.SetDefault("window.height", 480)
	v.SetDefault("window.title", "Pyramid")
	v.SetDefault("window.vsync", true)

	v.SetDefault("assets.texture", "data/textures/pyramid.png")

	v.SetDefault("camera.start", []float32{0, 1, 3})
	v.SetDefault("camera.yaw", math.Pi) // facing the origin down -Z
	v.SetDefault("camera.fov", 45.0)
	v.SetDefault("camera.near", camera.DefaultNear)
	v.SetDefault("camera.far", camera.DefaultFar)
	v.SetDefault("camera.moveSpeed", camera.DefaultMoveSpeed)
	v.SetDefault("camera.lookSpeed", camera.DefaultLookSpeed)
	v.SetDefault("camera.pitchMax", camera.DefaultPitchMax)

	v.SetDefault("bindings.forward", "W")
	v.SetDefault("bindings.back", "S")
	v.SetDefault("bindings.left", "A")
	v.SetDefault("bindings.right", "D")
}

// Load reads and validates the configuration. A missing file is not an
// error: defaults and environment overrides apply.
func (l *Loader) Load() (Config, error) {
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return l.decode()
}

func (l *Loader) decode() (Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ConfigFile returns the path of the file in use, or "" when running on
// defaults.
func (l *Loader) ConfigFile() string {
	return l.v.ConfigFileUsed()
}

// Watch re-reads the file whenever it is written and passes valid configs
// to onChange. Invalid edits are logged and ignored. onChange runs on the
// watcher goroutine. Watch does nothing when no file was loaded.
func (l *Loader) Watch(logger zerolog.Logger, onChange func(Config)) {
	if l.ConfigFile() == "" {
		return
	}
	l.v.OnConfigChange(func(e fsnotify.Event) {
		l.handleChange(logger, e, onChange)
	})
	l.v.WatchConfig()
}

func (l *Loader) handleChange(logger zerolog.Logger, e fsnotify.Event, onChange func(Config)) {
	if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
		return
	}
	cfg, err := l.decode()
	if err != nil {
		logger.Warn().Err(err).Str("path", e.Name).Msg("Ignoring config change")
		return
	}
	logger.Info().Str("path", e.Name).Msg("Reloaded config")
	onChange(cfg)
}
