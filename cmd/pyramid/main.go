package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/leterax/go-pyramid/internal/config"
	"github.com/leterax/go-pyramid/internal/logging"
	"github.com/leterax/go-pyramid/pkg/render"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	// Parse command line flags
	configDir := flag.String("config", ".", "Directory containing "+config.FileName)
	watch := flag.Bool("watch", true, "Reload camera settings when the config file changes")
	flag.Parse()

	loader := config.NewLoader(*configDir)
	cfg, err := loader.Load()
	if err != nil {
		// No config yet, so log with defaults.
		logger := logging.New(os.Stderr, "info", true)
		logger.Fatal().Err(err).Str("dir", *configDir).Msg("Failed to load config")
	}

	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogPretty)
	if path := loader.ConfigFile(); path != "" {
		logger.Info().Str("path", path).Msg("Loaded config")
	} else {
		logger.Info().Msg("No config file found, using defaults")
	}

	renderer, err := render.NewRenderer(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize renderer")
	}

	if *watch {
		controller := renderer.Controller()
		loader.Watch(logger, func(c config.Config) {
			controller.ApplyTunables(c.Camera.Tunables())
		})
	}

	renderer.Run()
}
