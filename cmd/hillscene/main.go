// Command hillscene renders a procedurally generated hill landscape with a
// skybox, a textured vehicle and a spinning cube.
package main

import (
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/Faultbox/hillscene/internal/app"
	"github.com/Faultbox/hillscene/internal/config"
	"github.com/Faultbox/hillscene/internal/logger"
)

func init() {
	// OpenGL calls must come from the thread that created the context
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("=== Hill Scene ===",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("data", cfg.Scene.DataDir),
		zap.String("noise", cfg.Terrain.Noise),
	)
	logger.Debug("camera",
		zap.Float32("speed", cfg.Camera.Speed),
		zap.Float32("sensitivity", cfg.Camera.Sensitivity),
		zap.Float32s("position", cfg.Camera.Position[:]),
	)
	if cfg.Graphics.ScreenshotDir == "" {
		logger.Warn("no screenshot directory configured, F12 captures go to the working directory")
	}

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("startup failed", zap.Error(err))
		return 1
	}

	if err := a.Run(); err != nil {
		logger.Error("render loop failed", zap.Error(err))
		return 1
	}

	logger.Info("exiting")
	return 0
}
