// Package app wires the window, the asset loader and the renderer into the scene viewer.
package app

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	appui "github.com/Faultbox/hillscene/internal/app/ui"
	"github.com/Faultbox/hillscene/internal/assets"
	"github.com/Faultbox/hillscene/internal/config"
	"github.com/Faultbox/hillscene/internal/engine/camera"
	"github.com/Faultbox/hillscene/internal/engine/debug"
	"github.com/Faultbox/hillscene/internal/engine/framebuffer"
	"github.com/Faultbox/hillscene/internal/engine/gpu"
	"github.com/Faultbox/hillscene/internal/engine/input"
	"github.com/Faultbox/hillscene/internal/engine/renderer"
	"github.com/Faultbox/hillscene/internal/engine/ui"
	"github.com/Faultbox/hillscene/internal/logger"
)

// WindowTitle is the title of the main window.
const WindowTitle = "Hill Scene"

// App owns every long-lived object of the viewer. All methods run on the GL thread.
type App struct {
	cfg *config.Config

	backend  *ui.Backend
	device   *gpu.GLDevice
	loader   *assets.Loader
	renderer *renderer.Renderer
	target   *framebuffer.Framebuffer

	camera  *camera.FlyCamera
	input   input.State
	overlay *appui.DebugOverlay

	shots *debug.ScreenshotCapture

	renderErr error
	closed    bool
	log       *zap.Logger
}

// New opens the window and builds the scene. Any failure releases what was acquired.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg:     cfg,
		camera:  newCamera(cfg.Camera),
		overlay: appui.NewDebugOverlay(),
		shots:   debug.NewScreenshotCapture(cfg.Graphics.ScreenshotDir, "hillscene"),
		log:     logger.Named("app"),
	}
	a.overlay.Noise = cfg.Terrain.Noise

	var err error
	a.backend, err = ui.NewBackend(WindowTitle, int32(cfg.Graphics.Width), int32(cfg.Graphics.Height), cfg.Graphics.ClearColor)
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	if err := a.init(); err != nil {
		a.Close()
		return nil, err
	}
	a.backend.OnClose(a.Close)
	return a, nil
}

func (a *App) init() error {
	cfg := a.cfg

	var err error
	a.device, err = gpu.NewGLDevice(mgl32.Vec4(cfg.Graphics.ClearColor))
	if err != nil {
		return err
	}
	if cfg.Graphics.Anisotropy > 0 {
		a.device.Anisotropy = cfg.Graphics.Anisotropy
	}
	a.log.Info("OpenGL ready", zap.String("version", a.device.Version()))

	a.loader = assets.NewLoader(cfg.Scene.DataDir)

	sc, err := sceneConfig(cfg)
	if err != nil {
		return err
	}
	scene, err := renderer.BuildScene(a.device, a.loader, sc)
	if err != nil {
		return fmt.Errorf("building scene: %w", err)
	}
	a.overlay.Warnings = len(scene.Warnings)

	a.renderer, err = renderer.New(a.device, scene, rendererConfig(cfg))
	if err != nil {
		scene.Release()
		return fmt.Errorf("starting renderer: %w", err)
	}

	a.target, err = framebuffer.New(int32(cfg.Graphics.Width), int32(cfg.Graphics.Height))
	if err != nil {
		return err
	}

	hits, misses := a.loader.CacheStats()
	a.log.Info("startup complete",
		zap.String("data", cfg.Scene.DataDir),
		zap.Int("warnings", len(scene.Warnings)),
		zap.Int("cache_hits", hits),
		zap.Int("cache_misses", misses),
	)
	return nil
}

// Run drives the frame loop until the window closes.
// It returns the first render error, if any.
func (a *App) Run() error {
	a.backend.Run(a.frame)
	a.Close()
	return a.renderErr
}

// frame runs between the UI frame begin and end.
func (a *App) frame() {
	dt := a.backend.DeltaTime()

	a.backend.Poll(&a.input)
	a.handleKeys()
	applyInput(a.camera, &a.input, dt)

	x, y, w, h := a.backend.GetViewport()
	a.renderScene(int32(w), int32(h), dt)
	a.backend.DrawSceneTexture(x, y, w, h, a.target.ColorTexture())

	stats := a.renderer.Stats()
	a.overlay.Update(float64(dt) * 1000)
	a.overlay.DrawCalls = stats.DrawCalls
	a.overlay.Triangles = stats.Triangles
	a.overlay.CameraPos = a.camera.Position()
	a.overlay.CameraSpeed = a.camera.Speed
	a.overlay.Render(&a.renderer.Wireframe)

	a.input.EndFrame()
}

func (a *App) renderScene(w, h int32, dt float32) {
	a.target.Resize(w, h)
	restore := a.target.BindWithViewport()
	err := a.renderer.Render(a.camera, dt)
	restore()

	if err != nil && a.renderErr == nil {
		a.renderErr = err
		a.log.Error("frame not rendered", zap.Error(err))
	}
}

func (a *App) handleKeys() {
	if a.input.CaptureKeyboard {
		return
	}
	if ui.IsKeyPressed(imgui.KeyF1) {
		a.overlay.Enabled = !a.overlay.Enabled
	}
	if ui.IsKeyPressed(imgui.KeyF12) {
		a.screenshot()
	}
}

func (a *App) screenshot() {
	path, err := a.shots.CaptureFromImage(a.target.ReadImage())
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases the scene, the offscreen target and the asset cache.
// It must run while the GL context is current; later calls do nothing.
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.target != nil {
		a.target.Release()
	}
	if a.loader != nil {
		a.loader.Close()
	}
	a.log.Info("shutdown complete")
}
