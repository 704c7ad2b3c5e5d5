// Package ui provides the on-screen panels of the scene viewer.
package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/mathgl/mgl32"
)

// fpsWindow is the averaging window in seconds.
const fpsWindow = 0.5

// DebugOverlay renders the "3GP" control window.
type DebugOverlay struct {
	// Frame timing
	frameCount    int
	fps           float64
	frameTime     float64 // ms, averaged
	fpsUpdateTime float64 // seconds since last FPS update
	frameAccum    int
	msAccum       float64

	// Render stats
	DrawCalls int
	Triangles int
	Warnings  int

	// Camera info
	CameraPos   mgl32.Vec3
	CameraSpeed float32

	Noise   string
	Enabled bool
}

// NewDebugOverlay creates a new debug overlay.
func NewDebugOverlay() *DebugOverlay {
	return &DebugOverlay{Enabled: true}
}

// Update accumulates frame timing. deltaMs is the frame time in milliseconds.
func (d *DebugOverlay) Update(deltaMs float64) {
	d.frameCount++
	d.frameAccum++
	d.msAccum += deltaMs
	d.fpsUpdateTime += deltaMs / 1000.0

	if d.fpsUpdateTime >= fpsWindow {
		d.fps = float64(d.frameAccum) / d.fpsUpdateTime
		d.frameTime = d.msAccum / float64(d.frameAccum)
		d.frameAccum = 0
		d.msAccum = 0
		d.fpsUpdateTime = 0
	}
}

// FPS returns the averaged frame rate.
func (d *DebugOverlay) FPS() float64 {
	return d.fps
}

// FrameTime returns the averaged frame time in milliseconds.
func (d *DebugOverlay) FrameTime() float64 {
	return d.frameTime
}

// Frames returns the number of frames seen.
func (d *DebugOverlay) Frames() int {
	return d.frameCount
}

// AverageLine formats the frame timing line.
func (d *DebugOverlay) AverageLine() string {
	return fmt.Sprintf("Application average %.3f ms/frame (%.1f FPS)", d.frameTime, d.fps)
}

// StatsLine formats the render counters.
func (d *DebugOverlay) StatsLine() string {
	return fmt.Sprintf("Draw calls: %d  Triangles: %d", d.DrawCalls, d.Triangles)
}

// CameraLine formats the camera position and speed.
func (d *DebugOverlay) CameraLine() string {
	p := d.CameraPos
	return fmt.Sprintf("Camera: (%.0f, %.0f, %.0f)  speed %.0f", p[0], p[1], p[2], d.CameraSpeed)
}

// Render draws the window. wireframe is bound to the checkbox.
func (d *DebugOverlay) Render(wireframe *bool) {
	if !d.Enabled {
		return
	}

	imgui.SetNextWindowPos(imgui.NewVec2(10, 10))
	imgui.SetNextWindowBgAlpha(0.8)

	if imgui.BeginV("3GP", nil, imgui.WindowFlagsAlwaysAutoResize) {
		imgui.Text("Visibility.")
		imgui.Checkbox("Wireframe", wireframe)
		imgui.Text(d.AverageLine())

		imgui.Separator()
		imgui.Text(d.StatsLine())
		imgui.Text(d.CameraLine())
		if d.Noise != "" {
			imgui.TextDisabled(fmt.Sprintf("Terrain noise: %s", d.Noise))
		}
		if d.Warnings > 0 {
			imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.2, 1.0), fmt.Sprintf("%d asset warnings (see log)", d.Warnings))
		}

		imgui.Spacing()
		imgui.TextDisabled("WASD/QE move, right drag look, wheel speed")
		imgui.TextDisabled("F1 overlay, F12 screenshot")
	}
	imgui.End()
}
