// Package ui provides the ImGui window backend and scene presentation.
package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/hillscene/internal/engine/input"
)

// Backend wraps the ImGui SDL backend: it owns the window, the GL context and the frame loop.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
	width   int32
	height  int32
}

// NewBackend creates the window. The GL context is current once this returns.
func NewBackend(title string, width, height int32, bg [4]float32) (*Backend, error) {
	b := &Backend{
		width:  width,
		height: height,
	}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	b.backend.SetBgColor(imgui.NewVec4(bg[0], bg[1], bg[2], bg[3]))
	b.backend.CreateWindow(title, int(width), int(height))

	return b, nil
}

// OnClose registers fn to run while the GL context is still alive at shutdown.
func (b *Backend) OnClose(fn func()) {
	b.backend.SetBeforeDestroyContextHook(fn)
}

// Run starts the main render loop. It returns when the window is closed.
func (b *Backend) Run(renderFunc func()) {
	b.backend.Run(renderFunc)
}

// SetWindowTitle updates the window title.
func (b *Backend) SetWindowTitle(title string) {
	b.backend.SetWindowTitle(title)
}

// GetWindowSize returns the requested window size.
func (b *Backend) GetWindowSize() (int32, int32) {
	return b.width, b.height
}

// GetViewport returns the main viewport work area.
func (b *Backend) GetViewport() (posX, posY, width, height float32) {
	viewport := imgui.MainViewport()
	workPos := viewport.WorkPos()
	workSize := viewport.WorkSize()
	return workPos.X, workPos.Y, workSize.X, workSize.Y
}

// DeltaTime returns the duration of the previous frame in seconds.
func (b *Backend) DeltaTime() float32 {
	return imgui.CurrentIO().DeltaTime()
}

// DrawSceneTexture shows an offscreen render behind every other window.
func (b *Backend) DrawSceneTexture(x, y, w, h float32, textureID uint32) {
	if textureID == 0 {
		return
	}

	imgui.SetNextWindowPos(imgui.NewVec2(x, y))
	imgui.SetNextWindowSize(imgui.NewVec2(w, h))

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsNoScrollWithMouse | imgui.WindowFlagsNoBringToFrontOnFocus |
		imgui.WindowFlagsNoInputs

	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(0, 0))
	if imgui.BeginV("##SceneBackground", nil, flags) {
		// GL textures have their origin at the bottom left
		texRef := imgui.NewTextureRefTextureID(imgui.TextureID(textureID))
		imgui.ImageV(*texRef,
			imgui.NewVec2(w, h),
			imgui.NewVec2(0, 1),
			imgui.NewVec2(1, 0))
	}
	imgui.End()
	imgui.PopStyleVar()
}

// Poll samples the ImGui input state into s and advances its edge detection.
func (b *Backend) Poll(s *input.State) {
	io := imgui.CurrentIO()
	mousePos := imgui.MousePos()

	s.MouseX = mousePos.X
	s.MouseY = mousePos.Y
	s.RightDown = imgui.IsMouseDown(imgui.MouseButtonRight)
	s.Scroll = io.MouseWheel()

	s.Forward = IsKeyDown(imgui.KeyW)
	s.Back = IsKeyDown(imgui.KeyS)
	s.Left = IsKeyDown(imgui.KeyA)
	s.Right = IsKeyDown(imgui.KeyD)
	s.Up = IsKeyDown(imgui.KeyE)
	s.Down = IsKeyDown(imgui.KeyQ)
	s.Fast = IsKeyDown(imgui.KeyLeftShift) || IsKeyDown(imgui.KeyRightShift)

	s.CaptureMouse = io.WantCaptureMouse()
	s.CaptureKeyboard = io.WantCaptureKeyboard()

	s.Update()
}

// IsKeyPressed checks if a key was pressed this frame.
func IsKeyPressed(key imgui.Key) bool {
	return imgui.IsKeyChordPressed(imgui.KeyChord(key))
}

// IsKeyDown checks if a key is currently held down.
func IsKeyDown(key imgui.Key) bool {
	return imgui.IsKeyDown(key)
}
