package app

import (
	"github.com/Faultbox/hillscene/internal/engine/camera"
	"github.com/Faultbox/hillscene/internal/engine/input"
)

// applyInput moves and turns the camera for one frame of input.
func applyInput(cam *camera.FlyCamera, in *input.State, dt float32) {
	if dx, dy, ok := in.Drag(); ok {
		cam.Rotate(dx, dy)
	}
	if wheel := in.Wheel(); wheel != 0 {
		cam.HandleZoom(wheel)
	}
	forward, right, up := in.Axes()
	if forward != 0 || right != 0 || up != 0 {
		cam.Move(forward, right, up, dt)
	}
}
