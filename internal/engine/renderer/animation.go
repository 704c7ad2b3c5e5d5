package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultAnimationStep is the per-frame angle increment of the spinning cube, in radians.
const DefaultAnimationStep = 0.001

// AnimationState is the cube rotation carried from frame to frame.
type AnimationState struct {
	Angle   float32
	RotateY bool
	Step    float32
}

// NewAnimationState starts at angle 0 rotating around Y.
func NewAnimationState(step float32) AnimationState {
	if step <= 0 {
		step = DefaultAnimationStep
	}
	return AnimationState{RotateY: true, Step: step}
}

// Axis returns the current rotation axis.
func (a AnimationState) Axis() mgl32.Vec3 {
	if a.RotateY {
		return mgl32.Vec3{0, 1, 0}
	}
	return mgl32.Vec3{1, 0, 0}
}

// Rotation returns the rotation for the current angle and axis.
func (a AnimationState) Rotation() mgl32.Mat4 {
	return mgl32.HomogRotate3D(a.Angle, a.Axis())
}

// Advance steps the angle. Past a full turn it resets to 0 and switches axis.
func (a *AnimationState) Advance() {
	a.Angle += a.Step
	if a.Angle > 2*math.Pi {
		a.Angle = 0
		a.RotateY = !a.RotateY
	}
}
