// Package camera provides the free-fly camera used to explore the scene.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// FlyCamera moves freely through the scene.
// Yaw 0 looks down -Z; positive pitch looks up.
type FlyCamera struct {
	Pos   mgl32.Vec3
	Yaw   float32 // Horizontal angle (radians)
	Pitch float32 // Vertical angle (radians)

	// Sensitivity
	Speed       float32 // World units per second
	Sensitivity float32 // Radians per pixel of mouse drag

	// Constraints
	MinSpeed float32
	MaxSpeed float32
	MaxPitch float32
}

// NewFlyCamera creates a camera at pos with default settings.
func NewFlyCamera(pos mgl32.Vec3, yaw, pitch float32) *FlyCamera {
	c := &FlyCamera{
		Pos:         pos,
		Yaw:         yaw,
		Speed:       500,
		Sensitivity: 0.005,
		MinSpeed:    10,
		MaxSpeed:    10000,
		MaxPitch:    mgl32.DegToRad(89),
	}
	c.setPitch(pitch)
	return c
}

// Position returns the camera position in world space.
func (c *FlyCamera) Position() mgl32.Vec3 {
	return c.Pos
}

// LookVector returns the unit view direction.
func (c *FlyCamera) LookVector() mgl32.Vec3 {
	cp := float32(gomath.Cos(float64(c.Pitch)))
	return mgl32.Vec3{
		cp * float32(gomath.Sin(float64(c.Yaw))),
		float32(gomath.Sin(float64(c.Pitch))),
		-cp * float32(gomath.Cos(float64(c.Yaw))),
	}
}

// UpVector returns world up.
func (c *FlyCamera) UpVector() mgl32.Vec3 {
	return mgl32.Vec3{0, 1, 0}
}

// Right returns the horizontal right direction.
func (c *FlyCamera) Right() mgl32.Vec3 {
	return mgl32.Vec3{
		float32(gomath.Cos(float64(c.Yaw))),
		0,
		float32(gomath.Sin(float64(c.Yaw))),
	}
}

// ViewMatrix returns the look-at view matrix for this camera.
func (c *FlyCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Pos, c.Pos.Add(c.LookVector()), c.UpVector())
}

// Move translates the camera along its look, right and world-up axes.
// Inputs are in [-1, 1] and scaled by Speed and dt.
func (c *FlyCamera) Move(forward, right, up, dt float32) {
	step := c.Speed * dt
	c.Pos = c.Pos.
		Add(c.LookVector().Mul(forward * step)).
		Add(c.Right().Mul(right * step)).
		Add(c.UpVector().Mul(up * step))
}

// Rotate turns the camera by a mouse drag delta in pixels.
func (c *FlyCamera) Rotate(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Yaw = float32(gomath.Mod(float64(c.Yaw), 2*gomath.Pi))
	c.setPitch(c.Pitch - dy*c.Sensitivity)
}

// HandleZoom scales movement speed by scroll wheel delta.
func (c *FlyCamera) HandleZoom(delta float32) {
	c.Speed *= 1 + delta*0.1
	if c.Speed < c.MinSpeed {
		c.Speed = c.MinSpeed
	}
	if c.Speed > c.MaxSpeed {
		c.Speed = c.MaxSpeed
	}
}

func (c *FlyCamera) setPitch(p float32) {
	// Clamp pitch
	if p > c.MaxPitch {
		p = c.MaxPitch
	}
	if p < -c.MaxPitch {
		p = -c.MaxPitch
	}
	c.Pitch = p
}
