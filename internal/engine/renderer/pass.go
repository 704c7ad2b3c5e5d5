package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/hillscene/internal/engine/gpu"
)

// Object names of the demo scene, in draw order.
const (
	ObjectSkybox  = "skybox"
	ObjectVehicle = "vehicle"
	ObjectTerrain = "terrain"
	ObjectCube    = "cube"
)

// Uniform names shared by the scene programs.
const (
	UniformCombined = "combined_xform"
	UniformModel    = "model_xform"
	UniformSampler  = "sampler_tex"
	UniformUseTex   = "use_tex"
	UniformAmbient  = "ambient"
	UniformLightDir = "light_dir"
)

// Transform selects how a pass builds its model matrix.
type Transform int

const (
	// TransformStatic uses Pass.Placement as is.
	TransformStatic Transform = iota
	// TransformAnimated appends the animation rotation to Pass.Placement.
	TransformAnimated
)

// Pass is one bind-state and draw sequence for an object group.
type Pass struct {
	Name    string
	Model   *gpu.Model
	Program *gpu.Program

	// Background passes see a rotation-only view and never touch the depth buffer.
	Background bool

	Transform Transform
	Placement mgl32.Mat4

	// Textured passes bind each mesh texture to unit 0 and set the lighting uniforms.
	Textured bool
	Ambient  float32
	LightDir mgl32.Vec3 // Unit vector towards the light
}

// modelMatrix returns the pass model transform for the given animation state.
func (p *Pass) modelMatrix(anim AnimationState) mgl32.Mat4 {
	if p.Transform == TransformAnimated {
		return p.Placement.Mul4(anim.Rotation())
	}
	return p.Placement
}

// CubePlacement is the fixed position and size of the spinning cube.
func CubePlacement() mgl32.Mat4 {
	return mgl32.Translate3D(0, 500, 0).Mul4(mgl32.Scale3D(10, 10, 10))
}
