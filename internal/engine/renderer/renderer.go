// Package renderer draws the demo scene: skybox, vehicle, terrain and spinning cube.
package renderer

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/hillscene/internal/engine/gpu"
	"github.com/Faultbox/hillscene/internal/logger"
)

// ErrNotReady is returned by Render when startup did not complete or a program is unusable.
var ErrNotReady = errors.New("renderer not initialized")

// Projection constants.
const (
	FieldOfView = 45.0 // Vertical, degrees
	NearPlane   = 0.1
	FarPlane    = 10000.0
)

// Config holds renderer configuration.
type Config struct {
	Wireframe     bool
	AnimationStep float32
}

// Stats counts the work of the last frame.
type Stats struct {
	Passes    int
	DrawCalls int
	Triangles int
}

// FrameState is the per-frame input and derived transforms of the last Render call.
type FrameState struct {
	Position   mgl32.Vec3
	Look       mgl32.Vec3
	Up         mgl32.Vec3
	Wireframe  bool
	Animation  AnimationState
	Aspect     float32
	Projection mgl32.Mat4
	View       mgl32.Mat4
	DeltaTime  float32
}

// Renderer owns the scene resources and issues the draw sequence each frame.
type Renderer struct {
	device Device
	scene  *Scene
	passes []Pass

	// Wireframe selects line rasterization for every pass; toggled by the overlay.
	Wireframe bool

	anim  AnimationState
	frame FrameState
	stats Stats
	ready bool
	log   *zap.Logger
}

// New creates a renderer over a fully built scene. The renderer takes ownership
// of the scene resources and releases them on Close.
func New(device Device, scene *Scene, cfg Config) (*Renderer, error) {
	if device == nil || scene == nil {
		return nil, ErrNotReady
	}
	for _, p := range scene.Passes {
		if !p.Program.Valid() {
			return nil, fmt.Errorf("pass %s: %w", p.Name, ErrNotReady)
		}
	}

	r := &Renderer{
		device:    device,
		scene:     scene,
		passes:    scene.Passes,
		Wireframe: cfg.Wireframe,
		anim:      NewAnimationState(cfg.AnimationStep),
		ready:     true,
		log:       logger.Named("renderer"),
	}
	r.log.Info("renderer ready", zap.Int("passes", len(r.passes)), zap.Int("resources", scene.Resources()))
	return r, nil
}

// Render issues one complete frame.
func (r *Renderer) Render(cam Camera, dt float32) error {
	if !r.ready {
		return ErrNotReady
	}
	for i := range r.passes {
		if !r.passes[i].Program.Valid() {
			return ErrNotReady
		}
	}

	d := r.device

	// Aspect is re-queried every frame; the surface may have been resized.
	w, h := d.Viewport()
	aspect := float32(1)
	if w > 0 && h > 0 {
		aspect = float32(w) / float32(h)
	}
	projection := mgl32.Perspective(mgl32.DegToRad(FieldOfView), aspect, NearPlane, FarPlane)

	pos := cam.Position()
	view := mgl32.LookAtV(pos, pos.Add(cam.LookVector()), cam.UpVector())

	d.SetCullFace(true)
	d.SetDepthTest(true)
	d.SetDepthWrite(true)
	d.SetPolygonMode(r.Wireframe)
	d.Clear()

	anim := r.anim
	stats := Stats{}
	for i := range r.passes {
		r.drawPass(&r.passes[i], projection, view, anim, &stats)
	}
	r.anim.Advance()

	// Leave the pipeline in its default state.
	d.SetPolygonMode(false)
	d.SetCullFace(true)
	d.SetDepthTest(true)
	d.SetDepthWrite(true)
	d.Unbind()

	r.stats = stats
	r.frame = FrameState{
		Position:   pos,
		Look:       cam.LookVector(),
		Up:         cam.UpVector(),
		Wireframe:  r.Wireframe,
		Animation:  anim,
		Aspect:     aspect,
		Projection: projection,
		View:       view,
		DeltaTime:  dt,
	}
	return nil
}

func (r *Renderer) drawPass(p *Pass, projection, view mgl32.Mat4, anim AnimationState, stats *Stats) {
	if p.Model == nil || len(p.Model.Meshes) == 0 {
		return
	}
	d := r.device

	if p.Background {
		// Drop the translation so the sky stays infinitely far away.
		view = view.Mat3().Mat4()
		d.SetDepthWrite(false)
		d.SetDepthTest(false)
		d.SetCullFace(false)
	}

	d.UseProgram(p.Program)
	d.SetMat4(p.Program, UniformCombined, projection.Mul4(view))
	d.SetMat4(p.Program, UniformModel, p.modelMatrix(anim))
	if p.Textured {
		d.SetInt(p.Program, UniformSampler, 0)
		d.SetFloat(p.Program, UniformAmbient, p.Ambient)
		d.SetVec3(p.Program, UniformLightDir, p.LightDir)
	}

	for _, m := range p.Model.Meshes {
		if p.Textured {
			d.BindTexture(0, m.Texture)
			useTex := int32(0)
			if m.Texture != nil {
				useTex = 1
			}
			d.SetInt(p.Program, UniformUseTex, useTex)
		}
		d.BindMesh(m)
		d.DrawElements(m.Elements)
		stats.DrawCalls++
		stats.Triangles += m.Triangles
	}
	stats.Passes++

	if p.Background {
		d.SetDepthWrite(true)
		d.SetDepthTest(true)
		d.SetCullFace(true)
	}
}

// Animation returns the animation state the next frame will use.
func (r *Renderer) Animation() AnimationState {
	return r.anim
}

// LastFrame returns the state of the most recent frame.
func (r *Renderer) LastFrame() FrameState {
	return r.frame
}

// Stats returns the counters of the most recent frame.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// Passes returns the draw order.
func (r *Renderer) Passes() []Pass {
	return r.passes
}

// Object returns a scene object by name, or nil if it was omitted.
func (r *Renderer) Object(name string) *gpu.Model {
	return r.scene.Objects[name]
}

// Ready reports whether Render will draw.
func (r *Renderer) Ready() bool {
	return r.ready
}

// Close releases every GPU resource of the scene. Render returns ErrNotReady afterwards.
func (r *Renderer) Close() {
	if !r.ready {
		return
	}
	r.log.Info("closing renderer")
	r.ready = false
	r.scene.Release()
}
