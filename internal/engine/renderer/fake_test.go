package renderer

import (
	"fmt"
	"image"
	"io/fs"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/hillscene/internal/assets"
	"github.com/Faultbox/hillscene/internal/engine/gpu"
	"github.com/Faultbox/hillscene/internal/engine/mesh"
	"github.com/Faultbox/hillscene/internal/engine/shader"
)

const clearDepth = 1.0

// drawRecord captures pipeline state at a draw call.
type drawRecord struct {
	program    string
	mesh       string
	texture    uint32
	elements   int32
	depthTest  bool
	depthWrite bool
	cull       bool
	wireframe  bool
	depthAfter float32
	combined   mgl32.Mat4
	model      mgl32.Mat4
	useTex     int32
	lightDir   mgl32.Vec3
}

// fakeDevice records calls and simulates a single-sample depth buffer.
type fakeDevice struct {
	width, height int32

	depthTest  bool
	depthWrite bool
	cull       bool
	wireframe  bool
	depth      float32

	program *gpu.Program
	mesh    *gpu.Mesh
	texture *gpu.Texture

	uniforms      map[string]mgl32.Mat4
	ints          map[string]int32
	vecs          map[string]mgl32.Vec3
	calls         int
	viewportCalls int
	clears        int
	draws         []drawRecord
}

func newFakeDevice(w, h int32) *fakeDevice {
	return &fakeDevice{
		width:    w,
		height:   h,
		uniforms: make(map[string]mgl32.Mat4),
		ints:     make(map[string]int32),
		vecs:     make(map[string]mgl32.Vec3),
	}
}

func (d *fakeDevice) key(p *gpu.Program, name string) string {
	return p.Name + "." + name
}

func (d *fakeDevice) Viewport() (int32, int32) {
	d.calls++
	d.viewportCalls++
	return d.width, d.height
}

func (d *fakeDevice) Clear() {
	d.calls++
	d.clears++
	d.depth = clearDepth
}

func (d *fakeDevice) SetPolygonMode(w bool)     { d.calls++; d.wireframe = w }
func (d *fakeDevice) SetCullFace(on bool)       { d.calls++; d.cull = on }
func (d *fakeDevice) SetDepthTest(on bool)      { d.calls++; d.depthTest = on }
func (d *fakeDevice) SetDepthWrite(on bool)     { d.calls++; d.depthWrite = on }
func (d *fakeDevice) UseProgram(p *gpu.Program) { d.calls++; d.program = p }
func (d *fakeDevice) BindMesh(m *gpu.Mesh)      { d.calls++; d.mesh = m }

func (d *fakeDevice) SetMat4(p *gpu.Program, name string, m mgl32.Mat4) {
	d.calls++
	d.uniforms[d.key(p, name)] = m
}

func (d *fakeDevice) SetInt(p *gpu.Program, name string, v int32) {
	d.calls++
	d.ints[d.key(p, name)] = v
}

func (d *fakeDevice) SetFloat(p *gpu.Program, name string, v float32) {
	d.calls++
}

func (d *fakeDevice) SetVec3(p *gpu.Program, name string, v mgl32.Vec3) {
	d.calls++
	d.vecs[d.key(p, name)] = v
}

func (d *fakeDevice) BindTexture(unit uint32, tex *gpu.Texture) {
	d.calls++
	d.texture = tex
}

func (d *fakeDevice) DrawElements(count int32) {
	d.calls++
	// A fragment only reaches the depth buffer when the test is enabled and writes are on.
	if d.depthTest && d.depthWrite {
		d.depth = 0.5
	}
	var tex uint32
	if d.texture != nil {
		tex = d.texture.ID
	}
	d.draws = append(d.draws, drawRecord{
		program:    d.program.Name,
		mesh:       d.mesh.Name,
		texture:    tex,
		elements:   count,
		depthTest:  d.depthTest,
		depthWrite: d.depthWrite,
		cull:       d.cull,
		wireframe:  d.wireframe,
		depthAfter: d.depth,
		combined:   d.uniforms[d.key(d.program, UniformCombined)],
		model:      d.uniforms[d.key(d.program, UniformModel)],
		useTex:     d.ints[d.key(d.program, UniformUseTex)],
		lightDir:   d.vecs[d.key(d.program, UniformLightDir)],
	})
}

func (d *fakeDevice) Unbind() {
	d.calls++
	d.program = nil
	d.mesh = nil
}

func (d *fakeDevice) reset() {
	d.draws = nil
	d.calls = 0
	d.viewportCalls = 0
}

// fakeAllocator hands out numbered resources and counts releases.
type fakeAllocator struct {
	nextID      uint32
	allocated   int
	released    map[uint32]int
	failProgram string
	failMesh    string
	failTexture bool
	// nilMesh and nilTexture make uploads return nil without an error
	nilMesh    string
	nilTexture bool
}

func newFakeAllocator() *fakeAllocator {
	return &fakeAllocator{released: make(map[uint32]int)}
}

func (a *fakeAllocator) alloc() (uint32, func()) {
	a.nextID++
	a.allocated++
	id := a.nextID
	return id, func() { a.released[id]++ }
}

// live returns the number of resources not yet released.
func (a *fakeAllocator) live() int {
	return a.allocated - len(a.released)
}

func (a *fakeAllocator) doubleReleases() int {
	n := 0
	for _, c := range a.released {
		if c > 1 {
			n++
		}
	}
	return n
}

func (a *fakeAllocator) CompileProgram(name, vs, fs string) (*gpu.Program, error) {
	if name == a.failProgram {
		return nil, &shader.BuildError{Program: name, Stage: shader.StageLink, Log: "forced failure"}
	}
	id, release := a.alloc()
	return gpu.NewProgram(name, id, release), nil
}

func (a *fakeAllocator) UploadMesh(data *mesh.Data) (*gpu.Mesh, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}
	if a.failMesh != "" && data.Name == a.failMesh {
		return nil, &mesh.GeometryError{Mesh: data.Name, Reason: "forced failure"}
	}
	if a.nilMesh != "" && data.Name == a.nilMesh {
		return nil, nil
	}
	id, release := a.alloc()
	return gpu.NewMesh(data.Name, id, int32(len(data.Indices)), release), nil
}

func (a *fakeAllocator) UploadTexture(img *image.RGBA, wrap gpu.Wrap) (*gpu.Texture, error) {
	if a.failTexture {
		return nil, fmt.Errorf("forced texture failure")
	}
	if a.nilTexture {
		return nil, nil
	}
	id, release := a.alloc()
	b := img.Bounds()
	return gpu.NewTexture(id, int32(b.Dx()), int32(b.Dy()), release), nil
}

// fakeAssets serves in-memory models and images.
type fakeAssets struct {
	models map[string][]mesh.Data
	images map[string]*image.RGBA
	loads  int
}

func newFakeAssets(cfg SceneConfig) *fakeAssets {
	a := &fakeAssets{
		models: map[string][]mesh.Data{},
		images: map[string]*image.RGBA{},
	}
	cube := mesh.Cube(1)
	cube.Name = "body"
	a.models[cfg.VehicleModel] = []mesh.Data{cube}
	a.images[cfg.VehicleTexture] = image.NewRGBA(image.Rect(0, 0, 4, 4))
	a.images[cfg.TerrainTexture] = image.NewRGBA(image.Rect(0, 0, 8, 8))
	for _, p := range cfg.SkyboxTextures {
		a.images[p] = image.NewRGBA(image.Rect(0, 0, 2, 2))
	}
	return a
}

func (a *fakeAssets) LoadModel(name string) ([]mesh.Data, error) {
	a.loads++
	m, ok := a.models[name]
	if !ok {
		return nil, &assets.LoadError{Path: name, Err: fs.ErrNotExist}
	}
	return m, nil
}

func (a *fakeAssets) LoadImage(name string, flip bool) (*image.RGBA, error) {
	a.loads++
	img, ok := a.images[name]
	if !ok {
		return nil, &assets.LoadError{Path: name, Err: fs.ErrNotExist}
	}
	return img, nil
}

// fixedCamera is a camera with a constant pose.
type fixedCamera struct {
	pos, look, up mgl32.Vec3
}

func (c fixedCamera) Position() mgl32.Vec3   { return c.pos }
func (c fixedCamera) LookVector() mgl32.Vec3 { return c.look }
func (c fixedCamera) UpVector() mgl32.Vec3   { return c.up }

func defaultCamera() fixedCamera {
	return fixedCamera{
		pos:  mgl32.Vec3{0, 200, 1500},
		look: mgl32.Vec3{0, 0, -1},
		up:   mgl32.Vec3{0, 1, 0},
	}
}

// smallSceneConfig keeps the terrain tiny so tests stay fast.
func smallSceneConfig() SceneConfig {
	cfg := DefaultSceneConfig()
	cfg.Terrain.NumX = 4
	cfg.Terrain.NumZ = 4
	return cfg
}
