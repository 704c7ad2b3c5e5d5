package renderer

import (
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/hillscene/internal/engine/gpu"
	"github.com/Faultbox/hillscene/internal/engine/lighting"
	"github.com/Faultbox/hillscene/internal/engine/mesh"
	"github.com/Faultbox/hillscene/internal/engine/shader/shaders"
	"github.com/Faultbox/hillscene/internal/engine/terrain"
	"github.com/Faultbox/hillscene/internal/engine/texture"
	"github.com/Faultbox/hillscene/internal/logger"
)

// SceneConfig names the assets and shapes of the demo scene.
// Asset paths are relative to the data directory.
type SceneConfig struct {
	VehicleModel   string
	VehicleTexture string
	TerrainTexture string

	// SkyboxModel is optional; without it six procedural faces are used.
	SkyboxModel    string
	SkyboxTextures []string // top, right, left, front, back, bottom
	SkyboxSize     float32

	CubeSize float32 // Half extent before placement scaling
	Ambient  float32
	Sun      lighting.Sun

	Terrain terrain.Params
}

// DefaultSceneConfig returns the asset layout of the bundled data directory.
func DefaultSceneConfig() SceneConfig {
	return SceneConfig{
		VehicleModel:   "Models/Jeep/jeep.obj",
		VehicleTexture: "Models/Jeep/jeep_rood.jpg",
		TerrainTexture: "Textures/grass11.bmp",
		SkyboxTextures: []string{
			"Models/Sky/Hills/skybox_top.jpg",
			"Models/Sky/Hills/skybox_right.jpg",
			"Models/Sky/Hills/skybox_left.jpg",
			"Models/Sky/Hills/skybox_front.jpg",
			"Models/Sky/Hills/skybox_back.jpg",
			"Models/Sky/Hills/skybox_bottom.jpg",
		},
		SkyboxSize: 10,
		CubeSize:   10,
		Ambient:    0.35,
		Sun:        lighting.DefaultSun(),
		Terrain:    terrain.DefaultParams(),
	}
}

// Scene is the GPU-resident content of the demo: named objects and their pass list.
type Scene struct {
	Passes  []Pass
	Objects map[string]*gpu.Model

	// Warnings lists asset problems that were tolerated during startup.
	Warnings []error

	scope *gpu.Scope
}

// Resources returns the number of GPU resources owned by the scene.
func (s *Scene) Resources() int {
	return s.scope.Len()
}

// Release frees every GPU resource of the scene.
func (s *Scene) Release() {
	s.scope.Release()
}

type sceneBuilder struct {
	alloc  Allocator
	assets AssetSource
	scope  *gpu.Scope
	scene  *Scene
	log    *zap.Logger
}

// BuildScene compiles the programs and uploads every object of the demo scene.
// Shader and geometry failures are fatal: everything acquired so far is released
// and the error returned. Missing or corrupt assets only omit a model or a texture.
func BuildScene(alloc Allocator, assets AssetSource, cfg SceneConfig) (*Scene, error) {
	b := &sceneBuilder{
		alloc:  alloc,
		assets: assets,
		scope:  &gpu.Scope{},
		scene:  &Scene{Objects: make(map[string]*gpu.Model)},
		log:    logger.Named("scene"),
	}
	b.scene.scope = b.scope

	if err := b.build(cfg); err != nil {
		b.log.Error("scene startup failed", zap.Error(err), zap.Int("released", b.scope.Len()))
		b.scope.Release()
		return nil, err
	}

	b.log.Info("scene built",
		zap.Int("objects", len(b.scene.Objects)),
		zap.Int("resources", b.scope.Len()),
		zap.Int("warnings", len(b.scene.Warnings)),
	)
	return b.scene, nil
}

func (b *sceneBuilder) build(cfg SceneConfig) error {
	sceneProg, err := b.program("scene", shaders.SceneVertexShader, shaders.SceneFragmentShader)
	if err != nil {
		return err
	}
	cubeProg, err := b.program("cube", shaders.CubeVertexShader, shaders.CubeFragmentShader)
	if err != nil {
		return err
	}

	sky, err := b.skybox(cfg)
	if err != nil {
		return err
	}
	vehicle, err := b.vehicle(cfg)
	if err != nil {
		return err
	}
	ground, err := b.terrain(cfg)
	if err != nil {
		return err
	}
	cubeData := mesh.Cube(cfg.CubeSize)
	cube, err := b.upload(ObjectCube, []mesh.Data{cubeData})
	if err != nil {
		return err
	}

	identity := mgl32.Ident4()
	light := cfg.Sun.Direction()
	b.addPass(Pass{Name: ObjectSkybox, Model: sky, Program: sceneProg, Background: true, Placement: identity, Textured: true, Ambient: 1, LightDir: light})
	b.addPass(Pass{Name: ObjectVehicle, Model: vehicle, Program: sceneProg, Placement: identity, Textured: true, Ambient: cfg.Ambient, LightDir: light})
	b.addPass(Pass{Name: ObjectTerrain, Model: ground, Program: sceneProg, Placement: identity, Textured: true, Ambient: cfg.Ambient, LightDir: light})
	b.addPass(Pass{Name: ObjectCube, Model: cube, Program: cubeProg, Transform: TransformAnimated, Placement: CubePlacement()})
	return nil
}

// addPass registers an object and its pass; omitted objects get neither.
func (b *sceneBuilder) addPass(p Pass) {
	if p.Model == nil {
		return
	}
	b.scene.Objects[p.Name] = p.Model
	b.scene.Passes = append(b.scene.Passes, p)
}

func (b *sceneBuilder) program(name, vs, fs string) (*gpu.Program, error) {
	p, err := b.alloc.CompileProgram(name, vs, fs)
	if err != nil {
		return nil, fmt.Errorf("building %s program: %w", name, err)
	}
	if p == nil {
		return nil, fmt.Errorf("building %s program: %w", name, ErrNotReady)
	}
	b.scope.Track(p)
	if !p.Valid() {
		return nil, fmt.Errorf("building %s program: %w", name, ErrNotReady)
	}
	return p, nil
}

// upload puts geometry on the GPU. Any failure here is fatal.
func (b *sceneBuilder) upload(name string, data []mesh.Data) (*gpu.Model, error) {
	model := &gpu.Model{Name: name}
	for i := range data {
		m, err := b.alloc.UploadMesh(&data[i])
		if err != nil {
			return nil, fmt.Errorf("uploading %s: %w", name, err)
		}
		if m == nil {
			return nil, fmt.Errorf("uploading %s: %w", name, ErrNotReady)
		}
		b.scope.Track(m)
		model.Meshes = append(model.Meshes, m)
	}
	return model, nil
}

// warn records a tolerated asset problem.
func (b *sceneBuilder) warn(object string, err error) {
	b.log.Warn("asset unavailable", zap.String("object", object), zap.Error(err))
	b.scene.Warnings = append(b.scene.Warnings, fmt.Errorf("%s: %w", object, err))
}

// texture loads and uploads an image; on failure it returns nil and the mesh draws untextured.
func (b *sceneBuilder) texture(object, path string, wrap gpu.Wrap) *gpu.Texture {
	if path == "" {
		return nil
	}
	img, err := b.assets.LoadImage(path, true)
	if err != nil {
		b.warn(object, err)
		return nil
	}
	return b.uploadTexture(object, img, wrap)
}

func (b *sceneBuilder) uploadTexture(object string, img *image.RGBA, wrap gpu.Wrap) *gpu.Texture {
	tex, err := b.alloc.UploadTexture(img, wrap)
	if err != nil {
		b.warn(object, err)
		return nil
	}
	if tex == nil {
		b.warn(object, ErrNotReady)
		return nil
	}
	b.scope.Track(tex)
	return tex
}

func (b *sceneBuilder) vehicle(cfg SceneConfig) (*gpu.Model, error) {
	if cfg.VehicleModel == "" {
		return nil, nil
	}
	data, err := b.assets.LoadModel(cfg.VehicleModel)
	if err != nil {
		b.warn(ObjectVehicle, err)
		return nil, nil
	}
	model, err := b.upload(ObjectVehicle, data)
	if err != nil {
		return nil, err
	}
	model.SetTexture(b.texture(ObjectVehicle, cfg.VehicleTexture, gpu.WrapRepeat))
	return model, nil
}

func (b *sceneBuilder) terrain(cfg SceneConfig) (*gpu.Model, error) {
	t, err := terrain.Generate(cfg.Terrain)
	if err != nil {
		return nil, fmt.Errorf("generating terrain: %w", err)
	}
	model, err := b.upload(ObjectTerrain, []mesh.Data{t.Data})
	if err != nil {
		return nil, err
	}
	model.SetTexture(b.texture(ObjectTerrain, cfg.TerrainTexture, gpu.WrapRepeat))
	return model, nil
}

func (b *sceneBuilder) skybox(cfg SceneConfig) (*gpu.Model, error) {
	var faces []mesh.Data
	if cfg.SkyboxModel != "" {
		data, err := b.assets.LoadModel(cfg.SkyboxModel)
		if err != nil {
			b.warn(ObjectSkybox, err)
		} else {
			faces = data
		}
	}
	if faces == nil {
		faces = mesh.SkyboxFaces(cfg.SkyboxSize)
	}

	model, err := b.upload(ObjectSkybox, faces)
	if err != nil {
		return nil, err
	}

	for i, m := range model.Meshes {
		var tex *gpu.Texture
		if i < len(cfg.SkyboxTextures) {
			tex = b.texture(ObjectSkybox, cfg.SkyboxTextures[i], gpu.WrapClamp)
		}
		if tex == nil {
			tex = b.uploadTexture(ObjectSkybox, skyFaceImage(mesh.SkyboxFace(i)), gpu.WrapClamp)
		}
		m.Texture = tex
	}
	return model, nil
}

var (
	skyZenith  = [4]uint8{70, 120, 200, 255}
	skyHorizon = [4]uint8{200, 220, 240, 255}
	skyGround  = [4]uint8{90, 110, 70, 255}
)

// skyFaceImage is the procedural stand-in for a missing sky face texture,
// already flipped for upload.
func skyFaceImage(face mesh.SkyboxFace) *image.RGBA {
	const size = 64
	var img *image.RGBA
	switch face {
	case mesh.SkyTop:
		img = texture.VerticalGradient(size, skyZenith, skyZenith)
	case mesh.SkyBottom:
		img = texture.VerticalGradient(size, skyGround, skyGround)
	default:
		img = texture.VerticalGradient(size, skyZenith, skyHorizon)
	}
	texture.FlipVertical(img)
	return img
}
