package renderer

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/hillscene/internal/engine/gpu"
	"github.com/Faultbox/hillscene/internal/engine/mesh"
)

// Device is the slice of the graphics API the frame renderer drives.
// gpu.GLDevice implements it against OpenGL.
type Device interface {
	// Viewport returns the current output surface size.
	Viewport() (width, height int32)
	Clear()

	SetPolygonMode(wireframe bool)
	SetCullFace(enabled bool)
	SetDepthTest(enabled bool)
	SetDepthWrite(enabled bool)

	UseProgram(p *gpu.Program)
	SetMat4(p *gpu.Program, name string, m mgl32.Mat4)
	SetInt(p *gpu.Program, name string, v int32)
	SetFloat(p *gpu.Program, name string, v float32)
	SetVec3(p *gpu.Program, name string, v mgl32.Vec3)

	BindTexture(unit uint32, tex *gpu.Texture)
	BindMesh(m *gpu.Mesh)
	DrawElements(count int32)
	Unbind()
}

// Allocator creates GPU resources during scene startup.
type Allocator interface {
	CompileProgram(name, vertexSrc, fragmentSrc string) (*gpu.Program, error)
	UploadMesh(data *mesh.Data) (*gpu.Mesh, error)
	UploadTexture(img *image.RGBA, wrap gpu.Wrap) (*gpu.Texture, error)
}

// Camera is queried once per frame for the view transform.
type Camera interface {
	Position() mgl32.Vec3
	LookVector() mgl32.Vec3
	UpVector() mgl32.Vec3
}

// AssetSource loads models and images for the scene.
type AssetSource interface {
	LoadModel(name string) ([]mesh.Data, error)
	LoadImage(name string, flip bool) (*image.RGBA, error)
}
