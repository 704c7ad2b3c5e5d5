package gpu

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/hillscene/internal/engine/mesh"
	"github.com/Faultbox/hillscene/internal/engine/shader"
)

// GLDevice issues draw state and uploads against the current OpenGL context.
// All methods must be called on the thread that owns the context.
type GLDevice struct {
	ClearColor mgl32.Vec4
	Anisotropy float32
}

// NewGLDevice initializes the GL function pointers and the default pipeline state.
func NewGLDevice(clearColor mgl32.Vec4) (*GLDevice, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}
	d := &GLDevice{ClearColor: clearColor, Anisotropy: 8}
	d.ResetState()
	return d, nil
}

// ResetState applies the default pipeline state: depth test and writes on, back-face culling.
func (d *GLDevice) ResetState() {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.DepthMask(true)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
}

// Version returns the driver version string.
func (d *GLDevice) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// Viewport returns the current output surface size.
func (d *GLDevice) Viewport() (width, height int32) {
	var vp [4]int32
	gl.GetIntegerv(gl.VIEWPORT, &vp[0])
	return vp[2], vp[3]
}

// Clear clears color and depth buffers. Depth writes are enabled first so the clear reaches the depth buffer.
func (d *GLDevice) Clear() {
	gl.DepthMask(true)
	gl.ClearColor(d.ClearColor[0], d.ClearColor[1], d.ClearColor[2], d.ClearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SetPolygonMode selects line or fill rasterization.
func (d *GLDevice) SetPolygonMode(wireframe bool) {
	if wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

func (d *GLDevice) SetCullFace(enabled bool) {
	setCap(gl.CULL_FACE, enabled)
}

func (d *GLDevice) SetDepthTest(enabled bool) {
	setCap(gl.DEPTH_TEST, enabled)
}

func (d *GLDevice) SetDepthWrite(enabled bool) {
	gl.DepthMask(enabled)
}

func setCap(c uint32, enabled bool) {
	if enabled {
		gl.Enable(c)
	} else {
		gl.Disable(c)
	}
}

// UseProgram binds a program for subsequent draws.
func (d *GLDevice) UseProgram(p *Program) {
	gl.UseProgram(p.ID)
}

// SetMat4 uploads a matrix uniform by name.
func (d *GLDevice) SetMat4(p *Program, name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.Uniform(name, shader.GetUniform), 1, false, &m[0])
}

// SetInt uploads an integer or sampler uniform by name.
func (d *GLDevice) SetInt(p *Program, name string, v int32) {
	gl.Uniform1i(p.Uniform(name, shader.GetUniform), v)
}

// SetFloat uploads a float uniform by name.
func (d *GLDevice) SetFloat(p *Program, name string, v float32) {
	gl.Uniform1f(p.Uniform(name, shader.GetUniform), v)
}

// SetVec3 uploads a vector uniform by name.
func (d *GLDevice) SetVec3(p *Program, name string, v mgl32.Vec3) {
	gl.Uniform3f(p.Uniform(name, shader.GetUniform), v[0], v[1], v[2])
}

// BindTexture binds tex to the given unit; nil binds texture 0.
func (d *GLDevice) BindTexture(unit uint32, tex *Texture) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	var id uint32
	if tex != nil {
		id = tex.ID
	}
	gl.BindTexture(gl.TEXTURE_2D, id)
}

func (d *GLDevice) BindMesh(m *Mesh) {
	gl.BindVertexArray(m.VAO)
}

// DrawElements issues an indexed triangle draw from the bound vertex array.
func (d *GLDevice) DrawElements(count int32) {
	gl.DrawElementsWithOffset(gl.TRIANGLES, count, gl.UNSIGNED_INT, 0)
}

// Unbind clears the vertex array and program bindings.
func (d *GLDevice) Unbind() {
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// CompileProgram builds a program. Failures are returned as *shader.BuildError.
func (d *GLDevice) CompileProgram(name, vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := shader.CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		if buildErr, ok := err.(*shader.BuildError); ok {
			buildErr.Program = name
		}
		return nil, err
	}
	return NewProgram(name, id, func() { gl.DeleteProgram(id) }), nil
}

// UploadMesh validates and uploads geometry into a vertex array with interleaved
// position, normal, texcoord and color attributes.
func (d *GLDevice) UploadMesh(data *mesh.Data) (*Mesh, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}
	vertices := data.Interleave()

	var vao, vbo, ebo uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	// VBO
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	stride := int32(mesh.Stride * 4)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(mesh.AttribPosition, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(mesh.AttribPosition)

	// Normal (location 1)
	gl.VertexAttribPointerWithOffset(mesh.AttribNormal, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(mesh.AttribNormal)

	// TexCoord (location 2)
	gl.VertexAttribPointerWithOffset(mesh.AttribTexCoord, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(mesh.AttribTexCoord)

	// Color (location 3)
	gl.VertexAttribPointerWithOffset(mesh.AttribColor, 3, gl.FLOAT, false, stride, 8*4)
	gl.EnableVertexAttribArray(mesh.AttribColor)

	// EBO
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data.Indices)*4, unsafe.Pointer(&data.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	release := func() {
		gl.DeleteVertexArrays(1, &vao)
		gl.DeleteBuffers(1, &vbo)
		gl.DeleteBuffers(1, &ebo)
	}
	return NewMesh(data.Name, vao, int32(len(data.Indices)), release), nil
}

// UploadTexture uploads an RGBA image. Repeating textures get mipmaps and anisotropic filtering.
func (d *GLDevice) UploadTexture(img *image.RGBA, wrap Wrap) (*Texture, error) {
	w, h := int32(img.Bounds().Dx()), int32(img.Bounds().Dy())
	if w == 0 || h == 0 || len(img.Pix) == 0 {
		return nil, fmt.Errorf("empty texture %dx%d", w, h)
	}

	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_2D, texID)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, w, h, 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))

	switch wrap {
	case WrapClamp:
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	default:
		gl.GenerateMipmap(gl.TEXTURE_2D)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
		if d.Anisotropy > 0 {
			gl.TexParameterf(gl.TEXTURE_2D, gl.TEXTURE_MAX_ANISOTROPY, d.Anisotropy)
		}
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return NewTexture(texID, w, h, func() { gl.DeleteTextures(1, &texID) }), nil
}
