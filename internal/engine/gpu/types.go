package gpu

// Wrap selects the texture addressing mode.
type Wrap int

const (
	// WrapRepeat tiles the texture and builds mipmaps.
	WrapRepeat Wrap = iota
	// WrapClamp clamps to the edge texel; used for skybox faces to hide seams.
	WrapClamp
)

// Program is a linked shading program.
type Program struct {
	handle
	Name     string
	ID       uint32
	uniforms map[string]int32
}

// NewProgram wraps a linked program. release is called once on Release.
func NewProgram(name string, id uint32, release func()) *Program {
	return &Program{
		handle:   handle{release: release},
		Name:     name,
		ID:       id,
		uniforms: make(map[string]int32),
	}
}

// Valid reports whether the program can be used for drawing.
func (p *Program) Valid() bool {
	return p != nil && p.ID != 0 && !p.released
}

// Uniform returns a cached uniform location, calling lookup on first use.
func (p *Program) Uniform(name string, lookup func(id uint32, name string) int32) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := lookup(p.ID, name)
	p.uniforms[name] = loc
	return loc
}

// Texture is a 2D texture.
type Texture struct {
	handle
	ID     uint32
	Width  int32
	Height int32
}

// NewTexture wraps an uploaded texture.
func NewTexture(id uint32, width, height int32, release func()) *Texture {
	return &Texture{
		handle: handle{release: release},
		ID:     id,
		Width:  width,
		Height: height,
	}
}

// Mesh is a Renderable Mesh: a vertex array with its buffers, an element count
// and an optional texture. The texture is not owned by the mesh.
type Mesh struct {
	handle
	Name      string
	VAO       uint32
	Elements  int32
	Triangles int
	Texture   *Texture
}

// NewMesh wraps an uploaded vertex array.
func NewMesh(name string, vao uint32, elements int32, release func()) *Mesh {
	return &Mesh{
		handle:    handle{release: release},
		Name:      name,
		VAO:       vao,
		Elements:  elements,
		Triangles: int(elements / 3),
	}
}

// TextureID returns the bound texture, or 0 for an untextured mesh.
func (m *Mesh) TextureID() uint32 {
	if m.Texture == nil {
		return 0
	}
	return m.Texture.ID
}

// Model is an ordered group of meshes forming one scene object.
type Model struct {
	Name   string
	Meshes []*Mesh
}

// Triangles returns the total triangle count of the model.
func (m *Model) Triangles() int {
	total := 0
	for _, mesh := range m.Meshes {
		total += mesh.Triangles
	}
	return total
}

// SetTexture assigns one texture to every mesh of the model.
func (m *Model) SetTexture(tex *Texture) {
	for _, mesh := range m.Meshes {
		mesh.Texture = tex
	}
}
