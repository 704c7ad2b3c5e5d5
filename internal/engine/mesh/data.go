// Package mesh holds CPU-side geometry ready for GPU upload and the procedural shapes of the scene.
package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Stride is the number of floats per interleaved vertex:
// position (3), normal (3), texcoord (2), color (3).
const Stride = 11

// Attribute locations shared by every shader in the scene.
const (
	AttribPosition = 0
	AttribNormal   = 1
	AttribTexCoord = 2
	AttribColor    = 3
)

// Data is the geometry of one drawable surface.
// Normals, TexCoords and Colors are optional; when present they must match Positions in length.
type Data struct {
	Name      string
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	TexCoords []mgl32.Vec2
	Colors    []mgl32.Vec3
	Indices   []uint32
}

// Validate checks that attribute and index buffers are consistent.
func (d *Data) Validate() error {
	n := len(d.Positions)
	if n == 0 {
		return &GeometryError{Mesh: d.Name, Reason: "no vertices"}
	}
	if len(d.Normals) != 0 && len(d.Normals) != n {
		return &GeometryError{Mesh: d.Name, Reason: fmt.Sprintf("%d normals for %d vertices", len(d.Normals), n)}
	}
	if len(d.TexCoords) != 0 && len(d.TexCoords) != n {
		return &GeometryError{Mesh: d.Name, Reason: fmt.Sprintf("%d texcoords for %d vertices", len(d.TexCoords), n)}
	}
	if len(d.Colors) != 0 && len(d.Colors) != n {
		return &GeometryError{Mesh: d.Name, Reason: fmt.Sprintf("%d colors for %d vertices", len(d.Colors), n)}
	}
	if len(d.Indices) == 0 || len(d.Indices)%3 != 0 {
		return &GeometryError{Mesh: d.Name, Reason: fmt.Sprintf("index count %d is not a positive multiple of 3", len(d.Indices))}
	}
	for i, idx := range d.Indices {
		if int(idx) >= n {
			return &GeometryError{Mesh: d.Name, Reason: fmt.Sprintf("index %d at %d out of range (%d vertices)", idx, i, n)}
		}
	}
	return nil
}

// Triangles returns the number of triangles described by the index buffer.
func (d *Data) Triangles() int {
	return len(d.Indices) / 3
}

// Interleave packs the attributes into a single vertex buffer laid out by Stride.
// Missing attributes get an up normal, zero texcoord and white color.
func (d *Data) Interleave() []float32 {
	out := make([]float32, 0, len(d.Positions)*Stride)
	for i, p := range d.Positions {
		normal := mgl32.Vec3{0, 1, 0}
		if len(d.Normals) > 0 {
			normal = d.Normals[i]
		}
		var uv mgl32.Vec2
		if len(d.TexCoords) > 0 {
			uv = d.TexCoords[i]
		}
		color := mgl32.Vec3{1, 1, 1}
		if len(d.Colors) > 0 {
			color = d.Colors[i]
		}
		out = append(out,
			p[0], p[1], p[2],
			normal[0], normal[1], normal[2],
			uv[0], uv[1],
			color[0], color[1], color[2],
		)
	}
	return out
}
