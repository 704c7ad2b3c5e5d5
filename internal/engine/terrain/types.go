// Package terrain generates the noise-perturbed terrain grid and its triangulation.
package terrain

import (
	"github.com/Faultbox/hillscene/internal/engine/mesh"
)

// Params controls terrain generation.
type Params struct {
	NumX int // Vertices per row
	NumZ int // Rows

	SpacingX float32 // World units between rows
	SpacingZ float32 // World units between columns
	OffsetX  float32 // Subtracted from X to center the plane
	OffsetZ  float32 // Subtracted from Z to center the plane

	Amplitude float32 // Maximum height added by the height source
	TexTiles  float32 // Texture repetitions across the terrain

	Heights          HeightSource
	RecomputeNormals bool // Derive normals from the perturbed grid instead of (0,1,0)
}

// DefaultParams returns the demo scene terrain: a 50x50 grid with hash noise.
func DefaultParams() Params {
	return Params{
		NumX:      50,
		NumZ:      50,
		SpacingX:  100,
		SpacingZ:  150,
		OffsetX:   2000,
		OffsetZ:   2000,
		Amplitude: 50,
		TexTiles:  40,
		Heights:   HashNoise{},
	}
}

// Mesh is a generated terrain grid. Vertex (row, col) lives at index row*NumX + col.
type Mesh struct {
	mesh.Data
	NumX int
	NumZ int
}

// VertexIndex returns the flat buffer index of a grid vertex.
func (m *Mesh) VertexIndex(row, col int) int {
	return row*m.NumX + col
}

// Cells returns the number of quads in the grid.
func (m *Mesh) Cells() int {
	return (m.NumX - 1) * (m.NumZ - 1)
}
