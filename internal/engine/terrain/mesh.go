package terrain

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/hillscene/internal/engine/mesh"
)

// Diagonal is the split direction of one grid cell.
type Diagonal int

const (
	// DiagonalAnti splits a cell along s+1 .. s+Nx.
	DiagonalAnti Diagonal = iota
	// DiagonalMain splits a cell along s .. s+Nx+1.
	DiagonalMain
)

// Generate builds the terrain grid, heights, texcoords and checkerboard triangulation.
// It never returns a partially built mesh.
func Generate(p Params) (*Mesh, error) {
	if p.NumX < 2 || p.NumZ < 2 {
		return nil, &mesh.GeometryError{Mesh: "terrain", Reason: fmt.Sprintf("grid %dx%d needs at least 2x2 vertices", p.NumX, p.NumZ)}
	}
	if p.Heights == nil {
		return nil, &mesh.GeometryError{Mesh: "terrain", Reason: "no height source"}
	}

	count := p.NumX * p.NumZ
	m := &Mesh{
		Data: mesh.Data{
			Name:      "terrain",
			Positions: make([]mgl32.Vec3, 0, count),
			Normals:   make([]mgl32.Vec3, 0, count),
			TexCoords: make([]mgl32.Vec2, 0, count),
		},
		NumX: p.NumX,
		NumZ: p.NumZ,
	}

	up := mgl32.Vec3{0, 1, 0}
	for i := 0; i < p.NumZ; i++ {
		for j := 0; j < p.NumX; j++ {
			n := p.Heights.Height(i, j)
			pos := mgl32.Vec3{
				float32(i)*p.SpacingX - p.OffsetX,
				(n + 1) / 2 * p.Amplitude,
				float32(j)*p.SpacingZ - p.OffsetZ,
			}
			uv := mgl32.Vec2{
				float32(i) / float32(p.NumZ) * p.TexTiles,
				float32(j) / float32(p.NumX) * p.TexTiles,
			}
			m.Positions = append(m.Positions, pos)
			m.Normals = append(m.Normals, up)
			m.TexCoords = append(m.TexCoords, uv)
		}
	}

	m.Indices = triangulate(p.NumX, p.NumZ)

	if p.RecomputeNormals {
		recomputeNormals(&m.Data)
	}

	if err := validate(m); err != nil {
		return nil, err
	}
	return m, nil
}

// CellDiagonal returns the split direction used for a cell.
// Neighbouring cells in both directions alternate.
func CellDiagonal(cellX, cellZ int) Diagonal {
	if (cellX+cellZ)%2 == 0 {
		return DiagonalAnti
	}
	return DiagonalMain
}

// triangulate emits two triangles per cell in row-major order.
func triangulate(nx, nz int) []uint32 {
	indices := make([]uint32, 0, 6*(nx-1)*(nz-1))
	w := uint32(nx)
	for cellZ := 0; cellZ < nz-1; cellZ++ {
		for cellX := 0; cellX < nx-1; cellX++ {
			s := uint32(cellZ*nx + cellX)
			if CellDiagonal(cellX, cellZ) == DiagonalAnti {
				indices = append(indices,
					s, s+1, s+w,
					s+1, s+w+1, s+w,
				)
			} else {
				indices = append(indices,
					s, s+1, s+w+1,
					s, s+w+1, s+w,
				)
			}
		}
	}
	return indices
}

// recomputeNormals replaces the flat normals with area-weighted face normals
// of the perturbed grid, oriented upward.
func recomputeNormals(d *mesh.Data) {
	acc := make([]mgl32.Vec3, len(d.Positions))
	for t := 0; t+2 < len(d.Indices); t += 3 {
		a, b, c := d.Indices[t], d.Indices[t+1], d.Indices[t+2]
		e1 := d.Positions[b].Sub(d.Positions[a])
		e2 := d.Positions[c].Sub(d.Positions[a])
		n := e1.Cross(e2)
		if n.Y() < 0 {
			n = n.Mul(-1)
		}
		acc[a] = acc[a].Add(n)
		acc[b] = acc[b].Add(n)
		acc[c] = acc[c].Add(n)
	}
	for i, n := range acc {
		if n.Len() < 1e-6 {
			d.Normals[i] = mgl32.Vec3{0, 1, 0}
			continue
		}
		d.Normals[i] = n.Normalize()
	}
}

func validate(m *Mesh) error {
	want := m.NumX * m.NumZ
	if len(m.Positions) != want {
		return &mesh.GeometryError{Mesh: m.Name, Reason: fmt.Sprintf("%d vertices for a %dx%d grid", len(m.Positions), m.NumX, m.NumZ)}
	}
	if len(m.Indices) != 6*m.Cells() {
		return &mesh.GeometryError{Mesh: m.Name, Reason: fmt.Sprintf("%d indices for %d cells", len(m.Indices), m.Cells())}
	}
	return m.Data.Validate()
}
