package assets

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/g3n/engine/loader/obj"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/hillscene/internal/engine/mesh"
)

// vertexKey identifies a unique position/uv/normal combination in an OBJ face.
type vertexKey struct {
	v, t, n int
}

// LoadModel decodes a Wavefront OBJ asset into one mesh per object.
// Polygons are fan-triangulated and vertices de-indexed per attribute tuple.
// A sibling .mtl file is used when present.
func (l *Loader) LoadModel(name string) ([]mesh.Data, error) {
	data, err := l.Read(name)
	if err != nil {
		return nil, err
	}

	var mtl io.Reader = strings.NewReader("")
	mtlName := strings.TrimSuffix(CleanPath(name), path.Ext(name)) + ".mtl"
	if l.Exists(mtlName) {
		if mtlData, err := l.Read(mtlName); err == nil {
			mtl = bytes.NewReader(mtlData)
		}
	}

	dec, err := obj.DecodeReader(bytes.NewReader(data), mtl)
	if err != nil {
		return nil, &LoadError{Path: name, Err: fmt.Errorf("decode obj: %w", err)}
	}

	meshes := buildMeshes(dec, path.Base(CleanPath(name)))
	if len(meshes) == 0 {
		return nil, &LoadError{Path: name, Err: fmt.Errorf("no faces")}
	}
	for i := range meshes {
		if err := meshes[i].Validate(); err != nil {
			return nil, &LoadError{Path: name, Err: err}
		}
	}
	return meshes, nil
}

func buildMeshes(dec *obj.Decoder, base string) []mesh.Data {
	var out []mesh.Data
	for i := range dec.Objects {
		o := &dec.Objects[i]
		d := mesh.Data{Name: o.Name}
		if d.Name == "" {
			d.Name = fmt.Sprintf("%s#%d", base, i)
		}

		seen := make(map[vertexKey]uint32)
		for _, f := range o.Faces {
			if len(f.Vertices) < 3 {
				continue
			}
			ids := make([]uint32, len(f.Vertices))
			for k := range f.Vertices {
				key := vertexKey{v: f.Vertices[k], t: -1, n: -1}
				if k < len(f.Uvs) {
					key.t = f.Uvs[k]
				}
				if k < len(f.Normals) {
					key.n = f.Normals[k]
				}
				id, ok := seen[key]
				if !ok {
					id = appendVertex(&d, dec, key)
					seen[key] = id
				}
				ids[k] = id
			}
			for k := 1; k+1 < len(ids); k++ {
				d.Indices = append(d.Indices, ids[0], ids[k], ids[k+1])
			}
		}

		if len(d.Indices) > 0 {
			out = append(out, d)
		}
	}
	return out
}

// appendVertex adds the attributes referenced by key to d. Out-of-range
// references fall back to the origin, zero texcoord and an up normal.
func appendVertex(d *mesh.Data, dec *obj.Decoder, key vertexKey) uint32 {
	var pos mgl32.Vec3
	if key.v >= 0 && 3*key.v+2 < len(dec.Vertices) {
		pos = mgl32.Vec3{dec.Vertices[3*key.v], dec.Vertices[3*key.v+1], dec.Vertices[3*key.v+2]}
	}

	var uv mgl32.Vec2
	if key.t >= 0 && 2*key.t+1 < len(dec.Uvs) {
		uv = mgl32.Vec2{dec.Uvs[2*key.t], dec.Uvs[2*key.t+1]}
	}

	normal := mgl32.Vec3{0, 1, 0}
	if key.n >= 0 && 3*key.n+2 < len(dec.Normals) {
		normal = mgl32.Vec3{dec.Normals[3*key.n], dec.Normals[3*key.n+1], dec.Normals[3*key.n+2]}
	}

	d.Positions = append(d.Positions, pos)
	d.TexCoords = append(d.TexCoords, uv)
	d.Normals = append(d.Normals, normal)
	return uint32(len(d.Positions) - 1)
}
