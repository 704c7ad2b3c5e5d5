package mesh

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestValidate(t *testing.T) {
	tri := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}

	tests := []struct {
		name    string
		data    Data
		wantErr bool
	}{
		{"valid", Data{Positions: tri, Indices: []uint32{0, 1, 2}}, false},
		{"no vertices", Data{Indices: []uint32{0, 1, 2}}, true},
		{"no indices", Data{Positions: tri}, true},
		{"partial triangle", Data{Positions: tri, Indices: []uint32{0, 1}}, true},
		{"index out of range", Data{Positions: tri, Indices: []uint32{0, 1, 3}}, true},
		{"normals mismatch", Data{Positions: tri, Normals: tri[:2], Indices: []uint32{0, 1, 2}}, true},
		{"texcoords mismatch", Data{Positions: tri, TexCoords: []mgl32.Vec2{{0, 0}}, Indices: []uint32{0, 1, 2}}, true},
		{"colors mismatch", Data{Positions: tri, Colors: tri[:1], Indices: []uint32{0, 1, 2}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.data.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var geomErr *GeometryError
				if !errors.As(err, &geomErr) {
					t.Errorf("expected *GeometryError, got %T", err)
				}
			}
		})
	}
}

func TestInterleaveDefaults(t *testing.T) {
	d := Data{
		Positions: []mgl32.Vec3{{1, 2, 3}},
		Indices:   []uint32{0, 0, 0},
	}
	got := d.Interleave()
	want := []float32{1, 2, 3, 0, 1, 0, 0, 0, 1, 1, 1}
	if len(got) != Stride {
		t.Fatalf("expected %d floats, got %d", Stride, len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("float %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestCube(t *testing.T) {
	c := Cube(10)
	if err := c.Validate(); err != nil {
		t.Fatalf("cube invalid: %v", err)
	}
	if len(c.Positions) != 24 {
		t.Errorf("expected 24 vertices, got %d", len(c.Positions))
	}
	if len(c.Indices) != 36 {
		t.Errorf("expected 36 indices, got %d", len(c.Indices))
	}
	// Each face keeps a single color.
	for face := 0; face < 6; face++ {
		first := c.Colors[face*4]
		for v := 1; v < 4; v++ {
			if c.Colors[face*4+v] != first {
				t.Errorf("face %d vertex %d has color %v, expected %v", face, v, c.Colors[face*4+v], first)
			}
		}
	}
}

func TestSkyboxFaces(t *testing.T) {
	faces := SkyboxFaces(1)
	if len(faces) != 6 {
		t.Fatalf("expected 6 faces, got %d", len(faces))
	}

	for i, f := range faces {
		if err := f.Validate(); err != nil {
			t.Fatalf("face %d invalid: %v", i, err)
		}

		// Winding must face the center: the geometric normal points opposite the face position.
		a, b, c := f.Positions[0], f.Positions[1], f.Positions[2]
		n := b.Sub(a).Cross(c.Sub(a)).Normalize()
		centroid := a.Add(c).Mul(0.5)
		if n.Dot(centroid) >= 0 {
			t.Errorf("face %s winds outward", SkyboxFace(i))
		}
		if !n.ApproxEqual(f.Normals[0]) {
			t.Errorf("face %s: winding normal %v does not match stored normal %v", SkyboxFace(i), n, f.Normals[0])
		}
	}

	if faces[SkyTop].Positions[0].Y() != 1 {
		t.Errorf("top face should lie on y=1, got %v", faces[SkyTop].Positions[0])
	}
	if faces[SkyFront].Positions[0].Z() != -1 {
		t.Errorf("front face should lie on z=-1, got %v", faces[SkyFront].Positions[0])
	}
}

func TestSkyboxFaceString(t *testing.T) {
	if SkyBottom.String() != "bottom" {
		t.Errorf("expected bottom, got %s", SkyBottom.String())
	}
	if SkyboxFace(42).String() != "unknown" {
		t.Errorf("expected unknown for out-of-range face")
	}
}
