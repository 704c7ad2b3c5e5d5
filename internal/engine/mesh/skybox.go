package mesh

import "github.com/go-gl/mathgl/mgl32"

// SkyboxFace identifies one side of the skybox.
type SkyboxFace int

// Face order matches the order of the face textures.
const (
	SkyTop SkyboxFace = iota
	SkyRight
	SkyLeft
	SkyFront
	SkyBack
	SkyBottom
)

var skyboxFaceNames = [...]string{"top", "right", "left", "front", "back", "bottom"}

func (f SkyboxFace) String() string {
	if f < 0 || int(f) >= len(skyboxFaceNames) {
		return "unknown"
	}
	return skyboxFaceNames[f]
}

// skyboxBasis is the outward direction of each face and the screen-up direction
// of a viewer at the center looking at it.
var skyboxBasis = [6]struct{ dir, up mgl32.Vec3 }{
	SkyTop:    {mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}},
	SkyRight:  {mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	SkyLeft:   {mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	SkyFront:  {mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
	SkyBack:   {mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
	SkyBottom: {mgl32.Vec3{0, -1, 0}, mgl32.Vec3{0, 0, 1}},
}

// SkyboxFaces builds the six inward-facing quads of a skybox cube, one mesh per face,
// in SkyboxFace order. Winding is counter-clockwise as seen from the center.
func SkyboxFaces(half float32) []Data {
	faces := make([]Data, 0, len(skyboxBasis))
	for i, b := range skyboxBasis {
		right := b.dir.Cross(b.up)
		center := b.dir.Mul(half)
		r := right.Mul(half)
		u := b.up.Mul(half)
		normal := b.dir.Mul(-1)

		faces = append(faces, Data{
			Name: "sky_" + SkyboxFace(i).String(),
			Positions: []mgl32.Vec3{
				center.Sub(r).Sub(u), // bottom-left
				center.Add(r).Sub(u), // bottom-right
				center.Add(r).Add(u), // top-right
				center.Sub(r).Add(u), // top-left
			},
			Normals:   []mgl32.Vec3{normal, normal, normal, normal},
			TexCoords: []mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
			Indices:   []uint32{0, 1, 2, 0, 2, 3},
		})
	}
	return faces
}
