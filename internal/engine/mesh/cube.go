package mesh

import "github.com/go-gl/mathgl/mgl32"

// cubeFaceColors are the per-face vertex colors in face order front, back, left, right, top, bottom.
var cubeFaceColors = [6]mgl32.Vec3{
	{1, 0, 0},   // red
	{0, 0, 1},   // blue
	{1, 1, 1},   // white
	{1, 0.5, 0}, // orange
	{1, 1, 0},   // yellow
	{0, 1, 0},   // green
}

// Cube builds the vertex-colored cube with four unshared vertices per face.
func Cube(half float32) Data {
	h := half
	positions := []mgl32.Vec3{
		// Front
		{-h, -h, h}, {h, -h, h}, {-h, h, h}, {h, h, h},
		// Back
		{-h, -h, -h}, {h, -h, -h}, {-h, h, -h}, {h, h, -h},
		// Left
		{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h},
		// Right
		{h, -h, h}, {h, h, h}, {h, -h, -h}, {h, h, -h},
		// Top
		{-h, -h, h}, {h, -h, h}, {-h, -h, -h}, {h, -h, -h},
		// Bottom
		{-h, h, h}, {h, h, h}, {-h, h, -h}, {h, h, -h},
	}

	colors := make([]mgl32.Vec3, 0, len(positions))
	for _, c := range cubeFaceColors {
		colors = append(colors, c, c, c, c)
	}

	indices := []uint32{
		3, 2, 1, 2, 0, 1,
		6, 7, 4, 7, 5, 4,
		10, 11, 9, 11, 8, 9,
		15, 13, 14, 13, 12, 14,
		17, 16, 19, 16, 18, 19,
		23, 22, 21, 22, 20, 21,
	}

	return Data{
		Name:      "cube",
		Positions: positions,
		Colors:    colors,
		Indices:   indices,
	}
}
