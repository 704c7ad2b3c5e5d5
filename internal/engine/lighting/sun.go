// Package lighting provides the directional light of the scene.
package lighting

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Sun is a directional light given by compass angles in degrees.
type Sun struct {
	Azimuth   float32 // Rotation around Y from +Z towards +X
	Elevation float32 // Angle above the horizon, 0-90
}

// DefaultSun lights the scene from high above and slightly to the side.
func DefaultSun() Sun {
	return Sun{Azimuth: 56.3, Elevation: 70.2}
}

// Direction returns the unit vector pointing towards the sun.
func (s Sun) Direction() mgl32.Vec3 {
	return SunDirection(s.Azimuth, s.Elevation)
}

// SunDirection converts azimuth and elevation angles to a light direction vector.
func SunDirection(azimuth, elevation float32) mgl32.Vec3 {
	azRad := float64(azimuth) * math.Pi / 180.0
	elRad := float64(elevation) * math.Pi / 180.0

	// Spherical to Cartesian, elevation measured from the horizon
	x := float32(math.Cos(elRad) * math.Sin(azRad))
	y := float32(math.Sin(elRad))
	z := float32(math.Cos(elRad) * math.Cos(azRad))

	return mgl32.Vec3{x, y, z}
}
