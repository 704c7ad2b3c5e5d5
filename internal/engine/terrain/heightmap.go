package terrain

import (
	perlin "github.com/aquilax/go-perlin"
)

// HeightSource yields a height value in roughly [-1, 1] for an integer grid coordinate.
type HeightSource interface {
	Height(x, y int) float32
}

// Noise is a stateless integer hash noise. The same (x, y) always yields the same value,
// and neighbouring coordinates are uncorrelated.
func Noise(x, y int) float32 {
	n := int32(x) + int32(y)*57
	n = (n >> 13) ^ n
	nn := (n*(n*n*60493+19990303) + 1376312589) & 0x7fffffff
	return 1.0 - float32(nn)/1073741924.0
}

// HashNoise adapts Noise to HeightSource.
type HashNoise struct{}

// Height implements HeightSource.
func (HashNoise) Height(x, y int) float32 {
	return Noise(x, y)
}

// PerlinNoise is a spatially coherent height source backed by go-perlin.
type PerlinNoise struct {
	noise *perlin.Perlin
	scale float64
}

// NewPerlinNoise creates a seeded Perlin height source.
// scale is the number of grid cells per noise period; values <= 0 default to 8.
func NewPerlinNoise(seed int64, scale float64) *PerlinNoise {
	if scale <= 0 {
		scale = 8
	}
	return &PerlinNoise{
		noise: perlin.NewPerlin(2, 2, 3, seed),
		scale: scale,
	}
}

// Height implements HeightSource.
func (p *PerlinNoise) Height(x, y int) float32 {
	v := p.noise.Noise2D(float64(x)/p.scale, float64(y)/p.scale)
	return clampf(float32(v), -1, 1)
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
