package app

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/hillscene/internal/config"
	"github.com/Faultbox/hillscene/internal/engine/camera"
	"github.com/Faultbox/hillscene/internal/engine/lighting"
	"github.com/Faultbox/hillscene/internal/engine/renderer"
	"github.com/Faultbox/hillscene/internal/engine/terrain"
)

// heightSource selects the terrain noise named in the config.
func heightSource(cfg config.TerrainConfig) (terrain.HeightSource, error) {
	switch cfg.Noise {
	case config.NoiseHash, "":
		return terrain.HashNoise{}, nil
	case config.NoisePerlin:
		return terrain.NewPerlinNoise(cfg.Seed, cfg.PerlinScale), nil
	default:
		return nil, fmt.Errorf("unknown terrain noise %q", cfg.Noise)
	}
}

// terrainParams converts the terrain section into generator parameters.
func terrainParams(cfg config.TerrainConfig) (terrain.Params, error) {
	heights, err := heightSource(cfg)
	if err != nil {
		return terrain.Params{}, err
	}
	return terrain.Params{
		NumX:             cfg.NumX,
		NumZ:             cfg.NumZ,
		SpacingX:         cfg.SpacingX,
		SpacingZ:         cfg.SpacingZ,
		OffsetX:          cfg.OffsetX,
		OffsetZ:          cfg.OffsetZ,
		Amplitude:        cfg.Amplitude,
		TexTiles:         cfg.TexTiles,
		Heights:          heights,
		RecomputeNormals: cfg.RecomputeNormals,
	}, nil
}

// sceneConfig converts the loaded settings into the renderer's scene description.
func sceneConfig(cfg *config.Config) (renderer.SceneConfig, error) {
	params, err := terrainParams(cfg.Terrain)
	if err != nil {
		return renderer.SceneConfig{}, err
	}
	s := cfg.Scene
	return renderer.SceneConfig{
		VehicleModel:   s.VehicleModel,
		VehicleTexture: s.VehicleTexture,
		TerrainTexture: s.TerrainTexture,
		SkyboxModel:    s.SkyboxModel,
		SkyboxTextures: s.SkyboxTextures,
		SkyboxSize:     s.SkyboxSize,
		CubeSize:       s.CubeSize,
		Ambient:        s.Ambient,
		Sun:            lighting.Sun{Azimuth: s.SunAzimuth, Elevation: s.SunElevation},
		Terrain:        params,
	}, nil
}

func rendererConfig(cfg *config.Config) renderer.Config {
	return renderer.Config{
		Wireframe:     cfg.Graphics.Wireframe,
		AnimationStep: cfg.Scene.AnimationStep,
	}
}

// newCamera places the fly camera at the configured pose. Angles in the config are degrees.
func newCamera(cfg config.CameraConfig) *camera.FlyCamera {
	cam := camera.NewFlyCamera(
		mgl32.Vec3(cfg.Position),
		mgl32.DegToRad(cfg.Yaw),
		mgl32.DegToRad(cfg.Pitch),
	)
	if cfg.Speed > 0 {
		cam.Speed = cfg.Speed
	}
	if cfg.Sensitivity > 0 {
		cam.Sensitivity = cfg.Sensitivity
	}
	return cam
}
