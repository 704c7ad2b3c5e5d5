// Package config handles scene configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all application settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Camera   CameraConfig   `yaml:"camera"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Anisotropy float32    `yaml:"anisotropy"`
	ClearColor [4]float32 `yaml:"clear_color"`
	Wireframe  bool       `yaml:"wireframe"`

	// ScreenshotDir receives F12 captures
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// SceneConfig holds asset paths and object settings. Paths are relative to DataDir.
type SceneConfig struct {
	DataDir        string   `yaml:"data_dir"`
	VehicleModel   string   `yaml:"vehicle_model"`
	VehicleTexture string   `yaml:"vehicle_texture"`
	TerrainTexture string   `yaml:"terrain_texture"`
	SkyboxModel    string   `yaml:"skybox_model"`
	SkyboxTextures []string `yaml:"skybox_textures"` // top, right, left, front, back, bottom
	SkyboxSize     float32  `yaml:"skybox_size"`
	CubeSize       float32  `yaml:"cube_size"`
	Ambient        float32  `yaml:"ambient"`
	AnimationStep  float32  `yaml:"animation_step"` // Radians per frame
	SunAzimuth     float32  `yaml:"sun_azimuth"`    // Degrees
	SunElevation   float32  `yaml:"sun_elevation"`  // Degrees above the horizon
}

// Noise sources for terrain heights.
const (
	NoiseHash   = "hash"
	NoisePerlin = "perlin"
)

// TerrainConfig holds the height-field grid settings.
type TerrainConfig struct {
	NumX             int     `yaml:"num_x"`
	NumZ             int     `yaml:"num_z"`
	SpacingX         float32 `yaml:"spacing_x"`
	SpacingZ         float32 `yaml:"spacing_z"`
	OffsetX          float32 `yaml:"offset_x"`
	OffsetZ          float32 `yaml:"offset_z"`
	Amplitude        float32 `yaml:"amplitude"`
	TexTiles         float32 `yaml:"tex_tiles"`
	Noise            string  `yaml:"noise"`
	Seed             int64   `yaml:"seed"`
	PerlinScale      float64 `yaml:"perlin_scale"`
	RecomputeNormals bool    `yaml:"recompute_normals"`
}

// CameraConfig holds the initial camera pose and movement tuning.
type CameraConfig struct {
	Position    [3]float32 `yaml:"position"`
	Yaw         float32    `yaml:"yaw"`   // Degrees
	Pitch       float32    `yaml:"pitch"` // Degrees
	Speed       float32    `yaml:"speed"` // Units per second
	Sensitivity float32    `yaml:"sensitivity"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Anisotropy: 4,
			ClearColor: [4]float32{0.45, 0.55, 0.60, 1.0},

			ScreenshotDir: "screenshots",
		},
		Scene: SceneConfig{
			DataDir:        "Data",
			VehicleModel:   "Models/Jeep/jeep.obj",
			VehicleTexture: "Models/Jeep/jeep_rood.jpg",
			TerrainTexture: "Textures/grass11.bmp",
			SkyboxTextures: []string{
				"Models/Sky/Hills/skybox_top.jpg",
				"Models/Sky/Hills/skybox_right.jpg",
				"Models/Sky/Hills/skybox_left.jpg",
				"Models/Sky/Hills/skybox_front.jpg",
				"Models/Sky/Hills/skybox_back.jpg",
				"Models/Sky/Hills/skybox_bottom.jpg",
			},
			SkyboxSize:    10,
			CubeSize:      10,
			Ambient:       0.35,
			AnimationStep: 0.001,
			SunAzimuth:    56.3,
			SunElevation:  70.2,
		},
		Terrain: TerrainConfig{
			NumX:        50,
			NumZ:        50,
			SpacingX:    100,
			SpacingZ:    150,
			OffsetX:     2000,
			OffsetZ:     2000,
			Amplitude:   50,
			TexTiles:    40,
			Noise:       NoiseHash,
			Seed:        1,
			PerlinScale: 8,
		},
		Camera: CameraConfig{
			Position:    [3]float32{0, 200, 1500},
			Speed:       500,
			Sensitivity: 0.005,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports the first setting that cannot produce a scene.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: window size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Terrain.NumX < 2 || c.Terrain.NumZ < 2 {
		errs = append(errs, fmt.Errorf("terrain: grid %dx%d is smaller than 2x2", c.Terrain.NumX, c.Terrain.NumZ))
	}
	if c.Terrain.SpacingX <= 0 || c.Terrain.SpacingZ <= 0 {
		errs = append(errs, fmt.Errorf("terrain: spacing must be positive"))
	}
	switch c.Terrain.Noise {
	case NoiseHash, NoisePerlin:
	default:
		errs = append(errs, fmt.Errorf("terrain: unknown noise %q", c.Terrain.Noise))
	}
	if c.Scene.SkyboxSize <= 0 || c.Scene.CubeSize <= 0 {
		errs = append(errs, fmt.Errorf("scene: skybox and cube sizes must be positive"))
	}
	if c.Scene.SunElevation < 0 || c.Scene.SunElevation > 90 {
		errs = append(errs, fmt.Errorf("scene: sun elevation %.1f outside 0-90", c.Scene.SunElevation))
	}
	if c.Camera.Speed <= 0 {
		errs = append(errs, fmt.Errorf("camera: speed must be positive"))
	}
	return errors.Join(errs...)
}
