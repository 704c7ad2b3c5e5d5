package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Wireframe {
		t.Error("expected wireframe to be false by default")
	}

	if cfg.Scene.DataDir != "Data" {
		t.Errorf("expected data dir 'Data', got %s", cfg.Scene.DataDir)
	}
	if len(cfg.Scene.SkyboxTextures) != 6 {
		t.Errorf("expected 6 skybox textures, got %d", len(cfg.Scene.SkyboxTextures))
	}
	if cfg.Scene.AnimationStep != 0.001 {
		t.Errorf("expected animation step 0.001, got %f", cfg.Scene.AnimationStep)
	}

	if cfg.Terrain.NumX != 50 || cfg.Terrain.NumZ != 50 {
		t.Errorf("expected 50x50 grid, got %dx%d", cfg.Terrain.NumX, cfg.Terrain.NumZ)
	}
	if cfg.Terrain.SpacingX != 100 || cfg.Terrain.SpacingZ != 150 {
		t.Errorf("expected spacing 100/150, got %f/%f", cfg.Terrain.SpacingX, cfg.Terrain.SpacingZ)
	}
	if cfg.Terrain.Noise != NoiseHash {
		t.Errorf("expected noise %q, got %q", NoiseHash, cfg.Terrain.Noise)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }, "window size"},
		{"negative height", func(c *Config) { c.Graphics.Height = -1 }, "window size"},
		{"grid too small", func(c *Config) { c.Terrain.NumX = 1 }, "smaller than 2x2"},
		{"zero spacing", func(c *Config) { c.Terrain.SpacingZ = 0 }, "spacing"},
		{"unknown noise", func(c *Config) { c.Terrain.Noise = "simplex" }, "unknown noise"},
		{"zero cube", func(c *Config) { c.Scene.CubeSize = 0 }, "sizes must be positive"},
		{"sun below horizon", func(c *Config) { c.Scene.SunElevation = -5 }, "sun elevation"},
		{"zero speed", func(c *Config) { c.Camera.Speed = 0 }, "speed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}

	t.Run("perlin accepted", func(t *testing.T) {
		cfg := Default()
		cfg.Terrain.Noise = NoisePerlin
		if err := cfg.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  wireframe: true

scene:
  data_dir: "/opt/hills"
  ambient: 0.5

terrain:
  num_x: 64
  noise: "perlin"
  seed: 42
  recompute_normals: true

camera:
  position: [10, 20, 30]
  pitch: -15

logging:
  level: "debug"
  log_file: "hillscene.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if !cfg.Graphics.Wireframe {
		t.Error("expected wireframe to be true")
	}

	if cfg.Scene.DataDir != "/opt/hills" {
		t.Errorf("expected data dir /opt/hills, got %s", cfg.Scene.DataDir)
	}
	if cfg.Scene.Ambient != 0.5 {
		t.Errorf("expected ambient 0.5, got %f", cfg.Scene.Ambient)
	}
	// Keys absent from the file keep their defaults
	if cfg.Scene.VehicleModel != "Models/Jeep/jeep.obj" {
		t.Errorf("expected default vehicle model, got %s", cfg.Scene.VehicleModel)
	}

	if cfg.Terrain.NumX != 64 {
		t.Errorf("expected num_x 64, got %d", cfg.Terrain.NumX)
	}
	if cfg.Terrain.NumZ != 50 {
		t.Errorf("expected default num_z 50, got %d", cfg.Terrain.NumZ)
	}
	if cfg.Terrain.Noise != NoisePerlin || cfg.Terrain.Seed != 42 {
		t.Errorf("expected perlin noise with seed 42, got %s/%d", cfg.Terrain.Noise, cfg.Terrain.Seed)
	}
	if !cfg.Terrain.RecomputeNormals {
		t.Error("expected recompute_normals to be true")
	}

	if cfg.Camera.Position != [3]float32{10, 20, 30} {
		t.Errorf("expected camera position [10 20 30], got %v", cfg.Camera.Position)
	}
	if cfg.Camera.Pitch != -15 {
		t.Errorf("expected pitch -15, got %f", cfg.Camera.Pitch)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "hillscene.log" {
		t.Errorf("expected log file 'hillscene.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/hillscene.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, FileName)
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Errorf("expected to find %s in current directory", FileName)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	cfg := Default()
	cfg.Terrain.Noise = NoisePerlin
	cfg.Camera.Yaw = 90
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Terrain.Noise != NoisePerlin || loaded.Camera.Yaw != 90 {
		t.Errorf("saved settings not restored: noise %s yaw %f", loaded.Terrain.Noise, loaded.Camera.Yaw)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Graphics.Width)
				}
				if cfg.Graphics.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "wireframe flag",
			setup: func() { *flagWireframe = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Wireframe {
					t.Error("expected wireframe to be true with wireframe flag")
				}
			},
			teardown: func() { *flagWireframe = false },
		},
		{
			name:  "data flag",
			setup: func() { *flagData = "/srv/data" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.DataDir != "/srv/data" {
					t.Errorf("expected data dir /srv/data, got %s", cfg.Scene.DataDir)
				}
			},
			teardown: func() { *flagData = "" },
		},
		{
			name:  "noise flag",
			setup: func() { *flagNoise = NoisePerlin },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Terrain.Noise != NoisePerlin {
					t.Errorf("expected noise perlin, got %s", cfg.Terrain.Noise)
				}
			},
			teardown: func() { *flagNoise = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Flag overrides the config file
	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
	if cfg.Terrain.NumX != 50 {
		t.Errorf("expected num_x 50 from defaults, got %d", cfg.Terrain.NumX)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(configPath, []byte("terrain:\n  num_z: 1\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected Load to reject a 2x1 terrain grid")
	}
}
