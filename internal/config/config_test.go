package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 800 {
		t.Errorf("expected width 800, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 600 {
		t.Errorf("expected height 600, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Camera.FOV != 45 {
		t.Errorf("expected fov 45, got %f", cfg.Camera.FOV)
	}
	if cfg.Camera.Near != 0.1 || cfg.Camera.Far != 100 {
		t.Errorf("expected near/far 0.1/100, got %f/%f", cfg.Camera.Near, cfg.Camera.Far)
	}
	if cfg.Camera.DragSensitivity != 0.01 {
		t.Errorf("expected drag sensitivity 0.01, got %f", cfg.Camera.DragSensitivity)
	}
	if cfg.Camera.ZoomSensitivity != 0.1 {
		t.Errorf("expected zoom sensitivity 0.1, got %f", cfg.Camera.ZoomSensitivity)
	}
	if cfg.Camera.BaseDistance != 0 || cfg.Camera.AngularSpeed != 0 {
		t.Error("expected base_distance/angular_speed to default to 0 (demo defaults)")
	}

	if cfg.Demo.Name != "colors" {
		t.Errorf("expected demo 'colors', got %s", cfg.Demo.Name)
	}
	if cfg.Demo.Texture != "" {
		t.Errorf("expected empty texture path, got %s", cfg.Demo.Texture)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1000
  height: 800
  fullscreen: true
  vsync: false

camera:
  fov: 60
  near: 0.5
  far: 500
  base_distance: 3
  angular_speed: 0.5

demo:
  name: phong-lab
  texture: rose.tga

logging:
  level: "debug"
  log_file: "demo.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1000 {
		t.Errorf("expected width 1000, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 800 {
		t.Errorf("expected height 800, got %d", cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}

	if cfg.Camera.FOV != 60 {
		t.Errorf("expected fov 60, got %f", cfg.Camera.FOV)
	}
	if cfg.Camera.BaseDistance != 3 {
		t.Errorf("expected base distance 3, got %f", cfg.Camera.BaseDistance)
	}
	if cfg.Camera.AngularSpeed != 0.5 {
		t.Errorf("expected angular speed 0.5, got %f", cfg.Camera.AngularSpeed)
	}

	// Values absent from the file keep their defaults
	if cfg.Camera.DragSensitivity != 0.01 {
		t.Errorf("expected drag sensitivity 0.01 to survive merge, got %f", cfg.Camera.DragSensitivity)
	}

	if cfg.Demo.Name != "phong-lab" {
		t.Errorf("expected demo 'phong-lab', got %s", cfg.Demo.Name)
	}
	if cfg.Demo.Texture != "rose.tga" {
		t.Errorf("expected texture 'rose.tga', got %s", cfg.Demo.Texture)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "demo.log" {
		t.Errorf("expected log file 'demo.log', got %s", cfg.Logging.LogFile)
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
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestSaveTo(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := Default()
	cfg.Demo.Name = "textured-fx"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Demo.Name != "textured-fx" {
		t.Errorf("expected demo 'textured-fx' after round trip, got %s", loaded.Demo.Name)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "demo flag",
			setup: func() {
				*flagDemo = "phong"
			},
			verify: func(cfg *Config) {
				if cfg.Demo.Name != "phong" {
					t.Errorf("expected demo 'phong', got %s", cfg.Demo.Name)
				}
			},
			teardown: func() {
				*flagDemo = ""
			},
		},
		{
			name: "texture flag",
			setup: func() {
				*flagTexture = "assets/rose.png"
			},
			verify: func(cfg *Config) {
				if cfg.Demo.Texture != "assets/rose.png" {
					t.Errorf("expected texture 'assets/rose.png', got %s", cfg.Demo.Texture)
				}
			},
			teardown: func() {
				*flagTexture = ""
			},
		},
		{
			name: "fullscreen flag",
			setup: func() {
				*flagFullscreen = true
			},
			verify: func(cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() {
				*flagFullscreen = false
			},
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 1280
				*flagHeight = 720
			},
			verify: func(cfg *Config) {
				if cfg.Graphics.Width != 1280 {
					t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
				}
				if cfg.Graphics.Height != 720 {
					t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

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

	// Width comes from the flag, height from the file
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}
