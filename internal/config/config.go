// Package config handles demo configuration loading and management.
package config

// Config holds all demo settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Demo     DemoConfig     `yaml:"demo"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// CameraConfig holds the transform pipeline parameters. BaseDistance and
// AngularSpeed of 0 mean "use the selected demo's own defaults".
type CameraConfig struct {
	FOV             float32 `yaml:"fov"` // degrees
	Near            float32 `yaml:"near"`
	Far             float32 `yaml:"far"`
	DragSensitivity float32 `yaml:"drag_sensitivity"`
	ZoomSensitivity float32 `yaml:"zoom_sensitivity"`
	BaseDistance    float32 `yaml:"base_distance"`
	AngularSpeed    float32 `yaml:"angular_speed"` // rad/s
}

// DemoConfig selects the demo and its assets.
type DemoConfig struct {
	Name    string `yaml:"name"`
	Texture string `yaml:"texture"` // path to a TGA/PNG; empty uses a built-in pattern
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
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
		},
		Camera: CameraConfig{
			FOV:             45,
			Near:            0.1,
			Far:             100,
			DragSensitivity: 0.01,
			ZoomSensitivity: 0.1,
		},
		Demo: DemoConfig{
			Name:    "colors",
			Texture: "",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
