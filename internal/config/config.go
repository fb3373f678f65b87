package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth     = 600
	DefaultHeight    = 360
	DefaultFPS       = 60
	DefaultStepHours = 24.0
	DefaultCamera    = 8.0
	DefaultTiltDeg   = 15.0
)

// Config holds everything the viewer and the headless runner need.
type Config struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	FPS       int     `yaml:"fps"`
	StepHours float64 `yaml:"step_hours"`
	// Textured switches the planets from wireframe to textured spheres.
	Textured   bool   `yaml:"textured"`
	TextureDir string `yaml:"texture_dir"`
	// CameraDistance is how far the eye backs off from the sun.
	CameraDistance float64 `yaml:"camera_distance"`
	// TiltDeg tips the ecliptic plane toward the viewer.
	TiltDeg    float64 `yaml:"tilt_deg"`
	ShowOrbits bool    `yaml:"show_orbits"`
	ShowStars  bool    `yaml:"show_stars"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		FPS:            DefaultFPS,
		StepHours:      DefaultStepHours,
		TextureDir:     "images",
		CameraDistance: DefaultCamera,
		TiltDeg:        DefaultTiltDeg,
		ShowOrbits:     true,
		ShowStars:      true,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate clamps degenerate window dimensions to 1 (the projection
// divides by height) and rejects values that cannot be worked around.
func (c *Config) Validate() error {
	if c.Width <= 0 {
		c.Width = 1
	}
	if c.Height <= 0 {
		c.Height = 1
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.StepHours <= 0 {
		return fmt.Errorf("step_hours must be positive, got %f", c.StepHours)
	}
	if c.CameraDistance <= 0 {
		return fmt.Errorf("camera_distance must be positive, got %f", c.CameraDistance)
	}
	return nil
}
