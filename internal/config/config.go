// Package config loads and validates the settings the demo harness and
// tests use to size a volume and locate its texture manifest.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	minDimension = 1
	maxDimension = 1024
)

// Config holds the volume dimensions, cube size, and texture manifest path
// a caller assembles before building a Volume and Mesher.
type Config struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	Depth        int     `yaml:"depth"`
	CubeSize     float32 `yaml:"cube_size"`
	TexturesPath string  `yaml:"textures_path"`
}

// Default returns the configuration the demo harness falls back to when no
// file is given.
func Default() Config {
	return Config{
		Width:    32,
		Height:   32,
		Depth:    32,
		CubeSize: 1,
	}
}

// Load reads a YAML file at path over Default, then clamps its dimensions
// to the (0, 1024] range. An empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}

	cfg.clampDimensions()
	if cfg.CubeSize <= 0 {
		cfg.CubeSize = 1
	}
	return cfg, nil
}

func (c *Config) clampDimensions() {
	c.Width = clamp(c.Width, minDimension, maxDimension)
	c.Height = clamp(c.Height, minDimension, maxDimension)
	c.Depth = clamp(c.Depth, minDimension, maxDimension)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
