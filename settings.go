package main

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Settings configures the display and asset locations. Values come from
// an optional YAML file, then environment overrides, then defaults.
type Settings struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Title       string  `yaml:"title"`
	AssetDir    string  `yaml:"asset_dir"`
	CameraSpeed float32 `yaml:"camera_speed"`
}

func defaultSettings() Settings {
	return Settings{
		Width:       1000,
		Height:      800,
		Title:       "Still Life",
		AssetDir:    "textures",
		CameraSpeed: 10,
	}
}

// LoadSettings reads the YAML file at path if it exists, then applies
// STILLLIFE_* environment overrides.
func LoadSettings(path string) (Settings, error) {
	s := defaultSettings()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &s); err != nil {
			return s, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return s, fmt.Errorf("read %s: %w", path, err)
	}

	if v := os.Getenv("STILLLIFE_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			s.Width = n
		}
	}
	if v := os.Getenv("STILLLIFE_HEIGHT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			s.Height = n
		}
	}
	if v := os.Getenv("STILLLIFE_TITLE"); v != "" {
		s.Title = v
	}
	if v := os.Getenv("STILLLIFE_ASSET_DIR"); v != "" {
		s.AssetDir = v
	}

	if s.Width <= 0 || s.Height <= 0 {
		return s, fmt.Errorf("invalid window size %dx%d", s.Width, s.Height)
	}
	return s, nil
}
