package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsDefaults(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.Width != 1000 || s.Height != 800 {
		t.Errorf("size = %dx%d, want 1000x800", s.Width, s.Height)
	}
	if s.AssetDir != "textures" {
		t.Errorf("AssetDir = %q, want textures", s.AssetDir)
	}
}

func TestLoadSettingsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	data := "width: 640\nheight: 480\ntitle: Test Scene\ncamera_speed: 2.5\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.Width != 640 || s.Height != 480 {
		t.Errorf("size = %dx%d, want 640x480", s.Width, s.Height)
	}
	if s.Title != "Test Scene" {
		t.Errorf("Title = %q", s.Title)
	}
	if s.CameraSpeed != 2.5 {
		t.Errorf("CameraSpeed = %v, want 2.5", s.CameraSpeed)
	}
	// unset keys keep their defaults
	if s.AssetDir != "textures" {
		t.Errorf("AssetDir = %q, want textures", s.AssetDir)
	}
}

func TestLoadSettingsEnvOverrides(t *testing.T) {
	t.Setenv("STILLLIFE_WIDTH", "320")
	t.Setenv("STILLLIFE_ASSET_DIR", "/srv/assets")

	s, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.Width != 320 {
		t.Errorf("Width = %d, want env override 320", s.Width)
	}
	if s.AssetDir != "/srv/assets" {
		t.Errorf("AssetDir = %q, want env override", s.AssetDir)
	}
}

func TestLoadSettingsRejectsBadValues(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("width: [not a number"), 0o644)
	if _, err := LoadSettings(bad); err == nil {
		t.Error("malformed yaml accepted")
	}

	zero := filepath.Join(dir, "zero.yaml")
	os.WriteFile(zero, []byte("width: 0\n"), 0o644)
	if _, err := LoadSettings(zero); err == nil {
		t.Error("zero window size accepted")
	}
}
