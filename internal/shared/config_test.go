package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig carries embedded defaults", func(t *testing.T) {
		config := DefaultConfig()

		if config.Player.Volume != 50 {
			t.Errorf("expected default volume 50, got %d", config.Player.Volume)
		}
		if config.Player.Codec != "auto" {
			t.Errorf("expected codec policy auto, got %q", config.Player.Codec)
		}
		if config.Playback.DecodeDelayMS != 200 {
			t.Errorf("expected decode delay 200ms, got %d", config.Playback.DecodeDelayMS)
		}
		if config.Playback.PaceLimit != 5.0 {
			t.Errorf("expected pace limit 5.0, got %f", config.Playback.PaceLimit)
		}
		if config.Database.Path != "jukebox.db" {
			t.Errorf("expected database path jukebox.db, got %q", config.Database.Path)
		}
		if !config.Demo.Shuffle {
			t.Error("expected demo shuffle enabled by default")
		}
		if config.Demo.Repeat != 2 {
			t.Errorf("expected demo repeat 2, got %d", config.Demo.Repeat)
		}
	})

	t.Run("SaveConfig and LoadConfig round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")

		config := DefaultConfig()
		config.Player.Volume = 80
		config.Database.Path = "custom.db"

		if err := SaveConfig(path, config); err != nil {
			t.Fatalf("SaveConfig() error: %v", err)
		}

		loaded, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error: %v", err)
		}
		if loaded.Player.Volume != 80 {
			t.Errorf("expected volume 80, got %d", loaded.Player.Volume)
		}
		if loaded.Database.Path != "custom.db" {
			t.Errorf("expected database path custom.db, got %q", loaded.Database.Path)
		}
	})

	t.Run("SaveConfig rejects nil config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := SaveConfig(path, nil); err == nil {
			t.Error("expected error for nil config")
		}
	})

	t.Run("LoadConfig fails on missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("LoadConfig fails on malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.toml")
		if err := os.WriteFile(path, []byte("not [valid toml"), 0644); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}

		if _, err := LoadConfig(path); err == nil {
			t.Error("expected error for malformed file")
		}
	})

	t.Run("CreateConfigFile writes template once", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")

		if err := CreateConfigFile(path); err != nil {
			t.Fatalf("CreateConfigFile() error: %v", err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error: %v", err)
		}
		if config.Player.Volume != 50 {
			t.Errorf("expected template volume 50, got %d", config.Player.Volume)
		}

		if err := CreateConfigFile(path); err == nil {
			t.Error("expected error when config file already exists")
		}
	})
}
