package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scenemover/internal/scene"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Listen != ":3000" {
		t.Errorf("Listen = %q, want :3000", cfg.Listen)
	}
	if cfg.DefaultProfile != "x32" {
		t.Errorf("DefaultProfile = %q, want x32", cfg.DefaultProfile)
	}
	if len(cfg.Profiles) != 3 {
		t.Fatalf("expected 3 built-in profiles, got %d", len(cfg.Profiles))
	}

	for _, name := range []string{"x32", "x32-compact", "m32"} {
		p, ok := cfg.ProfileByName(name)
		if !ok {
			t.Errorf("missing built-in profile %q", name)
			continue
		}
		if p.Channels != 32 {
			t.Errorf("profile %q channels = %d, want 32", name, p.Channels)
		}
		if p.LinkFlagsPath != "/config/chlink" {
			t.Errorf("profile %q link flags path = %q", name, p.LinkFlagsPath)
		}
		if p.SourceBase != 26 {
			t.Errorf("profile %q source base = %d, want 26", name, p.SourceBase)
		}
	}
}

func TestDefaultProfilesMatchEngineFormat(t *testing.T) {
	f := scene.X32()
	wantFlags := "/" + strings.Join(f.LinkFlagsPath, "/")

	for _, p := range DefaultProfiles() {
		if p.Channels != f.Channels {
			t.Errorf("profile %q channels = %d, want %d", p.Name, p.Channels, f.Channels)
		}
		if p.ChannelTag != f.ChannelTag {
			t.Errorf("profile %q channel tag = %q, want %q", p.Name, p.ChannelTag, f.ChannelTag)
		}
		if p.ConfigSegment != f.ConfigSegment {
			t.Errorf("profile %q config segment = %q, want %q", p.Name, p.ConfigSegment, f.ConfigSegment)
		}
		if p.LinkFlagsPath != wantFlags {
			t.Errorf("profile %q link flags path = %q, want %q", p.Name, p.LinkFlagsPath, wantFlags)
		}
		if p.OutputsTag != f.OutputsTag {
			t.Errorf("profile %q outputs tag = %q, want %q", p.Name, p.OutputsTag, f.OutputsTag)
		}
		if p.SourceBase != f.SourceBase || p.SourceOff != f.SourceOff {
			t.Errorf("profile %q source codes = (%d,%d), want (%d,%d)",
				p.Name, p.SourceBase, p.SourceOff, f.SourceBase, f.SourceOff)
		}
	}
}

func TestProfileByName(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("empty name selects the default profile", func(t *testing.T) {
		p, ok := cfg.ProfileByName("")
		if !ok || p.Name != "x32" {
			t.Errorf("ProfileByName(\"\") = %q, %v; want x32", p.Name, ok)
		}
	})

	t.Run("unknown name misses", func(t *testing.T) {
		if _, ok := cfg.ProfileByName("dm48"); ok {
			t.Error("unexpected hit for unknown profile")
		}
	})
}

func TestLoadFromPath(t *testing.T) {
	t.Run("partial file gets defaults filled in", func(t *testing.T) {
		path := writeConfig(t, `
listen: ":8080"
profiles:
  - name: x32-rack
`)
		cfg, gotPath, err := LoadFromPath(path)
		if err != nil {
			t.Fatalf("LoadFromPath failed: %v", err)
		}
		if gotPath != path {
			t.Errorf("returned path = %q, want %q", gotPath, path)
		}
		if cfg.Listen != ":8080" {
			t.Errorf("Listen = %q, want :8080", cfg.Listen)
		}

		p, ok := cfg.ProfileByName("x32-rack")
		if !ok {
			t.Fatal("declared profile missing")
		}
		if p.Channels != 32 || p.ChannelTag != "ch" || p.LinkFlagsPath != "/config/chlink" {
			t.Errorf("profile defaults not applied: %+v", p)
		}
		if cfg.DefaultProfile != "x32-rack" {
			t.Errorf("DefaultProfile = %q, want first declared profile", cfg.DefaultProfile)
		}
	})

	t.Run("rejects odd channel counts", func(t *testing.T) {
		path := writeConfig(t, `
profiles:
  - name: broken
    channels: 31
`)
		if _, _, err := LoadFromPath(path); err == nil {
			t.Error("expected validation error for odd channel count")
		}
	})

	t.Run("rejects undefined default profile", func(t *testing.T) {
		path := writeConfig(t, `
default_profile: ghost
profiles:
  - name: x32
`)
		if _, _, err := LoadFromPath(path); err == nil {
			t.Error("expected validation error for undefined default profile")
		}
	})

	t.Run("missing file errors", func(t *testing.T) {
		if _, _, err := LoadFromPath(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenemover.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
