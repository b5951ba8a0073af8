// Package config provides configuration management for the scene remapper.
//
// The config file carries the serving address and the device profiles the
// server accepts remap requests for. Without a file the built-in defaults
// (X32-family profiles) apply.
//
// Config file locations (priority order):
//  1. $SCENEMOVER_CONFIG
//  2. ./scenemover.yaml
//  3. ~/.config/scenemover/config.yaml
//  4. /etc/scenemover/config.yaml
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"scenemover/internal/scene"
)

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, path, err
	}

	return &cfg, path, nil
}

// DefaultConfig returns sensible defaults for a new installation
func DefaultConfig() *Config {
	return &Config{
		Version:        1,
		Listen:         ":3000",
		DefaultProfile: "x32",
		Profiles:       DefaultProfiles(),
	}
}

// DefaultProfiles returns the built-in device profiles. The X32, the
// X32 Compact and the Midas M32 all write the same 32-channel scene
// format; separate entries keep their names addressable in requests.
// The field values come from the engine's X32 format so the two never
// drift apart.
func DefaultProfiles() []DeviceProfile {
	f := scene.X32()
	base := DeviceProfile{
		Channels:      f.Channels,
		ChannelTag:    f.ChannelTag,
		ConfigSegment: f.ConfigSegment,
		LinkFlagsPath: "/" + strings.Join(f.LinkFlagsPath, "/"),
		OutputsTag:    f.OutputsTag,
		SourceBase:    f.SourceBase,
		SourceOff:     f.SourceOff,
	}

	profiles := make([]DeviceProfile, 0, 3)
	for _, name := range []string{"x32", "x32-compact", "m32"} {
		p := base
		p.Name = name
		profiles = append(profiles, p)
	}
	return profiles
}

// ProfileByName returns the named profile; an empty name selects the
// configured default.
func (c *Config) ProfileByName(name string) (DeviceProfile, bool) {
	if name == "" {
		name = c.DefaultProfile
	}
	for _, p := range c.Profiles {
		if p.Name == name {
			return p, true
		}
	}
	return DeviceProfile{}, false
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Listen == "" {
		c.Listen = ":3000"
	}
	if len(c.Profiles) == 0 {
		c.Profiles = DefaultProfiles()
	}
	if c.DefaultProfile == "" {
		c.DefaultProfile = c.Profiles[0].Name
	}

	reference := DefaultProfiles()[0]
	for i := range c.Profiles {
		p := &c.Profiles[i]
		if p.Channels == 0 {
			p.Channels = reference.Channels
		}
		if p.ChannelTag == "" {
			p.ChannelTag = reference.ChannelTag
		}
		if p.ConfigSegment == "" {
			p.ConfigSegment = reference.ConfigSegment
		}
		if p.LinkFlagsPath == "" {
			p.LinkFlagsPath = reference.LinkFlagsPath
		}
		if p.OutputsTag == "" {
			p.OutputsTag = reference.OutputsTag
		}
		if p.SourceBase == 0 {
			p.SourceBase = reference.SourceBase
		}
	}
}

func (c *Config) validate() error {
	for _, p := range c.Profiles {
		if p.Name == "" {
			return fmt.Errorf("config: profile with empty name")
		}
		if p.Channels <= 0 || p.Channels%2 != 0 {
			return fmt.Errorf("config: profile %q: channels must be a positive even number, got %d", p.Name, p.Channels)
		}
	}
	if _, ok := c.ProfileByName(c.DefaultProfile); !ok {
		return fmt.Errorf("config: default profile %q is not defined", c.DefaultProfile)
	}
	return nil
}
