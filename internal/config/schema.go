package config

// Config is the root configuration structure
type Config struct {
	Version        int             `yaml:"version"`
	Listen         string          `yaml:"listen"`
	DefaultProfile string          `yaml:"default_profile"`
	Profiles       []DeviceProfile `yaml:"profiles,omitempty"`
}

// DeviceProfile describes one device class's scene layout: how many
// channels it has and where the format keeps channel blocks, link flags
// and output sources. Profiles are what makes the engine retargetable;
// the remap logic never hard-codes a channel count.
type DeviceProfile struct {
	Name string `yaml:"name"`

	// Channels is the size of the channel universe (must be even).
	Channels int `yaml:"channels"`

	// ChannelTag is the first path segment of channel lines.
	ChannelTag string `yaml:"channel_tag"`

	// ConfigSegment is the settings segment carrying the channel name.
	ConfigSegment string `yaml:"config_segment"`

	// LinkFlagsPath is the path of the stereo link-flag line.
	LinkFlagsPath string `yaml:"link_flags_path"`

	// OutputsTag is the first path segment of output assignment lines.
	OutputsTag string `yaml:"outputs_tag"`

	// SourceBase is the output source code addressing channel 1.
	SourceBase int `yaml:"source_base"`

	// SourceOff is the output source code meaning "off".
	SourceOff int `yaml:"source_off"`
}
