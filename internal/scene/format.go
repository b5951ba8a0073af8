package scene

import (
	"fmt"

	"scenemover/internal/domain"
)

// Format describes how one device class lays out its scene file: the size
// of the channel universe, the path tags that mark channel and output
// blocks, and the source-code window outputs use to address channels.
// Everything device-specific the parser, mapper and generator need lives
// here; the engine itself is format-agnostic.
type Format struct {
	// Name identifies the device class, e.g. "x32".
	Name string

	// Channels is the size of the position universe.
	Channels int

	// ChannelTag is the first path segment of channel lines ("ch").
	ChannelTag string

	// ConfigSegment is the per-channel settings segment carrying the
	// quoted channel name ("config").
	ConfigSegment string

	// LinkFlagsPath is the path of the stereo link-flag line, one
	// segment per element ("config", "chlink").
	LinkFlagsPath []string

	// OutputsTag is the first path segment of output assignment lines
	// ("outputs").
	OutputsTag string

	// SourceBase is the source code addressing channel 1. Codes
	// SourceBase..SourceBase+Channels-1 address channels.
	SourceBase int

	// SourceOff is the source code meaning "off".
	SourceOff int
}

// X32 returns the scene format of the Behringer X32 / Midas M32 family:
// 32 input channels, 16 link flags, channel sources at codes 26..57.
func X32() Format {
	return Format{
		Name:          "x32",
		Channels:      32,
		ChannelTag:    "ch",
		ConfigSegment: "config",
		LinkFlagsPath: []string{"config", "chlink"},
		OutputsTag:    "outputs",
		SourceBase:    26,
		SourceOff:     0,
	}
}

// Table builds the pairing table for the format's channel universe.
func (f Format) Table() (domain.PairingTable, error) {
	table, err := domain.NewPairingTable(f.Channels)
	if err != nil {
		return domain.PairingTable{}, fmt.Errorf("format %q: %w", f.Name, err)
	}
	return table, nil
}

// SourceChannel resolves a source code to the channel it addresses.
func (f Format) SourceChannel(code int) (domain.Position, bool) {
	if code < f.SourceBase || code >= f.SourceBase+f.Channels {
		return 0, false
	}
	return domain.Position(code - f.SourceBase + 1), true
}

// SourceCode returns the source code addressing channel p.
func (f Format) SourceCode(p domain.Position) int {
	return f.SourceBase + int(p) - 1
}
