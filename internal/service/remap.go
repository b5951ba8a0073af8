package service

import (
	"errors"
	"fmt"
	"strings"

	"scenemover/internal/config"
	"scenemover/internal/domain"
	"scenemover/internal/scene"
)

// ErrUnknownProfile is returned when a request names a device profile the
// configuration does not define.
var ErrUnknownProfile = errors.New("service: unknown device profile")

// RemapService runs one scene remap end to end: parse, project the links
// through the caller-supplied crossbar, validate, regenerate. Every
// request owns its state; the service itself is stateless.
type RemapService struct {
	cfg *config.Config
}

// NewRemapService creates a new remap service
func NewRemapService(cfg *config.Config) *RemapService {
	return &RemapService{cfg: cfg}
}

// Profiles returns the configured device profiles.
func (s *RemapService) Profiles() []config.DeviceProfile {
	return s.cfg.Profiles
}

// ChannelInfo describes one channel of an inspected scene.
type ChannelInfo struct {
	Position domain.Position  `json:"position"`
	Name     string           `json:"name"`
	LinkedTo *domain.Position `json:"linked_to,omitempty"`
	Side     domain.Side      `json:"side,omitempty"`
}

// LinkInfo describes one stereo link of an inspected scene.
type LinkInfo struct {
	Left  domain.Position `json:"left"`
	Right domain.Position `json:"right"`
}

// InspectResult is the read-only view a mapping-builder client needs.
type InspectResult struct {
	Profile  string        `json:"profile"`
	Header   string        `json:"header,omitempty"`
	Channels []ChannelInfo `json:"channels"`
	Links    []LinkInfo    `json:"links"`
}

// RemapResult carries the rewritten scene and the warnings collected
// while projecting links and patching outputs.
type RemapResult struct {
	Scene    string   `json:"scene"`
	Warnings []string `json:"warnings"`
}

// Inspect parses a scene and reports its channels, names and links.
func (s *RemapService) Inspect(profileName, content string) (*InspectResult, error) {
	sc, err := s.parse(profileName, content)
	if err != nil {
		return nil, err
	}

	table := sc.Table()
	result := &InspectResult{
		Profile:  sc.Format().Name,
		Header:   sc.Header(),
		Channels: make([]ChannelInfo, 0, table.Channels()),
		Links:    make([]LinkInfo, 0, len(sc.Links())),
	}

	for pos := domain.Position(1); table.Contains(pos); pos++ {
		info := ChannelInfo{Position: pos, Name: sc.ChannelName(pos)}
		if link, ok := sc.LinkFor(pos); ok {
			partner, err := link.Partner(pos)
			if err != nil {
				return nil, fmt.Errorf("inspect channel %d: %w", pos, err)
			}
			side, err := link.Side(pos)
			if err != nil {
				return nil, fmt.Errorf("inspect channel %d: %w", pos, err)
			}
			info.LinkedTo = &partner
			info.Side = side
		}
		result.Channels = append(result.Channels, info)
	}

	for _, link := range sc.Links() {
		result.Links = append(result.Links, LinkInfo{Left: link.Left(), Right: link.Right()})
	}

	return result, nil
}

// Remap rewrites a scene under the given old→new mappings. Conflicting
// mappings fail; lost or broken stereo links degrade to warnings beside a
// still-usable output file.
func (s *RemapService) Remap(profileName, content string, mappings []domain.Mapping) (*RemapResult, error) {
	sc, err := s.parse(profileName, content)
	if err != nil {
		return nil, err
	}

	xbar := domain.NewCrossbar(sc.Format().Channels)
	for _, m := range mappings {
		if err := xbar.Connect(m.Old, m.New); err != nil {
			return nil, fmt.Errorf("build crossbar: %w", err)
		}
	}

	mapper := scene.NewMapper(sc, xbar)
	output, generatorWarnings := scene.NewGenerator(sc, xbar, mapper).Generate()

	warnings := []string{}
	warnings = append(warnings, mapper.Warnings()...)
	warnings = append(warnings, generatorWarnings...)

	return &RemapResult{Scene: output, Warnings: warnings}, nil
}

func (s *RemapService) parse(profileName, content string) (*scene.Scene, error) {
	profile, ok := s.cfg.ProfileByName(profileName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, profileName)
	}

	parser, err := scene.NewParser(formatFor(profile))
	if err != nil {
		return nil, fmt.Errorf("profile %q: %w", profile.Name, err)
	}
	return parser.Parse(strings.NewReader(content))
}

// formatFor translates a configured profile into the engine's format.
func formatFor(p config.DeviceProfile) scene.Format {
	return scene.Format{
		Name:          p.Name,
		Channels:      p.Channels,
		ChannelTag:    p.ChannelTag,
		ConfigSegment: p.ConfigSegment,
		LinkFlagsPath: splitPath(p.LinkFlagsPath),
		OutputsTag:    p.OutputsTag,
		SourceBase:    p.SourceBase,
		SourceOff:     p.SourceOff,
	}
}

func splitPath(path string) []string {
	return strings.Split(strings.TrimPrefix(path, "/"), "/")
}
