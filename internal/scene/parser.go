package scene

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"scenemover/internal/domain"
)

// channelNamePattern captures the quoted name at the start of a channel
// config payload, e.g. `"Acoustic Gtr" 23 RD 1`.
var channelNamePattern = regexp.MustCompile(`^"([^"]*)"`)

// Parser turns raw scene text into an ordered line sequence plus the
// stereo links implied by the file's link flags.
//
// Parsing is deliberately lossless: a malformed or truncated line is
// retained verbatim as an opaque line rather than rejected, since scene
// files may carry device-specific extensions the parser does not model.
type Parser struct {
	format Format
	table  domain.PairingTable
}

// NewParser creates a parser for the given device format.
func NewParser(format Format) (*Parser, error) {
	table, err := format.Table()
	if err != nil {
		return nil, err
	}
	return &Parser{format: format, table: table}, nil
}

// Parse scans the raw scene text line by line.
func (p *Parser) Parse(r io.Reader) (*Scene, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}

	raw := strings.Split(string(data), "\n")
	trailingNewline := false
	if n := len(raw); n > 0 && raw[n-1] == "" && len(data) > 0 {
		raw = raw[:n-1]
		trailingNewline = true
	}

	sc := &Scene{
		format:          p.format,
		table:           p.table,
		names:           make(map[domain.Position]string),
		trailingNewline: trailingNewline,
	}

	for i, text := range raw {
		// Scenes saved by Windows tooling end lines with CRLF. The
		// carriage return stays out of the structural view and is
		// restored per line at serialization time.
		ending := ""
		if strings.HasSuffix(text, "\r") {
			text = strings.TrimSuffix(text, "\r")
			ending = "\r"
		}
		sc.endings = append(sc.endings, ending)

		line := p.classify(text)
		sc.lines = append(sc.lines, line)

		if i == 0 && strings.HasPrefix(text, "#") {
			sc.header = text
		}

		switch line.Kind() {
		case domain.LineChannel:
			p.recordName(sc, line)
		case domain.LineLinkFlags:
			p.recordLinks(sc, line)
		}
	}

	return sc, nil
}

// classify decomposes one raw line into its structural variant. Anything
// that does not round-trip through the recognized shapes stays opaque.
func (p *Parser) classify(text string) domain.ConfigLine {
	if !strings.HasPrefix(text, "/") {
		return domain.NewOpaqueLine(text)
	}

	head, payload, spaced := strings.Cut(text, " ")
	if spaced && payload == "" {
		// A bare trailing space would not survive re-serialization.
		return domain.NewOpaqueLine(text)
	}
	segs := strings.Split(head, "/")[1:]

	switch {
	case p.isLinkFlagsPath(segs):
		if !p.isLinkFlagsPayload(payload) {
			return domain.NewOpaqueLine(text)
		}
		return domain.NewLine(domain.LineLinkFlags, segs, payload)

	case len(segs) >= 2 && segs[0] == p.format.ChannelTag:
		if _, ok := p.channelNumber(segs[1]); !ok {
			return domain.NewOpaqueLine(text)
		}
		return domain.NewLine(domain.LineChannel, segs, payload)

	case len(segs) == 3 && segs[0] == p.format.OutputsTag && spaced:
		code, _, _ := strings.Cut(payload, " ")
		if v, err := strconv.Atoi(code); err != nil || strconv.Itoa(v) != code {
			return domain.NewOpaqueLine(text)
		}
		return domain.NewLine(domain.LineOutput, segs, payload)
	}

	return domain.NewOpaqueLine(text)
}

// channelNumber parses a channel path segment into a position inside the
// format's universe.
func (p *Parser) channelNumber(seg string) (domain.Position, bool) {
	v, err := strconv.Atoi(seg)
	if err != nil || strings.ContainsAny(seg, "+- ") {
		return 0, false
	}
	pos := domain.Position(v)
	if !p.table.Contains(pos) {
		return 0, false
	}
	return pos, true
}

func (p *Parser) isLinkFlagsPath(segs []string) bool {
	if len(segs) != len(p.format.LinkFlagsPath) {
		return false
	}
	for i, seg := range p.format.LinkFlagsPath {
		if segs[i] != seg {
			return false
		}
	}
	return true
}

// isLinkFlagsPayload accepts exactly one ON/OFF token per fixed pair,
// single-space separated, so the regenerated line reproduces an
// unchanged one byte-for-byte.
func (p *Parser) isLinkFlagsPayload(payload string) bool {
	tokens := strings.Split(payload, " ")
	if len(tokens) != p.table.PairCount() {
		return false
	}
	for _, tok := range tokens {
		if tok != "ON" && tok != "OFF" {
			return false
		}
	}
	return true
}

// recordName extracts the quoted channel name from a channel config line.
func (p *Parser) recordName(sc *Scene, line domain.ConfigLine) {
	path := line.Path()
	if len(path) < 3 || path[2] != p.format.ConfigSegment {
		return
	}
	pos, ok := p.channelNumber(path[1])
	if !ok {
		return
	}
	if m := channelNamePattern.FindStringSubmatch(line.Payload()); m != nil {
		sc.names[pos] = m[1]
	}
}

// recordLinks decodes the link-flag payload. A set flag always pairs a
// position with its fixed partner; flags carry no arbitrary pairing.
func (p *Parser) recordLinks(sc *Scene, line domain.ConfigLine) {
	for i, tok := range strings.Split(line.Payload(), " ") {
		if tok != "ON" {
			continue
		}
		lower, err := p.table.LowerAt(i)
		if err != nil {
			continue
		}
		link, err := p.table.LinkAt(lower)
		if err != nil {
			continue
		}
		sc.links = append(sc.links, link)
	}
}

// Scene is the parser's output: the ordered line sequence, the link set,
// and the channel names found along the way. Order is significant for
// some device firmwares and is preserved by the generator.
type Scene struct {
	format Format
	table  domain.PairingTable
	lines  []domain.ConfigLine
	links  []domain.ChannelLink
	names  map[domain.Position]string
	header string

	// endings holds the per-line carriage return ("" or "\r") so a
	// CRLF scene re-serializes byte-for-byte.
	endings         []string
	trailingNewline bool
}

// Format returns the device format the scene was parsed with.
func (s *Scene) Format() Format {
	return s.format
}

// Table returns the pairing table of the scene's device class.
func (s *Scene) Table() domain.PairingTable {
	return s.table
}

// Lines returns the parsed line sequence in file order.
func (s *Scene) Lines() []domain.ConfigLine {
	return s.lines
}

// Links returns the stereo links implied by the file's link flags.
func (s *Scene) Links() []domain.ChannelLink {
	return s.links
}

// Header returns the scene header line, if the file had one.
func (s *Scene) Header() string {
	return s.header
}

// LinkFor returns the link containing the given channel, if any.
func (s *Scene) LinkFor(p domain.Position) (domain.ChannelLink, bool) {
	for _, link := range s.links {
		if link.Contains(p) {
			return link, true
		}
	}
	return domain.ChannelLink{}, false
}

// ChannelName returns the parsed name of a channel, or a "Ch NN"
// placeholder when the scene does not name it.
func (s *Scene) ChannelName(p domain.Position) string {
	if name, ok := s.names[p]; ok && name != "" {
		return name
	}
	return fmt.Sprintf("Ch %02d", p)
}
