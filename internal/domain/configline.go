package domain

import (
	"fmt"
	"strings"
)

// LineKind tags the structural variant of a parsed scene line. Keeping the
// variant explicit keeps the generator's rewrite switch exhaustive instead
// of sniffing sentinel path values.
type LineKind string

const (
	// LineOpaque is the catch-all: headers, blank lines and any shape the
	// parser does not model. Opaque lines are preserved verbatim.
	LineOpaque LineKind = "opaque"

	// LineChannel is a per-channel settings line, e.g. /ch/01/config ...
	LineChannel LineKind = "channel"

	// LineLinkFlags is the line carrying the per-pair stereo link flags.
	LineLinkFlags LineKind = "link_flags"

	// LineOutput is an output assignment line whose payload starts with a
	// numeric source code.
	LineOutput LineKind = "output"
)

// ConfigLine is an immutable structural view of one raw scene line: a
// hierarchical path plus an opaque settings payload. Derived copies are
// produced on demand; an existing line is never mutated in place.
type ConfigLine struct {
	kind    LineKind
	path    []string
	payload string
	raw     string
}

// NewLine creates a recognized line from its decomposed parts.
func NewLine(kind LineKind, path []string, payload string) ConfigLine {
	return ConfigLine{kind: kind, path: append([]string(nil), path...), payload: payload}
}

// NewOpaqueLine wraps an unrecognized line. Its path is the single
// catch-all segment holding the whole raw text, so no information is
// ever discarded.
func NewOpaqueLine(raw string) ConfigLine {
	return ConfigLine{kind: LineOpaque, path: []string{raw}, raw: raw}
}

// Kind returns the structural variant of the line.
func (l ConfigLine) Kind() LineKind {
	return l.kind
}

// Path returns a copy of the line's path segments.
func (l ConfigLine) Path() []string {
	return append([]string(nil), l.path...)
}

// PathPart returns the path segment at index.
func (l ConfigLine) PathPart(index int) (string, error) {
	if index < 0 || index >= len(l.path) {
		return "", fmt.Errorf("path part %d of %d-segment line: %w", index, len(l.path), ErrOutOfRange)
	}
	return l.path[index], nil
}

// Payload returns the opaque settings remainder of the line.
func (l ConfigLine) Payload() string {
	return l.payload
}

// MatchContext reports whether the line's path starts with the given
// prefix segments. Used to select all lines of one channel's block.
func (l ConfigLine) MatchContext(prefix ...string) bool {
	if len(prefix) > len(l.path) {
		return false
	}
	for i, seg := range prefix {
		if l.path[i] != seg {
			return false
		}
	}
	return true
}

// WithReplacedPathPart returns a derived line whose path segment at index
// is replaced. The payload is carried over unchanged, which is how
// settings move between channels byte-for-byte.
func (l ConfigLine) WithReplacedPathPart(index int, value string) (ConfigLine, error) {
	if index < 0 || index >= len(l.path) {
		return ConfigLine{}, fmt.Errorf("replace path part %d of %d-segment line: %w", index, len(l.path), ErrOutOfRange)
	}
	out := ConfigLine{kind: l.kind, path: l.Path(), payload: l.payload}
	out.path[index] = value
	if out.kind == LineOpaque {
		out.raw = value
	}
	return out, nil
}

// WithPayload returns a derived line with the payload replaced and the
// path carried over. Only the link-flag and output rewrites use this.
func (l ConfigLine) WithPayload(payload string) ConfigLine {
	return ConfigLine{kind: l.kind, path: l.Path(), payload: payload}
}

// String serializes the line back to scene-file text. An untouched line
// reproduces its original bytes exactly.
func (l ConfigLine) String() string {
	if l.kind == LineOpaque {
		return l.raw
	}
	if l.payload == "" {
		return "/" + strings.Join(l.path, "/")
	}
	return "/" + strings.Join(l.path, "/") + " " + l.payload
}
