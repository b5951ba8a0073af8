package scene

import (
	"fmt"
	"strconv"
	"strings"

	"scenemover/internal/domain"
)

// Generator emits the rewritten scene. Channel identifiers move through
// the crossbar, the link-flag line is regenerated from the mapper's
// export state, and everything else passes through byte-identical in the
// original order. Crossbar completeness is not validated here: an
// unmapped channel stays exactly where it was, which is a valid outcome
// for a partial remap.
type Generator struct {
	scene  *Scene
	xbar   *domain.Crossbar
	mapper *Mapper
}

// NewGenerator creates a generator over a parsed scene, a finished
// crossbar and the mapper holding the validated link state.
func NewGenerator(sc *Scene, xbar *domain.Crossbar, mapper *Mapper) *Generator {
	return &Generator{scene: sc, xbar: xbar, mapper: mapper}
}

// Generate serializes the rewritten scene and returns it together with
// the warnings produced while rewriting output assignments.
func (g *Generator) Generate() (string, []string) {
	var warnings []string
	lines := g.scene.Lines()

	var out strings.Builder
	for i, line := range lines {
		switch line.Kind() {
		case domain.LineChannel:
			line = g.rewriteChannel(line)
		case domain.LineLinkFlags:
			line = g.rewriteLinkFlags(line)
		case domain.LineOutput:
			var w []string
			line, w = g.rewriteOutput(line)
			warnings = append(warnings, w...)
		case domain.LineOpaque:
			// Preserved verbatim.
		}
		out.WriteString(line.String())
		out.WriteString(g.scene.endings[i])
		if i < len(lines)-1 || g.scene.trailingNewline {
			out.WriteByte('\n')
		}
	}
	return out.String(), warnings
}

// rewriteChannel relocates a channel line to its mapped position. The
// payload is untouched; only the identifier segment moves.
func (g *Generator) rewriteChannel(line domain.ConfigLine) domain.ConfigLine {
	seg, err := line.PathPart(1)
	if err != nil {
		return line
	}
	old, err := strconv.Atoi(seg)
	if err != nil {
		return line
	}

	newPos, ok := g.xbar.NewFor(domain.Position(old))
	if !ok || int(newPos) == old {
		return line
	}

	// Keep the zero-padded width of the original segment.
	moved, err := line.WithReplacedPathPart(1, fmt.Sprintf("%0*d", len(seg), newPos))
	if err != nil {
		return line
	}
	return moved
}

// rewriteLinkFlags regenerates the flag payload from the validated link
// state, overriding whatever the passthrough line carried. This is the
// one place content is rewritten rather than relocated.
func (g *Generator) rewriteLinkFlags(line domain.ConfigLine) domain.ConfigLine {
	states := g.mapper.ExportLinkStates()
	tokens := make([]string, len(states))
	for i, on := range states {
		if on {
			tokens[i] = "ON"
		} else {
			tokens[i] = "OFF"
		}
	}
	return line.WithPayload(strings.Join(tokens, " "))
}

// rewriteOutput follows a channel-sourced output assignment to the
// channel's new position. An output fed by an unmapped channel is set to
// the off source, with a warning.
func (g *Generator) rewriteOutput(line domain.ConfigLine) (domain.ConfigLine, []string) {
	format := g.scene.Format()

	codeToken, rest, spaced := strings.Cut(line.Payload(), " ")
	code, err := strconv.Atoi(codeToken)
	if err != nil {
		return line, nil
	}
	old, ok := format.SourceChannel(code)
	if !ok {
		return line, nil
	}

	newCode := format.SourceOff
	var warnings []string
	if newPos, mapped := g.xbar.NewFor(old); mapped {
		newCode = format.SourceCode(newPos)
	} else {
		warnings = append(warnings, fmt.Sprintf(
			"output /%s source set off: channel %d was not remapped",
			strings.Join(line.Path(), "/"), old))
	}
	if newCode == code {
		return line, warnings
	}

	payload := strconv.Itoa(newCode)
	if spaced {
		payload += " " + rest
	}
	return line.WithPayload(payload), warnings
}
