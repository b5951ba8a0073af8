package scene

import (
	"fmt"

	"scenemover/internal/domain"
)

// MappedLink is a parsed stereo link projected into new-position space.
// NewLeft and NewRight are the destinations of the old link's left and
// right members. Valid reports whether the two destinations form a fixed
// hardware pair; a link that does not is broken, a degraded-but-usable
// outcome reported as a warning rather than an error.
type MappedLink struct {
	Old      domain.ChannelLink
	NewLeft  domain.Position
	NewRight domain.Position
	Valid    bool
}

// Mapper projects a scene's stereo links through a crossbar and validates
// the results against the destination pairing table. The crossbar must be
// fully built before the mapper reads it.
type Mapper struct {
	table domain.PairingTable
	links []domain.ChannelLink
	xbar  *domain.Crossbar

	done      bool
	projected []MappedLink
	warnings  []string
}

// NewMapper creates a mapper over the scene's parsed links.
func NewMapper(sc *Scene, xbar *domain.Crossbar) *Mapper {
	return &Mapper{
		table: sc.Table(),
		links: sc.Links(),
		xbar:  xbar,
	}
}

// ProjectedLinks returns the surviving links in new-position space, each
// tagged valid or broken.
func (m *Mapper) ProjectedLinks() []MappedLink {
	m.run()
	return m.projected
}

// ExportLinkStates converts the validated link set into the per-pair flag
// representation the scene file expects: one flag per fixed pair, on iff
// a valid link occupies that destination pair. Broken links and unused
// pairs both export as off.
func (m *Mapper) ExportLinkStates() []bool {
	m.run()

	states := make([]bool, m.table.PairCount())
	for _, link := range m.projected {
		if !link.Valid {
			continue
		}
		lower := link.NewLeft
		if link.NewRight < lower {
			lower = link.NewRight
		}
		idx, err := m.table.PairIndex(lower)
		if err != nil {
			continue
		}
		states[idx] = true
	}
	return states
}

// Warnings returns the human-readable reports of lost and broken links,
// in link order.
func (m *Mapper) Warnings() []string {
	m.run()
	return m.warnings
}

func (m *Mapper) run() {
	if m.done {
		return
	}
	m.done = true
	m.projected = m.validateLinks(m.projectLinks())
}

// projectLinks looks up both members of every link in the crossbar. A
// link with an unmapped member is dropped, not carried forward.
func (m *Mapper) projectLinks() []MappedLink {
	var out []MappedLink
	for _, link := range m.links {
		newLeft, leftOK := m.xbar.NewFor(link.Left())
		newRight, rightOK := m.xbar.NewFor(link.Right())

		if !leftOK || !rightOK {
			for _, member := range []struct {
				pos    domain.Position
				mapped bool
			}{{link.Left(), leftOK}, {link.Right(), rightOK}} {
				if !member.mapped {
					m.warnings = append(m.warnings, fmt.Sprintf(
						"link at positions %s lost because position %d was not remapped",
						link, member.pos))
				}
			}
			continue
		}

		out = append(out, MappedLink{Old: link, NewLeft: newLeft, NewRight: newRight})
	}
	return out
}

// validateLinks marks each candidate valid iff its two destinations form
// exactly one fixed hardware pair, in either order. Stereo adjacency is a
// property of the destination slots, not inherited from the source; no
// repair or re-placement is attempted.
func (m *Mapper) validateLinks(links []MappedLink) []MappedLink {
	for i := range links {
		links[i].Valid = m.table.IsPair(links[i].NewLeft, links[i].NewRight)
		if !links[i].Valid {
			m.warnings = append(m.warnings, fmt.Sprintf(
				"link at positions %s broken: new positions (%d,%d) do not form a stereo pair",
				links[i].Old, links[i].NewLeft, links[i].NewRight))
		}
	}
	return links
}
