package domain

import (
	"fmt"
	"sort"
)

// Mapping is one old→new pair held by a crossbar.
type Mapping struct {
	Old Position `json:"old"`
	New Position `json:"new"`
}

// Crossbar is a partial one-to-one mapping from old positions to new
// positions over a fixed universe 1..size. Both directions are kept in
// sync inside every operation, so there is never a moment where the
// forward map and the reverse map disagree.
//
// A crossbar is built incrementally by its owner and must be treated as
// read-only once handed to the mapper or the generator.
type Crossbar struct {
	size     int
	oldToNew map[Position]Position
	newToOld map[Position]Position
}

// NewCrossbar creates an empty crossbar over positions 1..size.
func NewCrossbar(size int) *Crossbar {
	return &Crossbar{
		size:     size,
		oldToNew: make(map[Position]Position),
		newToOld: make(map[Position]Position),
	}
}

// Size returns the size of the position universe.
func (c *Crossbar) Size() int {
	return c.size
}

// Connect claims the old→new mapping. It fails with ErrConflict when old
// already maps elsewhere or new is already claimed by a different old;
// re-connecting an identical pair is a no-op success. Conflicts are
// detected at call time, never deferred.
func (c *Crossbar) Connect(old, new Position) error {
	if !c.contains(old) || !c.contains(new) {
		return fmt.Errorf("connect %d->%d on crossbar of size %d: %w", old, new, c.size, ErrOutOfRange)
	}
	if cur, ok := c.oldToNew[old]; ok {
		if cur == new {
			return nil
		}
		return fmt.Errorf("connect %d->%d: position %d already maps to %d: %w", old, new, old, cur, ErrConflict)
	}
	if cur, ok := c.newToOld[new]; ok {
		return fmt.Errorf("connect %d->%d: position %d already claimed by %d: %w", old, new, new, cur, ErrConflict)
	}
	c.oldToNew[old] = new
	c.newToOld[new] = old
	return nil
}

// Disconnect removes the old→new claim. A pair that is not currently
// connected, including a half-stale one, is left untouched.
func (c *Crossbar) Disconnect(old, new Position) {
	if cur, ok := c.oldToNew[old]; !ok || cur != new {
		return
	}
	delete(c.oldToNew, old)
	delete(c.newToOld, new)
}

// NewFor returns the new position mapped to old, if any.
func (c *Crossbar) NewFor(old Position) (Position, bool) {
	p, ok := c.oldToNew[old]
	return p, ok
}

// OldFor returns the old position claiming new, if any.
func (c *Crossbar) OldFor(new Position) (Position, bool) {
	p, ok := c.newToOld[new]
	return p, ok
}

// Mappings returns the current pairs in ascending old-position order.
func (c *Crossbar) Mappings() []Mapping {
	out := make([]Mapping, 0, len(c.oldToNew))
	for old, new := range c.oldToNew {
		out = append(out, Mapping{Old: old, New: new})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Old < out[j].Old })
	return out
}

// UnmappedOlds returns every position in the universe with no forward
// mapping, sorted ascending. A non-empty result means the remap is
// partial, which the generator treats as self-mapped passthrough.
func (c *Crossbar) UnmappedOlds() []Position {
	return c.unmapped(c.oldToNew)
}

// UnmappedNews returns every position not yet claimed as a destination,
// sorted ascending.
func (c *Crossbar) UnmappedNews() []Position {
	return c.unmapped(c.newToOld)
}

func (c *Crossbar) unmapped(m map[Position]Position) []Position {
	var out []Position
	for p := Position(1); int(p) <= c.size; p++ {
		if _, ok := m[p]; !ok {
			out = append(out, p)
		}
	}
	return out
}

func (c *Crossbar) contains(p Position) bool {
	return p >= 1 && int(p) <= c.size
}
