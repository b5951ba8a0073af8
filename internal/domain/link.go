package domain

import "fmt"

// Side identifies which half of a stereo pair a position occupies.
type Side string

const (
	SideLeft  Side = "L"
	SideRight Side = "R"
)

// ChannelLink is a stereo pairing between two positions that together
// form one fixed hardware pair. Its identity is the unordered pair of
// positions; the left side is always the lower member. Links are value
// objects: derived once from a parsed scene and never mutated.
type ChannelLink struct {
	left  Position
	right Position
}

// newChannelLink normalizes endpoint order so the lower position is
// always the left member. Only the pairing table constructs links, which
// keeps the fixed-pair invariant in one place.
func newChannelLink(a, b Position) ChannelLink {
	if a > b {
		a, b = b, a
	}
	return ChannelLink{left: a, right: b}
}

// Left returns the lower member of the pair.
func (l ChannelLink) Left() Position {
	return l.left
}

// Right returns the upper member of the pair.
func (l ChannelLink) Right() Position {
	return l.right
}

// Contains reports whether p is one of the link's members.
func (l ChannelLink) Contains(p Position) bool {
	return p == l.left || p == l.right
}

// Partner returns the other member of the link.
func (l ChannelLink) Partner(p Position) (Position, error) {
	switch p {
	case l.left:
		return l.right, nil
	case l.right:
		return l.left, nil
	}
	return 0, fmt.Errorf("partner of %d in link %s: %w", p, l, ErrNotFound)
}

// Side returns which half of the pair p occupies.
func (l ChannelLink) Side(p Position) (Side, error) {
	switch p {
	case l.left:
		return SideLeft, nil
	case l.right:
		return SideRight, nil
	}
	return "", fmt.Errorf("side of %d in link %s: %w", p, l, ErrNotFound)
}

func (l ChannelLink) String() string {
	return fmt.Sprintf("(%d,%d)", l.left, l.right)
}
