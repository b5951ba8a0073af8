package domain

// Position identifies one hardware channel slot. Positions are 1-based,
// matching the numbering the scene file itself uses (/ch/01 is position 1).
type Position int

// PairingTable is the device-fixed stereo pairing: every position has
// exactly one allowed partner, and pairs are adjacent (1,2), (3,4), ...
// The table is injected configuration, so a device class with a different
// channel count needs no parser or mapper changes.
type PairingTable struct {
	channels int
}

// NewPairingTable creates a pairing table over positions 1..channels.
// An odd or non-positive channel count cannot form complete pairs.
func NewPairingTable(channels int) (PairingTable, error) {
	if channels <= 0 || channels%2 != 0 {
		return PairingTable{}, ErrOutOfRange
	}
	return PairingTable{channels: channels}, nil
}

// Channels returns the size of the position universe.
func (t PairingTable) Channels() int {
	return t.channels
}

// Contains reports whether p is inside the position universe.
func (t PairingTable) Contains(p Position) bool {
	return p >= 1 && int(p) <= t.channels
}

// Partner returns the fixed stereo partner of p.
func (t PairingTable) Partner(p Position) (Position, error) {
	if !t.Contains(p) {
		return 0, ErrOutOfRange
	}
	if p%2 == 1 {
		return p + 1, nil
	}
	return p - 1, nil
}

// IsLower reports whether p is the lower member of its fixed pair.
func (t PairingTable) IsLower(p Position) bool {
	return t.Contains(p) && p%2 == 1
}

// PairCount returns the number of fixed pairs, which is also the number
// of link flags a scene file carries for this device class.
func (t PairingTable) PairCount() int {
	return t.channels / 2
}

// PairIndex returns the 0-based pair slot that p belongs to. This is the
// index of the position's flag in the scene file's link-flag line.
func (t PairingTable) PairIndex(p Position) (int, error) {
	if !t.Contains(p) {
		return 0, ErrOutOfRange
	}
	return (int(p) - 1) / 2, nil
}

// LowerAt returns the lower member of the 0-based pair slot i.
func (t PairingTable) LowerAt(i int) (Position, error) {
	if i < 0 || i >= t.PairCount() {
		return 0, ErrOutOfRange
	}
	return Position(2*i + 1), nil
}

// LinkAt returns the ChannelLink covering p's fixed pair.
func (t PairingTable) LinkAt(p Position) (ChannelLink, error) {
	partner, err := t.Partner(p)
	if err != nil {
		return ChannelLink{}, err
	}
	return newChannelLink(p, partner), nil
}

// IsPair reports whether a and b together form exactly one fixed pair,
// in either order.
func (t PairingTable) IsPair(a, b Position) bool {
	partner, err := t.Partner(a)
	return err == nil && partner == b
}
