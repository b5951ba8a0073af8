package domain

import (
	"errors"
	"testing"
)

func TestPairingTable(t *testing.T) {
	t.Run("rejects odd or non-positive channel counts", func(t *testing.T) {
		for _, n := range []int{-2, 0, 3, 31} {
			if _, err := NewPairingTable(n); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("NewPairingTable(%d) = %v, want ErrOutOfRange", n, err)
			}
		}
	})

	t.Run("partners are adjacent pairs", func(t *testing.T) {
		table, err := NewPairingTable(4)
		if err != nil {
			t.Fatalf("NewPairingTable(4) failed: %v", err)
		}

		cases := []struct {
			pos     Position
			partner Position
		}{
			{1, 2}, {2, 1}, {3, 4}, {4, 3},
		}
		for _, tt := range cases {
			got, err := table.Partner(tt.pos)
			if err != nil {
				t.Errorf("Partner(%d) failed: %v", tt.pos, err)
				continue
			}
			if got != tt.partner {
				t.Errorf("Partner(%d) = %d, want %d", tt.pos, got, tt.partner)
			}
		}

		if _, err := table.Partner(5); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Partner(5) = %v, want ErrOutOfRange", err)
		}
	})

	t.Run("pair membership is order independent", func(t *testing.T) {
		table, _ := NewPairingTable(4)

		if !table.IsPair(1, 2) || !table.IsPair(2, 1) {
			t.Error("expected (1,2) and (2,1) to be fixed pairs")
		}
		if table.IsPair(3, 1) || table.IsPair(2, 3) {
			t.Error("non-adjacent positions must not form a pair")
		}
	})

	t.Run("pair slots round-trip", func(t *testing.T) {
		table, _ := NewPairingTable(32)

		if table.PairCount() != 16 {
			t.Fatalf("PairCount() = %d, want 16", table.PairCount())
		}
		for i := 0; i < table.PairCount(); i++ {
			lower, err := table.LowerAt(i)
			if err != nil {
				t.Fatalf("LowerAt(%d) failed: %v", i, err)
			}
			if !table.IsLower(lower) {
				t.Errorf("LowerAt(%d) = %d is not a lower member", i, lower)
			}
			idx, err := table.PairIndex(lower)
			if err != nil || idx != i {
				t.Errorf("PairIndex(%d) = %d, %v; want %d", lower, idx, err, i)
			}
		}
	})
}

func TestChannelLink(t *testing.T) {
	table, err := NewPairingTable(8)
	if err != nil {
		t.Fatalf("NewPairingTable(8) failed: %v", err)
	}

	link, err := table.LinkAt(2)
	if err != nil {
		t.Fatalf("LinkAt(2) failed: %v", err)
	}

	t.Run("members are normalized lower-first", func(t *testing.T) {
		if link.Left() != 1 || link.Right() != 2 {
			t.Errorf("link = %s, want (1,2)", link)
		}
	})

	t.Run("contains only its members", func(t *testing.T) {
		if !link.Contains(1) || !link.Contains(2) {
			t.Error("expected link to contain positions 1 and 2")
		}
		if link.Contains(3) {
			t.Error("expected link not to contain position 3")
		}
	})

	t.Run("partner lookup", func(t *testing.T) {
		if p, err := link.Partner(1); err != nil || p != 2 {
			t.Errorf("Partner(1) = %d, %v; want 2", p, err)
		}
		if p, err := link.Partner(2); err != nil || p != 1 {
			t.Errorf("Partner(2) = %d, %v; want 1", p, err)
		}
		if _, err := link.Partner(3); !errors.Is(err, ErrNotFound) {
			t.Errorf("Partner(3) = %v, want ErrNotFound", err)
		}
	})

	t.Run("side is a function of pair order", func(t *testing.T) {
		if s, err := link.Side(1); err != nil || s != SideLeft {
			t.Errorf("Side(1) = %s, %v; want L", s, err)
		}
		if s, err := link.Side(2); err != nil || s != SideRight {
			t.Errorf("Side(2) = %s, %v; want R", s, err)
		}
		if _, err := link.Side(7); !errors.Is(err, ErrNotFound) {
			t.Errorf("Side(7) = %v, want ErrNotFound", err)
		}
	})
}
