// internal/replay/source_test.go
package replay

import (
	"testing"

	"github.com/tamzrod/ghostpad/internal/joybus"
)

func padWithX(x byte) joybus.PadStatus {
	p := joybus.Neutral()
	p[2] = x
	return p
}

func threeFrames() []joybus.PadStatus {
	return []joybus.PadStatus{padWithX(10), padWithX(20), padWithX(30)}
}

func TestGhost_InRange(t *testing.T) {
	g := NewGhost(threeFrames(), OverflowHold)

	for i, want := range []byte{10, 20, 30} {
		if got := g.Frame(uint32(i)); got[2] != want {
			t.Fatalf("frame %d: got x=%d want %d", i, got[2], want)
		}
	}
}

func TestGhost_OverflowPolicies(t *testing.T) {
	cases := []struct {
		policy Overflow
		index  uint32
		wantX  byte
	}{
		{OverflowHold, 3, 30},
		{OverflowHold, 1_000_000, 30},
		{OverflowNeutral, 3, joybus.StickCenter},
		{OverflowLoop, 3, 10},
		{OverflowLoop, 7, 20},
	}

	for _, tc := range cases {
		g := NewGhost(threeFrames(), tc.policy)
		if got := g.Frame(tc.index); got[2] != tc.wantX {
			t.Fatalf("%s frame %d: got x=%d want %d", tc.policy, tc.index, got[2], tc.wantX)
		}
	}
}

func TestGhost_EmptyIsNeutral(t *testing.T) {
	g := NewGhost(nil, OverflowHold)

	if got := g.Frame(0); got != joybus.Neutral() {
		t.Fatalf("empty ghost: got % X", got)
	}
}

func TestParseOverflow(t *testing.T) {
	cases := map[string]Overflow{
		"":        OverflowHold,
		"hold":    OverflowHold,
		"Clamp":   OverflowHold,
		"neutral": OverflowNeutral,
		" loop ":  OverflowLoop,
	}
	for in, want := range cases {
		got, err := ParseOverflow(in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("%q: got %s want %s", in, got, want)
		}
	}

	if _, err := ParseOverflow("stop"); err == nil {
		t.Fatalf("expected error for unknown policy")
	}
}
