// internal/replay/source.go
package replay

import (
	"fmt"
	"strings"

	"github.com/tamzrod/ghostpad/internal/joybus"
)

// Source returns the controller record for a frame index.
// Implementations are called from the poll path: no IO, no allocation.
type Source interface {
	Frame(index uint32) joybus.PadStatus
}

// Overflow selects what a Ghost reports past its last recorded frame.
type Overflow uint8

const (
	// OverflowHold keeps reporting the last recorded frame.
	OverflowHold Overflow = iota
	// OverflowNeutral reports an untouched controller.
	OverflowNeutral
	// OverflowLoop restarts from frame 0.
	OverflowLoop
)

func (o Overflow) String() string {
	switch o {
	case OverflowHold:
		return "hold"
	case OverflowNeutral:
		return "neutral"
	case OverflowLoop:
		return "loop"
	default:
		return fmt.Sprintf("overflow(%d)", uint8(o))
	}
}

// ParseOverflow maps a config value to an Overflow. Empty means hold.
func ParseOverflow(s string) (Overflow, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "hold", "clamp":
		return OverflowHold, nil
	case "neutral":
		return OverflowNeutral, nil
	case "loop":
		return OverflowLoop, nil
	default:
		return 0, fmt.Errorf("replay: unknown overflow policy %q", s)
	}
}

// Ghost is an in-memory, fully expanded replay: one record per frame.
type Ghost struct {
	frames   []joybus.PadStatus
	overflow Overflow
	neutral  joybus.PadStatus
}

// NewGhost wraps already expanded frames.
func NewGhost(frames []joybus.PadStatus, overflow Overflow) *Ghost {
	return &Ghost{
		frames:   frames,
		overflow: overflow,
		neutral:  joybus.Neutral(),
	}
}

// Len is the number of recorded frames.
func (g *Ghost) Len() int { return len(g.frames) }

// Overflow returns the configured overflow policy.
func (g *Ghost) Overflow() Overflow { return g.overflow }

func (g *Ghost) Frame(index uint32) joybus.PadStatus {
	n := uint32(len(g.frames))
	if n == 0 {
		return g.neutral
	}
	if index < n {
		return g.frames[index]
	}

	switch g.overflow {
	case OverflowNeutral:
		return g.neutral
	case OverflowLoop:
		return g.frames[index%n]
	default:
		return g.frames[n-1]
	}
}
