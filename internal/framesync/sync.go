// internal/framesync/sync.go
package framesync

import (
	"math"
	"time"
)

// FrameRate is the console's field rate in frames per second.
const FrameRate = 59.94

// MicrosecondsPerFrame is the length of one replay frame.
const MicrosecondsPerFrame = 1_000_000 / FrameRate

// Clock is the time source. Production code uses SystemClock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the monotonic wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// MaxFrame is where the frame index stops; it never wraps back to 0.
const MaxFrame = math.MaxUint32

// FrameAt converts elapsed time since the anchor into a frame index,
// saturating at MaxFrame.
func FrameAt(elapsed time.Duration) uint32 {
	if elapsed <= 0 {
		return 0
	}
	f := math.Floor(float64(elapsed/time.Microsecond) / MicrosecondsPerFrame)
	if f >= MaxFrame {
		return MaxFrame
	}
	return uint32(f)
}

// Synchronizer derives the replay frame from absolute elapsed time since the
// first poll. It never counts polls, so late or missed polls cannot drift.
//
// The anchor is set once and never cleared.
type Synchronizer struct {
	anchor   time.Time
	anchored bool
}

// Observe returns the frame to report for a poll received at now.
// The first call anchors the session and returns 0.
func (s *Synchronizer) Observe(now time.Time) uint32 {
	if !s.anchored {
		s.anchor = now
		s.anchored = true
		return 0
	}
	return FrameAt(now.Sub(s.anchor))
}

// Anchor returns the anchor and whether it has been set.
func (s *Synchronizer) Anchor() (time.Time, bool) {
	return s.anchor, s.anchored
}
