// internal/pad/timing.go
package pad

import "time"

// Timing holds the protocol-timing compensation delays.
type Timing struct {
	// ProbeDelay is waited before answering a probe so the end bit lands
	// on the host's expected end-bit phase (3.75us into a 5us bit).
	ProbeDelay time.Duration
	// RecoverSettle is waited with the channel disabled after an unknown
	// opcode.
	RecoverSettle time.Duration
	// BootSettle lets the line voltage stabilize at bring-up.
	BootSettle time.Duration
}

// DefaultTiming matches a stock console.
func DefaultTiming() Timing {
	return Timing{
		ProbeDelay:    6 * time.Microsecond,
		RecoverSettle: 400 * time.Microsecond,
		BootSettle:    100 * time.Microsecond,
	}
}

// Delay blocks for d. Delays are mandatory and cannot be interrupted.
type Delay func(d time.Duration)

// SpinDelay busy-waits on the monotonic clock. time.Sleep cannot hit
// single-digit microseconds.
func SpinDelay(d time.Duration) {
	if d <= 0 {
		return
	}
	start := time.Now()
	for time.Since(start) < d {
	}
}
