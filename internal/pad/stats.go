// internal/pad/stats.go
package pad

import "sync/atomic"

// counters are written by the bus loop and read by anyone.
type counters struct {
	probes      atomic.Uint64
	origins     atomic.Uint64
	polls       atomic.Uint64
	recoveries  atomic.Uint64
	lastUnknown atomic.Uint32
	frame       atomic.Uint32
	lastPollNs  atomic.Int64
}

// Stats is a point-in-time copy of the session counters.
type Stats struct {
	Probes     uint64
	Origins    uint64
	Polls      uint64
	Recoveries uint64

	// LastUnknownOpcode is the most recent unrecognized opcode.
	// Only meaningful when Recoveries > 0.
	LastUnknownOpcode byte

	// Frame is the frame index reported on the most recent poll.
	Frame uint32

	// LastPollUnixNano is 0 until the first poll.
	LastPollUnixNano int64
}

func (c *counters) snapshot() Stats {
	return Stats{
		Probes:            c.probes.Load(),
		Origins:           c.origins.Load(),
		Polls:             c.polls.Load(),
		Recoveries:        c.recoveries.Load(),
		LastUnknownOpcode: byte(c.lastUnknown.Load()),
		Frame:             c.frame.Load(),
		LastPollUnixNano:  c.lastPollNs.Load(),
	}
}
