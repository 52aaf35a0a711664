// internal/status/snapshot.go
package status

import (
	"time"

	"github.com/tamzrod/ghostpad/internal/pad"
)

// StaleAfter is how long without a poll before health turns stale.
const StaleAfter = time.Second

// Snapshot represents exactly what the writer is allowed to deliver.
type Snapshot struct {
	Health            uint16
	LastUnknownOpcode uint16
	SecondsSincePoll  uint16
	Frame             uint32
	Polls             uint32
	Recoveries        uint16
	Probes            uint16
	Origins           uint16
}

// FromStats derives a snapshot from session counters at time now.
func FromStats(st pad.Stats, now time.Time) Snapshot {
	s := Snapshot{
		Frame:      st.Frame,
		Polls:      uint32(st.Polls),
		Recoveries: sat16(st.Recoveries),
		Probes:     sat16(st.Probes),
		Origins:    sat16(st.Origins),
	}

	if st.Recoveries > 0 {
		s.LastUnknownOpcode = uint16(st.LastUnknownOpcode) + 1
	}

	if st.LastPollUnixNano == 0 {
		s.Health = HealthUnknown
		return s
	}

	since := now.Sub(time.Unix(0, st.LastPollUnixNano))
	if since < 0 {
		since = 0
	}
	s.SecondsSincePoll = sat16(uint64(since / time.Second))

	if since > StaleAfter {
		s.Health = HealthStale
	} else {
		s.Health = HealthOK
	}
	return s
}

func sat16(v uint64) uint16 {
	if v > 65535 {
		return 65535
	}
	return uint16(v)
}
