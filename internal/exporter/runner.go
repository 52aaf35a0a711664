// internal/exporter/runner.go
package exporter

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tamzrod/ghostpad/internal/pad"
	"github.com/tamzrod/ghostpad/internal/status"
)

// Runner publishes session counters on a fixed interval.
// It only reads counters; it never touches the bus.
type Runner struct {
	w        StatusWriter
	stats    func() pad.Stats
	interval time.Duration
	now      func() time.Time
	log      zerolog.Logger
}

func NewRunner(w StatusWriter, stats func() pad.Stats, interval time.Duration, log zerolog.Logger) *Runner {
	if interval <= 0 {
		interval = time.Second
	}
	return &Runner{
		w:        w,
		stats:    stats,
		interval: interval,
		now:      time.Now,
		log:      log,
	}
}

// Run writes one snapshot immediately and then one per tick until ctx is
// done. Write failures are logged and retried on the next tick.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.publish()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.publish()
		}
	}
}

// Fail records that the bus loop stopped on an error.
func (r *Runner) Fail() {
	s := status.FromStats(r.stats(), r.now())
	s.Health = status.HealthError
	if err := r.w.WriteStatus(s); err != nil {
		r.log.Warn().Err(err).Msg("final status write failed")
	}
}

func (r *Runner) publish() {
	s := status.FromStats(r.stats(), r.now())
	if err := r.w.WriteStatus(s); err != nil {
		r.log.Warn().Err(err).Uint16("health", s.Health).Msg("status write failed")
	}
}
