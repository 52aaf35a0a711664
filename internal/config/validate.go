// internal/config/validate.go
package config

import (
	"fmt"
	"strings"

	"github.com/tamzrod/ghostpad/internal/replay"
	"github.com/tamzrod/ghostpad/internal/status"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	g := cfg.Ghostpad

	// ------------------------------------------------------------
	// CHANNEL
	// ------------------------------------------------------------

	switch g.Channel.Kind {
	case "", ChannelSerial:
		if g.Channel.Address == "" {
			return fmt.Errorf("channel: address is required for kind %q", ChannelSerial)
		}
		if g.Channel.BaudRate < 0 {
			return fmt.Errorf("channel: baud_rate must be >= 0, got %d", g.Channel.BaudRate)
		}
		if g.Channel.TimeoutMs < 0 {
			return fmt.Errorf("channel: timeout_ms must be >= 0, got %d", g.Channel.TimeoutMs)
		}
	case ChannelSim:
	default:
		return fmt.Errorf("channel: unknown kind %q", g.Channel.Kind)
	}

	// ------------------------------------------------------------
	// REPLAY
	// ------------------------------------------------------------

	if g.Replay.Path == "" {
		return fmt.Errorf("replay: path is required")
	}
	if _, err := replay.ParseOverflow(g.Replay.Overflow); err != nil {
		return err
	}

	// ------------------------------------------------------------
	// TIMING
	// ------------------------------------------------------------

	for _, d := range []struct {
		name string
		v    *int
	}{
		{"probe_delay_us", g.Timing.ProbeDelayUs},
		{"recover_settle_us", g.Timing.RecoverSettleUs},
		{"boot_settle_us", g.Timing.BootSettleUs},
	} {
		if d.v != nil && (*d.v < 0 || *d.v > 1_000_000) {
			return fmt.Errorf("timing: %s must be within 0..1000000, got %d", d.name, *d.v)
		}
	}

	// ------------------------------------------------------------
	// STATUS BLOCK (OPT-IN)
	// ------------------------------------------------------------

	s := g.Status
	if s.Endpoint == "" {
		if s.DeviceName != "" {
			return fmt.Errorf("status: device_name is set but no endpoint is defined")
		}
	} else {
		// device_name sanity (ASCII only)
		for i := 0; i < len(s.DeviceName); i++ {
			if s.DeviceName[i] > 0x7F {
				return fmt.Errorf("status: device_name must contain ASCII characters only")
			}
		}

		// the block must fit in the 16-bit address space
		if (uint32(s.Slot)+1)*status.SlotsPerDevice > 0x10000 {
			return fmt.Errorf("status: slot %d exceeds register address space", s.Slot)
		}

		if s.TimeoutMs < 0 || s.IntervalMs < 0 {
			return fmt.Errorf("status: timeout_ms and interval_ms must be >= 0")
		}
	}

	// ------------------------------------------------------------
	// LOG
	// ------------------------------------------------------------

	switch strings.ToLower(g.Log.Format) {
	case "", "auto", "console", "json":
	default:
		return fmt.Errorf("log: unknown format %q", g.Log.Format)
	}

	return nil
}
