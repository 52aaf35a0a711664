// internal/config/normalize.go
package config

import (
	"strings"

	"github.com/tamzrod/ghostpad/internal/status"
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	g := &cfg.Ghostpad

	if g.Channel.Kind == "" {
		g.Channel.Kind = ChannelSerial
	}
	if g.Channel.Kind == ChannelSerial {
		if g.Channel.BaudRate == 0 {
			g.Channel.BaudRate = 921600
		}
		if g.Channel.TimeoutMs == 0 {
			g.Channel.TimeoutMs = 100
		}
	}

	g.Replay.Overflow = strings.ToLower(strings.TrimSpace(g.Replay.Overflow))
	if g.Replay.Overflow == "" {
		g.Replay.Overflow = "hold"
	}

	// ------------------------------------------------------------
	// STATUS BLOCK NORMALIZATION (OPT-IN)
	// ------------------------------------------------------------

	if g.Status.Enabled() {
		if g.Status.UnitID == 0 {
			g.Status.UnitID = 1
		}
		if g.Status.TimeoutMs == 0 {
			g.Status.TimeoutMs = 1000
		}
		if g.Status.IntervalMs == 0 {
			g.Status.IntervalMs = 1000
		}
		if g.Status.DeviceName == "" {
			g.Status.DeviceName = "ghostpad"
		}
		if len(g.Status.DeviceName) > status.DeviceNameMaxChars {
			g.Status.DeviceName = g.Status.DeviceName[:status.DeviceNameMaxChars]
		}
	}

	if g.Log.Level == "" {
		g.Log.Level = "info"
	}
	if g.Log.Format == "" {
		g.Log.Format = "auto"
	}
}
