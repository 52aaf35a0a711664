// internal/config/validate_test.go
package config

import (
	"strings"
	"testing"
)

// helper to build a valid config quickly
func base() *Config {
	return &Config{
		Ghostpad: GhostpadConfig{
			Channel: ChannelConfig{Kind: ChannelSerial, Address: "/dev/ttyACM0"},
			Replay:  ReplayConfig{Path: "ghost.gpr"},
		},
	}
}

func intp(v int) *int { return &v }

// ---- tests ----

func TestValidate_Minimal(t *testing.T) {
	if err := Validate(base()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_SimNeedsNoAddress(t *testing.T) {
	cfg := base()
	cfg.Ghostpad.Channel = ChannelConfig{Kind: ChannelSim}

	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Rejects(t *testing.T) {
	cases := []struct {
		name string
		mut  func(c *Config)
	}{
		{"serial without address", func(c *Config) { c.Ghostpad.Channel.Address = "" }},
		{"unknown channel kind", func(c *Config) { c.Ghostpad.Channel.Kind = "usb" }},
		{"negative baud", func(c *Config) { c.Ghostpad.Channel.BaudRate = -1 }},
		{"missing replay", func(c *Config) { c.Ghostpad.Replay.Path = "" }},
		{"bad overflow", func(c *Config) { c.Ghostpad.Replay.Overflow = "stop" }},
		{"negative probe delay", func(c *Config) { c.Ghostpad.Timing.ProbeDelayUs = intp(-1) }},
		{"huge settle", func(c *Config) { c.Ghostpad.Timing.RecoverSettleUs = intp(2_000_000) }},
		{"name without endpoint", func(c *Config) { c.Ghostpad.Status.DeviceName = "x" }},
		{"non-ascii name", func(c *Config) {
			c.Ghostpad.Status.Endpoint = "127.0.0.1:502"
			c.Ghostpad.Status.DeviceName = "ghöst"
		}},
		{"slot out of range", func(c *Config) {
			c.Ghostpad.Status.Endpoint = "127.0.0.1:502"
			c.Ghostpad.Status.Slot = 4000
		}},
		{"bad log format", func(c *Config) { c.Ghostpad.Log.Format = "xml" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base()
			tc.mut(cfg)
			if err := Validate(cfg); err == nil {
				t.Fatalf("expected error, got nil")
			}
		})
	}
}

func TestValidate_TimingErrorsReportedInFieldOrder(t *testing.T) {
	cfg := base()
	cfg.Ghostpad.Timing.ProbeDelayUs = intp(-1)
	cfg.Ghostpad.Timing.RecoverSettleUs = intp(-2)
	cfg.Ghostpad.Timing.BootSettleUs = intp(-3)

	for i := 0; i < 20; i++ {
		err := Validate(cfg)
		if err == nil || !strings.Contains(err.Error(), "probe_delay_us") {
			t.Fatalf("run %d: expected probe_delay_us error first, got %v", i, err)
		}
	}
}

func TestValidate_ExplicitZeroDelayAllowed(t *testing.T) {
	cfg := base()
	cfg.Ghostpad.Timing.ProbeDelayUs = intp(0)

	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNormalize_Defaults(t *testing.T) {
	cfg := base()
	cfg.Ghostpad.Channel.Kind = ""
	cfg.Ghostpad.Status.Endpoint = "127.0.0.1:502"
	cfg.Ghostpad.Status.DeviceName = "0123456789abcdefXYZ"

	Normalize(cfg)

	g := cfg.Ghostpad
	if g.Channel.Kind != ChannelSerial || g.Channel.BaudRate != 921600 || g.Channel.TimeoutMs != 100 {
		t.Fatalf("channel defaults: %+v", g.Channel)
	}
	if g.Replay.Overflow != "hold" {
		t.Fatalf("overflow default: %q", g.Replay.Overflow)
	}
	if g.Status.UnitID != 1 || g.Status.IntervalMs != 1000 {
		t.Fatalf("status defaults: %+v", g.Status)
	}
	if g.Status.DeviceName != "0123456789abcdef" {
		t.Fatalf("device name not truncated: %q", g.Status.DeviceName)
	}
	if g.Log.Level != "info" || g.Log.Format != "auto" {
		t.Fatalf("log defaults: %+v", g.Log)
	}
}

func TestNormalize_StatusDisabledUntouched(t *testing.T) {
	cfg := base()
	Normalize(cfg)

	if cfg.Ghostpad.Status != (StatusConfig{}) {
		t.Fatalf("disabled status block was modified: %+v", cfg.Ghostpad.Status)
	}
}
