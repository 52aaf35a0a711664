// cmd/ghostpad/build.go
package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tamzrod/ghostpad/internal/channel"
	"github.com/tamzrod/ghostpad/internal/channel/bridge"
	"github.com/tamzrod/ghostpad/internal/config"
	"github.com/tamzrod/ghostpad/internal/exporter"
	emodbus "github.com/tamzrod/ghostpad/internal/exporter/modbus"
	"github.com/tamzrod/ghostpad/internal/logging"
	"github.com/tamzrod/ghostpad/internal/pad"
	"github.com/tamzrod/ghostpad/internal/replay"
)

// loadConfig runs the Load -> Validate -> Normalize pipeline.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	config.Normalize(cfg)
	return cfg, nil
}

func newLogger(cfg *config.Config) (zerolog.Logger, error) {
	return logging.New("ghostpad", logging.Options{
		Level:  cfg.Ghostpad.Log.Level,
		Format: cfg.Ghostpad.Log.Format,
	})
}

// timing overlays configured delays on the defaults.
func timing(t config.TimingConfig) pad.Timing {
	out := pad.DefaultTiming()
	if t.ProbeDelayUs != nil {
		out.ProbeDelay = time.Duration(*t.ProbeDelayUs) * time.Microsecond
	}
	if t.RecoverSettleUs != nil {
		out.RecoverSettle = time.Duration(*t.RecoverSettleUs) * time.Microsecond
	}
	if t.BootSettleUs != nil {
		out.BootSettle = time.Duration(*t.BootSettleUs) * time.Microsecond
	}
	return out
}

func loadReplay(cfg config.ReplayConfig) (*replay.Ghost, error) {
	overflow, err := replay.ParseOverflow(cfg.Overflow)
	if err != nil {
		return nil, err
	}
	return replay.Load(cfg.Path, overflow)
}

// openChannel opens the hardware channel. The closer unblocks a pending read.
func openChannel(cfg config.ChannelConfig) (channel.Channel, func() error, error) {
	if cfg.Kind != config.ChannelSerial {
		return nil, nil, fmt.Errorf("channel kind %q cannot drive a real bus; use simulate", cfg.Kind)
	}

	ch, err := bridge.Open(bridge.Config{
		Address:  cfg.Address,
		BaudRate: cfg.BaudRate,
		Timeout:  time.Duration(cfg.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return nil, nil, err
	}
	return ch, ch.Close, nil
}

// buildExporter returns nil when status export is disabled.
func buildExporter(cfg config.StatusConfig, stats func() pad.Stats, log zerolog.Logger) (*exporter.Runner, func() error, error) {
	if !cfg.Enabled() {
		return nil, func() error { return nil }, nil
	}

	sink, err := emodbus.NewBlockSink(emodbus.Target{
		Endpoint: cfg.Endpoint,
		UnitID:   cfg.UnitID,
		Slot:     cfg.Slot,
		Timeout:  time.Duration(cfg.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return nil, nil, err
	}

	w := exporter.NewStatusWriter(cfg.DeviceName, sink)

	interval := time.Duration(cfg.IntervalMs) * time.Millisecond
	return exporter.NewRunner(w, stats, interval, log), sink.Close, nil
}
