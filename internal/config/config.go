// internal/config/config.go
package config

type Config struct {
	Ghostpad GhostpadConfig `yaml:"ghostpad" toml:"ghostpad"`
}

type GhostpadConfig struct {
	Channel ChannelConfig `yaml:"channel" toml:"channel"`
	Replay  ReplayConfig  `yaml:"replay" toml:"replay"`
	Timing  TimingConfig  `yaml:"timing" toml:"timing"`
	Status  StatusConfig  `yaml:"status" toml:"status"`
	Log     LogConfig     `yaml:"log" toml:"log"`
}

// ---- CHANNEL ----

const (
	ChannelSerial = "serial"
	ChannelSim    = "sim"
)

type ChannelConfig struct {
	Kind      string `yaml:"kind" toml:"kind"` // serial | sim
	Address   string `yaml:"address" toml:"address"`
	BaudRate  int    `yaml:"baud_rate" toml:"baud_rate"`
	TimeoutMs int    `yaml:"timeout_ms" toml:"timeout_ms"`
}

// ---- REPLAY ----

type ReplayConfig struct {
	Path     string `yaml:"path" toml:"path"`
	Overflow string `yaml:"overflow" toml:"overflow"` // hold | neutral | loop
}

// ---- TIMING ----

// Pointers distinguish "not set" from an explicit zero.
type TimingConfig struct {
	ProbeDelayUs    *int `yaml:"probe_delay_us" toml:"probe_delay_us"`
	RecoverSettleUs *int `yaml:"recover_settle_us" toml:"recover_settle_us"`
	BootSettleUs    *int `yaml:"boot_settle_us" toml:"boot_settle_us"`
}

// ---- STATUS (opt-in, Modbus TCP holding registers) ----

type StatusConfig struct {
	Endpoint   string `yaml:"endpoint" toml:"endpoint"`
	UnitID     uint8  `yaml:"unit_id" toml:"unit_id"`
	Slot       uint16 `yaml:"slot" toml:"slot"`
	DeviceName string `yaml:"device_name" toml:"device_name"`
	TimeoutMs  int    `yaml:"timeout_ms" toml:"timeout_ms"`
	IntervalMs int    `yaml:"interval_ms" toml:"interval_ms"`
}

// Enabled reports whether status export is configured.
func (s StatusConfig) Enabled() bool { return s.Endpoint != "" }

// ---- LOG ----

type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"` // auto | console | json
}
