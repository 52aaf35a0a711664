// internal/channel/channel.go
package channel

// Fixed timing parameters of the bus peripheral.
// These values are part of the hardware contract and MUST NOT be configurable.
const (
	// ClockDivider sets the bit period of the signal state machine.
	ClockDivider = 5
	// InShiftBits is how many sampled bits form one received byte.
	InShiftBits = 8
	// OutShiftBits is how many bits one symbol word carries.
	OutShiftBits = 32
)

// Mode selects which half of the bus program runs.
type Mode uint8

const (
	// ModeListen samples incoming command bytes.
	ModeListen Mode = iota
	// ModeTransmit drives symbol words onto the line.
	ModeTransmit
)

func (m Mode) String() string {
	switch m {
	case ModeListen:
		return "listen"
	case ModeTransmit:
		return "transmit"
	default:
		return "unknown"
	}
}

// Channel is the exclusive handle on the bus signal peripheral.
// All calls block; there are no timeouts at this level.
type Channel interface {
	ReadByte() (byte, error)
	WriteWord(w uint32) error
	Init(m Mode) error
	Enable() error
	Disable() error
}
