// internal/channel/bridge/bridge.go
package bridge

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/goburrow/serial"

	"github.com/tamzrod/ghostpad/internal/channel"
)

// Bridge control packets (LOCKED):
//
//	0     Magic 'G'
//	1     Op
//	2+    Payload
//
// INIT   payload: mode(1) clkdiv(1) in_shift(1) out_shift(1)
// ENABLE / DISABLE: no payload
// WORD   payload: symbol word, little-endian (shift order)
//
// The bridge streams every sampled bus byte back unframed.

const (
	magic byte = 'G'

	opInit    byte = 0x01
	opEnable  byte = 0x02
	opDisable byte = 0x03
	opWord    byte = 0x04
)

// Config is minimal transport config.
type Config struct {
	Address  string
	BaudRate int
	// Timeout bounds a single port read; reads are retried until data
	// arrives or the bridge is closed.
	Timeout time.Duration
}

// Channel implements channel.Channel over a USB/UART link to a
// microcontroller that owns the bus timing.
type Channel struct {
	port   io.ReadWriteCloser
	closed atomic.Bool

	// scratch buffers, reused so the poll path does not allocate
	rx  [1]byte
	pkt [6]byte
}

// Open opens the serial port and returns a bridge channel.
func Open(cfg Config) (*Channel, error) {
	if cfg.Address == "" {
		return nil, errors.New("serial bridge: address required")
	}
	if cfg.BaudRate <= 0 {
		cfg.BaudRate = 921600
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 100 * time.Millisecond
	}

	port, err := serial.Open(&serial.Config{
		Address:  cfg.Address,
		BaudRate: cfg.BaudRate,
		DataBits: 8,
		StopBits: 1,
		Parity:   "N",
		Timeout:  cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("serial bridge: open %s: %w", cfg.Address, err)
	}

	return New(port), nil
}

// New wraps an already open port.
func New(port io.ReadWriteCloser) *Channel {
	return &Channel{port: port}
}

// Close releases the port. A blocked ReadByte returns io.EOF.
func (b *Channel) Close() error {
	if b.closed.Swap(true) {
		return nil
	}
	return b.port.Close()
}

// ---- channel.Channel ----

func (b *Channel) ReadByte() (byte, error) {
	for {
		if b.closed.Load() {
			return 0, io.EOF
		}
		n, err := b.port.Read(b.rx[:])
		if errors.Is(err, serial.ErrTimeout) || (err == nil && n == 0) {
			continue
		}
		if err != nil {
			if b.closed.Load() {
				return 0, io.EOF
			}
			return 0, fmt.Errorf("serial bridge: read: %w", err)
		}
		return b.rx[0], nil
	}
}

func (b *Channel) WriteWord(w uint32) error {
	b.pkt[0] = magic
	b.pkt[1] = opWord
	binary.LittleEndian.PutUint32(b.pkt[2:6], w)
	return b.send(b.pkt[:6])
}

func (b *Channel) Init(m channel.Mode) error {
	b.pkt[0] = magic
	b.pkt[1] = opInit
	b.pkt[2] = byte(m)
	b.pkt[3] = channel.ClockDivider
	b.pkt[4] = channel.InShiftBits
	b.pkt[5] = channel.OutShiftBits
	return b.send(b.pkt[:6])
}

func (b *Channel) Enable() error {
	b.pkt[0] = magic
	b.pkt[1] = opEnable
	return b.send(b.pkt[:2])
}

func (b *Channel) Disable() error {
	b.pkt[0] = magic
	b.pkt[1] = opDisable
	return b.send(b.pkt[:2])
}

func (b *Channel) send(p []byte) error {
	for len(p) > 0 {
		n, err := b.port.Write(p)
		if err != nil {
			return fmt.Errorf("serial bridge: write: %w", err)
		}
		p = p[n:]
	}
	return nil
}
