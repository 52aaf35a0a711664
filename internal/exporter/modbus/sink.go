// internal/exporter/modbus/sink.go
package modbus

import (
	"errors"
	"fmt"
	"time"

	"github.com/goburrow/modbus"

	"github.com/tamzrod/ghostpad/internal/status"
)

// Target locates one controller's status block in a Modbus TCP memory.
type Target struct {
	Endpoint string
	UnitID   uint8
	Slot     uint16 // block index; registers start at Slot*SlotsPerDevice
	Timeout  time.Duration
}

// conn is the part of a Modbus TCP session the sink drives.
type conn interface {
	WriteMultipleRegisters(address, quantity uint16, value []byte) ([]byte, error)
	Close() error
}

// BlockSink writes runs of a status block as holding registers.
//
// The connection is opened on the first write and dropped after any failed
// write, so the next write dials again. A status memory that is down at
// startup therefore never holds up the bus.
type BlockSink struct {
	target Target
	base   uint16
	dial   func(Target) (conn, error)

	conn conn
	buf  []byte
}

func NewBlockSink(t Target) (*BlockSink, error) {
	if t.Endpoint == "" {
		return nil, errors.New("status modbus: endpoint required")
	}
	if (uint32(t.Slot)+1)*status.SlotsPerDevice > 0x10000 {
		return nil, fmt.Errorf("status modbus: slot %d exceeds register address space", t.Slot)
	}
	if t.Timeout <= 0 {
		t.Timeout = time.Second
	}

	return &BlockSink{
		target: t,
		base:   t.Slot * status.SlotsPerDevice,
		dial:   dialTCP,
		buf:    make([]byte, 0, 2*status.SlotsPerDevice),
	}, nil
}

// WriteSlots writes regs starting at slot first of the block.
func (s *BlockSink) WriteSlots(first int, regs []uint16) error {
	if len(regs) == 0 || first < 0 || first+len(regs) > status.SlotsPerDevice {
		return fmt.Errorf("status modbus: slots %d..%d outside block", first, first+len(regs)-1)
	}

	if s.conn == nil {
		c, err := s.dial(s.target)
		if err != nil {
			return fmt.Errorf("status modbus: connect %s: %w", s.target.Endpoint, err)
		}
		s.conn = c
	}

	s.buf = status.AppendRegisters(s.buf[:0], regs)
	addr := s.base + uint16(first)

	if _, err := s.conn.WriteMultipleRegisters(addr, uint16(len(regs)), s.buf); err != nil {
		s.drop()
		return fmt.Errorf("status modbus: write slots %d..%d: %w", first, first+len(regs)-1, err)
	}
	return nil
}

// Close drops the connection, if any. The sink may be written again later.
func (s *BlockSink) Close() error {
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}

func (s *BlockSink) drop() {
	_ = s.Close()
}

// ---- goburrow TCP session ----

type tcpConn struct {
	modbus.Client
	handler *modbus.TCPClientHandler
}

func (c tcpConn) Close() error { return c.handler.Close() }

func dialTCP(t Target) (conn, error) {
	h := modbus.NewTCPClientHandler(t.Endpoint)
	h.Timeout = t.Timeout
	h.SlaveId = t.UnitID

	if err := h.Connect(); err != nil {
		return nil, err
	}
	return tcpConn{Client: modbus.NewClient(h), handler: h}, nil
}
