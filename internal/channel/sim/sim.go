// internal/channel/sim/sim.go
package sim

import (
	"io"

	"github.com/tamzrod/ghostpad/internal/channel"
)

// EventKind classifies what happened on the simulated peripheral.
type EventKind uint8

const (
	EventInit EventKind = iota
	EventEnable
	EventDisable
	EventWord
	EventRead
)

func (k EventKind) String() string {
	switch k {
	case EventInit:
		return "init"
	case EventEnable:
		return "enable"
	case EventDisable:
		return "disable"
	case EventWord:
		return "word"
	case EventRead:
		return "read"
	default:
		return "?"
	}
}

// Event is one recorded peripheral operation.
type Event struct {
	Kind EventKind
	Mode channel.Mode // EventInit
	Word uint32       // EventWord
	Byte byte         // EventRead
}

// Channel is a software stand-in for the bus peripheral. The host side is
// a script of bytes; everything the device does is recorded.
//
// Like the hardware program, a channel left in transmit mode falls back to
// listen mode on the next read.
type Channel struct {
	script []byte
	mode   channel.Mode
	events []Event
}

// New returns a channel that will deliver script to the device, then io.EOF.
func New(script ...byte) *Channel {
	return &Channel{script: script}
}

func (c *Channel) ReadByte() (byte, error) {
	if c.mode == channel.ModeTransmit {
		c.mode = channel.ModeListen
	}
	if len(c.script) == 0 {
		return 0, io.EOF
	}
	b := c.script[0]
	c.script = c.script[1:]
	c.events = append(c.events, Event{Kind: EventRead, Byte: b})
	return b, nil
}

func (c *Channel) WriteWord(w uint32) error {
	c.events = append(c.events, Event{Kind: EventWord, Word: w})
	return nil
}

func (c *Channel) Init(m channel.Mode) error {
	c.mode = m
	c.events = append(c.events, Event{Kind: EventInit, Mode: m})
	return nil
}

func (c *Channel) Enable() error {
	c.events = append(c.events, Event{Kind: EventEnable})
	return nil
}

func (c *Channel) Disable() error {
	c.events = append(c.events, Event{Kind: EventDisable})
	return nil
}

// Events returns everything recorded so far.
func (c *Channel) Events() []Event { return c.events }

// Reset forgets recorded events.
func (c *Channel) Reset() { c.events = c.events[:0] }

// Responses groups transmitted words into frames. A frame starts at each
// Init(ModeTransmit).
func (c *Channel) Responses() [][]uint32 {
	var out [][]uint32
	in := false
	for _, e := range c.events {
		switch {
		case e.Kind == EventInit && e.Mode == channel.ModeTransmit:
			out = append(out, nil)
			in = true
		case e.Kind == EventInit:
			in = false
		case e.Kind == EventWord && in:
			out[len(out)-1] = append(out[len(out)-1], e.Word)
		}
	}
	return out
}
