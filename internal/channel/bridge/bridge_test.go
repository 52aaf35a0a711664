// internal/channel/bridge/bridge_test.go
package bridge

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/goburrow/serial"

	"github.com/tamzrod/ghostpad/internal/channel"
)

// ---- fake port ----

type fakePort struct {
	rx       []byte
	timeouts int
	tx       bytes.Buffer
	closed   bool
}

func (p *fakePort) Read(b []byte) (int, error) {
	if p.timeouts > 0 {
		p.timeouts--
		return 0, serial.ErrTimeout
	}
	if len(p.rx) == 0 {
		return 0, errors.New("port gone")
	}
	n := copy(b, p.rx)
	p.rx = p.rx[n:]
	return n, nil
}

func (p *fakePort) Write(b []byte) (int, error) { return p.tx.Write(b) }

func (p *fakePort) Close() error {
	p.closed = true
	return nil
}

// ---- tests ----

func TestReadByte_RetriesTimeouts(t *testing.T) {
	port := &fakePort{rx: []byte{0x40}, timeouts: 3}
	ch := New(port)

	b, err := ch.ReadByte()
	if err != nil {
		t.Fatalf("ReadByte err=%v", err)
	}
	if b != 0x40 {
		t.Fatalf("got 0x%02x want 0x40", b)
	}
}

func TestReadByte_PortErrorSurfaces(t *testing.T) {
	ch := New(&fakePort{})

	if _, err := ch.ReadByte(); err == nil || errors.Is(err, io.EOF) {
		t.Fatalf("expected wrapped port error, got %v", err)
	}
}

func TestReadByte_AfterClose(t *testing.T) {
	port := &fakePort{rx: []byte{0x00}}
	ch := New(port)

	if err := ch.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !port.closed {
		t.Fatalf("port not closed")
	}
	if _, err := ch.ReadByte(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF after close, got %v", err)
	}
}

func TestControlPackets(t *testing.T) {
	port := &fakePort{}
	ch := New(port)

	if err := ch.Disable(); err != nil {
		t.Fatal(err)
	}
	if err := ch.Init(channel.ModeTransmit); err != nil {
		t.Fatal(err)
	}
	if err := ch.Enable(); err != nil {
		t.Fatal(err)
	}
	if err := ch.WriteWord(0x0003FAAA); err != nil {
		t.Fatal(err)
	}

	want := []byte{
		'G', opDisable,
		'G', opInit, byte(channel.ModeTransmit), 5, 8, 32,
		'G', opEnable,
		'G', opWord, 0xAA, 0xFA, 0x03, 0x00,
	}
	if !bytes.Equal(port.tx.Bytes(), want) {
		t.Fatalf("packets mismatch:\n got=% X\nwant=% X", port.tx.Bytes(), want)
	}
}
