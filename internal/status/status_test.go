// internal/status/status_test.go
package status

import (
	"bytes"
	"testing"
	"time"

	"github.com/tamzrod/ghostpad/internal/pad"
)

func TestFromStats_Health(t *testing.T) {
	now := time.Unix(1000, 0)

	cases := []struct {
		name string
		st   pad.Stats
		want uint16
		secs uint16
	}{
		{"no poll yet", pad.Stats{}, HealthUnknown, 0},
		{"fresh poll", pad.Stats{LastPollUnixNano: now.Add(-10 * time.Millisecond).UnixNano()}, HealthOK, 0},
		{"quiet host", pad.Stats{LastPollUnixNano: now.Add(-5 * time.Second).UnixNano()}, HealthStale, 5},
	}

	for _, tc := range cases {
		s := FromStats(tc.st, now)
		if s.Health != tc.want {
			t.Fatalf("%s: health got=%d want=%d", tc.name, s.Health, tc.want)
		}
		if s.SecondsSincePoll != tc.secs {
			t.Fatalf("%s: seconds got=%d want=%d", tc.name, s.SecondsSincePoll, tc.secs)
		}
	}
}

func TestFromStats_CountersSaturate(t *testing.T) {
	s := FromStats(pad.Stats{
		Recoveries:        70000,
		Probes:            3,
		LastUnknownOpcode: 0xFF,
	}, time.Unix(0, 0))

	if s.Recoveries != 65535 {
		t.Fatalf("recoveries not saturated: %d", s.Recoveries)
	}
	if s.Probes != 3 {
		t.Fatalf("probes: %d", s.Probes)
	}
	if s.LastUnknownOpcode != 0x100 {
		t.Fatalf("last opcode: got=%d want=256", s.LastUnknownOpcode)
	}
}

func TestEncode_Layout(t *testing.T) {
	regs := Encode(Snapshot{
		Health: HealthOK,
		Frame:  0x0001_0002,
		Polls:  0x0003_0004,
	}, "GHOST-01")

	if regs[SlotHealthCode] != HealthOK {
		t.Fatalf("health slot: %d", regs[SlotHealthCode])
	}
	if regs[SlotFrameHi] != 1 || regs[SlotFrameLo] != 2 {
		t.Fatalf("frame slots: %d %d", regs[SlotFrameHi], regs[SlotFrameLo])
	}
	if regs[SlotPollsHi] != 3 || regs[SlotPollsLo] != 4 {
		t.Fatalf("poll slots: %d %d", regs[SlotPollsHi], regs[SlotPollsLo])
	}
	if regs[SlotDeviceNameStart] != uint16('G')<<8|uint16('H') {
		t.Fatalf("device name first slot: %04X", regs[SlotDeviceNameStart])
	}
	if regs[SlotDeviceNameStart+4] != 0 {
		t.Fatalf("device name padding not zero: %04X", regs[SlotDeviceNameStart+4])
	}
}

func TestEncodeDeviceName_Sanitizes(t *testing.T) {
	got := EncodeDeviceName("A\x01")
	if got[0] != uint16('A')<<8|uint16('?') {
		t.Fatalf("got %04X", got[0])
	}

	long := EncodeDeviceName("0123456789ABCDEFXYZ")
	if long[7] != uint16('E')<<8|uint16('F') {
		t.Fatalf("truncation: got %04X", long[7])
	}
}

func TestAppendRegisters_BigEndian(t *testing.T) {
	got := AppendRegisters([]byte{0xFF}, []uint16{0x0102, 0xA0B0})
	want := []byte{0xFF, 0x01, 0x02, 0xA0, 0xB0}
	if !bytes.Equal(got, want) {
		t.Fatalf("got % X want % X", got, want)
	}
}
