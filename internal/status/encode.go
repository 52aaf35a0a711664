// internal/status/encode.go
package status

import "encoding/binary"

// Encode converts a Snapshot into a full status block, device name included.
// Layout is protocol-locked.
// No IO. No side effects.
func Encode(s Snapshot, name string) [SlotsPerDevice]uint16 {
	var regs [SlotsPerDevice]uint16

	regs[SlotHealthCode] = s.Health
	regs[SlotLastUnknownOpcode] = s.LastUnknownOpcode
	regs[SlotSecondsSincePoll] = s.SecondsSincePoll
	regs[SlotFrameHi] = uint16(s.Frame >> 16)
	regs[SlotFrameLo] = uint16(s.Frame)
	regs[SlotPollsHi] = uint16(s.Polls >> 16)
	regs[SlotPollsLo] = uint16(s.Polls)
	regs[SlotRecoveries] = s.Recoveries
	regs[SlotProbes] = s.Probes
	regs[SlotOrigins] = s.Origins

	nameRegs := EncodeDeviceName(name)
	copy(regs[SlotDeviceNameStart:SlotDeviceNameEnd+1], nameRegs[:])

	return regs
}

// EncodeDeviceName packs up to 16 ASCII characters into 8 registers.
// Each register stores two ASCII bytes in big-endian order.
func EncodeDeviceName(name string) [SlotDeviceNameSlots]uint16 {
	var out [SlotDeviceNameSlots]uint16

	b := []byte(name)
	if len(b) > DeviceNameMaxChars {
		b = b[:DeviceNameMaxChars]
	}

	// sanitize to printable ASCII
	for i := 0; i < len(b); i++ {
		if b[i] < 0x20 || b[i] > 0x7E {
			b[i] = '?'
		}
	}

	for i := 0; i < DeviceNameMaxChars; i += 2 {
		var hi, lo byte
		if i < len(b) {
			hi = b[i]
		}
		if i+1 < len(b) {
			lo = b[i+1]
		}
		out[i/2] = uint16(hi)<<8 | uint16(lo)
	}

	return out
}

// AppendRegisters appends regs in Modbus memory order (big-endian).
func AppendRegisters(dst []byte, regs []uint16) []byte {
	for _, r := range regs {
		dst = binary.BigEndian.AppendUint16(dst, r)
	}
	return dst
}
