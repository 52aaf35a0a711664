// internal/joybus/protocol.go
package joybus

// Wire command set.
// These values define the bus protocol and MUST NOT be configurable.

// ---- OPCODES ----

const (
	CmdProbe  byte = 0x00
	CmdPoll   byte = 0x40
	CmdOrigin byte = 0x41
)

// PollPayloadLen is the number of bytes the host always sends after CmdPoll
// (poll mode + rumble). Their content is irrelevant here.
const PollPayloadLen = 2

// ---- FIXED RESPONSES ----

// ProbeResponse identifies a standard controller.
var ProbeResponse = [3]byte{0x09, 0x00, 0x03}

// OriginResponse reports buttons clear, both sticks centered, triggers zero.
var OriginResponse = [10]byte{0x00, 0x80, 128, 128, 128, 128, 0, 0, 0, 0}

// ---- GEOMETRY ----

// MaxResponseBytes is the longest response the bus ever carries (Origin).
const MaxResponseBytes = len(OriginResponse)

// MaxWords is the symbol word count of the longest response.
const MaxWords = MaxResponseBytes/2 + 1
