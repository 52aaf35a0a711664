// internal/status/constants.go
package status

// Status block layout constants.
// These values define the protocol and MUST NOT be configurable.

// ---- BLOCK GEOMETRY ----

// SlotsPerDevice is the fixed number of registers per emulated controller.
const SlotsPerDevice = 20

// ---- SLOT INDICES ----

// SlotHealthCode holds the bus health state.
const SlotHealthCode = 0

// SlotLastUnknownOpcode holds the most recent unrecognized opcode (+1, 0 = none).
const SlotLastUnknownOpcode = 1

// SlotSecondsSincePoll holds the seconds elapsed since the last poll.
const SlotSecondsSincePoll = 2

// SlotFrameHi / SlotFrameLo hold the last reported replay frame.
const (
	SlotFrameHi = 3
	SlotFrameLo = 4
)

// SlotPollsHi / SlotPollsLo hold the poll count (wraps at 2^32).
const (
	SlotPollsHi = 5
	SlotPollsLo = 6
)

// Saturating counters.
const (
	SlotRecoveries = 7
	SlotProbes     = 8
	SlotOrigins    = 9
)

// ---- RESERVED ----

// Slot 10 is reserved for future use.
const SlotReserved = 10

// ---- DEVICE NAME ----

// SlotDeviceNameStart is the first slot used for the device name.
const SlotDeviceNameStart = 11

// SlotDeviceNameSlots is the number of slots reserved for the device name.
const SlotDeviceNameSlots = 8

// SlotDeviceNameEnd is the last slot used for the device name (inclusive).
const SlotDeviceNameEnd = SlotDeviceNameStart + SlotDeviceNameSlots - 1

// ---- LIMITS ----

// DeviceNameMaxChars is the maximum number of ASCII characters stored for device name.
const DeviceNameMaxChars = 16

// ---- HEALTH CODES ----

// HealthUnknown: booted, no poll seen yet.
const HealthUnknown uint16 = 0

// HealthOK: the host is polling.
const HealthOK uint16 = 1

// HealthError: the bus loop stopped on a channel failure.
const HealthError uint16 = 2

// HealthStale: the host stopped polling.
const HealthStale uint16 = 3
