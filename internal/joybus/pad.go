// internal/joybus/pad.go
package joybus

import (
	"fmt"
	"strings"
)

// PadStatusLen is the width of one controller-state record on the wire.
const PadStatusLen = 8

// PadStatus mirrors the poll response layout byte for byte:
//
//	0 buttons0  1 buttons1
//	2 stick X   3 stick Y
//	4 substick X 5 substick Y
//	6 trigger L 7 trigger R
type PadStatus [PadStatusLen]byte

// Button is a bit inside the 16-bit button field (buttons0 high, buttons1 low).
type Button uint16

// buttons0
const (
	ButtonA     Button = 0x01 << 8
	ButtonB     Button = 0x02 << 8
	ButtonX     Button = 0x04 << 8
	ButtonY     Button = 0x08 << 8
	ButtonStart Button = 0x10 << 8
)

// buttons1
const (
	ButtonDLeft  Button = 0x01
	ButtonDRight Button = 0x02
	ButtonDDown  Button = 0x04
	ButtonDUp    Button = 0x08
	ButtonZ      Button = 0x10
	ButtonR      Button = 0x20
	ButtonL      Button = 0x40
)

// StickCenter is the resting value of every analog axis.
const StickCenter = 128

// Neutral returns the record of an untouched controller, matching the
// first eight bytes of OriginResponse.
func Neutral() PadStatus {
	var p PadStatus
	copy(p[:], OriginResponse[:PadStatusLen])
	return p
}

// Buttons returns the packed button field.
func (p PadStatus) Buttons() Button {
	return Button(p[0])<<8 | Button(p[1])
}

// IsDown reports whether b is pressed.
func (p PadStatus) IsDown(b Button) bool {
	return p.Buttons()&b != 0
}

func (p PadStatus) Stick() (x, y uint8)    { return p[2], p[3] }
func (p PadStatus) Substick() (x, y uint8) { return p[4], p[5] }
func (p PadStatus) Triggers() (l, r uint8) { return p[6], p[7] }

var buttonNames = [...]struct {
	b    Button
	name string
}{
	{ButtonA, "A"}, {ButtonB, "B"}, {ButtonX, "X"}, {ButtonY, "Y"},
	{ButtonStart, "Start"}, {ButtonZ, "Z"}, {ButtonL, "L"}, {ButtonR, "R"},
	{ButtonDUp, "Up"}, {ButtonDDown, "Down"}, {ButtonDLeft, "Left"}, {ButtonDRight, "Right"},
}

// String renders pressed buttons and axis values, e.g.
// "A Z stick=128,128 c=128,128 lr=0,0".
func (p PadStatus) String() string {
	var sb strings.Builder
	for _, bn := range buttonNames {
		if p.IsDown(bn.b) {
			sb.WriteString(bn.name)
			sb.WriteByte(' ')
		}
	}

	x, y := p.Stick()
	cx, cy := p.Substick()
	l, r := p.Triggers()
	fmt.Fprintf(&sb, "stick=%d,%d c=%d,%d lr=%d,%d", x, y, cx, cy, l, r)
	return sb.String()
}
