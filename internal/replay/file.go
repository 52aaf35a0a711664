// internal/replay/file.go
package replay

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tamzrod/ghostpad/internal/joybus"
)

// Replay file layout (LOCKED):
//
//	0-3   Magic "GPRP"
//	4     Version (0x01)
//	5-7   Reserved (zero)
//	8-11  Entry count, big-endian
//	12+   Entries: record(8) hold(2, big-endian)
//
// Each entry expands into hold consecutive frames.

const (
	versionV1  byte = 0x01
	headerLen       = 12
	entryLen        = joybus.PadStatusLen + 2
	maxEntries      = 1 << 20
)

var magic = [4]byte{'G', 'P', 'R', 'P'}

var (
	ErrBadMagic   = errors.New("replay: bad magic")
	ErrBadVersion = errors.New("replay: unsupported version")
	ErrShortFile  = errors.New("replay: file shorter than entry count")
	ErrZeroHold   = errors.New("replay: entry with zero hold")
	ErrTooLarge   = errors.New("replay: too many entries")
)

// Entry is one run of identical frames.
type Entry struct {
	Pad  joybus.PadStatus
	Hold uint16
}

// Load reads and expands a replay file.
func Load(path string, overflow Overflow) (*Ghost, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: open: %w", err)
	}
	defer f.Close()

	entries, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("replay: %s: %w", path, err)
	}
	return NewGhost(Expand(entries), overflow), nil
}

// Decode parses the replay format from r.
func Decode(r io.Reader) ([]Entry, error) {
	var hdr [headerLen]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrShortFile, err)
	}
	if [4]byte(hdr[0:4]) != magic {
		return nil, ErrBadMagic
	}
	if hdr[4] != versionV1 {
		return nil, fmt.Errorf("%w: 0x%02x", ErrBadVersion, hdr[4])
	}

	count := binary.BigEndian.Uint32(hdr[8:12])
	if count > maxEntries {
		return nil, fmt.Errorf("%w: %d", ErrTooLarge, count)
	}

	entries := make([]Entry, 0, count)
	var buf [entryLen]byte
	for i := uint32(0); i < count; i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrShortFile, i, err)
		}
		var e Entry
		copy(e.Pad[:], buf[:joybus.PadStatusLen])
		e.Hold = binary.BigEndian.Uint16(buf[joybus.PadStatusLen:])
		if e.Hold == 0 {
			return nil, fmt.Errorf("%w: entry %d", ErrZeroHold, i)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Encode writes entries in the replay format.
func Encode(w io.Writer, entries []Entry) error {
	var hdr [headerLen]byte
	copy(hdr[0:4], magic[:])
	hdr[4] = versionV1
	binary.BigEndian.PutUint32(hdr[8:12], uint32(len(entries)))
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}

	var buf [entryLen]byte
	for _, e := range entries {
		copy(buf[:], e.Pad[:])
		binary.BigEndian.PutUint16(buf[joybus.PadStatusLen:], e.Hold)
		if _, err := w.Write(buf[:]); err != nil {
			return err
		}
	}
	return nil
}

// Expand turns runs into one record per frame.
func Expand(entries []Entry) []joybus.PadStatus {
	total := 0
	for _, e := range entries {
		total += int(e.Hold)
	}

	frames := make([]joybus.PadStatus, 0, total)
	for _, e := range entries {
		for i := uint16(0); i < e.Hold; i++ {
			frames = append(frames, e.Pad)
		}
	}
	return frames
}
