// internal/joybus/encode.go
package joybus

import (
	"errors"
	"fmt"
)

// Symbol layout.
//
// The transmit peripheral shifts words out toward the LSB, two bits per
// wire bit: an enable bit (always 1 while data is present) above the data
// bit. Wire order is MSB first, so byte bit j lands at pair j.
//
// A word carries two bytes; the even-indexed byte occupies pairs 0..7 and
// the odd-indexed byte pairs 8..15. The frame ends with a 0b11 pair right
// after the last data bit.

const (
	pairsPerByte = 8
	bytesPerWord = 2
	endMarker    = 0b11
)

// WordCount returns the number of symbol words needed for n bytes.
func WordCount(n int) int {
	if n == 0 {
		return 0
	}
	return n/bytesPerWord + 1
}

// Encode writes the symbol words for src into dst and returns how many were
// written. dst must hold at least WordCount(len(src)) words; it is cleared
// over that range first.
func Encode(dst []uint32, src []byte) int {
	n := WordCount(len(src))
	if n == 0 {
		return 0
	}
	if len(dst) < n {
		panic(fmt.Sprintf("joybus: encode needs %d words, have %d", n, len(dst)))
	}

	for i := 0; i < n; i++ {
		dst[i] = 0
	}

	for i, b := range src {
		base := pairsPerByte * (i % bytesPerWord)
		for j := 0; j < pairsPerByte; j++ {
			pos := 2 * (base + j)
			dst[i/bytesPerWord] |= 1 << (pos + 1)
			if b&(0x80>>j) != 0 {
				dst[i/bytesPerWord] |= 1 << pos
			}
		}
	}

	// End bit
	dst[len(src)/bytesPerWord] |= endMarker << (2 * pairsPerByte * (len(src) % bytesPerWord))

	return n
}

// Response is a fixed-capacity encoded frame.
type Response struct {
	words [MaxWords]uint32
	n     int
}

// EncodeResponse encodes src (at most MaxResponseBytes long) into r.
func (r *Response) EncodeResponse(src []byte) {
	r.n = Encode(r.words[:], src)
}

// Words returns the encoded words.
func (r *Response) Words() []uint32 {
	return r.words[:r.n]
}

// ---- decode ----

var (
	ErrNoEndMarker   = errors.New("joybus: missing end marker")
	ErrPartialByte   = errors.New("joybus: data bits do not form whole bytes")
	ErrTrailingPairs = errors.New("joybus: enabled pairs after end of frame")
)

// Decode reverses Encode. It walks the bit pairs in transmit order until the
// first pair without the enable bit; the last enabled pair must be the end
// marker.
func Decode(words []uint32) ([]byte, error) {
	if len(words) == 0 {
		return nil, nil
	}

	var bits []byte
	ended := false
	last := -1

	for w, word := range words {
		for k := 0; k < 2*pairsPerByte; k++ {
			pair := (word >> (2 * k)) & 0b11
			if ended {
				if pair&0b10 != 0 {
					return nil, fmt.Errorf("%w: word %d pair %d", ErrTrailingPairs, w, k)
				}
				continue
			}
			if pair&0b10 == 0 {
				ended = true
				continue
			}
			bits = append(bits, byte(pair&1))
			last = len(bits) - 1
		}
	}

	if last < 0 || bits[last] != 1 {
		return nil, ErrNoEndMarker
	}
	bits = bits[:last]
	if len(bits)%pairsPerByte != 0 {
		return nil, ErrPartialByte
	}

	out := make([]byte, len(bits)/pairsPerByte)
	for i, bit := range bits {
		out[i/pairsPerByte] |= bit << (7 - i%pairsPerByte)
	}
	return out, nil
}
