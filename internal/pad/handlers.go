// internal/pad/handlers.go
package pad

import (
	"fmt"

	"github.com/tamzrod/ghostpad/internal/channel"
	"github.com/tamzrod/ghostpad/internal/joybus"
)

func (s *Session) probe() error {
	s.state = RespondingProbe
	s.stats.probes.Add(1)

	s.resp.EncodeResponse(joybus.ProbeResponse[:])
	s.delay(s.timing.ProbeDelay)

	return s.transmit()
}

// origin sends no delay: encoding the longer frame already takes long enough.
func (s *Session) origin() error {
	s.state = RespondingOrigin
	s.stats.origins.Add(1)

	s.resp.EncodeResponse(joybus.OriginResponse[:])

	return s.transmit()
}

func (s *Session) poll() error {
	s.state = RespondingPoll

	for i := 0; i < joybus.PollPayloadLen; i++ {
		if _, err := s.ch.ReadByte(); err != nil {
			return fmt.Errorf("pad: read poll payload: %w", err)
		}
	}

	now := s.clock.Now()
	frame := s.sync.Observe(now)
	rec := s.src.Frame(frame)
	s.resp.EncodeResponse(rec[:])

	s.stats.polls.Add(1)
	s.stats.frame.Store(frame)
	s.stats.lastPollNs.Store(now.UnixNano())

	return s.transmit()
}

// resetChannel recovers from an unknown opcode by restarting the channel in
// listen mode. The frame anchor is left alone so playback position survives.
func (s *Session) resetChannel(op byte) error {
	s.state = Recovering
	s.stats.recoveries.Add(1)
	s.stats.lastUnknown.Store(uint32(op))

	if err := s.ch.Disable(); err != nil {
		return fmt.Errorf("pad: recover: %w", err)
	}
	s.delay(s.timing.RecoverSettle)
	if err := s.ch.Init(channel.ModeListen); err != nil {
		return fmt.Errorf("pad: recover: %w", err)
	}
	if err := s.ch.Enable(); err != nil {
		return fmt.Errorf("pad: recover: %w", err)
	}
	return nil
}

// transmit switches the channel to output and pushes the encoded response.
// The peripheral returns to listening by itself after the end bit.
func (s *Session) transmit() error {
	if err := s.ch.Disable(); err != nil {
		return fmt.Errorf("pad: transmit: %w", err)
	}
	if err := s.ch.Init(channel.ModeTransmit); err != nil {
		return fmt.Errorf("pad: transmit: %w", err)
	}
	if err := s.ch.Enable(); err != nil {
		return fmt.Errorf("pad: transmit: %w", err)
	}

	for _, w := range s.resp.Words() {
		if err := s.ch.WriteWord(w); err != nil {
			return fmt.Errorf("pad: transmit: %w", err)
		}
	}
	return nil
}
