// internal/pad/session.go
package pad

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tamzrod/ghostpad/internal/channel"
	"github.com/tamzrod/ghostpad/internal/framesync"
	"github.com/tamzrod/ghostpad/internal/joybus"
	"github.com/tamzrod/ghostpad/internal/replay"
)

// Config wires a session to its collaborators.
type Config struct {
	Channel channel.Channel
	Source  replay.Source
	Clock   framesync.Clock // nil means system clock
	Timing  Timing
	Delay   Delay // nil means SpinDelay
}

// Session is the whole device context for one power-up: the channel it
// exclusively drives, the frame anchor and the replay. It is created once
// and lives until the process exits.
type Session struct {
	ch     channel.Channel
	src    replay.Source
	clock  framesync.Clock
	sync   framesync.Synchronizer
	timing Timing
	delay  Delay

	state State
	resp  joybus.Response
	stats counters
}

// New creates a session. Call Boot once before Run.
func New(cfg Config) (*Session, error) {
	if cfg.Channel == nil {
		return nil, errors.New("pad: channel required")
	}
	if cfg.Source == nil {
		return nil, errors.New("pad: replay source required")
	}
	if cfg.Clock == nil {
		cfg.Clock = framesync.SystemClock{}
	}
	if cfg.Delay == nil {
		cfg.Delay = SpinDelay
	}

	return &Session{
		ch:     cfg.Channel,
		src:    cfg.Source,
		clock:  cfg.Clock,
		timing: cfg.Timing,
		delay:  cfg.Delay,
		state:  Listening,
	}, nil
}

// Boot performs the one-time channel bring-up in listen mode.
func (s *Session) Boot() error {
	if err := s.ch.Init(channel.ModeListen); err != nil {
		return fmt.Errorf("pad: boot: %w", err)
	}
	s.delay(s.timing.BootSettle)
	if err := s.ch.Enable(); err != nil {
		return fmt.Errorf("pad: boot: %w", err)
	}
	s.state = Listening
	return nil
}

// Run answers host commands until ctx is done or the channel fails.
// The context is only checked between commands; a blocked read is not
// interrupted by it.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.Step(); err != nil {
			return err
		}
	}
}

// Step reads one opcode and handles it to completion.
func (s *Session) Step() error {
	op, err := s.ch.ReadByte()
	if err != nil {
		return fmt.Errorf("pad: read opcode: %w", err)
	}

	switch op {
	case joybus.CmdProbe:
		err = s.probe()
	case joybus.CmdOrigin:
		err = s.origin()
	case joybus.CmdPoll:
		err = s.poll()
	default:
		err = s.resetChannel(op)
	}

	s.state = Listening
	return err
}

// State is the current bus state. Between steps it is always Listening.
func (s *Session) State() State { return s.state }

// Anchor exposes the frame anchor and whether the first poll happened.
func (s *Session) Anchor() (time.Time, bool) { return s.sync.Anchor() }

// Stats may be called from any goroutine.
func (s *Session) Stats() Stats { return s.stats.snapshot() }
