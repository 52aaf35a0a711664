// cmd/ghostpad/simulate.go
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tamzrod/ghostpad/internal/channel/sim"
	"github.com/tamzrod/ghostpad/internal/framesync"
	"github.com/tamzrod/ghostpad/internal/joybus"
	"github.com/tamzrod/ghostpad/internal/pad"
)

func newSimulateCmd() *cobra.Command {
	var script string
	var pollGap time.Duration

	cmd := &cobra.Command{
		Use:   "simulate <config>",
		Short: "Play a scripted host against the replay and print every response",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			host, err := parseHex(script)
			if err != nil {
				return fmt.Errorf("--script: %w", err)
			}
			return simulate(cmd.OutOrStdout(), args[0], host, pollGap)
		},
	}

	cmd.Flags().StringVar(&script, "script", "00 41 400300 400300", "host bytes, hex")
	cmd.Flags().DurationVar(&pollGap, "poll-gap", defaultPollGap(), "simulated time between polls")
	return cmd
}

// defaultPollGap is one frame rounded up to the next microsecond, so the
// n-th poll reports frame n.
func defaultPollGap() time.Duration {
	return time.Duration(math.Ceil(framesync.MicrosecondsPerFrame)) * time.Microsecond
}

// steppingClock advances a fixed amount on every read.
type steppingClock struct {
	now  time.Time
	step time.Duration
}

func (c *steppingClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

func simulate(out io.Writer, cfgPath string, host []byte, pollGap time.Duration) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	ghost, err := loadReplay(cfg.Ghostpad.Replay)
	if err != nil {
		return err
	}

	ch := sim.New(host...)
	sess, err := pad.New(pad.Config{
		Channel: ch,
		Source:  ghost,
		Clock:   &steppingClock{now: time.Unix(0, 0), step: pollGap},
		Timing:  timing(cfg.Ghostpad.Timing),
		Delay:   func(time.Duration) {},
	})
	if err != nil {
		return err
	}
	if err := sess.Boot(); err != nil {
		return err
	}

	for {
		ch.Reset()
		err := sess.Step()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		ev := ch.Events()
		op := ev[0].Byte
		resp := ch.Responses()
		if len(resp) == 0 {
			fmt.Fprintf(out, "%02X  -> (recovered, no reply)\n", op)
			continue
		}

		payload, err := joybus.Decode(resp[0])
		if err != nil {
			return fmt.Errorf("opcode %02X: %w", op, err)
		}
		if op == joybus.CmdPoll && len(payload) == joybus.PadStatusLen {
			fmt.Fprintf(out, "%02X  -> % X  [%s]  %s\n", op, payload, formatWords(resp[0]), joybus.PadStatus(payload))
			continue
		}
		fmt.Fprintf(out, "%02X  -> % X  [%s]\n", op, payload, formatWords(resp[0]))
	}

	st := sess.Stats()
	fmt.Fprintf(out, "probes=%d origins=%d polls=%d recoveries=%d frame=%d\n",
		st.Probes, st.Origins, st.Polls, st.Recoveries, st.Frame)
	return nil
}

func parseHex(s string) ([]byte, error) {
	clean := strings.NewReplacer(" ", "", ",", "", "0x", "", "\n", "").Replace(s)
	return hex.DecodeString(clean)
}

func formatWords(words []uint32) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = fmt.Sprintf("%08X", w)
	}
	return strings.Join(parts, " ")
}
