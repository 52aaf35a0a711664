// cmd/ghostpad/run.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/tamzrod/ghostpad/internal/pad"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <config>",
		Short: "Answer the console on the configured bus channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args[0])
		},
	}
}

func run(parent context.Context, cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}

	ghost, err := loadReplay(cfg.Ghostpad.Replay)
	if err != nil {
		return err
	}
	log.Info().
		Str("path", cfg.Ghostpad.Replay.Path).
		Int("frames", ghost.Len()).
		Stringer("overflow", ghost.Overflow()).
		Msg("replay loaded")

	ch, closeCh, err := openChannel(cfg.Ghostpad.Channel)
	if err != nil {
		return err
	}
	defer closeCh()

	sess, err := pad.New(pad.Config{
		Channel: ch,
		Source:  ghost,
		Timing:  timing(cfg.Ghostpad.Timing),
	})
	if err != nil {
		return err
	}

	runner, closeStatus, err := buildExporter(cfg.Ghostpad.Status, sess.Stats, log)
	if err != nil {
		return err
	}
	defer closeStatus()

	if err := sess.Boot(); err != nil {
		return err
	}
	log.Info().Str("address", cfg.Ghostpad.Channel.Address).Msg("bus channel up, listening")

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return sess.Run(gctx)
	})

	// A blocked opcode read only returns once the port is closed.
	g.Go(func() error {
		<-gctx.Done()
		return closeCh()
	})

	if runner != nil {
		g.Go(func() error {
			return runner.Run(gctx)
		})
	}

	err = g.Wait()
	st := sess.Stats()

	if ctx.Err() != nil {
		log.Info().
			Uint64("polls", st.Polls).
			Uint32("frame", st.Frame).
			Uint64("recoveries", st.Recoveries).
			Msg("shutting down")
		return nil
	}

	if runner != nil {
		runner.Fail()
	}
	log.Error().Err(err).Uint64("polls", st.Polls).Msg("bus loop stopped")
	return err
}
