// internal/logging/logging.go
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

const EnvLogLevel = "GHOSTPAD_LOG_LEVEL"

// Options selects level and output format.
type Options struct {
	Level  string // trace | debug | info | warn | error | disabled
	Format string // auto | console | json
}

// New builds the process logger writing to stderr.
// The GHOSTPAD_LOG_LEVEL environment variable overrides Options.Level.
func New(app string, opts Options) (zerolog.Logger, error) {
	if env := os.Getenv(EnvLogLevel); env != "" {
		opts.Level = env
	}
	return build(os.Stderr, isTerminal(os.Stderr), app, opts)
}

func build(out io.Writer, tty bool, app string, opts Options) (zerolog.Logger, error) {
	lvl, err := parseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	w := out
	switch strings.ToLower(opts.Format) {
	case "console":
		w = consoleWriter(out)
	case "json":
	case "", "auto":
		if tty {
			w = consoleWriter(out)
		}
	default:
		return zerolog.Nop(), fmt.Errorf("logging: unknown format %q", opts.Format)
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Str("app", app).Logger(), nil
}

func consoleWriter(out io.Writer) io.Writer {
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}
}

func parseLevel(raw string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	case "off", "none":
		return zerolog.Disabled, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(raw)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("logging: %w", err)
	}
	return lvl, nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
