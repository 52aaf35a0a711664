// internal/logging/logging_test.go
package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestBuild_JSONWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	log, err := build(&buf, false, "ghostpad", Options{Level: "info"})
	if err != nil {
		t.Fatalf("build err=%v", err)
	}

	log.Info().Str("replay", "ghost.gpr").Msg("loaded")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected json line, got %q: %v", buf.String(), err)
	}
	if line["app"] != "ghostpad" || line["replay"] != "ghost.gpr" || line["message"] != "loaded" {
		t.Fatalf("unexpected fields: %v", line)
	}
}

func TestBuild_ConsoleWhenTerminal(t *testing.T) {
	var buf bytes.Buffer
	log, err := build(&buf, true, "ghostpad", Options{})
	if err != nil {
		t.Fatalf("build err=%v", err)
	}

	log.Info().Msg("hello")

	if strings.HasPrefix(strings.TrimSpace(buf.String()), "{") {
		t.Fatalf("expected console output, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "hello") {
		t.Fatalf("message missing: %q", buf.String())
	}
}

func TestBuild_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log, err := build(&buf, false, "ghostpad", Options{Level: "warn", Format: "json"})
	if err != nil {
		t.Fatalf("build err=%v", err)
	}

	log.Info().Msg("dropped")
	if buf.Len() != 0 {
		t.Fatalf("info written at warn level: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"":        zerolog.InfoLevel,
		"DEBUG":   zerolog.DebugLevel,
		"warning": zerolog.WarnLevel,
		"off":     zerolog.Disabled,
		"trace":   zerolog.TraceLevel,
	}
	for in, want := range cases {
		got, err := parseLevel(in)
		if err != nil || got != want {
			t.Fatalf("%q: got=%v err=%v want=%v", in, got, err, want)
		}
	}

	if _, err := parseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
	if _, err := build(&bytes.Buffer{}, false, "x", Options{Format: "xml"}); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
