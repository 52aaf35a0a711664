// internal/exporter/writer.go
package exporter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tamzrod/ghostpad/internal/status"
)

// blockSink carries runs of one status block, addressed by slot index.
// The sink owns where the block lives.
type blockSink interface {
	WriteSlots(first int, regs []uint16) error
}

// StatusWriter is the delivery-only contract for status snapshots.
type StatusWriter interface {
	WriteStatus(s status.Snapshot) error
}

// blockWriter writes the full block once (identity re-assert) and after
// any failure; otherwise only changed runs of live slots.
type blockWriter struct {
	name string
	sink blockSink

	needFull bool
	last     [status.SlotsPerDevice]uint16
}

// NewStatusWriter builds a writer publishing under device name on sink.
func NewStatusWriter(name string, sink blockSink) StatusWriter {
	return &blockWriter{
		name:     name,
		sink:     sink,
		needFull: true,
	}
}

func (w *blockWriter) WriteStatus(s status.Snapshot) error {
	if w.sink == nil {
		return fmt.Errorf("status writer: no sink for device %q", w.name)
	}

	regs := status.Encode(s, w.name)

	// ------------------------------------------------------------
	// Full block write (identity re-assert)
	// ------------------------------------------------------------
	if w.needFull {
		if err := w.sink.WriteSlots(0, regs[:]); err != nil {
			return fmt.Errorf("status writer: full block write failed: %w", err)
		}
		w.needFull = false
		w.last = regs
		return nil
	}

	// ------------------------------------------------------------
	// Incremental: contiguous runs of changed live slots
	// ------------------------------------------------------------
	var errs []string

	for start := 0; start < status.SlotReserved; {
		if regs[start] == w.last[start] {
			start++
			continue
		}
		end := start + 1
		for end < status.SlotReserved && regs[end] != w.last[end] {
			end++
		}

		if err := w.sink.WriteSlots(start, regs[start:end]); err != nil {
			errs = append(errs, fmt.Sprintf("slots %d-%d write failed: %v", start, end-1, err))
		} else {
			copy(w.last[start:end], regs[start:end])
		}
		start = end
	}

	if len(errs) > 0 {
		// Any partial failure introduces doubt: re-assert on next write.
		w.needFull = true
		return errors.New("status writer: " + strings.Join(errs, " | "))
	}

	return nil
}
