package input

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// Reader polls a Source and publishes the latest requested direction into a
// Slot. It stops when the exit flag is set, when the user quits, or when the
// source fails.
type Reader struct {
	src    Source
	slot   *Slot
	exit   *atomic.Bool
	poll   time.Duration
	logger *log.Logger
}

// NewReader creates a reader. poll bounds each wait on the source so the
// exit flag is checked at least that often. A nil logger discards output.
func NewReader(src Source, slot *Slot, exit *atomic.Bool, poll time.Duration, logger *log.Logger) *Reader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Reader{
		src:    src,
		slot:   slot,
		exit:   exit,
		poll:   poll,
		logger: logger,
	}
}

// Run is the reader loop; call it on its own goroutine.
//
// On Ctrl+C it stores SignalExit, sets the exit flag and returns nil.
// If the source fails it does the same and returns the error, which is
// fatal to the game.
func (r *Reader) Run() error {
	for !r.exit.Load() {
		key, ok, err := r.src.Poll(r.poll)
		if err != nil {
			r.slot.Store(SignalExit)
			r.exit.Store(true)
			return fmt.Errorf("input: reader stopped: %w", err)
		}
		if !ok {
			continue
		}

		if key == KeyQuit {
			r.logger.Debug("quit requested")
			r.slot.Store(SignalExit)
			r.exit.Store(true)
			return nil
		}
		if sig, isMove := key.Signal(); isMove {
			r.slot.Store(sig)
			r.logger.Debug("direction", "signal", sig)
		}
	}
	return nil
}
