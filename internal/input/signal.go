// Package input turns keyboard events into the direction signal read by the
// game loop. A Reader runs on its own goroutine and is the only writer of the
// shared Slot; the loop is the only reader.
package input

import (
	"sync/atomic"

	"github.com/vovakirdan/torsnake/internal/core"
)

// Signal is the value exchanged between the input goroutine and the loop:
// a requested direction or the exit request.
type Signal int32

// The zero value is SignalUp so a zero Slot already holds the start direction.
const (
	SignalUp Signal = iota
	SignalLeft
	SignalDown
	SignalRight
	SignalExit
)

// String returns a human-readable name for the signal.
func (s Signal) String() string {
	switch s {
	case SignalUp:
		return "up"
	case SignalLeft:
		return "left"
	case SignalDown:
		return "down"
	case SignalRight:
		return "right"
	case SignalExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Direction returns the direction carried by the signal.
// ok is false for SignalExit and unknown values.
func (s Signal) Direction() (dir core.Direction, ok bool) {
	switch s {
	case SignalUp:
		return core.DirUp, true
	case SignalLeft:
		return core.DirLeft, true
	case SignalDown:
		return core.DirDown, true
	case SignalRight:
		return core.DirRight, true
	}
	return core.DirUp, false
}

// SignalFor returns the signal requesting direction d.
func SignalFor(d core.Direction) Signal {
	switch d {
	case core.DirLeft:
		return SignalLeft
	case core.DirDown:
		return SignalDown
	case core.DirRight:
		return SignalRight
	default:
		return SignalUp
	}
}

// Slot holds the latest Signal. It has one writer and one reader, so plain
// atomic loads and stores suffice: the latest value wins and a change is seen
// at most one tick late. The zero value holds SignalUp.
type Slot struct {
	v atomic.Int32
}

// Load returns the current signal.
func (s *Slot) Load() Signal {
	return Signal(s.v.Load())
}

// Store replaces the current signal.
func (s *Slot) Store(sig Signal) {
	s.v.Store(int32(sig))
}
