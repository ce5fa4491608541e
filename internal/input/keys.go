package input

import (
	"github.com/gdamore/tcell/v2"
)

// Key is a decoded keyboard event relevant to the game.
type Key int

const (
	KeyNone Key = iota
	KeyUp       // Up arrow, W
	KeyDown     // Down arrow, S
	KeyLeft     // Left arrow, A
	KeyRight    // Right arrow, D
	KeyQuit     // Ctrl+C
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Signal returns the slot value for a movement key.
// ok is false for keys that do not change direction.
func (k Key) Signal() (sig Signal, ok bool) {
	switch k {
	case KeyUp:
		return SignalUp, true
	case KeyDown:
		return SignalDown, true
	case KeyLeft:
		return SignalLeft, true
	case KeyRight:
		return SignalRight, true
	}
	return SignalUp, false
}

// KeyFromRune maps WASD in either case to movement keys.
func KeyFromRune(r rune) Key {
	switch r {
	case 'w', 'W':
		return KeyUp
	case 's', 'S':
		return KeyDown
	case 'a', 'A':
		return KeyLeft
	case 'd', 'D':
		return KeyRight
	}
	return KeyNone
}

// KeyFromEvent maps a tcell event to a Key. Non-key events are KeyNone.
func KeyFromEvent(ev tcell.Event) Key {
	kev, ok := ev.(*tcell.EventKey)
	if !ok {
		return KeyNone
	}
	switch kev.Key() {
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyCtrlC:
		return KeyQuit
	case tcell.KeyRune:
		return KeyFromRune(kev.Rune())
	}
	return KeyNone
}

const (
	byteCtrlC = 0x03
	byteEsc   = 0x1b
)

// maxPending bounds how much of an unfinished escape sequence a Decoder
// carries over; longer runs are garbage and are dropped.
const maxPending = 16

// Decoder turns a raw terminal byte stream into keys. An escape sequence
// cut off at the end of one chunk is kept and completed by the next one.
type Decoder struct {
	pending []byte
}

// Feed decodes b, prefixed by any unfinished sequence from earlier calls.
func (d *Decoder) Feed(b []byte) []Key {
	buf := append(d.pending, b...)
	keys, rest := decode(buf)
	if len(rest) > maxPending {
		rest = nil
	}
	d.pending = append(d.pending[:0], rest...)
	return keys
}

// Decode parses a complete chunk of raw terminal input into keys.
// An unfinished escape sequence at the end is dropped; use a Decoder for
// streams.
func Decode(b []byte) []Key {
	keys, _ := decode(b)
	return keys
}

// decode understands CSI (ESC [) and SS3 (ESC O) arrow sequences, including
// CSI sequences with modifier parameters such as ESC [ 1 ; 2 A, plus Ctrl+C
// and WASD. Unrecognized bytes and sequences decode to nothing. rest is the
// trailing escape sequence still waiting for its final byte.
func decode(b []byte) (keys []Key, rest []byte) {
	for i := 0; i < len(b); i++ {
		c := b[i]
		switch {
		case c == byteCtrlC:
			keys = append(keys, KeyQuit)

		case c == byteEsc:
			if i+1 >= len(b) {
				return keys, b[i:]
			}
			if b[i+1] != '[' && b[i+1] != 'O' {
				continue // bare escape
			}
			j := i + 2
			for j < len(b) && (b[j] == ';' || (b[j] >= '0' && b[j] <= '9')) {
				j++
			}
			if j >= len(b) {
				return keys, b[i:]
			}
			if k := arrowFinal(b[j]); k != KeyNone {
				keys = append(keys, k)
			}
			i = j

		default:
			if k := KeyFromRune(rune(c)); k != KeyNone {
				keys = append(keys, k)
			}
		}
	}
	return keys, nil
}

func arrowFinal(c byte) Key {
	switch c {
	case 'A':
		return KeyUp
	case 'B':
		return KeyDown
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	}
	return KeyNone
}
