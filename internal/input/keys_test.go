package input

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/torsnake/internal/core"
)

func TestKeyFromRune(t *testing.T) {
	tests := []struct {
		r        rune
		expected Key
	}{
		{'w', KeyUp},
		{'W', KeyUp},
		{'s', KeyDown},
		{'S', KeyDown},
		{'a', KeyLeft},
		{'A', KeyLeft},
		{'d', KeyRight},
		{'D', KeyRight},
		{'q', KeyNone},
		{' ', KeyNone},
		{'я', KeyNone},
	}

	for _, tc := range tests {
		if result := KeyFromRune(tc.r); result != tc.expected {
			t.Errorf("KeyFromRune(%q) = %v, expected %v", tc.r, result, tc.expected)
		}
	}
}

func TestKeyFromEvent(t *testing.T) {
	tests := []struct {
		name     string
		ev       tcell.Event
		expected Key
	}{
		{"up arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), KeyUp},
		{"down arrow", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), KeyDown},
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), KeyLeft},
		{"right arrow", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), KeyRight},
		{"ctrl+c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), KeyQuit},
		{"rune D", tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModShift), KeyRight},
		{"rune x", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), KeyNone},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), KeyNone},
		{"resize", tcell.NewEventResize(80, 24), KeyNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if result := KeyFromEvent(tc.ev); result != tc.expected {
				t.Errorf("KeyFromEvent() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected []Key
	}{
		{"wasd", "wasd", []Key{KeyUp, KeyLeft, KeyDown, KeyRight}},
		{"upper case", "WASD", []Key{KeyUp, KeyLeft, KeyDown, KeyRight}},
		{"csi arrows", "\x1b[A\x1b[B\x1b[C\x1b[D", []Key{KeyUp, KeyDown, KeyRight, KeyLeft}},
		{"ss3 arrows", "\x1bOA\x1bOD", []Key{KeyUp, KeyLeft}},
		{"csi with modifiers", "\x1b[1;2C", []Key{KeyRight}},
		{"ctrl+c", "\x03", []Key{KeyQuit}},
		{"mixed with noise", "xw\x1b[Hq\x03", []Key{KeyUp, KeyQuit}},
		{"bare escape", "\x1b", nil},
		{"truncated csi", "\x1b[1;", nil},
		{"escape then key", "\x1bd", []Key{KeyRight}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Decode([]byte(tc.in))
			if len(result) != len(tc.expected) {
				t.Fatalf("Decode(%q) = %v, expected %v", tc.in, result, tc.expected)
			}
			for i := range result {
				if result[i] != tc.expected[i] {
					t.Errorf("Decode(%q)[%d] = %v, expected %v", tc.in, i, result[i], tc.expected[i])
				}
			}
		})
	}
}

func TestDecoderCarriesSplitSequences(t *testing.T) {
	tests := []struct {
		name     string
		chunks   []string
		expected []Key
	}{
		{"csi split after bracket", []string{"\x1b[", "A"}, []Key{KeyUp}},
		{"csi split after escape", []string{"\x1b", "[D"}, []Key{KeyLeft}},
		{"ss3 split", []string{"\x1bO", "C"}, []Key{KeyRight}},
		{"csi split inside params", []string{"w\x1b[1;", "2B", "s"}, []Key{KeyUp, KeyDown, KeyDown}},
		{"bare escape then key", []string{"\x1b", "d"}, []Key{KeyRight}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var dec Decoder
			var result []Key
			for _, c := range tc.chunks {
				result = append(result, dec.Feed([]byte(c))...)
			}
			if len(result) != len(tc.expected) {
				t.Fatalf("keys = %v, expected %v", result, tc.expected)
			}
			for i := range result {
				if result[i] != tc.expected[i] {
					t.Errorf("keys[%d] = %v, expected %v", i, result[i], tc.expected[i])
				}
			}
		})
	}
}

func TestDecoderDropsOverlongSequence(t *testing.T) {
	var dec Decoder
	dec.Feed([]byte("\x1b[" + strings.Repeat("1;", 20)))
	if len(dec.pending) != 0 {
		t.Errorf("pending = %q, expected overlong sequence dropped", dec.pending)
	}
	if keys := dec.Feed([]byte("w")); len(keys) != 1 || keys[0] != KeyUp {
		t.Errorf("Feed(w) = %v, expected [up]", keys)
	}
}

func TestSignalDirection(t *testing.T) {
	for _, d := range []core.Direction{core.DirUp, core.DirDown, core.DirLeft, core.DirRight} {
		got, ok := SignalFor(d).Direction()
		if !ok || got != d {
			t.Errorf("SignalFor(%v).Direction() = %v, %v", d, got, ok)
		}
	}
	if _, ok := SignalExit.Direction(); ok {
		t.Error("SignalExit should carry no direction")
	}

	var slot Slot
	if slot.Load() != SignalUp {
		t.Errorf("zero Slot = %v, expected up", slot.Load())
	}
	slot.Store(SignalLeft)
	if slot.Load() != SignalLeft {
		t.Errorf("Slot.Load() = %v, expected left", slot.Load())
	}
}
