package input

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// ErrSourceClosed is returned when polling a source whose event stream ended.
var ErrSourceClosed = errors.New("input: event source closed")

// Source delivers decoded keys. Poll waits at most timeout for the next
// event; on timeout it returns ok == false and a nil error. Any error is
// final: the source cannot be read any more.
type Source interface {
	Poll(timeout time.Duration) (key Key, ok bool, err error)
}

// ScreenSource reads key events from a tcell screen.
type ScreenSource struct {
	events chan tcell.Event
	quit   chan struct{}
	once   sync.Once
}

// NewScreenSource starts forwarding events from screen. The screen must be
// initialized. Call Close to stop forwarding.
func NewScreenSource(screen tcell.Screen) *ScreenSource {
	src := &ScreenSource{
		events: make(chan tcell.Event, 16),
		quit:   make(chan struct{}),
	}
	go screen.ChannelEvents(src.events, src.quit)
	return src
}

// Poll waits for the next screen event.
func (s *ScreenSource) Poll(timeout time.Duration) (Key, bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev, ok := <-s.events:
		if !ok {
			return KeyNone, false, ErrSourceClosed
		}
		return KeyFromEvent(ev), true, nil
	case <-timer.C:
		return KeyNone, false, nil
	}
}

// Close stops event forwarding.
func (s *ScreenSource) Close() {
	s.once.Do(func() { close(s.quit) })
}

// StreamSource decodes keys from a raw byte stream such as an SSH channel.
//
// The underlying Read cannot be interrupted, so after Close the pump
// goroutine lingers until the stream yields data or fails.
type StreamSource struct {
	keys chan Key
	errc chan error
	done chan struct{}
	once sync.Once
}

// NewStreamSource starts reading r in the background.
func NewStreamSource(r io.Reader) *StreamSource {
	src := &StreamSource{
		keys: make(chan Key, 16),
		errc: make(chan error, 1),
		done: make(chan struct{}),
	}
	go src.pump(r)
	return src
}

func (s *StreamSource) pump(r io.Reader) {
	buf := make([]byte, 256)
	var dec Decoder
	for {
		n, err := r.Read(buf)
		for _, k := range dec.Feed(buf[:n]) {
			select {
			case s.keys <- k:
			case <-s.done:
				return
			}
		}
		if err != nil {
			s.errc <- err
			return
		}
	}
}

// Poll waits for the next decoded key. Keys decoded before a stream error
// are delivered first.
func (s *StreamSource) Poll(timeout time.Duration) (Key, bool, error) {
	select {
	case k := <-s.keys:
		return k, true, nil
	default:
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case k := <-s.keys:
		return k, true, nil
	case err := <-s.errc:
		// The pump queues its keys before reporting an error; drain those first.
		select {
		case k := <-s.keys:
			s.errc <- err
			return k, true, nil
		default:
		}
		if errors.Is(err, io.EOF) {
			return KeyNone, false, ErrSourceClosed
		}
		return KeyNone, false, fmt.Errorf("input: read failed: %w", err)
	case <-timer.C:
		return KeyNone, false, nil
	}
}

// Close stops delivering keys.
func (s *StreamSource) Close() {
	s.once.Do(func() { close(s.done) })
}
