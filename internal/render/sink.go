package render

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/torsnake/internal/core"
)

// ScreenSink draws onto a tcell screen.
type ScreenSink struct {
	screen tcell.Screen
	styles map[core.Color]tcell.Style
}

// NewScreenSink wraps an initialized tcell screen.
func NewScreenSink(screen tcell.Screen) *ScreenSink {
	return &ScreenSink{
		screen: screen,
		styles: make(map[core.Color]tcell.Style),
	}
}

// SetCell places a glyph in the screen's back buffer.
func (s *ScreenSink) SetCell(x, y int, g Glyph) {
	s.screen.SetContent(x, y, g.Rune, nil, s.style(g.Color))
}

// Flush makes pending cells visible.
func (s *ScreenSink) Flush() error {
	s.screen.Show()
	return nil
}

func (s *ScreenSink) style(c core.Color) tcell.Style {
	if st, ok := s.styles[c]; ok {
		return st
	}
	st := tcell.StyleDefault
	if code := c.Code(); code >= 0 {
		st = st.Foreground(tcell.PaletteColor(code))
	}
	s.styles[c] = st
	return st
}

// ANSISink writes cursor-addressed ANSI output to a byte stream, such as an
// SSH channel. Writes are buffered and sent in one Write on Flush.
type ANSISink struct {
	w      io.Writer
	buf    bytes.Buffer
	styles map[core.Color]lipgloss.Style
	r      *lipgloss.Renderer
}

// NewANSISink creates a sink for w rendering colors with the given profile.
// Use termenv.Ascii to disable colors.
func NewANSISink(w io.Writer, profile termenv.Profile) *ANSISink {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return &ANSISink{
		w:      w,
		styles: make(map[core.Color]lipgloss.Style),
		r:      r,
	}
}

// Begin clears the terminal and hides the cursor.
func (s *ANSISink) Begin() error {
	_, err := io.WriteString(s.w, ansi.HideCursor+ansi.EraseEntireScreen+ansi.CursorPosition(1, 1))
	if err != nil {
		return fmt.Errorf("render: cannot prepare terminal: %w", err)
	}
	return nil
}

// End moves the cursor below the board at row and shows it again.
func (s *ANSISink) End(row int) error {
	_, err := io.WriteString(s.w, ansi.CursorPosition(1, row+1)+ansi.ShowCursor)
	if err != nil {
		return fmt.Errorf("render: cannot restore terminal: %w", err)
	}
	return nil
}

// SetCell appends a positioned glyph to the pending output.
func (s *ANSISink) SetCell(x, y int, g Glyph) {
	s.buf.WriteString(ansi.CursorPosition(x+1, y+1))
	s.buf.WriteString(s.style(g.Color).Render(string(g.Rune)))
}

// Flush writes all pending output.
func (s *ANSISink) Flush() error {
	if s.buf.Len() == 0 {
		return nil
	}
	_, err := s.w.Write(s.buf.Bytes())
	s.buf.Reset()
	if err != nil {
		return fmt.Errorf("render: write failed: %w", err)
	}
	return nil
}

func (s *ANSISink) style(c core.Color) lipgloss.Style {
	if st, ok := s.styles[c]; ok {
		return st
	}
	st := s.r.NewStyle()
	if code := c.Code(); code >= 0 {
		st = st.Foreground(lipgloss.Color(strconv.Itoa(code)))
	}
	s.styles[c] = st
	return st
}
