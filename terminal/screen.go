package terminal

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/console-caster/input"
)

// ErrNotTerminal is returned when stdout is not attached to a tty
var ErrNotTerminal = errors.New("stdout is not a terminal")

// cellWriter is the subset of tcell.Screen the compositor writes through
type cellWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// borderStyle draws the frame around a bordered grid
var borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)

// Screen is the terminal display sink and raw input source
// All methods must be called from the engine loop goroutine
type Screen struct {
	screen     tcell.Screen
	kb         *keyboard
	borderless bool
	resized    bool
}

// Option configures a Screen
type Option func(*Screen)

// WithBorderless draws the grid at the terminal origin without a frame
func WithBorderless(borderless bool) Option {
	return func(s *Screen) { s.borderless = borderless }
}

// WithHoldWindow sets how long a key reads as down after its last event
func WithHoldWindow(d time.Duration) Option {
	return func(s *Screen) {
		if d > 0 {
			s.kb.hold = d
		}
	}
}

// Open initializes the terminal and returns a ready Screen
// Fails when stdout is not a tty or the terminal cannot be initialized
func Open(opts ...Option) (*Screen, error) {
	if !IsTerminal() {
		return nil, ErrNotTerminal
	}

	ts, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := ts.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	return NewScreen(ts, opts...), nil
}

// NewScreen wraps an initialized tcell screen
func NewScreen(ts tcell.Screen, opts ...Option) *Screen {
	s := &Screen{
		screen: ts,
		kb:     newKeyboard(DefaultHoldWindow, time.Now),
	}
	for _, opt := range opts {
		opt(s)
	}

	ts.HideCursor()
	ts.EnableMouse()
	ts.EnableFocus()
	ts.Clear()
	return s
}

// Close restores terminal state
func (s *Screen) Close() {
	s.screen.Fini()
}

// Size returns the terminal dimensions in cells
func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

// ===== DISPLAY SINK =====

// Flush writes a row-major cell grid to the terminal and shows it
func (s *Screen) Flush(cells []Cell, width, height int) {
	if s.resized {
		s.screen.Clear()
		s.resized = false
	}
	compose(s.screen, cells, width, height, s.borderless)
	s.screen.Show()
}

// origin returns the top-left terminal position of the grid
func origin(termW, termH, width, height int, borderless bool) (int, int) {
	if borderless {
		return 0, 0
	}
	ox := max((termW-width)/2, 1)
	oy := max((termH-height)/2, 1)
	return ox, oy
}

// compose writes cells through w, framing the grid unless borderless
// Cells beyond the terminal edge are clipped by the writer
func compose(w cellWriter, cells []Cell, width, height int, borderless bool) {
	termW, termH := w.Size()
	ox, oy := origin(termW, termH, width, height, borderless)

	if !borderless {
		drawFrame(w, ox-1, oy-1, width+2, height+2)
	}

	for y := 0; y < height; y++ {
		row := cells[y*width : (y+1)*width]
		for x, c := range row {
			glyph := c.Glyph
			if glyph == 0 {
				glyph = ' '
			}
			w.SetContent(ox+x, oy+y, glyph, nil, Style(c.Attr))
		}
	}
}

// drawFrame draws a single-line box of outer size w x h at (x, y)
func drawFrame(cw cellWriter, x, y, w, h int) {
	right, bottom := x+w-1, y+h-1
	for i := x + 1; i < right; i++ {
		cw.SetContent(i, y, tcell.RuneHLine, nil, borderStyle)
		cw.SetContent(i, bottom, tcell.RuneHLine, nil, borderStyle)
	}
	for j := y + 1; j < bottom; j++ {
		cw.SetContent(x, j, tcell.RuneVLine, nil, borderStyle)
		cw.SetContent(right, j, tcell.RuneVLine, nil, borderStyle)
	}
	cw.SetContent(x, y, tcell.RuneULCorner, nil, borderStyle)
	cw.SetContent(right, y, tcell.RuneURCorner, nil, borderStyle)
	cw.SetContent(x, bottom, tcell.RuneLLCorner, nil, borderStyle)
	cw.SetContent(right, bottom, tcell.RuneLRCorner, nil, borderStyle)
}

// ===== INPUT SOURCE =====

// PumpEvents drains pending terminal events without blocking
func (s *Screen) PumpEvents() {
	for s.screen.HasPendingEvent() {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		if s.kb.handle(ev) {
			s.screen.Sync()
			s.resized = true
		}
	}
}

// KeyDown reports the emulated raw state of a key
func (s *Screen) KeyDown(k input.Key) bool {
	return s.kb.down(k)
}

// Focused reports whether the terminal has focus
// Terminals without focus reporting always read as focused
func (s *Screen) Focused() bool {
	return s.kb.focused
}

// Interrupted reports whether Ctrl+C was received
func (s *Screen) Interrupted() bool {
	return s.kb.interrupted
}
