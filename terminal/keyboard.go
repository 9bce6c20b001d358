package terminal

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/console-caster/input"
)

// DefaultHoldWindow is how long a key counts as down after its last key event
// Terminals report presses and auto-repeats but never releases
const DefaultHoldWindow = 150 * time.Millisecond

// specialKeys maps non-rune tcell keys to raw key codes
var specialKeys = map[tcell.Key]input.Key{
	tcell.KeyEscape:     input.KeyEscape,
	tcell.KeyEnter:      input.KeyEnter,
	tcell.KeyTab:        input.KeyTab,
	tcell.KeyBackspace:  input.KeyBackspace,
	tcell.KeyBackspace2: input.KeyBackspace,
	tcell.KeyLeft:       input.KeyLeft,
	tcell.KeyUp:         input.KeyUp,
	tcell.KeyRight:      input.KeyRight,
	tcell.KeyDown:       input.KeyDown,
}

// keyCode translates a tcell key event to a raw key code
// Returns false for keys outside the tracked code space
func keyCode(ev *tcell.EventKey) (input.Key, bool) {
	if ev.Key() != tcell.KeyRune {
		k, ok := specialKeys[ev.Key()]
		return k, ok
	}

	r := unicode.ToUpper(ev.Rune())
	switch {
	case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return input.Key(r), true
	case r == ' ':
		return input.KeySpace, true
	}
	return input.KeyNone, false
}

// keyboard folds terminal events into a raw key-down table
type keyboard struct {
	hold time.Duration
	now  func() time.Time

	lastSeen    [input.KeyCount]time.Time
	shiftSeen   time.Time
	buttons     tcell.ButtonMask
	focused     bool
	interrupted bool
}

func newKeyboard(hold time.Duration, now func() time.Time) *keyboard {
	return &keyboard{
		hold:    hold,
		now:     now,
		focused: true,
	}
}

// handle applies one terminal event
// Returns true for resize events so the caller can resync the screen
func (kb *keyboard) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			kb.interrupted = true
			return false
		}
		if code, ok := keyCode(ev); ok {
			kb.lastSeen[code] = kb.now()
			if ev.Key() == tcell.KeyRune && unicode.IsUpper(ev.Rune()) {
				kb.shiftSeen = kb.now()
			}
		}
	case *tcell.EventMouse:
		kb.buttons = ev.Buttons()
	case *tcell.EventFocus:
		kb.focused = ev.Focused
		if !ev.Focused {
			kb.buttons = tcell.ButtonNone
		}
	case *tcell.EventResize:
		return true
	}
	return false
}

// down reports the emulated raw state of one key
func (kb *keyboard) down(k input.Key) bool {
	switch k {
	case input.KeyMouseLeft:
		return kb.buttons&tcell.Button1 != 0
	case input.KeyMouseRight:
		return kb.buttons&tcell.Button2 != 0
	case input.KeyMouseMiddle:
		return kb.buttons&tcell.Button3 != 0
	case input.KeyShift:
		return kb.recent(kb.shiftSeen)
	}
	return kb.recent(kb.lastSeen[k])
}

func (kb *keyboard) recent(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	return kb.now().Sub(t) < kb.hold
}
