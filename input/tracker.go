package input

import "errors"

// ErrKeyRange is returned for key codes outside 0-255
var ErrKeyRange = errors.New("key code out of range 0-255")

// KeyState is the per-frame edge state of one key
// Pressed and Released are true only on the frame the raw state changed
type KeyState struct {
	Pressed  bool
	Released bool
	Held     bool
}

// Source is the raw keyboard/focus query the tracker polls
type Source interface {
	// KeyDown reports whether the key is physically down right now
	KeyDown(k Key) bool

	// Focused reports whether the input window currently has focus
	Focused() bool
}

// Pumper is implemented by sources that buffer device events between polls
// PumpEvents is called once per Poll before any KeyDown query
type Pumper interface {
	PumpEvents()
}

// Interrupter is implemented by sources that can request termination (Ctrl+C)
type Interrupter interface {
	Interrupted() bool
}

// Tracker converts raw per-key booleans into edge-triggered key states
type Tracker struct {
	raw    [KeyCount]bool
	states [KeyCount]KeyState
}

// NewTracker creates a tracker with every key up
func NewTracker() *Tracker {
	return &Tracker{}
}

// Poll samples every key code once and updates edge states
// An unfocused source reads as all keys up
func (t *Tracker) Poll(src Source) {
	if p, ok := src.(Pumper); ok {
		p.PumpEvents()
	}
	focused := src.Focused()

	for i := 0; i < KeyCount; i++ {
		down := focused && src.KeyDown(Key(i))
		st := &t.states[i]

		st.Pressed = false
		st.Released = false

		if down != t.raw[i] {
			if down {
				st.Pressed = !st.Held
				st.Held = true
			} else {
				st.Released = true
				st.Held = false
			}
		}
		t.raw[i] = down
	}
}

// Key returns the current state of a typed key code
func (t *Tracker) Key(k Key) KeyState {
	return t.states[k]
}

// State returns the current state of an untyped key code
func (t *Tracker) State(code int) (KeyState, error) {
	if code < 0 || code >= KeyCount {
		return KeyState{}, ErrKeyRange
	}
	return t.states[code], nil
}

// Any reports whether any of the keys matches the predicate
func (t *Tracker) Any(keys []Key, pred func(KeyState) bool) bool {
	for _, k := range keys {
		if pred(t.states[k]) {
			return true
		}
	}
	return false
}

// IsPressed is the edge predicate for Any
func IsPressed(s KeyState) bool { return s.Pressed }

// IsHeld is the level predicate for Any
func IsHeld(s KeyState) bool { return s.Held }
