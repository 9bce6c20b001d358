package input

import (
	"fmt"
	"strconv"
	"strings"
)

// Key is a raw key code in the 0-255 virtual-key space
// Letters and digits use their uppercase ASCII value
type Key uint8

// KeyCount is the size of the key code space
const KeyCount = 256

const (
	KeyNone        Key = 0x00
	KeyMouseLeft   Key = 0x01
	KeyMouseRight  Key = 0x02
	KeyMouseMiddle Key = 0x04
	KeyBackspace   Key = 0x08
	KeyTab         Key = 0x09
	KeyEnter       Key = 0x0D
	KeyShift       Key = 0x10
	KeyEscape      Key = 0x1B
	KeySpace       Key = 0x20
	KeyLeft        Key = 0x25
	KeyUp          Key = 0x26
	KeyRight       Key = 0x27
	KeyDown        Key = 0x28
)

// keyNames maps config names to codes; single letters and digits are handled separately
var keyNames = map[string]Key{
	"mouse1":    KeyMouseLeft,
	"mouseleft": KeyMouseLeft,
	"mouse2":    KeyMouseRight,
	"mouse3":    KeyMouseMiddle,
	"backspace": KeyBackspace,
	"tab":       KeyTab,
	"enter":     KeyEnter,
	"return":    KeyEnter,
	"shift":     KeyShift,
	"escape":    KeyEscape,
	"esc":       KeyEscape,
	"space":     KeySpace,
	"left":      KeyLeft,
	"up":        KeyUp,
	"right":     KeyRight,
	"down":      KeyDown,
}

// ParseKey resolves a key name ("escape", "w", "7", "left", "0x1b") to a code
func ParseKey(name string) (Key, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "" {
		return KeyNone, fmt.Errorf("empty key name")
	}

	if k, ok := keyNames[s]; ok {
		return k, nil
	}

	if len(s) == 1 {
		c := s[0]
		switch {
		case c >= 'a' && c <= 'z':
			return Key(c - 'a' + 'A'), nil
		case c >= '0' && c <= '9':
			return Key(c), nil
		case c == ' ':
			return KeySpace, nil
		}
	}

	if strings.HasPrefix(s, "0x") {
		v, err := strconv.ParseUint(s[2:], 16, 16)
		if err != nil {
			return KeyNone, fmt.Errorf("invalid key code %q: %w", name, err)
		}
		if v >= KeyCount {
			return KeyNone, fmt.Errorf("key code %q: %w", name, ErrKeyRange)
		}
		return Key(v), nil
	}

	return KeyNone, fmt.Errorf("unknown key name %q", name)
}

// ParseKeys resolves a list of key names, stopping at the first invalid one
func ParseKeys(names []string) ([]Key, error) {
	keys := make([]Key, 0, len(names))
	for _, n := range names {
		k, err := ParseKey(n)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// String returns a readable name for the key
func (k Key) String() string {
	switch {
	case k >= 'A' && k <= 'Z', k >= '0' && k <= '9':
		return string(rune(k))
	}
	for name, code := range canonicalNames {
		if code == k {
			return name
		}
	}
	return fmt.Sprintf("0x%02x", uint8(k))
}

// UnmarshalText lets key names appear directly in config files
func (k *Key) UnmarshalText(b []byte) error {
	v, err := ParseKey(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// MarshalText is the inverse of UnmarshalText
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

var canonicalNames = map[string]Key{
	"mouse1":    KeyMouseLeft,
	"mouse2":    KeyMouseRight,
	"mouse3":    KeyMouseMiddle,
	"backspace": KeyBackspace,
	"tab":       KeyTab,
	"enter":     KeyEnter,
	"shift":     KeyShift,
	"escape":    KeyEscape,
	"space":     KeySpace,
	"left":      KeyLeft,
	"up":        KeyUp,
	"right":     KeyRight,
	"down":      KeyDown,
}
