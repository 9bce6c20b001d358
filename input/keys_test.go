package input

import (
	"errors"
	"testing"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"escape", KeyEscape},
		{"ESC", KeyEscape},
		{"space", KeySpace},
		{"w", 'W'},
		{"Q", 'Q'},
		{"7", '7'},
		{"left", KeyLeft},
		{"mouse1", KeyMouseLeft},
		{"0x1b", KeyEscape},
		{"0xff", 0xFF},
	}

	for _, tt := range tests {
		got, err := ParseKey(tt.name)
		if err != nil {
			t.Errorf("ParseKey(%q): unexpected error %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKey(%q) = 0x%02x, want 0x%02x", tt.name, got, tt.want)
		}
	}
}

func TestParseKeyErrors(t *testing.T) {
	for _, name := range []string{"", "nope", "0xzz", "!"} {
		if _, err := ParseKey(name); err == nil {
			t.Errorf("ParseKey(%q): expected error", name)
		}
	}

	if _, err := ParseKey("0x100"); !errors.Is(err, ErrKeyRange) {
		t.Errorf("ParseKey(0x100): expected ErrKeyRange, got %v", err)
	}
}

func TestParseKeys(t *testing.T) {
	keys, err := ParseKeys([]string{"w", "up"})
	if err != nil {
		t.Fatalf("ParseKeys: %v", err)
	}
	if len(keys) != 2 || keys[0] != 'W' || keys[1] != KeyUp {
		t.Errorf("Unexpected keys %v", keys)
	}

	if _, err := ParseKeys([]string{"w", "bogus"}); err == nil {
		t.Error("Expected error for bogus key")
	}
}

func TestKeyString(t *testing.T) {
	if s := Key('W').String(); s != "W" {
		t.Errorf("Key W String = %q", s)
	}
	if s := KeyEscape.String(); s != "escape" {
		t.Errorf("KeyEscape String = %q", s)
	}
	if s := Key(0xAB).String(); s != "0xab" {
		t.Errorf("Key 0xAB String = %q", s)
	}
}

func TestKeyTextRoundTrip(t *testing.T) {
	for _, k := range []Key{KeyEscape, KeySpace, 'W', '7', KeyMouseLeft, KeyLeft, 0x91} {
		b, err := k.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", k, err)
		}
		var got Key
		if err := got.UnmarshalText(b); err != nil {
			t.Errorf("UnmarshalText(%q): %v", b, err)
			continue
		}
		if got != k {
			t.Errorf("Round trip of %v produced %v", k, got)
		}
	}

	var k Key
	if err := k.UnmarshalText([]byte("nope")); err == nil {
		t.Error("UnmarshalText accepted unknown name")
	}
}
